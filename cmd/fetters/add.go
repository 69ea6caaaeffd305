package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/fettersdev/fetters/internal/prompt"
	"github.com/fettersdev/fetters/internal/ui"
	"github.com/fettersdev/fetters/pkg/types"
)

var addCmd = &cobra.Command{
	Use:   "add [company]",
	Short: "Track a new job application in the current sprint",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	return runInteractive(func() error {
		sprint, err := currentSprint()
		if err != nil {
			return err
		}

		statuses, err := store.Statuses().All()
		if err != nil {
			return err
		}

		// The company comes from the positional argument when given.
		var company string
		if len(args) > 0 {
			company = args[0]
		} else {
			company, err = prompt.Text("Company name")
			if err != nil {
				return err
			}
		}
		titleName, err := prompt.Text("Job title")
		if err != nil {
			return err
		}

		statusLabels := make([]string, 0, len(statuses))
		for _, st := range statuses {
			statusLabels = append(statusLabels, st.Name)
		}
		statusChoice, err := prompt.Choose("Status", statusLabels)
		if err != nil {
			return err
		}

		link, err := prompt.OptionalText("Link (optional)", "")
		if err != nil {
			return err
		}
		notes, err := prompt.OptionalText("Notes (optional)", "")
		if err != nil {
			return err
		}

		title, err := store.Titles().GetOrCreate(titleName)
		if err != nil {
			return err
		}

		job, err := store.Jobs().Add(types.NewJob{
			CompanyName: company,
			Created:     time.Now().Format(types.TimestampFormat),
			TitleID:     title.ID,
			StatusID:    statuses[statusChoice].ID,
			Link:        link,
			Notes:       notes,
			SprintID:    sprint.ID,
		})
		if err != nil {
			return err
		}

		ui.Success.Printf(
			"Added job application #%d for %s to sprint %s.\n",
			job.ID, job.CompanyName, sprint.Name,
		)
		return nil
	})
}
