package main

import (
	"github.com/spf13/cobra"

	"github.com/fettersdev/fetters/internal/prompt"
	"github.com/fettersdev/fetters/internal/ui"
	"github.com/fettersdev/fetters/pkg/types"
)

var updateQueryFlags *queryFlags

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update fields of a tracked job application",
	Long: `Update a job application. Pick the fields to change, then answer a
prompt per field. Moving a job to another sprint keeps both sprints' job
counters in step.`,
	RunE: runUpdate,
}

func init() {
	updateQueryFlags = addQueryFlags(updateCmd)
}

// Field labels offered by the update prompt, in display order.
var updateFields = []string{"Company Name", "Title", "Status", "Link", "Notes", "Sprint"}

func runUpdate(cmd *cobra.Command, args []string) error {
	return runInteractive(func() error {
		job, err := selectJob(updateQueryFlags.filter(cmd))
		if err != nil {
			return err
		}

		chosen, err := prompt.ChooseMany("Fields to update", updateFields)
		if err != nil {
			return err
		}
		if len(chosen) == 0 {
			ui.Warning.Println("No fields selected, nothing changed.")
			return nil
		}

		var changes types.JobUpdate
		for _, idx := range chosen {
			switch updateFields[idx] {
			case "Company Name":
				company, err := prompt.Text("Company name")
				if err != nil {
					return err
				}
				changes.CompanyName = &company
			case "Title":
				titleName, err := prompt.Text("Job title")
				if err != nil {
					return err
				}
				title, err := store.Titles().GetOrCreate(titleName)
				if err != nil {
					return err
				}
				changes.TitleID = &title.ID
			case "Status":
				statuses, err := store.Statuses().All()
				if err != nil {
					return err
				}
				labels := make([]string, 0, len(statuses))
				for _, st := range statuses {
					labels = append(labels, st.Name)
				}
				choice, err := prompt.Choose("Status", labels)
				if err != nil {
					return err
				}
				changes.StatusID = &statuses[choice].ID
			case "Link":
				link, err := prompt.OptionalText("Link", orFlat(job.Link))
				if err != nil {
					return err
				}
				changes.Link = link
			case "Notes":
				notes, err := prompt.OptionalText("Notes", orFlat(job.Notes))
				if err != nil {
					return err
				}
				changes.Notes = notes
			case "Sprint":
				sprints, err := store.Sprints().All()
				if err != nil {
					return err
				}
				labels := make([]string, 0, len(sprints))
				for i := range sprints {
					labels = append(labels, sprints[i].String())
				}
				choice, err := prompt.Choose("Sprint", labels)
				if err != nil {
					return err
				}
				changes.SprintID = &sprints[choice].ID
			}
		}

		updated, err := store.Jobs().Update(job.ID, changes)
		if err != nil {
			return err
		}
		ui.Success.Printf("Updated job application #%d for %s.\n", updated.ID, updated.CompanyName)
		return nil
	})
}

// orFlat dereferences an optional string for prompt defaults.
func orFlat(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
