package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fettersdev/fetters/internal/prompt"
	"github.com/fettersdev/fetters/internal/ui"
	"github.com/fettersdev/fetters/pkg/types"
)

var sprintCmd = &cobra.Command{
	Use:   "sprint",
	Short: "Manage application sprints",
}

var sprintCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the current sprint",
	RunE: func(cmd *cobra.Command, args []string) error {
		sprint, err := currentSprint()
		if err != nil {
			return err
		}
		fmt.Println(sprint.String())
		return nil
	},
}

var sprintNewName string

var sprintNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a sprint and make it the current one",
	RunE: func(cmd *cobra.Command, args []string) error {
		name := sprintNewName
		if name == "" {
			name = time.Now().Format(types.DateFormat)
		}

		sprint, err := store.Sprints().Add(types.NewSprint{
			Name:      name,
			StartDate: time.Now().Format(types.DateFormat),
		})
		if err != nil {
			return err
		}
		if err := cfg.SetCurrentSprintName(sprint.Name); err != nil {
			return err
		}
		ui.Success.Printf("Started sprint %s.\n", sprint.Name)
		return nil
	},
}

var sprintShowAllCmd = &cobra.Command{
	Use:   "show-all",
	Short: "List every sprint",
	RunE: func(cmd *cobra.Command, args []string) error {
		sprints, err := store.Sprints().All()
		if err != nil {
			return err
		}
		if len(sprints) == 0 {
			ui.Warning.Println("No sprints yet. Run `fetters sprint new` to start one.")
			return nil
		}
		fmt.Println(ui.SprintTable(sprints))
		return nil
	},
}

var sprintSetName string

var sprintSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the current sprint",
	Long: `Set the current sprint by name. Without --name, pick from the
existing sprints or type a new name. A sprint named here is created on
first use.`,
	RunE: runSprintSet,
}

func runSprintSet(cmd *cobra.Command, args []string) error {
	return runInteractive(func() error {
		name := sprintSetName
		if name == "" {
			sprints, err := store.Sprints().All()
			if err != nil {
				return err
			}

			const newSprintLabel = "(new sprint)"
			labels := make([]string, 0, len(sprints)+1)
			for i := range sprints {
				labels = append(labels, sprints[i].Name)
			}
			labels = append(labels, newSprintLabel)

			choice, err := prompt.Choose("Current sprint", labels)
			if err != nil {
				return err
			}
			if labels[choice] == newSprintLabel {
				name, err = prompt.Text("Sprint name")
				if err != nil {
					return err
				}
			} else {
				name = labels[choice]
			}
		}

		if err := cfg.SetCurrentSprintName(name); err != nil {
			return err
		}
		ui.Success.Printf("Current sprint set to %s.\n", name)
		return nil
	})
}

func init() {
	sprintNewCmd.Flags().StringVar(&sprintNewName, "name", "", "sprint name (default: today's date)")
	sprintSetCmd.Flags().StringVar(&sprintSetName, "name", "", "sprint name to make current")

	sprintCmd.AddCommand(sprintCurrentCmd)
	sprintCmd.AddCommand(sprintNewCmd)
	sprintCmd.AddCommand(sprintShowAllCmd)
	sprintCmd.AddCommand(sprintSetCmd)
}
