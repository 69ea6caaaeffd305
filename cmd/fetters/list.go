package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fettersdev/fetters/internal/ui"
)

var listQueryFlags *queryFlags

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked job applications",
	Long: `List the job applications in the current sprint, or across sprints
with --sprint. String flags match by substring; --stages keeps only jobs
with that many interview stages, or any stages when given without a value.`,
	RunE: runList,
}

func init() {
	listQueryFlags = addQueryFlags(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	jobs, sprint, err := listJobs(listQueryFlags.filter(cmd))
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		label := "any"
		if sprint != nil {
			label = sprint.Name
		}
		ui.Warning.Printf("No job applications matched in sprint [%s].\n", label)
		return nil
	}
	fmt.Println(ui.JobTable(jobs))
	return nil
}
