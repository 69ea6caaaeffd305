package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fettersdev/fetters/internal/ui"
	"github.com/fettersdev/fetters/pkg/types"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show aggregate counts for the current sprint and overall",
	Long: `Show two breakdowns: job applications per status within the current
sprint, and job applications per sprint across the whole database. Each
row carries its share of the current sprint and of all applications.`,
	RunE: runInsights,
}

func runInsights(cmd *cobra.Command, args []string) error {
	sprint, err := currentSprint()
	if err != nil {
		return err
	}

	perStatus, err := store.Jobs().CountPerStatus(sprint)
	if err != nil {
		return err
	}
	perSprint, err := store.Jobs().CountPerSprint(sprint)
	if err != nil {
		return err
	}
	if len(perStatus) == 0 && len(perSprint) == 0 {
		return &types.NoJobsAvailableError{Sprint: sprint.Name}
	}

	fmt.Println(ui.InsightTable(fmt.Sprintf("Statuses in sprint %s", sprint.Name), perStatus))
	fmt.Println(ui.InsightTable("Jobs per sprint", perSprint))
	return nil
}
