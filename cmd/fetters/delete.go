package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fettersdev/fetters/internal/prompt"
	"github.com/fettersdev/fetters/internal/ui"
)

var deleteQueryFlags *queryFlags

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a tracked job application",
	Long: `Delete a job application and its interview stages. The filter flags
narrow the candidates; the deletion is confirmed before anything is removed.`,
	RunE: runDelete,
}

func init() {
	deleteQueryFlags = addQueryFlags(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	return runInteractive(func() error {
		job, err := selectJob(deleteQueryFlags.filter(cmd))
		if err != nil {
			return err
		}

		ok, err := prompt.Confirm(fmt.Sprintf("Delete %s?", job.String()), false)
		if err != nil {
			return err
		}
		if !ok {
			ui.Warning.Println("Aborted, nothing changed.")
			return nil
		}

		deleted, err := store.Jobs().Delete(job.ID)
		if err != nil {
			return err
		}
		ui.Success.Printf("Deleted job application #%d for %s.\n", deleted.ID, deleted.CompanyName)
		return nil
	})
}
