package main

import (
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/fettersdev/fetters/internal/ui"
)

var openQueryFlags *queryFlags

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open a job application's link in the browser",
	RunE:  runOpen,
}

func init() {
	openQueryFlags = addQueryFlags(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	return runInteractive(func() error {
		job, err := selectJob(openQueryFlags.filter(cmd))
		if err != nil {
			return err
		}
		if job.Link == nil || *job.Link == "" {
			ui.Warning.Printf("Job application #%d for %s has no link.\n", job.ID, job.CompanyName)
			return nil
		}
		return browser.OpenURL(*job.Link)
	})
}
