package main

import (
	"github.com/spf13/cobra"

	"github.com/fettersdev/fetters/internal/export"
	"github.com/fettersdev/fetters/internal/ui"
	"github.com/fettersdev/fetters/pkg/types"
)

var (
	exportDir      string
	exportFilename string
	exportSprint   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a sprint's job applications to an XLSX spreadsheet",
	Long: `Export the job applications of a sprint to a spreadsheet with one
row per application, colored by status. Defaults to the current sprint
and a dated filename in the working directory.`,
	RunE: runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVarP(&exportDir, "directory", "d", ".", "directory to write the spreadsheet into")
	f.StringVarP(&exportFilename, "filename", "f", "", "spreadsheet filename (default: dated name for the sprint)")
	f.StringVarP(&exportSprint, "sprint", "s", "", "sprint to export (default: current sprint)")
}

func runExport(cmd *cobra.Command, args []string) error {
	sprintName := exportSprint
	if sprintName == "" {
		sprintName = cfg.CurrentSprintName()
	}
	if sprintName == "" {
		return types.ErrNoSprintSet
	}

	jobs, _, err := listJobs(types.Filter{Sprint: &sprintName})
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return &types.NoJobsAvailableError{Sprint: sprintName}
	}

	filename := export.DefaultFilename(&sprintName)
	if exportFilename != "" {
		filename = export.EnsureExtension(exportFilename)
	}

	path, err := export.WriteWorkbook(exportDir, filename, &sprintName, jobs)
	if err != nil {
		return err
	}
	ui.Success.Printf("Exported %d job applications to %s.\n", len(jobs), path)
	return nil
}
