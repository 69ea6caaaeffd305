package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fettersdev/fetters/internal/prompt"
	"github.com/fettersdev/fetters/internal/ui"
	"github.com/fettersdev/fetters/pkg/types"
)

// previewStageID marks the not-yet-inserted stage in an add preview.
const previewStageID = -1

var stageCmd = &cobra.Command{
	Use:   "stage",
	Short: "Manage a job application's interview stages",
}

var (
	stageAddQueryFlags    *queryFlags
	stageDeleteQueryFlags *queryFlags
	stageTreeQueryFlags   *queryFlags
	stageUpdateQueryFlags *queryFlags
)

var stageAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an interview stage to a job application",
	Long: `Add an interview stage. The new stage is appended after the job's
existing stages and shown in a preview tree before anything is saved.`,
	RunE: runStageAdd,
}

var stageDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an interview stage from a job application",
	Long: `Delete an interview stage. The remaining stages are renumbered so
they stay contiguous from 1.`,
	RunE: runStageDelete,
}

var stageTreeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show a job application's interview stages as a tree",
	RunE:  runStageTree,
}

var stageUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update an interview stage",
	RunE:  runStageUpdate,
}

func init() {
	stageAddQueryFlags = addQueryFlags(stageAddCmd)
	stageDeleteQueryFlags = addQueryFlags(stageDeleteCmd)
	stageTreeQueryFlags = addQueryFlags(stageTreeCmd)
	stageUpdateQueryFlags = addQueryFlags(stageUpdateCmd)

	stageCmd.AddCommand(stageAddCmd)
	stageCmd.AddCommand(stageDeleteCmd)
	stageCmd.AddCommand(stageTreeCmd)
	stageCmd.AddCommand(stageUpdateCmd)
}

func runStageAdd(cmd *cobra.Command, args []string) error {
	return runInteractive(func() error {
		job, err := selectJob(stageAddQueryFlags.filter(cmd))
		if err != nil {
			return err
		}

		name, err := prompt.OptionalText("Stage name (optional)", "")
		if err != nil {
			return err
		}
		statusChoice, err := prompt.Choose("Stage status", types.StageStatuses)
		if err != nil {
			return err
		}
		date, err := prompt.Date("Scheduled date", types.StageDateFormat,
			time.Now().Format(types.StageDateFormat))
		if err != nil {
			return err
		}
		notes, err := prompt.OptionalText("Notes (optional)", "")
		if err != nil {
			return err
		}

		number, err := store.Stages().NextStageNumber(job.ID)
		if err != nil {
			return err
		}
		stages, err := store.Stages().ForJob(job.ID)
		if err != nil {
			return err
		}

		preview := append(stages, types.Stage{
			ID:            previewStageID,
			JobID:         job.ID,
			StageNumber:   number,
			Name:          name,
			Status:        types.StageStatuses[statusChoice],
			ScheduledDate: date,
			Notes:         notes,
		})
		fmt.Println(ui.StageTree(job, preview, previewStageID, ui.HighlightGreen))

		ok, err := prompt.Confirm("Add this stage?", true)
		if err != nil {
			return err
		}
		if !ok {
			ui.Warning.Println("Aborted, nothing changed.")
			return nil
		}

		stage, err := store.Stages().Add(types.NewStage{
			JobID:         job.ID,
			StageNumber:   number,
			Name:          name,
			Status:        types.StageStatuses[statusChoice],
			ScheduledDate: date,
			Notes:         notes,
			Created:       time.Now().Format(types.TimestampFormat),
		})
		if err != nil {
			return err
		}
		ui.Success.Printf("Added stage %d to job application #%d.\n", stage.StageNumber, job.ID)
		return nil
	})
}

// chooseStage loads a job's stages and has the user pick one. Returns nil
// stages when the job has none.
func chooseStage(job *types.ListedJob, title string) ([]types.Stage, int, error) {
	stages, err := store.Stages().ForJob(job.ID)
	if err != nil {
		return nil, 0, err
	}
	if len(stages) == 0 {
		return nil, 0, nil
	}

	labels := make([]string, 0, len(stages))
	for i := range stages {
		labels = append(labels, stages[i].String())
	}
	choice, err := prompt.Choose(title, labels)
	if err != nil {
		return nil, 0, err
	}
	return stages, choice, nil
}

func runStageDelete(cmd *cobra.Command, args []string) error {
	return runInteractive(func() error {
		job, err := selectJob(stageDeleteQueryFlags.filter(cmd))
		if err != nil {
			return err
		}

		stages, choice, err := chooseStage(job, "Stage to delete")
		if err != nil {
			return err
		}
		if stages == nil {
			ui.Warning.Printf("Job application #%d for %s has no interview stages.\n", job.ID, job.CompanyName)
			return nil
		}
		target := stages[choice]

		fmt.Println(ui.StageTree(job, stages, target.ID, ui.HighlightRed))
		ok, err := prompt.Confirm("Delete the highlighted stage?", false)
		if err != nil {
			return err
		}
		if !ok {
			ui.Warning.Println("Aborted, nothing changed.")
			return nil
		}

		deleted, err := store.Stages().Delete(target.ID)
		if err != nil {
			return err
		}
		ui.Success.Printf("Deleted stage %d from job application #%d.\n", deleted.StageNumber, job.ID)
		return nil
	})
}

func runStageTree(cmd *cobra.Command, args []string) error {
	return runInteractive(func() error {
		// Default to jobs that have at least one stage.
		filter := stageTreeQueryFlags.filter(cmd)
		if filter.Stages == nil {
			anyStages := int64(0)
			filter.Stages = &anyStages
		}

		job, err := selectJob(filter)
		if err != nil {
			return err
		}
		stages, err := store.Stages().ForJob(job.ID)
		if err != nil {
			return err
		}
		fmt.Println(ui.StageTree(job, stages, 0, ui.HighlightNone))
		return nil
	})
}

// Field labels offered by the stage update prompt, in display order.
var stageUpdateFields = []string{"Name", "Status", "Scheduled Date", "Notes"}

func runStageUpdate(cmd *cobra.Command, args []string) error {
	return runInteractive(func() error {
		job, err := selectJob(stageUpdateQueryFlags.filter(cmd))
		if err != nil {
			return err
		}

		stages, choice, err := chooseStage(job, "Stage to update")
		if err != nil {
			return err
		}
		if stages == nil {
			ui.Warning.Printf("Job application #%d for %s has no interview stages.\n", job.ID, job.CompanyName)
			return nil
		}
		target := &stages[choice]

		chosen, err := prompt.ChooseMany("Fields to update", stageUpdateFields)
		if err != nil {
			return err
		}
		if len(chosen) == 0 {
			ui.Warning.Println("No fields selected, nothing changed.")
			return nil
		}

		var changes types.StageUpdate
		for _, idx := range chosen {
			switch stageUpdateFields[idx] {
			case "Name":
				name, err := prompt.OptionalText("Stage name", orFlat(target.Name))
				if err != nil {
					return err
				}
				changes.Name = name
			case "Status":
				statusChoice, err := prompt.Choose("Stage status", types.StageStatuses)
				if err != nil {
					return err
				}
				changes.Status = &types.StageStatuses[statusChoice]
			case "Scheduled Date":
				date, err := prompt.Date("Scheduled date", types.StageDateFormat, target.ScheduledDate)
				if err != nil {
					return err
				}
				changes.ScheduledDate = &date
			case "Notes":
				notes, err := prompt.OptionalText("Notes", orFlat(target.Notes))
				if err != nil {
					return err
				}
				changes.Notes = notes
			}
		}

		// Preview the tree with the changes applied before saving them.
		if changes.Name != nil {
			target.Name = changes.Name
		}
		if changes.Status != nil {
			target.Status = *changes.Status
		}
		if changes.ScheduledDate != nil {
			target.ScheduledDate = *changes.ScheduledDate
		}
		if changes.Notes != nil {
			target.Notes = changes.Notes
		}
		fmt.Println(ui.StageTree(job, stages, target.ID, ui.HighlightGreen))

		ok, err := prompt.Confirm("Save these changes?", true)
		if err != nil {
			return err
		}
		if !ok {
			ui.Warning.Println("Aborted, nothing changed.")
			return nil
		}

		updated, err := store.Stages().Update(target.ID, changes)
		if err != nil {
			return err
		}
		ui.Success.Printf("Updated stage %d of job application #%d.\n", updated.StageNumber, job.ID)
		return nil
	})
}
