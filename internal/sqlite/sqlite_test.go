// Shared helpers for the store tests. Every test opens a fresh database
// in a temp dir with the schema migrated and statuses seeded.
package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fettersdev/fetters/pkg/types"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "fetters.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Statuses().Seed())
	return db
}

// addSprint creates a sprint with start date today.
func addSprint(t *testing.T, db *DB, name string) *types.Sprint {
	t.Helper()
	sprint, err := db.Sprints().Add(types.NewSprint{
		Name:      name,
		StartDate: time.Now().Format(types.DateFormat),
	})
	require.NoError(t, err)
	return sprint
}

// addJob creates a job with the given company, title, and status name in
// the sprint.
func addJob(t *testing.T, db *DB, sprint *types.Sprint, company, titleName, statusName string) *types.Job {
	t.Helper()

	title, err := db.Titles().GetOrCreate(titleName)
	require.NoError(t, err)

	statuses, err := db.Statuses().All()
	require.NoError(t, err)
	var statusID int64
	for _, st := range statuses {
		if st.Name == statusName {
			statusID = st.ID
		}
	}
	require.NotZero(t, statusID, "unknown status %q", statusName)

	job, err := db.Jobs().Add(types.NewJob{
		CompanyName: company,
		Created:     time.Now().Format(types.TimestampFormat),
		TitleID:     title.ID,
		StatusID:    statusID,
		SprintID:    sprint.ID,
	})
	require.NoError(t, err)
	return job
}

// addStage appends a stage to the job using the next stage number.
func addStage(t *testing.T, db *DB, jobID int64, status string) *types.Stage {
	t.Helper()

	number, err := db.Stages().NextStageNumber(jobID)
	require.NoError(t, err)

	stage, err := db.Stages().Add(types.NewStage{
		JobID:         jobID,
		StageNumber:   number,
		Status:        status,
		ScheduledDate: time.Now().Format(types.StageDateFormat),
		Created:       time.Now().Format(types.TimestampFormat),
	})
	require.NoError(t, err)
	return stage
}

func strPtr(s string) *string { return &s }

func intPtr(n int64) *int64 { return &n }
