// Unit tests for sprint storage: unique names, lazy creation, partial
// updates, and the denormalized job counter.
package sqlite

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fettersdev/fetters/pkg/types"
)

func TestSprintAdd(t *testing.T) {
	db := setupTestDB(t)

	sprint := addSprint(t, db, "q3-2026")
	assert.Equal(t, "q3-2026", sprint.Name)
	assert.Nil(t, sprint.EndDate)
	assert.Zero(t, sprint.NumJobs)
}

func TestSprintAddDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	addSprint(t, db, "q3-2026")

	_, err := db.Sprints().Add(types.NewSprint{Name: "q3-2026", StartDate: "2026-08-01"})
	var conflict *types.SprintNameConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "q3-2026", conflict.Name)
	assert.Equal(t,
		"There is already a sprint with name q3-2026. Try renaming the sprint.",
		err.Error())
}

func TestSprintGetByName(t *testing.T) {
	db := setupTestDB(t)
	want := addSprint(t, db, "q3-2026")

	got, err := db.Sprints().GetByName("q3-2026")
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)

	_, err = db.Sprints().GetByName("missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSprintGetOrCreateByName(t *testing.T) {
	db := setupTestDB(t)

	created, err := db.Sprints().GetOrCreateByName("fresh")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEmpty(t, created.StartDate)

	// A second call returns the same row instead of creating another.
	again, err := db.Sprints().GetOrCreateByName("fresh")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)

	all, err := db.Sprints().All()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSprintUpdate(t *testing.T) {
	db := setupTestDB(t)
	sprint := addSprint(t, db, "before")

	end := "2026-09-30"
	endPtr := &end
	updated, err := db.Sprints().Update(sprint.ID, types.SprintUpdate{
		Name:    strPtr("after"),
		EndDate: &endPtr,
	})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Name)
	require.NotNil(t, updated.EndDate)
	assert.Equal(t, "2026-09-30", *updated.EndDate)

	// Clearing the end date is distinct from leaving it untouched.
	var cleared *string
	updated, err = db.Sprints().Update(sprint.ID, types.SprintUpdate{EndDate: &cleared})
	require.NoError(t, err)
	assert.Nil(t, updated.EndDate)
}

func TestSprintUpdateRenameConflict(t *testing.T) {
	db := setupTestDB(t)
	addSprint(t, db, "taken")
	sprint := addSprint(t, db, "other")

	_, err := db.Sprints().Update(sprint.ID, types.SprintUpdate{Name: strPtr("taken")})
	var conflict *types.SprintNameConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "taken", conflict.Name)
}

func TestSprintIncrementDecrement(t *testing.T) {
	db := setupTestDB(t)
	sprint := addSprint(t, db, "counters")

	require.NoError(t, db.Sprints().Increment(sprint.ID))
	require.NoError(t, db.Sprints().Increment(sprint.ID))
	require.NoError(t, db.Sprints().Decrement(sprint.ID))

	got, err := db.Sprints().Get(sprint.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.NumJobs)
}

func TestSprintAll(t *testing.T) {
	db := setupTestDB(t)
	addSprint(t, db, "first")
	addSprint(t, db, "second")

	all, err := db.Sprints().All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "first", all[0].Name)
	assert.Equal(t, "second", all[1].Name)
}
