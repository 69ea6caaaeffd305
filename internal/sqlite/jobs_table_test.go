// Unit tests for job storage: the sprint job counter staying in step with
// inserts, deletes, and sprint moves, the filtered list query, and the
// insights aggregations.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fettersdev/fetters/pkg/types"
)

func sprintNumJobs(t *testing.T, db *DB, id int64) int64 {
	t.Helper()
	sprint, err := db.Sprints().Get(id)
	require.NoError(t, err)
	return sprint.NumJobs
}

func TestJobAddIncrementsCounter(t *testing.T) {
	db := setupTestDB(t)
	sprint := addSprint(t, db, "counting")

	addJob(t, db, sprint, "Initech", "Engineer", "PENDING")
	addJob(t, db, sprint, "Globex", "Engineer", "PENDING")

	assert.Equal(t, int64(2), sprintNumJobs(t, db, sprint.ID))
}

func TestJobDeleteDecrementsCounter(t *testing.T) {
	db := setupTestDB(t)
	sprint := addSprint(t, db, "counting")
	job := addJob(t, db, sprint, "Initech", "Engineer", "PENDING")

	deleted, err := db.Jobs().Delete(job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, deleted.ID)
	assert.Zero(t, sprintNumJobs(t, db, sprint.ID))
}

func TestJobDeleteCascadesStages(t *testing.T) {
	db := setupTestDB(t)
	sprint := addSprint(t, db, "cascade")
	job := addJob(t, db, sprint, "Initech", "Engineer", "IN PROGRESS")
	addStage(t, db, job.ID, types.StageScheduled)
	addStage(t, db, job.ID, types.StageScheduled)

	_, err := db.Jobs().Delete(job.ID)
	require.NoError(t, err)

	stages, err := db.Stages().ForJob(job.ID)
	require.NoError(t, err)
	assert.Empty(t, stages)
}

func TestJobUpdateMovesCounterBetweenSprints(t *testing.T) {
	db := setupTestDB(t)
	from := addSprint(t, db, "from")
	to := addSprint(t, db, "to")
	job := addJob(t, db, from, "Initech", "Engineer", "PENDING")

	_, err := db.Jobs().Update(job.ID, types.JobUpdate{SprintID: &to.ID})
	require.NoError(t, err)

	assert.Zero(t, sprintNumJobs(t, db, from.ID))
	assert.Equal(t, int64(1), sprintNumJobs(t, db, to.ID))
}

func TestJobUpdateSameSprintKeepsCounter(t *testing.T) {
	db := setupTestDB(t)
	sprint := addSprint(t, db, "stay")
	job := addJob(t, db, sprint, "Initech", "Engineer", "PENDING")

	_, err := db.Jobs().Update(job.ID, types.JobUpdate{
		CompanyName: strPtr("Initrode"),
		SprintID:    &sprint.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), sprintNumJobs(t, db, sprint.ID))
}

func TestJobUpdatePartialFields(t *testing.T) {
	db := setupTestDB(t)
	sprint := addSprint(t, db, "partial")
	job := addJob(t, db, sprint, "Initech", "Engineer", "PENDING")

	updated, err := db.Jobs().Update(job.ID, types.JobUpdate{
		Link:  strPtr("https://example.com/posting"),
		Notes: strPtr("referred by a friend"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Initech", updated.CompanyName)
	require.NotNil(t, updated.Link)
	assert.Equal(t, "https://example.com/posting", *updated.Link)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "referred by a friend", *updated.Notes)

	// An empty update is a no-op.
	same, err := db.Jobs().Update(job.ID, types.JobUpdate{})
	require.NoError(t, err)
	assert.Equal(t, updated, same)
}

func TestJobListScopesToCurrentSprint(t *testing.T) {
	db := setupTestDB(t)
	current := addSprint(t, db, "current")
	other := addSprint(t, db, "other")
	addJob(t, db, current, "Initech", "Engineer", "PENDING")
	addJob(t, db, other, "Globex", "Engineer", "PENDING")

	jobs, err := db.Jobs().List(types.Filter{}, current)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Initech", jobs[0].CompanyName)
}

func TestJobListSprintFilterSpansAllSprints(t *testing.T) {
	db := setupTestDB(t)
	current := addSprint(t, db, "summer-2026")
	other := addSprint(t, db, "winter-2026")
	addJob(t, db, current, "Initech", "Engineer", "PENDING")
	addJob(t, db, other, "Globex", "Engineer", "PENDING")

	// Substring match on the sprint name ignores the current sprint scope.
	jobs, err := db.Jobs().List(types.Filter{Sprint: strPtr("2026")}, nil)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}

func TestJobListSubstringFilters(t *testing.T) {
	db := setupTestDB(t)
	sprint := addSprint(t, db, "filters")
	addJob(t, db, sprint, "Initech", "Software Engineer", "PENDING")
	addJob(t, db, sprint, "Globex", "Data Engineer", "REJECTED")
	addJob(t, db, sprint, "Initrode", "Product Manager", "PENDING")

	tests := []struct {
		name   string
		filter types.Filter
		want   []string
	}{
		{"company substring", types.Filter{Company: strPtr("Ini")}, []string{"Initech", "Initrode"}},
		{"title substring", types.Filter{Title: strPtr("Engineer")}, []string{"Initech", "Globex"}},
		{"status substring", types.Filter{Status: strPtr("REJ")}, []string{"Globex"}},
		{"combined filters", types.Filter{Company: strPtr("Ini"), Status: strPtr("PENDING"), Title: strPtr("Engineer")}, []string{"Initech"}},
		{"no match", types.Filter{Company: strPtr("Hooli")}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := db.Jobs().List(tt.filter, sprint)
			require.NoError(t, err)
			var got []string
			for _, j := range jobs {
				got = append(got, j.CompanyName)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJobListEscapesLikeMetacharacters(t *testing.T) {
	db := setupTestDB(t)
	sprint := addSprint(t, db, "escaping")
	addJob(t, db, sprint, "100% Remote Inc", "Engineer", "PENDING")
	addJob(t, db, sprint, "Initech", "Engineer", "PENDING")

	// A literal % in the filter must not act as a wildcard.
	jobs, err := db.Jobs().List(types.Filter{Company: strPtr("100%")}, sprint)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "100% Remote Inc", jobs[0].CompanyName)

	jobs, err = db.Jobs().List(types.Filter{Company: strPtr("%Initech%")}, sprint)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestJobListStagesFilter(t *testing.T) {
	db := setupTestDB(t)
	sprint := addSprint(t, db, "stages")
	none := addJob(t, db, sprint, "NoStages", "Engineer", "PENDING")
	one := addJob(t, db, sprint, "OneStage", "Engineer", "PENDING")
	two := addJob(t, db, sprint, "TwoStages", "Engineer", "PENDING")
	addStage(t, db, one.ID, types.StageScheduled)
	addStage(t, db, two.ID, types.StageScheduled)
	addStage(t, db, two.ID, types.StagePassed)

	tests := []struct {
		name   string
		stages *int64
		want   []string
	}{
		{"unfiltered keeps all", nil, []string{"NoStages", "OneStage", "TwoStages"}},
		{"zero means any stages", intPtr(0), []string{"OneStage", "TwoStages"}},
		{"exact count", intPtr(2), []string{"TwoStages"}},
		{"count with no match", intPtr(5), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := db.Jobs().List(types.Filter{Stages: tt.stages}, sprint)
			require.NoError(t, err)
			var got []string
			for _, j := range jobs {
				got = append(got, j.CompanyName)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	// The stage count column is nil for stageless jobs, not zero.
	jobs, err := db.Jobs().List(types.Filter{}, sprint)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	for _, j := range jobs {
		switch j.ID {
		case none.ID:
			assert.Nil(t, j.Stages)
		case one.ID:
			require.NotNil(t, j.Stages)
			assert.Equal(t, int64(1), *j.Stages)
		case two.ID:
			require.NotNil(t, j.Stages)
			assert.Equal(t, int64(2), *j.Stages)
		}
	}
}

func TestCountPerStatus(t *testing.T) {
	db := setupTestDB(t)
	sprint := addSprint(t, db, "insights")
	other := addSprint(t, db, "elsewhere")
	addJob(t, db, sprint, "A", "Engineer", "PENDING")
	addJob(t, db, sprint, "B", "Engineer", "PENDING")
	addJob(t, db, sprint, "C", "Engineer", "REJECTED")
	addJob(t, db, sprint, "D", "Engineer", "HIRED")
	addJob(t, db, other, "E", "Engineer", "PENDING")

	rows, err := db.Jobs().CountPerStatus(sprint)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Ordered by status name.
	assert.Equal(t, types.InsightRow{
		Label: "HIRED", Count: 1,
		SprintPercentage: "25.00%", OverallPercentage: "20.00%",
	}, rows[0])
	assert.Equal(t, types.InsightRow{
		Label: "PENDING", Count: 2,
		SprintPercentage: "50.00%", OverallPercentage: "40.00%",
	}, rows[1])
	assert.Equal(t, types.InsightRow{
		Label: "REJECTED", Count: 1,
		SprintPercentage: "25.00%", OverallPercentage: "20.00%",
	}, rows[2])
}

func TestCountPerSprint(t *testing.T) {
	db := setupTestDB(t)
	current := addSprint(t, db, "alpha")
	other := addSprint(t, db, "beta")
	addJob(t, db, current, "A", "Engineer", "PENDING")
	addJob(t, db, other, "B", "Engineer", "PENDING")
	addJob(t, db, other, "C", "Engineer", "PENDING")

	rows, err := db.Jobs().CountPerSprint(current)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "alpha", rows[0].Label)
	assert.Equal(t, "100.00%", rows[0].SprintPercentage)

	// Shares divide by the current sprint's total, so another sprint with
	// more jobs exceeds 100%.
	assert.Equal(t, "beta", rows[1].Label)
	assert.Equal(t, "200.00%", rows[1].SprintPercentage)
	assert.Equal(t, "66.67%", rows[1].OverallPercentage)
}

func TestInsightsEmptyWhenNoJobs(t *testing.T) {
	db := setupTestDB(t)
	sprint := addSprint(t, db, "empty")

	perStatus, err := db.Jobs().CountPerStatus(sprint)
	require.NoError(t, err)
	assert.Empty(t, perStatus)

	perSprint, err := db.Jobs().CountPerSprint(sprint)
	require.NoError(t, err)
	assert.Empty(t, perSprint)
}

func TestInsightsEmptyWhenSprintHasNoJobs(t *testing.T) {
	db := setupTestDB(t)
	current := addSprint(t, db, "bare")
	other := addSprint(t, db, "busy")
	addJob(t, db, other, "A", "Engineer", "PENDING")

	// The current sprint total is zero, so both views come back empty
	// rather than dividing by zero.
	perStatus, err := db.Jobs().CountPerStatus(current)
	require.NoError(t, err)
	assert.Empty(t, perStatus)

	perSprint, err := db.Jobs().CountPerSprint(current)
	require.NoError(t, err)
	assert.Empty(t, perSprint)
}
