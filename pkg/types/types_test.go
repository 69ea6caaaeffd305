package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestListedJobString(t *testing.T) {
	job := ListedJob{
		ID:          7,
		CompanyName: "Initech",
		Title:       strPtr("Engineer"),
		Status:      strPtr("PENDING"),
	}
	assert.Equal(t, "ID: 7 | Company: Initech | Title: Engineer | Status: PENDING", job.String())

	bare := ListedJob{ID: 8, CompanyName: "Globex"}
	assert.Equal(t, "ID: 8 | Company: Globex | Title:  | Status: ", bare.String())
}

func TestListedJobExportRow(t *testing.T) {
	tests := []struct {
		name string
		job  ListedJob
		want [6]string
	}{
		{
			name: "all fields present",
			job: ListedJob{
				Created:     "2026-08-25 10:00:00",
				CompanyName: "Initech",
				Title:       strPtr("Engineer"),
				Status:      strPtr("PENDING"),
				Link:        strPtr("https://example.com"),
				Notes:       strPtr("note"),
			},
			want: [6]string{"2026-08-25 10:00:00", "Initech", "Engineer", "PENDING", "https://example.com", "note"},
		},
		{
			name: "missing fields use placeholders",
			job: ListedJob{
				Created:     "2026-08-25 10:00:00",
				CompanyName: "Globex",
			},
			want: [6]string{"2026-08-25 10:00:00", "Globex", "N/A", "N/A", "", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.job.ExportRow())
		})
	}
}

func TestSprintString(t *testing.T) {
	open := Sprint{Name: "q3", StartDate: "2026-07-01"}
	assert.Equal(t, "q3 (Start Date: 2026-07-01, End Date: None)", open.String())

	closed := Sprint{Name: "q2", StartDate: "2026-04-01", EndDate: strPtr("2026-06-30")}
	assert.Equal(t, "q2 (Start Date: 2026-04-01, End Date: 2026-06-30)", closed.String())
}

func TestStageString(t *testing.T) {
	named := Stage{StageNumber: 2, Name: strPtr("Onsite"), Status: StageScheduled, ScheduledDate: "2026/09/01"}
	assert.Equal(t, "Stage 2: Onsite [SCHEDULED] 2026/09/01", named.String())

	anonymous := Stage{StageNumber: 1, Status: StagePassed, ScheduledDate: "2026/08/20"}
	assert.Equal(t, "Stage 1 [PASSED] 2026/08/20", anonymous.String())
}

func TestValidStageStatus(t *testing.T) {
	assert.True(t, ValidStageStatus("SCHEDULED"))
	assert.True(t, ValidStageStatus("passed"))
	assert.True(t, ValidStageStatus("Rejected"))
	assert.False(t, ValidStageStatus("HIRED"))
	assert.False(t, ValidStageStatus(""))
}

func TestErrorMessages(t *testing.T) {
	conflict := &SprintNameConflictError{Name: "q3"}
	assert.Equal(t, "There is already a sprint with name q3. Try renaming the sprint.", conflict.Error())

	noJobs := &NoJobsAvailableError{Sprint: "q3"}
	assert.Equal(t, "No job applications tracked for the current sprint [q3]", noJobs.Error())

	sheet := &SheetNameError{Msg: "bad name"}
	assert.Equal(t, "Set sheet name error: bad name", sheet.Error())
}
