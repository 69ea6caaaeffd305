package types

import "fmt"

// Date layouts used across the store. Sprint and job dates use dashes;
// stage dates use slashes. Both are stored as TEXT in SQLite.
const (
	DateFormat      = "2006-01-02"
	TimestampFormat = "2006-01-02 15:04:05"
	StageDateFormat = "2006/01/02"
)

// Sprint is a named, date-bounded grouping of job applications.
type Sprint struct {
	ID        int64
	Name      string
	StartDate string
	EndDate   *string
	NumJobs   int64
}

func (s *Sprint) String() string {
	end := "None"
	if s.EndDate != nil {
		end = *s.EndDate
	}
	return fmt.Sprintf("%s (Start Date: %s, End Date: %s)", s.Name, s.StartDate, end)
}

// NewSprint holds the fields for inserting a sprint row.
type NewSprint struct {
	Name      string
	StartDate string
	EndDate   *string
	NumJobs   int64
}

// SprintUpdate is a partial sprint record. Nil fields are left untouched.
// EndDate distinguishes "not supplied" (nil) from "clear the end date"
// (pointer to nil), mirroring the two-level option on the original column.
type SprintUpdate struct {
	Name      *string
	StartDate *string
	EndDate   **string
}
