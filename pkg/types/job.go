package types

import "fmt"

// Job is a tracked application as stored in the jobs table.
type Job struct {
	ID          int64
	Created     string
	CompanyName string
	TitleID     int64
	StatusID    int64
	Link        *string
	Notes       *string
	SprintID    int64
}

// NewJob holds the fields for inserting a job row.
type NewJob struct {
	CompanyName string
	Created     string
	TitleID     int64
	StatusID    int64
	Link        *string
	Notes       *string
	SprintID    int64
}

// JobUpdate is a partial job record. Nil fields are left untouched.
type JobUpdate struct {
	CompanyName *string
	TitleID     *int64
	StatusID    *int64
	Link        *string
	Notes       *string
	SprintID    *int64
}

// ListedJob is the flattened row produced by the list query: the job joined
// with its title, status, and a count of interview stages. Stages is nil
// when the job has no stages; the stages filter keys off that encoding.
type ListedJob struct {
	ID          int64
	Created     string
	CompanyName string
	Title       *string
	Status      *string
	Stages      *int64
	Link        *string
	Notes       *string
}

func (j *ListedJob) String() string {
	return fmt.Sprintf(
		"ID: %d | Company: %s | Title: %s | Status: %s",
		j.ID, j.CompanyName, orEmpty(j.Title), orEmpty(j.Status),
	)
}

// ExportRow flattens the job into the six spreadsheet columns:
// created, company, title, status, link, notes. Missing title and status
// become "N/A"; missing link and notes become empty strings.
func (j *ListedJob) ExportRow() [6]string {
	return [6]string{
		j.Created,
		j.CompanyName,
		orDefault(j.Title, "N/A"),
		orDefault(j.Status, "N/A"),
		orEmpty(j.Link),
		orEmpty(j.Notes),
	}
}

func orEmpty(s *string) string {
	return orDefault(s, "")
}

func orDefault(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
