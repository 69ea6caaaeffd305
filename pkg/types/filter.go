package types

// Filter narrows the list query. All string fields are substring matches
// against the joined column; nil fields are ignored.
//
// Stages filters on the per-job stage count after the database returns
// rows: 0 retains jobs with any stages, N >= 1 retains jobs with exactly
// N stages.
type Filter struct {
	Company *string
	Link    *string
	Notes   *string
	Sprint  *string
	Status  *string
	Title   *string
	Stages  *int64
}

// InsightRow is one line of the insights view: a label (status or sprint
// name), a job count, and the count as percentages of the current sprint's
// total and of all jobs across sprints. Percentages are pre-formatted with
// two decimals and a % suffix.
type InsightRow struct {
	Label             string
	Count             int64
	SprintPercentage  string
	OverallPercentage string
}
