package types

// Status is one of the seven seeded application-status labels.
type Status struct {
	ID   int64
	Name string
}

// DefaultStatuses are written to the statuses table on first run, in this
// order. Seeding is idempotent.
var DefaultStatuses = []string{
	"GHOSTED",
	"HIRED",
	"IN PROGRESS",
	"NOT HIRING ANYMORE",
	"OFFER RECEIVED",
	"PENDING",
	"REJECTED",
}
