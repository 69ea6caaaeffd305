package types

// Title is an interned job-title string, stored once and referenced by ID.
type Title struct {
	ID   int64
	Name string
}
