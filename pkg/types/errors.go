package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for failures that carry no extra data. Call sites wrap
// these with fmt.Errorf("...: %w", err) so the source message survives.
var (
	// ErrApplicationDir means the per-user config or data directory could
	// not be resolved.
	ErrApplicationDir = errors.New("could not retrieve system application directories")

	// ErrMigration means a schema migration statement failed on open.
	ErrMigration = errors.New("failed to run migrations")

	// ErrStoreConnection means the SQLite database could not be opened.
	ErrStoreConnection = errors.New("failed to connect to SQLite database")

	// ErrConfigDeserialize means the TOML config file could not be read.
	ErrConfigDeserialize = errors.New("TOML deserialization error")

	// ErrConfigSerialize means the TOML config file could not be written.
	ErrConfigSerialize = errors.New("TOML serialization error")

	// ErrNoSprintSet means no current sprint name is configured. Commands
	// that need a current sprint tell the user to run `fetters sprint set`.
	ErrNoSprintSet = errors.New("no current sprint is set; run `fetters sprint set` first")

	// ErrPrompt means an interactive prompt failed (not a clean skip).
	ErrPrompt = errors.New("prompt error")

	// ErrXLSX means the export workbook could not be written.
	ErrXLSX = errors.New("XLSX write error")
)

// SprintNameConflictError is returned when creating a sprint whose name is
// already taken. Sprint names are unique.
type SprintNameConflictError struct {
	Name string
}

func (e *SprintNameConflictError) Error() string {
	return fmt.Sprintf("There is already a sprint with name %s. Try renaming the sprint.", e.Name)
}

// NoJobsAvailableError is returned when a command needs at least one job
// matching the query but the filtered set is empty.
type NoJobsAvailableError struct {
	Sprint string
}

func (e *NoJobsAvailableError) Error() string {
	return fmt.Sprintf("No job applications tracked for the current sprint [%s]", e.Sprint)
}

// SheetNameError is returned when the export worksheet cannot be renamed.
type SheetNameError struct {
	Msg string
}

func (e *SheetNameError) Error() string {
	return fmt.Sprintf("Set sheet name error: %s", e.Msg)
}
