package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fettersdev/fetters/pkg/types"
)

// SprintStore owns the sprints table. num_jobs is denormalized and is
// mutated only through Increment and Decrement, which the job store calls
// inside the same transaction as the corresponding insert or delete.
type SprintStore struct {
	db *sql.DB
}

// Add inserts a sprint. Sprint names are unique; a duplicate name returns
// *types.SprintNameConflictError.
func (s *SprintStore) Add(ns types.NewSprint) (*types.Sprint, error) {
	var existing int64
	err := s.db.QueryRow("SELECT id FROM sprints WHERE name = ?", ns.Name).Scan(&existing)
	if err == nil {
		return nil, &types.SprintNameConflictError{Name: ns.Name}
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("checking sprint name %q: %w", ns.Name, err)
	}

	res, err := s.db.Exec(
		"INSERT INTO sprints (name, start_date, end_date, num_jobs) VALUES (?, ?, ?, ?)",
		ns.Name, ns.StartDate, ns.EndDate, ns.NumJobs,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, &types.SprintNameConflictError{Name: ns.Name}
		}
		return nil, fmt.Errorf("inserting sprint %q: %w", ns.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting sprint id: %w", err)
	}
	return s.Get(id)
}

// Get returns the sprint with the given ID.
func (s *SprintStore) Get(id int64) (*types.Sprint, error) {
	return scanSprint(s.db.QueryRow(
		"SELECT id, name, start_date, end_date, num_jobs FROM sprints WHERE id = ?", id,
	))
}

// GetByName returns the sprint with the given name, or sql.ErrNoRows
// wrapped if none exists.
func (s *SprintStore) GetByName(name string) (*types.Sprint, error) {
	return scanSprint(s.db.QueryRow(
		"SELECT id, name, start_date, end_date, num_jobs FROM sprints WHERE name = ?", name,
	))
}

// GetOrCreateByName returns the sprint with the given name, creating it
// with start_date = today and num_jobs = 0 if it does not exist. This is
// the lazy-creation path used by the current-sprint resolver.
func (s *SprintStore) GetOrCreateByName(name string) (*types.Sprint, error) {
	sprint, err := s.GetByName(name)
	if err == nil {
		return sprint, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return s.Add(types.NewSprint{
		Name:      name,
		StartDate: time.Now().Format(types.DateFormat),
	})
}

// Update writes only the supplied fields of a sprint. A renamed sprint
// keeps name uniqueness; a conflicting rename returns
// *types.SprintNameConflictError.
func (s *SprintStore) Update(id int64, changes types.SprintUpdate) (*types.Sprint, error) {
	var sets []string
	var args []any

	if changes.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *changes.Name)
	}
	if changes.StartDate != nil {
		sets = append(sets, "start_date = ?")
		args = append(args, *changes.StartDate)
	}
	if changes.EndDate != nil {
		sets = append(sets, "end_date = ?")
		args = append(args, *changes.EndDate)
	}

	if len(sets) > 0 {
		args = append(args, id)
		_, err := s.db.Exec(
			"UPDATE sprints SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...,
		)
		if err != nil {
			if changes.Name != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
				return nil, &types.SprintNameConflictError{Name: *changes.Name}
			}
			return nil, fmt.Errorf("updating sprint %d: %w", id, err)
		}
	}
	return s.Get(id)
}

// All returns every sprint in insertion order.
func (s *SprintStore) All() ([]types.Sprint, error) {
	rows, err := s.db.Query("SELECT id, name, start_date, end_date, num_jobs FROM sprints ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying sprints: %w", err)
	}
	defer rows.Close()

	var sprints []types.Sprint
	for rows.Next() {
		var sp types.Sprint
		var endDate sql.NullString
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.StartDate, &endDate, &sp.NumJobs); err != nil {
			return nil, fmt.Errorf("scanning sprint: %w", err)
		}
		if endDate.Valid {
			sp.EndDate = &endDate.String
		}
		sprints = append(sprints, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sprints: %w", err)
	}
	return sprints, nil
}

// Increment bumps num_jobs for the sprint by one, outside any
// transaction. The job store does not use this: its insert path adjusts
// the counter through adjustNumJobs on its own transaction.
func (s *SprintStore) Increment(id int64) error {
	return adjustNumJobs(s.db, id, +1)
}

// Decrement lowers num_jobs for the sprint by one, outside any
// transaction. The job store does not use this: its delete path adjusts
// the counter through adjustNumJobs on its own transaction.
func (s *SprintStore) Decrement(id int64) error {
	return adjustNumJobs(s.db, id, -1)
}

// adjustNumJobs applies a counter delta through the given execer so the
// job store can run it on its own transaction.
func adjustNumJobs(e execer, id, delta int64) error {
	_, err := e.Exec("UPDATE sprints SET num_jobs = num_jobs + ? WHERE id = ?", delta, id)
	if err != nil {
		return fmt.Errorf("adjusting num_jobs for sprint %d: %w", id, err)
	}
	return nil
}

// scanSprint hydrates a sprint from a single row.
func scanSprint(row *sql.Row) (*types.Sprint, error) {
	var sp types.Sprint
	var endDate sql.NullString
	if err := row.Scan(&sp.ID, &sp.Name, &sp.StartDate, &endDate, &sp.NumJobs); err != nil {
		return nil, fmt.Errorf("scanning sprint: %w", err)
	}
	if endDate.Valid {
		sp.EndDate = &endDate.String
	}
	return &sp, nil
}
