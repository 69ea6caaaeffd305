package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/fettersdev/fetters/pkg/types"
)

// StatusStore owns the statuses table: the seeded catalog of the seven
// application-status labels. No update or delete operations exist.
type StatusStore struct {
	db *sql.DB
}

// Seed inserts each default status if a row with that name is not already
// present. Idempotent: repeated calls leave exactly seven rows.
func (s *StatusStore) Seed() error {
	for _, name := range types.DefaultStatuses {
		var id int64
		err := s.db.QueryRow("SELECT id FROM statuses WHERE name = ?", name).Scan(&id)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("looking up status %q: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO statuses (name) VALUES (?)", name); err != nil {
			return fmt.Errorf("seeding status %q: %w", name, err)
		}
	}
	return nil
}

// All returns every status row in insertion order.
func (s *StatusStore) All() ([]types.Status, error) {
	rows, err := s.db.Query("SELECT id, name FROM statuses ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying statuses: %w", err)
	}
	defer rows.Close()

	var statuses []types.Status
	for rows.Next() {
		var st types.Status
		if err := rows.Scan(&st.ID, &st.Name); err != nil {
			return nil, fmt.Errorf("scanning status: %w", err)
		}
		statuses = append(statuses, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating statuses: %w", err)
	}
	return statuses, nil
}

// Get returns the status with the given ID.
func (s *StatusStore) Get(id int64) (*types.Status, error) {
	var st types.Status
	err := s.db.QueryRow("SELECT id, name FROM statuses WHERE id = ?", id).
		Scan(&st.ID, &st.Name)
	if err != nil {
		return nil, fmt.Errorf("getting status %d: %w", id, err)
	}
	return &st, nil
}
