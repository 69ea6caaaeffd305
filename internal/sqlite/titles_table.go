package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/fettersdev/fetters/pkg/types"
)

// TitleStore owns the titles table. Titles are interned: a name is stored
// once and referenced by ID, created on first use and never deleted.
type TitleStore struct {
	db *sql.DB
}

// GetOrCreate inserts the title if no row with that name exists and
// returns the row, pre-existing or new.
func (t *TitleStore) GetOrCreate(name string) (*types.Title, error) {
	if _, err := t.db.Exec("INSERT OR IGNORE INTO titles (name) VALUES (?)", name); err != nil {
		return nil, fmt.Errorf("interning title %q: %w", name, err)
	}

	var title types.Title
	err := t.db.QueryRow("SELECT id, name FROM titles WHERE name = ?", name).
		Scan(&title.ID, &title.Name)
	if err != nil {
		return nil, fmt.Errorf("getting title %q: %w", name, err)
	}
	return &title, nil
}

// Get returns the title with the given ID.
func (t *TitleStore) Get(id int64) (*types.Title, error) {
	var title types.Title
	err := t.db.QueryRow("SELECT id, name FROM titles WHERE id = ?", id).
		Scan(&title.ID, &title.Name)
	if err != nil {
		return nil, fmt.Errorf("getting title %d: %w", id, err)
	}
	return &title, nil
}

// All returns every title row in insertion order.
func (t *TitleStore) All() ([]types.Title, error) {
	rows, err := t.db.Query("SELECT id, name FROM titles ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying titles: %w", err)
	}
	defer rows.Close()

	var titles []types.Title
	for rows.Next() {
		var title types.Title
		if err := rows.Scan(&title.ID, &title.Name); err != nil {
			return nil, fmt.Errorf("scanning title: %w", err)
		}
		titles = append(titles, title)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating titles: %w", err)
	}
	return titles, nil
}
