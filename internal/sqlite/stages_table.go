package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/fettersdev/fetters/pkg/types"
)

// StageStore owns the interview_stages table. Stage numbers for a job are
// kept contiguous starting at 1: additions append via NextStageNumber and
// deletions renumber the remainder in the same transaction.
type StageStore struct {
	db *sql.DB
}

// Add inserts a stage. The caller supplies StageNumber from
// NextStageNumber so additions always append.
func (s *StageStore) Add(ns types.NewStage) (*types.Stage, error) {
	res, err := s.db.Exec(
		`INSERT INTO interview_stages (job_id, stage_number, name, status, scheduled_date, notes, created)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ns.JobID, ns.StageNumber, ns.Name, ns.Status, ns.ScheduledDate, ns.Notes, ns.Created,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting stage for job %d: %w", ns.JobID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting stage id: %w", err)
	}
	return s.Get(id)
}

// Get returns the stage with the given ID.
func (s *StageStore) Get(id int64) (*types.Stage, error) {
	return scanStage(s.db.QueryRow(
		`SELECT id, job_id, stage_number, name, status, scheduled_date, notes, created
		 FROM interview_stages WHERE id = ?`, id,
	))
}

// NextStageNumber returns max(stage_number) + 1 for the job, or 1 when the
// job has no stages.
func (s *StageStore) NextStageNumber(jobID int64) (int64, error) {
	var max sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(stage_number) FROM interview_stages WHERE job_id = ?", jobID,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("getting next stage number for job %d: %w", jobID, err)
	}
	return max.Int64 + 1, nil
}

// ForJob returns all stages for a job ordered by stage_number ascending.
func (s *StageStore) ForJob(jobID int64) ([]types.Stage, error) {
	rows, err := s.db.Query(
		`SELECT id, job_id, stage_number, name, status, scheduled_date, notes, created
		 FROM interview_stages WHERE job_id = ? ORDER BY stage_number ASC`, jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying stages for job %d: %w", jobID, err)
	}
	defer rows.Close()

	var stages []types.Stage
	for rows.Next() {
		var st types.Stage
		var name, notes sql.NullString
		if err := rows.Scan(&st.ID, &st.JobID, &st.StageNumber, &name, &st.Status,
			&st.ScheduledDate, &notes, &st.Created); err != nil {
			return nil, fmt.Errorf("scanning stage: %w", err)
		}
		if name.Valid {
			st.Name = &name.String
		}
		if notes.Valid {
			st.Notes = &notes.String
		}
		stages = append(stages, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stages: %w", err)
	}
	return stages, nil
}

// Update writes only the supplied fields. stage_number and job_id are
// immutable.
func (s *StageStore) Update(id int64, changes types.StageUpdate) (*types.Stage, error) {
	var sets []string
	var args []any

	if changes.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *changes.Name)
	}
	if changes.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *changes.Status)
	}
	if changes.ScheduledDate != nil {
		sets = append(sets, "scheduled_date = ?")
		args = append(args, *changes.ScheduledDate)
	}
	if changes.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *changes.Notes)
	}

	if len(sets) > 0 {
		args = append(args, id)
		_, err := s.db.Exec(
			"UPDATE interview_stages SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...,
		)
		if err != nil {
			return nil, fmt.Errorf("updating stage %d: %w", id, err)
		}
	}
	return s.Get(id)
}

// Delete removes a stage, renumbers the job's remaining stages back to a
// contiguous 1..N in the same transaction, and returns the deleted row.
func (s *StageStore) Delete(id int64) (*types.Stage, error) {
	stage, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning stage delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM interview_stages WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("deleting stage %d: %w", id, err)
	}
	if err := renumberStages(tx, stage.JobID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing stage delete: %w", err)
	}
	return stage, nil
}

// Renumber reassigns 1..N to the job's stages in stage_number order.
// Delete already renumbers; this is for callers repairing numbering
// outside the delete path.
func (s *StageStore) Renumber(jobID int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning renumber: %w", err)
	}
	defer tx.Rollback()

	if err := renumberStages(tx, jobID); err != nil {
		return err
	}
	return tx.Commit()
}

// renumberStages reads the job's remaining stages in order and writes back
// only the rows whose number actually changed.
func renumberStages(tx *sql.Tx, jobID int64) error {
	rows, err := tx.Query(
		"SELECT id, stage_number FROM interview_stages WHERE job_id = ? ORDER BY stage_number ASC",
		jobID,
	)
	if err != nil {
		return fmt.Errorf("querying stages for renumber: %w", err)
	}

	type numbered struct {
		id     int64
		number int64
	}
	var stages []numbered
	for rows.Next() {
		var n numbered
		if err := rows.Scan(&n.id, &n.number); err != nil {
			rows.Close()
			return fmt.Errorf("scanning stage for renumber: %w", err)
		}
		stages = append(stages, n)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating stages for renumber: %w", err)
	}

	for i, st := range stages {
		want := int64(i + 1)
		if st.number == want {
			continue
		}
		if _, err := tx.Exec(
			"UPDATE interview_stages SET stage_number = ? WHERE id = ?", want, st.id,
		); err != nil {
			return fmt.Errorf("renumbering stage %d: %w", st.id, err)
		}
	}
	return nil
}

// scanStage hydrates a stage from a single row.
func scanStage(row *sql.Row) (*types.Stage, error) {
	var st types.Stage
	var name, notes sql.NullString
	if err := row.Scan(&st.ID, &st.JobID, &st.StageNumber, &name, &st.Status,
		&st.ScheduledDate, &notes, &st.Created); err != nil {
		return nil, fmt.Errorf("scanning stage: %w", err)
	}
	if name.Valid {
		st.Name = &name.String
	}
	if notes.Valid {
		st.Notes = &notes.String
	}
	return &st, nil
}
