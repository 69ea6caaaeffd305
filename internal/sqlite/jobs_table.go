package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/fettersdev/fetters/pkg/types"
)

// JobStore owns the jobs table. Every mutation that changes a job's sprint
// membership adjusts the sprint's num_jobs counter in the same
// transaction, so the counter always equals the real row count.
type JobStore struct {
	db *sql.DB
}

// Add inserts a job and increments its sprint's counter, atomically.
func (j *JobStore) Add(nj types.NewJob) (*types.Job, error) {
	tx, err := j.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning job insert: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO jobs (created, company_name, title_id, status_id, link, notes, sprint_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		nj.Created, nj.CompanyName, nj.TitleID, nj.StatusID, nj.Link, nj.Notes, nj.SprintID,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting job for %q: %w", nj.CompanyName, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting job id: %w", err)
	}

	if err := adjustNumJobs(tx, nj.SprintID, +1); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing job insert: %w", err)
	}
	return j.Get(id)
}

// Get returns the job with the given ID.
func (j *JobStore) Get(id int64) (*types.Job, error) {
	var job types.Job
	var link, notes sql.NullString
	err := j.db.QueryRow(
		`SELECT id, created, company_name, title_id, status_id, link, notes, sprint_id
		 FROM jobs WHERE id = ?`, id,
	).Scan(&job.ID, &job.Created, &job.CompanyName, &job.TitleID, &job.StatusID,
		&link, &notes, &job.SprintID)
	if err != nil {
		return nil, fmt.Errorf("getting job %d: %w", id, err)
	}
	if link.Valid {
		job.Link = &link.String
	}
	if notes.Valid {
		job.Notes = &notes.String
	}
	return &job, nil
}

// Update writes only the supplied fields. When the update moves the job to
// another sprint, the old sprint's counter is decremented and the new
// sprint's incremented in the same transaction.
func (j *JobStore) Update(id int64, changes types.JobUpdate) (*types.Job, error) {
	current, err := j.Get(id)
	if err != nil {
		return nil, err
	}

	var sets []string
	var args []any

	if changes.CompanyName != nil {
		sets = append(sets, "company_name = ?")
		args = append(args, *changes.CompanyName)
	}
	if changes.TitleID != nil {
		sets = append(sets, "title_id = ?")
		args = append(args, *changes.TitleID)
	}
	if changes.StatusID != nil {
		sets = append(sets, "status_id = ?")
		args = append(args, *changes.StatusID)
	}
	if changes.Link != nil {
		sets = append(sets, "link = ?")
		args = append(args, *changes.Link)
	}
	if changes.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *changes.Notes)
	}
	if changes.SprintID != nil {
		sets = append(sets, "sprint_id = ?")
		args = append(args, *changes.SprintID)
	}

	if len(sets) == 0 {
		return current, nil
	}

	tx, err := j.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning job update: %w", err)
	}
	defer tx.Rollback()

	args = append(args, id)
	if _, err := tx.Exec("UPDATE jobs SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...); err != nil {
		return nil, fmt.Errorf("updating job %d: %w", id, err)
	}

	if changes.SprintID != nil && *changes.SprintID != current.SprintID {
		if err := adjustNumJobs(tx, current.SprintID, -1); err != nil {
			return nil, err
		}
		if err := adjustNumJobs(tx, *changes.SprintID, +1); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing job update: %w", err)
	}
	return j.Get(id)
}

// Delete removes a job and returns the deleted row. The sprint counter is
// decremented in the same transaction, and the job's interview stages go
// with it via the ON DELETE CASCADE on interview_stages.job_id.
func (j *JobStore) Delete(id int64) (*types.Job, error) {
	job, err := j.Get(id)
	if err != nil {
		return nil, err
	}

	tx, err := j.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning job delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM jobs WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("deleting job %d: %w", id, err)
	}
	if err := adjustNumJobs(tx, job.SprintID, -1); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing job delete: %w", err)
	}
	return job, nil
}

// likeEscape escapes % and _ in user input so they match literally inside
// a LIKE pattern with ESCAPE '\'.
func likeEscape(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, "%", `\%`)
	return strings.ReplaceAll(v, "_", `\_`)
}

// listQuery is the flattened projection behind List: the job joined with
// its title, status, and sprint, plus a stage count that is NULL when the
// job has no stages.
const listQuery = `
SELECT jobs.id, jobs.created, jobs.company_name,
       titles.name, statuses.name,
       NULLIF((SELECT COUNT(*) FROM interview_stages WHERE interview_stages.job_id = jobs.id), 0),
       jobs.link, jobs.notes
FROM jobs
LEFT JOIN titles ON jobs.title_id = titles.id
LEFT JOIN statuses ON jobs.status_id = statuses.id
LEFT JOIN sprints ON jobs.sprint_id = sprints.id`

// List runs the core query. When the filter names a sprint, the sprint
// name is matched by substring across all sprints; otherwise the scope is
// the current sprint only. String filters are substring matches; the
// stages filter is applied in memory after the rows come back (0 = any
// stages, N = exactly N). Rows come back in primary-key order.
func (j *JobStore) List(filter types.Filter, currentSprint *types.Sprint) ([]types.ListedJob, error) {
	var conds []string
	var args []any

	if filter.Sprint != nil {
		conds = append(conds, `sprints.name LIKE ? ESCAPE '\'`)
		args = append(args, "%"+likeEscape(*filter.Sprint)+"%")
	} else {
		conds = append(conds, "sprints.id = ?")
		args = append(args, currentSprint.ID)
	}

	like := func(column string, value *string) {
		if value != nil {
			conds = append(conds, column+` LIKE ? ESCAPE '\'`)
			args = append(args, "%"+likeEscape(*value)+"%")
		}
	}
	like("jobs.company_name", filter.Company)
	like("jobs.link", filter.Link)
	like("jobs.notes", filter.Notes)
	like("statuses.name", filter.Status)
	like("titles.name", filter.Title)

	query := listQuery + " WHERE " + strings.Join(conds, " AND ") + " ORDER BY jobs.id"

	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.ListedJob
	for rows.Next() {
		var lj types.ListedJob
		var title, status, link, notes sql.NullString
		var stages sql.NullInt64
		if err := rows.Scan(&lj.ID, &lj.Created, &lj.CompanyName, &title, &status,
			&stages, &link, &notes); err != nil {
			return nil, fmt.Errorf("scanning listed job: %w", err)
		}
		if title.Valid {
			lj.Title = &title.String
		}
		if status.Valid {
			lj.Status = &status.String
		}
		if stages.Valid {
			lj.Stages = &stages.Int64
		}
		if link.Valid {
			lj.Link = &link.String
		}
		if notes.Valid {
			lj.Notes = &notes.String
		}
		jobs = append(jobs, lj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating listed jobs: %w", err)
	}

	if filter.Stages != nil {
		want := *filter.Stages
		kept := jobs[:0]
		for _, lj := range jobs {
			switch {
			case want == 0 && lj.Stages != nil:
				kept = append(kept, lj)
			case want > 0 && lj.Stages != nil && *lj.Stages == want:
				kept = append(kept, lj)
			}
		}
		jobs = kept
	}

	return jobs, nil
}

// countTotal returns the number of jobs across all sprints.
func (j *JobStore) countTotal() (int64, error) {
	var n int64
	if err := j.db.QueryRow("SELECT COUNT(*) FROM jobs").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting jobs: %w", err)
	}
	return n, nil
}

// countInSprint returns the number of jobs in one sprint.
func (j *JobStore) countInSprint(sprintID int64) (int64, error) {
	var n int64
	err := j.db.QueryRow("SELECT COUNT(*) FROM jobs WHERE sprint_id = ?", sprintID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting jobs in sprint %d: %w", sprintID, err)
	}
	return n, nil
}

// CountPerStatus returns one row per status that has at least one job in
// the current sprint, with the count as a percentage of the sprint's jobs
// and of all jobs. Returns an empty slice when either total is zero.
func (j *JobStore) CountPerStatus(currentSprint *types.Sprint) ([]types.InsightRow, error) {
	totalJobs, err := j.countTotal()
	if err != nil {
		return nil, err
	}
	totalInSprint, err := j.countInSprint(currentSprint.ID)
	if err != nil {
		return nil, err
	}
	if totalJobs == 0 || totalInSprint == 0 {
		return []types.InsightRow{}, nil
	}

	rows, err := j.db.Query(
		`SELECT statuses.name, COUNT(jobs.id)
		 FROM jobs
		 LEFT JOIN statuses ON jobs.status_id = statuses.id
		 WHERE jobs.sprint_id = ?
		 GROUP BY statuses.name
		 ORDER BY statuses.name`,
		currentSprint.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("counting jobs per status: %w", err)
	}
	defer rows.Close()

	return scanInsightRows(rows, totalInSprint, totalJobs)
}

// CountPerSprint returns one row per sprint across the whole database.
// The sprint percentage divides by the current sprint's total, so a
// non-current sprint can exceed 100%; that matches the historical
// behavior of the insights view. Returns an empty slice when either
// total is zero.
func (j *JobStore) CountPerSprint(currentSprint *types.Sprint) ([]types.InsightRow, error) {
	totalJobs, err := j.countTotal()
	if err != nil {
		return nil, err
	}
	totalInSprint, err := j.countInSprint(currentSprint.ID)
	if err != nil {
		return nil, err
	}
	if totalJobs == 0 || totalInSprint == 0 {
		return []types.InsightRow{}, nil
	}

	rows, err := j.db.Query(
		`SELECT sprints.name, COUNT(jobs.id)
		 FROM jobs
		 LEFT JOIN sprints ON jobs.sprint_id = sprints.id
		 GROUP BY sprints.name
		 ORDER BY sprints.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("counting jobs per sprint: %w", err)
	}
	defer rows.Close()

	return scanInsightRows(rows, totalInSprint, totalJobs)
}

// scanInsightRows hydrates (label, count) rows into insight rows with the
// two-decimal percentage formatting. Rows with a NULL label are skipped.
func scanInsightRows(rows *sql.Rows, totalInSprint, totalJobs int64) ([]types.InsightRow, error) {
	var insights []types.InsightRow
	for rows.Next() {
		var label sql.NullString
		var count int64
		if err := rows.Scan(&label, &count); err != nil {
			return nil, fmt.Errorf("scanning insight row: %w", err)
		}
		if !label.Valid {
			continue
		}
		insights = append(insights, types.InsightRow{
			Label:             label.String,
			Count:             count,
			SprintPercentage:  formatPercentage(count, totalInSprint),
			OverallPercentage: formatPercentage(count, totalJobs),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating insight rows: %w", err)
	}
	if insights == nil {
		insights = []types.InsightRow{}
	}
	return insights, nil
}

func formatPercentage(count, total int64) string {
	return fmt.Sprintf("%.2f%%", float64(count)/float64(total)*100.0)
}
