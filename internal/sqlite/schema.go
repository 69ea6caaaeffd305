// Package sqlite implements the fetters storage engine: an embedded
// SQLite database holding sprints, jobs, statuses, titles, and interview
// stages, accessed through one store per table.
package sqlite

// Schema DDL, one statement per table. Statements are idempotent so the
// migration list can be re-applied on every open.
const (
	createSprints = `CREATE TABLE IF NOT EXISTS sprints (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    start_date TEXT NOT NULL,
    end_date TEXT,
    num_jobs INTEGER NOT NULL DEFAULT 0
);`

	createStatuses = `CREATE TABLE IF NOT EXISTS statuses (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);`

	createTitles = `CREATE TABLE IF NOT EXISTS titles (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);`

	createJobs = `CREATE TABLE IF NOT EXISTS jobs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created TEXT NOT NULL,
    company_name TEXT NOT NULL,
    title_id INTEGER NOT NULL,
    status_id INTEGER NOT NULL,
    link TEXT,
    notes TEXT,
    sprint_id INTEGER NOT NULL,
    FOREIGN KEY (title_id) REFERENCES titles(id),
    FOREIGN KEY (status_id) REFERENCES statuses(id),
    FOREIGN KEY (sprint_id) REFERENCES sprints(id)
);`

	// Stages cascade on job deletion so a deleted job never leaves
	// orphaned stage rows behind.
	createInterviewStages = `CREATE TABLE IF NOT EXISTS interview_stages (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    job_id INTEGER NOT NULL,
    stage_number INTEGER NOT NULL,
    name TEXT,
    status TEXT NOT NULL,
    scheduled_date TEXT NOT NULL,
    notes TEXT,
    created TEXT NOT NULL,
    FOREIGN KEY (job_id) REFERENCES jobs(id) ON DELETE CASCADE
);`
)

// Index DDL for the columns the list query joins and filters on.
const (
	idxJobsSprint  = `CREATE INDEX IF NOT EXISTS idx_jobs_sprint ON jobs(sprint_id);`
	idxJobsStatus  = `CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs(status_id);`
	idxJobsTitle   = `CREATE INDEX IF NOT EXISTS idx_jobs_title ON jobs(title_id);`
	idxStagesJob   = `CREATE INDEX IF NOT EXISTS idx_stages_job ON interview_stages(job_id);`
	idxSprintsName = `CREATE UNIQUE INDEX IF NOT EXISTS idx_sprints_name ON sprints(name);`
)

// migrations lists all schema statements in dependency order. Applied in
// order inside one transaction by DB.Migrate.
var migrations = []string{
	createSprints,
	createStatuses,
	createTitles,
	createJobs,
	createInterviewStages,
	idxJobsSprint,
	idxJobsStatus,
	idxJobsTitle,
	idxStagesJob,
	idxSprintsName,
}
