// Package types defines the fetters domain entities (sprints, jobs,
// statuses, titles, interview stages), the list-query filter, and the
// standard errors shared by the storage layer and the CLI.
package types
