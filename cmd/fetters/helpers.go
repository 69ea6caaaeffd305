package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fettersdev/fetters/internal/prompt"
	"github.com/fettersdev/fetters/internal/ui"
	"github.com/fettersdev/fetters/pkg/types"
)

// queryFlags holds the shared filter flags used by every command that
// narrows down job applications.
type queryFlags struct {
	company string
	link    string
	notes   string
	sprint  string
	status  string
	title   string
	stages  int64
}

// addQueryFlags registers the filter flags on a command and returns the
// struct their values land in. The stages flag accepts a bare --stages,
// which means "any number of stages".
func addQueryFlags(cmd *cobra.Command) *queryFlags {
	qf := &queryFlags{}
	f := cmd.Flags()
	f.StringVarP(&qf.company, "company", "c", "", "filter by company name substring")
	f.StringVarP(&qf.link, "link", "l", "", "filter by link substring")
	f.StringVarP(&qf.notes, "notes", "n", "", "filter by notes substring")
	f.StringVar(&qf.sprint, "sprint", "", "filter by sprint name substring instead of the current sprint")
	f.StringVarP(&qf.status, "status", "s", "", "filter by status substring")
	f.StringVarP(&qf.title, "title", "t", "", "filter by title substring")
	f.Int64Var(&qf.stages, "stages", 0, "filter by number of interview stages (0 means any)")
	f.Lookup("stages").NoOptDefVal = "0"
	return qf
}

// filter converts the flags the user actually set into a filter. Unset
// flags stay nil so the store ignores them.
func (q *queryFlags) filter(cmd *cobra.Command) types.Filter {
	var f types.Filter
	set := func(dst **string, name, value string) {
		if cmd.Flags().Changed(name) {
			v := value
			*dst = &v
		}
	}
	set(&f.Company, "company", q.company)
	set(&f.Link, "link", q.link)
	set(&f.Notes, "notes", q.notes)
	set(&f.Sprint, "sprint", q.sprint)
	set(&f.Status, "status", q.status)
	set(&f.Title, "title", q.title)
	if cmd.Flags().Changed("stages") {
		v := q.stages
		f.Stages = &v
	}
	return f
}

// currentSprint resolves the configured current sprint, creating it
// lazily on first use.
func currentSprint() (*types.Sprint, error) {
	return cfg.ResolveCurrentSprint(store.Sprints())
}

// listJobs runs the list query for a filter. The current sprint is only
// resolved when the filter does not name a sprint, so sprint-scoped
// commands work even before a current sprint is set.
func listJobs(filter types.Filter) ([]types.ListedJob, *types.Sprint, error) {
	var sprint *types.Sprint
	if filter.Sprint == nil {
		var err error
		sprint, err = currentSprint()
		if err != nil {
			return nil, nil, err
		}
	}
	jobs, err := store.Jobs().List(filter, sprint)
	return jobs, sprint, err
}

// selectJob narrows the filter down to one job application. A single
// match is returned directly; multiple matches are shown as a table and
// picked interactively.
func selectJob(filter types.Filter) (*types.ListedJob, error) {
	jobs, sprint, err := listJobs(filter)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		label := "unknown"
		switch {
		case filter.Sprint != nil:
			label = *filter.Sprint
		case sprint != nil:
			label = sprint.Name
		}
		return nil, &types.NoJobsAvailableError{Sprint: label}
	}
	if len(jobs) == 1 {
		return &jobs[0], nil
	}

	fmt.Println(ui.JobTable(jobs))
	labels := make([]string, 0, len(jobs))
	for i := range jobs {
		labels = append(labels, jobs[i].String())
	}
	choice, err := prompt.Choose("Select a job application", labels)
	if err != nil {
		return nil, err
	}
	return &jobs[choice], nil
}

// runInteractive wraps an interactive command body so a prompt skipped
// with ctrl-c exits cleanly instead of surfacing as an error.
func runInteractive(body func() error) error {
	if err := body(); err != nil {
		if errors.Is(err, prompt.ErrSkipped) {
			ui.Warning.Println("Aborted, nothing changed.")
			return nil
		}
		return err
	}
	return nil
}
