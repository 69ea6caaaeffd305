package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/fettersdev/fetters/pkg/types"
)

// Highlight selects how a stage is emphasized in a preview tree.
type Highlight int

const (
	// HighlightNone renders every stage normally.
	HighlightNone Highlight = iota
	// HighlightGreen marks a stage being added or updated.
	HighlightGreen
	// HighlightRed marks a stage being deleted.
	HighlightRed
)

// highlightColor returns the message style for a highlight.
func (h Highlight) colorize(text string) string {
	switch h {
	case HighlightGreen:
		return Success.Sprint(text)
	case HighlightRed:
		return Failure.Sprint(text)
	default:
		return text
	}
}

// StageTree renders a job's interview stages as a tree rooted at the
// company and title. When highlightID matches a stage's ID, that stage is
// drawn in the highlight color; previews use a sentinel ID for rows not
// yet inserted.
func StageTree(job *types.ListedJob, stages []types.Stage, highlightID int64, h Highlight) string {
	title := "N/A"
	if job.Title != nil {
		title = *job.Title
	}
	root := tree.Root(fmt.Sprintf("%s - %s", job.CompanyName, title))

	for i := range stages {
		st := &stages[i]
		highlighted := st.ID == highlightID && h != HighlightNone

		label := fmt.Sprintf("Stage %d", st.StageNumber)
		if st.Name != nil && *st.Name != "" {
			label = fmt.Sprintf("Stage %d: %s", st.StageNumber, *st.Name)
		}

		var statusLine string
		if highlighted {
			label = h.colorize(label)
			statusLine = h.colorize(fmt.Sprintf("[%s] %s", st.Status, st.ScheduledDate))
		} else {
			statusLine = fmt.Sprintf("[%s] %s", ColorizeStageStatus(st.Status), st.ScheduledDate)
		}

		node := tree.Root(label).Child(statusLine)
		if st.Notes != nil && *st.Notes != "" {
			notes := *st.Notes
			if highlighted {
				notes = h.colorize(notes)
			}
			node.Child(notes)
		}
		root.Child(node)
	}

	return root.String()
}
