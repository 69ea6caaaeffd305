package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/fettersdev/fetters/pkg/types"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// renderTable draws a bordered table with bold headers.
func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	return t.String()
}

// JobTable renders listed jobs the way the list command shows them, with
// each row colorized by its status.
func JobTable(jobs []types.ListedJob) string {
	rows := make([][]string, 0, len(jobs))
	for i := range jobs {
		j := &jobs[i]
		stages := ""
		if j.Stages != nil {
			stages = strconv.FormatInt(*j.Stages, 10)
		}
		rows = append(rows, []string{
			strconv.FormatInt(j.ID, 10),
			j.Created,
			ColorizeStatus(j.Status, j.CompanyName),
			ColorizeStatus(j.Status, orNA(j.Title)),
			ColorizeStatus(j.Status, orNA(j.Status)),
			stages,
			orNA(j.Link),
			orNA(j.Notes),
		})
	}
	return renderTable(
		[]string{"ID", "Created", "Company Name", "Title", "Status", "Num Stages", "Link", "Notes"},
		rows,
	)
}

// SprintTable renders all sprints for the sprint show-all command.
func SprintTable(sprints []types.Sprint) string {
	rows := make([][]string, 0, len(sprints))
	for i := range sprints {
		s := &sprints[i]
		end := "N/A"
		if s.EndDate != nil {
			end = *s.EndDate
		}
		rows = append(rows, []string{
			s.Name,
			s.StartDate,
			end,
			strconv.FormatInt(s.NumJobs, 10),
		})
	}
	return renderTable([]string{"Sprint Name", "Start Date", "End Date", "# of Jobs"}, rows)
}

// InsightTable renders one insights aggregation.
func InsightTable(title string, rows []types.InsightRow) string {
	body := make([][]string, 0, len(rows))
	for _, r := range rows {
		body = append(body, []string{
			r.Label,
			strconv.FormatInt(r.Count, 10),
			r.SprintPercentage,
			r.OverallPercentage,
		})
	}
	return fmt.Sprintf("%s\n%s", headerStyle.Render(title),
		renderTable([]string{"Label", "Count", "% of Sprint", "% Overall"}, body))
}

func orNA(s *string) string {
	if s == nil {
		return "N/A"
	}
	return *s
}
