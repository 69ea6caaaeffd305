// Package export projects listed jobs into spreadsheet rows and writes
// the XLSX workbook for the export command.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fettersdev/fetters/pkg/types"
)

// Headers is the first worksheet row, in column order.
var Headers = [6]string{"Timestamp", "Company Name", "Title", "Status", "Link", "Notes"}

// headerColor is the ARGB fill for the header row and for rows whose
// status is unknown or absent.
const headerColor = "FF999999"

// statusColors maps each seeded status to its ARGB row fill.
var statusColors = map[string]string{
	"GHOSTED":            "FF999999",
	"HIRED":              "FF00A36C",
	"IN PROGRESS":        "FFFFFF00",
	"NOT HIRING ANYMORE": "FFC9C9C9",
	"OFFER RECEIVED":     "FFFF00FF",
	"PENDING":            "FF0096FF",
	"REJECTED":           "FFEE4B2B",
}

// StatusColor returns the ARGB fill for a status, falling back to grey for
// unknown or absent statuses.
func StatusColor(status *string) string {
	if status == nil {
		return headerColor
	}
	if c, ok := statusColors[*status]; ok {
		return c
	}
	return headerColor
}

// Rows projects jobs into spreadsheet rows: one [6]string per job in the
// order given, with the N/A and empty-string placeholders applied.
func Rows(jobs []types.ListedJob) [][6]string {
	rows := make([][6]string, 0, len(jobs))
	for i := range jobs {
		rows = append(rows, jobs[i].ExportRow())
	}
	return rows
}

// SheetName returns the single worksheet's name for a sprint. A nil sprint
// name renders as "unknown".
func SheetName(sprint *string) string {
	name := "unknown"
	if sprint != nil {
		name = *sprint
	}
	return "Sprint: " + name
}

// DefaultFilename returns <today>-fetters-export-sprint-<sprint>.xlsx.
func DefaultFilename(sprint *string) string {
	name := "unknown"
	if sprint != nil {
		name = *sprint
	}
	return fmt.Sprintf("%s-fetters-export-sprint-%s.xlsx", time.Now().Format(types.DateFormat), name)
}

// EnsureExtension appends .xlsx to a user-supplied filename if missing.
func EnsureExtension(filename string) string {
	if !strings.HasSuffix(filename, ".xlsx") {
		return filename + ".xlsx"
	}
	return filename
}

// WriteWorkbook writes the jobs to an XLSX file at dir/filename with the
// header row on grey and each job row filled with its status color.
// Returns the full path written.
func WriteWorkbook(dir, filename string, sprint *string, jobs []types.ListedJob) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetName(sprint)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", &types.SheetNameError{Msg: err.Error()}
	}

	if err := writeRow(f, sheet, 1, Headers, headerColor); err != nil {
		return "", err
	}

	for i, row := range Rows(jobs) {
		if err := writeRow(f, sheet, i+2, row, StatusColor(jobs[i].Status)); err != nil {
			return "", err
		}
	}

	path := filepath.Join(dir, filename)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrXLSX, err)
	}
	return path, nil
}

// writeRow fills one worksheet row with values and a background color.
// Excelize wants RGB fills, so the leading alpha byte is dropped.
func writeRow(f *excelize.File, sheet string, row int, values [6]string, argb string) error {
	fill := strings.TrimPrefix(argb, "FF")
	styleID, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fill}},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrXLSX, err)
	}

	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("%w: %v", types.ErrXLSX, err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("%w: %v", types.ErrXLSX, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
			return fmt.Errorf("%w: %v", types.ErrXLSX, err)
		}
	}
	return nil
}
