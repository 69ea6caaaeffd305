// Package ui renders fetters terminal output: status-colored tables, the
// interview stage tree, and the banner.
package ui

import (
	"github.com/fatih/color"

	"github.com/fettersdev/fetters/pkg/types"
)

// Message styles shared by all commands.
var (
	Success = color.New(color.FgGreen, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Failure = color.New(color.FgRed, color.Bold)
)

// statusColors maps the seeded job statuses to their display colors.
var statusColors = map[string]*color.Color{
	"GHOSTED":            color.New(color.FgWhite, color.Bold),
	"HIRED":              color.New(color.FgGreen, color.Bold),
	"IN PROGRESS":        color.New(color.FgYellow, color.Bold),
	"NOT HIRING ANYMORE": color.RGB(201, 201, 201),
	"OFFER RECEIVED":     color.New(color.FgMagenta, color.Bold),
	"PENDING":            color.New(color.FgBlue, color.Bold),
	"REJECTED":           color.New(color.FgRed, color.Bold),
}

// stageColors maps stage statuses to their display colors.
var stageColors = map[string]*color.Color{
	types.StageScheduled: color.New(color.FgHiYellow, color.Bold),
	types.StagePassed:    color.New(color.FgHiGreen, color.Bold),
	types.StageRejected:  color.New(color.FgHiRed, color.Bold),
}

// ColorizeStatus renders text in the color of a job status. Unknown or
// absent statuses pass through unchanged.
func ColorizeStatus(status *string, text string) string {
	if status == nil {
		return text
	}
	if c, ok := statusColors[*status]; ok {
		return c.Sprint(text)
	}
	return text
}

// ColorizeStageStatus renders a raw stage status string in its color.
func ColorizeStageStatus(status string) string {
	if c, ok := stageColors[status]; ok {
		return c.Sprint(status)
	}
	return status
}
