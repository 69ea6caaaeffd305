package ui

import "github.com/charmbracelet/lipgloss"

// banner is the ASCII art shown by the banner command.
const banner = `
  __      _   _
 / _| ___| |_| |_ ___ _ __ ___
| |_ / _ \ __| __/ _ \ '__/ __|
|  _|  __/ |_| ||  __/ |  \__ \
|_|  \___|\__|\__\___|_|  |___/

 track your job hunt, sprint by sprint
`

var bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))

// Banner returns the styled ASCII banner.
func Banner() string {
	return bannerStyle.Render(banner)
}
