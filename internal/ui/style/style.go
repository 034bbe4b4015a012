// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
)

// Status renders an install state marker followed by text.
func Status(ok bool, text string) string {
	if ok {
		return lipgloss.NewStyle().Foreground(Green).Render(Check) + " " + text
	}
	return lipgloss.NewStyle().Foreground(Red).Render(Cross) + " " + text
}
