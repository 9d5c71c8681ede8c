package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary = lipgloss.Color("#7C3AED")
	ColorWarning = lipgloss.Color("#F59E0B")
	ColorError   = lipgloss.Color("#EF4444")
	ColorMuted   = lipgloss.Color("#6B7280")

	// Logo style
	Logo = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	// Subtitle
	Subtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Section headers in the result output
	Section = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	Notice = lipgloss.NewStyle().
		Foreground(ColorWarning)

	// Box
	Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(0, 1)

	ErrorTitle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)
)

// SectionTitle renders a result section header such as "=== Model Response ===".
func SectionTitle(name string) string {
	return Section.Render("=== " + name + " ===")
}
