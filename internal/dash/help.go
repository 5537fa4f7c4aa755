package dash

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpBinding represents a single keyboard shortcut entry.
type HelpBinding struct {
	Key  string
	Desc string
}

// helpBindings defines all keyboard shortcuts shown in the help overlay.
var helpBindings = []HelpBinding{
	{Key: "q / Ctrl+C", Desc: "Quit"},
	{Key: "l", Desc: "Cycle layout (auto, horizontal, vertical)"},
	{Key: "g", Desc: "Toggle grouped chart"},
	{Key: "b", Desc: "Toggle braille / block glyphs"},
	{Key: "up / k", Desc: "Select previous pane"},
	{Key: "down / j", Desc: "Select next pane"},
	{Key: "Enter", Desc: "Open series detail"},
	{Key: "Esc", Desc: "Back / close"},
	{Key: "Ctrl+Z", Desc: "Suspend"},
	{Key: "?", Desc: "Toggle this help"},
}

// Help overlay styles
var (
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorderFocus).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(ColorHeader).
			Bold(true).
			MarginBottom(1)

	helpKeyColStyle = HelpKeyStyle.Width(13)
)

// renderHelpOverlay renders a centered help box with keyboard shortcuts.
// The baseContent parameter is preserved for future overlay blending.
func (m Model) renderHelpOverlay(_ string) string {
	var lines []string
	lines = append(lines, helpTitleStyle.Render("Keyboard Shortcuts"))
	lines = append(lines, "")

	for _, binding := range helpBindings {
		line := helpKeyColStyle.Render(binding.Key) + HelpDescStyle.Render(binding.Desc)
		lines = append(lines, line)
	}

	lines = append(lines, "")
	lines = append(lines, FooterStyle.Render("Press ? to close"))

	helpContent := strings.Join(lines, "\n")
	helpBox := helpBoxStyle.Render(helpContent)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		helpBox,
	)
}
