package dash

import "github.com/charmbracelet/lipgloss"

// Dashboard color palette.
const (
	ColorBorder      = lipgloss.Color("#30363D") // pane borders
	ColorBorderFocus = lipgloss.Color("#D29922") // selected pane border
	ColorTitle       = lipgloss.Color("#C9D1D9") // pane titles
	ColorStats       = lipgloss.Color("#8B949E") // avg/min/max annotation
	ColorAxis        = lipgloss.Color("#6E7681") // time axis markers
	ColorHeader      = lipgloss.Color("#58A6FF") // header accent
	ColorMuted       = lipgloss.Color("#484F58") // footer, hints
	ColorHelpKey     = lipgloss.Color("#79C0FF") // key names in help
)

// SeriesColors are cycled by series index so grouped bars stay tellable apart.
var SeriesColors = []lipgloss.Color{
	"#3FB950", // green
	"#58A6FF", // blue
	"#D29922", // amber
	"#F778BA", // pink
	"#56D4DD", // cyan
	"#BC8CFF", // purple
}

// SeriesColor returns the palette color for a series index.
func SeriesColor(i int) lipgloss.Color {
	if i < 0 {
		i = 0
	}
	return SeriesColors[i%len(SeriesColors)]
}

// Shared styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorTitle).
			Bold(true)

	StatsStyle = lipgloss.NewStyle().
			Foreground(ColorStats)

	BorderStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	BorderFocusStyle = lipgloss.NewStyle().
				Foreground(ColorBorderFocus)

	AxisStyle = lipgloss.NewStyle().
			Foreground(ColorAxis)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorHeader).
			Bold(true)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHelpKey).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorStats)

	EmptyPaneStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

// Box drawing runes for pane chrome.
const (
	boxTopLeft     = '╭'
	boxTopRight    = '╮'
	boxBottomLeft  = '╰'
	boxBottomRight = '╯'
	boxHorizontal  = '─'
	boxVertical    = '│'
	axisTick       = '├'
)

// GlyphSet maps fill levels to runes, from empty (0 ticks) to a full cell
// (8 ticks). Vertical bars pick the partial glyph for their topmost cell.
type GlyphSet [9]rune

var (
	// BrailleGlyphs fill cells with braille dots, the dashboard default.
	BrailleGlyphs = GlyphSet{' ', '⢀', '⣀', '⣠', '⣤', '⣴', '⣶', '⣾', '⣿'}

	// BlockGlyphs fill cells with partial block characters.
	BlockGlyphs = GlyphSet{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
)

// Full returns the rune for a completely filled cell.
func (g GlyphSet) Full() rune { return g[8] }

// Empty returns the rune for an unfilled cell.
func (g GlyphSet) Empty() rune { return g[0] }

// Level returns the rune for n eighths of a cell, clamping n to 0..8.
func (g GlyphSet) Level(n int) rune {
	if n < 0 {
		n = 0
	}
	if n > 8 {
		n = 8
	}
	return g[n]
}
