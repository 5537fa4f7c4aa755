package dash

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Rows reserved around the pane grid: the header line plus a blank row
// above, a blank row plus the footer line below.
const (
	headerRows = 2
	footerRows = 2
)

// timeAxisStep is the marker pitch of the bottom border axis, in samples.
const timeAxisStep = 30

// renderDashboard renders the pane grid with header and footer.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	gridH := m.height - headerRows - footerRows
	if gridH < 3 {
		gridH = 3
	}
	b.WriteString(m.renderGrid(Rect{X: 0, Y: 0, W: m.width, H: gridH}))

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the one-line summary above the panes.
func (m Model) renderHeader() string {
	title := HeaderStyle.Render("baro")

	parts := []string{
		fmt.Sprintf("%d series", len(m.snapshot)),
		m.router.Mode(),
		m.interval.String(),
	}
	if m.ingestor != nil {
		if m.inputDone {
			parts = append(parts, fmt.Sprintf("input closed after %d lines", m.ingestor.Lines()))
		} else {
			parts = append(parts, fmt.Sprintf("%d lines", m.ingestor.Lines()))
		}
	}
	if fps := m.fps.FPS(); fps > 0 {
		parts = append(parts, fmt.Sprintf("%.1f fps", fps))
	}

	return title + StatsStyle.Render(" | "+strings.Join(parts, " | "))
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	hints := []string{
		"q quit",
		"l layout",
		"g group",
		"b glyphs",
		"↑↓ select",
		"enter detail",
		"? help",
	}
	return FooterStyle.Render(strings.Join(hints, " | "))
}

// renderGrid lays one pane per series out in the configured grid, or a
// single grouped chart when group mode is on.
func (m Model) renderGrid(area Rect) string {
	n := len(m.snapshot)
	if n == 0 {
		return lipgloss.Place(area.W, area.H, lipgloss.Center, lipgloss.Center,
			EmptyPaneStyle.Render("waiting for input"))
	}

	if m.grouped {
		return m.renderGroupedPane(area)
	}

	cells := SplitGrid(area, n, m.layout)
	var rows []string
	var rowPanes []string
	rowY := cells[0].Y
	for i, cell := range cells {
		if cell.Y != rowY {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rowPanes...))
			rowPanes = nil
			rowY = cell.Y
		}
		rowPanes = append(rowPanes, m.renderPane(m.snapshot[i], i, cell, i == m.selected))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rowPanes...))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderPane draws one series as a bordered pane: bars over the inner area
// with the newest sample at the right edge, the stats annotation embedded in
// the top border, the title right-aligned beside it, and the time axis along
// the bottom border.
func (m Model) renderPane(snap SeriesSnapshot, idx int, r Rect, focused bool) string {
	if r.W < 3 || r.H < 3 {
		return blankBlock(r.W, r.H)
	}

	buf := NewBuffer(r.W, r.H)
	border := &BorderStyle
	if focused {
		border = &BorderFocusStyle
	}
	drawBox(buf, r.W, r.H, border)
	drawTitle(buf, m.paneTitle(idx), r.W)

	innerW := r.W - 2
	innerH := r.H - 2
	window := snap.Values
	if len(window) > innerW {
		window = window[len(window)-innerW:]
	}

	chart := NewBarChart()
	chart.BarWidth = 1
	chart.BarGap = 0
	chart.Glyphs = m.glyphs()
	chart.Max = m.maxValue
	chart.HideValues = true
	style := lipgloss.NewStyle().Foreground(SeriesColor(idx))
	chart.BarStyle = &style

	// Pad on the left so a part-filled window still ends at the right edge.
	bars := make([]Bar, 0, innerW)
	for i := len(window); i < innerW; i++ {
		bars = append(bars, Bar{})
	}
	for _, v := range window {
		bars = append(bars, Bar{Value: barValue(v)})
	}
	chart.AddBars(bars...)
	chart.Draw(buf, Rect{X: 1, Y: 1, W: innerW, H: innerH})

	// The stats annotation overwrites the top border from column 2 and wins
	// over the title when the pane is too narrow for both.
	if len(snap.Values) > 0 {
		stats := fmt.Sprintf("Avg: %.2f %s Min: %.2f %s Max: %.2f %s",
			snap.Avg, snap.Unit, snap.Min, snap.Unit, snap.Max, snap.Unit)
		drawString(buf, stats, 2, 0, r.W-4, &StatsStyle)
	}

	m.drawTimeAxis(buf, r.W, r.H, border)

	return buf.String()
}

// renderGroupedPane draws every series as one labeled group inside a single
// full-area chart.
func (m Model) renderGroupedPane(r Rect) string {
	if r.W < 3 || r.H < 3 {
		return blankBlock(r.W, r.H)
	}

	buf := NewBuffer(r.W, r.H)
	drawBox(buf, r.W, r.H, &BorderStyle)
	drawTitle(buf, fmt.Sprintf("%d series", len(m.snapshot)), r.W)

	innerW := r.W - 2
	innerH := r.H - 2

	chart := NewBarChart()
	chart.BarWidth = m.barWidth
	chart.BarGap = m.barGap
	chart.GroupGap = m.groupGap
	chart.Glyphs = m.glyphs()
	chart.Max = m.maxValue
	chart.HideValues = true
	chart.LabelStyle = &StatsStyle

	perGroup := m.groupBudget(innerW, len(m.snapshot))
	for i, snap := range m.snapshot {
		window := snap.Values
		if len(window) > perGroup {
			window = window[len(window)-perGroup:]
		}
		style := lipgloss.NewStyle().Foreground(SeriesColor(i))
		bars := make([]Bar, 0, len(window))
		for _, v := range window {
			bars = append(bars, Bar{Value: barValue(v), Style: &style})
		}
		chart.AddGroup(BarGroup{Label: m.paneTitle(i), Bars: bars})
	}
	chart.Draw(buf, Rect{X: 1, Y: 1, W: innerW, H: innerH})

	return buf.String()
}

// groupBudget returns how many bars of the configured width one series may
// contribute when the inner width is shared evenly across n groups.
func (m Model) groupBudget(innerW, n int) int {
	if n < 1 {
		n = 1
	}
	share := (innerW - n*(m.groupGap+m.barGap)) / n
	k := (share + m.barGap) / (m.barWidth + m.barGap)
	if k < 1 {
		k = 1
	}
	return k
}

// drawTimeAxis embeds sample-age markers in the bottom border, right-aligned
// so they count back from the newest sample. Segments are generated from the
// newest edge outward and then flipped, which keeps the marker pitch at
// timeAxisStep cells regardless of label widths. Generation stops once a
// marker would land within 5 cells of the left edge.
func (m Model) drawTimeAxis(buf *Buffer, w, h int, border *lipgloss.Style) {
	axisW := w - 1
	var segments []string
	lastLabelLen := 0
	for t := timeAxisStep; t <= axisW-5; t += timeAxisStep {
		label := m.axisLabel(t)
		dashes := timeAxisStep - lastLabelLen
		if dashes < 0 {
			dashes = 0
		}
		segments = append(segments,
			strings.Repeat(string(boxHorizontal), dashes),
			string(axisTick),
			label)
		lastLabelLen = len(label) + 1
	}
	if len(segments) == 0 {
		return
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}

	axis := []rune(strings.Join(segments, ""))
	if max := w - 2; len(axis) > max {
		// Keep the right portion, where positions are still exact.
		axis = axis[len(axis)-max:]
	}
	x := w - 1 - len(axis)
	for i, r := range axis {
		style := &AxisStyle
		if r == boxHorizontal {
			style = border
		}
		buf.Set(x+i, h-1, r, style)
	}
}

// axisLabel formats the age of the sample t cells left of the right edge,
// scaled by the ingest interval: "30s" at 1s pacing, "15s" at 500ms.
func (m Model) axisLabel(t int) string {
	secs := (time.Duration(t) * m.interval).Seconds()
	return strconv.FormatFloat(secs, 'g', -1, 64) + "s"
}

// drawBox draws a rounded border along the edges of the pane.
func drawBox(buf *Buffer, w, h int, style *lipgloss.Style) {
	for x := 1; x < w-1; x++ {
		buf.Set(x, 0, boxHorizontal, style)
		buf.Set(x, h-1, boxHorizontal, style)
	}
	for y := 1; y < h-1; y++ {
		buf.Set(0, y, boxVertical, style)
		buf.Set(w-1, y, boxVertical, style)
	}
	buf.Set(0, 0, boxTopLeft, style)
	buf.Set(w-1, 0, boxTopRight, style)
	buf.Set(0, h-1, boxBottomLeft, style)
	buf.Set(w-1, h-1, boxBottomRight, style)
}

// drawTitle right-aligns the title in the top border, ending just inside
// the corner.
func drawTitle(buf *Buffer, title string, w int) {
	runes := []rune(title)
	if max := w - 2; len(runes) > max {
		runes = runes[:max]
	}
	buf.SetString(w-1-len(runes), 0, string(runes), &TitleStyle)
}

// drawString writes s at (x, y), truncated to maxWidth runes.
func drawString(buf *Buffer, s string, x, y, maxWidth int, style *lipgloss.Style) {
	if maxWidth <= 0 {
		return
	}
	runes := []rune(s)
	if len(runes) > maxWidth {
		runes = runes[:maxWidth]
	}
	buf.SetString(x, y, string(runes), style)
}

// barValue converts a sample to a chart value, clamping NaN and negatives
// to zero and saturating at the uint64 range.
func barValue(v float64) uint64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(v)
}

// blankBlock fills a degenerate pane with spaces so row joins stay aligned.
func blankBlock(w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	row := strings.Repeat(" ", w)
	rows := make([]string, h)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}
