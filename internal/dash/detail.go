package dash

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/barokit/baro/internal/ui"
)

// renderDetailView renders the selected series on the whole terminal: a
// title, its stats, a full-width chart pane and a scrollable table of the
// most recent samples.
func (m Model) renderDetailView() string {
	snap, ok := m.SelectedSeries()
	if !ok {
		return EmptyPaneStyle.Render("no series selected")
	}

	var b strings.Builder

	// Header: title line, stats line, sparkline. Matches the viewport
	// offset set on resize.
	b.WriteString(HeaderStyle.Render(m.paneTitle(m.selected)))
	if snap.Unit != "" {
		b.WriteString(StatsStyle.Render(fmt.Sprintf("  [%s]", snap.Unit)))
	}
	b.WriteString(StatsStyle.Render(fmt.Sprintf("  %d samples", len(snap.Values))))
	b.WriteString("\n")
	if len(snap.Values) > 0 {
		b.WriteString(StatsStyle.Render(fmt.Sprintf("Avg: %.2f %s Min: %.2f %s Max: %.2f %s",
			snap.Avg, snap.Unit, snap.Min, snap.Unit, snap.Max, snap.Unit)))
	}
	b.WriteString("\n")
	b.WriteString(ui.RenderSparkline(snap.Values, m.width, SeriesColor(m.selected)))
	b.WriteString("\n")

	viewportH := 0
	if m.viewportReady {
		viewportH = m.detailViewport.Height
	}
	chartH := m.height - 3 - viewportH - 2
	b.WriteString(m.renderPane(snap, m.selected, Rect{X: 0, Y: 0, W: m.width, H: chartH}, false))
	b.WriteString("\n")

	if m.viewportReady {
		b.WriteString(m.detailViewport.View())
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderDetailFooter())

	return b.String()
}

// renderDetailFooter renders navigation hints for the detail view.
func (m Model) renderDetailFooter() string {
	hints := []string{"esc back", "↑↓ scroll", "b glyphs", "q quit"}
	return FooterStyle.Render(strings.Join(hints, " | "))
}

// updateDetailViewportContent refreshes the sample table for the selected
// series.
func (m *Model) updateDetailViewportContent() {
	if !m.viewportReady {
		return
	}
	snap, ok := m.SelectedSeries()
	if !ok {
		m.detailViewport.SetContent(EmptyPaneStyle.Render("no samples yet"))
		return
	}
	m.detailViewport.SetContent(m.renderSampleTable(snap))
}

// renderSampleTable lists the window newest first. Age counts samples back
// from the most recent one.
func (m Model) renderSampleTable(snap SeriesSnapshot) string {
	if len(snap.Values) == 0 {
		return EmptyPaneStyle.Render("no samples yet")
	}

	lines := []string{StatsStyle.Render(fmt.Sprintf("%6s  %12s", "age", "value"))}
	for i := len(snap.Values) - 1; i >= 0; i-- {
		age := len(snap.Values) - 1 - i
		value := strconv.FormatFloat(snap.Values[i], 'f', -1, 64)
		if snap.Unit != "" {
			value += " " + snap.Unit
		}
		lines = append(lines, fmt.Sprintf("%6d  %12s", age, value))
	}
	return strings.Join(lines, "\n")
}
