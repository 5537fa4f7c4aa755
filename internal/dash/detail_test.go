package dash

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newUnitTestModel builds a model over a single "ms" unit series fed three
// samples.
func newUnitTestModel(t *testing.T) Model {
	t.Helper()
	r, err := NewUnitRouter([]string{"ms"}, 8)
	require.NoError(t, err)
	r.Ingest("read 1.5 ms")
	r.Ingest("read 2 ms")
	r.Ingest("read 42.25 ms")
	return NewModel(r, nil, Options{})
}

func TestRenderSampleTable(t *testing.T) {
	m := newUnitTestModel(t)
	snap, ok := m.SelectedSeries()
	require.True(t, ok)
	require.Equal(t, []float64{1.5, 2, 42.25}, snap.Values)

	want := strings.Join([]string{
		"   age         value",
		"     0      42.25 ms",
		"     1          2 ms",
		"     2        1.5 ms",
	}, "\n")
	assert.Equal(t, want, stripANSI(m.renderSampleTable(snap)))
}

func TestRenderSampleTableWithoutUnit(t *testing.T) {
	m := Model{}
	snap := paneSnapshot(t, "7")

	want := strings.Join([]string{
		"   age         value",
		"     0             7",
	}, "\n")
	assert.Equal(t, want, stripANSI(m.renderSampleTable(snap)))
}

func TestRenderSampleTableEmpty(t *testing.T) {
	m := Model{}
	assert.Equal(t, "no samples yet", stripANSI(m.renderSampleTable(SeriesSnapshot{})))
}

func TestUpdateDetailViewportContent(t *testing.T) {
	m := newUnitTestModel(t)

	// Without a viewport this is a no-op
	m.updateDetailViewportContent()
	assert.False(t, m.viewportReady)

	nm, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 24})
	m = nm.(Model)
	m.updateDetailViewportContent()
	assert.Equal(t, 4, m.detailViewport.TotalLineCount())
}

func TestUpdateDetailViewportContentWithoutSeries(t *testing.T) {
	r, err := NewPositionalRouter(nil, 8)
	require.NoError(t, err)
	m := NewModel(r, nil, Options{})

	nm, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	m = nm.(Model)
	m.updateDetailViewportContent()
	assert.Contains(t, stripANSI(m.detailViewport.View()), "no samples yet")
}

func TestRenderDetailViewLayout(t *testing.T) {
	m := newUnitTestModel(t)
	m.viewMode = ViewDetail

	nm, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 24})
	m = nm.(Model)
	require.True(t, m.viewportReady)
	require.Equal(t, 9, m.detailViewport.Height)

	out := stripANSI(m.renderDetailView())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 24)

	assert.Equal(t, "Chart 1  [ms]  3 samples", lines[0])
	assert.Equal(t, "Avg: 15.25 ms Min: 1.50 ms Max: 42.25 ms", lines[1])

	// Sparkline compresses the whole window into one row
	assert.Equal(t, "▁▁█", lines[2])

	// Chart pane fills rows 3 through 12
	assert.Equal(t,
		"╭─Avg: 15.25 ms Min: 1.50 ms Max: 42.25 ms"+dashes(10)+"Chart 1╮",
		lines[3])
	assert.Equal(t, "╰"+dashes(24)+"30s├"+dashes(30)+"╯", lines[12])

	// Sample table viewport below it, newest sample first
	assert.Equal(t, "   age         value", lines[13])
	assert.Equal(t, "     0      42.25 ms", lines[14])

	assert.Empty(t, lines[22])
	assert.Equal(t, "esc back | ↑↓ scroll | b glyphs | q quit", lines[23])
}

func TestRenderDetailViewWithoutSelection(t *testing.T) {
	r, err := NewPositionalRouter(nil, 8)
	require.NoError(t, err)
	m := NewModel(r, nil, Options{})
	m.width, m.height = 40, 12

	assert.Equal(t, "no series selected", stripANSI(m.renderDetailView()))
}
