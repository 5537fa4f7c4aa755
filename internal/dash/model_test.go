package dash

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModelDefaults(t *testing.T) {
	m := newKeyTestModel(t, "1 2")

	assert.Equal(t, DefaultInterval, m.interval)
	assert.Equal(t, DefaultFrameRate, m.frameRate)
	assert.Equal(t, LayoutAuto, m.layout)
	assert.Equal(t, 1, m.barWidth)
	assert.Equal(t, 0, m.barGap)
	assert.Equal(t, 0, m.groupGap)
	assert.True(t, m.braille)
	assert.False(t, m.grouped)
	assert.Len(t, m.snapshot, 2, "construction takes an initial snapshot")
	assert.NotNil(t, m.fps)
}

func TestNewModelOptions(t *testing.T) {
	r, err := NewPositionalRouter(nil, 8)
	require.NoError(t, err)
	m := NewModel(r, nil, Options{
		Titles:    []string{"latency", "errors"},
		Layout:    LayoutVertical,
		Grouped:   true,
		Interval:  500 * time.Millisecond,
		FrameRate: 60,
		Max:       100,
		BarWidth:  2,
		BarGap:    1,
		GroupGap:  3,
	})

	assert.Equal(t, LayoutVertical, m.layout)
	assert.True(t, m.grouped)
	assert.Equal(t, 500*time.Millisecond, m.interval)
	assert.Equal(t, 60.0, m.frameRate)
	assert.Equal(t, uint64(100), m.maxValue)
	assert.Equal(t, 2, m.barWidth)
	assert.Equal(t, 1, m.barGap)
	assert.Equal(t, 3, m.groupGap)
	assert.Equal(t, "latency", m.paneTitle(0))
}

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		rate float64
		want time.Duration
	}{
		{30, 33333333 * time.Nanosecond},
		{60, 16666666 * time.Nanosecond},
		{1, time.Second},
	}

	for _, tt := range tests {
		m := Model{frameRate: tt.rate}
		assert.Equal(t, tt.want, m.frameInterval())
	}
}

func TestModelInit(t *testing.T) {
	m := newKeyTestModel(t, "1")
	assert.NotNil(t, m.Init())
}

func TestUpdateWindowSizeMsg(t *testing.T) {
	m := newKeyTestModel(t, "1")

	nm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 41})
	m = nm.(Model)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 41, m.height)
	require.True(t, m.viewportReady)
	assert.Equal(t, 100, m.detailViewport.Width)
	assert.Equal(t, 18, m.detailViewport.Height)

	// Resizing adjusts the existing viewport
	nm, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 25})
	m = nm.(Model)
	assert.Equal(t, 80, m.detailViewport.Width)
	assert.Equal(t, 10, m.detailViewport.Height)

	// Tiny terminals still get one viewport row
	nm, _ = m.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	m = nm.(Model)
	assert.Equal(t, 1, m.detailViewport.Height)
}

func TestUpdateFrameMsgRefreshesSnapshot(t *testing.T) {
	r, err := NewPositionalRouter(nil, 8)
	require.NoError(t, err)
	m := NewModel(r, nil, Options{})
	require.Empty(t, m.snapshot)

	r.Ingest("4 5")

	nm, cmd := m.Update(frameMsg(time.Now()))
	m = nm.(Model)
	assert.Len(t, m.snapshot, 2)
	assert.NotNil(t, cmd, "frame handling schedules the next tick")
}

func TestUpdateFrameMsgClampsSelection(t *testing.T) {
	m := newKeyTestModel(t, "1 2")
	m.selected = 5

	nm, _ := m.Update(frameMsg(time.Now()))
	m = nm.(Model)
	assert.Equal(t, 1, m.selected)
}

func TestUpdateFrameMsgDetectsClosedInput(t *testing.T) {
	r, err := NewPositionalRouter(nil, 8)
	require.NoError(t, err)
	ing := NewIngestor(r, strings.NewReader(""), time.Millisecond)
	ing.Start(t.Context())

	select {
	case <-ing.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("ingestor did not finish")
	}

	m := NewModel(r, ing, Options{})
	nm, _ := m.Update(frameMsg(time.Now()))
	m = nm.(Model)
	assert.True(t, m.inputDone)
}

func TestUpdateKeyMsgRoutesToHandler(t *testing.T) {
	m := newKeyTestModel(t, "1 2")

	nm, _ := m.Update(runeKey("g"))
	assert.True(t, nm.(Model).grouped)
}

func TestUpdateKeyMsgScrollsDetailViewport(t *testing.T) {
	m := newKeyTestModel(t, "1")
	nm, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	m = nm.(Model)
	m.viewMode = ViewDetail
	m.detailViewport.SetContent(strings.Repeat("row\n", 30))
	require.Zero(t, m.detailViewport.YOffset)

	nm, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = nm.(Model)
	assert.Equal(t, 1, m.detailViewport.YOffset)
}

func TestViewWhenQuitting(t *testing.T) {
	m := newKeyTestModel(t, "1")
	m.width, m.height = 80, 24
	m.quitting = true
	assert.Empty(t, m.View())
}

func TestViewBeforeFirstResize(t *testing.T) {
	m := newKeyTestModel(t, "1")
	assert.Empty(t, m.View())
}

func TestPaneTitle(t *testing.T) {
	tests := []struct {
		name   string
		titles []string
		index  int
		want   string
	}{
		{"no titles", nil, 0, "Chart 1"},
		{"no titles second", nil, 1, "Chart 2"},
		{"configured", []string{"latency"}, 0, "latency"},
		{"past configured", []string{"latency"}, 1, "Chart 2"},
		{"empty entry falls back", []string{""}, 0, "Chart 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Model{titles: tt.titles}
			assert.Equal(t, tt.want, m.paneTitle(tt.index))
		})
	}
}

func TestSelectedSeries(t *testing.T) {
	m := newKeyTestModel(t, "1 2")
	m.selected = 1

	snap, ok := m.SelectedSeries()
	require.True(t, ok)
	assert.Equal(t, []float64{2}, snap.Values)

	m.snapshot = nil
	_, ok = m.SelectedSeries()
	assert.False(t, ok)
}

func TestClampSelection(t *testing.T) {
	m := newKeyTestModel(t, "1 2 3")

	m.selected = 9
	m.clampSelection()
	assert.Equal(t, 2, m.selected)

	m.selected = -1
	m.clampSelection()
	assert.Equal(t, 0, m.selected)
}

func TestGlyphSelection(t *testing.T) {
	m := Model{braille: true}
	assert.Equal(t, BrailleGlyphs, m.glyphs())
	m.braille = false
	assert.Equal(t, BlockGlyphs, m.glyphs())
}
