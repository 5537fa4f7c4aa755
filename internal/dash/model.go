package dash

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFrameRate is the redraw cadence used when none is configured.
const DefaultFrameRate = 30.0

// Options carries the display configuration for a dashboard model. Zero
// values fall back to sensible defaults at construction.
type Options struct {
	// Titles overrides pane titles by series index. Missing entries fall
	// back to "Chart N".
	Titles []string
	// Layout is the initial pane arrangement.
	Layout LayoutMode
	// Grouped starts the dashboard with every series in one labeled chart.
	Grouped bool
	// Interval is the ingest pacing; the time axis scales its labels by it.
	Interval time.Duration
	// FrameRate is redraws per second.
	FrameRate float64
	// Max pins the chart reference maximum. Zero derives it from the data.
	Max uint64
	// BarWidth, BarGap and GroupGap size the grouped chart's bars.
	BarWidth int
	BarGap   int
	GroupGap int
}

// Model is the Bubble Tea model for the chart dashboard.
type Model struct {
	router   *Router
	ingestor *Ingestor

	titles    []string
	layout    LayoutMode
	grouped   bool
	braille   bool
	maxValue  uint64
	barWidth  int
	barGap    int
	groupGap  int
	interval  time.Duration
	frameRate float64

	snapshot  []SeriesSnapshot
	width     int
	height    int
	selected  int
	quitting  bool
	inputDone bool
	viewMode  ViewMode
	showHelp  bool

	fps *FPSCounter

	// Detail view viewport for the scrollable sample table
	detailViewport viewport.Model
	viewportReady  bool
}

// frameMsg signals a redraw.
type frameMsg time.Time

// NewModel creates a dashboard model over the router's series. The ingestor
// is consulted for display only (line count, input state) and may be nil in
// tests.
func NewModel(router *Router, ingestor *Ingestor, opts Options) Model {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = DefaultFrameRate
	}
	if opts.BarWidth < 1 {
		opts.BarWidth = 1
	}
	if opts.BarGap < 0 {
		opts.BarGap = 0
	}
	if opts.GroupGap < 0 {
		opts.GroupGap = 0
	}

	return Model{
		router:    router,
		ingestor:  ingestor,
		titles:    opts.Titles,
		layout:    opts.Layout,
		grouped:   opts.Grouped,
		braille:   true,
		maxValue:  opts.Max,
		barWidth:  opts.BarWidth,
		barGap:    opts.BarGap,
		groupGap:  opts.GroupGap,
		interval:  opts.Interval,
		frameRate: opts.FrameRate,
		snapshot:  router.Snapshot(),
		fps:       NewFPSCounter(),
	}
}

// Init starts the frame tick.
func (m Model) Init() tea.Cmd {
	return m.frameCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}
		// Unclaimed keys scroll the sample table in detail view
		if m.viewMode == ViewDetail && m.viewportReady {
			var vpCmd tea.Cmd
			m.detailViewport, vpCmd = m.detailViewport.Update(msg)
			return m, vpCmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Initialize or resize the detail viewport. The detail view splits
		// the rows left over after header and footer between the chart and
		// the sample table.
		headerHeight := 3
		footerHeight := 2
		viewportHeight := (m.height - headerHeight - footerHeight) / 2
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.viewportReady {
			m.detailViewport = viewport.New(m.width, viewportHeight)
			m.detailViewport.YPosition = headerHeight
			m.viewportReady = true
		} else {
			m.detailViewport.Width = m.width
			m.detailViewport.Height = viewportHeight
		}

		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}

	case frameMsg:
		m.fps.Frame(time.Time(msg))
		m.snapshot = m.router.Snapshot()
		m.clampSelection()
		if m.ingestor != nil && !m.inputDone {
			select {
			case <-m.ingestor.Done():
				m.inputDone = true
			default:
			}
		}
		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}
		return m, m.frameCmd()
	}

	return m, nil
}

// View renders the current mode.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var view string
	if m.viewMode == ViewDetail {
		view = m.renderDetailView()
	} else {
		view = m.renderDashboard()
	}
	if m.showHelp {
		return m.renderHelpOverlay(view)
	}
	return view
}

// frameCmd returns a command that sends the next frame tick.
func (m Model) frameCmd() tea.Cmd {
	return tea.Tick(m.frameInterval(), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// frameInterval converts the configured frame rate to a tick period.
func (m Model) frameInterval() time.Duration {
	return time.Duration(float64(time.Second) / m.frameRate)
}

// clampSelection keeps the selection inside the series pool, which only
// ever grows.
func (m *Model) clampSelection() {
	if n := len(m.snapshot); m.selected >= n && n > 0 {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// SelectedSeries returns the snapshot of the selected series, or false when
// nothing is selectable.
func (m Model) SelectedSeries() (SeriesSnapshot, bool) {
	if m.selected < 0 || m.selected >= len(m.snapshot) {
		return SeriesSnapshot{}, false
	}
	return m.snapshot[m.selected], true
}

// paneTitle returns the display title for a series index: the configured one
// when present, otherwise "Chart N" with N 1-based.
func (m Model) paneTitle(i int) string {
	if i < len(m.titles) && m.titles[i] != "" {
		return m.titles[i]
	}
	return fmt.Sprintf("Chart %d", i+1)
}

// glyphs returns the active glyph set.
func (m Model) glyphs() GlyphSet {
	if m.braille {
		return BrailleGlyphs
	}
	return BlockGlyphs
}
