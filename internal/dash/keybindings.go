package dash

import tea "github.com/charmbracelet/bubbletea"

// ViewMode defines the current display mode of the dashboard.
type ViewMode int

const (
	ViewGrid ViewMode = iota
	ViewDetail
)

// Key bindings as constants for consistency.
const (
	KeyQuit         = "q"
	KeyQuitAlt      = "ctrl+c"
	KeySuspend      = "ctrl+z"
	KeyCycleLayout  = "l"
	KeyToggleGroup  = "g"
	KeyToggleGlyphs = "b"
	KeySelectPrev   = "up"
	KeySelectPrevK  = "k"
	KeySelectNext   = "down"
	KeySelectNextJ  = "j"
	KeyExpand       = "enter"
	KeyCollapse     = "esc"
	KeyToggleHelp   = "?"
)

// HandleKeyMsg processes keyboard input and returns updated model state and
// command. Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// If help is showing, Esc closes it
	if m.showHelp && key == KeyCollapse {
		m.showHelp = false
		return true, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeySuspend:
		return true, tea.Suspend
	}

	// Detail view: Esc returns to the grid; navigation keys stay unclaimed
	// so they scroll the sample table.
	if m.viewMode == ViewDetail {
		switch key {
		case KeyCollapse:
			m.viewMode = ViewGrid
			return true, nil

		case KeyToggleGlyphs:
			m.braille = !m.braille
			return true, nil
		}
		return false, nil
	}

	switch key {
	case KeyCycleLayout:
		m.layout = m.layout.Next()
		return true, nil

	case KeyToggleGroup:
		m.grouped = !m.grouped
		return true, nil

	case KeyToggleGlyphs:
		m.braille = !m.braille
		return true, nil

	case KeySelectPrev, KeySelectPrevK:
		if m.selected > 0 {
			m.selected--
		}
		return true, nil

	case KeySelectNext, KeySelectNextJ:
		if m.selected < len(m.snapshot)-1 {
			m.selected++
		}
		return true, nil

	case KeyExpand:
		if len(m.snapshot) > 0 {
			m.viewMode = ViewDetail
			m.updateDetailViewportContent()
		}
		return true, nil

	case KeyCollapse:
		m.viewMode = ViewGrid
		return true, nil
	}

	return false, nil
}
