// Package dash implements a live TUI dashboard of bar charts over numeric
// samples piped to standard input.
//
// Each tracked series gets one pane: a rolling window of values drawn as
// single-cell bars, newest at the right edge, with min/avg/max embedded in
// the border and a time axis counting back from "now".
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm
// Architecture (Model-Update-View pattern):
//
//   - Model: Holds display state (snapshot, layout, selection, glyph set)
//   - Update: Processes messages (keystrokes, frame ticks, resizes)
//   - View: Renders the current state to a string for display
//
// # Key Components
//
//	Series    - Fixed-capacity rolling sample window with cached stats
//	Router    - Routes input lines to series by unit tag, column or pattern
//	Ingestor  - Paced line reader feeding the router from stdin
//	BarChart  - Quantizing bar renderer (8 ticks per cell) over a Buffer
//	Model     - The Bubble Tea model tying snapshots to panes
//
// # Data Flow
//
// Ingestion and rendering never share mutable state directly:
//
//  1. The Ingestor reads one line per interval and calls Router.Ingest
//  2. Ingest parses the line under the router's write lock
//  3. frameMsg fires at the configured frame rate
//  4. The model takes Router.Snapshot (one read acquisition, deep copy)
//  5. View() lays panes out with SplitGrid and draws each snapshot
//
// # Ingestion Modes
//
// Exactly one mode is fixed when the router is constructed:
//
//	unit tags  - per unit, first "number followed by unit" match per line
//	columns    - 1-based whitespace column indices, junk tokens skipped
//	positional - every parsed number, pool grows with the widest line
//	pattern    - named regex, capture group i feeds series i
//
// # Keyboard Shortcuts
//
// Navigation and control is handled via keybindings defined in
// keybindings.go:
//
//	q, Ctrl+C   - Quit
//	l           - Cycle layout (auto/horizontal/vertical)
//	g           - Toggle grouped chart
//	b           - Toggle braille/block glyphs
//	j/k, ↑/↓    - Select pane
//	Enter       - Open series detail view
//	Esc         - Back / close
//	?           - Toggle help overlay
package dash
