package dash

import (
	"strings"

	apperrors "github.com/barokit/baro/internal/errors"
)

// LayoutMode controls how the dashboard partitions the screen into panes.
type LayoutMode int

const (
	// LayoutAuto picks a balanced rows-by-columns grid for the pane count.
	LayoutAuto LayoutMode = iota
	// LayoutHorizontal places all panes in a single row.
	LayoutHorizontal
	// LayoutVertical stacks all panes in a single column.
	LayoutVertical
)

// String returns the mode name as accepted by ParseLayoutMode.
func (m LayoutMode) String() string {
	switch m {
	case LayoutHorizontal:
		return "horizontal"
	case LayoutVertical:
		return "vertical"
	default:
		return "auto"
	}
}

// Next cycles to the following layout mode.
func (m LayoutMode) Next() LayoutMode {
	switch m {
	case LayoutAuto:
		return LayoutHorizontal
	case LayoutHorizontal:
		return LayoutVertical
	default:
		return LayoutAuto
	}
}

// ParseLayoutMode converts a config string into a LayoutMode.
func ParseLayoutMode(s string) (LayoutMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return LayoutAuto, nil
	case "horizontal":
		return LayoutHorizontal, nil
	case "vertical":
		return LayoutVertical, nil
	default:
		return LayoutAuto, apperrors.New(
			apperrors.ErrConfig,
			"unknown layout '"+s+"'",
			"Use one of: auto, horizontal, vertical",
		)
	}
}

// Rect is an axis-aligned cell of the terminal, in character units.
type Rect struct {
	X, Y, W, H int
}

// SplitGrid partitions area into n cells according to the layout mode. Cells
// come back in pane order: the remainder row first when one exists, then
// row-major through the grid. n <= 0 yields no cells.
func SplitGrid(area Rect, n int, mode LayoutMode) []Rect {
	if n <= 0 {
		return nil
	}
	switch mode {
	case LayoutHorizontal:
		return splitCols(area, n, 100/n)
	case LayoutVertical:
		return splitRows(area, n, 100/n)
	default:
		return splitAuto(area, n)
	}
}

func splitAuto(area Rect, n int) []Rect {
	switch n {
	case 1:
		return []Rect{area}
	case 2:
		return splitCols(area, 2, 50)
	}

	if isPrime(n) {
		// One full-width row on top holds the odd pane out, the rest
		// share a balanced grid underneath.
		rows, cols := balance(n - 1)
		pct := 100 / (rows + 1)
		bands := splitRows(area, rows+1, pct)

		cells := make([]Rect, 0, n)
		cells = append(cells, bands[0])
		for _, band := range bands[1:] {
			cells = append(cells, splitCols(band, cols, 100/cols)...)
		}
		return cells
	}

	rows, cols := balance(n)
	bands := splitRows(area, rows, 100/rows)
	cells := make([]Rect, 0, n)
	for _, band := range bands {
		cells = append(cells, splitCols(band, cols, 100/cols)...)
	}
	return cells
}

// balance picks grid dimensions for n panes by scanning candidate row counts
// from n-1 down to 2 and taking the first divisor. The descending scan is
// deliberate: it fixes which aspect ratio a given count gets.
func balance(n int) (rows, cols int) {
	switch {
	case n <= 1:
		return 1, 1
	case n == 2:
		return 1, 2
	}
	for d := n - 1; d >= 2; d-- {
		if n%d == 0 {
			return d, n / d
		}
	}
	return 1, n
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// splitRows cuts area into count full-width bands of pct percent height
// each. The last band absorbs whatever integer rounding leaves over.
func splitRows(area Rect, count, pct int) []Rect {
	if count <= 0 {
		return nil
	}
	out := make([]Rect, count)
	y := area.Y
	for i := 0; i < count; i++ {
		h := area.H * pct / 100
		if i == count-1 {
			h = area.Y + area.H - y
		}
		if h < 0 {
			h = 0
		}
		out[i] = Rect{X: area.X, Y: y, W: area.W, H: h}
		y += h
	}
	return out
}

// splitCols cuts area into count full-height columns of pct percent width
// each, the last column absorbing the rounding leftover.
func splitCols(area Rect, count, pct int) []Rect {
	if count <= 0 {
		return nil
	}
	out := make([]Rect, count)
	x := area.X
	for i := 0; i < count; i++ {
		w := area.W * pct / 100
		if i == count-1 {
			w = area.X + area.W - x
		}
		if w < 0 {
			w = 0
		}
		out[i] = Rect{X: x, Y: area.Y, W: w, H: area.H}
		x += w
	}
	return out
}
