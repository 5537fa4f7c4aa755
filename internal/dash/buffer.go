package dash

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Buffer is a fixed-size grid of styled runes that renderers draw into.
// Writes outside the grid are clipped silently.
type Buffer struct {
	w, h  int
	cells []bufCell
}

type bufCell struct {
	r     rune
	style *lipgloss.Style
}

// NewBuffer creates a w by h buffer filled with spaces.
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b := &Buffer{w: w, h: h, cells: make([]bufCell, w*h)}
	for i := range b.cells {
		b.cells[i].r = ' '
	}
	return b
}

// Width returns the buffer width in cells.
func (b *Buffer) Width() int { return b.w }

// Height returns the buffer height in rows.
func (b *Buffer) Height() int { return b.h }

// Set writes one rune at (x, y). A nil style renders unstyled.
func (b *Buffer) Set(x, y int, r rune, style *lipgloss.Style) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	b.cells[y*b.w+x] = bufCell{r: r, style: style}
}

// SetString writes s left to right starting at (x, y), clipping at the edge.
func (b *Buffer) SetString(x, y int, s string, style *lipgloss.Style) {
	for _, r := range s {
		b.Set(x, y, r, style)
		x++
	}
}

// Rune returns the rune at (x, y), or a space when out of bounds.
func (b *Buffer) Rune(x, y int) rune {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return ' '
	}
	return b.cells[y*b.w+x].r
}

// Row returns one row as an unstyled string.
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.h {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.w; x++ {
		sb.WriteRune(b.cells[y*b.w+x].r)
	}
	return sb.String()
}

// String renders the buffer as newline-joined rows. Consecutive cells
// sharing a style render as one styled run to keep escape sequences short.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		var run strings.Builder
		var runStyle *lipgloss.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle != nil {
				sb.WriteString(runStyle.Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
			run.Reset()
		}
		for x := 0; x < b.w; x++ {
			c := b.cells[y*b.w+x]
			if c.style != runStyle {
				flush()
				runStyle = c.style
			}
			run.WriteRune(c.r)
		}
		flush()
	}
	return sb.String()
}
