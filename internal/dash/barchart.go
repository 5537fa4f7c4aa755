package dash

import (
	"strconv"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Direction selects which way bars grow.
type Direction int

const (
	// DirectionVertical grows bars upward from the bottom row.
	DirectionVertical Direction = iota
	// DirectionHorizontal grows bars rightward, one bar per row band.
	DirectionHorizontal
)

// Bar is a single bar of the chart.
type Bar struct {
	// Value determines the bar length relative to the chart maximum.
	Value uint64
	// Label is printed under (or left of) the bar. Optional.
	Label string
	// TextValue is printed instead of Value when set, e.g. "42.5".
	TextValue string
	// Style overrides the chart-level bar style for this bar.
	Style *lipgloss.Style
}

// BarGroup clusters bars under one shared label.
type BarGroup struct {
	Label string
	Bars  []Bar
}

// BarChart renders groups of bars into a Buffer with eighth-of-cell
// resolution. Bars are quantized to ticks, 8 ticks per cell, against a
// reference maximum.
type BarChart struct {
	// BarWidth is the thickness of each bar in cells. Zero disables drawing.
	BarWidth int
	// BarGap is the spacing between bars inside a group.
	BarGap int
	// GroupGap is the extra spacing after each group.
	GroupGap int
	// Glyphs supplies the 9 fill levels.
	Glyphs GlyphSet
	// Max pins the value that maps to a full-length bar. Zero means derive
	// it from the data.
	Max uint64
	// Direction selects vertical or horizontal bars.
	Direction Direction
	// HideValues suppresses the value text on every bar.
	HideValues bool

	BarStyle   *lipgloss.Style
	ValueStyle *lipgloss.Style
	LabelStyle *lipgloss.Style

	groups []BarGroup
}

// NewBarChart returns a chart with single-cell bars, one cell of bar gap and
// block glyphs.
func NewBarChart() *BarChart {
	return &BarChart{
		BarWidth: 1,
		BarGap:   1,
		Glyphs:   BlockGlyphs,
	}
}

// AddGroup appends a group of bars. Empty groups are dropped.
func (c *BarChart) AddGroup(g BarGroup) {
	if len(g.Bars) == 0 {
		return
	}
	c.groups = append(c.groups, g)
}

// AddBars appends one unlabeled group holding the given bars.
func (c *BarChart) AddBars(bars ...Bar) {
	c.AddGroup(BarGroup{Bars: bars})
}

// Draw renders the chart into buf, confined to area. A degenerate area, no
// data or a zero bar width draws nothing.
func (c *BarChart) Draw(buf *Buffer, area Rect) {
	if area.W <= 0 || area.H <= 0 || len(c.groups) == 0 || c.BarWidth < 1 {
		return
	}
	if c.Direction == DirectionHorizontal {
		c.drawHorizontal(buf, area)
	} else {
		c.drawVertical(buf, area)
	}
}

// referenceMax returns the value a full-length bar represents: the explicit
// Max when set, otherwise the largest value in the data, never below 1.
func (c *BarChart) referenceMax() uint64 {
	max := c.Max
	if max == 0 {
		for _, g := range c.groups {
			for _, b := range g.Bars {
				if b.Value > max {
					max = b.Value
				}
			}
		}
	}
	if max < 1 {
		max = 1
	}
	return max
}

// groupTicks quantizes every visible bar to ticks (8 per cell) and decides
// how many bars fit. availableSpace is the room along the packing axis,
// barMaxLength the longest a bar may grow. A group that does not fit whole
// is truncated; everything after the first non-fitting group is omitted.
func (c *BarChart) groupTicks(availableSpace, barMaxLength int) [][]uint64 {
	if barMaxLength < 0 {
		barMaxLength = 0
	}
	max := c.referenceMax()
	limit := uint64(barMaxLength) * 8

	space := availableSpace
	out := make([][]uint64, 0, len(c.groups))
	for _, group := range c.groups {
		if space <= 0 {
			break
		}
		nBars := len(group.Bars)
		groupWidth := nBars*c.BarWidth + (nBars-1)*c.BarGap
		if space > groupWidth {
			space -= groupWidth + c.GroupGap + c.BarGap
			if space < 0 {
				space = 0
			}
		} else {
			nBars = (space + c.BarGap) / (c.BarWidth + c.BarGap)
			if nBars == 0 {
				break
			}
			space = 0
		}

		ticks := make([]uint64, 0, nBars)
		for _, bar := range group.Bars[:nBars] {
			t := bar.Value * uint64(barMaxLength) * 8 / max
			if t > limit {
				t = limit
			}
			ticks = append(ticks, t)
		}
		out = append(out, ticks)
	}
	return out
}

type labelInfo struct {
	group bool
	bar   bool
	rows  int
}

// labelInfo decides how many rows below the bars go to labels: none, one
// for bar or group labels alone, two when both exist. A single available
// row always goes to bar labels, never the group label.
func (c *BarChart) labelInfo(availableHeight int) labelInfo {
	if availableHeight <= 0 {
		return labelInfo{}
	}

	bar := false
	for _, g := range c.groups {
		for _, b := range g.Bars {
			if b.Label != "" {
				bar = true
				break
			}
		}
	}

	if availableHeight == 1 && bar {
		return labelInfo{bar: true, rows: 1}
	}

	group := false
	for _, g := range c.groups {
		if g.Label != "" {
			group = true
			break
		}
	}

	info := labelInfo{group: group, bar: bar}
	if group {
		info.rows++
	}
	if bar {
		info.rows++
	}
	return info
}

func (c *BarChart) drawVertical(buf *Buffer, area Rect) {
	info := c.labelInfo(area.H - 1)
	barsArea := Rect{X: area.X, Y: area.Y, W: area.W, H: area.H - info.rows}

	ticks := c.groupTicks(barsArea.W, barsArea.H)
	c.drawVerticalBars(buf, barsArea, ticks)
	c.drawLabelsAndValues(buf, area, info, ticks)
}

// drawVerticalBars fills bar columns bottom-up, spending 8 ticks per cell
// and placing the partial glyph in the topmost lit cell.
func (c *BarChart) drawVerticalBars(buf *Buffer, area Rect, ticks [][]uint64) {
	barX := area.X
	for gi, group := range ticks {
		bars := c.groups[gi].Bars
		for bi, t := range group {
			style := c.BarStyle
			if bars[bi].Style != nil {
				style = bars[bi].Style
			}
			remaining := t
			for j := area.H - 1; j >= 0; j-- {
				level := 8
				if remaining < 8 {
					level = int(remaining)
				}
				sym := c.Glyphs.Level(level)
				for x := 0; x < c.BarWidth; x++ {
					buf.Set(barX+x, area.Y+j, sym, style)
				}
				if remaining > 8 {
					remaining -= 8
				} else {
					remaining = 0
				}
			}
			barX += c.BarGap + c.BarWidth
		}
		barX += c.GroupGap
	}
}

// drawLabelsAndValues prints the value row on the lowest bar cell, bar
// labels on the row beneath and group labels on the bottom row.
func (c *BarChart) drawLabelsAndValues(buf *Buffer, area Rect, info labelInfo, ticks [][]uint64) {
	barX := area.X
	valueY := area.Y + area.H - info.rows - 1
	for gi, group := range ticks {
		bars := c.groups[gi].Bars
		if info.group {
			span := len(group)*(c.BarWidth+c.BarGap) - c.BarGap
			c.drawCentered(buf, c.groups[gi].Label, barX, area.Y+area.H-1, span, c.LabelStyle)
		}
		for bi, t := range group {
			if info.bar {
				c.drawCentered(buf, bars[bi].Label, barX, valueY+1, c.BarWidth, c.LabelStyle)
			}
			c.drawBarValue(buf, bars[bi], barX, valueY, t)
			barX += c.BarGap + c.BarWidth
		}
		barX += c.GroupGap
	}
}

// drawBarValue centers the value text on the bar, skipping it when the bar
// is too narrow. A bar exactly as wide as the text must be at least one
// full cell tall to carry it.
func (c *BarChart) drawBarValue(buf *Buffer, bar Bar, x, y int, ticks uint64) {
	if c.HideValues || bar.Value == 0 {
		return
	}
	text := bar.TextValue
	if text == "" {
		text = strconv.FormatUint(bar.Value, 10)
	}
	w := utf8.RuneCountInString(text)
	if w < c.BarWidth || (w == c.BarWidth && ticks >= 8) {
		buf.SetString(x+(c.BarWidth-w)/2, y, text, c.ValueStyle)
	}
}

func (c *BarChart) drawHorizontal(buf *Buffer, area Rect) {
	labelSize := 0
	for _, g := range c.groups {
		for _, b := range g.Bars {
			if n := utf8.RuneCountInString(b.Label); n > labelSize {
				labelSize = n
			}
		}
	}
	margin := 0
	if labelSize != 0 {
		margin = 1
	}
	barsArea := Rect{
		X: area.X + labelSize + margin,
		Y: area.Y,
		W: area.W - labelSize - margin,
		H: area.H,
	}
	if barsArea.W <= 0 {
		return
	}

	ticks := c.groupTicks(barsArea.H, barsArea.W)

	barY := barsArea.Y
	for gi, group := range ticks {
		bars := c.groups[gi].Bars
		for bi, t := range group {
			bar := bars[bi]
			style := c.BarStyle
			if bar.Style != nil {
				style = bar.Style
			}
			barLength := int(t / 8)
			for y := 0; y < c.BarWidth; y++ {
				for x := 0; x < barsArea.W; x++ {
					sym := c.Glyphs.Empty()
					if x < barLength {
						sym = c.Glyphs.Full()
					}
					buf.Set(barsArea.X+x, barY+y, sym, style)
				}
			}

			valueY := barY + c.BarWidth/2
			if bar.Label != "" {
				c.drawClipped(buf, bar.Label, area.X, valueY, labelSize, c.LabelStyle)
			}
			c.drawHorizontalValue(buf, bar, barsArea.X, valueY, barLength, style)

			barY += c.BarGap + c.BarWidth
		}

		// With no group gap there is no row left for the group label.
		labelY := barY - c.BarGap
		if c.GroupGap > 0 && labelY < barsArea.Y+barsArea.H {
			c.drawCentered(buf, c.groups[gi].Label, barsArea.X, labelY, barsArea.W, c.LabelStyle)
			barY += c.GroupGap
		}
	}
}

// drawHorizontalValue prints the value at the bar's base, inverted while it
// overlaps the filled part so it stays legible.
func (c *BarChart) drawHorizontalValue(buf *Buffer, bar Bar, x, y, barLength int, barStyle *lipgloss.Style) {
	if c.HideValues || bar.Value == 0 {
		return
	}
	text := bar.TextValue
	if text == "" {
		text = strconv.FormatUint(bar.Value, 10)
	}

	inside := c.ValueStyle
	if barStyle != nil {
		s := barStyle.Reverse(true)
		inside = &s
	}
	for i, r := range []rune(text) {
		if i < barLength {
			buf.Set(x+i, y, r, inside)
		} else {
			buf.Set(x+i, y, r, c.ValueStyle)
		}
	}
}

func (c *BarChart) drawCentered(buf *Buffer, text string, x, y, maxWidth int, style *lipgloss.Style) {
	if text == "" || maxWidth <= 0 {
		return
	}
	runes := []rune(text)
	if len(runes) > maxWidth {
		runes = runes[:maxWidth]
	}
	buf.SetString(x+(maxWidth-len(runes))/2, y, string(runes), style)
}

func (c *BarChart) drawClipped(buf *Buffer, text string, x, y, maxWidth int, style *lipgloss.Style) {
	if text == "" || maxWidth <= 0 {
		return
	}
	runes := []rune(text)
	if len(runes) > maxWidth {
		runes = runes[:maxWidth]
	}
	buf.SetString(x, y, string(runes), style)
}
