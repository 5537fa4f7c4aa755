package dash

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	apperrors "github.com/barokit/baro/internal/errors"
)

// Router owns the series pool and feeds it from incoming text lines. The
// ingestion mode is fixed at construction: unit tags, positional columns or
// a named capture pattern. The pool only ever grows.
//
// Ingest takes the write side of the lock, Snapshot the read side, so a
// frame always sees every series at the same instant.
type Router struct {
	mu       sync.RWMutex
	series   []*Series
	capacity int

	units   []string
	unitRes []*regexp.Regexp
	indices []int
	pattern *regexp.Regexp
}

// NewUnitRouter routes by unit tag: for each configured unit, the first
// number followed by that unit (case-insensitive, whole word) goes to the
// series of the same slot. One series per unit exists up front, its unit
// label already attached.
func NewUnitRouter(units []string, capacity int) (*Router, error) {
	if len(units) == 0 {
		return nil, apperrors.New(
			apperrors.ErrConfig,
			"no units given",
			"Pass at least one unit, e.g. --units ms",
		)
	}
	r := &Router{capacity: capacity}
	for _, u := range units {
		re, err := regexp.Compile(`(?i)\b(\d+(\.\d+)?)\s*` + u + `\b`)
		if err != nil {
			return nil, apperrors.WrapWithCode(err, apperrors.ErrPattern,
				"can't match unit '"+u+"'",
				"The unit becomes part of a pattern, so characters like ( or [ need escaping")
		}
		s := NewSeries(capacity)
		s.SetUnit(u)
		r.units = append(r.units, u)
		r.unitRes = append(r.unitRes, re)
		r.series = append(r.series, s)
	}
	return r, nil
}

// NewPositionalRouter routes whitespace-separated numbers by position. With
// indices, the given 1-based columns of each line's parsed numbers feed
// successive series; without, every parsed number feeds the series of its
// own position, growing the pool as needed.
func NewPositionalRouter(indices []int, capacity int) (*Router, error) {
	for _, idx := range indices {
		if idx < 1 {
			return nil, apperrors.New(
				apperrors.ErrConfig,
				"invalid column index "+strconv.Itoa(idx),
				"Column indices start at 1",
			)
		}
	}
	r := &Router{capacity: capacity, indices: indices}
	r.series = append(r.series, NewSeries(capacity))
	return r, nil
}

// NewPatternRouter routes through a regular expression: capture group i
// feeds series i-1. The pattern must have at least one capture group.
func NewPatternRouter(expr string, capacity int) (*Router, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.ErrPattern,
			"can't compile pattern",
			"Check the expression against Go's regexp syntax (RE2)")
	}
	if re.NumSubexp() < 1 {
		return nil, apperrors.New(
			apperrors.ErrPattern,
			"pattern has no capture groups",
			"Wrap the number you want to chart in parentheses, e.g. 'took ([0-9.]+)ms'",
		)
	}
	r := &Router{capacity: capacity, pattern: re}
	for i := 0; i < re.NumSubexp(); i++ {
		r.series = append(r.series, NewSeries(capacity))
	}
	return r, nil
}

// Mode names the active ingestion mode.
func (r *Router) Mode() string {
	switch {
	case len(r.unitRes) > 0:
		return "units"
	case r.pattern != nil:
		return "pattern"
	case len(r.indices) > 0:
		return "columns"
	default:
		return "positional"
	}
}

// Units returns the configured unit tags, if any.
func (r *Router) Units() []string { return r.units }

// Ingest routes one input line. Lines that match nothing are silent no-ops.
func (r *Router) Ingest(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case len(r.unitRes) > 0:
		r.ingestUnits(line)
	case r.pattern != nil:
		r.ingestPattern(line)
	default:
		r.ingestPositional(line)
	}
}

func (r *Router) ingestUnits(line string) {
	for i, re := range r.unitRes {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		r.series[i].Push(v)
	}
}

func (r *Router) ingestPattern(line string) {
	m := r.pattern.FindStringSubmatch(line)
	if m == nil {
		return
	}
	for gi := 1; gi < len(m); gi++ {
		v, err := strconv.ParseFloat(m[gi], 64)
		if err != nil {
			continue
		}
		r.grow(gi)
		r.series[gi-1].Push(v)
	}
}

func (r *Router) ingestPositional(line string) {
	var values []float64
	for _, tok := range strings.Fields(line) {
		if v, err := strconv.ParseFloat(tok, 64); err == nil {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return
	}

	if len(r.indices) > 0 {
		slot := 0
		for _, idx := range r.indices {
			if idx > len(values) {
				continue
			}
			r.grow(slot + 1)
			r.series[slot].Push(values[idx-1])
			slot++
		}
		return
	}

	r.grow(len(values))
	for i, v := range values {
		r.series[i].Push(v)
	}
}

// grow extends the pool to at least n series. Callers hold the write lock.
func (r *Router) grow(n int) {
	for len(r.series) < n {
		r.series = append(r.series, NewSeries(r.capacity))
	}
}

// Count returns the number of series in the pool.
func (r *Router) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.series)
}

// SeriesSnapshot is a frame's read-only copy of one series.
type SeriesSnapshot struct {
	Unit   string
	Values []float64
	Min    float64
	Max    float64
	Avg    float64
}

// Last returns the most recent sample, or false when the series is empty.
func (s SeriesSnapshot) Last() (float64, bool) {
	if len(s.Values) == 0 {
		return 0, false
	}
	return s.Values[len(s.Values)-1], true
}

// Snapshot copies the whole pool under one read acquisition so a frame
// never sees a half-applied update.
func (r *Router) Snapshot() []SeriesSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]SeriesSnapshot, len(r.series))
	for i, s := range r.series {
		out[i] = SeriesSnapshot{
			Unit:   s.Unit(),
			Values: s.Values(),
			Min:    s.Min(),
			Max:    s.Max(),
			Avg:    s.Avg(),
		}
	}
	return out
}
