package dash

import "math"

// DefaultCapacity is the rolling window size used when none is configured.
const DefaultCapacity = 200

// Series is a fixed-capacity rolling window of samples. Once full, each new
// sample evicts the oldest. Aggregates are cached and refreshed on every push
// by rescanning the window, so reads are free.
type Series struct {
	data  []float64
	head  int // next write slot
	count int
	size  int
	unit  string

	min float64
	max float64
	avg float64
}

// NewSeries creates a series holding at most capacity samples. A non-positive
// capacity falls back to DefaultCapacity.
func NewSeries(capacity int) *Series {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	s := &Series{
		data: make([]float64, capacity),
		size: capacity,
	}
	s.recompute()
	return s
}

// Push appends a sample, evicting the oldest one if the window is full.
// Non-finite values are stored untouched and flow into the aggregates with
// IEEE semantics.
func (s *Series) Push(v float64) {
	s.data[s.head] = v
	s.head = (s.head + 1) % s.size
	if s.count < s.size {
		s.count++
	}
	s.recompute()
}

// Len returns how many samples the window currently holds.
func (s *Series) Len() int { return s.count }

// Cap returns the window capacity.
func (s *Series) Cap() int { return s.size }

// Min returns the cached minimum, or +Inf when the series is empty.
func (s *Series) Min() float64 { return s.min }

// Max returns the cached maximum, or -Inf when the series is empty.
func (s *Series) Max() float64 { return s.max }

// Avg returns the cached mean, or NaN when the series is empty.
func (s *Series) Avg() float64 { return s.avg }

// Unit returns the unit tag attached to this series, if any.
func (s *Series) Unit() string { return s.unit }

// SetUnit attaches a unit tag such as "ms" or "%".
func (s *Series) SetUnit(u string) { s.unit = u }

// Last returns the most recent sample, or false if the series is empty.
func (s *Series) Last() (float64, bool) {
	if s.count == 0 {
		return 0, false
	}
	return s.at(s.count - 1), true
}

// Values returns all held samples in chronological order, oldest first.
func (s *Series) Values() []float64 {
	return s.Window(s.count)
}

// Window returns the most recent n samples in chronological order. When n
// exceeds the current length the whole window is returned.
func (s *Series) Window(n int) []float64 {
	if n > s.count {
		n = s.count
	}
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	start := s.count - n
	for i := 0; i < n; i++ {
		out[i] = s.at(start + i)
	}
	return out
}

// at returns the i-th oldest sample. Callers guarantee 0 <= i < count.
func (s *Series) at(i int) float64 {
	start := (s.head - s.count + s.size) % s.size
	return s.data[(start+i)%s.size]
}

func (s *Series) recompute() {
	if s.count == 0 {
		s.min = math.Inf(1)
		s.max = math.Inf(-1)
		s.avg = math.NaN()
		return
	}
	min := math.Inf(1)
	max := math.Inf(-1)
	sum := 0.0
	for i := 0; i < s.count; i++ {
		v := s.at(i)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	s.min = min
	s.max = max
	s.avg = sum / float64(s.count)
}
