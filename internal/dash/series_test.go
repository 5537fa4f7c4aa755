package dash

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeries(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		expected int
	}{
		{"default capacity", 0, DefaultCapacity},
		{"negative capacity", -1, DefaultCapacity},
		{"custom capacity", 100, 100},
		{"small capacity", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSeries(tt.capacity)
			require.NotNil(t, s)
			assert.Equal(t, tt.expected, s.Cap())
			assert.Equal(t, 0, s.Len())
		})
	}
}

func TestSeriesEmptyStats(t *testing.T) {
	s := NewSeries(10)

	assert.True(t, math.IsInf(s.Min(), 1))
	assert.True(t, math.IsInf(s.Max(), -1))
	assert.True(t, math.IsNaN(s.Avg()))

	_, ok := s.Last()
	assert.False(t, ok)
	assert.Nil(t, s.Values())
}

func TestSeriesPush(t *testing.T) {
	s := NewSeries(10)

	s.Push(1.0)
	s.Push(2.0)
	s.Push(3.0)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []float64{1.0, 2.0, 3.0}, s.Values())

	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, 3.0, last)
}

func TestSeriesOverflowWrapping(t *testing.T) {
	s := NewSeries(3)

	s.Push(1.0)
	s.Push(2.0)
	s.Push(3.0)
	s.Push(4.0) // Overwrites 1.0
	s.Push(5.0) // Overwrites 2.0

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []float64{3.0, 4.0, 5.0}, s.Values())
}

func TestSeriesRollingStats(t *testing.T) {
	s := NewSeries(4)

	for _, v := range []float64{5, 3, 8, 1} {
		s.Push(v)
	}

	assert.Equal(t, 4, s.Len())
	assert.InDelta(t, 4.25, s.Avg(), 1e-9)
	assert.Equal(t, 1.0, s.Min())
	assert.Equal(t, 8.0, s.Max())

	// Full window: pushing evicts the oldest sample (5) and the
	// aggregates reflect only what remains.
	s.Push(9)

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []float64{3, 8, 1, 9}, s.Values())
	assert.InDelta(t, 5.25, s.Avg(), 1e-9)
	assert.Equal(t, 1.0, s.Min())
	assert.Equal(t, 9.0, s.Max())
}

func TestSeriesStatsAfterEviction(t *testing.T) {
	s := NewSeries(2)

	s.Push(100)
	s.Push(1)
	assert.Equal(t, 100.0, s.Max())

	// The old maximum leaves the window entirely.
	s.Push(2)
	assert.Equal(t, 2.0, s.Max())
	assert.Equal(t, 1.0, s.Min())
	assert.InDelta(t, 1.5, s.Avg(), 1e-9)
}

func TestSeriesNonFiniteSamples(t *testing.T) {
	t.Run("NaN poisons the average", func(t *testing.T) {
		s := NewSeries(5)
		s.Push(1)
		s.Push(math.NaN())
		s.Push(3)

		assert.Equal(t, 3, s.Len())
		assert.True(t, math.IsNaN(s.Avg()))
	})

	t.Run("positive infinity becomes the max", func(t *testing.T) {
		s := NewSeries(5)
		s.Push(1)
		s.Push(math.Inf(1))

		assert.True(t, math.IsInf(s.Max(), 1))
		assert.Equal(t, 1.0, s.Min())
	})

	t.Run("stats recover once NaN is evicted", func(t *testing.T) {
		s := NewSeries(2)
		s.Push(math.NaN())
		s.Push(4)
		assert.True(t, math.IsNaN(s.Avg()))

		s.Push(6)
		assert.InDelta(t, 5.0, s.Avg(), 1e-9)
	})
}

func TestSeriesWindow(t *testing.T) {
	s := NewSeries(10)
	for i := 1; i <= 7; i++ {
		s.Push(float64(i))
	}

	t.Run("partial", func(t *testing.T) {
		assert.Equal(t, []float64{5, 6, 7}, s.Window(3))
	})

	t.Run("more than available", func(t *testing.T) {
		assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7}, s.Window(20))
	})

	t.Run("zero or negative", func(t *testing.T) {
		assert.Nil(t, s.Window(0))
		assert.Nil(t, s.Window(-1))
	})

	t.Run("after wrap", func(t *testing.T) {
		w := NewSeries(5)
		for i := 1; i <= 8; i++ {
			w.Push(float64(i))
		}
		assert.Equal(t, []float64{6, 7, 8}, w.Window(3))
		assert.Equal(t, []float64{4, 5, 6, 7, 8}, w.Window(5))
	})
}

func TestSeriesUnit(t *testing.T) {
	s := NewSeries(10)
	assert.Empty(t, s.Unit())

	s.SetUnit("ms")
	assert.Equal(t, "ms", s.Unit())
}

func TestDefaultCapacity(t *testing.T) {
	assert.Equal(t, 200, DefaultCapacity)
}
