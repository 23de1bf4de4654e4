package world

import (
	"math"

	"github.com/OCharnyshevich/diamond-terrain/pkg/world/gen"
)

// Stats is a running summary of values, accumulated with Welford's method.
type Stats struct {
	Count    int
	Min, Max float64
	mean, m2 float64
}

// Add accumulates one value.
func (s *Stats) Add(v float64) {
	if s.Count == 0 {
		s.Min, s.Max = v, v
	}
	s.Count++
	s.Min = math.Min(s.Min, v)
	s.Max = math.Max(s.Max, v)
	d := v - s.mean
	s.mean += d / float64(s.Count)
	s.m2 += d * (v - s.mean)
}

// AddChunk accumulates every value of c.
func (s *Stats) AddChunk(c *gen.ValueChunk) {
	for _, v := range c.Values {
		s.Add(v)
	}
}

// ChunkStats summarises a single chunk.
func ChunkStats(c *gen.ValueChunk) Stats {
	var s Stats
	s.AddChunk(c)
	return s
}

func (s Stats) Mean() float64 {
	return s.mean
}

// StdDev returns the population standard deviation, 0 for no values.
func (s Stats) StdDev() float64 {
	if s.Count == 0 {
		return 0
	}
	return math.Sqrt(s.m2 / float64(s.Count))
}
