package buffer

import (
	"math"
)

// Stats tracks the running mean, spread and range of a stream of values.
type Stats struct {
	count    int
	mean     float64
	m2       float64
	min, max float64
}

// NewStats creates a new Stats.
func NewStats() *Stats {
	return &Stats{
		min: math.Inf(1),
		max: math.Inf(-1),
	}
}

// Push adds a value, updating mean and variance in a single pass.
func (s *Stats) Push(v float64) {
	s.count++
	delta := v - s.mean
	s.mean += delta / float64(s.count)
	s.m2 += delta * (v - s.mean)
	s.min = math.Min(s.min, v)
	s.max = math.Max(s.max, v)
}

// Count returns the number of values.
func (s Stats) Count() int {
	return s.count
}

// Avg returns the mean of the values.
func (s Stats) Avg() float64 {
	return s.mean
}

// StDev is the population standard deviation of the values.
func (s Stats) StDev() float64 {
	if s.count == 0 {
		return 0
	}
	return math.Sqrt(s.m2 / float64(s.count))
}

// Min returns the smallest value, or 0 if there is none.
func (s Stats) Min() float64 {
	if s.count == 0 {
		return 0
	}
	return s.min
}

// Max returns the largest value, or 0 if there is none.
func (s Stats) Max() float64 {
	if s.count == 0 {
		return 0
	}
	return s.max
}
