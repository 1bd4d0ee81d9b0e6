// Package numgen produces the random numbers shown during a practice run.
package numgen

import (
	"math/rand/v2"
	"time"
)

// Source yields uniformly distributed integers in [min, max] inclusive.
// Callers guarantee min <= max.
type Source interface {
	UniformInt(min, max int) int
}

// RandSource is a Source backed by a PCG generator.
type RandSource struct {
	rng *rand.Rand
}

var _ Source = (*RandSource)(nil)

// NewSource returns a deterministic Source for the given seed.
func NewSource(seed uint64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandomSource returns a Source seeded from the wall clock.
func NewRandomSource() *RandSource {
	return NewSource(uint64(time.Now().UnixNano()))
}

// UniformInt returns an integer in [min, max].
func (s *RandSource) UniformInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.IntN(max-min+1)
}

// Generate draws one number from src.
func Generate(src Source, min, max int) int {
	return src.UniformInt(min, max)
}

// Sequence is a Source that replays fixed values in order, wrapping at
// the end. Values outside [min, max] are returned as-is.
type Sequence struct {
	Values []int
	next   int
}

var _ Source = (*Sequence)(nil)

// UniformInt returns the next value of the sequence.
func (s *Sequence) UniformInt(min, _ int) int {
	if len(s.Values) == 0 {
		return min
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}
