package random

import (
	"errors"
	"math/rand"
)

// ErrInvalidBounds indicates a range whose minimum exceeds its maximum.
var ErrInvalidBounds = errors.New("min must not exceed max")

// Source draws integers uniformly from a closed interval.
type Source interface {
	// IntRange returns a value n with min <= n <= max.
	IntRange(min, max int) int
}

// Seeded is a math/rand backed Source.
//
// Seeded is deterministic with respect to its seed: two sources built from the
// same seed return the same sequence for the same calls.
type Seeded struct {
	seed int64
	rng  *rand.Rand
}

// NewSeeded returns a Source seeded with seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// NewSource returns a Seeded source. A zero seed is replaced with a
// crypto-random one.
func NewSource(seed int64) (*Seeded, error) {
	if seed == 0 {
		generated, err := NewSeed()
		if err != nil {
			return nil, err
		}
		seed = generated
	}
	return NewSeeded(seed), nil
}

// Seed returns the seed the source was built with.
func (s *Seeded) Seed() int64 {
	return s.seed
}

// IntRange returns a uniform value in [min, max]. It panics when min > max;
// callers validate bounds first.
func (s *Seeded) IntRange(min, max int) int {
	if min > max {
		panic(ErrInvalidBounds)
	}
	return min + s.rng.Intn(max-min+1)
}
