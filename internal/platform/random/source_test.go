package random

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func TestSeededStaysWithinBounds(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		src := NewSeeded(seed)
		for i := 0; i < 50; i++ {
			n := src.IntRange(1, 100)
			if n < 1 || n > 100 {
				t.Fatalf("seed %d: value %d outside [1, 100]", seed, n)
			}
		}
	}
}

func TestSeededIsDeterministic(t *testing.T) {
	seed := int64(99)
	rng := rand.New(rand.NewSource(seed))
	want := []int{1 + rng.Intn(100), 1 + rng.Intn(100), 1 + rng.Intn(100)}

	src := NewSeeded(seed)
	for i, w := range want {
		if got := src.IntRange(1, 100); got != w {
			t.Fatalf("draw %d = %d, want %d", i, got, w)
		}
	}
	if src.Seed() != seed {
		t.Fatalf("expected seed %d, got %d", seed, src.Seed())
	}
}

func TestSeededReachesBothEnds(t *testing.T) {
	src := NewSeeded(3)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		seen[src.IntRange(1, 3)] = true
	}
	for _, n := range []int{1, 2, 3} {
		if !seen[n] {
			t.Fatalf("expected %d to be drawn from [1, 3], saw %v", n, seen)
		}
	}
}

func TestSeededSingleValueRange(t *testing.T) {
	if got := NewSeeded(5).IntRange(7, 7); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}

func TestSeededPanicsOnInvalidBounds(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidBounds) {
			t.Fatalf("expected ErrInvalidBounds panic, got %v", r)
		}
	}()
	NewSeeded(1).IntRange(10, 1)
}

func TestNewSourceKeepsExplicitSeed(t *testing.T) {
	src, err := NewSource(12)
	if err != nil {
		t.Fatalf("new source: %v", err)
	}
	if src.Seed() != 12 {
		t.Fatalf("expected seed 12, got %d", src.Seed())
	}
}

func TestNewSourceGeneratesSeedForZero(t *testing.T) {
	src, err := NewSource(0)
	if err != nil {
		t.Fatalf("new source: %v", err)
	}
	if n := src.IntRange(1, 100); n < 1 || n > 100 {
		t.Fatalf("value %d outside [1, 100]", n)
	}
}

func TestNewSeedFromReader(t *testing.T) {
	seed, err := newSeedFrom(bytes.NewReader([]byte{1, 0, 0, 0, 0, 0, 0, 0}))
	if err != nil {
		t.Fatalf("new seed: %v", err)
	}
	if seed != 1 {
		t.Fatalf("expected little-endian seed 1, got %d", seed)
	}
}

func TestNewSeedFromShortReader(t *testing.T) {
	if _, err := newSeedFrom(bytes.NewReader([]byte{1, 2})); err == nil {
		t.Fatal("expected error for short read")
	}
}
