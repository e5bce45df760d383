// Package random provides the randomness used to draw secrets: a pluggable
// Source, a deterministic seeded implementation, and crypto seed generation.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	return newSeedFrom(crand.Reader)
}

func newSeedFrom(reader io.Reader) (int64, error) {
	var b [8]byte
	if _, err := io.ReadFull(reader, b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
