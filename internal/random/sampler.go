// Package random provides the integer range sampler used for obstacle
// placement and seed generation for the platform layer.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Sampler draws integers uniformly from inclusive ranges.
type Sampler interface {
	Between(min, max int) int
}

// RandSampler is a Sampler backed by a seeded math/rand source.
// The same seed always yields the same sequence of draws.
type RandSampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler seeded with seed.
func NewSampler(seed int64) *RandSampler {
	return &RandSampler{rng: rand.New(rand.NewSource(seed))}
}

// Between returns an integer in [min, max].
// Panics if min > max; callers validate their ranges up front.
func (s *RandSampler) Between(min, max int) int {
	if min > max {
		panic(fmt.Sprintf("random: empty range [%d, %d]", min, max))
	}
	if min == max {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// NewSeed generates a seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("random: read seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
