// Package random provides the random source the game draws pieces from.
// It is an interface so tests can queue exact results.
package random

import "math/rand"

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// Seeded implements Random with a deterministic math/rand source.
// The same seed always yields the same sequence of pieces.
type Seeded struct {
	rng *rand.Rand
}

// New creates a Seeded source.
func New(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a random int in [0, n). Returns 0 for n <= 0.
func (r *Seeded) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}
