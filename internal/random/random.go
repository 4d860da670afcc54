package random

import "math/rand/v2"

//go:generate mockgen -source=random.go -destination=../mocks/mock_random.go -package=mocks

// Random is the source bots draw from. Tests swap in a scripted one.
type Random interface {
	// IntN returns an int in [0, n). n must be positive.
	IntN(n int) int
}

// Source is a Random backed by a PCG generator. It is not safe for
// concurrent use.
type Source struct {
	rng *rand.Rand
}

// New returns a Source seeded from the runtime's entropy.
func New() *Source {
	return NewSeeded(rand.Uint64())
}

// NewSeeded returns a Source whose sequence is fixed by seed.
func NewSeeded(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Source) IntN(n int) int {
	return s.rng.IntN(n)
}
