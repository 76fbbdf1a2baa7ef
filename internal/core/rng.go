package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	return r.r.Float64() < p
}

// FillStates marks each cell alive with probability density.
func (r *RNG) FillStates(cells []Cell, density float64) {
	for i := range cells {
		cells[i].State = Dead
		if r.Chance(density) {
			cells[i].State = Alive
		}
	}
}
