// Package rng provides the seeded pseudo-random stream that defines the
// seed-to-world mapping. Changing any constant here changes every world.
package rng

// Recurrence constants: state = (state*A + C) mod M, output = state / M.
const (
	A int64 = 9301
	C int64 = 49297
	M int64 = 233280
)

// LCG is a linear congruential generator producing floats in [0, 1).
// It has no external entropy; the same seed always yields the same stream.
type LCG struct {
	state int64
	draws uint64
}

// New creates a generator for seed. Seeds are reduced into [0, M), which
// leaves the stream unchanged for every seed already in that range.
func New(seed int64) *LCG {
	s := seed % M
	if s < 0 {
		s += M
	}
	return &LCG{state: s}
}

// Next advances the state and returns state / M.
func (r *LCG) Next() float64 {
	r.state = (r.state*A + C) % M
	r.draws++
	return float64(r.state) / float64(M)
}

// State returns the current internal state.
func (r *LCG) State() int64 {
	return r.state
}

// Draws returns how many samples have been consumed.
func (r *LCG) Draws() uint64 {
	return r.draws
}
