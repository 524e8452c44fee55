//go:build randomised_claim

package lfqueue

// hintCursor, under the randomised_claim build, draws each claim's
// start index from the runtime's own fast PRNG instead of rotating a
// shared counter — one less cache line under contention, at the cost
// of the round-robin fairness the default mode gives for free.
type hintCursor struct{}

func (h *hintCursor) next(n uint32) uint32 {
	return fastrandn(n)
}
