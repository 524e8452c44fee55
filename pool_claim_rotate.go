//go:build !randomised_claim

package lfqueue

import "sync/atomic"

// hintCursor is the default, rotating-hint claim start. A shared atomic
// counter produces a monotonically increasing index; each claim begins
// scanning at start.Add(1) mod n.
type hintCursor struct {
	start atomic.Uint64
}

func (h *hintCursor) next(n uint32) uint32 {
	return uint32(h.start.Add(1) % uint64(n))
}
