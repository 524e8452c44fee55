package lfqueue

import _ "unsafe"

// fastrandn is the runtime's own fast, non-cryptographic PRNG. It seeds
// the randomised_claim build's per-call scan start index.
//
//go:linkname fastrandn runtime.fastrandn
func fastrandn(n uint32) uint32
