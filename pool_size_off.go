//go:build !hold_size

package lfqueue

// sizeCounter, without the hold_size build tag, costs nothing: no
// counter contention, no Used/Available accessors.
type sizeCounter struct{}

func (s *sizeCounter) init(int) {}

func (s *sizeCounter) reserve(uint32) bool { return true }

func (s *sizeCounter) release() {}
