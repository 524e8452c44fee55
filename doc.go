// Package lfqueue implements a bounded, multi-producer/multi-consumer
// FIFO queue whose Push and Pop never take a lock.
//
// The queue is a Go realization of the classic Michael & Scott
// non-blocking list algorithm: enqueue and dequeue splice and swing
// head/tail pointers with compare-and-swap, helping along a lagging
// tail as they go. Nodes are never allocated from the heap on the hot
// path — they come from a fixed-capacity slab pool with a version tag
// per slot, so a slot freed by one goroutine and immediately reclaimed
// by another can never be mistaken, under CAS, for the node that used
// to live there.
//
// There is no blocking API. Push reports failure when the pool is
// exhausted; Pop reports failure when the queue is empty. Neither
// spins nor waits internally — callers that want to retry do so
// themselves.
package lfqueue
