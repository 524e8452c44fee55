package lfqueue

import (
	"sync/atomic"
	"unsafe"

	"github.com/avbrk/lfqueue/internal/race"
)

// Queue is a bounded, multi-producer/multi-consumer FIFO queue of T.
// Push and Pop never block and never take a lock; the zero value is
// not usable — construct one with New.
type Queue[T any] struct {
	pool *pool[T]
	head atomic.Uint64 // taggedPtr to the sentinel
	tail atomic.Uint64 // taggedPtr to the true last node, or its predecessor
}

// New constructs a Queue with fixed capacity n, including the sentinel
// — usable capacity is n-1. n must be a positive multiple of 64; Go has
// no compile-time static_assert for a runtime constructor argument, so
// this constraint is reported here as an error instead.
func New[T any](n int) (*Queue[T], error) {
	p, err := newPool[T](n)
	if err != nil {
		return nil, err
	}
	sentinel, ok := p.construct(*new(T))
	if !ok {
		// n >= wordBits > 0, so a fresh pool always has room for one slot.
		panic("lfqueue: failed to allocate sentinel from a fresh pool")
	}
	q := &Queue[T]{pool: p}
	q.head.Store(uint64(sentinel))
	q.tail.Store(uint64(sentinel))
	return q, nil
}

// Push copies value into a fresh node and splices it onto the tail. It
// returns false iff the pool was exhausted; it never blocks.
func (q *Queue[T]) Push(value T) bool {
	n, ok := q.pool.construct(value)
	if !ok {
		return false
	}
	nodePtr := &q.pool.nodes[n.index()]

	for {
		lastF := taggedPtr(q.tail.Load())
		last := &q.pool.nodes[lastF.index()]
		nextF := last.loadNext()

		if lastF != taggedPtr(q.tail.Load()) {
			continue
		}
		if !nextF.isNull() {
			// Tail is lagging behind the true last node; help it catch up.
			q.tail.CompareAndSwap(uint64(lastF), uint64(nextF))
			continue
		}
		if last.casNext(nextF, n) {
			race.ReleaseMerge(unsafe.Pointer(nodePtr))
			q.tail.CompareAndSwap(uint64(lastF), uint64(n))
			return true
		}
	}
}

// Pop writes the front value into *out and returns true, or returns
// false if the queue was observed empty. It never blocks.
func (q *Queue[T]) Pop(out *T) bool {
	for {
		headF := taggedPtr(q.head.Load())
		tailF := taggedPtr(q.tail.Load())
		sentinel := &q.pool.nodes[headF.index()]
		firstF := sentinel.loadNext()

		if headF != taggedPtr(q.head.Load()) {
			continue
		}
		if headF == tailF {
			if firstF.isNull() {
				return false
			}
			// Tail is lagging; help it catch up, then retry.
			q.tail.CompareAndSwap(uint64(tailF), uint64(firstF))
			continue
		}

		first := &q.pool.nodes[firstF.index()]
		race.Acquire(unsafe.Pointer(first))
		// Read the value before the CAS: once head swings, another
		// consumer may promote this node to sentinel and recycle it.
		value := first.value
		if q.head.CompareAndSwap(uint64(headF), uint64(firstF)) {
			*out = value
			q.pool.destruct(headF)
			return true
		}
	}
}

// Empty reports whether head and tail, tag included, compare equal. It
// is an advisory snapshot, not a synchronization point, and may race
// with concurrent Push/Pop; callers with correctness needs must use
// Pop.
func (q *Queue[T]) Empty() bool {
	return q.head.Load() == q.tail.Load()
}

// Close reclaims every node still reachable from the queue, including
// the sentinel. The caller must guarantee no goroutine touches the
// queue during or after Close — it is a precondition, not a runtime
// check.
func (q *Queue[T]) Close() {
	q.pool.close()
}
