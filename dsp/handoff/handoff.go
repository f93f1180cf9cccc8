// Package handoff moves values from one producer goroutine to one consumer
// goroutine without locks.
//
// A [TripleBuffer] keeps three slots: the producer owns one (back), the
// consumer owns one (front) and the third (middle) is exchanged with an
// atomic swap. Publishing never waits for the consumer and reading never
// waits for the producer, so the audio thread can pick up new filter
// coefficients between blocks without blocking or observing a half-written
// snapshot. Intermediate values the consumer never reads are dropped.
package handoff

import "sync/atomic"

const (
	indexMask uint32 = 0b011
	freshBit  uint32 = 0b100
)

// TripleBuffer is a single-producer single-consumer latest-value mailbox.
//
// Back, Write and Publish belong to the producer; Front and Read belong to
// the consumer. Each side must be used from one goroutine at a time.
type TripleBuffer[T any] struct {
	slots  [3]T
	middle atomic.Uint32

	// producer side
	back int

	// consumer side
	front int
}

// New returns a buffer whose three slots hold copies of initial. Values that
// own memory (slices, maps, pointers) end up shared between slots; use
// [NewFunc] for those.
func New[T any](initial T) *TripleBuffer[T] {
	return NewFunc(func() T { return initial })
}

// NewFunc returns a buffer whose slots are filled by three calls of newSlot.
func NewFunc[T any](newSlot func() T) *TripleBuffer[T] {
	b := &TripleBuffer[T]{back: 0, front: 1}
	for i := range b.slots {
		b.slots[i] = newSlot()
	}
	b.middle.Store(2)
	return b
}

// Back returns the slot the producer may fill before calling [TripleBuffer.Publish].
// Its contents are whatever was last swapped out and must be overwritten.
func (b *TripleBuffer[T]) Back() *T {
	return &b.slots[b.back]
}

// Publish makes the back slot the latest value and takes over the former
// middle slot as the new back slot.
func (b *TripleBuffer[T]) Publish() {
	old := b.middle.Swap(uint32(b.back) | freshBit)
	b.back = int(old & indexMask)
}

// Write stores v in the back slot and publishes it.
func (b *TripleBuffer[T]) Write(v T) {
	b.slots[b.back] = v
	b.Publish()
}

// Front returns the slot the consumer currently holds.
func (b *TripleBuffer[T]) Front() *T {
	return &b.slots[b.front]
}

// Read swaps in the latest published value, if any, and returns the
// consumer slot. updated reports whether a new value arrived since the
// previous Read.
func (b *TripleBuffer[T]) Read() (latest *T, updated bool) {
	if b.middle.Load()&freshBit == 0 {
		return &b.slots[b.front], false
	}

	old := b.middle.Swap(uint32(b.front))
	b.front = int(old & indexMask)
	return &b.slots[b.front], true
}

// Pending reports whether a published value is waiting for the consumer.
func (b *TripleBuffer[T]) Pending() bool {
	return b.middle.Load()&freshBit != 0
}
