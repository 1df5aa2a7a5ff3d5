package spsc

import (
	"fmt"
	"sync/atomic"
)

// Channel is a fixed-capacity, lock-free FIFO queue for exactly one
// producer goroutine and one consumer goroutine.
//
// The zero value is not usable; create channels with [New] or
// [MustNew]. A Channel must not be copied after first use.
//
// Storage is a ring of capacity+1 slots: one slot stays permanently
// reserved so that a full ring and an empty ring remain
// distinguishable. The producer owns the head cursor (next slot to
// write), the consumer owns the tail cursor (next slot to read), and
// the cursor arithmetic alone keeps the two sides from ever touching
// the same slot. Each side additionally keeps a plain cached copy of
// the peer's cursor, refreshed only when the ring looks full (producer)
// or empty (consumer); the peer cursor moves one way, so a stale cache
// is always pessimistic, never wrong.
type Channel[T any] struct {
	// Consumer-owned cache line: tail plus the consumer's view of head.
	tail       atomic.Int64
	cachedHead int64
	_          [48]byte

	// Producer-owned cache line: head plus the producer's view of tail.
	head       atomic.Int64
	cachedTail int64
	_          [48]byte

	state closeState

	// Read-only after construction.
	buf    []T
	ring   int64 // len(buf) == Cap()+1
	waiter Waiter
	guard  bool

	// Misuse-guard slots, used only when guard is set.
	putActive  atomic.Int32
	takeActive atomic.Int32
}

// New creates a Channel holding at most capacity items. It returns an
// error wrapping [ErrCapacity] if capacity < 1.
func New[T any](capacity int, opts ...Option) (*Channel[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrCapacity, capacity)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Channel[T]{
		buf:    make([]T, capacity+1),
		ring:   int64(capacity + 1),
		waiter: cfg.waiter,
		guard:  cfg.guard,
	}, nil
}

// MustNew is like [New] but panics instead of returning an error.
// Intended for tests and package-level initialization where the
// capacity is a constant.
func MustNew[T any](capacity int, opts ...Option) *Channel[T] {
	c, err := New[T](capacity, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Cap returns the channel's fixed capacity.
func (c *Channel[T]) Cap() int {
	return int(c.ring) - 1
}

// Len returns the number of buffered items, computed from a snapshot of
// both cursors. Called from the consumer goroutine it may undercount a
// concurrently arriving item but never overcounts; from the producer
// goroutine the staleness direction flips.
func (c *Channel[T]) Len() int {
	return int(c.occupied(c.head.Load(), c.tail.Load()))
}

// IsEmpty reports whether the channel holds no items. The result is
// exact on the consumer goroutine; on the producer goroutine it may
// report true while an item is still arriving, which at worst costs the
// caller one extra wait.
func (c *Channel[T]) IsEmpty() bool {
	return c.head.Load() == c.tail.Load()
}

// IsFull reports whether the channel is at capacity. The result is
// exact on the producer goroutine; on the consumer goroutine it may
// report true while a slot is being freed.
func (c *Channel[T]) IsFull() bool {
	return c.next(c.head.Load()) == c.tail.Load()
}

// IsReady reports whether at least one item is buffered, i.e.
// !IsEmpty. Staleness follows [Channel.IsEmpty].
func (c *Channel[T]) IsReady() bool {
	return !c.IsEmpty()
}

// Stats is a point-in-time snapshot of a channel's observable state.
type Stats struct {
	Len    int  // buffered items at snapshot time
	Cap    int  // fixed capacity
	Closed bool // whether the channel has been closed
}

// Stats returns a snapshot of the channel's state. Like the individual
// queries, the snapshot is subject to cross-goroutine staleness.
func (c *Channel[T]) Stats() Stats {
	return Stats{
		Len:    c.Len(),
		Cap:    c.Cap(),
		Closed: !c.IsOpen(),
	}
}

// next advances an index one slot around the ring.
func (c *Channel[T]) next(i int64) int64 {
	if i+1 == c.ring {
		return 0
	}
	return i + 1
}

// occupied returns the item count implied by a cursor snapshot.
func (c *Channel[T]) occupied(head, tail int64) int64 {
	d := head - tail
	if d < 0 {
		d += c.ring
	}
	return d
}

// acquire claims a misuse-guard slot and panics if it is already held,
// which means two goroutines overlapped on the same side of the channel.
func (c *Channel[T]) acquire(flag *atomic.Int32, op string) {
	if !flag.CompareAndSwap(0, 1) {
		panic("spsc: concurrent " + op + " calls violate the single-producer single-consumer contract")
	}
}
