package spsc

// Put appends v to the channel, blocking with the configured [Waiter]
// while the ring is full. It returns [ErrClosed] (or the recorded
// fault) once the channel is closed, without writing v.
//
// Put must only be called from the producer goroutine.
func (c *Channel[T]) Put(v T) error {
	if c.guard {
		c.acquire(&c.putActive, "Put")
		defer c.putActive.Store(0)
	}

	head := c.head.Load()
	next := c.next(head)

	for spins := 1; ; spins++ {
		if c.state.isClosed() {
			return c.state.err()
		}
		if next != c.cachedTail {
			break
		}
		c.cachedTail = c.tail.Load()
		if next != c.cachedTail {
			break
		}
		c.waiter(spins)
	}

	c.buf[head] = v
	c.head.Store(next) // publish: slot write precedes cursor store
	return nil
}

// Take removes and returns the oldest item, blocking with the
// configured [Waiter] while the ring is empty. A closed channel drains
// first: items buffered before the close are still delivered in order,
// and only then does Take return [ErrClosed] or the recorded fault
// alongside the zero value.
//
// Take must only be called from the consumer goroutine.
func (c *Channel[T]) Take() (T, error) {
	if c.guard {
		c.acquire(&c.takeActive, "Take")
		defer c.takeActive.Store(0)
	}

	tail := c.tail.Load()

	for spins := 1; ; spins++ {
		if tail != c.cachedHead {
			break
		}
		c.cachedHead = c.head.Load()
		if tail != c.cachedHead {
			break
		}
		if c.state.isClosed() {
			// An item published just before the close must still be
			// seen, so reload head after observing the flag.
			c.cachedHead = c.head.Load()
			if tail != c.cachedHead {
				break
			}
			var zero T
			return zero, c.state.err()
		}
		c.waiter(spins)
	}

	v := c.buf[tail]
	var zero T
	c.buf[tail] = zero // drop the slot's reference for the collector
	c.tail.Store(c.next(tail))
	return v, nil
}

// Wait blocks until the channel is ready, that is, holds at least one
// item, or is closed and fully drained. It returns nil when an item is
// available, and [ErrClosed] or the recorded fault when no item will
// ever arrive. Wait consumes nothing; a nil return guarantees the next
// [Channel.Take] succeeds without blocking.
//
// Wait shares the consumer's cursor cache and must only be called from
// the consumer goroutine.
func (c *Channel[T]) Wait() error {
	if c.guard {
		c.acquire(&c.takeActive, "Wait")
		defer c.takeActive.Store(0)
	}

	tail := c.tail.Load()

	for spins := 1; ; spins++ {
		if tail != c.cachedHead {
			return nil
		}
		c.cachedHead = c.head.Load()
		if tail != c.cachedHead {
			return nil
		}
		if c.state.isClosed() {
			c.cachedHead = c.head.Load()
			if tail != c.cachedHead {
				return nil
			}
			return c.state.err()
		}
		c.waiter(spins)
	}
}
