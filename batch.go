package spsc

// PutBatch appends values in order, blocking until every item is
// written or the channel closes. It returns the number of items
// published. On a clean run that is len(values) with a nil error; if
// the channel closes mid-transfer, the already-published prefix count
// is returned with [ErrClosed] or the recorded fault, and that prefix
// remains visible to the consumer.
//
// The ring is filled in contiguous runs (at most two when the free
// region straddles the physical end of storage) with a single cursor
// publish per run, so a large batch costs far fewer atomic stores than
// the same items sent one [Channel.Put] at a time.
//
// An empty slice is a no-op returning (0, nil). PutBatch must only be
// called from the producer goroutine.
func (c *Channel[T]) PutBatch(values []T) (int, error) {
	if c.guard {
		c.acquire(&c.putActive, "PutBatch")
		defer c.putActive.Store(0)
	}

	written := 0
	spins := 0
	for written < len(values) {
		if c.state.isClosed() {
			return written, c.state.err()
		}

		head := c.head.Load()
		free := c.ring - 1 - c.occupied(head, c.cachedTail)
		if free == 0 {
			c.cachedTail = c.tail.Load()
			free = c.ring - 1 - c.occupied(head, c.cachedTail)
		}
		if free == 0 {
			spins++
			c.waiter(spins)
			continue
		}

		run := c.ring - head // contiguous slots up to the physical end
		if run > free {
			run = free
		}
		if rem := int64(len(values) - written); run > rem {
			run = rem
		}

		written += copy(c.buf[head:head+run], values[written:])
		next := head + run
		if next == c.ring {
			next = 0
		}
		c.head.Store(next) // one publish covers the whole run
		spins = 0
	}
	return written, nil
}

// TakeInto fills buf completely with the oldest items, blocking until
// len(buf) items have been read or the channel closes. It returns the
// number of items written to buf. On a clean run that is len(buf) with
// a nil error; if the channel closes and drains before buf is full, the
// partial count is returned with [ErrClosed] or the recorded fault, and
// buf[:count] holds valid items in FIFO order.
//
// Like [Channel.PutBatch], the ring is drained in contiguous runs with
// one cursor publish per run.
//
// An empty buffer is a no-op returning (0, nil). TakeInto must only be
// called from the consumer goroutine.
func (c *Channel[T]) TakeInto(buf []T) (int, error) {
	if c.guard {
		c.acquire(&c.takeActive, "TakeInto")
		defer c.takeActive.Store(0)
	}

	filled := 0
	spins := 0
	for filled < len(buf) {
		tail := c.tail.Load()
		used := c.occupied(c.cachedHead, tail)
		if used == 0 {
			c.cachedHead = c.head.Load()
			used = c.occupied(c.cachedHead, tail)
		}
		if used == 0 {
			if !c.state.isClosed() {
				spins++
				c.waiter(spins)
				continue
			}
			// Items published just before the close must still be
			// drained, so reload head after observing the flag.
			c.cachedHead = c.head.Load()
			if used = c.occupied(c.cachedHead, tail); used == 0 {
				return filled, c.state.err()
			}
		}

		run := c.ring - tail // contiguous slots up to the physical end
		if run > used {
			run = used
		}
		if rem := int64(len(buf) - filled); run > rem {
			run = rem
		}

		filled += copy(buf[filled:], c.buf[tail:tail+run])
		clear(c.buf[tail : tail+run]) // drop slot references for the collector
		next := tail + run
		if next == c.ring {
			next = 0
		}
		c.tail.Store(next) // one publish covers the whole run
		spins = 0
	}
	return filled, nil
}

// TakeBatch takes exactly n items, allocating the result slice. It
// blocks until n items have been read or the channel closes; on early
// close the slice holds the partial prefix and the error is non-nil,
// mirroring [Channel.TakeInto].
//
// TakeBatch panics if n is not positive. It must only be called from
// the consumer goroutine.
func (c *Channel[T]) TakeBatch(n int) ([]T, error) {
	if n <= 0 {
		panic("spsc: TakeBatch requires n > 0")
	}
	out := make([]T, n)
	filled, err := c.TakeInto(out)
	return out[:filled], err
}
