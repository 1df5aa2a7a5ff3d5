package spsc

import "errors"

// Range takes items one at a time and passes each to fn, in FIFO order,
// until the channel is closed and drained or fn returns false. A clean
// close ends the loop with a nil error; a fault recorded by
// [Channel.CloseWithError] or a bound task ends it with that fault, so
// the consumer sees how the producer side died.
//
// The sequence is not restartable: items handed to fn are consumed.
// Range panics if fn is nil and must only be called from the consumer
// goroutine.
func (c *Channel[T]) Range(fn func(v T) bool) error {
	if fn == nil {
		panic("spsc: Range requires a non-nil func")
	}
	for {
		v, err := c.Take()
		if err != nil {
			if errors.Is(err, ErrClosed) {
				return nil // clean close ends the sequence
			}
			return err
		}
		if !fn(v) {
			return nil
		}
	}
}

// Drain takes every remaining item until the channel is closed and
// empty, returning them in FIFO order. On a fault the items taken so
// far are returned together with the fault. Use this at shutdown to
// collect whatever the producer managed to publish.
//
// Drain must only be called from the consumer goroutine.
func (c *Channel[T]) Drain() ([]T, error) {
	var out []T
	err := c.Range(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out, err
}
