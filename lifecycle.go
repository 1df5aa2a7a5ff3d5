package spsc

import (
	"sync"

	"go.uber.org/atomic"
)

// closeState carries the closed flag and the optional fault for a
// channel. The first close wins: once the flag is set the channel's
// terminal error never changes.
//
// A fault is stored before the flag flips, so any goroutine that
// observes closed also observes the fault that came with it.
type closeState struct {
	once   sync.Once
	closed atomic.Bool
	fault  atomic.Error
}

// close marks the state closed, recording err as the fault when
// non-nil. Calls after the first are no-ops.
func (s *closeState) close(err error) {
	s.once.Do(func() {
		if err != nil {
			s.fault.Store(err)
		}
		s.closed.Store(true)
	})
}

func (s *closeState) isClosed() bool {
	return s.closed.Load()
}

// err returns the terminal error for a closed state: the recorded
// fault, or [ErrClosed] for a clean close.
func (s *closeState) err() error {
	if f := s.fault.Load(); f != nil {
		return f
	}
	return ErrClosed
}

// Close marks the channel closed. Items already buffered stay readable;
// once they are drained, takes return [ErrClosed]. Puts fail with
// [ErrClosed] immediately. Close is idempotent and safe to call from
// any goroutine; only the first close (of either flavor) takes effect.
func (c *Channel[T]) Close() {
	c.state.close(nil)
}

// CloseWithError is like [Channel.Close] but records err as the
// channel's fault: after the buffer drains, takes and waits return err
// instead of [ErrClosed], and [Channel.Err] reports it. A nil err is
// equivalent to Close.
func (c *Channel[T]) CloseWithError(err error) {
	c.state.close(err)
}

// IsOpen reports whether the channel accepts new items.
func (c *Channel[T]) IsOpen() bool {
	return !c.state.isClosed()
}

// Err returns nil while the channel is open, the recorded fault after
// [Channel.CloseWithError], and [ErrClosed] after a clean
// [Channel.Close].
func (c *Channel[T]) Err() error {
	if !c.state.isClosed() {
		return nil
	}
	return c.state.err()
}

// Task is anything whose completion can be waited on: a
// [golang.org/x/sync/errgroup.Group], a pool from
// github.com/sourcegraph/conc, or any value with a blocking Wait that
// reports how the work ended.
type Task interface {
	Wait() error
}

// Bind ties the channel's lifetime to a task, typically the producer's
// worker group. A monitor goroutine blocks in t.Wait(); when the task
// finishes, the monitor closes the channel: cleanly on success, or
// with a [*TaskError] carrying the task's error (or the recovered
// [*PanicError] if Wait panicked) on failure. Buffered items remain
// takeable either way.
//
// Bind panics if t is nil. Binding more than one task is allowed; the
// first task to finish with an error decides the channel's fault.
func (c *Channel[T]) Bind(t Task) {
	if t == nil {
		panic("spsc: Bind requires a non-nil Task")
	}
	go func() {
		if err := waitTask(t); err != nil {
			c.CloseWithError(&TaskError{Err: err})
			return
		}
		c.Close()
	}()
}

// waitTask runs t.Wait, converting a panic into a [*PanicError] so a
// crashing task still surfaces as a channel fault instead of killing
// the process from the monitor goroutine.
func waitTask(t Task) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = newPanicError(v)
		}
	}()
	return t.Wait()
}
