package spsc

import (
	"errors"
	"fmt"
)

// ErrClosed is the generic closed-channel condition. Put and PutBatch
// return it for any call made after the channel was closed; Take and
// its batch forms return it once a closed channel has also been
// drained. When the channel was closed with a fault, operations return
// the fault instead.
var ErrClosed = errors.New("spsc: channel is closed")

// ErrCapacity is returned (wrapped) by [New] when the requested
// capacity is less than 1.
var ErrCapacity = errors.New("spsc: capacity must be at least 1")

// TaskError wraps the failure of a task bound to a channel via
// [Channel.Bind]. Operations on the closed channel surface the
// TaskError in place of [ErrClosed], so the side still running can
// attribute the shutdown to the bound task's failure.
type TaskError struct {
	Err error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("spsc: bound task failed: %v", e.Err)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

// IsTaskError reports whether err (or any error in its chain) is a
// [*TaskError], i.e. whether a failure propagated from a bound task.
func IsTaskError(err error) bool {
	if err == nil {
		return false
	}
	var te *TaskError
	return errors.As(err, &te)
}

// CauseOf unwraps the first [*TaskError] in err's chain and returns the
// underlying task failure. If err is not a TaskError, it is returned
// as-is. Returns nil if err is nil.
func CauseOf(err error) error {
	if err == nil {
		return nil
	}

	var te *TaskError
	if errors.As(err, &te) {
		return te.Err
	}

	return err
}
