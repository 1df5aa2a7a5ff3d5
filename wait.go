package spsc

import (
	"runtime"
	"time"
)

// Waiter is the policy a blocked operation applies between failed
// attempts. It receives the number of consecutive misses so far,
// starting at 1; the count resets whenever the operation makes
// progress. Waiters run on the calling goroutine and must return;
// blocking indefinitely inside a Waiter deadlocks the channel.
type Waiter func(spins int)

// Yield is the default Waiter: it yields the processor to the Go
// scheduler on every missed attempt. This is the pure spin-wait
// baseline with no locks and no timers.
func Yield(int) {
	runtime.Gosched()
}

// Spin returns a Waiter that busy-spins, yielding to the scheduler only
// every yieldEvery misses. Compared to [Yield] it trades CPU for lower
// wake-up latency when the peer is running on another core.
//
// Panics if yieldEvery < 1.
func Spin(yieldEvery int) Waiter {
	if yieldEvery < 1 {
		panic("spsc: Spin requires yieldEvery >= 1")
	}
	return func(spins int) {
		if spins%yieldEvery == 0 {
			runtime.Gosched()
		}
	}
}

// backoffYields is how many misses Backoff spends yielding before it
// starts sleeping.
const backoffYields = 64

// Backoff returns a Waiter that yields for the first misses and then
// sleeps with exponential backoff capped at limit. It is the only
// provided strategy that enters the OS timer path and trades wake-up
// latency for idle CPU; the default remains pure spinning.
//
// Panics if limit <= 0.
func Backoff(limit time.Duration) Waiter {
	if limit <= 0 {
		panic("spsc: Backoff requires limit > 0")
	}
	return func(spins int) {
		if spins <= backoffYields {
			runtime.Gosched()
			return
		}
		d := time.Microsecond << min(spins-backoffYields-1, 20)
		if d > limit {
			d = limit
		}
		time.Sleep(d)
	}
}
