// Package spsc provides a fixed-capacity, lock-free channel for exactly
// one producer goroutine and one consumer goroutine.
//
// A [Channel] trades the generality of Go's built-in channels for a
// zero-allocation, zero-syscall hot path: the two sides communicate
// through a preallocated ring and two atomic cursors, blocking by
// cooperative spinning instead of parking in the runtime. Use it where
// a built-in channel shows up in profiles: tight produce/consume loops
// moving small items at high rates between two fixed goroutines.
//
// # Creating a Channel
//
// [New] allocates a channel with a fixed capacity; the capacity never
// changes and no further allocation happens on the data path:
//
//	ch, err := spsc.New[int](1024)
//	if err != nil {
//	    return err
//	}
//
// [MustNew] panics instead of returning an error, for constant
// capacities.
//
// # Producing and Consuming
//
// [Channel.Put] appends an item, blocking while the ring is full.
// [Channel.Take] removes the oldest item, blocking while the ring is
// empty. Items are delivered strictly first-in, first-out:
//
//	go func() {
//	    for i := 0; i < 100; i++ {
//	        _ = ch.Put(i)
//	    }
//	    ch.Close()
//	}()
//
//	for v, err := ch.Take(); err == nil; v, err = ch.Take() {
//	    process(v)
//	}
//
// [Channel.Wait] blocks until an item is available without consuming
// it. [Channel.Range] and [Channel.Drain] consume the channel to
// exhaustion, ending cleanly on [ErrClosed] and surfacing any fault.
//
// # Batch Transfer
//
// [Channel.PutBatch], [Channel.TakeInto], and [Channel.TakeBatch] move
// many items per call. The ring is walked in contiguous runs (at most
// two per wraparound) with one atomic cursor publish per run, so the
// per-item synchronization cost shrinks with batch size. Partial
// results on early close follow [io.ReadFull] conventions: the count is
// returned alongside the error.
//
// # Lifecycle and Faults
//
// [Channel.Close] shuts the channel down; buffered items stay takeable,
// and once drained, takes return [ErrClosed]. [Channel.CloseWithError]
// records a fault that replaces [ErrClosed] in every subsequent error
// return, letting the consumer distinguish "producer finished" from
// "producer died". The first close of either flavor wins; later calls
// are no-ops.
//
// [Channel.Bind] ties the channel to anything with a Wait() error
// method, such as a [golang.org/x/sync/errgroup.Group] or a
// [github.com/sourcegraph/conc/pool.ErrorPool], closing the channel
// when the task finishes and forwarding its failure as a [*TaskError].
//
// # Wait Strategies
//
// Blocked operations poll with a configurable [Waiter]. The default,
// [Yield], surrenders the processor between attempts. [Spin] trades CPU
// for latency by yielding only every n-th miss; [Backoff] trades
// latency for CPU by sleeping with exponentially growing pauses. Set
// one with [WithWaiter]:
//
//	ch := spsc.MustNew[event](512, spsc.WithWaiter(spsc.Spin(64)))
//
// # The Contract
//
// Exactly one goroutine may produce (Put, PutBatch) and exactly one may
// consume (Take, TakeInto, TakeBatch, Wait, Range, Drain) at a time.
// The discipline is a contract, not a runtime check: violating it is a
// data race. During development, [WithMisuseGuard] adds a cheap check
// that panics on overlapping same-side calls. Close, CloseWithError,
// Bind, and the observational queries ([Channel.Len], [Channel.IsEmpty],
// [Channel.IsFull], [Channel.IsReady], [Channel.IsOpen], [Channel.Err],
// [Channel.Stats]) are safe from any goroutine.
package spsc
