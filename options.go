package spsc

type config struct {
	waiter Waiter
	guard  bool
}

// Option configures a [Channel] at construction time.
type Option func(*config)

func defaultConfig() config {
	return config{
		waiter: Yield,
	}
}

// WithWaiter sets the wait strategy applied between attempts of blocked
// operations (Put and Take families, [Channel.Wait]). The default is
// [Yield]; see [Spin] and [Backoff] for the alternatives.
//
// Panics if w is nil.
func WithWaiter(w Waiter) Option {
	if w == nil {
		panic("spsc: WithWaiter requires a non-nil Waiter")
	}
	return func(c *config) {
		c.waiter = w
	}
}

// WithMisuseGuard enables runtime detection of SPSC contract
// violations: overlapping producer-side calls (or overlapping
// consumer-side calls) panic with a diagnostic instead of racing
// silently. The guard costs a couple of atomic operations per call, so
// it is off by default; enable it in tests and during development.
func WithMisuseGuard() Option {
	return func(c *config) {
		c.guard = true
	}
}
