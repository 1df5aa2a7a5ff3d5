package spsc_test

import (
	"testing"

	"go.uber.org/goleak"
)

// Every blocking operation and every Bind monitor must terminate once
// the channel closes; a stuck spinner or an orphaned monitor shows up
// here as a leaked goroutine.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
