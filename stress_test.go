package spsc_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/baxromumarov/spsc"
	"github.com/sourcegraph/conc"
)

// Chaos tests: real two-goroutine traffic at volumes that force many
// wraparounds and cache refreshes.

func TestStressTransferOrder(t *testing.T) {
	const total = 200_000
	ch := spsc.MustNew[int](64)

	var wg conc.WaitGroup
	wg.Go(func() {
		for i := range total {
			if err := ch.Put(i); err != nil {
				t.Errorf("unexpected Put error at %d: %v", i, err)
				return
			}
		}
		ch.Close()
	})

	for want := range total {
		v, err := ch.Take()
		if err != nil {
			t.Fatalf("Take %d failed: %v", want, err)
		}
		if v != want {
			t.Fatalf("order broken: got %d, want %d", v, want)
		}
	}
	if _, err := ch.Take(); err == nil {
		t.Fatal("expected a closed error after draining")
	}

	wg.Wait()
}

func TestStressSmallCapacities(t *testing.T) {
	for _, capacity := range []int{1, 2, 3, 7} {
		t.Run(fmt.Sprintf("capacity=%d", capacity), func(t *testing.T) {
			const total = 20_000
			ch := spsc.MustNew[int](capacity)

			var wg conc.WaitGroup
			wg.Go(func() {
				for i := range total {
					if err := ch.Put(i); err != nil {
						return
					}
				}
				ch.Close()
			})

			for want := range total {
				v, err := ch.Take()
				if err != nil {
					t.Fatalf("Take %d failed: %v", want, err)
				}
				if v != want {
					t.Fatalf("order broken: got %d, want %d", v, want)
				}
			}

			wg.Wait()
		})
	}
}

// Pointer payloads exercise the slot-zeroing path: a reused slot must
// never hand the consumer a previous round's pointer.
func TestStressPointerPayload(t *testing.T) {
	type record struct{ seq int }
	const total = 50_000
	ch := spsc.MustNew[*record](8)

	var wg conc.WaitGroup
	wg.Go(func() {
		for i := range total {
			if err := ch.Put(&record{seq: i}); err != nil {
				return
			}
		}
		ch.Close()
	})

	for want := range total {
		r, err := ch.Take()
		if err != nil {
			t.Fatalf("Take %d failed: %v", want, err)
		}
		if r == nil || r.seq != want {
			t.Fatalf("order broken: got %+v, want seq %d", r, want)
		}
	}
	if _, err := ch.Take(); err == nil {
		t.Fatal("expected a closed error after draining")
	}

	wg.Wait()
}

// Mixed batch and single-item traffic must still come out as one FIFO
// sequence. Producer and consumer chunk the stream differently so run
// boundaries never line up.
func TestStressBatchInterleave(t *testing.T) {
	const total = 100_000
	ch := spsc.MustNew[int](32)

	var wg conc.WaitGroup
	wg.Go(func() {
		chunks := []int{1, 3, 17, 7, 40, 2}
		sent := 0
		for turn := 0; sent < total; turn++ {
			size := chunks[turn%len(chunks)]
			if size == 1 {
				if err := ch.Put(sent); err != nil {
					return
				}
				sent++
				continue
			}
			if size > total-sent {
				size = total - sent
			}
			batch := make([]int, size)
			for i := range batch {
				batch[i] = sent + i
			}
			n, err := ch.PutBatch(batch)
			sent += n
			if err != nil {
				return
			}
		}
		ch.Close()
	})

	sizes := []int{5, 1, 23, 2, 64, 11}
	got := 0
	for turn := 0; got < total; turn++ {
		size := sizes[turn%len(sizes)]
		if size == 1 {
			v, err := ch.Take()
			if err != nil {
				t.Fatalf("Take at %d failed: %v", got, err)
			}
			if v != got {
				t.Fatalf("order broken: got %d, want %d", v, got)
			}
			got++
			continue
		}
		if size > total-got {
			size = total - got
		}
		buf := make([]int, size)
		n, err := ch.TakeInto(buf)
		if err != nil {
			t.Fatalf("TakeInto at %d failed: %v", got, err)
		}
		for i := range n {
			if buf[i] != got+i {
				t.Fatalf("order broken in batch: got %d, want %d", buf[i], got+i)
			}
		}
		got += n
	}

	wg.Wait()
}

// Closing from a third goroutine mid-transfer: everything the producer
// published must arrive, nothing more, and both sides must unblock.
func TestStressCloseMidTransfer(t *testing.T) {
	for round := range 20 {
		ch := spsc.MustNew[int](16)
		published := make(chan int, 1)

		var wg conc.WaitGroup
		wg.Go(func() {
			n := 0
			for {
				if err := ch.Put(n); err != nil {
					break
				}
				n++
			}
			published <- n
		})
		wg.Go(func() {
			time.Sleep(time.Duration(round%5) * 100 * time.Microsecond)
			ch.Close()
		})

		var got []int
		for {
			v, err := ch.Take()
			if err != nil {
				break
			}
			got = append(got, v)
		}

		wg.Wait()

		want := <-published
		if len(got) != want {
			t.Fatalf("round %d: consumer saw %d items, producer published %d", round, len(got), want)
		}
		for i, v := range got {
			if v != i {
				t.Fatalf("round %d: order broken at %d: got %d", round, i, v)
			}
		}
	}
}
