package main

import (
	"fmt"
	"time"

	"github.com/baxromumarov/spsc"
)

// Round-trip latency probe: bounce an int between two goroutines
// through a pair of capacity-1 channels and compare with the native
// channel equivalent.

const rounds = 200_000

func main() {
	fmt.Printf("spsc ping-pong:   %v/round\n", spscPingPong())
	fmt.Printf("native ping-pong: %v/round\n", nativePingPong())
}

func spscPingPong() time.Duration {
	req := spsc.MustNew[int](1)
	resp := spsc.MustNew[int](1)

	go func() {
		for {
			v, err := req.Take()
			if err != nil {
				resp.Close()
				return
			}
			_ = resp.Put(v + 1)
		}
	}()

	start := time.Now()
	for i := 0; i < rounds; i++ {
		_ = req.Put(i)
		_, _ = resp.Take()
	}
	elapsed := time.Since(start)

	req.Close()
	_, _ = resp.Take()
	return elapsed / rounds
}

func nativePingPong() time.Duration {
	req := make(chan int, 1)
	resp := make(chan int, 1)

	go func() {
		for v := range req {
			resp <- v + 1
		}
		close(resp)
	}()

	start := time.Now()
	for i := 0; i < rounds; i++ {
		req <- i
		<-resp
	}
	elapsed := time.Since(start)

	close(req)
	<-resp
	return elapsed / rounds
}
