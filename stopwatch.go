package main

import (
	"fmt"
	"sync"
	"time"
)

// phaseTimer accumulates wall-clock time spent in named phases across a
// batch run (parsing, reducing, searching), keyed per phase rather than
// per puzzle so the totals show where a batch actually spent its time.
type phaseTimer struct {
	mu      sync.Mutex
	buckets map[string]time.Duration
}

func newPhaseTimer() *phaseTimer {
	return &phaseTimer{buckets: make(map[string]time.Duration)}
}

// track runs fn, adding its duration to bucket. Safe for concurrent callers
// across different goroutines, since batch puzzles solve in parallel.
func (p *phaseTimer) track(bucket string, fn func() error) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	p.mu.Lock()
	p.buckets[bucket] += elapsed
	p.mu.Unlock()
	return err
}

func (p *phaseTimer) results() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := ""
	for _, bucket := range []string{"parse", "reduce", "solve"} {
		out += fmt.Sprintf("%s: %.4fs\n", bucket, p.buckets[bucket].Seconds())
	}
	return out
}
