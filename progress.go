package main

import (
	"fmt"
	"sync"
)

// batchProgress reports one puzzle's completion within a batch run.
type batchProgress struct {
	done  int
	total int
	path  string
}

// printBatchProgress drains updates and redraws a progress bar in place,
// the same "erase-and-reprint" terminal trick the original solver used for
// its own long-running search.
func printBatchProgress(updates <-chan batchProgress, wg *sync.WaitGroup) {
	defer wg.Done()
	fmt.Println("Starting batch...")
	for update := range updates {
		pct := float64(update.done) / float64(update.total)
		bar := ""
		for i := 0.05; i <= 1.0; i += 0.05 {
			if pct >= i {
				bar += "="
			} else {
				bar += "."
			}
		}
		fmt.Print("\033[1A\033[K")
		fmt.Printf("[%s] %d/%d (%s)\n", bar, update.done, update.total, update.path)
	}
}
