package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"

	"github.com/outofcolor/floodsolve/floodgraph"
	"github.com/outofcolor/floodsolve/internal/report"
)

// batchResult is one puzzle's outcome in a batch run.
type batchResult struct {
	path    string
	summary string
	err     error
}

func newBatchCmd() *cobra.Command {
	var eightWay bool

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Solve every puzzle file in a directory concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := os.ReadDir(args[0])
			if err != nil {
				return errors.Wrapf(err, "reading %s", args[0])
			}

			var paths []string
			for _, e := range entries {
				if !e.IsDir() {
					paths = append(paths, filepath.Join(args[0], e.Name()))
				}
			}

			updates := make(chan batchProgress, len(paths))
			var wg sync.WaitGroup
			wg.Add(1)
			go printBatchProgress(updates, &wg)

			timer := newPhaseTimer()
			results := solveBatch(cmd.Context(), paths, eightWay, timer, updates)
			close(updates)
			wg.Wait()

			solved, failed := 0, 0
			for _, r := range results {
				if r.err != nil {
					failed++
					fmt.Printf("%s: %v\n", r.path, r.err)
					continue
				}
				solved++
				fmt.Printf("%s: %s\n", r.path, r.summary)
			}
			fmt.Printf("%d solved, %d failed\n", solved, failed)
			fmt.Print(timer.results())
			return nil
		},
	}
	cmd.Flags().BoolVar(&eightWay, "diagonal", false, "use 8-neighbor (diagonal) adjacency")
	return cmd
}

// solveBatch fans out over paths using outofforest/parallel's goroutine
// group; each puzzle is an independent search with no shared mutable
// state, matching THE CORE's Non-goal of parallelizing a single search —
// the parallelism here is strictly across independent batch members.
func solveBatch(
	ctx context.Context, paths []string, eightWay bool, timer *phaseTimer, updates chan<- batchProgress,
) []batchResult {
	log := logger.Get(ctx)
	results := make([]batchResult, len(paths))
	var mu sync.Mutex
	var done int

	group := parallel.NewGroup(ctx)
	for i, path := range paths {
		i, path := i, path
		group.Spawn(path, parallel.Continue, func(ctx context.Context) error {
			res := solveOne(path, eightWay, timer)
			mu.Lock()
			results[i] = res
			done++
			updates <- batchProgress{done: done, total: len(paths), path: path}
			mu.Unlock()
			if res.err != nil {
				log.Info(fmt.Sprintf("%s failed: %v", path, res.err))
			}
			return nil
		})
	}
	group.Exit(nil)
	if err := group.Wait(); err != nil {
		log.Info(fmt.Sprintf("batch group error: %v", err))
	}
	return results
}

func solveOne(path string, eightWay bool, timer *phaseTimer) batchResult {
	var raw *floodgraph.Graph
	if err := timer.track("parse", func() error {
		var err error
		raw, _, _, err = loadPuzzle(path, eightWay)
		return err
	}); err != nil {
		return batchResult{path: path, err: err}
	}

	g := raw.Clone()
	if err := timer.track("reduce", func() error {
		return g.Reduce()
	}); err != nil {
		return batchResult{path: path, err: errors.Wrapf(err, "reducing %s", path)}
	}

	var seq []int
	if err := timer.track("solve", func() error {
		var err error
		seq, err = floodgraph.Solve(g)
		return err
	}); err != nil {
		return batchResult{path: path, err: errors.Wrapf(err, "solving %s", path)}
	}

	return batchResult{path: path, summary: report.Summary(seq)}
}
