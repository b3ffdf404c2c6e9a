package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/outofforest/logger"

	"github.com/outofcolor/floodsolve/floodgraph"
	"github.com/outofcolor/floodsolve/internal/puzzlefile"
	"github.com/outofcolor/floodsolve/internal/report"
)

func newSolveCmd() *cobra.Command {
	var eightWay bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "solve <puzzle-file>",
		Short: "Solve a single puzzle and print the move sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.Get(cmd.Context())

			raw, width, height, err := loadPuzzle(args[0], eightWay)
			if err != nil {
				return err
			}

			g := raw.Clone()
			root := g.Root()
			if err := g.Reduce(); err != nil {
				return errors.Wrapf(err, "reducing %s", args[0])
			}

			seq, err := floodgraph.Solve(g)
			if err != nil {
				return errors.Wrapf(err, "solving %s", args[0])
			}

			log.Info(fmt.Sprintf("solved %s in %d moves", args[0], len(seq)-1))
			fmt.Println(report.Summary(seq))
			if verbose {
				fmt.Print(report.VerboseGrid(raw, root, width, height, seq[1:]))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&eightWay, "diagonal", false, "use 8-neighbor (diagonal) adjacency")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the grid after each move")
	return cmd
}

func loadPuzzle(path string, eightWay bool) (*floodgraph.Graph, int, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, 0, errors.Wrapf(err, "reading %s", path)
	}
	adjacency := puzzlefile.FourWay
	if eightWay {
		adjacency = puzzlefile.EightWay
	}
	g, width, height, err := puzzlefile.Parse(string(data), adjacency)
	if err != nil {
		return nil, 0, 0, errors.Wrapf(err, "parsing %s", path)
	}
	return g, width, height, nil
}
