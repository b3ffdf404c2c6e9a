package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/outofforest/logger"
)

func main() {
	ctx := logger.WithLogger(context.Background(), logger.New(logger.DefaultConfig))

	root := &cobra.Command{
		Use:   "floodsolve",
		Short: "Find a provably shortest flood-fill move sequence",
	}
	root.AddCommand(newSolveCmd(), newBatchCmd())

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
