// Package report renders the move sequence floodgraph.Solve returns into
// human-readable output, including an optional step-by-step grid replay.
// This is external-collaborator territory: THE CORE never formats or
// prints anything.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/outofcolor/floodsolve/floodgraph"
	"github.com/outofcolor/floodsolve/internal/puzzlefile"
)

// Summary renders the sequence floodgraph.Solve returns (root color
// followed by each chosen move) as "root -> c1 -> c2 -> ... -> cn (N
// moves)".
func Summary(seq []int) string {
	parts := make([]string, len(seq))
	for i, c := range seq {
		parts[i] = strconv.Itoa(c)
	}
	moves := len(seq) - 1
	if moves < 0 {
		moves = 0
	}
	return fmt.Sprintf("%s (%d moves)", strings.Join(parts, " -> "), moves)
}

// Replay walks moves against the unreduced graph g (width*height cells,
// root at index root), returning the grid's color vector after each move
// (index 0 is the state before any move, i.e. just the root's own blob
// repainted as itself). Grid cells outside the filled blob keep their
// original color.
func Replay(g *floodgraph.Graph, root int, moves []int) [][]int {
	filled := make([]bool, g.NumNodes())
	floodFrom(g, root, g.Node(root).Color, filled)

	colors := make([]int, g.NumNodes())
	for i := range colors {
		colors[i] = g.Node(i).Color
	}
	paint(colors, filled, g.Node(root).Color)

	steps := make([][]int, 0, len(moves)+1)
	steps = append(steps, append([]int(nil), colors...))

	for _, m := range moves {
		absorbNewlyAdjacent(g, filled, m)
		paint(colors, filled, m)
		steps = append(steps, append([]int(nil), colors...))
	}
	return steps
}

// floodFrom marks every node reachable from start through same-color
// edges as filled, seeding the initial blob before any move is applied.
func floodFrom(g *floodgraph.Graph, start, color int, filled []bool) {
	stack := []int{start}
	filled[start] = true
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, u := range g.Node(v).Neighbors {
			if !filled[u] && g.Node(u).Color == color {
				filled[u] = true
				stack = append(stack, u)
			}
		}
	}
}

// absorbNewlyAdjacent grows filled to include every node of color c
// adjacent to the current blob, then every node of color c adjacent to
// those, and so on, matching flood-fill semantics on the original grid.
func absorbNewlyAdjacent(g *floodgraph.Graph, filled []bool, c int) {
	var frontier []int
	for v := 0; v < g.NumNodes(); v++ {
		if !filled[v] {
			continue
		}
		for _, u := range g.Node(v).Neighbors {
			if !filled[u] && g.Node(u).Color == c {
				filled[u] = true
				frontier = append(frontier, u)
			}
		}
	}
	for len(frontier) > 0 {
		v := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for _, u := range g.Node(v).Neighbors {
			if !filled[u] && g.Node(u).Color == c {
				filled[u] = true
				frontier = append(frontier, u)
			}
		}
	}
}

func paint(colors []int, filled []bool, c int) {
	for i, f := range filled {
		if f {
			colors[i] = c
		}
	}
}

// VerboseGrid renders each replay step as a grid using puzzlefile.Render,
// separated by blank lines, for manual inspection.
func VerboseGrid(g *floodgraph.Graph, root, width, height int, moves []int) string {
	var b strings.Builder
	for i, colors := range Replay(g, root, moves) {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(puzzlefile.Render(colors, width, height, root))
	}
	return b.String()
}
