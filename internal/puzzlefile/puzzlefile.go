// Package puzzlefile parses grid-shaped puzzle text files into
// floodgraph.Graph values. This is external-collaborator territory: THE
// CORE only ever sees the reduced Graph, never a grid or a color label.
package puzzlefile

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/outofcolor/floodsolve/floodgraph"
)

// Adjacency selects which cells of a grid are considered neighbors.
type Adjacency int

const (
	// FourWay connects each cell to its north/south/east/west neighbors.
	FourWay Adjacency = iota
	// EightWay additionally connects diagonal neighbors.
	EightWay
)

// ErrEmptyGrid is returned when the input has no non-blank rows.
var ErrEmptyGrid = errors.New("puzzlefile: grid has no rows")

// ErrRaggedGrid is returned when rows disagree on width.
var ErrRaggedGrid = errors.New("puzzlefile: rows have inconsistent width")

// ErrNoRoot is returned when no cell carries the root marker '*'.
var ErrNoRoot = errors.New("puzzlefile: no root marker '*' found")

// ErrMultipleRoots is returned when more than one cell carries '*'.
var ErrMultipleRoots = errors.New("puzzlefile: more than one root marker '*'")

// ErrBadColorChar is returned when a grid cell is not a recognized color
// label or the root marker.
var ErrBadColorChar = errors.New("puzzlefile: unrecognized color character")

// colorChar renders color index c as a single character, extending past
// the ten digits into lowercase then uppercase letters so color indices
// up to 61 still fit in one grid cell.
func colorChar(c int) string {
	if c < 10 {
		return string(rune(c + '0'))
	}
	if c < 36 {
		return string(rune((c - 10) + 'a'))
	}
	if c < 62 {
		return string(rune((c - 36) + 'A'))
	}
	return "?"
}

// parseColorChar is colorChar's inverse. It returns -1 for characters that
// are not color labels (including the root marker, handled separately by
// the caller).
func parseColorChar(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 36
	default:
		return -1
	}
}

// splitLines trims trailing CR/LF and drops wholly blank lines.
func splitLines(input string) []string {
	var lines []string
	for _, txt := range strings.Split(input, "\n") {
		txt = strings.TrimRight(txt, "\r")
		if len(strings.TrimSpace(txt)) > 0 {
			lines = append(lines, txt)
		}
	}
	return lines
}

// Parse reads a grid puzzle from input and builds its raw (unreduced)
// Graph. Exactly one cell must carry the root marker '*'; every other cell
// must be a color label recognized by parseColorChar. The returned Graph
// has not been reduced — callers must call Reduce before handing it to
// floodgraph.Solve.
func Parse(input string, adjacency Adjacency) (*floodgraph.Graph, int, int, error) {
	lines := splitLines(input)
	if len(lines) == 0 {
		return nil, 0, 0, ErrEmptyGrid
	}
	width := len([]rune(lines[0]))
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		r := []rune(line)
		if len(r) != width {
			return nil, 0, 0, ErrRaggedGrid
		}
		rows[i] = r
	}
	height := len(rows)

	g := floodgraph.NewGraph(width * height)
	rootIdx := -1
	for r, row := range rows {
		for c, ch := range row {
			idx := r*width + c
			if ch == '*' {
				if rootIdx != -1 {
					return nil, 0, 0, ErrMultipleRoots
				}
				rootIdx = idx
				continue
			}
			color := parseColorChar(ch)
			if color == -1 {
				return nil, 0, 0, errors.Wrapf(ErrBadColorChar, "%q at row %d col %d", ch, r, c)
			}
			g.SetColor(idx, color)
		}
	}
	if rootIdx == -1 {
		return nil, 0, 0, ErrNoRoot
	}
	g.SetRoot(rootIdx)

	deltas := [][2]int{{0, 1}, {1, 0}}
	if adjacency == EightWay {
		deltas = append(deltas, [2]int{1, 1}, [2]int{1, -1})
	}
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			for _, d := range deltas {
				nr, nc := r+d[0], c+d[1]
				if nr < 0 || nr >= height || nc < 0 || nc >= width {
					continue
				}
				g.AddEdge(r*width+c, nr*width+nc)
			}
		}
	}
	return g, width, height, nil
}

// Render renders colors (one entry per cell, row-major, width*height long)
// back into grid text, marking root with '*'. Used by internal/report to
// redraw a grid after replaying moves.
func Render(colors []int, width, height, root int) string {
	var b strings.Builder
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			idx := r*width + c
			if idx == root {
				b.WriteByte('*')
				continue
			}
			b.WriteString(colorChar(colors[idx]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
