package floodgraph

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// trueRemaining brute-forces the optimal number of additional moves from s
// by exhaustive BFS over the (small) reachable state space. Only used in
// tests, against small graphs.
func trueRemaining(t *testing.T, g *Graph, trie *Trie, s *State) int {
	type frame struct {
		filled []bool
		last   int
		depth  int
	}
	start := frame{filled: append([]bool(nil), s.filled...), last: trie.Back(s.moves), depth: 0}
	if allTrue(start.filled) {
		return 0
	}
	queue := []frame{start}
	seen := map[string]bool{key(start.filled, start.last): true}
	numColors := len(g.ColorCounts())

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for c := 0; c < numColors; c++ {
			if c == cur.last || g.ColorCounts()[c] == 0 {
				continue
			}
			nf := append([]bool(nil), cur.filled...)
			absorbed := false
			for {
				progressed := false
				for v := 0; v < len(nf); v++ {
					if nf[v] || g.Node(v).Color != c {
						continue
					}
					for _, u := range g.Node(v).Neighbors {
						if nf[u] {
							nf[v] = true
							absorbed = true
							progressed = true
							break
						}
					}
				}
				if !progressed {
					break
				}
			}
			if !absorbed {
				continue
			}
			if allTrue(nf) {
				return cur.depth + 1
			}
			k := key(nf, c)
			if seen[k] {
				continue
			}
			seen[k] = true
			queue = append(queue, frame{filled: nf, last: c, depth: cur.depth + 1})
		}
	}
	t.Fatal("trueRemaining: goal unreachable in brute force search")
	return -1
}

func allTrue(b []bool) bool {
	for _, v := range b {
		if !v {
			return false
		}
	}
	return true
}

func key(filled []bool, last int) string {
	out := make([]byte, len(filled)+1)
	for i, v := range filled {
		if v {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	out[len(filled)] = byte('A' + last)
	return string(out)
}

func randomReducedGraph(rng *rand.Rand, n, numColors int) *Graph {
	colors := make([]int, n)
	for i := range colors {
		colors[i] = rng.Intn(numColors)
	}
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < 0.35 {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	g := buildRaw(colors, edges)
	_ = g.Reduce()
	return g
}

// randomWalk performs up to depth random accepted Apply calls from s,
// returning every state visited along the way (including s itself).
func randomWalk(rng *rand.Rand, g *Graph, trie *Trie, s *State, depth int) []*State {
	visited := []*State{s}
	cur := s
	numColors := len(g.ColorCounts())
	for i := 0; i < depth && !cur.Done(); i++ {
		last := trie.Back(cur.moves)
		order := rng.Perm(numColors)
		applied := false
		for _, c := range order {
			if c == last || g.ColorCounts()[c] == 0 {
				continue
			}
			next := cur.Clone()
			if next.Apply(g, trie, c) {
				cur = next
				visited = append(visited, cur)
				applied = true
				break
			}
		}
		if !applied {
			break
		}
	}
	return visited
}

func TestHeuristicAdmissibleOnRandomGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 30; trial++ {
		n := 4 + rng.Intn(3)
		g := randomReducedGraph(rng, n, 3)
		if !isConnected(g) {
			continue
		}
		trie := NewTrie(16)
		initial := NewState(g, trie)
		for _, s := range randomWalk(rng, g, trie, initial, 3) {
			h := s.valuation - trie.Length(s.moves)
			want := trueRemaining(t, g, trie, s)
			require.LessOrEqualf(t, h, want, "trial %d: h=%d exceeds true remaining=%d", trial, h, want)
		}
	}
}

func TestHeuristicConsistentAcrossOneMove(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 30; trial++ {
		n := 4 + rng.Intn(3)
		g := randomReducedGraph(rng, n, 3)
		if !isConnected(g) {
			continue
		}
		trie := NewTrie(16)
		s := NewState(g, trie)
		hBefore := s.valuation - trie.Length(s.moves)

		last := trie.Back(s.moves)
		numColors := len(g.ColorCounts())
		for c := 0; c < numColors; c++ {
			if c == last || g.ColorCounts()[c] == 0 {
				continue
			}
			succ := s.Clone()
			if !succ.Apply(g, trie, c) {
				continue
			}
			hAfter := succ.valuation - trie.Length(succ.moves)
			require.LessOrEqualf(t, hBefore, hAfter+1, "trial %d color %d: h(s)=%d h(s')=%d", trial, c, hBefore, hAfter)
		}
	}
}

func isConnected(g *Graph) bool {
	n := g.NumNodes()
	if n == 0 {
		return true
	}
	visited := make([]bool, n)
	stack := []int{0}
	visited[0] = true
	count := 1
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, u := range g.Node(v).Neighbors {
			if !visited[u] {
				visited[u] = true
				count++
				stack = append(stack, u)
			}
		}
	}
	return count == n
}
