package floodgraph

// State is one node of the A* search: the set of cells absorbed into the
// flooded region so far, a handle to the move history that produced it,
// and a cached valuation (moves made so far plus the admissible lower
// bound on moves still required).
type State struct {
	filled      []bool
	filledCount int
	moves       Handle
	valuation   int
}

// NewState builds the initial search state for a reduced graph: only the
// root is filled, and the move history starts with the root's own color.
// It panics if g has not been reduced (an edge still connects two nodes of
// the same color) — constructing a State from an unreduced graph is a
// contract violation, not a recoverable condition.
func NewState(g *Graph, trie *Trie) *State {
	if !IsReduced(g) {
		panic("floodgraph: NewState requires a reduced graph")
	}
	n := g.NumNodes()
	filled := make([]bool, n)
	filled[g.Root()] = true
	moves := trie.Append(trie.Initial(), g.Node(g.Root()).Color)
	s := &State{filled: filled, filledCount: 1, moves: moves}
	s.valuation = valuation(g, trie, s)
	return s
}

// IsReduced reports whether g has no edge connecting two nodes of the same
// color, the precondition Reduce is supposed to establish.
func IsReduced(g *Graph) bool {
	for i := 0; i < g.NumNodes(); i++ {
		ni := g.Node(i)
		for _, j := range ni.Neighbors {
			if j > i && g.Node(j).Color == ni.Color {
				return false
			}
		}
	}
	return true
}

// Clone returns an independent copy of s. Cloning is cheap: the filled
// bitmap is the only part that is actually copied, since the move handle
// is a small value type backed by the Trie's shared, immutable blocks.
func (s *State) Clone() *State {
	filled := make([]bool, len(s.filled))
	copy(filled, s.filled)
	return &State{
		filled:      filled,
		filledCount: s.filledCount,
		moves:       s.moves,
		valuation:   s.valuation,
	}
}

// Done reports whether every node of the graph is filled.
func (s *State) Done() bool {
	return s.filledCount == len(s.filled)
}

// Moves returns the handle to this state's move history.
func (s *State) Moves() Handle {
	return s.moves
}

// Valuation returns the cached f-value: moves made so far plus the
// admissible lower bound on moves still required.
func (s *State) Valuation() int {
	return s.valuation
}

// Apply attempts the flood move "recolor the current region to nextColor".
// nextColor must differ from the color of the most recent move; passing the
// same color is a contract violation and panics.
//
// Apply returns false, leaving s unmodified in every observable way, when
// the move is redundant: an ascending color that absorbs nothing, or a
// descending color every one of whose newly absorbed nodes already borders
// a filled node whose color differs from the prior move's color, so the
// same gain was available before the prior move. Otherwise it mutates s in
// place — the filled bitmap grows, the move history gains nextColor, and
// the valuation is recomputed — and returns true.
func (s *State) Apply(g *Graph, trie *Trie, nextColor int) bool {
	last := trie.Back(s.moves)
	if nextColor == last {
		panic("floodgraph: Apply called with the current color")
	}

	absorbed := s.newlyAbsorbed(g, nextColor)

	if nextColor > last {
		if len(absorbed) == 0 {
			return false
		}
	} else {
		redundant := true
		for _, v := range absorbed {
			if !s.hasFilledNeighborOtherThan(g, v, last) {
				redundant = false
				break
			}
		}
		if redundant {
			return false
		}
	}

	s.moves = trie.Append(s.moves, nextColor)
	for _, v := range absorbed {
		s.filled[v] = true
		s.filledCount++
	}
	s.valuation = valuation(g, trie, s)
	return true
}

// newlyAbsorbed computes F = { v : !filled[v], color(v) == nextColor,
// v has a filled neighbor }, without mutating s.
func (s *State) newlyAbsorbed(g *Graph, nextColor int) []int {
	seen := make(map[int]bool)
	var out []int
	for v := 0; v < len(s.filled); v++ {
		if !s.filled[v] {
			continue
		}
		for _, u := range g.Node(v).Neighbors {
			if s.filled[u] || seen[u] || g.Node(u).Color != nextColor {
				continue
			}
			seen[u] = true
			out = append(out, u)
		}
	}
	return out
}

// hasFilledNeighborOtherThan reports whether v has a filled neighbor whose
// color is not excludeColor.
func (s *State) hasFilledNeighborOtherThan(g *Graph, v, excludeColor int) bool {
	for _, u := range g.Node(v).Neighbors {
		if s.filled[u] && g.Node(u).Color != excludeColor {
			return true
		}
	}
	return false
}
