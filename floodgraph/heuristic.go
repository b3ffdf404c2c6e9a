package floodgraph

// valuation computes moves.length + h(state), where h is the admissible,
// consistent lower bound on moves still required: a layered BFS from the
// filled region that either (a) accounts for a color becoming fully
// absorbed by expanding only the nodes of that color this round, or (b)
// when no color is about to run out, takes one color-blind step and
// expands everything in the current layer. Rule (a) is what makes the
// bound tight; rule (b) is what keeps it admissible when no color is
// close to elimination.
func valuation(g *Graph, trie *Trie, s *State) int {
	n := g.NumNodes()
	visited := make([]bool, n)
	copy(visited, s.filled)

	remaining := make([]int, len(g.ColorCounts()))
	copy(remaining, g.ColorCounts())

	current := make([]int, 0, s.filledCount)
	for i := 0; i < n; i++ {
		if s.filled[i] {
			current = append(current, i)
		}
	}

	// Colors whose nodes are all filled are already gone and cost nothing,
	// so they are not counted as exposed.
	for _, v := range current {
		remaining[g.Node(v).Color]--
	}

	eliminated := make([]bool, len(remaining))
	exposed := 0
	// The first pass is a color-blind expansion of the filled region itself,
	// which costs no move; starting at -1 cancels its increment.
	h := -1
	for len(current) > 0 {
		next := make([]int, 0, len(current))
		newEliminated := make([]bool, len(remaining))
		newExposed := 0

		expand := func(v int) {
			for _, u := range g.Node(v).Neighbors {
				if visited[u] {
					continue
				}
				visited[u] = true
				next = append(next, u)
				uc := g.Node(u).Color
				remaining[uc]--
				if remaining[uc] == 0 && !newEliminated[uc] {
					newEliminated[uc] = true
					newExposed++
				}
			}
		}

		if exposed > 0 {
			h += exposed
			for _, v := range current {
				if eliminated[g.Node(v).Color] {
					expand(v)
				} else {
					next = append(next, v)
				}
			}
		} else {
			h++
			for _, v := range current {
				expand(v)
			}
		}

		eliminated = newEliminated
		exposed = newExposed
		current = next
	}

	return trie.Length(s.moves) + h
}
