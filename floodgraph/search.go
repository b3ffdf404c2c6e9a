package floodgraph

import "container/heap"

// frontier is the A* open set: a min-heap of *State ordered by
// (valuation ascending, move-length descending) — ties prefer the deeper
// state, biasing the search toward states closer to a goal. It implements
// container/heap.Interface.
type frontier struct {
	trie   *Trie
	states []*State
}

func (f *frontier) Len() int { return len(f.states) }

func (f *frontier) Less(i, j int) bool {
	a, b := f.states[i], f.states[j]
	if a.valuation != b.valuation {
		return a.valuation < b.valuation
	}
	return f.trie.Length(a.moves) > f.trie.Length(b.moves)
}

func (f *frontier) Swap(i, j int) {
	f.states[i], f.states[j] = f.states[j], f.states[i]
}

func (f *frontier) Push(x any) {
	f.states = append(f.states, x.(*State))
}

func (f *frontier) Pop() any {
	n := len(f.states)
	s := f.states[n-1]
	f.states[n-1] = nil
	f.states = f.states[:n-1]
	return s
}

// Solve runs best-first (A*) search over g, a graph already passed through
// Reduce, and returns the shortest color sequence that floods the entire
// graph from its root: the first element is the root's initial color, and
// the remaining elements are the chosen moves in order. It returns
// ErrUnreachable if the frontier empties before a goal state is found,
// which only happens if g is disconnected.
func Solve(g *Graph) ([]int, error) {
	trie := NewTrie(g.NumNodes() * 4)
	initial := NewState(g, trie)

	open := &frontier{trie: trie, states: []*State{initial}}
	heap.Init(open)

	numColors := len(g.ColorCounts())
	for open.Len() > 0 {
		s := heap.Pop(open).(*State)
		if s.Done() {
			return trie.Materialize(s.moves), nil
		}

		last := trie.Back(s.moves)
		for c := 0; c < numColors; c++ {
			if c == last || g.ColorCounts()[c] == 0 {
				continue
			}
			successor := s.Clone()
			if successor.Apply(g, trie, c) {
				heap.Push(open, successor)
			}
		}
	}
	return nil, ErrUnreachable
}
