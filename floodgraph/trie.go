package floodgraph

import "github.com/outofforest/mass"

// blockCapacity is the number of colors packed into one trie block, chosen
// so that a back-pointer (one machine pointer), a filled-count field, and
// the inline element array together take two machine pointers. A trieBlock
// also carries an int base offset, so on a 64-bit platform it occupies 32
// bytes.
//
//	ptrSize          = 8 (assumed 64-bit pointer)
//	lengthFieldSize  = 2 (uint16 filled-count)
//	elementSize      = 1 (colors are stored as uint8 inside the trie)
//	blockCapacity    = (2*ptrSize - lengthFieldSize) / elementSize
const (
	ptrSize         = 8
	lengthFieldSize = 2
	elementSize     = 1
	blockCapacity   = (2*ptrSize - lengthFieldSize) / elementSize
)

// trieBlock is one fixed-size chunk of a move history. base is the total
// sequence length represented by every block before this one; filled is how
// many of this block's elements are in use. A block is appended to only
// while it remains some handle's growth tip (base+filled == that handle's
// length); once a sibling branch forks off it, the block's prefix is frozen
// forever, even though later appends to the SAME tip may still grow it.
type trieBlock struct {
	parent *trieBlock
	base   int
	filled uint16
	elems  [blockCapacity]uint8
}

// Handle is an opaque reference into a Trie denoting one specific color
// sequence. Handles are cheap to copy (one pointer, one int) and appending
// to a handle never invalidates any other handle, including itself.
type Handle struct {
	block  *trieBlock
	length int
}

// Trie is an append-only, shared-prefix store of color sequences. It hands
// out Handles that can be appended to and materialized on demand; many
// search states share common move prefixes at O(1) marginal memory cost
// per append. Blocks are allocated from a stable-address arena
// (github.com/outofforest/mass) rather than individually on the heap, so
// that once a Handle captures a *trieBlock, that pointer is never
// invalidated by later allocations in the same Trie — the same property
// outofforest/quantum relies on for its own hot-path object pools.
type Trie struct {
	blocks *mass.Mass[trieBlock]
}

// NewTrie creates an empty move-history trie. capacityHint sizes the
// underlying arena; it is only a performance hint, not a hard limit.
func NewTrie(capacityHint int) *Trie {
	return &Trie{blocks: mass.New[trieBlock](uint64(capacityHint))}
}

// Initial returns the handle denoting the empty sequence.
func (t *Trie) Initial() Handle {
	return Handle{block: nil, length: 0}
}

// Append returns a handle for h++[e]. h remains valid and continues to
// denote its original sequence.
func (t *Trie) Append(h Handle, e int) Handle {
	if h.block != nil && h.block.base+int(h.block.filled) == h.length && int(h.block.filled) < blockCapacity {
		h.block.elems[h.block.filled] = uint8(e)
		h.block.filled++
		return Handle{block: h.block, length: h.length + 1}
	}

	nb := t.blocks.New()
	nb.parent = h.block
	nb.base = h.length
	nb.filled = 1
	nb.elems[0] = uint8(e)
	return Handle{block: nb, length: h.length + 1}
}

// Back returns the last element appended to h. h must be nonempty.
func (t *Trie) Back(h Handle) int {
	if h.length == 0 {
		panic("floodgraph: Back called on empty sequence handle")
	}
	local := h.length - h.block.base - 1
	return int(h.block.elems[local])
}

// Length returns the number of elements denoted by h.
func (t *Trie) Length(h Handle) int {
	return h.length
}

// Materialize writes h's full sequence, in order, into a freshly allocated
// slice and returns it.
func (t *Trie) Materialize(h Handle) []int {
	out := make([]int, h.length)
	upto := h.length
	cur := h.block
	idx := h.length
	for cur != nil {
		take := upto - cur.base
		for local := take - 1; local >= 0; local-- {
			idx--
			out[idx] = int(cur.elems[local])
		}
		upto = cur.base
		cur = cur.parent
	}
	return out
}
