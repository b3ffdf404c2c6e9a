package floodgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnionFindFindIsSelfInitially(t *testing.T) {
	uf := newUnionFind(5)
	for i := 0; i < 5; i++ {
		require.Equal(t, i, uf.find(i))
	}
}

func TestUnionFindMergeSmallerIndexWins(t *testing.T) {
	uf := newUnionFind(5)
	uf.merge(3, 1)
	require.Equal(t, 1, uf.find(3))
	require.Equal(t, 1, uf.find(1))

	uf.merge(4, 3)
	require.Equal(t, 1, uf.find(4))
}

func TestUnionFindFindNeverExceedsInput(t *testing.T) {
	uf := newUnionFind(8)
	uf.merge(5, 2)
	uf.merge(6, 5)
	uf.merge(7, 0)
	for i := 0; i < 8; i++ {
		require.LessOrEqual(t, uf.find(i), i)
	}
}

func TestUnionFindTransitiveMerge(t *testing.T) {
	uf := newUnionFind(4)
	uf.merge(0, 1)
	uf.merge(2, 3)
	uf.merge(1, 2)
	root := uf.find(0)
	for i := 1; i < 4; i++ {
		require.Equal(t, root, uf.find(i))
	}
}
