// ABOUTME: Tests for list/matrix conversion
// ABOUTME: Validates the round-trip edge-set property and duplicate collapse

package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func edgeSet(edges [][2]NodeID) map[[2]NodeID]struct{} {
	set := make(map[[2]NodeID]struct{}, len(edges))
	for _, e := range edges {
		set[e] = struct{}{}
	}
	return set
}

func TestToMatrixCollapsesDuplicates(t *testing.T) {
	l := NewAdjListCap(3)
	for i := 0; i < 3; i++ {
		l.AddNode()
	}
	require.NoError(t, l.AddEdge(0, 1, 5))
	require.NoError(t, l.AddEdge(0, 1, 9)) // parallel edge
	require.NoError(t, l.AddEdge(1, 2, 1))
	assert.Equal(t, 3, l.NumEdges())

	m := ToMatrix(l)
	assert.Equal(t, 3, m.NumNodes())
	assert.Equal(t, 2, m.NumEdges(), "parallel edges collapse to one bit")
	assert.True(t, m.HasEdge(0, 1))
	assert.True(t, m.HasEdge(1, 2))
}

func TestToListUnitWeights(t *testing.T) {
	m := NewMatrixCap(3)
	for i := 0; i < 3; i++ {
		m.AddNode()
	}
	require.NoError(t, m.AddEdge(0, 2))
	require.NoError(t, m.AddEdge(0, 1))

	l := ToList(m)
	assert.Equal(t, 3, l.NumNodes())
	assert.Equal(t, 2, l.NumEdges())

	arcs, err := l.Arcs(0)
	require.NoError(t, err)
	assert.Equal(t, []Arc{{Dst: 1, Weight: 1}, {Dst: 2, Weight: 1}}, arcs)
}

// Converting list -> matrix -> list preserves the edge set, ignoring
// weights and duplicate collapse.
func TestRoundTripPreservesEdgeSet(t *testing.T) {
	tests := []struct {
		name  string
		edges [][2]NodeID
	}{
		{"chain", [][2]NodeID{{0, 1}, {1, 2}, {2, 3}}},
		{"diamond", [][2]NodeID{{0, 1}, {0, 2}, {1, 3}, {2, 3}}},
		{"self loops and cycles", [][2]NodeID{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		{"parallel edges", [][2]NodeID{{0, 1}, {0, 1}, {0, 1}, {1, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := FromEdges(tt.edges)
			back := ToList(ToMatrix(l))
			assert.Equal(t, edgeSet(l.Edges()), edgeSet(back.Edges()))
			assert.Equal(t, l.NumNodes(), back.NumNodes())
		})
	}
}
