// ABOUTME: Tests for Dijkstra shortest-path search
// ABOUTME: Validates distances, unreachable reporting, and saturating arithmetic

package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDijkstra(t *testing.T) {
	l := NewAdjListCap(3)
	for i := 0; i < 3; i++ {
		l.AddNode()
	}
	require.NoError(t, l.AddEdge(0, 1, 7))
	require.NoError(t, l.AddEdge(1, 2, 3))
	require.NoError(t, l.AddEdge(2, 0, 5))

	dist, err := Dijkstra(l, 0)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 7, 10}, dist)
}

func TestDijkstraUnreachable(t *testing.T) {
	l := NewAdjListCap(6)
	for i := 0; i < 6; i++ {
		l.AddNode()
	}
	edges := []struct {
		src, dst NodeID
		w        uint64
	}{
		{1, 2, 3}, {1, 3, 8}, {1, 5, 2},
		{2, 4, 1}, {2, 5, 7},
		{3, 2, 4},
		{4, 1, 2}, {4, 3, 2},
		{5, 4, 6},
	}
	for _, e := range edges {
		require.NoError(t, l.AddEdge(e.src, e.dst, e.w))
	}

	dist, err := Dijkstra(l, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint64{Unreachable, 0, 3, 6, 4, 2}, dist)
}

func TestDijkstraParallelEdges(t *testing.T) {
	l := NewAdjListCap(2)
	l.AddNode()
	l.AddNode()
	require.NoError(t, l.AddEdge(0, 1, 9))
	require.NoError(t, l.AddEdge(0, 1, 4))

	dist, err := Dijkstra(l, 0)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 4}, dist, "cheapest parallel edge wins")
}

func TestDijkstraSaturates(t *testing.T) {
	l := NewAdjListCap(3)
	for i := 0; i < 3; i++ {
		l.AddNode()
	}
	require.NoError(t, l.AddEdge(0, 1, math.MaxUint64-1))
	require.NoError(t, l.AddEdge(1, 2, 5))

	dist, err := Dijkstra(l, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64-1), dist[1])
	assert.Equal(t, Unreachable, dist[2], "overflow saturates to unreachable")
}

func TestDijkstraInvalidSource(t *testing.T) {
	l := FromEdges([][2]NodeID{{0, 1}})

	_, err := Dijkstra(l, 5)
	assert.ErrorIs(t, err, ErrInvalidNode)
	_, err = Dijkstra(l, -1)
	assert.ErrorIs(t, err, ErrInvalidNode)
}
