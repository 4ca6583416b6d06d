// ABOUTME: Tests for topological ordering
// ABOUTME: Validates Kahn ordering on DAGs and cycle detection by omission

package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopological(t *testing.T) {
	g := ToMatrix(FromEdges([][2]NodeID{
		{0, 1}, {1, 2}, {0, 3}, {3, 1}, {3, 5}, {3, 4}, {4, 5},
	}))
	order := Topological(g)
	assert.Equal(t, []NodeID{0, 3, 4, 5, 1, 2}, order)

	// Every edge points forward in the order.
	pos := make(map[NodeID]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for src := 0; src < g.NumNodes(); src++ {
		succs, _ := g.Successors(NodeID(src))
		for _, dst := range succs {
			assert.Less(t, pos[NodeID(src)], pos[dst])
		}
	}
}

func TestTopologicalCycle(t *testing.T) {
	g := FromEdges([][2]NodeID{{0, 1}, {1, 0}})
	assert.Empty(t, Topological(g), "a pure cycle yields no nodes")

	g = FromEdges([][2]NodeID{{0, 1}, {1, 2}, {2, 1}})
	order := Topological(g)
	assert.Equal(t, []NodeID{0}, order, "nodes on or behind the cycle are omitted")
}
