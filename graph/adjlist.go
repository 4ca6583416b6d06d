// ABOUTME: Append-only adjacency-list graph representation with edge weights
// ABOUTME: Cheap O(1) edge insertion, insertion-order traversal, parallel edges

package graph

import "fmt"

// AdjList is an adjacency-list directed graph. It is append-only: nodes
// and edges may be added during construction but never removed. It allows
// parallel edges and self-loops, and it is the only representation that
// carries edge weights.
//
// Space complexity: O(|V| + |E|).
type AdjList struct {
	arcs     [][]Arc // arcs[src] in insertion order
	numEdges int
}

// interface conformance
var _ Graph = (*AdjList)(nil)

// NewAdjList creates an empty adjacency-list graph.
func NewAdjList() *AdjList {
	return &AdjList{}
}

// NewAdjListCap creates an empty adjacency-list graph with room for the
// given number of nodes, to reduce unnecessary allocations.
func NewAdjListCap(nodes int) *AdjList {
	return &AdjList{arcs: make([][]Arc, 0, nodes)}
}

// FromEdges constructs an unweighted graph (all weights 1) from a slice of
// (src, dst) pairs. Node count is the largest id mentioned plus one.
func FromEdges(edges [][2]NodeID) *AdjList {
	n := 0
	for _, e := range edges {
		if int(e[0]) >= n {
			n = int(e[0]) + 1
		}
		if int(e[1]) >= n {
			n = int(e[1]) + 1
		}
	}
	l := NewAdjListCap(n)
	for i := 0; i < n; i++ {
		l.AddNode()
	}
	for _, e := range edges {
		l.arcs[e[0]] = append(l.arcs[e[0]], Arc{Dst: e[1], Weight: 1})
		l.numEdges++
	}
	return l
}

// AddNode appends a new node with no outgoing edges and returns its id,
// which is always the node count before the call. Never fails.
func (l *AdjList) AddNode() NodeID {
	l.arcs = append(l.arcs, nil)
	return NodeID(len(l.arcs) - 1)
}

// AddEdge appends a directed edge src->dst with the given weight.
// Duplicate edges are kept (multi-edge); note that converting to a Matrix
// collapses them to a single bit. Fails with ErrInvalidNode if either id
// is out of range; a failed call does not modify the graph.
func (l *AdjList) AddEdge(src, dst NodeID, weight uint64) error {
	if !validNode(len(l.arcs), src) {
		return fmt.Errorf("add edge: src %d out of range [0, %d): %w", src, len(l.arcs), ErrInvalidNode)
	}
	if !validNode(len(l.arcs), dst) {
		return fmt.Errorf("add edge: dst %d out of range [0, %d): %w", dst, len(l.arcs), ErrInvalidNode)
	}
	l.arcs[src] = append(l.arcs[src], Arc{Dst: dst, Weight: weight})
	l.numEdges++
	return nil
}

// NumNodes returns the number of nodes.
func (l *AdjList) NumNodes() int {
	return len(l.arcs)
}

// NumEdges returns the number of edges, counting parallel edges.
func (l *AdjList) NumEdges() int {
	return l.numEdges
}

// Successors returns the targets of edges leaving node, in insertion
// order. Parallel edges produce repeated ids.
func (l *AdjList) Successors(node NodeID) ([]NodeID, error) {
	if !validNode(len(l.arcs), node) {
		return nil, fmt.Errorf("successors: node %d out of range [0, %d): %w", node, len(l.arcs), ErrInvalidNode)
	}
	out := make([]NodeID, len(l.arcs[node]))
	for i, a := range l.arcs[node] {
		out[i] = a.Dst
	}
	return out, nil
}

// Arcs returns the weighted outgoing edges of node in insertion order.
func (l *AdjList) Arcs(node NodeID) ([]Arc, error) {
	if !validNode(len(l.arcs), node) {
		return nil, fmt.Errorf("arcs: node %d out of range [0, %d): %w", node, len(l.arcs), ErrInvalidNode)
	}
	out := make([]Arc, len(l.arcs[node]))
	copy(out, l.arcs[node])
	return out, nil
}

// Predecessors returns the sources of edges entering node by scanning
// every adjacency list: O(V + E). Sources appear in ascending id order,
// repeated once per parallel edge.
func (l *AdjList) Predecessors(node NodeID) ([]NodeID, error) {
	if !validNode(len(l.arcs), node) {
		return nil, fmt.Errorf("predecessors: node %d out of range [0, %d): %w", node, len(l.arcs), ErrInvalidNode)
	}
	var out []NodeID
	for src, arcs := range l.arcs {
		for _, a := range arcs {
			if a.Dst == node {
				out = append(out, NodeID(src))
			}
		}
	}
	return out, nil
}

// HasEdge reports whether at least one edge src->dst exists.
func (l *AdjList) HasEdge(src, dst NodeID) bool {
	if !validNode(len(l.arcs), src) || !validNode(len(l.arcs), dst) {
		return false
	}
	for _, a := range l.arcs[src] {
		if a.Dst == dst {
			return true
		}
	}
	return false
}

// Edges returns every (src, dst) pair, ascending by src with per-source
// insertion order. Parallel edges are repeated.
func (l *AdjList) Edges() [][2]NodeID {
	out := make([][2]NodeID, 0, l.numEdges)
	for src, arcs := range l.arcs {
		for _, a := range arcs {
			out = append(out, [2]NodeID{NodeID(src), a.Dst})
		}
	}
	return out
}

// Transpose returns a new graph with every edge reversed, weights kept.
// https://en.wikipedia.org/wiki/Transpose_graph
func (l *AdjList) Transpose() *AdjList {
	t := NewAdjListCap(len(l.arcs))
	for range l.arcs {
		t.AddNode()
	}
	for src, arcs := range l.arcs {
		for _, a := range arcs {
			t.arcs[a.Dst] = append(t.arcs[a.Dst], Arc{Dst: NodeID(src), Weight: a.Weight})
			t.numEdges++
		}
	}
	return t
}
