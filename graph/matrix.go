// ABOUTME: Bitset adjacency-matrix graph representation
// ABOUTME: O(1) edge tests and O(degree) successor iteration via bit-scan

package graph

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Matrix is an adjacency-matrix directed graph: one bitset per node, where
// row src has bit dst set iff the edge src->dst exists. Edge tests are
// O(1) and successor iteration is O(out-degree) via bit-scan, which makes
// this the preferred representation for analyses that sweep successor
// sets repeatedly (dominators, reachability).
//
// Parallel edges collapse to a single bit and weights are not
// representable; construct through an AdjList when either matters.
// Like AdjList, a Matrix is append-and-grow: nodes and edges are added,
// never removed.
type Matrix struct {
	rows []*bitset.BitSet // rows[src], bit dst = edge src->dst
}

var _ Graph = (*Matrix)(nil)

// NewMatrix creates an empty adjacency-matrix graph.
func NewMatrix() *Matrix {
	return &Matrix{}
}

// NewMatrixCap creates an empty adjacency-matrix graph with room for the
// given number of nodes.
func NewMatrixCap(nodes int) *Matrix {
	return &Matrix{rows: make([]*bitset.BitSet, 0, nodes)}
}

// AddNode appends a new node with no edges and returns its id, which is
// always the node count before the call. Never fails. The row slice grows
// by amortized doubling; each row's bit width extends lazily when a bit
// beyond its current length is set, so widening existing rows costs
// nothing until an edge actually lands there.
func (m *Matrix) AddNode() NodeID {
	m.rows = append(m.rows, bitset.New(uint(len(m.rows)+1)))
	return NodeID(len(m.rows) - 1)
}

// AddEdge sets the bit for the directed edge src->dst. Adding an edge
// twice is a no-op. Fails with ErrInvalidNode if either id is out of
// range; a failed call does not modify the graph.
func (m *Matrix) AddEdge(src, dst NodeID) error {
	if !validNode(len(m.rows), src) {
		return fmt.Errorf("add edge: src %d out of range [0, %d): %w", src, len(m.rows), ErrInvalidNode)
	}
	if !validNode(len(m.rows), dst) {
		return fmt.Errorf("add edge: dst %d out of range [0, %d): %w", dst, len(m.rows), ErrInvalidNode)
	}
	m.rows[src].Set(uint(dst))
	return nil
}

// NumNodes returns the number of nodes.
func (m *Matrix) NumNodes() int {
	return len(m.rows)
}

// NumEdges returns the number of distinct edges.
func (m *Matrix) NumEdges() int {
	n := 0
	for _, row := range m.rows {
		n += int(row.Count())
	}
	return n
}

// HasEdge reports whether the edge src->dst exists. O(1).
func (m *Matrix) HasEdge(src, dst NodeID) bool {
	if !validNode(len(m.rows), src) || !validNode(len(m.rows), dst) {
		return false
	}
	return m.rows[src].Test(uint(dst))
}

// Successors returns the targets of edges leaving node in ascending id
// order, by repeatedly scanning for the next set bit. O(out-degree) bit
// extractions rather than O(n).
func (m *Matrix) Successors(node NodeID) ([]NodeID, error) {
	if !validNode(len(m.rows), node) {
		return nil, fmt.Errorf("successors: node %d out of range [0, %d): %w", node, len(m.rows), ErrInvalidNode)
	}
	row := m.rows[node]
	out := make([]NodeID, 0, row.Count())
	for i, ok := row.NextSet(0); ok; i, ok = row.NextSet(i + 1) {
		out = append(out, NodeID(i))
	}
	return out, nil
}

// Predecessors returns the sources of edges entering node in ascending id
// order. This is an O(n) column scan; callers that need repeated
// predecessor queries should build Transpose once and read its rows
// instead.
func (m *Matrix) Predecessors(node NodeID) ([]NodeID, error) {
	if !validNode(len(m.rows), node) {
		return nil, fmt.Errorf("predecessors: node %d out of range [0, %d): %w", node, len(m.rows), ErrInvalidNode)
	}
	var out []NodeID
	for src, row := range m.rows {
		if row.Test(uint(node)) {
			out = append(out, NodeID(src))
		}
	}
	return out, nil
}

// Transpose returns a new matrix with every edge reversed. Costs O(n^2)
// bits of extra space but turns predecessor queries into row scans.
func (m *Matrix) Transpose() *Matrix {
	t := NewMatrixCap(len(m.rows))
	for range m.rows {
		t.AddNode()
	}
	for src, row := range m.rows {
		for i, ok := row.NextSet(0); ok; i, ok = row.NextSet(i + 1) {
			t.rows[i].Set(uint(src))
		}
	}
	return t
}
