// ABOUTME: Core data types for directed graphs
// ABOUTME: Defines NodeID, weighted Arc entries, and validation errors

package graph

import "errors"

// NodeID is a dense node identifier in [0, NumNodes). Ids are assigned
// contiguously starting at 0 and stay valid for the lifetime of the graph.
type NodeID int

// Arc is one outgoing edge entry in the adjacency-list representation.
// The matrix representation cannot carry weights.
type Arc struct {
	Dst    NodeID // Target node
	Weight uint64 // Edge weight; 1 for unweighted construction
}

var (
	// ErrInvalidNode reports a node id outside [0, NumNodes).
	ErrInvalidNode = errors.New("invalid node id")

	// ErrInvalidEntry reports an out-of-range entry node passed to Dominators.
	ErrInvalidEntry = errors.New("invalid entry node")
)

// validNode reports whether id is in [0, n).
func validNode(n int, id NodeID) bool {
	return id >= 0 && int(id) < n
}
