// ABOUTME: Graph interface shared by both storage representations
// ABOUTME: Provides read-only traversal queries for analysis passes

package graph

// Graph is the read-only traversal view over a directed graph. Both
// AdjList and Matrix satisfy it, so analyses can run against either
// representation.
//
// Graphs are built single-writer during a construction phase and are
// immutable afterwards; a frozen Graph is safe for concurrent readers.
type Graph interface {
	// NumNodes returns the number of nodes. Ids are dense in [0, NumNodes).
	NumNodes() int

	// Successors returns the targets of edges leaving node.
	// Fails with ErrInvalidNode if node is out of range.
	Successors(node NodeID) ([]NodeID, error)

	// Predecessors returns the sources of edges entering node.
	// Fails with ErrInvalidNode if node is out of range.
	Predecessors(node NodeID) ([]NodeID, error)

	// HasEdge reports whether the edge src->dst exists. Out-of-range
	// ids report false.
	HasEdge(src, dst NodeID) bool
}

// predecessorLists materializes the predecessor list of every node with a
// single sweep over the graph's successor sets. Analyses that query
// predecessors repeatedly (dominators, frontiers) build this once instead
// of paying the per-call scan of the underlying representation.
// Self-loop edges are dropped when skipSelf is set.
func predecessorLists(g Graph, skipSelf bool) [][]NodeID {
	preds := make([][]NodeID, g.NumNodes())
	for src := 0; src < g.NumNodes(); src++ {
		succs, err := g.Successors(NodeID(src))
		if err != nil {
			continue
		}
		for _, dst := range succs {
			if skipSelf && dst == NodeID(src) {
				continue
			}
			preds[dst] = append(preds[dst], NodeID(src))
		}
	}
	return preds
}
