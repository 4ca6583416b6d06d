// ABOUTME: Conversion between the adjacency-list and adjacency-matrix representations
// ABOUTME: Materializes the fast-traversal form at the end of construction

package graph

// ToMatrix builds the adjacency-matrix form of a list graph. Parallel
// edges collapse to a single bit and weights are dropped. This is the
// usual list->matrix boundary: construct incrementally with an AdjList,
// convert once, then run analyses against the Matrix.
func ToMatrix(l *AdjList) *Matrix {
	m := NewMatrixCap(l.NumNodes())
	for i := 0; i < l.NumNodes(); i++ {
		m.AddNode()
	}
	for src, arcs := range l.arcs {
		for _, a := range arcs {
			m.rows[src].Set(uint(a.Dst))
		}
	}
	return m
}

// ToList builds the adjacency-list form of a matrix graph. The matrix
// carries no weights, so every edge gets unit weight. Successor order in
// the result is ascending id order, matching matrix iteration.
func ToList(m *Matrix) *AdjList {
	l := NewAdjListCap(m.NumNodes())
	for i := 0; i < m.NumNodes(); i++ {
		l.AddNode()
	}
	for src, row := range m.rows {
		for i, ok := row.NextSet(0); ok; i, ok = row.NextSet(i + 1) {
			l.arcs[src] = append(l.arcs[src], Arc{Dst: NodeID(i), Weight: 1})
			l.numEdges++
		}
	}
	return l
}
