// ABOUTME: Topological ordering of directed acyclic graphs
// ABOUTME: Kahn's algorithm over node in-degrees

package graph

// Topological returns a topological order of g using Kahn's algorithm:
// repeatedly emit a node with no remaining incoming edges. For a DAG the
// result covers every node; nodes on or downstream of a cycle are omitted,
// so len(result) < NumNodes signals a cycle.
//
// Time complexity: O(|V| + |E|).
func Topological(g Graph) []NodeID {
	inDegree := make([]int, g.NumNodes())
	for node := 0; node < g.NumNodes(); node++ {
		succs, _ := g.Successors(NodeID(node))
		for _, s := range succs {
			inDegree[s]++
		}
	}

	var stack []NodeID
	for node, degree := range inDegree {
		if degree == 0 {
			stack = append(stack, NodeID(node))
		}
	}

	order := make([]NodeID, 0, g.NumNodes())
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, node)
		succs, _ := g.Successors(node)
		for _, s := range succs {
			inDegree[s]--
			if inDegree[s] == 0 {
				stack = append(stack, s)
			}
		}
	}
	return order
}
