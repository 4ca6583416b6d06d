// ABOUTME: Computes immediate dominators with the iterative Cooper/Harvey/Kennedy algorithm
// ABOUTME: Fixpoint over reverse postorder with two-finger idom-chain intersection

package graph

import (
	"fmt"

	"github.com/rs/zerolog"
)

// logger carries fixpoint diagnostics. Nop by default so the package is
// silent unless a caller opts in.
var logger = zerolog.Nop()

// SetLogger routes debug diagnostics (fixpoint pass counts, reachable node
// counts) to the given logger. Intended for development; the default is a
// nop logger.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// undefined marks an idom slot not yet computed.
const undefined = NodeID(-1)

// Dominators computes the dominator tree of the nodes reachable from
// entry, using the iterative reverse-postorder algorithm of Cooper,
// Harvey, and Kennedy ("A Simple, Fast Dominance Algorithm").
//
// Either representation works; the Matrix form is preferred since the
// fixpoint is dominated by successor/predecessor sweeps. The graph is not
// modified and the returned tree holds no reference into it, so concurrent
// calls over the same frozen graph are safe.
//
// Nodes unreachable from entry get no idom entry and are reported through
// DomTree.Unreachable. Fails with ErrInvalidEntry if entry is out of
// range; a disconnected graph is not an error.
func Dominators(g Graph, entry NodeID) (*DomTree, error) {
	n := g.NumNodes()
	if !validNode(n, entry) {
		return nil, fmt.Errorf("dominators: entry %d out of range [0, %d): %w", entry, n, ErrInvalidEntry)
	}

	// Postorder numbering of the reachable subgraph. Unreached nodes keep
	// rank -1 and are excluded from the fixpoint entirely.
	post := make([]NodeID, 0, n)
	po, err := NewPostOrder(g, entry)
	if err != nil {
		return nil, err
	}
	for v, ok := po.Next(); ok; v, ok = po.Next() {
		post = append(post, v)
	}
	rank := make([]int, n)
	for i := range rank {
		rank[i] = -1
	}
	for i, v := range post {
		rank[v] = i
	}

	// Predecessor lists, built once. Self-loops are dropped: a node is
	// never its own idom candidate.
	preds := predecessorLists(g, true)

	idom := make([]NodeID, n)
	for i := range idom {
		idom[i] = undefined
	}
	idom[entry] = entry

	// Iterate to a fixpoint in reverse postorder, skipping entry (the
	// last element of the postorder sequence). Intersection compares
	// postorder ranks, never raw ids, so convergence does not depend on
	// id assignment order.
	passes := 0
	for changed := true; changed; {
		changed = false
		passes++
		for i := len(post) - 2; i >= 0; i-- {
			v := post[i]
			newIdom := undefined
			for _, p := range preds[v] {
				if rank[p] < 0 || idom[p] == undefined {
					continue
				}
				if newIdom == undefined {
					newIdom = p
				} else {
					newIdom = intersect(idom, rank, newIdom, p)
				}
			}
			if newIdom != undefined && idom[v] != newIdom {
				idom[v] = newIdom
				changed = true
			}
		}
	}
	logger.Debug().
		Int("nodes", n).
		Int("reachable", len(post)).
		Int("passes", passes).
		Msg("dominator fixpoint converged")

	return newDomTree(n, entry, post, idom), nil
}

// intersect finds the nearest common dominator of a and b by walking both
// idom chains upward, each step advancing the finger with the smaller
// postorder rank (the deeper node). O(tree height) per call.
func intersect(idom []NodeID, rank []int, a, b NodeID) NodeID {
	for a != b {
		for rank[a] < rank[b] {
			a = idom[a]
		}
		for rank[b] < rank[a] {
			b = idom[b]
		}
	}
	return a
}
