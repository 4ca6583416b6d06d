// ABOUTME: Dominator tree queries and dominance frontier computation
// ABOUTME: Provides idom lookup, dominance tests, tree walks, and frontiers

package graph

import (
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// DomTree is the result of Dominators: the immediate-dominator mapping
// over the subgraph reachable from the entry node, plus the set of nodes
// the entry cannot reach. It is a self-contained value with no reference
// back into the graph it was computed from.
//
// Entry has no idom entry because it is the root; unreachable nodes have
// no idom entry because dominance is undefined for them. Use Reachable to
// tell the two apart.
type DomTree struct {
	entry       NodeID
	numNodes    int
	idom        map[NodeID]NodeID   // reachable nodes except entry
	dominees    map[NodeID][]NodeID // inverted idom, children sorted ascending
	unreachable *bitset.BitSet
}

func newDomTree(n int, entry NodeID, post []NodeID, idom []NodeID) *DomTree {
	t := &DomTree{
		entry:       entry,
		numNodes:    n,
		idom:        make(map[NodeID]NodeID, len(post)),
		dominees:    make(map[NodeID][]NodeID),
		unreachable: bitset.New(uint(n)),
	}
	t.unreachable.FlipRange(0, uint(n))
	for _, v := range post {
		t.unreachable.Clear(uint(v))
		if v != entry {
			t.idom[v] = idom[v]
			t.dominees[idom[v]] = append(t.dominees[idom[v]], v)
		}
	}
	for _, children := range t.dominees {
		sort.Slice(children, func(i, j int) bool { return children[i] < children[j] })
	}
	return t
}

// Entry returns the entry node the tree is rooted at.
func (t *DomTree) Entry() NodeID {
	return t.entry
}

// NumNodes returns the node count of the graph the tree was computed from.
func (t *DomTree) NumNodes() int {
	return t.numNodes
}

// Idom returns the immediate dominator of v. The second result is false
// for the entry node (which has no dominator), for nodes unreachable from
// the entry, and for out-of-range ids.
func (t *DomTree) Idom(v NodeID) (NodeID, bool) {
	d, ok := t.idom[v]
	return d, ok
}

// Idoms returns a copy of the full immediate-dominator mapping. The entry
// and unreachable nodes are absent.
func (t *DomTree) Idoms() map[NodeID]NodeID {
	out := make(map[NodeID]NodeID, len(t.idom))
	for v, d := range t.idom {
		out[v] = d
	}
	return out
}

// Reachable reports whether v is reachable from the entry node.
func (t *DomTree) Reachable(v NodeID) bool {
	return validNode(t.numNodes, v) && !t.unreachable.Test(uint(v))
}

// Unreachable returns the nodes the entry cannot reach, in ascending id
// order. These nodes have no dominator relationship to the entry at all,
// which is distinct from the entry's own missing idom.
func (t *DomTree) Unreachable() []NodeID {
	out := make([]NodeID, 0, t.unreachable.Count())
	for i, ok := t.unreachable.NextSet(0); ok; i, ok = t.unreachable.NextSet(i + 1) {
		out = append(out, NodeID(i))
	}
	return out
}

// Dominates reports whether a dominates b: every path from the entry to b
// passes through a. A node dominates itself. False if either node is
// unreachable.
func (t *DomTree) Dominates(a, b NodeID) bool {
	if !t.Reachable(a) || !t.Reachable(b) {
		return false
	}
	if a == b {
		return true
	}
	for cur := b; ; {
		d, ok := t.idom[cur]
		if !ok {
			return false // climbed past the entry
		}
		if d == a {
			return true
		}
		cur = d
	}
}

// Dominees returns the nodes immediately dominated by v: its children in
// the dominator tree, in ascending id order.
func (t *DomTree) Dominees(v NodeID) []NodeID {
	children := t.dominees[v]
	out := make([]NodeID, len(children))
	copy(out, children)
	return out
}

// Depth returns v's depth in the dominator tree (entry has depth 0).
// The second result is false for unreachable or out-of-range nodes.
func (t *DomTree) Depth(v NodeID) (int, bool) {
	if !t.Reachable(v) {
		return 0, false
	}
	depth := 0
	for cur := v; cur != t.entry; depth++ {
		cur = t.idom[cur]
	}
	return depth, true
}

// Path returns the idom chain from v up to the entry, inclusive of both.
// Returns nil for unreachable or out-of-range nodes.
func (t *DomTree) Path(v NodeID) []NodeID {
	if !t.Reachable(v) {
		return nil
	}
	path := []NodeID{v}
	for cur := v; cur != t.entry; {
		cur = t.idom[cur]
		path = append(path, cur)
	}
	return path
}

// Frontiers computes the dominance frontier of every node: w is in DF(v)
// iff v dominates a predecessor of w but does not strictly dominate w.
// The graph must be the one the tree was computed from; it is needed
// because frontiers depend on the original edges, which the tree does not
// retain. Rows are ascending and duplicate-free; unreachable nodes have
// empty frontiers.
func (t *DomTree) Frontiers(g Graph) ([][]NodeID, error) {
	if g.NumNodes() != t.numNodes {
		return nil, fmt.Errorf("frontiers: graph has %d nodes, tree was computed over %d: %w",
			g.NumNodes(), t.numNodes, ErrInvalidNode)
	}

	// Self-loops stay in: a node with an edge to itself is in its own
	// frontier.
	preds := predecessorLists(g, false)

	sets := make([]*bitset.BitSet, t.numNodes)
	for b := NodeID(0); int(b) < t.numNodes; b++ {
		if !t.Reachable(b) {
			continue
		}
		var reachablePreds []NodeID
		for _, p := range preds[b] {
			if t.Reachable(p) {
				reachablePreds = append(reachablePreds, p)
			}
		}
		// Join nodes only: with a single reachable predecessor p,
		// idom(b) == p and the runner walk below is empty. The entry is
		// the exception: it has no idom, so every predecessor (a back
		// edge) contributes.
		if b != t.entry && len(reachablePreds) < 2 {
			continue
		}
		// Walk each predecessor's idom chain up to idom(b), collecting b
		// into the frontier of every node passed. For b == entry there is
		// no stopping idom and the walk runs to the entry inclusive.
		stop, hasStop := t.idom[b]
		for _, p := range reachablePreds {
			for runner := p; ; runner = t.idom[runner] {
				if hasStop && runner == stop {
					break
				}
				if sets[runner] == nil {
					sets[runner] = bitset.New(uint(t.numNodes))
				}
				sets[runner].Set(uint(b))
				if runner == t.entry {
					break
				}
			}
		}
	}

	out := make([][]NodeID, t.numNodes)
	for v, set := range sets {
		if set == nil {
			continue
		}
		row := make([]NodeID, 0, set.Count())
		for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
			row = append(row, NodeID(i))
		}
		out[v] = row
	}
	return out, nil
}

// Frontier computes the dominance frontier of a single node. Fails with
// ErrInvalidNode if v is out of range; unreachable nodes have an empty
// frontier.
func (t *DomTree) Frontier(g Graph, v NodeID) ([]NodeID, error) {
	if !validNode(t.numNodes, v) {
		return nil, fmt.Errorf("frontier: node %d out of range [0, %d): %w", v, t.numNodes, ErrInvalidNode)
	}
	frontiers, err := t.Frontiers(g)
	if err != nil {
		return nil, err
	}
	return frontiers[v], nil
}
