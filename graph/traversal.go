// ABOUTME: Depth-first and breadth-first traversal iterators
// ABOUTME: Provides preorder, postorder, level order, and reverse postorder

package graph

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// PostOrder iterates the nodes reachable from an entry node in depth-first
// postorder: a node is produced only after all of its descendants.
// The iterator is finite and single-use; create a new one to restart.
type PostOrder struct {
	g          Graph
	stack      []NodeID
	discovered *bitset.BitSet
	finished   *bitset.BitSet
}

// NewPostOrder creates a postorder iterator rooted at entry.
// Fails with ErrInvalidNode if entry is out of range.
func NewPostOrder(g Graph, entry NodeID) (*PostOrder, error) {
	if !validNode(g.NumNodes(), entry) {
		return nil, fmt.Errorf("postorder: entry %d out of range [0, %d): %w", entry, g.NumNodes(), ErrInvalidNode)
	}
	return &PostOrder{
		g:          g,
		stack:      []NodeID{entry},
		discovered: bitset.New(uint(g.NumNodes())),
		finished:   bitset.New(uint(g.NumNodes())),
	}, nil
}

// Next returns the next node in postorder, or false when exhausted.
func (po *PostOrder) Next() (NodeID, bool) {
	for len(po.stack) > 0 {
		node := po.stack[len(po.stack)-1]
		if !po.discovered.Test(uint(node)) {
			// First visit: keep the node on the stack and push its
			// undiscovered successors above it.
			po.discovered.Set(uint(node))
			succs, _ := po.g.Successors(node)
			for _, s := range succs {
				if !po.discovered.Test(uint(s)) {
					po.stack = append(po.stack, s)
				}
			}
		} else {
			po.stack = po.stack[:len(po.stack)-1]
			if !po.finished.Test(uint(node)) {
				// Second visit: all reachable descendants are finished.
				po.finished.Set(uint(node))
				return node, true
			}
		}
	}
	return 0, false
}

// PreOrder iterates the nodes reachable from an entry node in depth-first
// preorder: a node is produced before any of its descendants.
type PreOrder struct {
	g          Graph
	stack      []NodeID
	discovered *bitset.BitSet
}

// NewPreOrder creates a preorder iterator rooted at entry.
// Fails with ErrInvalidNode if entry is out of range.
func NewPreOrder(g Graph, entry NodeID) (*PreOrder, error) {
	if !validNode(g.NumNodes(), entry) {
		return nil, fmt.Errorf("preorder: entry %d out of range [0, %d): %w", entry, g.NumNodes(), ErrInvalidNode)
	}
	discovered := bitset.New(uint(g.NumNodes()))
	discovered.Set(uint(entry))
	return &PreOrder{
		g:          g,
		stack:      []NodeID{entry},
		discovered: discovered,
	}, nil
}

// Next returns the next node in preorder, or false when exhausted.
func (pr *PreOrder) Next() (NodeID, bool) {
	if len(pr.stack) == 0 {
		return 0, false
	}
	node := pr.stack[len(pr.stack)-1]
	pr.stack = pr.stack[:len(pr.stack)-1]
	succs, _ := pr.g.Successors(node)
	for _, s := range succs {
		if !pr.discovered.Test(uint(s)) {
			pr.discovered.Set(uint(s))
			pr.stack = append(pr.stack, s)
		}
	}
	return node, true
}

// LevelOrder iterates the nodes reachable from an entry node in
// breadth-first order.
type LevelOrder struct {
	g          Graph
	queue      []NodeID
	discovered *bitset.BitSet
}

// NewLevelOrder creates a breadth-first iterator rooted at entry.
// Fails with ErrInvalidNode if entry is out of range.
func NewLevelOrder(g Graph, entry NodeID) (*LevelOrder, error) {
	if !validNode(g.NumNodes(), entry) {
		return nil, fmt.Errorf("levelorder: entry %d out of range [0, %d): %w", entry, g.NumNodes(), ErrInvalidNode)
	}
	discovered := bitset.New(uint(g.NumNodes()))
	discovered.Set(uint(entry))
	return &LevelOrder{
		g:          g,
		queue:      []NodeID{entry},
		discovered: discovered,
	}, nil
}

// Next returns the next node in breadth-first order, or false when
// exhausted.
func (lo *LevelOrder) Next() (NodeID, bool) {
	if len(lo.queue) == 0 {
		return 0, false
	}
	node := lo.queue[0]
	lo.queue = lo.queue[1:]
	succs, _ := lo.g.Successors(node)
	for _, s := range succs {
		if !lo.discovered.Test(uint(s)) {
			lo.discovered.Set(uint(s))
			lo.queue = append(lo.queue, s)
		}
	}
	return node, true
}

// ReversePostOrder returns the reachable nodes from entry in reverse
// postorder, the iteration order used by the dominator engine.
// Fails with ErrInvalidNode if entry is out of range.
func ReversePostOrder(g Graph, entry NodeID) ([]NodeID, error) {
	po, err := NewPostOrder(g, entry)
	if err != nil {
		return nil, err
	}
	var order []NodeID
	for v, ok := po.Next(); ok; v, ok = po.Next() {
		order = append(order, v)
	}
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, nil
}
