// ABOUTME: Dijkstra shortest-path search over the weighted adjacency list
// ABOUTME: Returns per-node distances with saturating arithmetic

package graph

import (
	"container/heap"
	"fmt"
	"math"
)

// Unreachable is the distance reported for nodes Dijkstra cannot reach
// from the source.
const Unreachable = uint64(math.MaxUint64)

// Dijkstra computes the shortest distance from src to every node, using
// the edge weights of the adjacency list. Distances saturate at
// Unreachable instead of overflowing. Parallel edges are fine; the
// cheapest one wins. Fails with ErrInvalidNode if src is out of range.
//
// Time complexity: O((|V| + |E|) log |V|).
func Dijkstra(l *AdjList, src NodeID) ([]uint64, error) {
	if !validNode(l.NumNodes(), src) {
		return nil, fmt.Errorf("dijkstra: src %d out of range [0, %d): %w", src, l.NumNodes(), ErrInvalidNode)
	}

	dist := make([]uint64, l.NumNodes())
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[src] = 0

	h := &distHeap{{node: src, dist: 0}}
	for h.Len() > 0 {
		item := heap.Pop(h).(distItem)
		if item.dist != dist[item.node] {
			continue // stale queue entry
		}
		for _, a := range l.arcs[item.node] {
			alt := saturatingAdd(item.dist, a.Weight)
			if alt < dist[a.Dst] {
				dist[a.Dst] = alt
				heap.Push(h, distItem{node: a.Dst, dist: alt})
			}
		}
	}
	return dist, nil
}

func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return Unreachable
	}
	return a + b
}

// distItem is one tentative distance in the priority queue.
type distItem struct {
	node NodeID
	dist uint64
}

// distHeap is a min-heap of tentative distances for container/heap.
type distHeap []distItem

func (h distHeap) Len() int           { return len(h) }
func (h distHeap) Less(i, j int) bool { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x any)        { *h = append(*h, x.(distItem)) }
func (h *distHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
