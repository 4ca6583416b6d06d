// ABOUTME: Main edged package providing version information and package documentation
// ABOUTME: This is the root package for the directed-graph analysis library

// Package edged provides compact directed-graph storage and dominance
// analysis. It includes two graph representations (adjacency list and
// bitset adjacency matrix), traversal iterators, dominator-tree
// computation, and shortest-path search.
package edged

// Version is the semantic version of the edged library
const Version = "0.1.0-dev"
