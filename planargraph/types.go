// Package planargraph defines the undirected graph model the extractor
// operates on: vertices keyed by a totally ordered, comparable type,
// edges keyed by their canonicalized (min, max) endpoint pair, and an
// adjacency index of degree and neighbor set maintained in lockstep with
// the edge map.
//
// The core extraction algorithm (see the extract package) is specified
// as single-threaded and synchronous, so unlike the wider graph types
// this module's teacher exposes, Graph here carries no locking: each
// call to the extractor builds and discards its own Graph.
package planargraph

import "errors"

// Sentinel errors for planargraph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("planargraph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("planargraph: edge not found")

	// ErrSelfLoop indicates an attempt to connect a vertex to itself.
	ErrSelfLoop = errors.New("planargraph: self-loops are not supported")
)

// Vertex is the capability every vertex type of this package's Graph
// must provide: a total order, via Less, layered on top of Go's built-in
// comparable (so vertices can key maps directly).
type Vertex[V any] interface {
	comparable
	Less(V) bool
}

// EdgeKey is the canonicalized, order-independent identity of an
// undirected edge: Lo is always the lesser of the two endpoints under
// Less, Hi the greater.
type EdgeKey[V Vertex[V]] struct {
	Lo V
	Hi V
}

// Canonical builds the EdgeKey for an edge between a and b, ordering the
// endpoints so (a, b) and (b, a) produce the same key.
func Canonical[V Vertex[V]](a, b V) EdgeKey[V] {
	if a.Less(b) {
		return EdgeKey[V]{Lo: a, Hi: b}
	}

	return EdgeKey[V]{Lo: b, Hi: a}
}

// VertexInfo is the per-vertex payload stored alongside adjacency.
type VertexInfo[V Vertex[V], T any] struct {
	Data T
}

// EdgeInfo is the per-edge payload stored under an EdgeKey.
type EdgeInfo[V Vertex[V], E any] struct {
	Data E
}

// adjacency is the degree/neighbor-set bookkeeping kept in lockstep with
// the edge map. neighbors is a set, not a slice, so Connect/RemoveEdge
// stay O(1) and degree is always len(neighbors).
type adjacency[V Vertex[V]] struct {
	neighbors map[V]struct{}
}

func newAdjacency[V Vertex[V]]() *adjacency[V] {
	return &adjacency[V]{neighbors: make(map[V]struct{})}
}

func (a *adjacency[V]) degree() int {
	return len(a.neighbors)
}

// Graph is an undirected graph over a totally ordered vertex type V,
// carrying an arbitrary payload T per vertex and E per edge.
type Graph[V Vertex[V], T any, E any] struct {
	vertices map[V]*VertexInfo[V, T]
	edges    map[EdgeKey[V]]*EdgeInfo[V, E]
	adj      map[V]*adjacency[V]
}

// New returns an empty Graph.
func New[V Vertex[V], T any, E any]() *Graph[V, T, E] {
	return &Graph[V, T, E]{
		vertices: make(map[V]*VertexInfo[V, T]),
		edges:    make(map[EdgeKey[V]]*EdgeInfo[V, E]),
		adj:      make(map[V]*adjacency[V]),
	}
}
