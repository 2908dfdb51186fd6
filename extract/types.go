// Package extract implements the planar minimal-cycle and filament
// partitioning algorithm: given an undirected planar graph whose
// vertices carry a clockwise-most / counter-clockwise-most geometric
// predicate, it repeatedly peels the graph apart into closed cycles
// (minimal interior faces) and open filaments (dangling chains),
// shrinking the graph monotonically until nothing remains.
package extract

import "github.com/planargrid/planargrid/planargraph"

// PlanarVertex is the capability a vertex type must carry to be walked
// by this package: the graph ordering planargraph.Vertex already
// requires, plus the two angular-turn predicates the face-tracing walk
// is built on. This is a behavioral capability, not an inheritance
// relation — a tagged variant exposing the two functions would satisfy
// it just as well as geom.Point's direct methods do.
type PlanarVertex[V any] interface {
	planargraph.Vertex[V]
	ClockwiseMost(neighbors []V, previous *V) (V, bool)
	CounterClockwiseMost(neighbors []V, previous *V) (V, bool)
}

// state is the mutable record threaded through extraction: the graph
// being consumed, the set of edges already known to bound some reported
// cycle, and the two output lists. foundCycles and foundFilaments are
// independent slices — a faithful reimplementation does not alias one
// through the other's accessor.
type state[V PlanarVertex[V], T any, E any] struct {
	g              *planargraph.Graph[V, T, E]
	cycleEdges     map[planargraph.EdgeKey[V]]struct{}
	foundCycles    [][]V
	foundFilaments [][]V
}

func newState[V PlanarVertex[V], T any, E any](g *planargraph.Graph[V, T, E]) *state[V, T, E] {
	return &state[V, T, E]{
		g:          g,
		cycleEdges: make(map[planargraph.EdgeKey[V]]struct{}),
	}
}

func (s *state[V, T, E]) isCycleEdge(a, b V) bool {
	if a == b {
		return false
	}
	_, ok := s.cycleEdges[planargraph.Canonical(a, b)]

	return ok
}

func (s *state[V, T, E]) markCycleEdge(a, b V) {
	s.cycleEdges[planargraph.Canonical(a, b)] = struct{}{}
}

// prepend returns a new slice with v at the front of history.
func prepend[V any](v V, history []V) []V {
	out := make([]V, len(history)+1)
	out[0] = v
	copy(out[1:], history)

	return out
}
