package extract

import "github.com/planargrid/planargrid/planargraph"

// All drains g, partitioning it into minimal interior cycles and
// filaments. g is mutated (shrunk monotonically) and should be
// considered consumed on return: every vertex and edge has been removed
// by the time All returns, since the driver loop runs until the graph
// is empty.
func All[V PlanarVertex[V], T any, E any](g *planargraph.Graph[V, T, E]) (cycles [][]V, filaments [][]V) {
	s := newState[V, T, E](g)

	for g.Len() > 0 {
		v := g.Vertices()[0]
		switch d := g.Degree(v); {
		case d == 0:
			g.RemoveVertex(v)
		case d == 1:
			filament := s.extractFilament(v, v)
			s.foundFilaments = append(s.foundFilaments, filament)
		default:
			s.extractCycle(v)
		}
	}

	return s.foundCycles, s.foundFilaments
}

// extractCycle traces the face starting at root, the minimum-key vertex
// of the current graph with degree >= 2. It either closes a cycle back
// on root, dead-ends, or re-enters its own walk, delegating to
// extractFilament / extractFilamentFromMiddle in the latter two cases.
func (s *state[V, T, E]) extractCycle(root V) {
	start, ok := root.ClockwiseMost(s.g.Neighbors(root), nil)
	if !ok {
		start = root
	}

	visited := map[V]struct{}{root: {}}
	history := []V{root}
	prev := root
	curr := start

	for {
		switch {
		case curr == root:
			s.closeCycle(history, root, start)

			return
		case isVisited(visited, curr):
			filament := s.extractFilamentFromMiddle(prev, curr)
			s.foundFilaments = append(s.foundFilaments, filament)

			return
		default:
			visited[curr] = struct{}{}
			history = append([]V{curr}, history...)
			next, ok := curr.CounterClockwiseMost(s.g.Neighbors(curr), &prev)
			if !ok {
				filament := s.extractFilament(curr, curr)
				s.foundFilaments = append(s.foundFilaments, filament)

				return
			}
			prev, curr = curr, next
		}
	}
}

func isVisited[V comparable](visited map[V]struct{}, v V) bool {
	_, ok := visited[v]

	return ok
}

// closeCycle records history as a found cycle, marks every edge along
// its circular adjacency (including the closing root<->history[0] edge)
// as belonging to that cycle, then detaches the entry edge (root, start)
// and cleans up any now-degree-1 remnant at root or start. That cleanup
// walk is discarded rather than recorded: its material was already
// accounted for by the cycle itself.
func (s *state[V, T, E]) closeCycle(history []V, root, start V) {
	cycle := append([]V{}, history...)
	s.foundCycles = append(s.foundCycles, cycle)

	for i := range history {
		a := history[i]
		b := history[(i+1)%len(history)]
		s.markCycleEdge(a, b)
	}
	// history's last element is always root; the wraparound pair above
	// also covers the (root, history[0]) closing edge.

	s.g.RemoveEdge(root, start)
	// The (root, start) edge we just removed is a cycle edge, so pass
	// root/start as each other's `to` argument rather than (v, v): that
	// pins must_cycle true for this cleanup, which is what stops it at
	// the first non-cycle edge instead of swallowing a real filament
	// that happens to hang off root or start.
	if s.g.HasVertex(root) && s.g.Degree(root) == 1 {
		_ = s.extractFilament(root, start)
	}
	if s.g.HasVertex(start) && s.g.Degree(start) == 1 {
		_ = s.extractFilament(start, root)
	}
}

// extractFilament peels a dangling chain off the graph starting at from.
// When degree(from) >= 3, from is a branch point that survives the
// walk: the edge to `to` is cut and the walk proceeds from `to`, with
// `from` recorded but never removed. Otherwise from is itself consumed
// as the first vertex of the chain.
func (s *state[V, T, E]) extractFilament(from, to V) []V {
	mustCycle := s.isCycleEdge(from, to)

	var history []V
	var current V
	if s.g.Degree(from) >= 3 {
		s.g.RemoveEdge(from, to)
		history = []V{from}
		current = to
	} else {
		current = from
	}

	for {
		switch d := s.g.Degree(current); {
		case d == 0:
			s.g.RemoveVertex(current)

			return prepend(current, history)
		case d == 1:
			next := s.g.Neighbors(current)[0]
			if mustCycle && !s.isCycleEdge(current, next) {
				return prepend(current, history)
			}
			history = prepend(current, history)
			s.g.RemoveEdge(current, next)
			s.g.RemoveVertex(current)
			current = next
		default:
			return prepend(current, history)
		}
	}
}

// extractFilamentFromMiddle advances deterministically along a run of
// degree-2 vertices (taking the minimum non-backtracking neighbor each
// step) until it reaches a branch point or leaf, then delegates to
// extractFilament to peel the remainder.
func (s *state[V, T, E]) extractFilamentFromMiddle(prev, curr V) []V {
	for s.g.Degree(curr) == 2 {
		neighbors := s.g.Neighbors(curr)
		next := neighbors[0]
		if next == prev {
			next = neighbors[1]
		}
		prev, curr = curr, next
	}

	return s.extractFilament(curr, prev)
}
