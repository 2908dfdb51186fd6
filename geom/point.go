package geom

import "fmt"

// Point is an integer lattice coordinate. Column and Row are both
// nonnegative for points produced by the grid parser; the type itself
// places no such restriction so that translated or synthetic graphs built
// directly by callers (see the extractor's own tests) are equally valid.
type Point struct {
	Col int
	Row int
}

// Less orders points column-major: by Col first, then by Row. It is the
// total order every "pick the minimum" step in the extractor relies on,
// and the order Graph.Vertices returns points in.
func (p Point) Less(other Point) bool {
	if p.Col != other.Col {
		return p.Col < other.Col
	}

	return p.Row < other.Row
}

// MarshalText renders p as "col,row", letting Point serve as a JSON object
// key (encoding/json requires map keys to implement TextMarshaler).
func (p Point) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%d,%d", p.Col, p.Row)), nil
}

// String renders p the same way MarshalText does, for log and error output.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.Col, p.Row)
}

// sub returns the displacement vector from "from" to "to" (to - from).
func sub(from, to Point) Point {
	return Point{Col: to.Col - from.Col, Row: to.Row - from.Row}
}

// dotPerp is the 2D perp-dot product u.x*v.y - u.y*v.x, which is positive
// when v lies counter-clockwise of u, negative when v lies clockwise of u,
// and zero when u and v are parallel (same or opposite ray).
func dotPerp(u, v Point) int {
	return u.Col*v.Row - u.Row*v.Col
}

// arrivalSentinel stands in for d_curr when there is no previous vertex on
// the walk, i.e. when extract_cycle makes its very first turn at the root.
// It fixes the orientation deterministically: the walk behaves as though it
// had just arrived at the root moving in the +Row direction. Turns are
// measured in dotPerp's frame, where +Row lies counter-clockwise of +Col,
// so from a root whose neighbors lie at +Col and +Row the clockwise-most
// first pick is the +Col neighbor.
var arrivalSentinel = Point{Col: 0, Row: 1}

// ClockwiseMost returns the neighbor of p that makes the tightest right
// turn given the incoming direction previous->p (or the fixed arrival
// sentinel when previous is nil), per the dot-perp rule of the extractor's
// geometric predicate. ok is false iff neighbors is empty.
func (p Point) ClockwiseMost(neighbors []Point, previous *Point) (Point, bool) {
	return turnMost(neighbors, previous, p, false)
}

// CounterClockwiseMost is the mirror image of ClockwiseMost: it returns the
// neighbor reached by the tightest left turn.
func (p Point) CounterClockwiseMost(neighbors []Point, previous *Point) (Point, bool) {
	return turnMost(neighbors, previous, p, true)
}

// turnMost implements the shared dot-perp selection rule. When ccw is
// false it picks the clockwise-most neighbor; when true, the
// counter-clockwise-most one. Candidates are scanned in ascending Less
// order so that colinear ties (equal dot-perp against both running
// candidates) resolve to the smaller point, satisfying the extractor's
// "ties broken by the total order on V" rule.
func turnMost(neighbors []Point, previous *Point, current Point, ccw bool) (Point, bool) {
	if len(neighbors) == 0 {
		return Point{}, false
	}

	ordered := sortedCopy(neighbors)

	var dCurr Point
	if previous != nil {
		dCurr = sub(*previous, current)
	} else {
		dCurr = arrivalSentinel
	}

	// Seed v_next with any neighbor distinct from previous, falling back to
	// the first candidate when there is no previous (or all neighbors equal it,
	// which cannot happen since previous is itself not a member of neighbors'
	// duplicate set in well-formed graphs).
	vNext := ordered[0]
	for _, n := range ordered {
		if previous == nil || n != *previous {
			vNext = n
			break
		}
	}
	dNext := sub(current, vNext)

	better := func(a, b int) bool {
		if ccw {
			return a > 0 && b > 0
		}

		return a < 0 && b < 0
	}
	betterEither := func(a, b int) bool {
		if ccw {
			return a > 0 || b > 0
		}

		return a < 0 || b < 0
	}

	for _, vAdj := range ordered {
		dAdj := sub(current, vAdj)
		convex := dotPerp(dNext, dCurr) <= 0

		var replace bool
		if convex {
			replace = better(dotPerp(dCurr, dAdj), dotPerp(dNext, dAdj))
		} else {
			replace = betterEither(dotPerp(dCurr, dAdj), dotPerp(dNext, dAdj))
		}

		if replace {
			vNext = vAdj
			dNext = sub(current, vNext)
		}
	}

	return vNext, true
}

// sortedCopy returns a copy of pts sorted ascending by Less, leaving the
// caller's slice untouched.
func sortedCopy(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Less(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}

	return out
}
