package diagram

import (
	"github.com/planargrid/planargrid/extract"
	"github.com/planargrid/planargrid/geom"
	"github.com/planargrid/planargrid/parser"
	"github.com/planargrid/planargrid/planargraph"
	"github.com/planargrid/planargrid/segment"
)

// Build runs the full pipeline on a parsed grid: it constructs the
// planar graph implied by res's segments and extracts its cycles and
// filaments.
func Build(res *parser.Result) *Diagram {
	g := BuildGraph(res)
	cycles, filaments := extract.All[geom.Point, Node, Edge](g)

	return &Diagram{Parse: res, Cycles: cycles, Filaments: filaments}
}

// BuildGraph turns res's segments into a planar graph. A segment's two
// endpoints are, by default, its own start and end cell — but a
// segment's start/end cell is never itself an anchor (the grid parser
// closes the accumulator on the anchor and starts fresh beyond it), so a
// segment that visually touches a corner or junction sits one cell short
// of the anchor that should really be its graph vertex. BuildGraph
// extends each endpoint outward by one cell, in the segment's own
// direction, to the adjacent anchor or bullet when one is there; a
// segment with nothing adjacent keeps its own cell as the vertex.
//
// Every anchor and bullet is also added as a vertex in its own right,
// even where no segment reaches it, so a lone anchor or bullet surfaces
// as an isolated vertex rather than being silently dropped.
func BuildGraph(res *parser.Result) *Graph {
	g := planargraph.New[geom.Point, Node, Edge]()

	for p, a := range res.Anchors {
		anchor := a
		_, isBullet := res.Bullets[p]
		g.AddVertex(p, Node{Anchor: &anchor, IsBullet: isBullet})
	}

	for _, seg := range res.Segments {
		start, end := extendedEndpoints(res, seg)
		ensureVertex(g, start)
		ensureVertex(g, end)
		_ = g.Connect(start, end, Edge{Kind: seg.Kind, Draw: seg.Draw})
	}

	return g
}

// ensureVertex adds p as a bare vertex if it is not already present
// (e.g. a segment endpoint that never touched an anchor).
func ensureVertex[T any](g *planargraph.Graph[geom.Point, Node, T], p geom.Point) {
	if !g.HasVertex(p) {
		g.AddVertex(p, Node{})
	}
}

// extendedEndpoints applies the anchor-extension rule to seg and returns
// the two points that should become its graph vertices.
func extendedEndpoints(res *parser.Result, seg segment.Segment) (start, end geom.Point) {
	start, end = seg.Start, seg.End
	if seg.Kind == segment.Horizontal {
		if _, ok := res.Anchors[left(start)]; ok {
			start = left(start)
		}
		if _, ok := res.Anchors[right(end)]; ok {
			end = right(end)
		}

		return start, end
	}

	if _, ok := res.Anchors[above(start)]; ok {
		start = above(start)
	}
	if _, ok := res.Anchors[below(end)]; ok {
		end = below(end)
	}

	return start, end
}

func left(p geom.Point) geom.Point  { return geom.Point{Col: p.Col - 1, Row: p.Row} }
func right(p geom.Point) geom.Point { return geom.Point{Col: p.Col + 1, Row: p.Row} }
func above(p geom.Point) geom.Point { return geom.Point{Col: p.Col, Row: p.Row - 1} }
func below(p geom.Point) geom.Point { return geom.Point{Col: p.Col, Row: p.Row + 1} }
