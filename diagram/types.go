// Package diagram is the external collaborator that bridges the grid
// parser's output to the planar extractor's input: it builds a
// planargraph.Graph keyed by geom.Point from a parser.Result's segments,
// runs the extractor, and packages the result as a Diagram alongside the
// original parse.
package diagram

import (
	"github.com/planargrid/planargrid/geom"
	"github.com/planargrid/planargrid/parser"
	"github.com/planargrid/planargrid/planargraph"
	"github.com/planargrid/planargrid/segment"
)

// Node is the payload carried by every graph vertex: whether it came
// from an anchor character, a bullet, or neither (a bare segment
// endpoint that never touched an anchor).
type Node struct {
	Anchor   *parser.Anchor
	IsBullet bool
}

// Edge is the payload carried by every graph edge: the drawing
// attributes of the segment that produced it.
type Edge struct {
	Kind segment.Kind
	Draw segment.Style
}

// Graph is the concrete planar graph type this package builds and the
// extractor consumes.
type Graph = planargraph.Graph[geom.Point, Node, Edge]

// Diagram is the fully extracted picture: the original parse plus the
// cycles and filaments found in its induced planar graph.
type Diagram struct {
	Parse     *parser.Result
	Cycles    [][]geom.Point
	Filaments [][]geom.Point
}
