// Package parser drives the character classifier and the segment
// accumulators across a grid of text lines, producing the anchors,
// bullets and segments the rest of the pipeline builds a planar graph
// from.
package parser

import (
	"github.com/planargrid/planargrid/classify"
	"github.com/planargrid/planargrid/geom"
	"github.com/planargrid/planargrid/segment"
)

// Anchor is a point where segments meet or bend, tagged with the
// character that produced it.
type Anchor struct {
	Kind classify.AnchorKind
}

// Result is the immutable output of Parse: every anchor, bullet and
// segment found while walking the grid. Once returned it is never
// mutated again; the extractor's graph is built from a fresh copy of its
// segment set.
type Result struct {
	Anchors  map[geom.Point]Anchor
	Bullets  map[geom.Point]struct{}
	Segments []segment.Segment
}

// newResult allocates an empty Result ready to be populated row by row.
func newResult() *Result {
	return &Result{
		Anchors: make(map[geom.Point]Anchor),
		Bullets: make(map[geom.Point]struct{}),
	}
}
