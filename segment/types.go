// Package segment implements the monoidal run accumulators the grid parser
// drives: one horizontal accumulator per row and one vertical accumulator
// per column, carried across row boundaries.
package segment

import "github.com/planargrid/planargrid/geom"

// Kind distinguishes a horizontal run from a vertical one.
type Kind int

const (
	// Horizontal runs move along increasing column, fixed row.
	Horizontal Kind = iota
	// Vertical runs move along increasing row, fixed column.
	Vertical
)

func (k Kind) String() string {
	if k == Vertical {
		return "Vertical"
	}

	return "Horizontal"
}

// Style tags whether a segment contains a dashed-variant cell.
type Style int

const (
	// Solid segments contain no dashed-variant cell.
	Solid Style = iota
	// Dashed segments contain at least one dashed-variant cell.
	Dashed
)

func (s Style) String() string {
	if s == Dashed {
		return "Dashed"
	}

	return "Solid"
}

// Segment is a maximal straight run of line characters. Start and End are
// the first and last grid cells covered by the run; for Horizontal segments
// Start.Row == End.Row and Start.Col <= End.Col, and symmetrically for
// Vertical.
type Segment struct {
	Start geom.Point
	End   geom.Point
	Kind  Kind
	Draw  Style
}

// Accumulator holds at most one in-progress run. The zero value is empty.
type Accumulator struct {
	kind  Kind
	open  bool
	start geom.Point
	end   geom.Point
	draw  Style
}

// NewAccumulator returns an empty accumulator for the given run kind.
func NewAccumulator(kind Kind) *Accumulator {
	return &Accumulator{kind: kind}
}
