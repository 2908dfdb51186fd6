package segment_test

import (
	"testing"

	"github.com/planargrid/planargrid/geom"
	"github.com/planargrid/planargrid/segment"
)

func TestAccumulator_SingleCell(t *testing.T) {
	acc := segment.NewAccumulator(segment.Horizontal)
	acc.Extend(geom.Point{Col: 3, Row: 0})
	seg, ok := acc.Close()
	if !ok {
		t.Fatal("Close() ok = false; want true")
	}
	want := segment.Segment{
		Start: geom.Point{Col: 3, Row: 0},
		End:   geom.Point{Col: 3, Row: 0},
		Kind:  segment.Horizontal,
		Draw:  segment.Solid,
	}
	if seg != want {
		t.Errorf("Close() = %+v; want %+v", seg, want)
	}
}

func TestAccumulator_RunPreservesStart(t *testing.T) {
	acc := segment.NewAccumulator(segment.Horizontal)
	acc.Extend(geom.Point{Col: 0, Row: 2})
	acc.Extend(geom.Point{Col: 1, Row: 2})
	acc.Extend(geom.Point{Col: 2, Row: 2})
	seg, ok := acc.Close()
	if !ok {
		t.Fatal("Close() ok = false; want true")
	}
	if seg.Start != (geom.Point{Col: 0, Row: 2}) || seg.End != (geom.Point{Col: 2, Row: 2}) {
		t.Errorf("Close() = %+v; want Start=(0,2) End=(2,2)", seg)
	}
}

func TestAccumulator_MarkDashedAffectsWholeRun(t *testing.T) {
	acc := segment.NewAccumulator(segment.Vertical)
	acc.Extend(geom.Point{Col: 0, Row: 0})
	acc.Extend(geom.Point{Col: 0, Row: 1})
	acc.MarkDashed()
	acc.Extend(geom.Point{Col: 0, Row: 2})
	seg, ok := acc.Close()
	if !ok {
		t.Fatal("Close() ok = false; want true")
	}
	if seg.Draw != segment.Dashed {
		t.Errorf("Draw = %v; want Dashed", seg.Draw)
	}
	if seg.End != (geom.Point{Col: 0, Row: 2}) {
		t.Errorf("End = %v; want (0,2)", seg.End)
	}
}

func TestAccumulator_CloseOnEmptyIsNoop(t *testing.T) {
	acc := segment.NewAccumulator(segment.Horizontal)
	if _, ok := acc.Close(); ok {
		t.Error("Close() on empty accumulator ok = true; want false")
	}
	acc.MarkDashed() // no-op, must not panic or open a run
	if acc.Open() {
		t.Error("Open() = true after MarkDashed on empty accumulator")
	}
}

func TestAccumulator_IdempotentMarkDashed(t *testing.T) {
	acc := segment.NewAccumulator(segment.Horizontal)
	acc.Extend(geom.Point{Col: 0, Row: 0})
	acc.MarkDashed()
	acc.MarkDashed()
	seg, _ := acc.Close()
	if seg.Draw != segment.Dashed {
		t.Errorf("Draw = %v; want Dashed", seg.Draw)
	}
}
