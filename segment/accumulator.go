package segment

import "github.com/planargrid/planargrid/geom"

// Extend folds p into the in-progress run. The first extension sets both
// Start and End to p; every subsequent extension preserves Start and moves
// End to p. This is the monoidal combine described for the horizontal
// accumulator, reused unchanged for the vertical one since both share the
// same "first sets both ends, rest move the far end" contract.
func (a *Accumulator) Extend(p geom.Point) {
	if !a.open {
		a.open = true
		a.start = p
		a.end = p
		a.draw = Solid

		return
	}

	a.end = p
}

// MarkDashed flips the in-progress run to Dashed. Idempotent, and a no-op
// if nothing is open.
func (a *Accumulator) MarkDashed() {
	if !a.open {
		return
	}

	a.draw = Dashed
}

// Close emits the in-progress run, if any, and clears the accumulator.
// ok is false when nothing was open, in which case seg is the zero value.
func (a *Accumulator) Close() (seg Segment, ok bool) {
	if !a.open {
		return Segment{}, false
	}

	seg = Segment{Start: a.start, End: a.end, Kind: a.kind, Draw: a.draw}
	a.open = false

	return seg, true
}

// Open reports whether a run is currently in progress.
func (a *Accumulator) Open() bool {
	return a.open
}
