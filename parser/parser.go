package parser

import (
	"github.com/planargrid/planargrid/classify"
	"github.com/planargrid/planargrid/geom"
	"github.com/planargrid/planargrid/segment"
)

// Parse walks lines once, top-to-bottom then left-to-right within each
// row, and returns the anchors, bullets and segments it found. Lines
// shorter than the widest line are treated as padded with blanks; no
// character outside the recognized set (see classify.Of) is an error, it
// is simply blank.
func Parse(lines []string) *Result {
	res := newResult()

	width := 0
	runes := make([][]rune, len(lines))
	for i, line := range lines {
		runes[i] = []rune(line)
		if len(runes[i]) > width {
			width = len(runes[i])
		}
	}

	vertical := make([]*segment.Accumulator, width)
	for c := range vertical {
		vertical[c] = segment.NewAccumulator(segment.Vertical)
	}
	horizontal := segment.NewAccumulator(segment.Horizontal)

	for r, row := range runes {
		for c := 0; c < width; c++ {
			ch := rune(0)
			if c < len(row) {
				ch = row[c]
			}
			p := geom.Point{Col: c, Row: r}
			dispatch(res, horizontal, vertical[c], ch, p)
		}
		closeInto(res, horizontal)
	}

	for _, acc := range vertical {
		closeInto(res, acc)
	}

	return res
}

// dispatch applies the §4.3 effect table for a single cell to the
// row-lifetime horizontal accumulator and the column's carried vertical
// accumulator, and records anchors/bullets directly into res.
func dispatch(res *Result, h, v *segment.Accumulator, ch rune, p geom.Point) {
	switch classify.Of(ch) {
	case classify.Bullet:
		closeInto(res, h)
		closeInto(res, v)
		res.Anchors[p] = Anchor{Kind: classify.Multi}
		res.Bullets[p] = struct{}{}
	case classify.Horizontal:
		h.Extend(p)
		if classify.IsDashed(ch) {
			h.MarkDashed()
		}
		closeInto(res, v)
	case classify.Vertical:
		closeInto(res, h)
		v.Extend(p)
		if classify.IsDashed(ch) {
			v.MarkDashed()
		}
	case classify.Anchor:
		closeInto(res, h)
		closeInto(res, v)
		res.Anchors[p] = Anchor{Kind: classify.AnchorKindOf(ch)}
	default: // Blank
		closeInto(res, h)
		closeInto(res, v)
	}
}

// closeInto closes acc, if open, appending its segment to res.Segments.
func closeInto(res *Result, acc *segment.Accumulator) {
	if seg, ok := acc.Close(); ok {
		res.Segments = append(res.Segments, seg)
	}
}
