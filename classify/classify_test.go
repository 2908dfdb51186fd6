package classify_test

import (
	"testing"

	"github.com/planargrid/planargrid/classify"
)

func TestOf(t *testing.T) {
	cases := []struct {
		ch   rune
		want classify.Class
	}{
		{'-', classify.Horizontal},
		{'=', classify.Horizontal},
		{'|', classify.Vertical},
		{':', classify.Vertical},
		{'+', classify.Anchor},
		{'/', classify.Anchor},
		{'\\', classify.Anchor},
		{'*', classify.Bullet},
		{' ', classify.Blank},
		{'#', classify.Blank},
		{'x', classify.Blank},
	}
	for _, tc := range cases {
		if got := classify.Of(tc.ch); got != tc.want {
			t.Errorf("Of(%q) = %v; want %v", tc.ch, got, tc.want)
		}
	}
}

func TestIsDashed(t *testing.T) {
	dashed := []rune{'=', ':'}
	for _, ch := range dashed {
		if !classify.IsDashed(ch) {
			t.Errorf("IsDashed(%q) = false; want true", ch)
		}
	}
	solid := []rune{'-', '|', '+', '/', '\\', '*', ' '}
	for _, ch := range solid {
		if classify.IsDashed(ch) {
			t.Errorf("IsDashed(%q) = true; want false", ch)
		}
	}
}

func TestAnchorKindOf(t *testing.T) {
	cases := []struct {
		ch   rune
		want classify.AnchorKind
	}{
		{'+', classify.Multi},
		{'*', classify.Multi},
		{'/', classify.FirstDiagonal},
		{'\\', classify.SecondDiagonal},
	}
	for _, tc := range cases {
		if got := classify.AnchorKindOf(tc.ch); got != tc.want {
			t.Errorf("AnchorKindOf(%q) = %v; want %v", tc.ch, got, tc.want)
		}
	}
}
