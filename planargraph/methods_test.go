package planargraph_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/planargrid/planargrid/geom"
	"github.com/planargrid/planargrid/planargraph"
)

func square() *planargraph.Graph[geom.Point, struct{}, struct{}] {
	g := planargraph.New[geom.Point, struct{}, struct{}]()
	pts := []geom.Point{{Col: 0, Row: 0}, {Col: 2, Row: 0}, {Col: 2, Row: 2}, {Col: 0, Row: 2}}
	for _, p := range pts {
		g.AddVertex(p, struct{}{})
	}
	for i := 0; i < len(pts); i++ {
		_ = g.Connect(pts[i], pts[(i+1)%len(pts)], struct{}{})
	}

	return g
}

func TestConnect_UpdatesBothEndpoints(t *testing.T) {
	g := square()
	for _, p := range g.Vertices() {
		if got := g.Degree(p); got != 2 {
			t.Errorf("Degree(%v) = %d; want 2", p, got)
		}
	}
}

func TestCanonicalEdgeKey_OrderIndependent(t *testing.T) {
	a, b := geom.Point{Col: 0, Row: 0}, geom.Point{Col: 2, Row: 0}
	if planargraph.Canonical(a, b) != planargraph.Canonical(b, a) {
		t.Error("Canonical(a,b) != Canonical(b,a)")
	}
}

func TestRemoveEdge_DropsDegreeBothSides(t *testing.T) {
	g := square()
	a, b := geom.Point{Col: 0, Row: 0}, geom.Point{Col: 2, Row: 0}
	g.RemoveEdge(a, b)
	if g.Degree(a) != 1 || g.Degree(b) != 1 {
		t.Errorf("Degree(a)=%d Degree(b)=%d; want 1, 1", g.Degree(a), g.Degree(b))
	}
	if g.HasEdge(a, b) {
		t.Error("HasEdge(a,b) = true after RemoveEdge")
	}
}

func TestRemoveVertex_RequiresCallerToClearAdjacency(t *testing.T) {
	g := square()
	a, b := geom.Point{Col: 0, Row: 0}, geom.Point{Col: 2, Row: 0}
	g.RemoveEdge(a, b)
	g.RemoveEdge(a, geom.Point{Col: 0, Row: 2})
	g.RemoveVertex(a)
	if g.HasVertex(a) {
		t.Error("HasVertex(a) = true after RemoveVertex")
	}
	if g.Len() != 3 {
		t.Errorf("Len() = %d; want 3", g.Len())
	}
}

func TestVertices_AscendingOrder(t *testing.T) {
	g := square()
	vs := g.Vertices()
	for i := 1; i < len(vs); i++ {
		if !vs[i-1].Less(vs[i]) {
			t.Errorf("Vertices() not ascending at index %d: %v, %v", i, vs[i-1], vs[i])
		}
	}
}

func TestNeighbors_MatchesExpectedSetRegardlessOfInsertionOrder(t *testing.T) {
	g := square()
	got := g.Neighbors(geom.Point{Col: 0, Row: 0})
	want := []geom.Point{{Col: 0, Row: 2}, {Col: 2, Row: 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Neighbors((0,0)) mismatch (-want +got):\n%s", diff)
	}
}

func TestUnion_ComponentwiseMerge(t *testing.T) {
	g1 := planargraph.New[geom.Point, struct{}, struct{}]()
	g1.AddVertex(geom.Point{Col: 0, Row: 0}, struct{}{})
	g2 := planargraph.New[geom.Point, struct{}, struct{}]()
	g2.AddVertex(geom.Point{Col: 1, Row: 0}, struct{}{})

	u := planargraph.Union(g1, g2)
	if u.Len() != 2 {
		t.Errorf("Len() = %d; want 2", u.Len())
	}
}
