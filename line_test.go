package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLineLength(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	want := math.Sqrt(2.0)
	if d := math.Abs(l.Length() - want); d > 1e-12 {
		t.Errorf("%g > %g", d, 1e-12)
	}
}

func TestLineIsInf(t *testing.T) {
	if (Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}).IsInf() {
		t.Error("line is infinite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(math.Inf(1), 1.0)}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(0.0, math.Inf(1))}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}
}

func TestIntersectLine(t *testing.T) {
	hLine := Line{Pt(0.0, 0.0), Pt(100.0, 0.0)}
	vLine := Line{Pt(10.0, -10.0), Pt(10.0, 10.0)}
	x, ok := hLine.IntersectLine(vLine)
	if !ok {
		t.Fatal("expected an intersection")
	}
	diff(t, LineIntersection{0.5, 0.1}, x, cmpopts.EquateApprox(0, 1e-7))

	vLine = Line{Pt(-10.0, -10.0), Pt(-10.0, 10.0)}
	if x, ok := hLine.IntersectLine(vLine); ok {
		t.Errorf("expected no intersections, got %v", x)
	}

	vLine = Line{Pt(10.0, 10.0), Pt(10.0, 20.0)}
	if x, ok := hLine.IntersectLine(vLine); ok {
		t.Errorf("expected no intersections, got %v", x)
	}
}

func TestLineDistances(t *testing.T) {
	l := Line{Pt(0, 0), Pt(4, 0)}
	tests := []struct {
		p             Point
		segment, line float64
	}{
		{Pt(2, 3), 3, 3},
		{Pt(7, 4), 5, 4},
		{Pt(-3, -4), 5, 4},
		{Pt(1, 0), 0, 0},
	}
	for _, tt := range tests {
		if got := l.SegmentDistance(tt.p); math.Abs(got-tt.segment) > 1e-12 {
			t.Errorf("segment distance to %s: got %v, want %v", tt.p, got, tt.segment)
		}
		if got := l.LineDistance(tt.p); math.Abs(got-tt.line) > 1e-12 {
			t.Errorf("line distance to %s: got %v, want %v", tt.p, got, tt.line)
		}
	}

	// A degenerate line measures distance to its single point.
	pl := Line{Pt(1, 1), Pt(1, 1)}
	if got := pl.LineDistance(Pt(4, 5)); got != 5 {
		t.Errorf("got %v, want 5", got)
	}
}

func TestLineCrossingPoint(t *testing.T) {
	a := Line{Pt(0, 0), Pt(1, 1)}
	b := Line{Pt(4, 0), Pt(3, 1)}
	pt, ok := a.CrossingPoint(b)
	if !ok {
		t.Fatal("expected the lines to cross")
	}
	assertNear(t, pt, Pt(2, 2), 1e-12)

	if _, ok := a.CrossingPoint(a.Translate(Vec(0, 1))); ok {
		t.Error("parallel lines should not cross")
	}

	diff(t, Line{Pt(1, 0), Pt(3, 0)}, Line{Pt(0, 0), Pt(4, 0)}.Subsegment(0.25, 0.75))
	diff(t, Rect{0, -1, 2, 3}, Line{Pt(2, -1), Pt(0, 3)}.BoundingBox())
}
