package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSegmentDistance(t *testing.T) {
	c := SegmentCurve{Pt(0, 0), Pt(4, 0)}
	tests := []struct {
		p    Point
		want CurveDistance
	}{
		{Pt(2, 3), CurveDistance{T: 0.5, Point: Pt(2, 0), Distance: 3}},
		{Pt(-3, 4), CurveDistance{T: 0, Point: Pt(0, 0), Distance: 5}},
		{Pt(7, -4), CurveDistance{T: 1, Point: Pt(4, 0), Distance: 5}},
		{Pt(1, 0), CurveDistance{T: 0.25, Point: Pt(1, 0), Distance: 0}},
	}
	for _, tt := range tests {
		got := c.Distance(tt.p, 0, 1)
		if !got.IsExact() {
			t.Errorf("%s: got inexact distance %v", tt.p, got)
		}
		diff(t, tt.want, got.CurveDistance, cmpopts.EquateApprox(0, 1e-12))
		diff(t, got, c.RefineDistance(tt.p, 0, 0, 0, 1))
	}

	// Clamped to the domain.
	got := c.Distance(Pt(3, 1), 0, 0.5)
	diff(t, CurveDistance{T: 0.5, Point: Pt(2, 0), Distance: math.Sqrt2}, got.CurveDistance, cmpopts.EquateApprox(0, 1e-12))

	// A zero-length segment degenerates to its point.
	z := SegmentCurve{Pt(1, 1), Pt(1, 1)}
	diff(t, CurveDistance{T: 0, Point: Pt(1, 1), Distance: 5}, z.Distance(Pt(4, 5), 0, 1).CurveDistance)
}

func TestSegmentIntersections(t *testing.T) {
	c, err := Bound(SegmentCurve{Pt(0, 0), Pt(4, 4)}, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{0.5}, c.SegIntersections(Line{Pt(0, 4), Pt(4, 0)}))
	diff(t, []float64(nil), c.SegIntersections(Line{Pt(0, 4), Pt(1, 3)}))
	diff(t, []float64{0.5}, c.LineIntersections(Line{Pt(0, 4), Pt(1, 3)}))
	// Parallel lines never meet.
	diff(t, []float64(nil), c.LineIntersections(Line{Pt(0, 1), Pt(1, 2)}))
}

func TestSegmentMeasures(t *testing.T) {
	c := SegmentCurve{Pt(1, 1), Pt(4, 5)}
	diff(t, Exact(5), c.Length(0, 1))
	diff(t, Exact(2.5), c.Length(0.25, 0.75))
	diff(t, Exact(5), c.RefineLength(0, 0, 0, 0, 1))
	diff(t, Exact(0), c.Length(1, 1))

	// ∫ y dx over the trapezoid under the segment.
	if got := c.Area(0, 1); math.Abs(got-9) > 1e-12 {
		t.Errorf("got area %v, want 9", got)
	}

	diff(t, Rect{1, 1, 4, 5}, c.Bounds(0, 1))
	diff(t, Rect{1, 1, 4, 5}, c.Bounds(1, 0))
	lo, hi := c.LinearBounds(1, -1, 0, 1)
	diff(t, []float64{-1, 0}, []float64{lo, hi})

	d, ok := c.DerivativeCurve()
	if !ok {
		t.Fatal("segment has no derivative")
	}
	diff(t, PointCurve{Pt(3, 4)}, d)
	v, _ := c.Derivative(0.3)
	diff(t, Vec(3, 4), v)
}

func TestSegmentPieces(t *testing.T) {
	c, err := Bound(SegmentCurve{Pt(0, 0), Pt(2, 0)}, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	straight := c.StraightSegments()
	if len(straight) != 1 || straight[0].MinT() != 0 || straight[0].MaxT() != 1 {
		t.Errorf("got straight segments %v, want the whole segment", straight)
	}
	if n := len(c.CurvedSegments()); n != 0 {
		t.Errorf("got %d curved segments, want 0", n)
	}
	halves := c.Subdivide()
	if len(halves) != 2 {
		t.Fatalf("got %d pieces, want 2", len(halves))
	}
	assertNear(t, halves[1].Start(), Pt(1, 0), 0)

	seg := c.Curve().(SegmentCurve)
	diff(t, []Point{Pt(0.5, 0), Pt(1.5, 0)}, seg.ControlPolygon(0.25, 0.75))
	if got := seg.String(); got != "SegmentCurve[(0, 0), (2, 0)]" {
		t.Errorf("got %q", got)
	}
}

func TestSegmentTransformed(t *testing.T) {
	c := SegmentCurve{Pt(0, 0), Pt(1, 2)}
	got, err := c.Transformed(Translate(Vec(1, 1)).Mul(Scale(2, 3)))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, SegmentCurve{Pt(1, 1), Pt(3, 7)}, got)
}
