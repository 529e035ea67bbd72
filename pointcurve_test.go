package geom

import "testing"

func TestPointCurve(t *testing.T) {
	c, err := NewBezier(Pt(1, 2))
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Location(0.7); got != Pt(1, 2) {
		t.Errorf("got %s, want (1, 2)", got)
	}
	if _, ok := c.Derivative(0); ok {
		t.Error("a point should have no derivative")
	}
	if _, ok := c.DerivativeCurve(); ok {
		t.Error("a point should have no derivative curve")
	}

	d := c.Distance(Pt(4, 6))
	if !d.IsExact() || d.Distance != 5 {
		t.Errorf("got %v, want exact distance 5", d)
	}
	diff(t, d, c.RefineDistance(Pt(4, 6), 0, 0))

	diff(t, Exact(0), c.Length())
	diff(t, Exact(0), c.RefineLength(0, 0, 0))
	if got := c.Area(); got != 0 {
		t.Errorf("got area %v, want 0", got)
	}
	diff(t, Rect{1, 2, 1, 2}, c.Bounds())
	lo, hi := c.LinearBounds(2, 1)
	diff(t, []float64{4, 4}, []float64{lo, hi})

	if n := len(c.StraightSegments()) + len(c.CurvedSegments()); n != 0 {
		t.Errorf("got %d segments, want none", n)
	}
	if n := len(c.Subdivide()); n != 1 {
		t.Errorf("got %d pieces, want 1", n)
	}
	if got := c.Curve().String(); got != "PointCurve(1, 2)" {
		t.Errorf("got %q", got)
	}
}

func TestPointCurveIntersections(t *testing.T) {
	c := PointCurve{Pt(1, 1)}
	diff(t, []float64{0}, c.SegIntersections(Line{Pt(0, 0), Pt(2, 2)}, 0, 0))
	diff(t, []float64(nil), c.SegIntersections(Line{Pt(2, 2), Pt(3, 3)}, 0, 0))
	diff(t, []float64{0}, c.LineIntersections(Line{Pt(2, 2), Pt(3, 3)}, 0, 0))
	diff(t, []float64(nil), c.LineIntersections(Line{Pt(0, 1), Pt(1, 2)}, 0, 0))
}

func TestPointCurveTransformed(t *testing.T) {
	got, err := PointCurve{Pt(1, 1)}.Transformed(Scale(0, 1))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, PointCurve{Pt(0, 1)}, got)
}
