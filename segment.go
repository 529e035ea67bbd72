package geom

import "fmt"

// SegmentCurve is the straight line P0 + t(P1 − P0). The parameterization is
// unbounded: t outside [0, 1] extends the segment past its endpoints.
type SegmentCurve struct {
	P0 Point
	P1 Point
}

func (SegmentCurve) param2D() {}

func (c SegmentCurve) poly() polyCurve {
	return polyCurve{
		x: Poly{c.P0.X, c.P1.X - c.P0.X},
		y: Poly{c.P0.Y, c.P1.Y - c.P0.Y},
	}
}

func (c SegmentCurve) Location(t float64) Point { return c.P0.Lerp(c.P1, t) }

func (c SegmentCurve) Derivative(t float64) (Vec2, bool) { return c.P1.Sub(c.P0), true }

// DerivativeCurve returns the constant P1 − P0 as a [PointCurve].
func (c SegmentCurve) DerivativeCurve() (Param2D, bool) {
	return PointCurve{Point(c.P1.Sub(c.P0))}, true
}

func (c SegmentCurve) DistanceAt(p Point, t float64) CurveDistance {
	return distanceAt(c, p, t)
}

// Distance is exact. The nearest point is the projection of p onto the line,
// clamped to [t0, t1].
func (c SegmentCurve) Distance(p Point, t0, t1 float64) CurveDistanceRange {
	d := c.P1.Sub(c.P0)
	l2 := d.Hypot2()
	t := t0
	if l2 != 0 {
		t = min(max(d.Dot(p.Sub(c.P0))/l2, t0), t1)
	}
	return exactDistance(c.DistanceAt(p, t))
}

func (c SegmentCurve) RefineDistance(p Point, maxError float64, maxSteps int, t0, t1 float64) CurveDistanceRange {
	return c.Distance(p, t0, t1)
}

func (c SegmentCurve) Transformed(xf Transform2D) (Param2D, error) {
	p0, err := xf.TransformPoint(c.P0)
	if err != nil {
		return nil, err
	}
	p1, err := xf.TransformPoint(c.P1)
	if err != nil {
		return nil, err
	}
	return SegmentCurve{p0, p1}, nil
}

func (c SegmentCurve) Bounds(t0, t1 float64) Rect {
	return NewRectFromPoints(c.Location(t0), c.Location(t1))
}

func (c SegmentCurve) LinearBounds(xc, yc, t0, t1 float64) (lo, hi float64) {
	return c.poly().linearBounds(xc, yc, t0, t1)
}

func (c SegmentCurve) SegIntersections(seg Line, t0, t1 float64) []float64 {
	return c.poly().intersections(seg, t0, t1, true)
}

func (c SegmentCurve) LineIntersections(seg Line, t0, t1 float64) []float64 {
	return c.poly().intersections(seg, t0, t1, false)
}

// Length is exact.
func (c SegmentCurve) Length(t0, t1 float64) Estimate {
	if !(t0 < t1) {
		return Exact(0)
	}
	return Exact(c.P0.Distance(c.P1) * (t1 - t0))
}

func (c SegmentCurve) RefineLength(absErr, relErr float64, maxSteps int, t0, t1 float64) Estimate {
	return c.Length(t0, t1)
}

func (c SegmentCurve) Area(t0, t1 float64) float64 {
	return c.poly().area(t0, t1)
}

func (c SegmentCurve) Subset(t0, t1 float64) (BoundedParam2D, error) {
	return subset(c, t0, t1)
}

func (c SegmentCurve) Subdivide(t0, t1 float64) []BoundedParam2D {
	return bisect(c, t0, t1)
}

func (c SegmentCurve) StraightSegments(t0, t1 float64) []BoundedParam2D {
	return onePiece(c, t0, t1)
}

func (c SegmentCurve) CurvedSegments(t0, t1 float64) []BoundedParam2D { return nil }

// ControlPolygon returns the endpoints of [t0, t1].
func (c SegmentCurve) ControlPolygon(t0, t1 float64) []Point {
	return []Point{c.Location(t0), c.Location(t1)}
}

func (c SegmentCurve) String() string {
	return fmt.Sprintf("SegmentCurve[%s, %s]", c.P0, c.P1)
}
