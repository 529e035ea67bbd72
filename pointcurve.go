package geom

import "fmt"

// PointCurve is the degenerate curve whose location is P for every t.
type PointCurve struct {
	P Point
}

func (PointCurve) param2D() {}

func (c PointCurve) Location(t float64) Point { return c.P }

func (c PointCurve) Derivative(t float64) (Vec2, bool) { return Vec2{}, false }

func (c PointCurve) DerivativeCurve() (Param2D, bool) { return nil, false }

func (c PointCurve) DistanceAt(p Point, t float64) CurveDistance {
	return distanceAt(c, p, t)
}

func (c PointCurve) Distance(p Point, t0, t1 float64) CurveDistanceRange {
	return exactDistance(c.DistanceAt(p, t0))
}

func (c PointCurve) RefineDistance(p Point, maxError float64, maxSteps int, t0, t1 float64) CurveDistanceRange {
	return c.Distance(p, t0, t1)
}

func (c PointCurve) Transformed(xf Transform2D) (Param2D, error) {
	p, err := xf.TransformPoint(c.P)
	if err != nil {
		return nil, err
	}
	return PointCurve{p}, nil
}

func (c PointCurve) Bounds(t0, t1 float64) Rect {
	return Rect{c.P.X, c.P.Y, c.P.X, c.P.Y}
}

func (c PointCurve) LinearBounds(xc, yc, t0, t1 float64) (lo, hi float64) {
	v := xc*c.P.X + yc*c.P.Y
	return v, v
}

// SegIntersections returns {0} if the point lies on seg.
func (c PointCurve) SegIntersections(seg Line, t0, t1 float64) []float64 {
	if seg.SegmentDistance(c.P) == 0 {
		return []float64{0}
	}
	return nil
}

// LineIntersections returns {0} if the point lies on the line through seg.
func (c PointCurve) LineIntersections(seg Line, t0, t1 float64) []float64 {
	if seg.LineDistance(c.P) == 0 {
		return []float64{0}
	}
	return nil
}

func (c PointCurve) Length(t0, t1 float64) Estimate { return Exact(0) }

func (c PointCurve) RefineLength(absErr, relErr float64, maxSteps int, t0, t1 float64) Estimate {
	return Exact(0)
}

func (c PointCurve) Area(t0, t1 float64) float64 { return 0 }

func (c PointCurve) Subset(t0, t1 float64) (BoundedParam2D, error) {
	return subset(c, t0, t1)
}

// Subdivide returns the point itself; a point cannot be split further.
func (c PointCurve) Subdivide(t0, t1 float64) []BoundedParam2D {
	return []BoundedParam2D{{c, t0, t1}}
}

func (c PointCurve) StraightSegments(t0, t1 float64) []BoundedParam2D { return nil }

func (c PointCurve) CurvedSegments(t0, t1 float64) []BoundedParam2D { return nil }

func (c PointCurve) String() string {
	return fmt.Sprintf("PointCurve%s", c.P)
}
