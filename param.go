package geom

import (
	"math"

	"github.com/hashicorp/go-hclog"
)

// Param2D is a two-dimensional parametric curve, a function from a
// parameter t to a point in the plane. Every method that depends on the
// curve's domain takes the interval [t0, t1] explicitly; see
// [BoundedParam2D] for a curve bound to a fixed domain.
//
// The set of implementations is closed: [PointCurve], [SegmentCurve] and
// [*BezierCurve].
type Param2D interface {
	// Location returns the point at parameter t.
	Location(t float64) Point
	// Derivative returns the curve's derivative at t. It returns false if the
	// curve has no derivative, as for a single point.
	Derivative(t float64) (Vec2, bool)
	// DerivativeCurve returns the derivative of the curve as a curve in its
	// own right, or false if the curve has none.
	DerivativeCurve() (Param2D, bool)

	// DistanceAt returns the distance from p to the curve's point at t.
	DistanceAt(p Point, t float64) CurveDistance
	// Distance returns a fast estimate of the curve point in [t0, t1] that is
	// closest to p. Exact curves return a range with zero error.
	Distance(p Point, t0, t1 float64) CurveDistanceRange
	// RefineDistance improves on Distance by subdivision until the error is
	// at most maxError or maxSteps steps have been taken.
	RefineDistance(p Point, maxError float64, maxSteps int, t0, t1 float64) CurveDistanceRange

	// Transformed returns the curve mapped through xf.
	Transformed(xf Transform2D) (Param2D, error)

	// Bounds returns the bounding box of the curve over [t0, t1].
	Bounds(t0, t1 float64) Rect
	// LinearBounds returns the range of xc·x(t) + yc·y(t) over [t0, t1].
	LinearBounds(xc, yc, t0, t1 float64) (lo, hi float64)

	// SegIntersections returns the parameters in [t0, t1] at which the
	// curve crosses seg, in ascending order.
	SegIntersections(seg Line, t0, t1 float64) []float64
	// LineIntersections is like SegIntersections but treats seg as the
	// infinite line through its endpoints.
	LineIntersections(seg Line, t0, t1 float64) []float64

	// Length returns a fast, bracketed estimate of the arc length over
	// [t0, t1].
	Length(t0, t1 float64) Estimate
	// RefineLength tightens Length by subdivision until the bracket is
	// within absErr or relErr, or maxSteps pieces have been measured.
	RefineLength(absErr, relErr float64, maxSteps int, t0, t1 float64) Estimate
	// Area returns the integral of y dx over [t0, t1]. It is signed and
	// depends on the direction of travel.
	Area(t0, t1 float64) float64

	// Subset binds the curve to [t0, t1].
	Subset(t0, t1 float64) (BoundedParam2D, error)
	// Subdivide splits [t0, t1] into pieces that are each simpler to bound.
	Subdivide(t0, t1 float64) []BoundedParam2D
	// StraightSegments returns the pieces of [t0, t1] along which the curve
	// is a straight line.
	StraightSegments(t0, t1 float64) []BoundedParam2D
	// CurvedSegments returns the pieces of [t0, t1] along which the curve is
	// not straight.
	CurvedSegments(t0, t1 float64) []BoundedParam2D

	String() string

	param2D()
}

// ControlPolygoner is an optional interface implemented by curves that lie in
// the convex hull of a control polygon. The polygon's length is an upper
// bound on the arc length of [t0, t1].
type ControlPolygoner interface {
	ControlPolygon(t0, t1 float64) []Point
}

var (
	_ Param2D          = PointCurve{}
	_ Param2D          = SegmentCurve{}
	_ Param2D          = (*BezierCurve)(nil)
	_ ControlPolygoner = SegmentCurve{}
	_ ControlPolygoner = (*BezierCurve)(nil)
)

// NewBezier returns the bounded curve defined by 1 to 4 control points. One
// point yields a [PointCurve] on [0, 0], two yield a [SegmentCurve] on [0, 1],
// and three or four yield a [*BezierCurve] on [0, 1].
func NewBezier(pts ...Point) (BoundedParam2D, error) {
	switch len(pts) {
	case 1:
		return BoundedParam2D{PointCurve{pts[0]}, 0, 0}, nil
	case 2:
		return BoundedParam2D{SegmentCurve{pts[0], pts[1]}, 0, 1}, nil
	case 3, 4:
		c, err := NewBezierCurve(pts...)
		if err != nil {
			return BoundedParam2D{}, err
		}
		return BoundedParam2D{c, 0, 1}, nil
	default:
		return BoundedParam2D{}, errInvalidPointCount(len(pts))
	}
}

func distanceAt(c Param2D, p Point, t float64) CurveDistance {
	pt := c.Location(t)
	return CurveDistance{T: t, Point: pt, Distance: pt.Distance(p)}
}

func refineDistance(c Param2D, p Point, maxError float64, maxSteps int, t0, t1 float64) CurveDistanceRange {
	return NearestPoint(BoundedParam2D{c, t0, t1}, p, Tolerance{
		MaxError: maxError,
		MaxSteps: maxSteps,
		Logger:   hclog.NewNullLogger(),
	})
}

func refineLength(c Param2D, absErr, relErr float64, maxSteps int, t0, t1 float64) Estimate {
	return RefineLength(BoundedParam2D{c, t0, t1}, absErr, relErr, maxSteps)
}

// bisect splits [t0, t1] of c in half. A degenerate interval yields one
// piece.
func bisect(c Param2D, t0, t1 float64) []BoundedParam2D {
	if !(t0 < t1) {
		return []BoundedParam2D{{c, t0, t1}}
	}
	tm := 0.5 * (t0 + t1)
	return []BoundedParam2D{{c, t0, tm}, {c, tm, t1}}
}

// onePiece returns [t0, t1] as a single bounded curve, or nothing if the
// interval is empty.
func onePiece(c Param2D, t0, t1 float64) []BoundedParam2D {
	if t0 < t1 {
		return []BoundedParam2D{{c, t0, t1}}
	}
	return nil
}

func subset(c Param2D, t0, t1 float64) (BoundedParam2D, error) {
	if err := checkDomain(t0, t1); err != nil {
		return BoundedParam2D{}, err
	}
	return BoundedParam2D{c, t0, t1}, nil
}

func checkDomain(t0, t1 float64) error {
	if math.IsNaN(t0) || math.IsNaN(t1) || t0 > t1 {
		return errInvalidDomain(t0, t1)
	}
	return nil
}

// transformPoints maps pts through xf.
func transformPoints(xf Transform2D, pts []Point) ([]Point, error) {
	out := make([]Point, len(pts))
	for i, pt := range pts {
		var err error
		if out[i], err = xf.TransformPoint(pt); err != nil {
			return nil, err
		}
	}
	return out, nil
}
