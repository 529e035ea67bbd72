package geom

import (
	"fmt"
	"strings"
	"sync"
)

// BezierCurve is a Bézier curve of degree 0 to 3, defined by 1 to 4 control
// points. The curve passes through the first control point at t = 0 and the
// last one at t = 1; other values of t extrapolate.
//
// A BezierCurve is immutable and safe for concurrent use.
type BezierCurve struct {
	points []Point
	pc     polyCurve

	derivOnce sync.Once
	deriv     *BezierCurve
}

// NewBezierCurve returns the Bézier curve with the given control points. It
// returns an error matching [ErrUnsupportedDegree] unless there are 1 to 4
// points.
func NewBezierCurve(pts ...Point) (*BezierCurve, error) {
	if len(pts) < 1 || len(pts) > MaxDegree+1 {
		return nil, errInvalidPointCount(len(pts))
	}
	x, y, err := bezierPolys(pts)
	if err != nil {
		return nil, err
	}
	return &BezierCurve{
		points: append([]Point(nil), pts...),
		pc:     polyCurve{x, y},
	}, nil
}

func (*BezierCurve) param2D() {}

// ControlPoints returns a copy of the control points.
func (c *BezierCurve) ControlPoints() []Point {
	return append([]Point(nil), c.points...)
}

// XPoly returns x(t) in power basis.
func (c *BezierCurve) XPoly() Poly { return append(Poly(nil), c.pc.x...) }

// YPoly returns y(t) in power basis.
func (c *BezierCurve) YPoly() Poly { return append(Poly(nil), c.pc.y...) }

// Degree returns the number of control points minus one. The effective
// degree of the curve may be lower.
func (c *BezierCurve) Degree() int { return len(c.points) - 1 }

func (c *BezierCurve) Location(t float64) Point { return c.pc.location(t) }

// Derivative returns false for a curve with a single control point.
func (c *BezierCurve) Derivative(t float64) (Vec2, bool) {
	if len(c.points) == 1 {
		return Vec2{}, false
	}
	return c.pc.derivative(t), true
}

// DerivativeCurve returns the hodograph, a Bézier curve of one degree lower.
// It is computed once and cached.
func (c *BezierCurve) DerivativeCurve() (Param2D, bool) {
	c.derivOnce.Do(func() {
		dx, dy := c.pc.x.Derivative(), c.pc.y.Derivative()
		if len(dx) == 0 {
			return
		}
		pts, err := controlPoints(dx, dy)
		if err != nil {
			panic(err)
		}
		c.deriv = &BezierCurve{points: pts, pc: polyCurve{dx, dy}}
	})
	if c.deriv == nil {
		return nil, false
	}
	return c.deriv, true
}

func (c *BezierCurve) DistanceAt(p Point, t float64) CurveDistance {
	return c.pc.distanceAt(p, t)
}

// Distance is exact for curves of degree 2 or less. For cubics it returns a
// bracket; use [BezierCurve.RefineDistance] to narrow it.
func (c *BezierCurve) Distance(p Point, t0, t1 float64) CurveDistanceRange {
	if c.pc.degree() <= 2 {
		return exactDistance(c.pc.nearest(p, t0, t1))
	}
	return c.pc.nearestBracket(p, t0, t1)
}

func (c *BezierCurve) RefineDistance(p Point, maxError float64, maxSteps int, t0, t1 float64) CurveDistanceRange {
	return refineDistance(c, p, maxError, maxSteps, t0, t1)
}

// Transformed maps the control points through xf. The result is exact for
// affine transforms. Other transforms do not map Béziers to Béziers; the
// result then only agrees with the transformed curve at the endpoints.
func (c *BezierCurve) Transformed(xf Transform2D) (Param2D, error) {
	pts, err := transformPoints(xf, c.points)
	if err != nil {
		return nil, err
	}
	return NewBezierCurve(pts...)
}

func (c *BezierCurve) Bounds(t0, t1 float64) Rect { return c.pc.bounds(t0, t1) }

func (c *BezierCurve) LinearBounds(xc, yc, t0, t1 float64) (lo, hi float64) {
	return c.pc.linearBounds(xc, yc, t0, t1)
}

func (c *BezierCurve) SegIntersections(seg Line, t0, t1 float64) []float64 {
	return c.pc.intersections(seg, t0, t1, true)
}

func (c *BezierCurve) LineIntersections(seg Line, t0, t1 float64) []float64 {
	return c.pc.intersections(seg, t0, t1, false)
}

func (c *BezierCurve) Length(t0, t1 float64) Estimate { return c.pc.length(t0, t1) }

func (c *BezierCurve) RefineLength(absErr, relErr float64, maxSteps int, t0, t1 float64) Estimate {
	return refineLength(c, absErr, relErr, maxSteps, t0, t1)
}

func (c *BezierCurve) Area(t0, t1 float64) float64 { return c.pc.area(t0, t1) }

func (c *BezierCurve) Subset(t0, t1 float64) (BoundedParam2D, error) {
	return subset(c, t0, t1)
}

func (c *BezierCurve) Subdivide(t0, t1 float64) []BoundedParam2D {
	return bisect(c, t0, t1)
}

// StraightSegments returns [t0, t1] if the curve is effectively linear.
func (c *BezierCurve) StraightSegments(t0, t1 float64) []BoundedParam2D {
	if c.pc.degree() <= 1 {
		return onePiece(c, t0, t1)
	}
	return nil
}

func (c *BezierCurve) CurvedSegments(t0, t1 float64) []BoundedParam2D {
	if c.pc.degree() <= 1 {
		return nil
	}
	return onePiece(c, t0, t1)
}

// ControlPolygon returns the control points of the arc over [t0, t1].
func (c *BezierCurve) ControlPolygon(t0, t1 float64) []Point {
	return c.pc.controlPolygon(t0, t1)
}

func (c *BezierCurve) String() string {
	var sb strings.Builder
	sb.WriteString("BezierCurve[")
	for i, pt := range c.points {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, pt)
	}
	sb.WriteString("]")
	return sb.String()
}
