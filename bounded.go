package geom

import (
	"fmt"
)

// BoundedParam2D is a [Param2D] restricted to the domain [MinT, MaxT]. Its
// methods forward to the underlying curve with that domain.
//
// The zero value is not usable; build values with [Bound], [NewBezier] or
// [Param2D.Subset].
type BoundedParam2D struct {
	curve Param2D
	t0    float64
	t1    float64
}

// Bound restricts c to [t0, t1]. It returns an error matching
// [ErrInvalidDomain] if t0 > t1 or either bound is NaN.
func Bound(c Param2D, t0, t1 float64) (BoundedParam2D, error) {
	return subset(c, t0, t1)
}

// Curve returns the unbounded curve.
func (b BoundedParam2D) Curve() Param2D { return b.curve }

func (b BoundedParam2D) MinT() float64 { return b.t0 }
func (b BoundedParam2D) MaxT() float64 { return b.t1 }

// Start returns the point at MinT.
func (b BoundedParam2D) Start() Point { return b.curve.Location(b.t0) }

// End returns the point at MaxT.
func (b BoundedParam2D) End() Point { return b.curve.Location(b.t1) }

func (b BoundedParam2D) Location(t float64) Point { return b.curve.Location(t) }

func (b BoundedParam2D) Derivative(t float64) (Vec2, bool) { return b.curve.Derivative(t) }

// DerivativeCurve returns the derivative of the curve over the same domain.
func (b BoundedParam2D) DerivativeCurve() (BoundedParam2D, bool) {
	d, ok := b.curve.DerivativeCurve()
	if !ok {
		return BoundedParam2D{}, false
	}
	return BoundedParam2D{d, b.t0, b.t1}, true
}

func (b BoundedParam2D) DistanceAt(p Point, t float64) CurveDistance {
	return b.curve.DistanceAt(p, t)
}

func (b BoundedParam2D) Distance(p Point) CurveDistanceRange {
	return b.curve.Distance(p, b.t0, b.t1)
}

func (b BoundedParam2D) RefineDistance(p Point, maxError float64, maxSteps int) CurveDistanceRange {
	return b.curve.RefineDistance(p, maxError, maxSteps, b.t0, b.t1)
}

func (b BoundedParam2D) Transformed(xf Transform2D) (BoundedParam2D, error) {
	c, err := b.curve.Transformed(xf)
	if err != nil {
		return BoundedParam2D{}, err
	}
	return BoundedParam2D{c, b.t0, b.t1}, nil
}

func (b BoundedParam2D) Bounds() Rect { return b.curve.Bounds(b.t0, b.t1) }

func (b BoundedParam2D) LinearBounds(xc, yc float64) (lo, hi float64) {
	return b.curve.LinearBounds(xc, yc, b.t0, b.t1)
}

func (b BoundedParam2D) SegIntersections(seg Line) []float64 {
	return b.curve.SegIntersections(seg, b.t0, b.t1)
}

func (b BoundedParam2D) LineIntersections(seg Line) []float64 {
	return b.curve.LineIntersections(seg, b.t0, b.t1)
}

func (b BoundedParam2D) Length() Estimate { return b.curve.Length(b.t0, b.t1) }

func (b BoundedParam2D) RefineLength(absErr, relErr float64, maxSteps int) Estimate {
	return b.curve.RefineLength(absErr, relErr, maxSteps, b.t0, b.t1)
}

func (b BoundedParam2D) Area() float64 { return b.curve.Area(b.t0, b.t1) }

// Subset rebinds the underlying curve to [t0, t1]. The new domain need not
// lie within the current one.
func (b BoundedParam2D) Subset(t0, t1 float64) (BoundedParam2D, error) {
	return b.curve.Subset(t0, t1)
}

func (b BoundedParam2D) Subdivide() []BoundedParam2D { return b.curve.Subdivide(b.t0, b.t1) }

func (b BoundedParam2D) StraightSegments() []BoundedParam2D {
	return b.curve.StraightSegments(b.t0, b.t1)
}

func (b BoundedParam2D) CurvedSegments() []BoundedParam2D {
	return b.curve.CurvedSegments(b.t0, b.t1)
}

func (b BoundedParam2D) String() string {
	return fmt.Sprintf("%s on [%g, %g]", b.curve, b.t0, b.t1)
}
