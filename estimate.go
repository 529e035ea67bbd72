package geom

import (
	"fmt"
	"math"
)

// Estimate is a numerical value together with guaranteed bounds. Lower ≤
// Value ≤ Upper always holds; an exact estimate has all three equal.
type Estimate struct {
	Lower float64
	Upper float64
	Value float64
}

// Exact returns the estimate with no error.
func Exact(v float64) Estimate {
	return Estimate{v, v, v}
}

// EstimateRange returns the estimate bracketed by lo and hi, whose value is
// their midpoint.
func EstimateRange(lo, hi float64) Estimate {
	return Estimate{
		Lower: lo,
		Upper: hi,
		Value: 0.5 * (lo + hi),
	}
}

// Add returns the estimate of the sum of e and o.
func (e Estimate) Add(o Estimate) Estimate {
	return Estimate{
		Lower: e.Lower + o.Lower,
		Upper: e.Upper + o.Upper,
		Value: e.Value + o.Value,
	}
}

// Error returns the width of the bracket.
func (e Estimate) Error() float64 {
	return e.Upper - e.Lower
}

// RelativeError returns Error relative to the magnitude of the value, or the
// absolute error if the value is zero.
func (e Estimate) RelativeError() float64 {
	if e.Value == 0 {
		return e.Error()
	}
	return e.Error() / math.Abs(e.Value)
}

func (e Estimate) IsExact() bool {
	return e.Lower == e.Upper
}

func (e Estimate) String() string {
	if e.IsExact() {
		return fmt.Sprintf("%g", e.Value)
	}
	return fmt.Sprintf("%g [%g, %g]", e.Value, e.Lower, e.Upper)
}

// CurveDistance is a point on a curve, its parameter, and its distance to
// some query point.
type CurveDistance struct {
	T        float64
	Point    Point
	Distance float64
}

func (d CurveDistance) String() string {
	return fmt.Sprintf("t=%g %s d=%g", d.T, d.Point, d.Distance)
}

// CurveDistanceRange is a [CurveDistance] that is only known to be the best
// candidate found so far. No point of the curve is closer to the query point
// than MinDistance, so the true minimum distance lies in [MinDistance,
// Distance].
type CurveDistanceRange struct {
	CurveDistance
	MinDistance float64
}

// IsExact reports whether the candidate is known to be the closest point.
func (d CurveDistanceRange) IsExact() bool {
	return d.MinDistance >= d.Distance
}

// Error returns Distance − MinDistance.
func (d CurveDistanceRange) Error() float64 {
	return d.Distance - d.MinDistance
}

func exactDistance(d CurveDistance) CurveDistanceRange {
	return CurveDistanceRange{CurveDistance: d, MinDistance: d.Distance}
}
