package geom

import (
	"math"
	"slices"
)

// polyCurve is a curve whose coordinates are polynomials in t of degree 3 or
// less. It carries the computations that segments and Béziers share.
type polyCurve struct {
	x Poly
	y Poly
}

func (pc polyCurve) location(t float64) Point {
	return Pt(pc.x.Eval(t), pc.y.Eval(t))
}

func (pc polyCurve) derivative(t float64) Vec2 {
	return Vec(pc.x.EvalDerivative(t), pc.y.EvalDerivative(t))
}

func (pc polyCurve) degree() int {
	return max(pc.x.Degree(), pc.y.Degree())
}

// bounds evaluates each coordinate at the ends of the interval and at the
// zeros of its derivative.
func (pc polyCurve) bounds(t0, t1 float64) Rect {
	x0, x1 := pc.x.bounds(t0, t1)
	y0, y1 := pc.y.bounds(t0, t1)
	return Rect{x0, y0, x1, y1}
}

func (pc polyCurve) linearBounds(xc, yc, t0, t1 float64) (lo, hi float64) {
	return pc.x.Scale(xc).Add(pc.y.Scale(yc)).bounds(t0, t1)
}

// intersections returns the parameters in [t0, t1] at which the curve meets
// the line through seg. If segment is set, only points between the ends of
// seg count.
func (pc polyCurve) intersections(seg Line, t0, t1 float64, segment bool) []float64 {
	x, y := pc.x, pc.y
	p0, p1 := seg.P0, seg.P1
	sdx := p1.X - p0.X
	sdy := p1.Y - p0.Y
	if sdx == 0 && sdy == 0 {
		// A zero-length segment only meets the curve by coincidence.
		return nil
	}
	if math.Abs(sdx) < math.Abs(sdy) {
		// Keep |slope| ≤ 1.
		x, y = y, x
		p0, p1 = p0.Swap(), p1.Swap()
		sdx, sdy = sdy, sdx
	}
	m := sdy / sdx
	b := p0.Y - m*p0.X
	// m x(t) − y(t) + b = 0
	f := x.Scale(m).Add(y.Scale(-1)).Add(Poly{b})
	minx, maxx := min(p0.X, p1.X), max(p0.X, p1.X)

	var out []float64
	for _, t := range f.roots() {
		if t < t0 || t > t1 {
			continue
		}
		if segment {
			if xt := x.Eval(t); xt < minx || xt > maxx {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// area returns the integral of y(t) x'(t) dt.
func (pc polyCurve) area(t0, t1 float64) float64 {
	return pc.y.Mul(pc.x.Derivative()).Integrate(t0, t1)
}

// length brackets the arc length. Between consecutive zeros of x' and y'
// both coordinates are monotonic, so the chord is a lower bound and the
// Manhattan distance an upper bound for each piece.
func (pc polyCurve) length(t0, t1 float64) Estimate {
	if !(t0 < t1) {
		return Exact(0)
	}
	if pc.degree() <= 1 {
		return Exact(pc.location(t0).Distance(pc.location(t1)))
	}
	ts := []float64{t0, t1}
	for _, d := range []Poly{pc.x.Derivative(), pc.y.Derivative()} {
		for _, t := range d.roots() {
			if t > t0 && t < t1 {
				ts = append(ts, t)
			}
		}
	}
	slices.Sort(ts)

	var lo, hi float64
	prev := pc.location(ts[0])
	for _, t := range ts[1:] {
		p := pc.location(t)
		lo += prev.Distance(p)
		hi += prev.ManhattanDistance(p)
		prev = p
	}
	return EstimateRange(lo, hi)
}

// nearest returns the point of [t0, t1] closest to p by solving
// (c(t) − p)·c'(t) = 0. The curve must have degree 2 or less.
func (pc polyCurve) nearest(p Point, t0, t1 float64) CurveDistance {
	dx := pc.x.Add(Poly{-p.X})
	dy := pc.y.Add(Poly{-p.Y})
	f := dx.Mul(pc.x.Derivative()).Add(dy.Mul(pc.y.Derivative()))

	best := pc.distanceAt(p, t0)
	try := func(t float64) {
		if d := pc.distanceAt(p, t); d.Distance < best.Distance {
			best = d
		}
	}
	try(t1)
	for _, t := range f.roots() {
		if t > t0 && t < t1 {
			try(t)
		}
	}
	return best
}

// nearestBracket returns a cheap estimate of the point of [t0, t1] closest to
// p, for curves of any degree. The candidate is the best of a few samples; no
// point of the curve is closer than the distance to the exact bounding box,
// nor closer than the projection of the curve onto the direction from p to
// the candidate allows.
func (pc polyCurve) nearestBracket(p Point, t0, t1 float64) CurveDistanceRange {
	best := pc.distanceAt(p, t0)
	for _, t := range [...]float64{0.5 * (t0 + t1), t1} {
		if d := pc.distanceAt(p, t); d.Distance < best.Distance {
			best = d
		}
	}
	if best.Distance == 0 {
		return exactDistance(best)
	}

	lower := pc.bounds(t0, t1).DistanceTo(p)
	u := best.Point.Sub(p).Normalize()
	lo, _ := pc.linearBounds(u.X, u.Y, t0, t1)
	lower = max(lower, lo-u.Dot(Vec2(p)))
	return CurveDistanceRange{
		CurveDistance: best,
		MinDistance:   min(lower, best.Distance),
	}
}

func (pc polyCurve) distanceAt(p Point, t float64) CurveDistance {
	pt := pc.location(t)
	return CurveDistance{T: t, Point: pt, Distance: pt.Distance(p)}
}

// controlPolygon returns the Bézier control points of the arc over [t0, t1].
func (pc polyCurve) controlPolygon(t0, t1 float64) []Point {
	pts, err := controlPoints(pc.x.Compose(t0, t1-t0), pc.y.Compose(t0, t1-t0))
	if err != nil {
		panic(err)
	}
	return pts
}

func polygonLength(pts []Point) float64 {
	var l float64
	for i := 1; i < len(pts); i++ {
		l += pts[i-1].Distance(pts[i])
	}
	return l
}
