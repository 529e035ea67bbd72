package geom

import (
	"fmt"
	"math"
	"slices"

	"github.com/pkg/errors"
)

// Intersection is a point where two curves meet, with the parameter of that
// point on each curve.
type Intersection struct {
	TA    float64
	TB    float64
	Point Point
}

func (x Intersection) String() string {
	return fmt.Sprintf("%s (tA=%g, tB=%g)", x.Point, x.TA, x.TB)
}

type curvePair struct {
	a, b BoundedParam2D
}

// Intersect finds the points where a and b meet.
//
// Pairs of sub-curves whose bounding boxes overlap are subdivided until each
// sub-curve lies within tol.MaxError of its chord; the chords are then
// intersected. Results closer than twice tol.MaxError to each other are
// merged, and the remainder is sorted by TA.
//
// If more than tol.MaxSteps pairs need subdividing, Intersect returns the
// intersections found so far along with an error matching
// [ErrFailedToConverge]. Curves that overlap along a stretch always exhaust
// the budget.
func Intersect(a, b BoundedParam2D, tol Tolerance) ([]Intersection, error) {
	logger := tol.logger()
	eps := tol.MaxError

	var found []Intersection
	stack := []curvePair{{a, b}}
	steps := 0
	for len(stack) > 0 {
		pr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !pr.a.Bounds().Inflate(eps, eps).Overlaps(pr.b.Bounds()) {
			continue
		}
		flatA := isFlat(pr.a, eps)
		flatB := isFlat(pr.b, eps)
		if flatA && flatB {
			if x, ok := chordIntersection(pr.a, pr.b, eps); ok {
				if logger.IsTrace() {
					logger.Trace("intersection found", "ta", x.TA, "tb", x.TB, "point", x.Point)
				}
				found = append(found, x)
			}
			continue
		}

		if steps >= tol.MaxSteps {
			stack = append(stack, pr)
			out := mergeIntersections(found, eps)
			logger.Debug("intersection search ran out of steps",
				"steps", steps,
				"found", len(out),
				"pending", len(stack))
			return out, errors.Wrapf(ErrFailedToConverge,
				"intersecting %s and %s: %d pairs pending after %d steps", a, b, len(stack), steps)
		}
		steps++
		if logger.IsTrace() {
			logger.Trace("intersection step", "step", steps,
				"a", fmt.Sprintf("[%g, %g]", pr.a.MinT(), pr.a.MaxT()),
				"b", fmt.Sprintf("[%g, %g]", pr.b.MinT(), pr.b.MaxT()))
		}

		as := []BoundedParam2D{pr.a}
		if !flatA {
			as = pr.a.Subdivide()
		}
		bs := []BoundedParam2D{pr.b}
		if !flatB {
			bs = pr.b.Subdivide()
		}
		for _, sa := range as {
			for _, sb := range bs {
				stack = append(stack, curvePair{sa, sb})
			}
		}
	}

	out := mergeIntersections(found, eps)
	logger.Debug("intersection search finished", "steps", steps, "found", len(out))
	return out, nil
}

// isFlat reports whether c stays within eps of its chord, both across the
// chord and along it.
func isFlat(c BoundedParam2D, eps float64) bool {
	s, e := c.Start(), c.End()
	d := e.Sub(s)
	l := d.Hypot()
	if l == 0 {
		r := c.Bounds()
		return math.Hypot(r.Width(), r.Height()) <= eps
	}
	u := d.Div(l)
	n := u.Perp()

	lo, hi := c.LinearBounds(n.X, n.Y)
	base := n.Dot(Vec2(s))
	if hi-base > eps || base-lo > eps {
		return false
	}
	lo, hi = c.LinearBounds(u.X, u.Y)
	base = u.Dot(Vec2(s))
	return lo >= base-eps && hi <= base+l+eps
}

// chordIntersection intersects the chords of a and b, allowing eps of slack
// at the chord ends. Collinear overlapping chords meet at the middle of the
// overlap.
func chordIntersection(a, b BoundedParam2D, eps float64) (Intersection, bool) {
	la := Line{a.Start(), a.End()}
	lb := Line{b.Start(), b.End()}
	at := func(s float64) float64 { return a.MinT() + s*(a.MaxT()-a.MinT()) }
	bt := func(u float64) float64 { return b.MinT() + u*(b.MaxT()-b.MinT()) }

	switch {
	case la.IsDegenerate() && lb.IsDegenerate():
		if la.P0.Distance(lb.P0) > eps {
			return Intersection{}, false
		}
		return Intersection{at(0.5), bt(0.5), la.P0.Midpoint(lb.P0)}, true
	case la.IsDegenerate():
		d2, u := lb.Nearest(la.P0)
		if math.Sqrt(d2) > eps {
			return Intersection{}, false
		}
		return Intersection{at(0.5), bt(u), la.P0}, true
	case lb.IsDegenerate():
		d2, s := la.Nearest(lb.P0)
		if math.Sqrt(d2) > eps {
			return Intersection{}, false
		}
		return Intersection{at(s), bt(0.5), lb.P0}, true
	}

	d1 := la.P1.Sub(la.P0)
	d2 := lb.P1.Sub(lb.P0)
	l1, l2 := d1.Hypot(), d2.Hypot()
	w := lb.P0.Sub(la.P0)
	den := d1.Cross(d2)
	if math.Abs(den) <= 1e-12*l1*l2 {
		if la.LineDistance(lb.P0) > eps {
			return Intersection{}, false
		}
		// Collinear: project b's chord onto a's.
		s0 := d1.Dot(w) / (l1 * l1)
		s1 := d1.Dot(lb.P1.Sub(la.P0)) / (l1 * l1)
		lo := max(0, min(s0, s1))
		hi := min(1, max(s0, s1))
		if lo > hi+eps/l1 {
			return Intersection{}, false
		}
		s := min(max(0.5*(lo+hi), 0), 1)
		pt := la.Eval(s)
		_, u := lb.Nearest(pt)
		return Intersection{at(s), bt(u), pt}, true
	}

	s := w.Cross(d2) / den
	u := w.Cross(d1) / den
	ea, eb := eps/l1, eps/l2
	if s < -ea || s > 1+ea || u < -eb || u > 1+eb {
		return Intersection{}, false
	}
	s = min(max(s, 0), 1)
	u = min(max(u, 0), 1)
	return Intersection{at(s), bt(u), la.Eval(s)}, true
}

func mergeIntersections(xs []Intersection, eps float64) []Intersection {
	slices.SortFunc(xs, func(x, y Intersection) int {
		switch {
		case x.TA < y.TA:
			return -1
		case x.TA > y.TA:
			return 1
		default:
			return 0
		}
	})
	var out []Intersection
	for _, x := range xs {
		dup := false
		for _, y := range out {
			if x.Point.Distance(y.Point) <= 2*eps {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, x)
		}
	}
	return out
}
