package geom

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxDegree is the highest polynomial degree that [Poly.Solve] and the Bézier
// conversions support.
const MaxDegree = 3

// Poly is a polynomial in power basis. The coefficients [c0, c1, c2, ...]
// represent c0 + c1 t + c2 t² + ...
//
// Trailing zero coefficients are allowed and do not change the polynomial's
// effective degree.
type Poly []float64

// Eval evaluates the polynomial at t using Horner's scheme.
func (p Poly) Eval(t float64) float64 {
	var v float64
	for i := len(p) - 1; i >= 0; i-- {
		v = v*t + p[i]
	}
	return v
}

// EvalDerivative is equivalent to p.Derivative().Eval(t), without allocating.
func (p Poly) EvalDerivative(t float64) float64 {
	var v float64
	for i := len(p) - 1; i >= 1; i-- {
		v = v*t + p[i]*float64(i)
	}
	return v
}

// Derivative returns the derivative of p. The derivative of a constant is the
// empty polynomial.
func (p Poly) Derivative() Poly {
	if len(p) <= 1 {
		return Poly{}
	}
	out := make(Poly, len(p)-1)
	for i := range out {
		out[i] = p[i+1] * float64(i+1)
	}
	return out
}

// Degree returns the effective degree of p, ignoring trailing zero
// coefficients. The zero polynomial has degree -1.
func (p Poly) Degree() int {
	for d := len(p) - 1; d >= 0; d-- {
		if p[d] != 0 {
			return d
		}
	}
	return -1
}

// Add returns p + o.
func (p Poly) Add(o Poly) Poly {
	out := make(Poly, max(len(p), len(o)))
	copy(out, p)
	for i, c := range o {
		out[i] += c
	}
	return out
}

// Scale returns p multiplied by the scalar f.
func (p Poly) Scale(f float64) Poly {
	out := make(Poly, len(p))
	for i, c := range p {
		out[i] = c * f
	}
	return out
}

// Mul returns the product of p and o.
func (p Poly) Mul(o Poly) Poly {
	if len(p) == 0 || len(o) == 0 {
		return Poly{}
	}
	out := make(Poly, len(p)+len(o)-1)
	for i, a := range p {
		for j, b := range o {
			out[i+j] += a * b
		}
	}
	return out
}

// Integral returns the antiderivative of p whose constant term is zero.
func (p Poly) Integral() Poly {
	out := make(Poly, len(p)+1)
	for i, c := range p {
		out[i+1] = c / float64(i+1)
	}
	return out
}

// Integrate returns the definite integral of p over [t0, t1].
func (p Poly) Integrate(t0, t1 float64) float64 {
	in := p.Integral()
	return in.Eval(t1) - in.Eval(t0)
}

// Taylor returns the value of p and of each of its derivatives at t, in that
// order. The result has the same length as p.
func (p Poly) Taylor(t float64) []float64 {
	out := make([]float64, len(p))
	q := p
	for i := range out {
		out[i] = q.Eval(t)
		q = q.Derivative()
	}
	return out
}

// Compose returns the polynomial q(s) = p(a + b s).
func (p Poly) Compose(a, b float64) Poly {
	if len(p) == 0 {
		return Poly{}
	}
	lin := Poly{a, b}
	out := Poly{p[len(p)-1]}
	for i := len(p) - 2; i >= 0; i-- {
		out = out.Mul(lin)
		out[0] += p[i]
	}
	return out
}

// Solve returns the real roots of p in ascending order. Repeated roots are
// reported once per multiplicity when they are found exactly.
//
// Polynomials of effective degree 0 or less have no roots reported, not even
// when p is identically zero. Polynomials of effective degree greater than
// [MaxDegree] cause an error matching [ErrUnsupportedDegree].
func (p Poly) Solve() ([]float64, error) {
	switch d := p.Degree(); d {
	case -1, 0:
		return nil, nil
	case 1:
		return []float64{-p[0] / p[1]}, nil
	case 2:
		roots, n := SolveQuadratic(p[0], p[1], p[2])
		return roots[:n:n], nil
	case 3:
		roots, n := SolveCubic(p[0], p[1], p[2], p[3])
		out := roots[:n:n]
		slices.Sort(out)
		return out, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedDegree, "cannot solve %s of degree %d", p, d)
	}
}

// roots is Solve for polynomials that are known to be of degree 3 or less.
func (p Poly) roots() []float64 {
	ts, err := p.Solve()
	if err != nil {
		panic(err)
	}
	return ts
}

// Bounds returns the minimum and maximum value of p for t in [t0, t1].
//
// The result is exact (up to rounding) because it evaluates p at the interval
// ends and at every stationary point within the interval. An error matching
// [ErrUnsupportedDegree] is returned if the derivative of p cannot be solved.
func (p Poly) Bounds(t0, t1 float64) (lo, hi float64, err error) {
	v0 := p.Eval(t0)
	v1 := p.Eval(t1)
	lo, hi = min(v0, v1), max(v0, v1)
	zeros, err := p.Derivative().Solve()
	if err != nil {
		return 0, 0, err
	}
	for _, t := range zeros {
		if t0 <= t && t <= t1 {
			v := p.Eval(t)
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	return lo, hi, nil
}

// bounds is Bounds for polynomials that are known to be of degree 4 or less,
// whose derivatives are therefore solvable by roots.
func (p Poly) bounds(t0, t1 float64) (float64, float64) {
	lo, hi, err := p.Bounds(t0, t1)
	if err != nil {
		panic(err)
	}
	return lo, hi
}

func (p Poly) String() string {
	var sb strings.Builder
	printed := false
	for i := len(p) - 1; i >= 0; i-- {
		c := p[i]
		if c == 0 {
			continue
		}
		if printed {
			if c < 0 {
				sb.WriteString(" - ")
				c = -c
			} else {
				sb.WriteString(" + ")
			}
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		switch {
		case i > 1:
			sb.WriteString(" t^")
			sb.WriteString(strconv.Itoa(i))
		case i == 1:
			sb.WriteString(" t")
		}
		printed = true
	}
	if !printed {
		return "0"
	}
	return sb.String()
}

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// This function tries to be quite numerically robust. If the equation is nearly
// linear, it will return the root ignoring the quadratic term; the other root
// might be out of representable range. In the degenerate case where all
// coefficients are zero, so that all values of x satisfy the equation, a single
// 0.0 is returned. A double root is returned twice.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) || math.IsNaN(sc1) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math.IsInf(root, 0) && !math.IsNaN(root) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			// Degenerate case
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1, -0.5 * sc1}, 2
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if !math.IsInf(root2, 0) {
		// Sort just to be friendly and make results deterministic.
		if root2 > root1 {
			return [2]float64{root1, root2}, 2
		} else {
			return [2]float64{root2, root1}, 2
		}
	} else {
		return [2]float64{root1}, 1
	}
}

// SolveCubic finds real roots of cubic equations.
//
// The implementation is not (yet) fully robust, but it does handle the case
// where c3 is zero (in that case, solving the quadratic equation).
//
// See: https://momentsingraphics.de/CubicRoots.html
//
// That implementation is in turn based on Jim Blinn's "How to Solve a Cubic
// Equation", which is masterful.
//
// Returns values of x for which c0 + c1 x + c2 x² + c3 x³ = 0.0
//
// The second return value states how many roots were found. The roots are
// not sorted. Repeated roots are returned once per multiplicity when the
// discriminant comes out exactly zero; otherwise rounding splits or drops
// them.
func SolveCubic(c0, c1, c2, c3 float64) ([3]float64, int) {
	c3Recip := 1.0 / c3
	scaledC2 := c2 * (1.0 / 3.0 * c3Recip)
	scaledC1 := c1 * (1.0 / 3.0 * c3Recip)
	scaledC0 := c0 * c3Recip
	if math.IsInf(scaledC0, 0) || math.IsInf(scaledC1, 0) || math.IsInf(scaledC2, 0) ||
		math.IsNaN(scaledC0) || math.IsNaN(scaledC1) || math.IsNaN(scaledC2) {
		// cubic coefficient is zero or nearly so.
		roots, n := SolveQuadratic(c0, c1, c2)
		return [3]float64{roots[0], roots[1]}, n
	}
	c0, c1, c2 = scaledC0, scaledC1, scaledC2
	// (d0, d1, d2) is called "Delta" in article
	d0 := math.FMA(-c2, c2, c1)
	d1 := math.FMA(-c1, c2, c0)
	d2 := c2*c0 - c1*c1
	// d is called "Discriminant"
	d := 4.0*d0*d2 - d1*d1
	// de is called "Depressed.x", Depressed.y = d0
	de := math.FMA(-2.0*c2, d0, d1)
	if d < 0.0 {
		sq := math.Sqrt(-0.25 * d)
		r := -0.5 * de
		t1 := math.Cbrt(r+sq) + math.Cbrt(r-sq)
		return [3]float64{t1 - c2}, 1
	} else if d == 0.0 {
		// t1 is a double root, or a triple one if d0 is zero too.
		t1 := math.Copysign(math.Sqrt(-d0), de)
		return [3]float64{t1 - c2, t1 - c2, -2.0*t1 - c2}, 3
	} else {
		th := math.Atan2(math.Sqrt(d), -de) * (1.0 / 3.0)
		// (thCos, thSin) is called "CubicRoot"
		thSin, thCos := math.Sincos(th)
		// (r0, r1, r2) is called "Root"
		r0 := thCos
		ss3 := thSin * math.Sqrt(3.0)
		r1 := 0.5 * (-thCos + ss3)
		r2 := 0.5 * (-thCos - ss3)
		t := 2.0 * math.Sqrt(-d0)

		return [3]float64{
			math.FMA(t, r0, -c2),
			math.FMA(t, r1, -c2),
			math.FMA(t, r2, -c2),
		}, 3
	}
}
