package geom

import "github.com/pkg/errors"

// BezierToPoly converts the one-dimensional Bézier ordinates b (the x or y
// coordinates of up to four control points) to the equivalent polynomial in
// power basis.
//
// For a cubic, the result is
//
//	c0 = b0
//	c1 = 3(b1 − b0)
//	c2 = 3(b2 − 2b1 + b0)
//	c3 = b3 − b0 + 3(b1 − b2)
func BezierToPoly(b []float64) (Poly, error) {
	out := make(Poly, len(b))
	switch len(b) {
	case 0:
	case 1:
		out[0] = b[0]
	case 2:
		out[0] = b[0]
		out[1] = b[1] - b[0]
	case 3:
		out[0] = b[0]
		out[1] = 2 * (b[1] - b[0])
		out[2] = b[2] + b[0] - 2*b[1]
	case 4:
		out[0] = b[0]
		out[1] = 3 * (b[1] - b[0])
		out[2] = 3 * (b[2] - 2*b[1] + b[0])
		out[3] = b[3] - b[0] + 3*(b[1]-b[2])
	default:
		return nil, errors.Wrapf(ErrUnsupportedDegree, "Bézier with %d control points", len(b))
	}
	return out, nil
}

// PolyToBezier is the inverse of [BezierToPoly]. The polynomial's length, not
// its effective degree, determines the number of ordinates returned.
func PolyToBezier(p Poly) ([]float64, error) {
	out := make([]float64, len(p))
	switch len(p) {
	case 0:
	case 1:
		out[0] = p[0]
	case 2:
		out[0] = p[0]
		out[1] = p[0] + p[1]
	case 3:
		out[0] = p[0]
		out[1] = p[0] + p[1]/2
		out[2] = p[0] + p[1] + p[2]
	case 4:
		out[0] = p[0]
		out[1] = p[0] + p[1]/3
		out[2] = p[0] + (2.0/3.0)*p[1] + p[2]/3
		out[3] = p[0] + p[1] + p[2] + p[3]
	default:
		return nil, errors.Wrapf(ErrUnsupportedDegree, "polynomial %s has %d coefficients", p, len(p))
	}
	return out, nil
}

// bezierPolys returns the x and y polynomials of the Bézier curve with the
// given control points.
func bezierPolys(pts []Point) (x, y Poly, err error) {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, pt := range pts {
		xs[i], ys[i] = pt.X, pt.Y
	}
	if x, err = BezierToPoly(xs); err != nil {
		return nil, nil, err
	}
	if y, err = BezierToPoly(ys); err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

// controlPoints is the inverse of bezierPolys. x and y must have the same
// length.
func controlPoints(x, y Poly) ([]Point, error) {
	xs, err := PolyToBezier(x)
	if err != nil {
		return nil, err
	}
	ys, err := PolyToBezier(y)
	if err != nil {
		return nil, err
	}
	pts := make([]Point, len(xs))
	for i := range pts {
		pts[i] = Pt(xs[i], ys[i])
	}
	return pts, nil
}
