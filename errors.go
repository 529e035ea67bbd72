package geom

import "github.com/pkg/errors"

// Errors reported by the package. Use [errors.Is] to test for them; returned
// errors usually wrap one of these with additional context.
var (
	// ErrUnsolvable reports that a point has no usable image or preimage under
	// a polygon transform. Callers are expected to recover, for example by
	// skipping the point.
	ErrUnsolvable = errors.New("transform has no solution at point")

	// ErrZeroSolutions is the [ErrUnsolvable] case in which the equation
	// defining the transform has no real root at all.
	ErrZeroSolutions = errors.Wrap(ErrUnsolvable, "zero solutions")

	// ErrNoninvertible reports a singular matrix or a degenerate polygon. It is
	// only returned when an inverse is requested or a transform is built.
	ErrNoninvertible = errors.New("transform is not invertible")

	// ErrFailedToConverge reports that an iterative algorithm ran out of steps
	// before reaching the requested tolerance. Results returned alongside it
	// are the best found so far and may be incomplete.
	ErrFailedToConverge = errors.New("failed to converge")

	// ErrUnsupportedDegree reports a polynomial or Bézier outside of degree
	// 0–3. It indicates a programming error in the caller.
	ErrUnsupportedDegree = errors.New("unsupported degree")

	// ErrInvalidDomain reports a parameter interval with t0 > t1 or NaN
	// bounds.
	ErrInvalidDomain = errors.New("invalid parameter domain")

	// ErrUnsupportedTransform reports a concatenation that would move a
	// rectangle side of a polygon transform off the axes, such as
	// concatenating a rotation onto a [RectToQuad]'s input rectangle.
	ErrUnsupportedTransform = errors.New("unsupported transform")
)

func errInvalidDomain(t0, t1 float64) error {
	return errors.Wrapf(ErrInvalidDomain, "[%g, %g]", t0, t1)
}

func errInvalidPointCount(n int) error {
	return errors.Wrapf(ErrUnsupportedDegree, "Bézier curves need 1 to 4 control points, got %d", n)
}
