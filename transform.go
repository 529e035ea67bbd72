package geom

import (
	"fmt"
	"strings"
)

// Transform2D is a mapping of the plane, such as from principal data space to
// page space.
type Transform2D interface {
	// TransformPoint maps p. Transforms for which TransformNeverFails is false
	// may return an error matching [ErrUnsolvable] for some points.
	TransformPoint(p Point) (Point, error)
	// TransformSlope maps the direction d at p, that is, it multiplies d by
	// the transform's Jacobian at p.
	TransformSlope(p Point, d Vec2) (Vec2, error)
	// Inverse returns the inverse transform, or an error matching
	// [ErrNoninvertible].
	Inverse() (Transform2D, error)
	// IsAffine reports whether the transform maps lines to lines with
	// uniform scaling along each line.
	IsAffine() bool
	// TransformNeverFails reports whether TransformPoint and TransformSlope
	// always succeed.
	TransformNeverFails() bool
}

// Chain applies its transforms in order: the first element is applied first.
type Chain []Transform2D

var _ Transform2D = Chain(nil)

func (ch Chain) TransformPoint(p Point) (Point, error) {
	for _, xf := range ch {
		var err error
		if p, err = xf.TransformPoint(p); err != nil {
			return Point{}, err
		}
	}
	return p, nil
}

// TransformSlope applies each transform's Jacobian at the image of p under the
// transforms before it.
func (ch Chain) TransformSlope(p Point, d Vec2) (Vec2, error) {
	for _, xf := range ch {
		var err error
		if d, err = xf.TransformSlope(p, d); err != nil {
			return Vec2{}, err
		}
		if p, err = xf.TransformPoint(p); err != nil {
			return Vec2{}, err
		}
	}
	return d, nil
}

// Inverse inverts every member and reverses their order.
func (ch Chain) Inverse() (Transform2D, error) {
	out := make(Chain, len(ch))
	for i, xf := range ch {
		inv, err := xf.Inverse()
		if err != nil {
			return nil, err
		}
		out[len(ch)-1-i] = inv
	}
	return out, nil
}

func (ch Chain) IsAffine() bool {
	for _, xf := range ch {
		if !xf.IsAffine() {
			return false
		}
	}
	return true
}

func (ch Chain) TransformNeverFails() bool {
	for _, xf := range ch {
		if !xf.TransformNeverFails() {
			return false
		}
	}
	return true
}

// Affine returns the chain collapsed into a single affine transform. The
// second result is false if any member is not an [Affine], a
// [*TriangleTransform] or a chain of those.
func (ch Chain) Affine() (Affine, bool) {
	aff := Identity
	for _, xf := range ch {
		a, ok := asAffine(xf)
		if !ok {
			return Affine{}, false
		}
		aff = a.Mul(aff)
	}
	return aff, true
}

func (ch Chain) String() string {
	parts := make([]string, len(ch))
	for i, xf := range ch {
		parts[i] = fmt.Sprint(xf)
	}
	return "Chain[" + strings.Join(parts, " → ") + "]"
}
