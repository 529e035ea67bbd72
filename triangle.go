package geom

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// TriangleTransform is the affine transform that takes the vertices of one
// triangle to those of another.
type TriangleTransform struct {
	aff Affine
	in  [3]Point
	out [3]Point
}

// NewTriangleTransform returns the affine map with in[i] ↦ out[i]. It returns
// an error matching [ErrNoninvertible] if either triangle is degenerate.
func NewTriangleTransform(in, out [3]Point) (*TriangleTransform, error) {
	aff, err := solveTriangles(in, out)
	if err != nil {
		return nil, err
	}
	return &TriangleTransform{aff: aff, in: in, out: out}, nil
}

// solveTriangles solves
//
//	| x0 y0 1 |   | N0 N1 |   | x0' y0' |
//	| x1 y1 1 | · | N2 N3 | = | x1' y1' |
//	| x2 y2 1 |   | N4 N5 |   | x2' y2' |
func solveTriangles(in, out [3]Point) (Affine, error) {
	if err := checkTriangle(in); err != nil {
		return Affine{}, err
	}
	if err := checkTriangle(out); err != nil {
		return Affine{}, err
	}
	a := mat.NewDense(3, 3, nil)
	b := mat.NewDense(3, 2, nil)
	for i := range 3 {
		a.SetRow(i, []float64{in[i].X, in[i].Y, 1})
		b.SetRow(i, []float64{out[i].X, out[i].Y})
	}
	var x mat.Dense
	if err := x.Solve(a, b); err != nil {
		return Affine{}, errors.Wrapf(ErrNoninvertible, "triangle %v: %v", in, err)
	}
	return Affine{
		x.At(0, 0), x.At(0, 1),
		x.At(1, 0), x.At(1, 1),
		x.At(2, 0), x.At(2, 1),
	}, nil
}

func checkTriangle(tri [3]Point) error {
	d1 := tri[1].Sub(tri[0])
	d2 := tri[2].Sub(tri[0])
	area := d1.Cross(d2)
	if math.Abs(area) <= 1e-12*d1.Hypot()*d2.Hypot() || math.IsNaN(area) || math.IsInf(area, 0) {
		return errors.Wrapf(ErrNoninvertible, "triangle %v is degenerate", tri)
	}
	return nil
}

func (t *TriangleTransform) set(in, out [3]Point) error {
	aff, err := solveTriangles(in, out)
	if err != nil {
		return err
	}
	t.aff, t.in, t.out = aff, in, out
	return nil
}

// Affine returns the matrix of the transform. The second result is always
// true.
func (t *TriangleTransform) Affine() (Affine, bool) { return t.aff, true }

func (t *TriangleTransform) TransformPoint(p Point) (Point, error) { return t.aff.TransformPoint(p) }

func (t *TriangleTransform) TransformSlope(p Point, d Vec2) (Vec2, error) {
	return t.aff.TransformSlope(p, d)
}

func (t *TriangleTransform) IsAffine() bool            { return true }
func (t *TriangleTransform) TransformNeverFails() bool { return true }

// Inverse returns a new TriangleTransform with input and output exchanged.
func (t *TriangleTransform) Inverse() (Transform2D, error) {
	return NewTriangleTransform(t.out, t.in)
}

func (t *TriangleTransform) InputVertices() []Point  { return append([]Point(nil), t.in[:]...) }
func (t *TriangleTransform) OutputVertices() []Point { return append([]Point(nil), t.out[:]...) }
func (t *TriangleTransform) InputBounds() Rect       { return boundsOf(t.in[:]) }
func (t *TriangleTransform) OutputBounds() Rect      { return boundsOf(t.out[:]) }

func (t *TriangleTransform) Concatenate(other Transform2D) error {
	inv, err := other.Inverse()
	if err != nil {
		return err
	}
	in, err := mapTriangle(inv, t.in)
	if err != nil {
		return err
	}
	return t.set(in, t.out)
}

func (t *TriangleTransform) PreConcatenate(other Transform2D) error {
	out, err := mapTriangle(other, t.out)
	if err != nil {
		return err
	}
	return t.set(t.in, out)
}

func (t *TriangleTransform) String() string {
	return fmt.Sprintf("TriangleTransform[%v → %v]", t.in, t.out)
}

func mapTriangle(xf Transform2D, tri [3]Point) ([3]Point, error) {
	var out [3]Point
	for i, pt := range tri {
		var err error
		if out[i], err = xf.TransformPoint(pt); err != nil {
			return [3]Point{}, err
		}
	}
	return out, nil
}
