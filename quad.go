package geom

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// bilinear maps the unit square onto a quadrilateral:
//
//	f(u, v) = k + ku u + kv v + kuv uv
//
// with (0, 0), (0, 1), (1, 1) and (1, 0) going to the lower left, upper left,
// upper right and lower right vertices.
type bilinear struct {
	k, ku, kv, kuv Vec2
}

func newBilinear(quad [4]Point) bilinear {
	ll, ul, ur, lr := Vec2(quad[0]), Vec2(quad[1]), Vec2(quad[2]), Vec2(quad[3])
	return bilinear{
		k:   ll,
		ku:  lr.Sub(ll),
		kv:  ul.Sub(ll),
		kuv: ll.Sub(ul).Add(ur).Sub(lr),
	}
}

func (b bilinear) eval(u, v float64) Point {
	return Point(b.k.Add(b.ku.Mul(u)).Add(b.kv.Mul(v)).Add(b.kuv.Mul(u * v)))
}

// jacobian returns the partial derivatives of f with respect to u and v.
func (b bilinear) jacobian(u, v float64) (du, dv Vec2) {
	return b.ku.Add(b.kuv.Mul(v)), b.kv.Add(b.kuv.Mul(u))
}

func (b bilinear) isAffine() bool {
	return b.kuv == Vec2{}
}

// invert finds (u, v) with f(u, v) = p. Eliminating u leaves a quadratic in
// v; of its roots, the one whose preimage lies closest to the center of the
// square wins.
func (b bilinear) invert(p Point) (u, v float64, err error) {
	a0, a1, a2, a3 := b.k.X, b.ku.X, b.kv.X, b.kuv.X
	b0, b1, b2, b3 := b.k.Y, b.ku.Y, b.kv.Y, b.kuv.Y
	x, y := p.X-a0, p.Y-b0

	c2 := b3*a2 - b2*a3
	c1 := y*a3 - b2*a1 + b1*a2 - b3*x
	c0 := y*a1 - b1*x
	if c0 == 0 && c1 == 0 && c2 == 0 {
		return 0, 0, errors.Wrapf(ErrUnsolvable, "%s lies on a degenerate line", p)
	}
	vs, n := SolveQuadratic(c0, c1, c2)
	if n == 0 {
		return 0, 0, errors.Wrapf(ErrZeroSolutions, "no preimage of %s", p)
	}

	found := false
	best := math.Inf(1)
	for _, vi := range vs[:n] {
		ui, ok := b.solveU(x, y, vi)
		if !ok {
			continue
		}
		if d := (ui-0.5)*(ui-0.5) + (vi-0.5)*(vi-0.5); d < best {
			u, v, best, found = ui, vi, d, true
		}
	}
	if !found {
		return 0, 0, errors.Wrapf(ErrUnsolvable, "no preimage of %s", p)
	}
	return u, v, nil
}

// solveU recovers u from v using whichever coordinate is better conditioned.
func (b bilinear) solveU(x, y, v float64) (float64, bool) {
	dx := b.ku.X + b.kuv.X*v
	dy := b.ku.Y + b.kuv.Y*v
	if math.Abs(dx) >= math.Abs(dy) {
		if dx == 0 {
			return 0, false
		}
		return (x - b.kv.X*v) / dx, true
	}
	return (y - b.kv.Y*v) / dy, true
}

// checkQuad verifies that quad is a convex quadrilateral with its vertices in
// a consistent order, which is when the bilinear map is invertible on the
// unit square.
func checkQuad(quad [4]Point) error {
	for _, pt := range quad {
		if !pt.IsFinite() {
			return errors.Wrapf(ErrNoninvertible, "quadrilateral %v has a non-finite vertex", quad)
		}
	}
	r := boundsOf(quad[:])
	tiny := 1e-12 * (r.Width()*r.Width() + r.Height()*r.Height())
	b := newBilinear(quad)
	var sign float64
	for _, c := range unitSquare {
		du, dv := b.jacobian(c.X, c.Y)
		det := du.Cross(dv)
		if math.Abs(det) <= tiny || (sign != 0 && math.Signbit(det) != math.Signbit(sign)) {
			return errors.Wrapf(ErrNoninvertible, "quadrilateral %v is degenerate or not convex", quad)
		}
		sign = det
	}
	return nil
}

func checkRect(r Rect) error {
	w, h := r.Width(), r.Height()
	if w == 0 || h == 0 || r.IsInf() || r.IsNaN() {
		return errors.Wrapf(ErrNoninvertible, "rectangle %s is degenerate", r)
	}
	return nil
}

// rectQuad holds the state shared by [RectToQuad] and [QuadToRect]: a
// rectangle, a quadrilateral, and the bilinear map between them. Vertices
// correspond in the order lower left, upper left, upper right, lower right.
type rectQuad struct {
	rect Rect
	quad [4]Point
	bl   bilinear
}

func newRectQuad(r Rect, quad [4]Point) (rectQuad, error) {
	if err := checkRect(r); err != nil {
		return rectQuad{}, err
	}
	if err := checkQuad(quad); err != nil {
		return rectQuad{}, err
	}
	return rectQuad{rect: r, quad: quad, bl: newBilinear(quad)}, nil
}

func (rq *rectQuad) set(r Rect, quad [4]Point) error {
	n, err := newRectQuad(r, quad)
	if err != nil {
		return err
	}
	*rq = n
	return nil
}

// Rect returns the rectangle. Its corner (X0, Y0) corresponds to the
// quadrilateral's lower left vertex.
func (rq *rectQuad) Rect() Rect { return rq.rect }

// Vertices returns the quadrilateral's vertices in the order lower left,
// upper left, upper right, lower right.
func (rq *rectQuad) Vertices() [4]Point { return rq.quad }

// SetRect replaces the rectangle.
func (rq *rectQuad) SetRect(r Rect) error { return rq.set(r, rq.quad) }

// SetVertices replaces the quadrilateral.
func (rq *rectQuad) SetVertices(quad [4]Point) error { return rq.set(rq.rect, quad) }

// TransformQuad maps the quadrilateral's vertices through other.
func (rq *rectQuad) TransformQuad(other Transform2D) error {
	quad, err := mapQuad(other, rq.quad)
	if err != nil {
		return err
	}
	return rq.SetVertices(quad)
}

// TransformRect maps the rectangle through aff, which must not rotate or
// shear.
func (rq *rectQuad) TransformRect(aff Affine) error {
	if aff.N1 != 0 || aff.N2 != 0 {
		return errors.Wrapf(ErrUnsupportedTransform, "%s does not keep rectangles axis-aligned", aff)
	}
	r := rq.rect
	return rq.SetRect(Rect{
		X0: r.X0*aff.N0 + aff.N4,
		Y0: r.Y0*aff.N3 + aff.N5,
		X1: r.X1*aff.N0 + aff.N4,
		Y1: r.Y1*aff.N3 + aff.N5,
	})
}

// transformRectBy is TransformRect for any transform that reduces to an
// affine one.
func (rq *rectQuad) transformRectBy(other Transform2D) error {
	aff, ok := asAffine(other)
	if !ok {
		return errors.Wrapf(ErrUnsupportedTransform, "%v is not affine", other)
	}
	return rq.TransformRect(aff)
}

func (rq *rectQuad) unit(p Point) (u, v float64) {
	return (p.X - rq.rect.X0) / rq.rect.Width(), (p.Y - rq.rect.Y0) / rq.rect.Height()
}

func (rq *rectQuad) fromUnit(u, v float64) Point {
	return Pt(rq.rect.X0+u*rq.rect.Width(), rq.rect.Y0+v*rq.rect.Height())
}

func (rq *rectQuad) rectVertices() []Point {
	vs := rq.rect.Vertices()
	return vs[:]
}

func (rq *rectQuad) quadVertices() []Point {
	return append([]Point(nil), rq.quad[:]...)
}

// squareToRect maps the unit square onto the rectangle.
func (rq *rectQuad) squareToRect() Affine {
	return Affine{rq.rect.Width(), 0, 0, rq.rect.Height(), rq.rect.X0, rq.rect.Y0}
}

// RectToQuad maps a rectangle onto a quadrilateral by bilinear
// interpolation. The forward direction never fails; the inverse is a
// [QuadToRect].
type RectToQuad struct {
	rectQuad
}

// NewRectToQuad returns the transform that takes r's corners (X0, Y0),
// (X0, Y1), (X1, Y1) and (X1, Y0) to quad's vertices in order. It returns an
// error matching [ErrNoninvertible] if r has zero area or quad is degenerate
// or not convex.
func NewRectToQuad(r Rect, quad [4]Point) (*RectToQuad, error) {
	rq, err := newRectQuad(r, quad)
	if err != nil {
		return nil, err
	}
	return &RectToQuad{rq}, nil
}

func (t *RectToQuad) TransformPoint(p Point) (Point, error) {
	return t.bl.eval(t.unit(p)), nil
}

func (t *RectToQuad) TransformSlope(p Point, d Vec2) (Vec2, error) {
	du, dv := t.bl.jacobian(t.unit(p))
	return du.Mul(d.X / t.rect.Width()).Add(dv.Mul(d.Y / t.rect.Height())), nil
}

// Inverse returns a new [QuadToRect] with the same rectangle and
// quadrilateral.
func (t *RectToQuad) Inverse() (Transform2D, error) {
	return &QuadToRect{t.rectQuad}, nil
}

// IsAffine reports whether the quadrilateral is a parallelogram.
func (t *RectToQuad) IsAffine() bool { return t.bl.isAffine() }

func (t *RectToQuad) TransformNeverFails() bool { return true }

func (t *RectToQuad) InputVertices() []Point  { return t.rectVertices() }
func (t *RectToQuad) OutputVertices() []Point { return t.quadVertices() }
func (t *RectToQuad) InputBounds() Rect       { return t.rect.Abs() }
func (t *RectToQuad) OutputBounds() Rect      { return boundsOf(t.quad[:]) }

// Concatenate requires other to be affine without rotation or shear.
func (t *RectToQuad) Concatenate(other Transform2D) error {
	inv, err := other.Inverse()
	if err != nil {
		return err
	}
	return t.transformRectBy(inv)
}

func (t *RectToQuad) PreConcatenate(other Transform2D) error {
	return t.TransformQuad(other)
}

// SquareToDomain maps the unit square onto the rectangle.
func (t *RectToQuad) SquareToDomain() (Transform2D, error) {
	return t.squareToRect(), nil
}

func (t *RectToQuad) String() string {
	return fmt.Sprintf("RectToQuad[%s → %v]", t.rect, t.quad)
}

// QuadToRect maps a quadrilateral onto a rectangle; it is the inverse of a
// [RectToQuad]. Mapping a point requires solving a quadratic equation, which
// fails with an error matching [ErrUnsolvable] for some points far outside
// the quadrilateral.
type QuadToRect struct {
	rectQuad
}

// NewQuadToRect returns the transform that takes quad's vertices to r's
// corners (X0, Y0), (X0, Y1), (X1, Y1) and (X1, Y0) in order.
func NewQuadToRect(quad [4]Point, r Rect) (*QuadToRect, error) {
	rq, err := newRectQuad(r, quad)
	if err != nil {
		return nil, err
	}
	return &QuadToRect{rq}, nil
}

func (t *QuadToRect) TransformPoint(p Point) (Point, error) {
	u, v, err := t.bl.invert(p)
	if err != nil {
		return Point{}, err
	}
	return t.fromUnit(u, v), nil
}

func (t *QuadToRect) TransformSlope(p Point, d Vec2) (Vec2, error) {
	u, v, err := t.bl.invert(p)
	if err != nil {
		return Vec2{}, err
	}
	du, dv := t.bl.jacobian(u, v)
	det := du.Cross(dv)
	if det == 0 {
		return Vec2{}, errors.Wrapf(ErrUnsolvable, "singular Jacobian at %s", p)
	}
	// Solve a du + b dv = d.
	a := d.Cross(dv) / det
	b := du.Cross(d) / det
	return Vec(a*t.rect.Width(), b*t.rect.Height()), nil
}

// Inverse returns a new [RectToQuad] with the same rectangle and
// quadrilateral.
func (t *QuadToRect) Inverse() (Transform2D, error) {
	return &RectToQuad{t.rectQuad}, nil
}

// IsAffine reports whether the quadrilateral is a parallelogram.
func (t *QuadToRect) IsAffine() bool { return t.bl.isAffine() }

// TransformNeverFails reports whether the quadrilateral is a parallelogram,
// in which case the inverse map is linear.
func (t *QuadToRect) TransformNeverFails() bool { return t.bl.isAffine() }

func (t *QuadToRect) InputVertices() []Point  { return t.quadVertices() }
func (t *QuadToRect) OutputVertices() []Point { return t.rectVertices() }
func (t *QuadToRect) InputBounds() Rect       { return boundsOf(t.quad[:]) }
func (t *QuadToRect) OutputBounds() Rect      { return t.rect.Abs() }

func (t *QuadToRect) Concatenate(other Transform2D) error {
	inv, err := other.Inverse()
	if err != nil {
		return err
	}
	return t.TransformQuad(inv)
}

// PreConcatenate requires other to be affine without rotation or shear.
func (t *QuadToRect) PreConcatenate(other Transform2D) error {
	return t.transformRectBy(other)
}

// SquareToDomain maps the unit square onto the quadrilateral.
func (t *QuadToRect) SquareToDomain() (Transform2D, error) {
	return NewRectToQuad(Rect{0, 0, 1, 1}, t.quad)
}

func (t *QuadToRect) String() string {
	return fmt.Sprintf("QuadToRect[%v → %s]", t.quad, t.rect)
}

// QuadToQuad maps one convex quadrilateral onto another by way of the unit
// square: a [QuadToRect] takes the input to the square and a [RectToQuad]
// takes the square to the output. Inside the input quadrilateral this is
// well behaved; far outside it, points may have no image.
type QuadToQuad struct {
	q2r *QuadToRect
	r2q *RectToQuad
}

// NewQuadToQuad returns the transform taking in's vertices to out's.
func NewQuadToQuad(in, out [4]Point) (*QuadToQuad, error) {
	unit := Rect{0, 0, 1, 1}
	q2r, err := NewQuadToRect(in, unit)
	if err != nil {
		return nil, err
	}
	r2q, err := NewRectToQuad(unit, out)
	if err != nil {
		return nil, err
	}
	return &QuadToQuad{q2r, r2q}, nil
}

func (t *QuadToQuad) SetInputVertices(quad [4]Point) error {
	return t.q2r.SetVertices(quad)
}

func (t *QuadToQuad) SetOutputVertices(quad [4]Point) error {
	return t.r2q.SetVertices(quad)
}

func (t *QuadToQuad) TransformPoint(p Point) (Point, error) {
	p, err := t.q2r.TransformPoint(p)
	if err != nil {
		return Point{}, err
	}
	return t.r2q.TransformPoint(p)
}

func (t *QuadToQuad) TransformSlope(p Point, d Vec2) (Vec2, error) {
	return Chain{t.q2r, t.r2q}.TransformSlope(p, d)
}

// Inverse returns a new QuadToQuad with input and output exchanged.
func (t *QuadToQuad) Inverse() (Transform2D, error) {
	return NewQuadToQuad(t.r2q.quad, t.q2r.quad)
}

func (t *QuadToQuad) IsAffine() bool {
	return t.q2r.IsAffine() && t.r2q.IsAffine()
}

func (t *QuadToQuad) TransformNeverFails() bool {
	return t.q2r.TransformNeverFails()
}

func (t *QuadToQuad) InputVertices() []Point  { return t.q2r.InputVertices() }
func (t *QuadToQuad) OutputVertices() []Point { return t.r2q.OutputVertices() }
func (t *QuadToQuad) InputBounds() Rect       { return t.q2r.InputBounds() }
func (t *QuadToQuad) OutputBounds() Rect      { return t.r2q.OutputBounds() }

func (t *QuadToQuad) Concatenate(other Transform2D) error {
	return t.q2r.Concatenate(other)
}

func (t *QuadToQuad) PreConcatenate(other Transform2D) error {
	return t.r2q.PreConcatenate(other)
}

// SquareToDomain maps the unit square onto the input quadrilateral.
func (t *QuadToQuad) SquareToDomain() (Transform2D, error) {
	return t.q2r.SquareToDomain()
}

func (t *QuadToQuad) String() string {
	return fmt.Sprintf("QuadToQuad[%v → %v]", t.q2r.quad, t.r2q.quad)
}
