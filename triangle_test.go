package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
)

func TestTriangleTransform(t *testing.T) {
	in := [3]Point{{0, 0}, {1, 0}, {0, 1}}
	out := [3]Point{{1, 1}, {3, 1}, {1, 4}}
	xf, err := NewTriangleTransform(in, out)
	if err != nil {
		t.Fatal(err)
	}
	approx := cmpopts.EquateApprox(0, 1e-12)
	mat, _ := xf.Affine()
	diff(t, Affine{2, 0, 0, 3, 1, 1}, mat, approx)
	for i := range in {
		got, err := xf.TransformPoint(in[i])
		if err != nil {
			t.Fatal(err)
		}
		assertNear(t, got, out[i], 1e-12)
	}
	diff(t, in[:], xf.InputVertices())
	diff(t, out[:], xf.OutputVertices())
	diff(t, Rect{0, 0, 1, 1}, xf.InputBounds())
	diff(t, Rect{1, 1, 3, 4}, xf.OutputBounds())
	if !xf.IsAffine() || !xf.TransformNeverFails() {
		t.Error("a triangle transform is affine and never fails")
	}

	inv, err := xf.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	back, err := inv.TransformPoint(Pt(2, 2.5))
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, back, Pt(0.5, 0.5), 1e-12)

	aff, ok := asAffine(xf)
	if !ok {
		t.Fatal("triangle transform did not reduce to an affine transform")
	}
	diff(t, mat, aff)
}

func TestTriangleDegenerate(t *testing.T) {
	good := [3]Point{{0, 0}, {1, 0}, {0, 1}}
	bad := [3]Point{{0, 0}, {1, 1}, {2, 2}}
	if _, err := NewTriangleTransform(bad, good); !errors.Is(err, ErrNoninvertible) {
		t.Errorf("got error %v, want %v", err, ErrNoninvertible)
	}
	if _, err := NewTriangleTransform(good, bad); !errors.Is(err, ErrNoninvertible) {
		t.Errorf("got error %v, want %v", err, ErrNoninvertible)
	}
}

func TestTriangleConcatenate(t *testing.T) {
	in := [3]Point{{0, 0}, {1, 0}, {0, 1}}
	out := [3]Point{{1, 1}, {3, 1}, {1, 4}}
	xf, err := NewTriangleTransform(in, out)
	if err != nil {
		t.Fatal(err)
	}

	if err := xf.Concatenate(Scale(2, 2)); err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{{0, 0}, {0.5, 0}, {0, 0.5}}, xf.InputVertices())
	got, _ := xf.TransformPoint(Pt(0.25, 0.25))
	assertNear(t, got, Pt(2, 2.5), 1e-12)

	if err := xf.PreConcatenate(Translate(Vec(-1, 0))); err != nil {
		t.Fatal(err)
	}
	got, _ = xf.TransformPoint(Pt(0.25, 0.25))
	assertNear(t, got, Pt(1, 2.5), 1e-12)

	// Failures leave the transform unchanged.
	before, _ := xf.Affine()
	if err := xf.Concatenate(Scale(0, 1)); !errors.Is(err, ErrNoninvertible) {
		t.Errorf("got error %v, want %v", err, ErrNoninvertible)
	}
	if err := xf.PreConcatenate(Scale(0, 1)); !errors.Is(err, ErrNoninvertible) {
		t.Errorf("got error %v, want %v", err, ErrNoninvertible)
	}
	after, _ := xf.Affine()
	diff(t, before, after)
}

func TestTriangleAffineIsCopy(t *testing.T) {
	in := [3]Point{{0, 0}, {1, 0}, {0, 1}}
	out := [3]Point{{1, 1}, {3, 1}, {1, 4}}
	xf, err := NewTriangleTransform(in, out)
	if err != nil {
		t.Fatal(err)
	}
	mat, _ := xf.Affine()
	mat.N4 = 100
	fresh, _ := xf.Affine()
	diff(t, Affine{2, 0, 0, 3, 1, 1}, fresh, cmpopts.EquateApprox(0, 1e-12))
	for i := range in {
		got, err := xf.TransformPoint(in[i])
		if err != nil {
			t.Fatal(err)
		}
		assertNear(t, got, out[i], 1e-12)
	}
	d, err := xf.TransformSlope(Pt(5, 5), Vec(1, 1))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Vec(2, 3), d, cmpopts.EquateApprox(0, 1e-12))
}
