package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestChain(t *testing.T) {
	ch := Chain{Scale(2, 1), Translate(Vec(1, 0))}
	got, err := ch.TransformPoint(Pt(1, 1))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(3, 1), got)

	aff, ok := ch.Affine()
	if !ok {
		t.Fatal("chain of affine transforms did not collapse")
	}
	diff(t, Translate(Vec(1, 0)).Mul(Scale(2, 1)), aff)

	inv, err := ch.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	back, err := inv.TransformPoint(got)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, back, Pt(1, 1), 1e-12)

	if !ch.IsAffine() || !ch.TransformNeverFails() {
		t.Error("chain of affine transforms should be affine and never fail")
	}
	if got, want := ch.String(), "Chain[Affine[2 0 0; 0 1 0] → Affine[1 0 1; 0 1 0]]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestChainNonAffine(t *testing.T) {
	quad := [4]Point{{0, 0}, {0, 1}, {3, 3}, {1, 0}}
	q2r, err := NewQuadToRect(quad, Rect{0, 0, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	ch := Chain{Translate(Vec(0.5, 0.5)), q2r}
	if ch.IsAffine() || ch.TransformNeverFails() {
		t.Error("chain with a general quadrilateral transform is neither affine nor total")
	}
	if _, ok := ch.Affine(); ok {
		t.Error("chain with a general quadrilateral transform collapsed to an affine transform")
	}

	// TransformSlope evaluates each member at the image of the point.
	p, d := Pt(0.2, 0.3), Vec(1, -0.5)
	got, err := ch.TransformSlope(p, d)
	if err != nil {
		t.Fatal(err)
	}
	want, err := q2r.TransformSlope(Pt(0.7, 0.8), d)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-12))
}
