package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(Skew(0, 0)), p, epsilon)
	assertNear(t, p.Transform(Skew(2, 4)), Pt(11, 16), epsilon)
	assertNear(t, p.Transform(FlipY), Pt(3, -4), epsilon)
	assertNear(t, p.Transform(RotateAbout(math.Pi, Pt(1, 1))), Pt(-1, -2), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)), epsilon)
		// Concatenate applies its argument first.
		assertNear(t, p.Transform(a2).Transform(a1), p.Transform(a1.Concatenate(a2)), epsilon)
		assertNear(t, p.Transform(a1).Transform(a2), p.Transform(a1.PreConcatenate(a2)), epsilon)
	}

	diff(t, Translate(Vec(1, 2)).Mul(Scale(3, 4)), Scale(3, 4).ThenTranslate(Vec(1, 2)))
	diff(t, Scale(3, 4).Mul(Translate(Vec(1, 2))), Scale(3, 4).PreTranslate(Vec(1, 2)))
	diff(t, Scale(3, 4).Mul(Rotate(1)), Rotate(1).ThenScale(3, 4))
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	aInv, err := a.Invert()
	if err != nil {
		t.Fatal(err)
	}

	for x := -5.0; x <= 5; x++ {
		for y := -5.0; y <= 5; y++ {
			p := Pt(x, y)
			assertNear(t, p.Transform(aInv).Transform(a), p, epsilon)
			assertNear(t, p.Transform(a).Transform(aInv), p, epsilon)
		}
	}

	inv, err := a.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, aInv, inv)
}

func TestAffineSingular(t *testing.T) {
	for _, a := range []Affine{
		Scale(0, 1),
		{1, 2, 2, 4, 0, 0},
		{math.Inf(1), 0, 0, 1, 0, 0},
		{math.NaN(), 0, 0, 1, 0, 0},
	} {
		if _, err := a.Invert(); !errors.Is(err, ErrNoninvertible) {
			t.Errorf("%s: got error %v, want %v", a, err, ErrNoninvertible)
		}
		if _, err := a.Inverse(); !errors.Is(err, ErrNoninvertible) {
			t.Errorf("%s: got error %v, want %v", a, err, ErrNoninvertible)
		}
	}
}

func TestAffineSlope(t *testing.T) {
	a := Affine{1, 2, 3, 4, 5, 6}
	got, err := a.TransformSlope(Pt(100, -7), Vec(1, 1))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Vec(4, 6), got)
	if !a.IsAffine() || !a.TransformNeverFails() {
		t.Error("an affine transform is affine and never fails")
	}
}

func TestAffineRectBoundingBox(t *testing.T) {
	got := Rotate(math.Pi/2).TransformRectBoundingBox(Rect{0, 0, 2, 1})
	diff(t, Rect{-1, 0, 0, 2}, got, cmpopts.EquateApprox(0, 1e-12))
}

func TestAffineCoefficients(t *testing.T) {
	a := NewAffine([6]float64{1, 2, 3, 4, 5, 6})
	diff(t, Affine{1, 2, 3, 4, 5, 6}, a)
	diff(t, [6]float64{1, 2, 3, 4, 5, 6}, a.Coefficients())
	diff(t, Vec(5, 6), a.Translation())
	if got, want := a.String(), "Affine[1 3 5; 2 4 6]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if a.IsInf() || a.IsNaN() {
		t.Error("finite coefficients")
	}
}
