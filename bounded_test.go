package geom

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestBoundInvalidDomain(t *testing.T) {
	c := SegmentCurve{Pt(0, 0), Pt(1, 1)}
	for _, dom := range [][2]float64{{1, 0}, {math.NaN(), 1}, {0, math.NaN()}} {
		if _, err := Bound(c, dom[0], dom[1]); !errors.Is(err, ErrInvalidDomain) {
			t.Errorf("%v: got error %v, want %v", dom, err, ErrInvalidDomain)
		}
	}
	b, err := Bound(c, 0.5, 0.5)
	if err != nil {
		t.Fatalf("empty domain: %s", err)
	}
	diff(t, Exact(0), b.Length())
	if _, err := b.Subset(0.9, 0.1); !errors.Is(err, ErrInvalidDomain) {
		t.Errorf("got error %v, want %v", err, ErrInvalidDomain)
	}
}

func TestBoundedForwarding(t *testing.T) {
	c := arch(t)
	sub, err := c.Subset(0.25, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if sub.MinT() != 0.25 || sub.MaxT() != 0.5 {
		t.Fatalf("got domain [%g, %g]", sub.MinT(), sub.MaxT())
	}
	assertNear(t, sub.Start(), c.Location(0.25), 0)
	assertNear(t, sub.End(), Pt(2, 1.5), 1e-12)

	// Subsets of a subset rebind the original curve.
	wide, err := sub.Subset(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, wide.End(), c.End(), 0)

	// The area and length of adjacent pieces add up.
	halves := c.Subdivide()
	if got := halves[0].Area() + halves[1].Area(); math.Abs(got-c.Area()) > 1e-12 {
		t.Errorf("areas of the halves sum to %v, want %v", got, c.Area())
	}
	l := halves[0].RefineLength(1e-5, 0, 10000).Add(halves[1].RefineLength(1e-5, 0, 10000))
	ref := arcLength(c)
	if l.Lower > ref+1e-9 || l.Upper < ref-1e-9 {
		t.Errorf("summed length %s does not contain %v", l, ref)
	}

	d, ok := sub.DerivativeCurve()
	if !ok {
		t.Fatal("no derivative curve")
	}
	if d.MinT() != sub.MinT() || d.MaxT() != sub.MaxT() {
		t.Errorf("derivative curve has domain [%g, %g]", d.MinT(), d.MaxT())
	}

	if got, want := sub.String(), "BezierCurve[(0, 0), (1, 2), (3, 2), (4, 0)] on [0.25, 0.5]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
