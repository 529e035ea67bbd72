package geom

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func mustBezier(t *testing.T, pts ...Point) BoundedParam2D {
	t.Helper()
	c, err := NewBezier(pts...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// arch is a symmetric cubic with y(t) = 6t(1 − t), peaking at (2, 1.5).
func arch(t *testing.T) BoundedParam2D {
	return mustBezier(t, Pt(0, 0), Pt(1, 2), Pt(3, 2), Pt(4, 0))
}

func randomPoints(r *rand.Rand, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Pt(r.Float64()*20-10, r.Float64()*20-10)
	}
	return pts
}
