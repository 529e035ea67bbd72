package geom

import (
	"math"
	"testing"
)

func TestVec2(t *testing.T) {
	v := Vec(3, 4)
	if x, y := v.Splat(); x != 3 || y != 4 {
		t.Errorf("got (%g, %g)", x, y)
	}
	diff(t, Vec(-4, 3), v.Perp())
	if got := v.Perp().Dot(v); got != 0 {
		t.Errorf("perpendicular vector has dot product %g", got)
	}
	if got := Vec(0, 2).Angle(); math.Abs(got-math.Pi/2) > 1e-15 {
		t.Errorf("got angle %g, want π/2", got)
	}
	diff(t, Vec(2, 3), Vec(0, 2).Lerp(Vec(4, 4), 0.5))
	n := v.Normalize()
	if math.Abs(n.Hypot()-1) > 1e-15 {
		t.Errorf("normalized vector has length %g", n.Hypot())
	}
	if !Vec(0, 0).Normalize().IsNaN() {
		t.Error("normalizing the zero vector should produce NaN")
	}
	diff(t, Vec(-3, -4), v.Negate())
	diff(t, Vec(1.5, 2), v.Div(2))
	if got := v.Cross(Vec(1, 0)); got != -4 {
		t.Errorf("got cross product %g, want -4", got)
	}
	if got := v.String(); got != "⟨3, 4⟩" {
		t.Errorf("got %q", got)
	}
}
