package math

import "testing"

func approxEqual(a, b float32) bool {
	d := a - b
	return d > -1e-5 && d < 1e-5
}

func TestIdentityTransform(t *testing.T) {
	m := Identity()
	p := Vec2{X: 3, Y: -7}

	got := m.TransformPoint(p)
	if got != p {
		t.Errorf("identity moved %v to %v", p, got)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(10, -5, 0)

	got := m.TransformPoint(Vec2{X: 1, Y: 2})
	want := Vec2{X: 11, Y: -3}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 1)

	got := m.TransformPoint(Vec2{X: 4, Y: 5})
	want := Vec2{X: 8, Y: 15}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMulAppliesRightToLeft(t *testing.T) {
	// Translate then scale: scale * translate applies translate first
	m := Scale(2, 2, 1).Mul(Translate(1, 1, 0))

	got := m.TransformPoint(Vec2{X: 0, Y: 0})
	want := Vec2{X: 2, Y: 2}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestOrthoMapsViewportToClipSpace(t *testing.T) {
	// Screen-style ortho: top-left origin, y growing downward
	m := Ortho(0, 800, 600, 0, -1, 1)

	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{name: "top-left", in: Vec2{X: 0, Y: 0}, want: Vec2{X: -1, Y: 1}},
		{name: "bottom-right", in: Vec2{X: 800, Y: 600}, want: Vec2{X: 1, Y: -1}},
		{name: "center", in: Vec2{X: 400, Y: 300}, want: Vec2{X: 0, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.TransformPoint(tt.in)
			if !approxEqual(got.X, tt.want.X) || !approxEqual(got.Y, tt.want.Y) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestOrthoWithCameraTranslation(t *testing.T) {
	// A camera at world (100, 50) maps that point to the top-left corner
	m := Ortho(0, 800, 600, 0, -1, 1).Mul(Translate(-100, -50, 0))

	got := m.TransformPoint(Vec2{X: 100, Y: 50})
	if !approxEqual(got.X, -1) || !approxEqual(got.Y, 1) {
		t.Errorf("expected (-1, 1), got %v", got)
	}
}
