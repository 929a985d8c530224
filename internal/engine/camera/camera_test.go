package camera

import (
	"testing"

	"github.com/sreejithr/openage/pkg/math"
)

func TestMove(t *testing.T) {
	c := New(800, 600, 100)

	c.Move(1, 0, 0.5)
	if got := c.Position(); got != (math.Vec2{X: 50, Y: 0}) {
		t.Errorf("expected (50, 0), got %v", got)
	}

	c.Move(0, -1, 0.5)
	if got := c.Position(); got != (math.Vec2{X: 50, Y: -50}) {
		t.Errorf("expected (50, -50), got %v", got)
	}
}

func TestScreenToWorld(t *testing.T) {
	c := New(800, 600, 100)
	c.SetPosition(math.Vec2{X: 30, Y: 40})

	got := c.ScreenToWorld(10, 20)
	if got != (math.Vec2{X: 40, Y: 60}) {
		t.Errorf("expected (40, 60), got %v", got)
	}
}

func TestViewProjection(t *testing.T) {
	c := New(800, 600, 100)
	c.SetPosition(math.Vec2{X: 100, Y: 50})

	vp := c.ViewProjection()

	// The camera position maps to the top-left clip corner
	got := vp.TransformPoint(math.Vec2{X: 100, Y: 50})
	if got.X < -1.001 || got.X > -0.999 || got.Y < 0.999 || got.Y > 1.001 {
		t.Errorf("expected clip (-1, 1), got %v", got)
	}

	// The opposite viewport corner maps to the bottom-right clip corner
	got = vp.TransformPoint(math.Vec2{X: 900, Y: 650})
	if got.X < 0.999 || got.X > 1.001 || got.Y < -1.001 || got.Y > -0.999 {
		t.Errorf("expected clip (1, -1), got %v", got)
	}
}
