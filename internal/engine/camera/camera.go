// Package camera provides the 2D scroll camera over the isometric map.
package camera

import (
	"github.com/sreejithr/openage/pkg/math"
)

// Camera tracks the world position of the viewport's top-left corner.
type Camera struct {
	pos    math.Vec2
	width  int
	height int
	speed  float32
}

// New creates a camera for the given viewport size. speed is the scroll
// speed in world pixels per second.
func New(width, height int, speed float32) *Camera {
	return &Camera{
		width:  width,
		height: height,
		speed:  speed,
	}
}

// Move scrolls the camera. dx and dy are direction components in -1..1;
// dt is the frame delta in seconds.
func (c *Camera) Move(dx, dy float32, dt float64) {
	c.pos = c.pos.Add(math.Vec2{X: dx, Y: dy}.Scale(c.speed * float32(dt)))
}

// SetPosition places the viewport's top-left corner at a world point.
func (c *Camera) SetPosition(pos math.Vec2) {
	c.pos = pos
}

// Position returns the world position of the viewport's top-left corner.
func (c *Camera) Position() math.Vec2 {
	return c.pos
}

// Resize updates the viewport size.
func (c *Camera) Resize(width, height int) {
	c.width = width
	c.height = height
}

// Size returns the viewport size.
func (c *Camera) Size() (int, int) {
	return c.width, c.height
}

// ViewProjection returns the matrix mapping world coordinates to clip
// space: a top-left-origin ortho projection behind the scroll offset.
func (c *Camera) ViewProjection() math.Mat4 {
	proj := math.Ortho(0, float32(c.width), float32(c.height), 0, -1, 1)
	view := math.Translate(-c.pos.X, -c.pos.Y, 0)
	return proj.Mul(view)
}

// ScreenToWorld converts a screen pixel to world coordinates.
func (c *Camera) ScreenToWorld(x, y int) math.Vec2 {
	return math.Vec2{X: float32(x), Y: float32(y)}.Add(c.pos)
}
