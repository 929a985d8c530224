package render

import (
	stdmath "math"

	"github.com/sreejithr/openage/internal/engine/terrain"
	"github.com/sreejithr/openage/pkg/math"
)

// Tile bounding quad size in world pixels. The diamond is inscribed in
// the quad; the texture's transparent corners carve out the shape.
const (
	TileWidth  = 96
	TileHeight = 48
)

// TileCenter returns the world position of the tile's diamond center.
// The ne axis runs up-right on screen, the se axis down-right.
func TileCenter(pos terrain.TilePos) math.Vec2 {
	return math.Vec2{
		X: float32(pos.NE+pos.SE) * (TileWidth / 2),
		Y: float32(pos.SE-pos.NE) * (TileHeight / 2),
	}
}

// TileTopLeft returns the world position of the top-left corner of the
// tile's bounding quad.
func TileTopLeft(pos terrain.TilePos) math.Vec2 {
	c := TileCenter(pos)
	return math.Vec2{X: c.X - TileWidth/2, Y: c.Y - TileHeight/2}
}

// WorldToTile returns the tile whose diamond contains the world point.
func WorldToTile(p math.Vec2) terrain.TilePos {
	u := float64(p.X) / TileWidth
	v := float64(p.Y) / TileHeight
	return terrain.TilePos{
		NE: int(stdmath.Floor(u - v + 0.5)),
		SE: int(stdmath.Floor(u + v + 0.5)),
	}
}
