package render

import (
	"testing"

	"github.com/sreejithr/openage/internal/engine/terrain"
	"github.com/sreejithr/openage/pkg/math"
)

func TestTileCenter(t *testing.T) {
	tests := []struct {
		pos  terrain.TilePos
		want math.Vec2
	}{
		{pos: terrain.TilePos{NE: 0, SE: 0}, want: math.Vec2{X: 0, Y: 0}},
		{pos: terrain.TilePos{NE: 1, SE: 0}, want: math.Vec2{X: 48, Y: -24}},
		{pos: terrain.TilePos{NE: 0, SE: 1}, want: math.Vec2{X: 48, Y: 24}},
		{pos: terrain.TilePos{NE: 1, SE: 1}, want: math.Vec2{X: 96, Y: 0}},
		{pos: terrain.TilePos{NE: 2, SE: 1}, want: math.Vec2{X: 144, Y: -24}},
	}

	for _, tt := range tests {
		if got := TileCenter(tt.pos); got != tt.want {
			t.Errorf("TileCenter%v: expected %v, got %v", tt.pos, tt.want, got)
		}
	}
}

func TestWorldToTileRoundTrip(t *testing.T) {
	for ne := -2; ne <= 2; ne++ {
		for se := -2; se <= 2; se++ {
			pos := terrain.TilePos{NE: ne, SE: se}
			if got := WorldToTile(TileCenter(pos)); got != pos {
				t.Errorf("center of %v resolved to %v", pos, got)
			}
		}
	}
}

func TestWorldToTilePointsInsideDiamond(t *testing.T) {
	// Points near the diamond corners of tile (1, 1), center (96, 0)
	tests := []struct {
		name string
		p    math.Vec2
		want terrain.TilePos
	}{
		{name: "center", p: math.Vec2{X: 96, Y: 0}, want: terrain.TilePos{NE: 1, SE: 1}},
		{name: "near left corner", p: math.Vec2{X: 50, Y: 0}, want: terrain.TilePos{NE: 1, SE: 1}},
		{name: "near top corner", p: math.Vec2{X: 96, Y: -22}, want: terrain.TilePos{NE: 1, SE: 1}},
		{name: "past left corner", p: math.Vec2{X: 40, Y: 0}, want: terrain.TilePos{NE: 0, SE: 0}},
		{name: "above top corner", p: math.Vec2{X: 96, Y: -26}, want: terrain.TilePos{NE: 2, SE: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WorldToTile(tt.p); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTileTopLeft(t *testing.T) {
	got := TileTopLeft(terrain.TilePos{NE: 0, SE: 0})
	want := math.Vec2{X: -TileWidth / 2, Y: -TileHeight / 2}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}
