// Package terrain owns the diamond-coordinate tile grid, the terrain
// type and blend mode tables, and the blending resolver that selects
// transition masks between neighbouring terrain types.
package terrain

import "fmt"

// TilePos is a tile position in diamond coordinates. The ne axis points
// northeast on screen, the se axis southeast.
type TilePos struct {
	NE, SE int
}

// Neighbor returns the position adjacent to p in the given direction.
func (p TilePos) Neighbor(d Direction) TilePos {
	off := directionOffsets[d]
	return TilePos{NE: p.NE + off.NE, SE: p.SE + off.SE}
}

// String returns the position as "(ne, se)".
func (p TilePos) String() string {
	return fmt.Sprintf("(%d, %d)", p.NE, p.SE)
}

// Tile is one cell of the terrain grid.
type Tile struct {
	Pos    TilePos
	TypeID int
}

// Type describes a terrain type. Types are loaded once from the terrain
// metadata table and are immutable afterwards.
type Type struct {
	ID            int
	Texture       string // base texture path, resolved by the pipeline
	BlendPriority int    // higher priority overlays lower at boundaries
	BlendMode     int    // index into the blend mode table
}

// BlendMode is a fixed set of mask textures, one per shape code.
// Modes are loaded once from the blend metadata table and are immutable
// afterwards.
type BlendMode struct {
	ID    int
	Masks map[ShapeCode]string // mask texture path per shape code
}

// Direction identifies one of the eight neighbours of a tile. The four
// edge-adjacent neighbours come first, then the four corner-adjacent
// ones; iteration in this order is the fixed directional precedence of
// the blending resolver.
type Direction uint8

// Neighbour directions on the diamond grid.
const (
	DirNorthEast Direction = iota // edge: (+1, 0)
	DirSouthEast                  // edge: (0, +1)
	DirSouthWest                  // edge: (-1, 0)
	DirNorthWest                  // edge: (0, -1)
	DirNorth                      // corner: (+1, -1)
	DirEast                       // corner: (+1, +1)
	DirSouth                      // corner: (-1, +1)
	DirWest                       // corner: (-1, -1)

	DirectionCount = 8
)

var directionOffsets = [DirectionCount]TilePos{
	DirNorthEast: {NE: 1, SE: 0},
	DirSouthEast: {NE: 0, SE: 1},
	DirSouthWest: {NE: -1, SE: 0},
	DirNorthWest: {NE: 0, SE: -1},
	DirNorth:     {NE: 1, SE: -1},
	DirEast:      {NE: 1, SE: 1},
	DirSouth:     {NE: -1, SE: 1},
	DirWest:      {NE: -1, SE: -1},
}

var directionNames = [DirectionCount]string{
	"NE", "SE", "SW", "NW", "N", "E", "S", "W",
}

// String returns the compass name of the direction.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// IsEdge reports whether the direction is edge-adjacent rather than
// corner-adjacent.
func (d Direction) IsEdge() bool {
	return d <= DirNorthWest
}

// Bit returns the shape code bit for the direction.
func (d Direction) Bit() ShapeCode {
	return 1 << d
}

// ShapeCode encodes the subset of the eight neighbour directions a blend
// mask covers, one bit per Direction.
type ShapeCode uint8

// Shape code of a tile surrounded on all eight sides.
const ShapeAll ShapeCode = 0xff

// Mask of the four edge-adjacent direction bits.
const shapeEdgeBits = ShapeCode(1<<DirNorthEast | 1<<DirSouthEast | 1<<DirSouthWest | 1<<DirNorthWest)

// Has reports whether the code contains the direction.
func (s ShapeCode) Has(d Direction) bool {
	return s&d.Bit() != 0
}

// EdgesOnly strips the corner direction bits. Used as a draw-time
// fallback when a blend mode supplies no mask for the exact code.
func (s ShapeCode) EdgesOnly() ShapeCode {
	return s & shapeEdgeBits
}

// String lists the directions in the code, e.g. "NE+SE+N".
func (s ShapeCode) String() string {
	if s == 0 {
		return "none"
	}
	out := ""
	for d := Direction(0); d < DirectionCount; d++ {
		if s.Has(d) {
			if out != "" {
				out += "+"
			}
			out += d.String()
		}
	}
	return out
}
