package terrain

import (
	"errors"
	"fmt"
)

// Terrain errors.
var (
	ErrOutOfBounds   = errors.New("tile position out of bounds")
	ErrInvalidTypeID = errors.New("invalid terrain type id")
	ErrInvalidMode   = errors.New("invalid blend mode id")
)

// Terrain is a dense, fixed-size N x N tile grid. It owns the terrain
// type and blend mode tables and is a passive store: it never triggers
// redraws itself.
type Terrain struct {
	size  int
	tiles []Tile
	types []Type
	modes []BlendMode
}

// New creates a terrain grid of the given side length. Every tile
// starts as type 0. The type and mode tables are indexed by id and must
// be dense; every type's blend mode must exist.
func New(size int, types []Type, modes []BlendMode) (*Terrain, error) {
	if size <= 0 {
		return nil, fmt.Errorf("terrain size must be positive, got %d", size)
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("%w: empty type table", ErrInvalidTypeID)
	}
	for i, tt := range types {
		if tt.ID != i {
			return nil, fmt.Errorf("%w: type table index %d holds id %d", ErrInvalidTypeID, i, tt.ID)
		}
		if tt.BlendMode < 0 || tt.BlendMode >= len(modes) {
			return nil, fmt.Errorf("%w: terrain type %d references mode %d of %d",
				ErrInvalidMode, tt.ID, tt.BlendMode, len(modes))
		}
	}
	for i, m := range modes {
		if m.ID != i {
			return nil, fmt.Errorf("%w: mode table index %d holds id %d", ErrInvalidMode, i, m.ID)
		}
	}

	t := &Terrain{
		size:  size,
		tiles: make([]Tile, size*size),
		types: types,
		modes: modes,
	}
	for ne := 0; ne < size; ne++ {
		for se := 0; se < size; se++ {
			t.tiles[ne*size+se].Pos = TilePos{NE: ne, SE: se}
		}
	}
	return t, nil
}

// Size returns the side length of the grid.
func (t *Terrain) Size() int {
	return t.size
}

// Contains reports whether the position lies inside the grid.
func (t *Terrain) Contains(pos TilePos) bool {
	return pos.NE >= 0 && pos.NE < t.size && pos.SE >= 0 && pos.SE < t.size
}

func (t *Terrain) index(pos TilePos) int {
	return pos.NE*t.size + pos.SE
}

// TypeAt returns the terrain type of the tile at pos.
func (t *Terrain) TypeAt(pos TilePos) (Type, error) {
	if !t.Contains(pos) {
		return Type{}, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, pos, t.size, t.size)
	}
	return t.types[t.tiles[t.index(pos)].TypeID], nil
}

// SetTile assigns a terrain type to the tile at pos, overwriting in
// place. An unknown type id fails and leaves the tile unchanged.
func (t *Terrain) SetTile(pos TilePos, typeID int) error {
	if !t.Contains(pos) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, pos, t.size, t.size)
	}
	if typeID < 0 || typeID >= len(t.types) {
		return fmt.Errorf("%w: %d of %d types", ErrInvalidTypeID, typeID, len(t.types))
	}
	t.tiles[t.index(pos)].TypeID = typeID
	return nil
}

// Neighbors returns the positions adjacent to pos, in fixed direction
// order. Positions at the grid boundary omit out-of-range neighbours.
func (t *Terrain) Neighbors(pos TilePos) []TilePos {
	out := make([]TilePos, 0, DirectionCount)
	for d := Direction(0); d < DirectionCount; d++ {
		n := pos.Neighbor(d)
		if t.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// Types returns the terrain type table.
func (t *Terrain) Types() []Type {
	return t.types
}

// Mode returns the blend mode with the given id.
func (t *Terrain) Mode(id int) (BlendMode, error) {
	if id < 0 || id >= len(t.modes) {
		return BlendMode{}, fmt.Errorf("%w: %d of %d modes", ErrInvalidMode, id, len(t.modes))
	}
	return t.modes[id], nil
}

// Modes returns the blend mode table.
func (t *Terrain) Modes() []BlendMode {
	return t.modes
}
