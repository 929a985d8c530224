package terrain

import (
	"fmt"
	"sort"
)

// Overlay is one blend mask draw selected by the resolver: the mask of
// the winning neighbour type's blend mode, for the given shape code, on
// top of a tile's base texture.
type Overlay struct {
	TypeID int       // winning neighbour terrain type (overlay texture)
	ModeID int       // that type's blend mode (mask texture set)
	Shape  ShapeCode // which neighbour directions the type wins
}

// BlendsAt resolves the blend overlays for the tile at pos.
//
// A neighbour of a different type contributes iff its blend priority is
// strictly greater than the tile's own: on equal priority the tile
// keeps its boundary. Each winning type collapses to a single shape
// code over all directions it wins, and the resulting overlays are
// ordered by ascending winner priority so the highest-priority
// transition is drawn last and dominates at corners. Type id breaks
// priority ties to keep the output deterministic.
//
// The output is empty when no neighbour differs or none outranks the
// tile. Resolution is local to pos and its neighbours, so tile edits
// only invalidate themselves and their 8 surrounding tiles.
func (t *Terrain) BlendsAt(pos TilePos) ([]Overlay, error) {
	if !t.Contains(pos) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, pos, t.size, t.size)
	}

	center := t.types[t.tiles[t.index(pos)].TypeID]

	var shapes map[int]ShapeCode
	for d := Direction(0); d < DirectionCount; d++ {
		npos := pos.Neighbor(d)
		if !t.Contains(npos) {
			continue
		}
		ntype := t.types[t.tiles[t.index(npos)].TypeID]
		if ntype.ID == center.ID {
			continue
		}
		// The tile keeps the boundary unless the neighbour strictly
		// outranks it.
		if center.BlendPriority >= ntype.BlendPriority {
			continue
		}
		if shapes == nil {
			shapes = make(map[int]ShapeCode, 4)
		}
		shapes[ntype.ID] |= d.Bit()
	}

	if len(shapes) == 0 {
		return nil, nil
	}

	overlays := make([]Overlay, 0, len(shapes))
	for typeID, shape := range shapes {
		overlays = append(overlays, Overlay{
			TypeID: typeID,
			ModeID: t.types[typeID].BlendMode,
			Shape:  shape,
		})
	}
	sort.Slice(overlays, func(i, j int) bool {
		pi := t.types[overlays[i].TypeID].BlendPriority
		pj := t.types[overlays[j].TypeID].BlendPriority
		if pi != pj {
			return pi < pj
		}
		return overlays[i].TypeID < overlays[j].TypeID
	})

	return overlays, nil
}
