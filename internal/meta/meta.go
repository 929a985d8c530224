// Package meta loads the tabular descriptor files that drive terrain
// composition: the terrain type table, the blend mask table and the
// player color sub-palette.
package meta

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gocarina/gocsv"
)

// Metadata errors.
var (
	ErrMalformedTable = errors.New("malformed metadata table")
	ErrDuplicateID    = errors.New("duplicate id in metadata table")
	ErrSparseIDs      = errors.New("metadata ids must be dense, starting at 0")
)

func init() {
	// A table missing a column would otherwise load with zero values
	// for every row; make that a parse error instead.
	gocsv.FailIfUnmatchedStructTags = true
}

// TerrainRow describes one terrain type: its base texture, its blend
// priority and the blend mode used for transitions onto neighbours.
type TerrainRow struct {
	ID        int    `csv:"id"`
	Texture   string `csv:"texture"`
	Priority  int    `csv:"priority"`
	BlendMode int    `csv:"blend_mode"`
}

// BlendMaskRow describes one mask texture of a blend mode. Shape is the
// 8-bit neighbour direction code the mask covers.
type BlendMaskRow struct {
	Mode    int    `csv:"mode"`
	Shape   uint8  `csv:"shape"`
	Texture string `csv:"texture"`
}

// LoadTerrainTypes parses the terrain type table. The table is indexed
// by id after load, so ids must be dense and unique. Any malformed row
// is a fatal load error.
func LoadTerrainTypes(data []byte) ([]TerrainRow, error) {
	var rows []TerrainRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: terrain types: %v", ErrMalformedTable, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: terrain types: empty table", ErrMalformedTable)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	for i, row := range rows {
		if row.ID != i {
			if i > 0 && row.ID == rows[i-1].ID {
				return nil, fmt.Errorf("%w: terrain type %d", ErrDuplicateID, row.ID)
			}
			return nil, fmt.Errorf("%w: terrain types: missing id %d", ErrSparseIDs, i)
		}
		if row.Texture == "" {
			return nil, fmt.Errorf("%w: terrain type %d: empty texture path", ErrMalformedTable, row.ID)
		}
	}

	return rows, nil
}

// LoadBlendMasks parses the blend mask table: one row per (mode, shape)
// mask texture. Mode ids must be dense and each (mode, shape) pair must
// appear at most once.
func LoadBlendMasks(data []byte) ([]BlendMaskRow, error) {
	var rows []BlendMaskRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: blend masks: %v", ErrMalformedTable, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: blend masks: empty table", ErrMalformedTable)
	}

	seen := make(map[[2]int]bool, len(rows))
	maxMode := 0
	modes := make(map[int]bool)
	for _, row := range rows {
		if row.Mode < 0 {
			return nil, fmt.Errorf("%w: blend mask with negative mode %d", ErrMalformedTable, row.Mode)
		}
		key := [2]int{row.Mode, int(row.Shape)}
		if seen[key] {
			return nil, fmt.Errorf("%w: blend mode %d shape %d", ErrDuplicateID, row.Mode, row.Shape)
		}
		seen[key] = true
		if row.Texture == "" {
			return nil, fmt.Errorf("%w: blend mode %d shape %d: empty texture path", ErrMalformedTable, row.Mode, row.Shape)
		}
		modes[row.Mode] = true
		if row.Mode > maxMode {
			maxMode = row.Mode
		}
	}
	for i := 0; i <= maxMode; i++ {
		if !modes[i] {
			return nil, fmt.Errorf("%w: blend masks: missing mode %d", ErrSparseIDs, i)
		}
	}

	return rows, nil
}

// ModeCount returns the number of distinct blend modes in a validated
// mask table.
func ModeCount(rows []BlendMaskRow) int {
	maxMode := -1
	for _, row := range rows {
		if row.Mode > maxMode {
			maxMode = row.Mode
		}
	}
	return maxMode + 1
}
