package game

import (
	"sort"

	"github.com/sreejithr/openage/internal/engine/terrain"
)

// demoMapSize matches the demo grid below.
const demoMapSize = 20

// demoMap is a hand-built terrain layout exercising every blend
// combination: islands, lakes, roads and single-tile specks. The
// values are legacy asset ids; applyDemoMap remaps them onto the
// loaded terrain table.
var demoMap = [demoMapSize][demoMapSize]int{
	{7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7},
	{7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7},
	{7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7},
	{7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 11, 11, 11, 7, 7, 7, 7, 7},
	{7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 11, 11, 11, 11, 11, 7, 7, 7},
	{7, 7, 20, 20, 20, 7, 7, 7, 7, 7, 7, 7, 11, 11, 11, 11, 11, 11, 7, 7},
	{7, 7, 20, 7, 7, 20, 20, 7, 7, 7, 7, 7, 11, 11, 11, 11, 11, 7, 7, 7},
	{7, 7, 20, 7, 7, 7, 7, 7, 7, 7, 7, 7, 11, 11, 11, 7, 7, 7, 7, 7},
	{7, 20, 20, 20, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7},
	{7, 7, 20, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7},
	{7, 7, 20, 7, 7, 7, 9, 9, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7},
	{7, 7, 7, 7, 7, 7, 9, 9, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7},
	{7, 7, 7, 7, 13, 7, 9, 7, 7, 12, 12, 7, 7, 7, 7, 7, 7, 7, 7, 7},
	{7, 7, 7, 7, 13, 9, 9, 7, 12, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7},
	{7, 7, 7, 7, 13, 7, 7, 7, 12, 7, 7, 7, 7, 17, 17, 17, 7, 7, 7, 7},
	{7, 7, 7, 7, 13, 7, 7, 7, 12, 7, 7, 7, 7, 18, 18, 18, 7, 7, 7, 7},
	{7, 7, 12, 12, 12, 12, 12, 12, 12, 7, 7, 7, 7, 19, 19, 19, 7, 7, 7, 7},
	{7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 3, 3, 3, 7, 7, 7, 7},
	{7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 3, 3, 3, 3, 14, 14, 7},
	{7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 3, 3, 7, 7, 7},
}

// demoTypeMapping maps the distinct legacy ids in the demo grid, in
// ascending order, onto the dense ids of the loaded terrain table.
// Grids referencing more legacy ids than the table has types wrap
// around, so a small test table still renders the full layout.
func demoTypeMapping(typeCount int) map[int]int {
	seen := make(map[int]bool)
	for _, row := range demoMap {
		for _, v := range row {
			seen[v] = true
		}
	}
	legacy := make([]int, 0, len(seen))
	for v := range seen {
		legacy = append(legacy, v)
	}
	sort.Ints(legacy)

	mapping := make(map[int]int, len(legacy))
	for i, v := range legacy {
		mapping[v] = i % typeCount
	}
	return mapping
}

// applyDemoMap fills the terrain with the demo layout.
func applyDemoMap(t *terrain.Terrain) error {
	mapping := demoTypeMapping(len(t.Types()))

	n := t.Size()
	for ne := 0; ne < n; ne++ {
		for se := 0; se < n; se++ {
			legacy := demoMap[ne%demoMapSize][se%demoMapSize]
			if err := t.SetTile(terrain.TilePos{NE: ne, SE: se}, mapping[legacy]); err != nil {
				return err
			}
		}
	}
	return nil
}
