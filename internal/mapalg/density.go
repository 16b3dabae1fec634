package mapalg

import (
	"math/rand"

	"github.com/markusos/llmania/internal/world"
)

// AdjustFloorPortion nudges the interior of the map toward the target
// floor portion (0 < target < 1). Walls adjacent to existing floor are
// opened up when the map is too dense; floor tiles are walled back in when
// it is too sparse. The start and goal tiles, any extra protected
// coordinates and an A* path between start and goal are never touched, and
// a floor tile is only removed when start and goal stay connected without
// it.
func AdjustFloorPortion(m *world.Map, rng *rand.Rand, start, goal world.Point, target float64, protected []world.Point) {
	if target <= 0 || target >= 1 {
		return
	}

	keep := map[world.Point]bool{start: true, goal: true}
	for _, p := range protected {
		keep[p] = true
	}
	for _, p := range AStar(m, start, goal) {
		keep[p] = true
	}

	interior := (m.Width - 2) * (m.Height - 2)
	if interior <= 0 {
		return
	}
	targetFloor := int(float64(interior) * target)
	current := countInteriorFloor(m)

	for current < targetFloor {
		candidates := wallsTouchingFloor(m, keep)
		if len(candidates) == 0 {
			break
		}
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		converted := 0
		for _, p := range candidates {
			if current >= targetFloor {
				break
			}
			m.SetTileType(p.X, p.Y, world.TileFloor)
			current++
			converted++
		}
		if converted == 0 {
			break
		}
	}

	if current > targetFloor {
		var candidates []world.Point
		for y := 1; y < m.Height-1; y++ {
			for x := 1; x < m.Width-1; x++ {
				p := world.Point{X: x, Y: y}
				if keep[p] {
					continue
				}
				if tile := m.Tile(x, y); tile != nil && tile.Type == world.TileFloor && tile.Item == nil && tile.Monster == nil {
					candidates = append(candidates, p)
				}
			}
		}
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})

		for _, p := range candidates {
			if current <= targetFloor {
				break
			}
			m.SetTileType(p.X, p.Y, world.TileWall)
			if !PathExists(m, start, goal) {
				// Removing this tile cuts the critical path, put it back.
				m.SetTileType(p.X, p.Y, world.TileFloor)
				continue
			}
			current--
		}
	}
}

func countInteriorFloor(m *world.Map) int {
	n := 0
	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			if tile := m.Tile(x, y); tile != nil && tile.Type == world.TileFloor {
				n++
			}
		}
	}
	return n
}

// wallsTouchingFloor returns interior wall tiles with at least one floor
// neighbor, skipping protected coordinates.
func wallsTouchingFloor(m *world.Map, keep map[world.Point]bool) []world.Point {
	var walls []world.Point
	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			p := world.Point{X: x, Y: y}
			if keep[p] {
				continue
			}
			tile := m.Tile(x, y)
			if tile == nil || tile.Type != world.TileWall {
				continue
			}
			for _, d := range world.CardinalDirections {
				if n := m.Tile(x+d.X, y+d.Y); n != nil && n.Type == world.TileFloor {
					walls = append(walls, p)
					break
				}
			}
		}
	}
	return walls
}
