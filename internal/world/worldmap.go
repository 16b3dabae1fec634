package world

import "github.com/markusos/llmania/internal/entity"

// Point is a map coordinate.
type Point struct {
	X, Y int
}

// CardinalDirections are the four neighbor offsets (N, S, E, W) used for
// movement, adjacency checks and flood fills throughout the game.
var CardinalDirections = []Point{{0, -1}, {0, 1}, {1, 0}, {-1, 0}}

// Map is a 2D grid of tiles. grid[y][x] addresses the tile at (x, y).
type Map struct {
	Width  int
	Height int
	grid   [][]*Tile
}

// NewMap creates a map of the given size with every tile set to floor.
// Generators typically overwrite this with walls before carving.
func NewMap(width, height int) *Map {
	grid := make([][]*Tile, height)
	for y := range grid {
		grid[y] = make([]*Tile, width)
		for x := range grid[y] {
			grid[y][x] = &Tile{Type: TileFloor}
		}
	}
	return &Map{Width: width, Height: height, grid: grid}
}

// InBounds reports whether (x, y) lies on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Tile returns the tile at (x, y), or nil when out of bounds.
func (m *Map) Tile(x, y int) *Tile {
	if !m.InBounds(x, y) {
		return nil
	}
	return m.grid[y][x]
}

// SetTileType sets the terrain at (x, y). It returns false when out of
// bounds.
func (m *Map) SetTileType(x, y int, t TileType) bool {
	tile := m.Tile(x, y)
	if tile == nil {
		return false
	}
	tile.Type = t
	return true
}

// IsWalkable reports whether an entity may stand on (x, y): in bounds and
// not a wall. Occupying entities do not block movement here; the command
// processor decides what bumping into a monster means.
func (m *Map) IsWalkable(x, y int) bool {
	tile := m.Tile(x, y)
	return tile != nil && tile.Type != TileWall
}

// PlaceItem puts an item on (x, y). It fails when out of bounds or when
// the tile already holds an item.
func (m *Map) PlaceItem(item *entity.Item, x, y int) bool {
	tile := m.Tile(x, y)
	if tile == nil || tile.Item != nil {
		return false
	}
	tile.Item = item
	return true
}

// RemoveItem takes the item off (x, y) and returns it, or nil when there
// is none.
func (m *Map) RemoveItem(x, y int) *entity.Item {
	tile := m.Tile(x, y)
	if tile == nil || tile.Item == nil {
		return nil
	}
	item := tile.Item
	tile.Item = nil
	return item
}

// PlaceMonster puts a monster on (x, y) and updates the monster's own
// position. It fails when out of bounds or when the tile is occupied.
func (m *Map) PlaceMonster(monster *entity.Monster, x, y int) bool {
	tile := m.Tile(x, y)
	if tile == nil || tile.Monster != nil {
		return false
	}
	tile.Monster = monster
	monster.X = x
	monster.Y = y
	return true
}

// RemoveMonster takes the monster off (x, y) and returns it, or nil when
// there is none.
func (m *Map) RemoveMonster(x, y int) *entity.Monster {
	tile := m.Tile(x, y)
	if tile == nil || tile.Monster == nil {
		return nil
	}
	monster := tile.Monster
	tile.Monster = nil
	return monster
}

// MoveMonster relocates a monster to (x, y) if the target tile is free.
func (m *Map) MoveMonster(monster *entity.Monster, x, y int) bool {
	target := m.Tile(x, y)
	if target == nil || target.Monster != nil {
		return false
	}
	m.RemoveMonster(monster.X, monster.Y)
	return m.PlaceMonster(monster, x, y)
}

// Monsters returns every monster currently on the map, scanning row by
// row for a stable order.
func (m *Map) Monsters() []*entity.Monster {
	var monsters []*entity.Monster
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if mo := m.grid[y][x].Monster; mo != nil {
				monsters = append(monsters, mo)
			}
		}
	}
	return monsters
}

// FloorTiles returns the coordinates of every floor tile.
func (m *Map) FloorTiles() []Point {
	var tiles []Point
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.grid[y][x].Type == TileFloor {
				tiles = append(tiles, Point{x, y})
			}
		}
	}
	return tiles
}

// CountFloor returns the number of floor tiles.
func (m *Map) CountFloor() int {
	n := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.grid[y][x].Type == TileFloor {
				n++
			}
		}
	}
	return n
}
