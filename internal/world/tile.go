// Package world provides the tile grid the game is played on.
package world

import "github.com/markusos/llmania/internal/entity"

// TileType is the base terrain of a tile.
type TileType string

const (
	// TileWall is impassable terrain.
	TileWall TileType = "wall"
	// TileFloor is walkable terrain.
	TileFloor TileType = "floor"
	// TilePotentialFloor only exists during generation: it may become
	// floor or wall depending on reachability.
	TilePotentialFloor TileType = "potential_floor"
)

// Display symbols for tiles and the entities that can occupy them.
const (
	SymbolWall    = '#'
	SymbolFloor   = '.'
	SymbolUnknown = '?'
	SymbolFog     = ' '
	SymbolMonster = 'M'
	SymbolItem    = '$'
	SymbolPlayer  = '@'
)

// Tile is a single map cell. It has a base type and can hold at most one
// item and one monster. Display priority is monster > item > terrain.
type Tile struct {
	Type     TileType
	Monster  *entity.Monster
	Item     *entity.Item
	Explored bool
}

// DisplayInfo returns the symbol to draw and a category string used for
// styling ("monster", "item", "wall", "floor", "fog" or "unknown"). With
// fogged set, unexplored tiles render as fog regardless of content.
func (t *Tile) DisplayInfo(fogged bool) (rune, string) {
	if fogged && !t.Explored {
		return SymbolFog, "fog"
	}
	switch {
	case t.Monster != nil:
		return t.Monster.Glyph, "monster"
	case t.Item != nil:
		return SymbolItem, "item"
	case t.Type == TileWall:
		return SymbolWall, "wall"
	case t.Type == TileFloor:
		return SymbolFloor, "floor"
	default:
		return SymbolUnknown, "unknown"
	}
}
