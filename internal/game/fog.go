package game

import (
	"github.com/markusos/llmania/internal/entity"
	"github.com/markusos/llmania/internal/world"
)

// VisionRadius is how far (in tiles, per axis) the player reveals the map
// around themselves each turn.
const VisionRadius = 1

// FogOfWar maintains the player's view of the world: a parallel map that
// only contains what has been seen. Terrain and items stay revealed once
// explored; monsters are only shown while currently in view.
type FogOfWar struct {
	player  *entity.Player
	real    *world.Map
	visible *world.Map
}

// NewFogOfWar creates a fog-of-war view over the real map.
func NewFogOfWar(player *entity.Player, real, visible *world.Map) *FogOfWar {
	return &FogOfWar{player: player, real: real, visible: visible}
}

// Update refreshes the visible map from the player's current position.
func (f *FogOfWar) Update() {
	// Monsters that moved out of sight must disappear, so clear all
	// monster markers before revealing the current neighborhood.
	for y := 0; y < f.visible.Height; y++ {
		for x := 0; x < f.visible.Width; x++ {
			f.visible.Tile(x, y).Monster = nil
		}
	}

	px, py := f.player.X, f.player.Y
	for dy := -VisionRadius; dy <= VisionRadius; dy++ {
		for dx := -VisionRadius; dx <= VisionRadius; dx++ {
			x, y := px+dx, py+dy
			realTile := f.real.Tile(x, y)
			if realTile == nil {
				continue
			}
			visibleTile := f.visible.Tile(x, y)
			visibleTile.Type = realTile.Type
			visibleTile.Item = realTile.Item
			visibleTile.Explored = true
		}
	}

	// Monsters are copied separately so they only ever appear on tiles
	// currently in view.
	for dy := -VisionRadius; dy <= VisionRadius; dy++ {
		for dx := -VisionRadius; dx <= VisionRadius; dx++ {
			x, y := px+dx, py+dy
			realTile := f.real.Tile(x, y)
			if realTile == nil || realTile.Monster == nil {
				continue
			}
			f.visible.Tile(x, y).Monster = realTile.Monster
		}
	}
}
