// Package mapalg provides pure algorithms over a world.Map: connectivity
// flood fills, floor density adjustment, pathfinding and line of sight.
// Both the world generator and the AI layers build on these.
package mapalg

import "github.com/markusos/llmania/internal/world"

// EnsureConnected flood-fills from start across floor and potential_floor
// tiles inside the map border. Every reached tile becomes floor; every
// interior potential_floor tile that was not reached becomes wall. The
// start tile is expected to be floor already.
func EnsureConnected(m *world.Map, start world.Point) {
	visited := map[world.Point]bool{start: true}
	queue := []world.Point{start}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, d := range world.CardinalDirections {
			next := world.Point{X: curr.X + d.X, Y: curr.Y + d.Y}
			if !inInterior(m, next) || visited[next] {
				continue
			}
			tile := m.Tile(next.X, next.Y)
			if tile == nil {
				continue
			}
			if tile.Type == world.TileFloor || tile.Type == world.TilePotentialFloor {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	for p := range visited {
		m.SetTileType(p.X, p.Y, world.TileFloor)
	}

	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			p := world.Point{X: x, Y: y}
			if visited[p] {
				continue
			}
			if tile := m.Tile(x, y); tile != nil && tile.Type == world.TilePotentialFloor {
				m.SetTileType(x, y, world.TileWall)
			}
		}
	}
}

// PathExists reports whether a path of floor tiles connects start and end
// inside the map border.
func PathExists(m *world.Map, start, end world.Point) bool {
	startTile := m.Tile(start.X, start.Y)
	if startTile == nil || startTile.Type != world.TileFloor {
		return false
	}
	if start == end {
		return true
	}

	visited := map[world.Point]bool{start: true}
	queue := []world.Point{start}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, d := range world.CardinalDirections {
			next := world.Point{X: curr.X + d.X, Y: curr.Y + d.Y}
			if next == end {
				endTile := m.Tile(next.X, next.Y)
				return endTile != nil && endTile.Type == world.TileFloor
			}
			if !inInterior(m, next) || visited[next] {
				continue
			}
			if tile := m.Tile(next.X, next.Y); tile != nil && tile.Type == world.TileFloor {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

// inInterior reports whether p lies strictly inside the map border.
func inInterior(m *world.Map, p world.Point) bool {
	return p.X >= 1 && p.X < m.Width-1 && p.Y >= 1 && p.Y < m.Height-1
}
