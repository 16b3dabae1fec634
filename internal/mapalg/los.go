package mapalg

import "github.com/markusos/llmania/internal/world"

// LineTiles returns the tiles along a Bresenham line from (x1, y1) to
// (x2, y2), excluding the start point.
func LineTiles(x1, y1, x2, y2 int) []world.Point {
	var tiles []world.Point
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	x, y := x1, y1
	sx, sy := 1, 1
	if x1 >= x2 {
		sx = -1
	}
	if y1 >= y2 {
		sy = -1
	}

	if dx > dy {
		err := dx / 2
		for x != x2 {
			x += sx
			err -= dy
			if err < 0 {
				y += sy
				err += dx
			}
			tiles = append(tiles, world.Point{X: x, Y: y})
		}
	} else {
		err := dy / 2
		for y != y2 {
			y += sy
			err -= dx
			if err < 0 {
				x += sx
				err += dy
			}
			tiles = append(tiles, world.Point{X: x, Y: y})
		}
	}
	return tiles
}

// HasLineOfSight reports whether no wall blocks the view between the two
// points. The destination tile itself may be a wall.
func HasLineOfSight(m *world.Map, x1, y1, x2, y2 int) bool {
	line := LineTiles(x1, y1, x2, y2)
	for i, p := range line {
		if i == len(line)-1 {
			break
		}
		tile := m.Tile(p.X, p.Y)
		if tile == nil || tile.Type == world.TileWall {
			return false
		}
	}
	return true
}

// VisibleTiles raycasts from the origin to every tile within the circular
// radius and returns the set of visible coordinates. Walls are visible but
// block sight past them.
func VisibleTiles(m *world.Map, originX, originY, radius int) map[world.Point]bool {
	visible := map[world.Point]bool{{X: originX, Y: originY}: true}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			tx, ty := originX+dx, originY+dy
			if !m.InBounds(tx, ty) {
				continue
			}
			if dx*dx+dy*dy > radius*radius {
				continue
			}

			blocked := false
			for _, p := range LineTiles(originX, originY, tx, ty) {
				visible[p] = true
				tile := m.Tile(p.X, p.Y)
				if tile == nil || tile.Type == world.TileWall {
					blocked = true
					break
				}
			}
			if !blocked {
				visible[world.Point{X: tx, Y: ty}] = true
			}
		}
	}
	return visible
}
