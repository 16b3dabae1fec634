package mapalg

import (
	"testing"

	"github.com/markusos/llmania/internal/world"
)

// buildMap constructs a map from a text layout: '#' wall, '.' floor,
// '?' potential floor.
func buildMap(t *testing.T, rows []string) *world.Map {
	t.Helper()
	height := len(rows)
	width := len(rows[0])
	m := world.NewMap(width, height)
	for y, row := range rows {
		if len(row) != width {
			t.Fatalf("row %d has width %d, want %d", y, len(row), width)
		}
		for x, ch := range row {
			switch ch {
			case '#':
				m.SetTileType(x, y, world.TileWall)
			case '.':
				m.SetTileType(x, y, world.TileFloor)
			case '?':
				m.SetTileType(x, y, world.TilePotentialFloor)
			default:
				t.Fatalf("unknown map character %q", ch)
			}
		}
	}
	return m
}
