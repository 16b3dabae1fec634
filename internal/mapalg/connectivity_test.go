package mapalg

import (
	"testing"

	"github.com/markusos/llmania/internal/world"
)

func TestEnsureConnected(t *testing.T) {
	// The right-hand potential floor pocket is sealed off by a wall and
	// must turn into wall; the reachable pocket becomes floor.
	m := buildMap(t, []string{
		"#######",
		"#.??#?#",
		"#.??#?#",
		"#######",
	})

	EnsureConnected(m, world.Point{X: 1, Y: 1})

	for _, p := range []world.Point{{X: 2, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 2}} {
		if got := m.Tile(p.X, p.Y).Type; got != world.TileFloor {
			t.Errorf("reachable tile (%d,%d) = %s, want floor", p.X, p.Y, got)
		}
	}
	for _, p := range []world.Point{{X: 5, Y: 1}, {X: 5, Y: 2}} {
		if got := m.Tile(p.X, p.Y).Type; got != world.TileWall {
			t.Errorf("unreachable tile (%d,%d) = %s, want wall", p.X, p.Y, got)
		}
	}
}

func TestPathExists(t *testing.T) {
	m := buildMap(t, []string{
		"#######",
		"#...#.#",
		"#...#.#",
		"#######",
	})

	if !PathExists(m, world.Point{X: 1, Y: 1}, world.Point{X: 3, Y: 2}) {
		t.Error("expected path within the left pocket")
	}
	if PathExists(m, world.Point{X: 1, Y: 1}, world.Point{X: 5, Y: 1}) {
		t.Error("found a path through a wall")
	}
	if !PathExists(m, world.Point{X: 1, Y: 1}, world.Point{X: 1, Y: 1}) {
		t.Error("start should reach itself")
	}
}

func TestPathExistsFromWall(t *testing.T) {
	m := buildMap(t, []string{
		"#####",
		"#...#",
		"#####",
	})
	if PathExists(m, world.Point{X: 0, Y: 0}, world.Point{X: 1, Y: 1}) {
		t.Error("path from a wall tile should not exist")
	}
}
