package mapalg

import (
	"testing"

	"github.com/markusos/llmania/internal/world"
)

func TestLineTilesExcludesStart(t *testing.T) {
	line := LineTiles(0, 0, 3, 0)
	want := []world.Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	if len(line) != len(want) {
		t.Fatalf("line = %v, want %v", line, want)
	}
	for i := range want {
		if line[i] != want[i] {
			t.Errorf("line[%d] = %v, want %v", i, line[i], want[i])
		}
	}
}

func TestHasLineOfSight(t *testing.T) {
	m := buildMap(t, []string{
		"#######",
		"#..#..#",
		"#.....#",
		"#######",
	})

	if HasLineOfSight(m, 1, 1, 5, 1) {
		t.Error("sight through a wall")
	}
	if !HasLineOfSight(m, 1, 2, 5, 2) {
		t.Error("no sight along an open row")
	}
	// The destination itself being a wall does not block sight to it.
	if !HasLineOfSight(m, 2, 1, 3, 1) {
		t.Error("no sight onto an adjacent wall tile")
	}
}

func TestVisibleTiles(t *testing.T) {
	m := buildMap(t, []string{
		"#######",
		"#..#..#",
		"#..#..#",
		"#######",
	})

	visible := VisibleTiles(m, 1, 1, 5)

	if !visible[world.Point{X: 1, Y: 1}] {
		t.Error("origin not visible")
	}
	if !visible[world.Point{X: 3, Y: 1}] {
		t.Error("blocking wall itself should be visible")
	}
	if visible[world.Point{X: 5, Y: 1}] {
		t.Error("tile behind a wall is visible")
	}
}
