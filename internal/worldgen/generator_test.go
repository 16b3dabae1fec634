package worldgen

import (
	"context"
	"math/rand"
	"testing"

	"github.com/markusos/llmania/internal/gamedata"
	"github.com/markusos/llmania/internal/mapalg"
	"github.com/markusos/llmania/internal/world"
)

func newTestGenerator(seed int64) *Generator {
	rng := rand.New(rand.NewSource(seed))
	return NewGenerator(rng, gamedata.MustLoadItemRegistry(), gamedata.MustLoadMonsterRegistry(), 0)
}

func TestGenerateReproducibility(t *testing.T) {
	ctx := context.Background()

	m1, start1, win1, err := newTestGenerator(12345).Generate(ctx, 30, 15)
	if err != nil {
		t.Fatalf("first generation failed: %v", err)
	}
	m2, start2, win2, err := newTestGenerator(12345).Generate(ctx, 30, 15)
	if err != nil {
		t.Fatalf("second generation failed: %v", err)
	}

	if start1 != start2 || win1 != win2 {
		t.Errorf("positions differ: start %v/%v win %v/%v", start1, start2, win1, win2)
	}
	for y := 0; y < m1.Height; y++ {
		for x := 0; x < m1.Width; x++ {
			if m1.Tile(x, y).Type != m2.Tile(x, y).Type {
				t.Fatalf("tile mismatch at (%d,%d): %s != %s", x, y, m1.Tile(x, y).Type, m2.Tile(x, y).Type)
			}
		}
	}
}

func TestGenerateLayout(t *testing.T) {
	ctx := context.Background()
	m, start, win, err := newTestGenerator(99).Generate(ctx, 30, 15)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	if start == win {
		t.Error("start and goal coincide")
	}
	if !mapalg.PathExists(m, start, win) {
		t.Error("no path from start to goal")
	}

	// Border must be solid wall.
	for x := 0; x < m.Width; x++ {
		if m.Tile(x, 0).Type != world.TileWall || m.Tile(x, m.Height-1).Type != world.TileWall {
			t.Fatalf("border not wall at column %d", x)
		}
	}
	for y := 0; y < m.Height; y++ {
		if m.Tile(0, y).Type != world.TileWall || m.Tile(m.Width-1, y).Type != world.TileWall {
			t.Fatalf("border not wall at row %d", y)
		}
	}

	// No undecided tiles may survive generation.
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tile(x, y).Type == world.TilePotentialFloor {
				t.Fatalf("potential floor left at (%d,%d)", x, y)
			}
		}
	}
}

func TestGeneratePlacesQuestItemAtGoal(t *testing.T) {
	ctx := context.Background()
	m, start, win, err := newTestGenerator(7).Generate(ctx, 30, 15)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	tile := m.Tile(win.X, win.Y)
	if tile.Item == nil || !tile.Item.IsQuestGoal() {
		t.Error("quest item missing from the goal tile")
	}
	if startTile := m.Tile(start.X, start.Y); startTile.Item != nil || startTile.Monster != nil {
		t.Error("start tile is occupied")
	}
}

func TestGenerateFloorPortion(t *testing.T) {
	ctx := context.Background()
	m, _, _, err := newTestGenerator(3).Generate(ctx, 30, 15)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	interior := (m.Width - 2) * (m.Height - 2)
	portion := float64(m.CountFloor()) / float64(interior)
	if portion < 0.3 || portion > 0.7 {
		t.Errorf("floor portion %.2f far from target %.2f", portion, DefaultFloorPortion)
	}
}

func TestGenerateTooSmall(t *testing.T) {
	ctx := context.Background()
	if _, _, _, err := newTestGenerator(1).Generate(ctx, 4, 4); err == nil {
		t.Error("expected an error for a map below the minimum size")
	}
}
