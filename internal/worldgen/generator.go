// Package worldgen builds playable maps: a carved random-walk layout,
// connectivity and density passes, and item/monster placement.
package worldgen

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/markusos/llmania/internal/gamedata"
	"github.com/markusos/llmania/internal/mapalg"
	"github.com/markusos/llmania/internal/telemetry"
	"github.com/markusos/llmania/internal/world"
)

const (
	// MinMapSize is the smallest width or height a map may have: a one
	// tile border plus enough interior to place a start and a goal.
	MinMapSize = 5

	// DefaultFloorPortion is the target fraction of interior tiles that
	// end up as floor.
	DefaultFloorPortion = 0.5

	// maxGenerateTries bounds how often a bad layout (goal unreachable or
	// on top of the start) is thrown away and regenerated.
	maxGenerateTries = 10

	// questItemID is the item the player must pick up to win.
	questItemID = "amulet_of_yendor"

	itemChance    = 15 // percent per scatter attempt
	monsterChance = 10 // percent per scatter attempt, after the item roll
)

// Generator builds maps from loaded item and monster definitions.
type Generator struct {
	rng          *rand.Rand
	items        *gamedata.ItemRegistry
	monsters     *gamedata.MonsterRegistry
	floorPortion float64
}

// NewGenerator creates a map generator. A floorPortion of 0 selects the
// default.
func NewGenerator(rng *rand.Rand, items *gamedata.ItemRegistry, monsters *gamedata.MonsterRegistry, floorPortion float64) *Generator {
	if floorPortion <= 0 || floorPortion >= 1 {
		floorPortion = DefaultFloorPortion
	}
	return &Generator{rng: rng, items: items, monsters: monsters, floorPortion: floorPortion}
}

// generated bundles one successful generation attempt.
type generated struct {
	m     *world.Map
	start world.Point
	win   world.Point
}

// Generate builds a new map and returns it together with the player start
// position and the quest goal position. Generation retries internally when
// an attempt produces a degenerate layout.
func (g *Generator) Generate(ctx context.Context, width, height int) (*world.Map, world.Point, world.Point, error) {
	tracer := telemetry.Tracer("worldgen")
	ctx, span := tracer.Start(ctx, "worldgen.generate")
	defer span.End()

	if width < MinMapSize || height < MinMapSize {
		return nil, world.Point{}, world.Point{}, fmt.Errorf("map size %dx%d below minimum %dx%d", width, height, MinMapSize, MinMapSize)
	}

	startTime := time.Now()
	attempts := 0

	result, err := backoff.Retry(ctx, func() (generated, error) {
		attempts++
		return g.attempt(width, height)
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(10*time.Millisecond)),
		backoff.WithMaxTries(maxGenerateTries),
	)
	if err != nil {
		return nil, world.Point{}, world.Point{}, fmt.Errorf("map generation failed after %d attempts: %w", attempts, err)
	}

	span.SetAttributes(
		attribute.Int("map.width", width),
		attribute.Int("map.height", height),
		attribute.Int("map.floor_count", result.m.CountFloor()),
		attribute.Int("map.attempts", attempts),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return result.m, result.start, result.win, nil
}

// attempt runs the full pipeline once. It returns an error when the layout
// comes out degenerate, signalling the caller to retry.
func (g *Generator) attempt(width, height int) (generated, error) {
	m := world.NewMap(width, height)

	// Border walls, undecided interior.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				m.SetTileType(x, y, world.TileWall)
			} else {
				m.SetTileType(x, y, world.TilePotentialFloor)
			}
		}
	}

	start := g.randomInterior(width, height)
	provisionalWin := g.randomInterior(width, height)
	for provisionalWin == start {
		provisionalWin = g.randomInterior(width, height)
	}

	// Guarantee at least one corridor between start and the provisional
	// goal, then rough the layout up with directed walks into each map
	// quadrant.
	mapalg.CarveLine(m, start, provisionalWin)
	g.quadrantWalks(m, start)

	mapalg.EnsureConnected(m, start)
	mapalg.AdjustFloorPortion(m, g.rng, start, provisionalWin, g.floorPortion, nil)

	// The real goal is the reachable tile furthest from the start.
	win := mapalg.FurthestPoint(m, start)
	if win == start {
		return generated{}, errors.New("goal collapsed onto start position")
	}

	questDef := g.items.GetByID(questItemID)
	if questDef == nil {
		return generated{}, fmt.Errorf("quest item %q missing from item data", questItemID)
	}
	m.PlaceItem(questDef.NewItem(), win.X, win.Y)

	g.scatter(m, start, win)

	if !mapalg.PathExists(m, start, win) {
		return generated{}, errors.New("no path from start to goal")
	}
	return generated{m: m, start: start, win: win}, nil
}

// quadrantWalks runs one random walk from the start toward each corner of
// the map, carving floor as it goes.
func (g *Generator) quadrantWalks(m *world.Map, start world.Point) {
	corners := []world.Point{
		{X: 1, Y: 1},
		{X: m.Width - 2, Y: 1},
		{X: 1, Y: m.Height - 2},
		{X: m.Width - 2, Y: m.Height - 2},
	}
	steps := (m.Width * m.Height) / 8

	for _, corner := range corners {
		pos := start
		for i := 0; i < steps; i++ {
			var d world.Point
			if g.rng.Intn(2) == 0 {
				// Biased step toward the corner.
				d = world.Point{X: sign(corner.X - pos.X), Y: sign(corner.Y - pos.Y)}
				if d.X != 0 && d.Y != 0 {
					if g.rng.Intn(2) == 0 {
						d.Y = 0
					} else {
						d.X = 0
					}
				}
				if d.X == 0 && d.Y == 0 {
					break
				}
			} else {
				d = world.CardinalDirections[g.rng.Intn(len(world.CardinalDirections))]
			}

			next := world.Point{X: pos.X + d.X, Y: pos.Y + d.Y}
			if next.X < 1 || next.X > m.Width-2 || next.Y < 1 || next.Y > m.Height-2 {
				continue
			}
			pos = next
			m.SetTileType(pos.X, pos.Y, world.TileFloor)
		}
	}
}

// scatter places random items and monsters on free floor tiles, keeping the
// start and goal tiles clear.
func (g *Generator) scatter(m *world.Map, start, win world.Point) {
	tiles := m.FloorTiles()
	g.rng.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})

	for _, p := range tiles {
		if p == start || p == win {
			continue
		}
		tile := m.Tile(p.X, p.Y)
		if tile.Item != nil || tile.Monster != nil {
			continue
		}

		roll := g.rng.Intn(100)
		switch {
		case roll < itemChance:
			if def := g.items.SpawnRandom(g.rng); def != nil {
				m.PlaceItem(def.NewItem(), p.X, p.Y)
			}
		case roll < itemChance+monsterChance:
			if def := g.monsters.SpawnRandom(g.rng); def != nil {
				m.PlaceMonster(def.NewMonster(), p.X, p.Y)
			}
		}
	}
}

func (g *Generator) randomInterior(width, height int) world.Point {
	return world.Point{
		X: 1 + g.rng.Intn(width-2),
		Y: 1 + g.rng.Intn(height-2),
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
