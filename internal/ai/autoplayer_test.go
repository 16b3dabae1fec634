package ai

import (
	"math/rand"
	"testing"

	"github.com/markusos/llmania/internal/entity"
	"github.com/markusos/llmania/internal/parser"
	"github.com/markusos/llmania/internal/world"
)

// exploredRoom builds an open room with every tile already explored, as if
// the fog of war had revealed it.
func exploredRoom(width, height int) *world.Map {
	m := openRoom(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.Tile(x, y).Explored = true
		}
	}
	return m
}

func TestAutoPlayerHealsWhenHurt(t *testing.T) {
	visible := exploredRoom(10, 5)
	player := entity.NewPlayer(2, 2, 20)
	player.Health = 5
	potion := entity.NewItem("Health Potion", "", entity.KindHeal)
	player.TakeItem(potion)

	ap := NewAutoPlayer(player, visible, rand.New(rand.NewSource(1)))

	cmd := ap.NextCommand()
	if cmd.Verb != parser.VerbUse || cmd.Arg != "Health Potion" {
		t.Errorf("got %s %q, want use Health Potion", cmd.Verb, cmd.Arg)
	}
}

func TestAutoPlayerAttacksAdjacent(t *testing.T) {
	visible := exploredRoom(10, 5)
	player := entity.NewPlayer(2, 2, 20)
	visible.PlaceMonster(entity.NewMonster("Goblin", 10, 3), 3, 2)

	ap := NewAutoPlayer(player, visible, rand.New(rand.NewSource(1)))

	cmd := ap.NextCommand()
	if cmd.Verb != parser.VerbAttack || cmd.Arg != "Goblin" {
		t.Errorf("got %s %q, want attack Goblin", cmd.Verb, cmd.Arg)
	}
}

func TestAutoPlayerLootsCurrentTile(t *testing.T) {
	visible := exploredRoom(10, 5)
	player := entity.NewPlayer(2, 2, 20)
	visible.PlaceItem(entity.NewItem("Sword", "", entity.KindWeapon), 2, 2)

	ap := NewAutoPlayer(player, visible, rand.New(rand.NewSource(1)))

	cmd := ap.NextCommand()
	if cmd.Verb != parser.VerbTake || cmd.Arg != "Sword" {
		t.Errorf("got %s %q, want take Sword", cmd.Verb, cmd.Arg)
	}
}

func TestAutoPlayerSkipsCursedLoot(t *testing.T) {
	visible := exploredRoom(10, 5)
	player := entity.NewPlayer(2, 2, 20)
	visible.PlaceItem(entity.NewItem("Cursed Idol", "", entity.KindCursed), 2, 2)

	ap := NewAutoPlayer(player, visible, rand.New(rand.NewSource(1)))

	cmd := ap.NextCommand()
	if cmd.Verb == parser.VerbTake {
		t.Error("auto-player picked up a cursed item")
	}
}

func TestAutoPlayerWalksTowardSeenItem(t *testing.T) {
	visible := exploredRoom(10, 5)
	player := entity.NewPlayer(2, 2, 20)
	visible.PlaceItem(entity.NewItem("Health Potion", "", entity.KindHeal), 6, 2)

	ap := NewAutoPlayer(player, visible, rand.New(rand.NewSource(1)))

	cmd := ap.NextCommand()
	if cmd.Verb != parser.VerbMove || cmd.Arg != parser.East {
		t.Errorf("got %s %q, want move east toward the item", cmd.Verb, cmd.Arg)
	}
}

func TestAutoPlayerExploresFrontier(t *testing.T) {
	visible := exploredRoom(10, 5)
	// Tiles east of x=5 have not been seen yet.
	for y := 0; y < visible.Height; y++ {
		for x := 6; x < visible.Width; x++ {
			visible.Tile(x, y).Explored = false
		}
	}
	player := entity.NewPlayer(2, 2, 20)

	ap := NewAutoPlayer(player, visible, rand.New(rand.NewSource(1)))

	cmd := ap.NextCommand()
	if cmd.Verb != parser.VerbMove || cmd.Arg != parser.East {
		t.Errorf("got %s %q, want move east toward the frontier", cmd.Verb, cmd.Arg)
	}
}

func TestAutoPlayerQuitsWhenStuck(t *testing.T) {
	// A 3x3 room leaves a single fully explored floor tile and nowhere
	// to go.
	visible := exploredRoom(3, 3)
	player := entity.NewPlayer(1, 1, 20)

	ap := NewAutoPlayer(player, visible, rand.New(rand.NewSource(1)))

	cmd := ap.NextCommand()
	if cmd.Verb != parser.VerbQuit {
		t.Errorf("got %s, want quit when nothing is left to do", cmd.Verb)
	}
}
