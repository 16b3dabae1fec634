package ai

import (
	"testing"

	"github.com/markusos/llmania/internal/entity"
	"github.com/markusos/llmania/internal/parser"
	"github.com/markusos/llmania/internal/world"
)

// openRoom builds a width x height map with border walls and open floor.
func openRoom(width, height int) *world.Map {
	m := world.NewMap(width, height)
	for x := 0; x < width; x++ {
		m.SetTileType(x, 0, world.TileWall)
		m.SetTileType(x, height-1, world.TileWall)
	}
	for y := 0; y < height; y++ {
		m.SetTileType(0, y, world.TileWall)
		m.SetTileType(width-1, y, world.TileWall)
	}
	return m
}

func TestMonsterIdleWhenPlayerFar(t *testing.T) {
	m := openRoom(20, 5)
	player := entity.NewPlayer(18, 2, 20)
	goblin := entity.NewMonster("Goblin", 10, 3)
	goblin.LineOfSight = 5
	m.PlaceMonster(goblin, 1, 2)

	controller := NewMonsterAI(goblin, player, m)

	if _, acted := controller.NextAction(); acted {
		t.Error("monster acted without seeing the player")
	}
}

func TestMonsterPursuesPlayer(t *testing.T) {
	m := openRoom(10, 5)
	player := entity.NewPlayer(5, 2, 20)
	goblin := entity.NewMonster("Goblin", 10, 3)
	m.PlaceMonster(goblin, 2, 2)

	controller := NewMonsterAI(goblin, player, m)

	cmd, acted := controller.NextAction()
	if !acted {
		t.Fatal("monster did not act with the player in sight")
	}
	if cmd.Verb != parser.VerbMove || cmd.Arg != parser.East {
		t.Errorf("got %s %s, want move east", cmd.Verb, cmd.Arg)
	}
}

func TestMonsterAttacksInRange(t *testing.T) {
	m := openRoom(10, 5)
	player := entity.NewPlayer(3, 2, 20)
	goblin := entity.NewMonster("Goblin", 10, 3)
	m.PlaceMonster(goblin, 2, 2)

	controller := NewMonsterAI(goblin, player, m)

	cmd, acted := controller.NextAction()
	if !acted || cmd.Verb != parser.VerbAttack {
		t.Errorf("adjacent monster should attack, got %v acted=%v", cmd, acted)
	}
}

func TestMonsterBlindToInvisiblePlayer(t *testing.T) {
	m := openRoom(10, 5)
	player := entity.NewPlayer(3, 2, 20)
	player.InvisibilityTurns = 5
	goblin := entity.NewMonster("Goblin", 10, 3)
	m.PlaceMonster(goblin, 2, 2)

	controller := NewMonsterAI(goblin, player, m)

	if _, acted := controller.NextAction(); acted {
		t.Error("monster acted against an invisible player")
	}
}

func TestMonsterSightBlockedByWall(t *testing.T) {
	m := openRoom(10, 5)
	// Wall column between monster and player.
	m.SetTileType(4, 1, world.TileWall)
	m.SetTileType(4, 2, world.TileWall)
	m.SetTileType(4, 3, world.TileWall)

	player := entity.NewPlayer(6, 2, 20)
	goblin := entity.NewMonster("Goblin", 10, 3)
	m.PlaceMonster(goblin, 2, 2)

	controller := NewMonsterAI(goblin, player, m)

	if _, acted := controller.NextAction(); acted {
		t.Error("monster saw the player through a wall")
	}
}

func TestWraithAttacksAtRange(t *testing.T) {
	m := openRoom(10, 5)
	player := entity.NewPlayer(4, 2, 20)
	wraith := entity.NewMonster("Wraith", 20, 6)
	wraith.AttackRange = 2
	m.PlaceMonster(wraith, 2, 2)

	controller := NewMonsterAI(wraith, player, m)

	cmd, acted := controller.NextAction()
	if !acted || cmd.Verb != parser.VerbAttack {
		t.Errorf("ranged monster should attack at distance 2, got %v acted=%v", cmd, acted)
	}
}
