// Package ai provides the monster behavior states and the optional
// auto-player used by the AI game mode.
package ai

import (
	"github.com/markusos/llmania/internal/entity"
	"github.com/markusos/llmania/internal/mapalg"
	"github.com/markusos/llmania/internal/parser"
	"github.com/markusos/llmania/internal/world"
)

// monsterState is the monster's current behavior.
type monsterState int

const (
	stateIdle monsterState = iota
	stateAttacking
)

// MonsterAI decides a monster's action each turn: idle until the player is
// spotted, then pursue via A* and attack when in range.
type MonsterAI struct {
	monster *entity.Monster
	player  *entity.Player
	m       *world.Map
	state   monsterState
}

// NewMonsterAI creates the behavior controller for one monster.
func NewMonsterAI(monster *entity.Monster, player *entity.Player, m *world.Map) *MonsterAI {
	return &MonsterAI{monster: monster, player: player, m: m, state: stateIdle}
}

// seesPlayer reports whether the player is within the monster's sight
// radius with an unobstructed line, and not invisible.
func (a *MonsterAI) seesPlayer() bool {
	if a.player.IsInvisible() {
		return false
	}
	if a.monster.DistanceTo(a.player.X, a.player.Y) > float64(a.monster.LineOfSight) {
		return false
	}
	return mapalg.HasLineOfSight(a.m, a.monster.X, a.monster.Y, a.player.X, a.player.Y)
}

// inAttackRange reports whether the player can be struck from here.
func (a *MonsterAI) inAttackRange() bool {
	return a.monster.DistanceTo(a.player.X, a.player.Y) <= float64(a.monster.AttackRange)
}

// NextAction runs the state transitions and returns the monster's action
// for this turn. The second return value is false when the monster does
// nothing.
func (a *MonsterAI) NextAction() (parser.Command, bool) {
	if a.seesPlayer() {
		a.state = stateAttacking
	} else {
		a.state = stateIdle
	}

	if a.state == stateIdle {
		return parser.Command{}, false
	}

	if a.inAttackRange() {
		return parser.Command{Verb: parser.VerbAttack}, true
	}
	return a.stepTowardPlayer()
}

// stepTowardPlayer finds the next A* step toward the player and converts
// it to a move command.
func (a *MonsterAI) stepTowardPlayer() (parser.Command, bool) {
	path := mapalg.AStar(a.m,
		world.Point{X: a.monster.X, Y: a.monster.Y},
		world.Point{X: a.player.X, Y: a.player.Y})
	if len(path) < 2 {
		return parser.Command{}, false
	}

	next := path[1]
	direction, ok := deltaDirection(next.X-a.monster.X, next.Y-a.monster.Y)
	if !ok {
		return parser.Command{}, false
	}
	return parser.Command{Verb: parser.VerbMove, Arg: direction}, true
}

// deltaDirection converts a unit step into a direction word.
func deltaDirection(dx, dy int) (string, bool) {
	switch {
	case dx == 0 && dy == -1:
		return parser.North, true
	case dx == 0 && dy == 1:
		return parser.South, true
	case dx == 1 && dy == 0:
		return parser.East, true
	case dx == -1 && dy == 0:
		return parser.West, true
	}
	return "", false
}
