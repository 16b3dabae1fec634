package entity

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
)

// Monster is a hostile creature on the map.
type Monster struct {
	ID     uuid.UUID
	Name   string
	Glyph  rune
	Color  tcell.Color
	X, Y   int

	Health      int
	MaxHealth   int
	AttackPower int
	Defense     int

	// LineOfSight is the radius within which the monster notices the
	// player; AttackRange the distance at which it can strike.
	LineOfSight int
	AttackRange int

	// MoveSpeed is added to MoveEnergy every turn; the monster acts once
	// MoveEnergy reaches the action threshold (10).
	MoveSpeed  int
	MoveEnergy int
}

// NewMonster creates a monster with sane defaults for the optional stats.
func NewMonster(name string, health, attackPower int) *Monster {
	return &Monster{
		ID:          uuid.New(),
		Name:        name,
		Glyph:       'M',
		Color:       tcell.ColorRed,
		Health:      health,
		MaxHealth:   health,
		AttackPower: attackPower,
		LineOfSight: 5,
		AttackRange: 1,
		MoveSpeed:   10,
	}
}

// IsAlive reports whether the monster has health remaining.
func (m *Monster) IsAlive() bool {
	return m.Health > 0
}

// TakeDamage reduces health, clamping at zero, and returns the actual
// amount of damage taken.
func (m *Monster) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > m.Health {
		amount = m.Health
	}
	m.Health -= amount
	return amount
}

// AttackPlayer strikes the player and reports the damage dealt and whether
// the player was defeated by the blow.
func (m *Monster) AttackPlayer(p *Player) (damage int, defeated bool) {
	p.TakeDamage(m.AttackPower)
	return m.AttackPower, p.Health <= 0
}

// DistanceTo returns the straight-line distance to the given coordinates.
func (m *Monster) DistanceTo(x, y int) float64 {
	dx := float64(m.X - x)
	dy := float64(m.Y - y)
	return math.Sqrt(dx*dx + dy*dy)
}
