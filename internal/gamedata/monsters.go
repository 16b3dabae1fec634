package gamedata

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/markusos/llmania/internal/entity"
)

// MonsterDef defines a monster type loaded from JSON.
type MonsterDef struct {
	ID          string `json:"id"`    // Unique identifier (e.g., "goblin")
	Name        string `json:"name"`  // Display name (e.g., "Goblin")
	Glyph       string `json:"glyph"` // Single character for rendering (e.g., "g")
	Color       string `json:"color"` // Hex color code (e.g., "#00FF00")
	Health      int    `json:"health"`
	AttackPower int    `json:"attackPower"`
	Defense     int    `json:"defense,omitempty"`
	LineOfSight int    `json:"lineOfSight,omitempty"` // Radius at which the player is noticed
	AttackRange int    `json:"attackRange,omitempty"` // Distance at which it can strike
	MoveSpeed   int    `json:"moveSpeed,omitempty"`   // Energy gained per turn (10 = one action per turn)
	Rarity      int    `json:"rarity"`                // Relative spawn frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *MonsterDef) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return '?'
	}
	return rune(d.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (d *MonsterDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// NewMonster instantiates an entity.Monster from this definition with a
// fresh identity. Zero-valued optional stats fall back to defaults.
func (d *MonsterDef) NewMonster() *entity.Monster {
	m := &entity.Monster{
		ID:          uuid.New(),
		Name:        d.Name,
		Glyph:       d.GlyphRune(),
		Color:       d.TCellColor(),
		Health:      d.Health,
		MaxHealth:   d.Health,
		AttackPower: d.AttackPower,
		Defense:     d.Defense,
		LineOfSight: d.LineOfSight,
		AttackRange: d.AttackRange,
		MoveSpeed:   d.MoveSpeed,
	}
	if m.LineOfSight == 0 {
		m.LineOfSight = 5
	}
	if m.AttackRange == 0 {
		m.AttackRange = 1
	}
	if m.MoveSpeed == 0 {
		m.MoveSpeed = 10
	}
	return m
}

// MonstersFile represents the structure of monsters.json.
type MonstersFile struct {
	Monsters []MonsterDef `json:"monsters"`
}

// LoadMonsters loads monster definitions from the embedded monsters.json
// file.
func LoadMonsters() ([]MonsterDef, error) {
	file, err := Load[MonstersFile]("monsters.json")
	if err != nil {
		return nil, err
	}
	return file.Monsters, nil
}
