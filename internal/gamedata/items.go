package gamedata

import (
	"github.com/google/uuid"

	"github.com/markusos/llmania/internal/entity"
)

// ItemDef defines an item type loaded from JSON.
type ItemDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "health_potion")
	Name        string `json:"name"`        // Display name (e.g., "Health Potion")
	Description string `json:"description"` // Short flavor text
	Kind        string `json:"kind"`        // Effect kind: heal, weapon, quest, junk, cursed, teleport, invisibility
	Amount      int    `json:"amount,omitempty"`
	Damage      int    `json:"damage,omitempty"`
	Duration    int    `json:"duration,omitempty"`
	AttackBonus int    `json:"attackBonus,omitempty"`
	Verb        string `json:"verb,omitempty"`
	Rarity      int    `json:"rarity"` // Relative spawn frequency (higher = more common)
}

// NewItem instantiates an entity.Item from this definition with a fresh
// identity.
func (d *ItemDef) NewItem() *entity.Item {
	return &entity.Item{
		ID:          uuid.New(),
		Name:        d.Name,
		Description: d.Description,
		Kind:        entity.ItemKind(d.Kind),
		Amount:      d.Amount,
		Damage:      d.Damage,
		Duration:    d.Duration,
		AttackBonus: d.AttackBonus,
		Verb:        d.Verb,
	}
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}
