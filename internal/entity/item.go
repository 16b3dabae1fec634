// Package entity provides game entities: the player, monsters and items.
package entity

import "github.com/google/uuid"

// ItemKind classifies what an item does when used.
type ItemKind string

const (
	KindHeal         ItemKind = "heal"
	KindWeapon       ItemKind = "weapon"
	KindQuest        ItemKind = "quest"
	KindJunk         ItemKind = "junk"
	KindCursed       ItemKind = "cursed"
	KindTeleport     ItemKind = "teleport"
	KindInvisibility ItemKind = "invisibility"
)

// Item is a thing that can lie on a tile or sit in the player's inventory.
type Item struct {
	ID          uuid.UUID
	Name        string
	Description string
	Kind        ItemKind

	// Kind-specific fields. Amount is the HP restored by heal items,
	// Damage the HP lost to cursed items, Duration the turn count for
	// invisibility, AttackBonus and Verb apply to weapons.
	Amount      int
	Damage      int
	Duration    int
	AttackBonus int
	Verb        string
}

// NewItem creates an item with a fresh identity.
func NewItem(name, description string, kind ItemKind) *Item {
	return &Item{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Kind:        kind,
	}
}

// IsQuestGoal reports whether picking this item up wins the game.
func (i *Item) IsQuestGoal() bool {
	return i.Kind == KindQuest
}
