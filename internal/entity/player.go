package entity

import "fmt"

// DefaultBaseAttackPower is the player's unarmed attack power.
const DefaultBaseAttackPower = 2

// Player is the adventurer controlled by the user (or the auto-player).
type Player struct {
	X, Y      int
	Health    int
	MaxHealth int

	BaseAttackPower int
	EquippedWeapon  *Item
	Inventory       *Inventory

	// InvisibilityTurns counts down each turn; monsters cannot see the
	// player while it is positive.
	InvisibilityTurns int
}

// NewPlayer creates a player at the given position with the given health.
func NewPlayer(x, y, health int) *Player {
	return &Player{
		X:               x,
		Y:               y,
		Health:          health,
		MaxHealth:       health,
		BaseAttackPower: DefaultBaseAttackPower,
		Inventory:       NewInventory(),
	}
}

// Move shifts the player by the given delta.
func (p *Player) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// TakeDamage reduces health, clamping at zero.
func (p *Player) TakeDamage(amount int) {
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
}

// IsInvisible reports whether monsters currently cannot see the player.
func (p *Player) IsInvisible() bool {
	return p.InvisibilityTurns > 0
}

// TakeItem puts an item into the inventory.
func (p *Player) TakeItem(item *Item) {
	p.Inventory.Add(item)
}

// DropItem removes the named item from the inventory and returns it, or
// nil if the player does not carry it. Dropping the equipped weapon
// unequips it.
func (p *Player) DropItem(name string) *Item {
	item := p.Inventory.Remove(name)
	if item != nil && item == p.EquippedWeapon {
		p.EquippedWeapon = nil
	}
	return item
}

// AttackPower returns base attack power plus any equipped weapon bonus.
func (p *Player) AttackPower() int {
	power := p.BaseAttackPower
	if p.EquippedWeapon != nil && p.EquippedWeapon.Kind == KindWeapon {
		power += p.EquippedWeapon.AttackBonus
	}
	return power
}

// AttackMonster strikes a monster and reports the damage dealt and whether
// the monster was defeated. Damage is reduced by the monster's defense but
// a landed hit always deals at least one point.
func (p *Player) AttackMonster(m *Monster) (damage int, defeated bool) {
	damage = p.AttackPower() - m.Defense
	if damage < 1 {
		damage = 1
	}
	m.TakeDamage(damage)
	return damage, !m.IsAlive()
}

// UseItem applies the named inventory item. It returns a message for the
// log and the item that was used (nil when nothing happened). Healing,
// cursed and invisibility items are consumed; weapons are equipped and
// stay in the inventory; teleport items are consumed here and their map
// effect is applied by the engine.
func (p *Player) UseItem(name string) (string, *Item) {
	item := p.Inventory.Find(name)
	if item == nil {
		return "Item not found.", nil
	}

	switch item.Kind {
	case KindHeal:
		p.Health += item.Amount
		if p.Health > p.MaxHealth {
			p.Health = p.MaxHealth
		}
		p.Inventory.Remove(item.Name)
		return fmt.Sprintf("Used %s, healed by %d HP.", item.Name, item.Amount), item
	case KindWeapon:
		p.EquippedWeapon = item
		return fmt.Sprintf("Equipped %s.", item.Name), item
	case KindCursed:
		p.TakeDamage(item.Damage)
		p.Inventory.Remove(item.Name)
		return fmt.Sprintf("The %s hurts you for %d damage!", item.Name, item.Damage), item
	case KindTeleport:
		p.Inventory.Remove(item.Name)
		return fmt.Sprintf("You read the %s.", item.Name), item
	case KindInvisibility:
		p.InvisibilityTurns = item.Duration
		p.Inventory.Remove(item.Name)
		return fmt.Sprintf("You drink the %s and fade from sight.", item.Name), item
	default:
		return fmt.Sprintf("Cannot use %s.", item.Name), nil
	}
}
