package entity

import "strings"

// Inventory is an ordered collection of items carried by the player.
type Inventory struct {
	items []*Item
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{items: []*Item{}}
}

// Add appends an item to the inventory.
func (inv *Inventory) Add(item *Item) {
	inv.items = append(inv.items, item)
}

// Remove takes the first item matching name (case-insensitive) out of the
// inventory and returns it, or nil if no such item is carried.
func (inv *Inventory) Remove(name string) *Item {
	for i, item := range inv.items {
		if strings.EqualFold(item.Name, name) {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return item
		}
	}
	return nil
}

// Find returns the first item matching name (case-insensitive), or nil.
func (inv *Inventory) Find(name string) *Item {
	for _, item := range inv.items {
		if strings.EqualFold(item.Name, name) {
			return item
		}
	}
	return nil
}

// FindKind returns the first item of the given kind, or nil.
func (inv *Inventory) FindKind(kind ItemKind) *Item {
	for _, item := range inv.items {
		if item.Kind == kind {
			return item
		}
	}
	return nil
}

// Items returns the carried items in order.
func (inv *Inventory) Items() []*Item {
	return inv.items
}

// IsEmpty reports whether nothing is carried.
func (inv *Inventory) IsEmpty() bool {
	return len(inv.items) == 0
}

// Names returns a comma-separated list of carried item names.
func (inv *Inventory) Names() string {
	names := make([]string, len(inv.items))
	for i, item := range inv.items {
		names[i] = item.Name
	}
	return strings.Join(names, ", ")
}
