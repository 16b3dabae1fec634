package gamedata

import (
	"errors"
	"math/rand"
)

// MonsterRegistry holds loaded monster definitions and provides spawning
// utilities.
type MonsterRegistry struct {
	monsters    []MonsterDef
	totalRarity int
}

// NewMonsterRegistry creates a registry from loaded monster definitions.
func NewMonsterRegistry(monsters []MonsterDef) *MonsterRegistry {
	total := 0
	for _, m := range monsters {
		total += m.Rarity
	}
	return &MonsterRegistry{monsters: monsters, totalRarity: total}
}

// LoadMonsterRegistry loads and creates a registry from the embedded
// monsters.json.
func LoadMonsterRegistry() (*MonsterRegistry, error) {
	monsters, err := LoadMonsters()
	if err != nil {
		return nil, err
	}
	if len(monsters) == 0 {
		return nil, errors.New("no monsters loaded from monsters.json")
	}
	return NewMonsterRegistry(monsters), nil
}

// MustLoadMonsterRegistry loads a registry, panicking on error.
func MustLoadMonsterRegistry() *MonsterRegistry {
	registry, err := LoadMonsterRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a random monster definition using rarity-weighted
// probability. Definitions with higher rarity values are more common.
func (r *MonsterRegistry) SpawnRandom(rng *rand.Rand) *MonsterDef {
	if r.totalRarity <= 0 || len(r.monsters) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalRarity)
	cumulative := 0
	for i := range r.monsters {
		cumulative += r.monsters[i].Rarity
		if roll < cumulative {
			return &r.monsters[i]
		}
	}
	return &r.monsters[0]
}

// GetByID returns the monster definition with the given ID, or nil.
func (r *MonsterRegistry) GetByID(id string) *MonsterDef {
	for i := range r.monsters {
		if r.monsters[i].ID == id {
			return &r.monsters[i]
		}
	}
	return nil
}

// All returns all monster definitions.
func (r *MonsterRegistry) All() []MonsterDef {
	return r.monsters
}

// Count returns the number of monster types in the registry.
func (r *MonsterRegistry) Count() int {
	return len(r.monsters)
}

// =============================================================================
// ItemRegistry
// =============================================================================

// ItemRegistry holds loaded item definitions and provides lookup and
// spawning utilities.
type ItemRegistry struct {
	items       []ItemDef
	byID        map[string]*ItemDef
	totalRarity int
}

// NewItemRegistry creates a registry from loaded item definitions.
func NewItemRegistry(items []ItemDef) *ItemRegistry {
	registry := &ItemRegistry{
		items: items,
		byID:  make(map[string]*ItemDef),
	}
	for i := range items {
		registry.byID[items[i].ID] = &items[i]
		registry.totalRarity += items[i].Rarity
	}
	return registry
}

// LoadItemRegistry loads and creates a registry from the embedded
// items.json.
func LoadItemRegistry() (*ItemRegistry, error) {
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("no items loaded from items.json")
	}
	return NewItemRegistry(items), nil
}

// MustLoadItemRegistry loads a registry, panicking on error.
func MustLoadItemRegistry() *ItemRegistry {
	registry, err := LoadItemRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a random item definition using rarity-weighted
// probability. Quest items carry zero rarity and are never spawned this
// way; the generator places them explicitly.
func (r *ItemRegistry) SpawnRandom(rng *rand.Rand) *ItemDef {
	if r.totalRarity <= 0 || len(r.items) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalRarity)
	cumulative := 0
	for i := range r.items {
		cumulative += r.items[i].Rarity
		if roll < cumulative {
			return &r.items[i]
		}
	}
	return &r.items[0]
}

// GetByID returns the item definition with the given ID, or nil.
func (r *ItemRegistry) GetByID(id string) *ItemDef {
	return r.byID[id]
}

// All returns all item definitions.
func (r *ItemRegistry) All() []ItemDef {
	return r.items
}

// Count returns the number of item types in the registry.
func (r *ItemRegistry) Count() int {
	return len(r.items)
}
