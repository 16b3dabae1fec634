package game

import (
	"sort"
	"strings"

	"github.com/markusos/llmania/internal/entity"
	"github.com/markusos/llmania/internal/parser"
	"github.com/markusos/llmania/internal/world"
)

// Result reports what a processed command did. UsedItem is set when a use
// command consumed or equipped an item, so the engine can apply map-level
// effects such as teleportation.
type Result struct {
	GameOver bool
	UsedItem *entity.Item
}

// CommandProcessor dispatches parsed commands against the game state and
// writes the outcome to the message log.
type CommandProcessor struct{}

// NewCommandProcessor creates a command processor.
func NewCommandProcessor() *CommandProcessor {
	return &CommandProcessor{}
}

// adjacentMonster pairs a monster with the tile it stands on.
type adjacentMonster struct {
	monster *entity.Monster
	x, y    int
}

// adjacentMonsters returns the monsters on the four tiles around (x, y).
func (cp *CommandProcessor) adjacentMonsters(x, y int, m *world.Map) []adjacentMonster {
	var found []adjacentMonster
	for _, d := range world.CardinalDirections {
		tile := m.Tile(x+d.X, y+d.Y)
		if tile != nil && tile.Monster != nil {
			found = append(found, adjacentMonster{tile.Monster, x + d.X, y + d.Y})
		}
	}
	return found
}

// Process applies a player command and returns the result.
func (cp *CommandProcessor) Process(cmd parser.Command, p *entity.Player, m *world.Map, log *MessageLog, winPos world.Point) Result {
	switch cmd.Verb {
	case parser.VerbMove:
		return cp.processMove(cmd.Arg, p, m, log, winPos)
	case parser.VerbTake:
		return cp.processTake(cmd.Arg, p, m, log, winPos)
	case parser.VerbDrop:
		return cp.processDrop(cmd.Arg, p, m, log)
	case parser.VerbUse:
		return cp.processUse(cmd.Arg, p, log)
	case parser.VerbAttack:
		return cp.processAttack(cmd.Arg, p, m, log)
	case parser.VerbInventory:
		if p.Inventory.IsEmpty() {
			log.Add("Your inventory is empty.")
		} else {
			log.Addf("Inventory: %s", p.Inventory.Names())
		}
		return Result{}
	case parser.VerbLook:
		cp.processLook(p, m, log)
		return Result{}
	case parser.VerbQuit:
		log.Add("Quitting game.")
		return Result{GameOver: true}
	default:
		log.Add("Unknown command.")
		return Result{}
	}
}

func (cp *CommandProcessor) processMove(direction string, p *entity.Player, m *world.Map, log *MessageLog, winPos world.Point) Result {
	dx, dy, ok := parser.DirectionDelta(direction)
	if !ok {
		log.Add("Unknown command.")
		return Result{}
	}

	newX, newY := p.X+dx, p.Y+dy
	if !m.IsWalkable(newX, newY) {
		log.Add("You can't move there.")
		return Result{}
	}

	if target := m.Tile(newX, newY); target.Monster != nil {
		log.Addf("You bump into a %s!", target.Monster.Name)
		return Result{}
	}

	p.Move(dx, dy)
	log.Addf("You move %s.", direction)

	// Arriving at the goal is only noted; taking the quest item wins.
	if (world.Point{X: p.X, Y: p.Y}) == winPos {
		tile := m.Tile(winPos.X, winPos.Y)
		if tile != nil && tile.Item != nil && tile.Item.IsQuestGoal() {
			log.Addf("You reached the %s's location!", tile.Item.Name)
		}
	}
	return Result{}
}

func (cp *CommandProcessor) processTake(name string, p *entity.Player, m *world.Map, log *MessageLog, winPos world.Point) Result {
	tile := m.Tile(p.X, p.Y)
	canTake := tile != nil && tile.Item != nil &&
		(name == "" || strings.EqualFold(tile.Item.Name, name))
	if !canTake {
		if name != "" {
			log.Addf("There is no %s here to take.", name)
		} else {
			log.Add("Nothing here to take or item name mismatch.")
		}
		return Result{}
	}

	item := m.RemoveItem(p.X, p.Y)
	p.TakeItem(item)
	log.Addf("You take the %s.", item.Name)

	if (world.Point{X: p.X, Y: p.Y}) == winPos && item.IsQuestGoal() {
		log.Addf("You picked up the %s! You win!", item.Name)
		return Result{GameOver: true}
	}
	return Result{}
}

func (cp *CommandProcessor) processDrop(name string, p *entity.Player, m *world.Map, log *MessageLog) Result {
	if name == "" {
		log.Add("What do you want to drop?")
		return Result{}
	}

	item := p.DropItem(name)
	if item == nil {
		log.Addf("You don't have a %s to drop.", name)
		return Result{}
	}

	if m.PlaceItem(item, p.X, p.Y) {
		log.Addf("You drop the %s.", item.Name)
	} else {
		// Tile already holds an item; the player keeps it.
		p.TakeItem(item)
		log.Addf("You can't drop %s here, space occupied.", item.Name)
	}
	return Result{}
}

func (cp *CommandProcessor) processUse(name string, p *entity.Player, log *MessageLog) Result {
	if name == "" {
		log.Add("What do you want to use?")
		return Result{}
	}

	msg, used := p.UseItem(name)
	log.Add(msg)

	if p.Health <= 0 {
		log.Add("You have succumbed to a cursed item! Game Over.")
		return Result{GameOver: true, UsedItem: used}
	}
	return Result{UsedItem: used}
}

func (cp *CommandProcessor) processAttack(name string, p *entity.Player, m *world.Map, log *MessageLog) Result {
	adjacent := cp.adjacentMonsters(p.X, p.Y, m)

	var target *adjacentMonster
	if name != "" {
		var named []adjacentMonster
		for _, am := range adjacent {
			if strings.EqualFold(am.monster.Name, name) {
				named = append(named, am)
			}
		}
		switch len(named) {
		case 1:
			target = &named[0]
		case 0:
			log.Addf("There is no monster named %s nearby.", name)
		default:
			log.Addf("Multiple %ss found. Which one?", name)
		}
	} else {
		switch len(adjacent) {
		case 1:
			target = &adjacent[0]
		case 0:
			log.Add("There is no monster nearby to attack.")
		default:
			log.Addf("Multiple monsters nearby: %s. Which one?", uniqueNames(adjacent))
		}
	}

	if target == nil {
		return Result{}
	}

	damage, defeated := p.AttackMonster(target.monster)
	log.Addf("You attack the %s for %d damage.", target.monster.Name, damage)

	if defeated {
		m.RemoveMonster(target.x, target.y)
		log.Addf("You defeated the %s!", target.monster.Name)
		return Result{}
	}

	// The survivor strikes back.
	counter, playerDown := target.monster.AttackPlayer(p)
	log.Addf("The %s attacks you for %d damage.", target.monster.Name, counter)
	if playerDown {
		log.Add("You have been defeated. Game Over.")
		return Result{GameOver: true}
	}
	return Result{}
}

func (cp *CommandProcessor) processLook(p *entity.Player, m *world.Map, log *MessageLog) {
	log.Addf("You are at (%d, %d).", p.X, p.Y)
	tile := m.Tile(p.X, p.Y)
	if tile == nil {
		log.Add("You are in a void... somehow.")
		return
	}

	if tile.Item != nil {
		log.Addf("You see a %s here.", tile.Item.Name)
	}
	if tile.Monster != nil {
		log.Addf("There is a %s here!", tile.Monster.Name)
	}

	adjacent := cp.adjacentMonsters(p.X, p.Y, m)
	for _, am := range adjacent {
		log.Addf("You see a %s at (%d, %d).", am.monster.Name, am.x, am.y)
	}
	if tile.Item == nil && tile.Monster == nil && len(adjacent) == 0 {
		log.Add("The area is clear.")
	}
}

// ProcessMonsterCommand applies a monster's chosen action: a step toward
// the player or an attack when in range.
func (cp *CommandProcessor) ProcessMonsterCommand(cmd parser.Command, mon *entity.Monster, p *entity.Player, m *world.Map, log *MessageLog) Result {
	switch cmd.Verb {
	case parser.VerbMove:
		dx, dy, ok := parser.DirectionDelta(cmd.Arg)
		if !ok {
			return Result{}
		}
		newX, newY := mon.X+dx, mon.Y+dy
		if !m.IsWalkable(newX, newY) {
			return Result{}
		}
		if newX == p.X && newY == p.Y {
			// Monsters never share a tile with the player.
			return Result{}
		}
		m.MoveMonster(mon, newX, newY)
		return Result{}

	case parser.VerbAttack:
		damage, playerDown := mon.AttackPlayer(p)
		log.Addf("The %s attacks you for %d damage.", mon.Name, damage)
		if playerDown {
			log.Add("You have been defeated. Game Over.")
			return Result{GameOver: true}
		}
		return Result{}
	}
	return Result{}
}

// uniqueNames returns a sorted, deduplicated, comma-separated name list.
func uniqueNames(monsters []adjacentMonster) string {
	seen := map[string]bool{}
	var names []string
	for _, am := range monsters {
		if !seen[am.monster.Name] {
			seen[am.monster.Name] = true
			names = append(names, am.monster.Name)
		}
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
