package ai

import (
	"math/rand"

	"github.com/markusos/llmania/internal/entity"
	"github.com/markusos/llmania/internal/parser"
	"github.com/markusos/llmania/internal/world"
)

// lowHealthFraction is the health fraction below which the auto-player
// drinks a healing potion before doing anything else.
const lowHealthFraction = 3

// AutoPlayer plays the game without human input. It only knows what the
// fog-of-war view has revealed: it fights adjacent monsters, heals when
// hurt, loots what it stands on, walks to seen items and otherwise
// explores toward the nearest unexplored frontier.
type AutoPlayer struct {
	player  *entity.Player
	visible *world.Map
	rng     *rand.Rand

	path []world.Point
}

// NewAutoPlayer creates an auto-player over the fog-of-war view.
func NewAutoPlayer(player *entity.Player, visible *world.Map, rng *rand.Rand) *AutoPlayer {
	return &AutoPlayer{player: player, visible: visible, rng: rng}
}

// NextCommand decides the auto-player's action for this turn.
func (ap *AutoPlayer) NextCommand() parser.Command {
	// Survival first: heal when below a third of max health.
	if ap.player.Health*lowHealthFraction < ap.player.MaxHealth {
		if potion := ap.player.Inventory.FindKind(entity.KindHeal); potion != nil {
			ap.path = nil
			return parser.Command{Verb: parser.VerbUse, Arg: potion.Name}
		}
	}

	// Fight whatever stands next to us.
	for _, d := range world.CardinalDirections {
		tile := ap.visible.Tile(ap.player.X+d.X, ap.player.Y+d.Y)
		if tile != nil && tile.Monster != nil {
			ap.path = nil
			return parser.Command{Verb: parser.VerbAttack, Arg: tile.Monster.Name}
		}
	}

	// Loot the tile we stand on.
	if tile := ap.visible.Tile(ap.player.X, ap.player.Y); tile != nil && tile.Item != nil {
		if tile.Item.Kind != entity.KindCursed && tile.Item.Kind != entity.KindJunk {
			ap.path = nil
			return parser.Command{Verb: parser.VerbTake, Arg: tile.Item.Name}
		}
	}

	if cmd, ok := ap.followPath(); ok {
		return cmd
	}

	// Plan a new path: seen items are worth a detour, otherwise head for
	// the nearest unexplored frontier.
	start := world.Point{X: ap.player.X, Y: ap.player.Y}
	if path := ap.searchVisible(start, ap.isWantedItem); path != nil {
		ap.path = path[1:]
	} else if path := ap.searchVisible(start, ap.isFrontier); path != nil {
		ap.path = path[1:]
	}
	if cmd, ok := ap.followPath(); ok {
		return cmd
	}

	return ap.randomMove()
}

// followPath pops the next step off the current path and turns it into a
// move command. Stale paths (blocked or non-adjacent steps) are dropped.
func (ap *AutoPlayer) followPath() (parser.Command, bool) {
	if len(ap.path) == 0 {
		return parser.Command{}, false
	}

	next := ap.path[0]
	direction, ok := deltaDirection(next.X-ap.player.X, next.Y-ap.player.Y)
	if !ok || !ap.walkable(next) {
		ap.path = nil
		return parser.Command{}, false
	}

	ap.path = ap.path[1:]
	return parser.Command{Verb: parser.VerbMove, Arg: direction}, true
}

// walkable reports whether the auto-player believes it can stand on p:
// the tile has been seen, is not a wall, and holds no monster.
func (ap *AutoPlayer) walkable(p world.Point) bool {
	tile := ap.visible.Tile(p.X, p.Y)
	return tile != nil && tile.Explored && tile.Type != world.TileWall && tile.Monster == nil
}

// isWantedItem reports whether a seen item worth picking up lies at p.
func (ap *AutoPlayer) isWantedItem(p world.Point) bool {
	tile := ap.visible.Tile(p.X, p.Y)
	if tile == nil || !tile.Explored || tile.Item == nil {
		return false
	}
	return tile.Item.Kind != entity.KindCursed && tile.Item.Kind != entity.KindJunk
}

// isFrontier reports whether p is an explored floor tile bordering
// unexplored space.
func (ap *AutoPlayer) isFrontier(p world.Point) bool {
	tile := ap.visible.Tile(p.X, p.Y)
	if tile == nil || !tile.Explored || tile.Type == world.TileWall {
		return false
	}
	for _, d := range world.CardinalDirections {
		if n := ap.visible.Tile(p.X+d.X, p.Y+d.Y); n != nil && !n.Explored {
			return true
		}
	}
	return false
}

// searchVisible runs a BFS over the explored part of the map and returns
// the path (including start) to the nearest point satisfying want, or nil.
func (ap *AutoPlayer) searchVisible(start world.Point, want func(world.Point) bool) []world.Point {
	type node struct {
		pos  world.Point
		path []world.Point
	}
	visited := map[world.Point]bool{start: true}
	queue := []node{{pos: start, path: []world.Point{start}}}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr.pos != start && want(curr.pos) {
			return curr.path
		}

		for _, d := range world.CardinalDirections {
			next := world.Point{X: curr.pos.X + d.X, Y: curr.pos.Y + d.Y}
			if visited[next] || !ap.walkable(next) {
				continue
			}
			visited[next] = true
			path := make([]world.Point, len(curr.path), len(curr.path)+1)
			copy(path, curr.path)
			queue = append(queue, node{pos: next, path: append(path, next)})
		}
	}
	return nil
}

// randomMove picks a random walkable direction, or quits when the
// auto-player is completely stuck with nothing left to do.
func (ap *AutoPlayer) randomMove() parser.Command {
	dirs := ap.rng.Perm(len(world.CardinalDirections))
	for _, i := range dirs {
		d := world.CardinalDirections[i]
		if ap.walkable(world.Point{X: ap.player.X + d.X, Y: ap.player.Y + d.Y}) {
			direction, _ := deltaDirection(d.X, d.Y)
			return parser.Command{Verb: parser.VerbMove, Arg: direction}
		}
	}
	return parser.Command{Verb: parser.VerbQuit}
}
