package mapalg

import (
	"container/heap"

	"github.com/markusos/llmania/internal/world"
)

// FindPathBFS returns the shortest path from start to goal over walkable
// tiles, including both endpoints, or nil when no path exists. Tiles
// occupied by monsters are not pathed through, except for the goal itself
// so a pursuer can walk up to its target.
func FindPathBFS(m *world.Map, start, goal world.Point) []world.Point {
	type node struct {
		pos  world.Point
		path []world.Point
	}

	visited := map[world.Point]bool{start: true}
	queue := []node{{pos: start, path: []world.Point{start}}}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr.pos == goal {
			return curr.path
		}

		for _, d := range world.CardinalDirections {
			next := world.Point{X: curr.pos.X + d.X, Y: curr.pos.Y + d.Y}
			if visited[next] || !m.IsWalkable(next.X, next.Y) {
				continue
			}
			if tile := m.Tile(next.X, next.Y); tile.Monster != nil && next != goal {
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

// AStar returns the shortest path from start to goal using A* with a
// Manhattan heuristic, including both endpoints, or nil when no path
// exists. Blocking rules match FindPathBFS.
func AStar(m *world.Map, start, goal world.Point) []world.Point {
	open := &nodeHeap{}
	heap.Init(open)
	heap.Push(open, &astarNode{pos: start, h: manhattan(start, goal)})

	gScore := map[world.Point]int{start: 0}
	cameFrom := map[world.Point]world.Point{}
	closed := map[world.Point]bool{}

	for open.Len() > 0 {
		curr := heap.Pop(open).(*astarNode)
		if curr.pos == goal {
			return reconstruct(cameFrom, goal)
		}
		if closed[curr.pos] {
			continue
		}
		closed[curr.pos] = true

		for _, d := range world.CardinalDirections {
			next := world.Point{X: curr.pos.X + d.X, Y: curr.pos.Y + d.Y}
			if !m.IsWalkable(next.X, next.Y) {
				continue
			}
			if tile := m.Tile(next.X, next.Y); tile.Monster != nil && next != goal {
				continue
			}
			tentative := gScore[curr.pos] + 1
			if g, ok := gScore[next]; ok && tentative >= g {
				continue
			}
			gScore[next] = tentative
			cameFrom[next] = curr.pos
			heap.Push(open, &astarNode{pos: next, g: tentative, h: manhattan(next, goal)})
		}
	}
	return nil
}

// FurthestPoint runs a BFS over floor tiles inside the map border and
// returns the reachable tile with the greatest path distance from start.
// It returns start itself when start is not an interior floor tile.
func FurthestPoint(m *world.Map, start world.Point) world.Point {
	if !inInterior(m, start) {
		return start
	}
	if tile := m.Tile(start.X, start.Y); tile == nil || tile.Type != world.TileFloor {
		return start
	}

	type node struct {
		pos  world.Point
		dist int
	}
	visited := map[world.Point]bool{start: true}
	queue := []node{{pos: start}}

	furthest := start
	maxDist := 0

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr.dist > maxDist {
			maxDist = curr.dist
			furthest = curr.pos
		}

		for _, d := range world.CardinalDirections {
			next := world.Point{X: curr.pos.X + d.X, Y: curr.pos.Y + d.Y}
			if !inInterior(m, next) || visited[next] {
				continue
			}
			if tile := m.Tile(next.X, next.Y); tile != nil && tile.Type == world.TileFloor {
				visited[next] = true
				queue = append(queue, node{pos: next, dist: curr.dist + 1})
			}
		}
	}
	return furthest
}

// CarveLine turns every tile on a straight line between start and end into
// floor. The stepping is Bresenham-like: equal increments along the longer
// axis, rounded to the grid.
func CarveLine(m *world.Map, start, end world.Point) {
	dx := end.X - start.X
	dy := end.Y - start.Y
	steps := max(abs(dx), abs(dy))

	if steps == 0 {
		m.SetTileType(start.X, start.Y, world.TileFloor)
		return
	}

	xInc := float64(dx) / float64(steps)
	yInc := float64(dy) / float64(steps)
	for i := 0; i <= steps; i++ {
		x := start.X + int(roundHalfAway(float64(i)*xInc))
		y := start.Y + int(roundHalfAway(float64(i)*yInc))
		if m.InBounds(x, y) {
			m.SetTileType(x, y, world.TileFloor)
		}
	}
}

func reconstruct(cameFrom map[world.Point]world.Point, goal world.Point) []world.Point {
	path := []world.Point{goal}
	curr := goal
	for {
		prev, ok := cameFrom[curr]
		if !ok {
			break
		}
		path = append(path, prev)
		curr = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func manhattan(a, b world.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func roundHalfAway(f float64) float64 {
	if f < 0 {
		return float64(int(f - 0.5))
	}
	return float64(int(f + 0.5))
}

// astarNode is an entry in the A* open set.
type astarNode struct {
	pos  world.Point
	g, h int
}

type nodeHeap []*astarNode

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].g+h[i].h < h[j].g+h[j].h }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*astarNode)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
