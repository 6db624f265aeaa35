package planner

import (
	"container/heap"

	"pacman/game"
)

// pathNode is one frontier entry of the path search.
type pathNode struct {
	pos      game.Position
	priority int
	index    int
}

// frontier is a min-heap of path nodes keyed on heuristic priority.
type frontier []*pathNode

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool { return f[i].priority < f[j].priority }

func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

func (f *frontier) Push(x any) {
	n := x.(*pathNode)
	n.index = len(*f)
	*f = append(*f, n)
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return node
}

// Successor order matches the selector's row-first bias.
var pathDeltas = [4]struct{ dx, dy int }{
	{1, 0},
	{-1, 0},
	{0, 1},
	{0, -1},
}

// findPath searches the 4-connected grid from start to goal and returns the
// cell sequence from start to goal inclusive, or nil when the goal cannot
// be reached.
//
// The search is greedy best-first: the frontier is ordered by Manhattan
// distance to the goal alone, not by accumulated path length, so the result
// is not guaranteed shortest when the heuristic misleads around obstacles.
// The stamping magnitudes downstream are tuned against exactly these path
// shapes, so the ordering must stay heuristic-only. Each cell enters the
// frontier at most once and keeps the parent that first reached it.
func findPath(s game.State, start, goal game.Position) []game.Position {
	if start.X < 0 || start.X >= game.BoardSize || start.Y < 0 || start.Y >= game.BoardSize {
		return nil
	}
	var seen [game.BoardSize][game.BoardSize]bool
	parent := make(map[game.Position]game.Position)

	fr := &frontier{}
	heap.Init(fr)
	heap.Push(fr, &pathNode{pos: start, priority: game.Manhattan(start, goal)})
	seen[start.X][start.Y] = true

	for fr.Len() > 0 {
		cur := heap.Pop(fr).(*pathNode).pos
		if cur == goal {
			return buildPath(parent, cur)
		}
		for _, d := range pathDeltas {
			nx, ny := cur.X+d.dx, cur.Y+d.dy
			if nx < 0 || ny < 0 {
				continue
			}
			// Off-board reads resolve to Wall, so this also rejects
			// coordinates past the far edge before any indexing below.
			if s.Contents(nx, ny) == game.Wall {
				continue
			}
			if seen[nx][ny] {
				continue
			}
			seen[nx][ny] = true
			next := game.Position{X: nx, Y: ny}
			parent[next] = cur
			heap.Push(fr, &pathNode{pos: next, priority: game.Manhattan(next, goal)})
		}
	}
	return nil
}

// buildPath walks the parent chain from the goal back to the unparented
// start, then reverses it into start-to-goal order.
func buildPath(parent map[game.Position]game.Position, goal game.Position) []game.Position {
	path := []game.Position{goal}
	for cur := goal; ; {
		p, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
