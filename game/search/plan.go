package search

import (
	"time"

	"github.com/PhoneMk/treasure-hunt/game/engine"
)

// PathStats summarizes one point-to-point planning run.
type PathStats struct {
	NodesVisited    int           `json:"nodes_visited"`
	PathLength      int           `json:"path_length"`
	TotalEnergyCost int           `json:"total_energy_cost"`
	SearchTime      time.Duration `json:"search_time"`
}

// pathCost sums the terrain cost of entering every tile after the first.
func (s *Searcher) pathCost(path []engine.Position) int {
	total := 0
	for _, pos := range path[1:] {
		if c, ok := s.grid.CostAt(pos); ok {
			total += c
		}
	}
	return total
}

// BFSPath finds the fewest-moves route between two tiles, ignoring
// energy. Returns a nil path when the goal is unreachable.
func (s *Searcher) BFSPath(from, to engine.Position) ([]engine.Position, PathStats) {
	started := time.Now()
	if from == to {
		return []engine.Position{from}, PathStats{SearchTime: time.Since(started)}
	}

	queue := []*node{{state: engine.State{Pos: from}}}
	visited := map[engine.Position]bool{from: true}
	nodes := 0

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		nodes++

		for _, next := range s.grid.Neighbors(n.state.Pos) {
			if visited[next] {
				continue
			}
			visited[next] = true
			child := &node{state: engine.State{Pos: next}, parent: n, depth: n.depth + 1}
			if next == to {
				path := reconstructPath(child)
				return path, PathStats{
					NodesVisited:    nodes,
					PathLength:      len(path) - 1,
					TotalEnergyCost: s.pathCost(path),
					SearchTime:      time.Since(started),
				}
			}
			queue = append(queue, child)
		}
	}

	return nil, PathStats{NodesVisited: nodes, SearchTime: time.Since(started)}
}

// AStarPath finds the cheapest route between two tiles by terrain cost,
// ignoring energy. Returns a nil path when the goal is unreachable.
func (s *Searcher) AStarPath(from, to engine.Position, h Heuristic) ([]engine.Position, PathStats) {
	started := time.Now()
	if from == to {
		return []engine.Position{from}, PathStats{SearchTime: time.Since(started)}
	}

	minCost := s.grid.MinStepCost()
	fr := newFrontier()
	fr.push(&node{state: engine.State{Pos: from}}, h.Estimate(from, to, minCost))
	gScore := map[engine.Position]int{from: 0}
	nodes := 0

	for fr.len() > 0 {
		n := fr.pop()
		nodes++

		if n.state.Pos == to {
			path := reconstructPath(n)
			return path, PathStats{
				NodesVisited:    nodes,
				PathLength:      len(path) - 1,
				TotalEnergyCost: n.g,
				SearchTime:      time.Since(started),
			}
		}

		for _, next := range s.grid.Neighbors(n.state.Pos) {
			cost, ok := s.grid.CostAt(next)
			if !ok {
				continue
			}
			ng := n.g + cost
			if best, seen := gScore[next]; seen && ng >= best {
				continue
			}
			gScore[next] = ng
			child := &node{state: engine.State{Pos: next}, parent: n, g: ng, depth: n.depth + 1}
			fr.push(child, float64(ng)+h.Estimate(next, to, minCost))
		}
	}

	return nil, PathStats{NodesVisited: nodes, SearchTime: time.Since(started)}
}

// PlanWithFood finds the cheapest energy-feasible route from an arbitrary
// mid-game position, accounting for food pickups along the way. Foods
// already eaten are passed in so the plan cannot collect them twice.
// Returns a nil path when no feasible route exists.
func (s *Searcher) PlanWithFood(from, to engine.Position, eaten engine.FoodSet, energy int, h Heuristic) ([]engine.Position, PathStats) {
	init := engine.State{Pos: from, Energy: energy, Foods: eaten}
	res := s.astarSearch(AStar, init, to, 1.0, h)
	stats := PathStats{
		NodesVisited:    res.NodesExplored,
		PathLength:      res.PathLength,
		TotalEnergyCost: res.PathCost,
		SearchTime:      res.Duration,
	}
	if !res.Success {
		return nil, stats
	}
	return res.Path, stats
}
