package search

import (
	"fmt"
	"time"

	"github.com/PhoneMk/treasure-hunt/game/engine"
)

// Algorithm names a search strategy.
type Algorithm string

const (
	BFS           Algorithm = "bfs"
	DFS           Algorithm = "dfs"
	IDS           Algorithm = "ids"
	Dijkstra      Algorithm = "dijkstra"
	Greedy        Algorithm = "greedy"
	AStar         Algorithm = "astar"
	WeightedAStar Algorithm = "weighted_astar"
)

// DefaultWeight is the inflation factor for weighted A*.
const DefaultWeight = 1.5

// Algorithms returns all strategies in their canonical comparison order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, IDS, Dijkstra, Greedy, AStar, WeightedAStar}
}

// ParseAlgorithm converts a name into an Algorithm, rejecting unknown names.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, algo := range Algorithms() {
		if Algorithm(name) == algo {
			return algo, nil
		}
	}
	return "", fmt.Errorf("unknown algorithm '%s'", name)
}

// informed reports whether the strategy consumes a heuristic.
func (a Algorithm) informed() bool {
	return a == Greedy || a == AStar || a == WeightedAStar
}

// Searcher runs search strategies over one grid. The three input
// dimensions of every run are the grid, the strategy, and the heuristic;
// identical inputs always produce identical results.
type Searcher struct {
	grid *engine.Grid

	// Weight inflates the heuristic in weighted A*.
	Weight float64
	// MaxDepth bounds depth-first expansion and caps iterative
	// deepening rounds. Defaults to Width*Height, enough to reach any
	// state, so it only bites when tightened explicitly.
	MaxDepth int
}

// NewSearcher creates a searcher for the given grid with default tuning.
func NewSearcher(grid *engine.Grid) *Searcher {
	return &Searcher{
		grid:     grid,
		Weight:   DefaultWeight,
		MaxDepth: grid.Width * grid.Height,
	}
}

// Grid returns the grid this searcher operates on.
func (s *Searcher) Grid() *engine.Grid {
	return s.grid
}

// Run executes one strategy from the grid's start to its treasure. The
// heuristic is ignored by the blind strategies and by Dijkstra.
func (s *Searcher) Run(algo Algorithm, h Heuristic) (*Result, error) {
	if algo.informed() || h != "" {
		parsed, err := ParseHeuristic(string(h))
		if err != nil {
			return nil, err
		}
		h = parsed
	}

	switch algo {
	case BFS:
		return s.breadthFirst(), nil
	case DFS:
		return s.depthFirst(), nil
	case IDS:
		return s.iterativeDeepening(), nil
	case Dijkstra:
		return s.dijkstra(), nil
	case Greedy:
		return s.greedyBestFirst(h), nil
	case AStar:
		return s.astar(h), nil
	case WeightedAStar:
		return s.weightedAStar(h), nil
	default:
		return nil, fmt.Errorf("unknown algorithm '%s'", algo)
	}
}

// trivial returns a zero-work success Result when the start is the goal.
func trivial(algo Algorithm, h Heuristic, init engine.State, started time.Time) *Result {
	return &Result{
		Algorithm:     algo,
		Heuristic:     h,
		Success:       true,
		Path:          []engine.Position{init.Pos},
		FinalEnergy:   init.Energy,
		NodesExplored: 1,
		MaxMemory:     1,
		Duration:      time.Since(started),
	}
}
