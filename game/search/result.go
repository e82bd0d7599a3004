package search

import (
	"time"

	"github.com/PhoneMk/treasure-hunt/game/engine"
)

// Result holds the outcome of one strategy's run together with the
// statistics used to compare strategies against each other.
type Result struct {
	Algorithm Algorithm `json:"algorithm"`
	Heuristic Heuristic `json:"heuristic,omitempty"`
	Success   bool      `json:"success"`

	// Path runs start to treasure inclusive when Success is true.
	Path       []engine.Position `json:"path,omitempty"`
	PathLength int               `json:"path_length"` // number of moves
	PathCost   int               `json:"path_cost"`   // summed terrain costs

	FinalEnergy    int `json:"final_energy"`
	FoodsCollected int `json:"foods_collected"`

	NodesExplored int           `json:"nodes_explored"`
	MaxMemory     int           `json:"max_memory"`
	Duration      time.Duration `json:"duration"`
}

// found builds a success Result from the goal node.
func found(algo Algorithm, h Heuristic, goal *node, nodes, maxMem int, started time.Time) *Result {
	path := reconstructPath(goal)
	return &Result{
		Algorithm:      algo,
		Heuristic:      h,
		Success:        true,
		Path:           path,
		PathLength:     len(path) - 1,
		PathCost:       goal.g,
		FinalEnergy:    goal.state.Energy,
		FoodsCollected: goal.state.Foods.Count(),
		NodesExplored:  nodes,
		MaxMemory:      maxMem,
		Duration:       time.Since(started),
	}
}

// exhausted builds a failure Result. An unreachable treasure is a normal
// outcome, not an error.
func exhausted(algo Algorithm, h Heuristic, nodes, maxMem int, started time.Time) *Result {
	return &Result{
		Algorithm:     algo,
		Heuristic:     h,
		Success:       false,
		NodesExplored: nodes,
		MaxMemory:     maxMem,
		Duration:      time.Since(started),
	}
}
