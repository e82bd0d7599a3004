package search

import (
	"fmt"

	"github.com/PhoneMk/treasure-hunt/game/engine"
)

// Heuristic selects the distance estimate used by the informed strategies.
type Heuristic string

const (
	Manhattan Heuristic = "manhattan"
	Euclidean Heuristic = "euclidean"
	Chebyshev Heuristic = "chebyshev"
	Zero      Heuristic = "zero"

	// EnergyAware currently estimates like Chebyshev. Kept as its own name
	// so callers opting into it keep working if the estimate ever accounts
	// for food placement, which must stay admissible.
	EnergyAware Heuristic = "energy_aware"
)

// DefaultHeuristic is used when a caller does not name one. Chebyshev is
// the admissible choice for 8-directional movement.
const DefaultHeuristic = Chebyshev

// Heuristics returns all supported heuristic names.
func Heuristics() []Heuristic {
	return []Heuristic{Manhattan, Euclidean, Chebyshev, Zero, EnergyAware}
}

// ParseHeuristic converts a name into a Heuristic, rejecting unknown names.
func ParseHeuristic(name string) (Heuristic, error) {
	switch Heuristic(name) {
	case Manhattan:
		return Manhattan, nil
	case Euclidean:
		return Euclidean, nil
	case Chebyshev:
		return Chebyshev, nil
	case Zero:
		return Zero, nil
	case EnergyAware:
		return EnergyAware, nil
	case "":
		return DefaultHeuristic, nil
	default:
		return "", fmt.Errorf("unknown heuristic '%s'", name)
	}
}

// Estimate returns the estimated remaining cost from pos to goal, scaled
// by the cheapest per-step terrain cost so the estimate never exceeds the
// true cost when the metric matches the movement model.
func (h Heuristic) Estimate(pos, goal engine.Position, minStepCost int) float64 {
	switch h {
	case Manhattan:
		return float64(pos.ManhattanDistance(goal) * minStepCost)
	case Euclidean:
		return pos.EuclideanDistance(goal) * float64(minStepCost)
	case Chebyshev, EnergyAware:
		return float64(pos.ChebyshevDistance(goal) * minStepCost)
	case Zero:
		return 0
	default:
		return 0
	}
}
