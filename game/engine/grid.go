package engine

import (
	"errors"
	"fmt"
)

// Defaults applied when a config leaves energy parameters unset.
const (
	DefaultStartingEnergy = 12
	DefaultMaxEnergy      = 20
	DefaultFoodEnergy     = 5
)

var (
	ErrNoStart      = errors.New("layout has no start cell")
	ErrNoTreasure   = errors.New("layout has no treasure cell")
	ErrMultiStart   = errors.New("layout has more than one start cell")
	ErrTooManyFoods = errors.New("layout has too many food cells")
)

// Grid is the immutable search-space view of a map: terrain, costs, the
// start and treasure positions, and an index of food positions. Mutable
// session state (collected foods, player position) lives in GameState;
// search states are the State value type.
type Grid struct {
	Width  int
	Height int

	terrain  [][]TerrainType
	costs    map[TerrainType]int
	foodAt   map[Position]int // position -> food index
	foodPos  []Position       // food index -> position
	start    Position
	treasure Position

	StartingEnergy int
	MaxEnergy      int
	FoodEnergy     int
}

// terrainForSymbol maps a layout symbol to its terrain type.
func terrainForSymbol(ch byte) (TerrainType, error) {
	switch ch {
	case SymbolOpen:
		return Open, nil
	case SymbolSwamp:
		return Swamp, nil
	case SymbolHills:
		return Hills, nil
	case SymbolStart:
		return Start, nil
	case SymbolTreasure:
		return Treasure, nil
	case SymbolFood:
		return Food, nil
	case SymbolObstacle:
		return Obstacle, nil
	default:
		return "", fmt.Errorf("unknown terrain symbol %q", string(ch))
	}
}

// NewGrid builds a search grid from a validated config. The layout must
// contain exactly one start and one treasure, and at most MaxFoods foods.
func NewGrid(config *GameConfig) (*Grid, error) {
	if len(config.Layout) == 0 {
		return nil, errors.New("layout is empty")
	}

	height := len(config.Layout)
	width := len(config.Layout[0])

	g := &Grid{
		Width:          width,
		Height:         height,
		terrain:        make([][]TerrainType, height),
		costs:          make(map[TerrainType]int, len(DefaultTerrainCosts)),
		foodAt:         make(map[Position]int),
		StartingEnergy: config.StartingEnergy,
		MaxEnergy:      config.MaxEnergy,
		FoodEnergy:     config.FoodEnergy,
	}
	if g.StartingEnergy <= 0 {
		g.StartingEnergy = DefaultStartingEnergy
	}
	if g.MaxEnergy <= 0 {
		g.MaxEnergy = DefaultMaxEnergy
	}
	if g.FoodEnergy <= 0 {
		g.FoodEnergy = DefaultFoodEnergy
	}

	for t, c := range DefaultTerrainCosts {
		g.costs[t] = c
	}
	for symbol, cost := range config.TerrainCosts {
		if len(symbol) != 1 {
			return nil, fmt.Errorf("terrain cost symbol %q is not a single character", symbol)
		}
		t, err := terrainForSymbol(symbol[0])
		if err != nil {
			return nil, err
		}
		if t == Obstacle {
			continue // obstacles are never traversable
		}
		if cost < 1 {
			return nil, fmt.Errorf("terrain cost for %q must be at least 1, got %d", symbol, cost)
		}
		g.costs[t] = cost
	}

	startCount, treasureCount := 0, 0
	for y, row := range config.Layout {
		if len(row) != width {
			return nil, fmt.Errorf("layout row %d has width %d, expected %d", y, len(row), width)
		}
		g.terrain[y] = make([]TerrainType, width)
		for x := 0; x < width; x++ {
			t, err := terrainForSymbol(row[x])
			if err != nil {
				return nil, fmt.Errorf("layout row %d col %d: %w", y, x, err)
			}
			g.terrain[y][x] = t
			pos := Position{X: x, Y: y}
			switch t {
			case Start:
				startCount++
				g.start = pos
			case Treasure:
				treasureCount++
				g.treasure = pos
			case Food:
				g.foodAt[pos] = len(g.foodPos)
				g.foodPos = append(g.foodPos, pos)
			}
		}
	}

	if startCount == 0 {
		return nil, ErrNoStart
	}
	if startCount > 1 {
		return nil, ErrMultiStart
	}
	if treasureCount == 0 {
		return nil, ErrNoTreasure
	}
	if len(g.foodPos) > MaxFoods {
		return nil, fmt.Errorf("%w: %d foods, limit %d", ErrTooManyFoods, len(g.foodPos), MaxFoods)
	}

	return g, nil
}

// InBounds reports whether pos lies on the grid.
func (g *Grid) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < g.Width && pos.Y >= 0 && pos.Y < g.Height
}

// TerrainAt returns the terrain at pos. Out-of-bounds positions are
// treated as obstacles.
func (g *Grid) TerrainAt(pos Position) TerrainType {
	if !g.InBounds(pos) {
		return Obstacle
	}
	return g.terrain[pos.Y][pos.X]
}

// CostAt returns the energy cost of stepping onto pos. The second return
// is false for obstacles and out-of-bounds positions.
func (g *Grid) CostAt(pos Position) (int, bool) {
	t := g.TerrainAt(pos)
	if t == Obstacle {
		return 0, false
	}
	return g.costs[t], true
}

// MinStepCost returns the cheapest per-step terrain cost on this grid.
// Heuristics are scaled by it so they stay admissible under cost
// overrides.
func (g *Grid) MinStepCost() int {
	min := 0
	for _, c := range g.costs {
		if min == 0 || c < min {
			min = c
		}
	}
	if min == 0 {
		min = 1
	}
	return min
}

// Start returns the start position.
func (g *Grid) Start() Position { return g.start }

// Treasure returns the treasure position.
func (g *Grid) Treasure() Position { return g.treasure }

// FoodCount returns the number of foods on the grid.
func (g *Grid) FoodCount() int { return len(g.foodPos) }

// FoodIndex returns the food index at pos, or -1 if pos holds no food.
func (g *Grid) FoodIndex(pos Position) int {
	if i, ok := g.foodAt[pos]; ok {
		return i
	}
	return -1
}

// FoodPositions returns the positions of all foods in index order.
func (g *Grid) FoodPositions() []Position {
	out := make([]Position, len(g.foodPos))
	copy(out, g.foodPos)
	return out
}

// InitialState returns the search state the agent begins in.
func (g *Grid) InitialState() State {
	return State{Pos: g.start, Energy: g.StartingEnergy}
}

// IsGoal reports whether s stands on the treasure.
func (g *Grid) IsGoal(s State) bool {
	return s.Pos == g.treasure
}

// directions covers all eight neighbors, cardinal first.
var directions = [8][2]int{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// Successor is a reachable neighbor state together with the terrain cost
// paid to step into it.
type Successor struct {
	State    State
	StepCost int
}

// Expand generates the successor states of s in a fixed direction order.
// A move is pruned when the target is an obstacle, out of bounds, or
// would leave the agent with negative energy. Stepping onto an uneaten
// food restores FoodEnergy, capped at MaxEnergy, and marks it eaten.
func (g *Grid) Expand(s State) []Successor {
	out := make([]Successor, 0, 8)
	for _, d := range directions {
		next := Position{X: s.Pos.X + d[0], Y: s.Pos.Y + d[1]}
		cost, ok := g.CostAt(next)
		if !ok {
			continue
		}
		energy := s.Energy - cost
		if energy < 0 {
			continue
		}
		foods := s.Foods
		if i := g.FoodIndex(next); i >= 0 && !foods.Has(i) {
			foods = foods.With(i)
			energy += g.FoodEnergy
			if energy > g.MaxEnergy {
				energy = g.MaxEnergy
			}
		}
		out = append(out, Successor{
			State:    State{Pos: next, Energy: energy, Foods: foods},
			StepCost: cost,
		})
	}
	return out
}

// Neighbors returns the positions adjacent to pos that are traversable,
// ignoring energy. Used for local views and move validation.
func (g *Grid) Neighbors(pos Position) []Position {
	out := make([]Position, 0, 8)
	for _, d := range directions {
		next := Position{X: pos.X + d[0], Y: pos.Y + d[1]}
		if g.TerrainAt(next) != Obstacle {
			out = append(out, next)
		}
	}
	return out
}
