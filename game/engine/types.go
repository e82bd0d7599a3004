package engine

import "math"

// TerrainType represents different types of grid cells
type TerrainType string

const (
	Open     TerrainType = "open"
	Swamp    TerrainType = "swamp"
	Hills    TerrainType = "hills"
	Start    TerrainType = "start"
	Treasure TerrainType = "treasure"
	Food     TerrainType = "food"
	Obstacle TerrainType = "obstacle"

	// Validation constants
	MinGridSize = 2
	MaxGridSize = 64
	MinEnergy   = 1
	MaxFoods    = 64

	MaxBulkMoves = 100

	WebSocketBufferSize = 256
)

// Terrain symbols as they appear in map layouts
const (
	SymbolOpen     = '.'
	SymbolSwamp    = '~'
	SymbolHills    = '^'
	SymbolStart    = 'S'
	SymbolTreasure = 'T'
	SymbolFood     = 'F'
	SymbolObstacle = 'X'
)

// DefaultTerrainCosts is the per-step energy cost of entering each terrain,
// used when a config does not override terrain_costs. Obstacles are never
// traversable and carry no finite cost.
var DefaultTerrainCosts = map[TerrainType]int{
	Open:     1,
	Swamp:    2,
	Hills:    3,
	Start:    1,
	Treasure: 1,
	Food:     1,
}

// Cell represents a single grid cell
type Cell struct {
	Type      TerrainType `json:"type"`
	Collected bool        `json:"collected,omitempty"` // for foods and the treasure
	ID        string      `json:"id,omitempty"`        // unique ID for foods
}

// Position represents x,y coordinates
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ManhattanDistance returns |dx| + |dy|.
func (p Position) ManhattanDistance(o Position) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

// EuclideanDistance returns the straight-line distance.
func (p Position) EuclideanDistance(o Position) float64 {
	dx := float64(p.X - o.X)
	dy := float64(p.Y - o.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// ChebyshevDistance returns max(|dx|, |dy|), the minimum number of
// 8-directional steps between the two positions.
func (p Position) ChebyshevDistance(o Position) int {
	dx := abs(p.X - o.X)
	dy := abs(p.Y - o.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// GameConfig represents the game configuration from JSON
type GameConfig struct {
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Layout         []string          `json:"layout"`
	Legend         map[string]string `json:"legend,omitempty"`
	TerrainCosts   map[string]int    `json:"terrain_costs,omitempty"` // symbol -> cost override
	StartingEnergy int               `json:"starting_energy"`
	MaxEnergy      int               `json:"max_energy"`
	FoodEnergy     int               `json:"food_energy"`
	Messages       struct {
		Welcome       string `json:"welcome"`
		TreasureFound string `json:"treasure_found"`
		FoodCollected string `json:"food_collected"`
		Victory       string `json:"victory"`
		OutOfEnergy   string `json:"out_of_energy"`
		CantMove      string `json:"cant_move"`
		EnergyStatus  string `json:"energy_status"`
	} `json:"messages"`
}

// SurroundingCell represents a cell with its absolute position
type SurroundingCell struct {
	X    int         `json:"x"`
	Y    int         `json:"y"`
	Type TerrainType `json:"type"`
}

// GameState represents the complete interactive game state for a session.
// Search-space states are the separate State value type.
type GameState struct {
	Grid        [][]Cell           `json:"grid"`
	PlayerPos   Position           `json:"player_pos"`
	Energy      int                `json:"energy"`
	MaxEnergy   int                `json:"max_energy"`
	Score       int                `json:"score"` // foods collected
	FoodsEaten  map[string]bool    `json:"foods_eaten"`
	Message     string             `json:"message"`
	GameOver    bool               `json:"game_over"`
	Victory     bool               `json:"victory"`
	ConfigName  string             `json:"config_name"`
	MoveHistory []MoveHistoryEntry `json:"move_history"`
	TotalMoves  int                `json:"total_moves"`
	LocalView   []SurroundingCell  `json:"local_view,omitempty"`
	EnergyRisk  string             `json:"energy_risk,omitempty"`
}

// MoveHistoryEntry represents a single move in the game history
type MoveHistoryEntry struct {
	Action       string   `json:"action"`
	FromPosition Position `json:"from_position"`
	ToPosition   Position `json:"to_position"`
	Energy       int      `json:"energy"`
	Timestamp    int64    `json:"timestamp"`
	Success      bool     `json:"success"`
	MoveNumber   int      `json:"move_number"`
}

// abs returns the absolute value of x
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
