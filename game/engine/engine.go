package engine

import "fmt"

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Reset() *GameState
	IsGameOver() bool
	IsVictory() bool
	GetScore() int
	GetEnergy() int
	GetPlayerPosition() Position

	// Movement operations
	Move(direction string) bool
	MoveTo(pos Position) bool
	CanMove(direction string) bool
	GetPossibleMoves() []string

	// Configuration
	GetConfig() *GameConfig
	SetConfig(config *GameConfig) error

	// History
	GetMoveHistory() []MoveHistoryEntry
	GetLastMove() *MoveHistoryEntry

	// Local view
	GetLocalView() []SurroundingCell

	// Foods and objectives
	GetTotalFoods() int
	GetFoodsEaten() map[string]bool
	GetRemainingFoods() int
}

// GameEngine implements the Engine interface
type GameEngine struct {
	state  *GameState
	config *GameConfig
}

// NewEngine creates a new game engine with the provided configuration
func NewEngine(config *GameConfig) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	engine := &GameEngine{
		config: config,
		state:  InitGameStateFromConfig(config),
	}

	return engine, nil
}

// NewEngineWithDefaults creates a new game engine with the built-in default map
func NewEngineWithDefaults() *GameEngine {
	engine := &GameEngine{
		config: DefaultConfig(),
	}
	engine.state = InitGameStateFromConfig(engine.config)
	return engine
}

// GetState returns the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// SetState sets the game state (used for persistence loading)
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	e.state = state
	return nil
}

// Reset resets the game to initial state
func (e *GameEngine) Reset() *GameState {
	// Preserve cumulative history and totals across resets
	prevHistory := e.state.MoveHistory
	prevTotal := e.state.TotalMoves

	e.state = InitGameStateFromConfig(e.config)

	e.state.MoveHistory = prevHistory
	e.state.TotalMoves = prevTotal

	return e.state
}

// IsGameOver returns whether the game is over
func (e *GameEngine) IsGameOver() bool {
	return e.state.GameOver
}

// IsVictory returns whether the player has won
func (e *GameEngine) IsVictory() bool {
	return e.state.Victory
}

// GetScore returns the current score
func (e *GameEngine) GetScore() int {
	return e.state.Score
}

// GetEnergy returns the current energy level
func (e *GameEngine) GetEnergy() int {
	return e.state.Energy
}

// GetPlayerPosition returns the current player position
func (e *GameEngine) GetPlayerPosition() Position {
	return e.state.PlayerPos
}

// Move attempts to move the player in the specified direction
func (e *GameEngine) Move(direction string) bool {
	if e.config == nil {
		return false
	}

	// Store previous position for history
	prevPos := e.state.PlayerPos
	success := e.state.MovePlayer(direction, e.config)

	// Add to history
	e.state.AddMoveToHistory(direction, prevPos, e.state.PlayerPos, success)

	return success
}

// MoveTo attempts to move the player to an adjacent position, diagonals
// included. Used when replaying a planned path step by step.
func (e *GameEngine) MoveTo(pos Position) bool {
	if e.config == nil {
		return false
	}

	prevPos := e.state.PlayerPos
	success := e.state.MoveToPosition(pos, e.config)

	e.state.AddMoveToHistory(fmt.Sprintf("step(%d,%d)", pos.X, pos.Y), prevPos, e.state.PlayerPos, success)

	return success
}

// CanMove checks if the player can move in the specified direction
func (e *GameEngine) CanMove(direction string) bool {
	if e.state.GameOver {
		return false
	}

	newX, newY := e.state.PlayerPos.X, e.state.PlayerPos.Y

	switch direction {
	case "up":
		newY--
	case "down":
		newY++
	case "left":
		newX--
	case "right":
		newX++
	default:
		return false
	}

	if !e.state.CanMoveTo(newX, newY) {
		return false
	}
	cost := terrainCost(e.config, e.state.Grid[newY][newX].Type)
	return e.state.Energy-cost >= 0
}

// GetPossibleMoves returns all valid directions the player can move
func (e *GameEngine) GetPossibleMoves() []string {
	directions := []string{"up", "down", "left", "right"}
	var possible []string

	for _, dir := range directions {
		if e.CanMove(dir) {
			possible = append(possible, dir)
		}
	}

	return possible
}

// GetConfig returns the current game configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// SetConfig sets a new game configuration and resets the game
func (e *GameEngine) SetConfig(config *GameConfig) error {
	if err := ValidateGameConfig(config); err != nil {
		return err
	}

	e.config = config
	e.state = InitGameStateFromConfig(config)
	return nil
}

// GetMoveHistory returns the complete move history
func (e *GameEngine) GetMoveHistory() []MoveHistoryEntry {
	return e.state.MoveHistory
}

// GetLastMove returns the last move made, or nil if no moves
func (e *GameEngine) GetLastMove() *MoveHistoryEntry {
	if len(e.state.MoveHistory) == 0 {
		return nil
	}
	return &e.state.MoveHistory[len(e.state.MoveHistory)-1]
}

// GetLocalView returns the local view around the player
func (e *GameEngine) GetLocalView() []SurroundingCell {
	return e.state.GenerateLocalView()
}

// GetTotalFoods returns the total number of foods on the map
func (e *GameEngine) GetTotalFoods() int {
	return CountTotalFoods(e.state.Grid)
}

// GetFoodsEaten returns the map of eaten foods
func (e *GameEngine) GetFoodsEaten() map[string]bool {
	return e.state.FoodsEaten
}

// GetRemainingFoods returns the number of foods not yet eaten
func (e *GameEngine) GetRemainingFoods() int {
	return e.GetTotalFoods() - len(e.state.FoodsEaten)
}

// BulkMove executes multiple moves in sequence, returning success status for each
func (e *GameEngine) BulkMove(moves []string) []bool {
	results := make([]bool, 0, len(moves))

	for _, direction := range moves {
		// Stop if game is over
		if e.IsGameOver() {
			break
		}

		success := e.Move(direction)
		results = append(results, success)
	}

	return results
}
