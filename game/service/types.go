package service

import (
	"time"

	"github.com/PhoneMk/treasure-hunt/game/engine"
	"github.com/PhoneMk/treasure-hunt/game/search"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// MoveResult contains the result of a move operation
type MoveResult struct {
	Success     bool              `json:"success"`
	GameState   *engine.GameState `json:"game_state"`
	Message     string            `json:"message"`
	Events      []GameEvent       `json:"events,omitempty"`
	Step        *StepInfo         `json:"step,omitempty"`
	AttemptedTo *AttemptInfo      `json:"attempted_to,omitempty"`
}

// BulkMoveResult contains the result of multiple moves
type BulkMoveResult struct {
	// Summary
	MovesExecuted  int               `json:"moves_executed"`
	RequestedMoves int               `json:"requested_moves"`
	Success        bool              `json:"success"`
	GameState      *engine.GameState `json:"game_state"`
	Events         []GameEvent       `json:"events"`
	StoppedReason  string            `json:"stopped_reason,omitempty"`
	StopReasonCode string            `json:"stop_reason_code,omitempty"` // blocked_boundary|blocked_obstacle|out_of_energy|game_over|victory
	StoppedOnMove  int               `json:"stopped_on_move,omitempty"`  // 1-based index of the move that caused stop
	Truncated      bool              `json:"truncated,omitempty"`
	Limit          int               `json:"limit,omitempty"`

	// Start/end snapshot
	StartPos    engine.Position `json:"start_pos"`
	EndPos      engine.Position `json:"end_pos"`
	StartEnergy int             `json:"start_energy"`
	EndEnergy   int             `json:"end_energy"`
	ScoreDelta  int             `json:"score_delta"`

	// Per-step compact trace (only for this call)
	Steps []StepInfo `json:"steps,omitempty"`

	// Failure diagnostics
	AttemptedTo *AttemptInfo `json:"attempted_to,omitempty"`

	// Final status aids
	GameOver      bool     `json:"game_over"`
	GameOverCode  string   `json:"game_over_code,omitempty"`
	Message       string   `json:"message,omitempty"`
	PossibleMoves []string `json:"possible_moves,omitempty"`
	EnergyRisk    string   `json:"energy_risk,omitempty"`
}

// StepInfo is a compact record for each executed move in the bulk call
type StepInfo struct {
	Idx          int             `json:"idx"`
	Dir          string          `json:"dir"`
	From         engine.Position `json:"from"`
	To           engine.Position `json:"to"`
	TileChar     string          `json:"tile_char"`
	TileType     string          `json:"tile_type"`
	EnergyBefore int             `json:"energy_before"`
	EnergyAfter  int             `json:"energy_after"`
	Success      bool            `json:"success"`
	Ate          bool            `json:"ate,omitempty"`
	Victory      bool            `json:"victory,omitempty"`
}

// AttemptInfo details the first failed target cell attempted
type AttemptInfo struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	TileChar string `json:"tile_char"`
	TileType string `json:"tile_type"`
	Passable bool   `json:"passable"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string          `json:"type"` // "move", "food_collected", "game_over", "victory", "reset", "plan", "advance"
	Message   string          `json:"message"`
	Timestamp time.Time       `json:"timestamp"`
	Position  engine.Position `json:"position,omitempty"`
}

// PlanResult contains a planned route from the player's current position
// to the treasure, together with the planner's statistics.
type PlanResult struct {
	Found     bool              `json:"found"`
	Algorithm string            `json:"algorithm"`
	Path      []engine.Position `json:"path,omitempty"`
	Stats     search.PathStats  `json:"stats"`
	// Remaining is how many steps of the stored plan are left to advance.
	Remaining int `json:"remaining"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveHistoryEntry `json:"moves"`
	TotalMoves  int                       `json:"total_moves"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"page_size"`
	TotalPages  int                       `json:"total_pages"`
	HasNext     bool                      `json:"has_next"`
	HasPrevious bool                      `json:"has_previous"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename       string `json:"filename,omitempty"`
	ConfigID       string `json:"config_id"` // The identifier to use for session creation
	Name           string `json:"name"`      // Display name
	Description    string `json:"description"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	StartingEnergy int    `json:"starting_energy"`
	MaxEnergy      int    `json:"max_energy"`
	Foods          int    `json:"foods"`
	BuiltIn        bool   `json:"built_in,omitempty"`
}
