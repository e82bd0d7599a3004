package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/PhoneMk/treasure-hunt/game/engine"
	"github.com/PhoneMk/treasure-hunt/game/search"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		GameConfig:     session.Config,
	}, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     s.getConfigID(session.Config.Name),
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		GameConfig:     session.Config,
	}, nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, &SessionInfo{
			ID:             sess.ID,
			ConfigName:     s.getConfigID(sess.Config.Name),
			CreatedAt:      sess.CreatedAt,
			LastAccessedAt: sess.LastAccessedAt,
			GameState:      sess.Engine.GetState(),
			GameConfig:     sess.Config,
		})
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Move executes a single move for a session
func (s *gameServiceImpl) Move(ctx context.Context, sessionID, direction string, reset bool) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	events := []GameEvent{}

	if reset {
		sess.Engine.Reset()
		sess.Plan = nil
		events = append(events, GameEvent{
			Type:      "reset",
			Message:   "Game reset to initial state",
			Timestamp: time.Now(),
		})
	}

	prevPos := sess.Engine.GetPlayerPosition()
	prevEnergy := sess.Engine.GetEnergy()
	success := sess.Engine.Move(direction)
	newPos := sess.Engine.GetPlayerPosition()
	state := sess.Engine.GetState()

	// A manual move invalidates any stored plan
	if success && prevPos != newPos {
		sess.Plan = nil
	}

	result := &MoveResult{
		Success:   success,
		GameState: state,
		Message:   state.Message,
		Events:    events,
	}

	if success {
		moveEvents := s.extractMoveEvents(sess, prevPos, newPos, direction)
		result.Events = append(result.Events, moveEvents...)
		result.Step = s.buildStep(1, direction, prevPos, newPos, prevEnergy, state, moveEvents)
	} else {
		result.AttemptedTo = s.buildAttempt(state, prevPos, direction)
	}

	// Enrich state with decision aids
	state.LocalView = state.GenerateLocalView()
	state.EnergyRisk = riskCode(engine.AnalyzeEnergyRisk(state))

	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after move: %v\n", sessionID, err)
	}

	return result, nil
}

// BulkMove executes multiple moves in sequence
func (s *gameServiceImpl) BulkMove(ctx context.Context, sessionID string, moves []string, reset bool) (*BulkMoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	state := sess.Engine.GetState()
	startPos := state.PlayerPos
	startEnergy := state.Energy
	startScore := state.Score

	result := &BulkMoveResult{
		RequestedMoves: len(moves),
		Events:         make([]GameEvent, 0),
		Success:        true,
		StartPos:       startPos,
		StartEnergy:    startEnergy,
		GameOver:       state.GameOver,
		Message:        state.Message,
	}

	if reset {
		sess.Engine.Reset()
		sess.Plan = nil
		result.Events = append(result.Events, GameEvent{
			Type:      "reset",
			Message:   "Game reset to initial state",
			Timestamp: time.Now(),
		})
	}

	// Limit moves to prevent abuse
	if len(moves) > engine.MaxBulkMoves {
		result.Truncated = true
		result.Limit = engine.MaxBulkMoves
		moves = moves[:engine.MaxBulkMoves]
	}

	for i, move := range moves {
		if sess.Engine.IsGameOver() {
			result.StoppedReason = "game_over"
			result.StopReasonCode = "game_over"
			result.StoppedOnMove = result.MovesExecuted + 1
			break
		}

		prevPos := sess.Engine.GetPlayerPosition()
		prevEnergy := sess.Engine.GetEnergy()
		success := sess.Engine.Move(move)

		if !success {
			result.Success = false
			result.StoppedReason = fmt.Sprintf("move %d blocked: %s", i+1, move)
			result.StoppedOnMove = i + 1

			st := sess.Engine.GetState()
			attempt := s.buildAttempt(st, prevPos, move)
			result.AttemptedTo = attempt
			switch {
			case attempt.TileType == "boundary":
				result.StopReasonCode = "blocked_boundary"
			case !attempt.Passable:
				result.StopReasonCode = "blocked_obstacle"
			case st.GameOver:
				result.StopReasonCode = "out_of_energy"
			default:
				result.StopReasonCode = "blocked"
			}
			break
		}

		sess.Plan = nil
		result.MovesExecuted++
		newPos := sess.Engine.GetPlayerPosition()

		events := s.extractMoveEvents(sess, prevPos, newPos, move)
		result.Events = append(result.Events, events...)

		step := s.buildStep(i+1, move, prevPos, newPos, prevEnergy, sess.Engine.GetState(), events)
		result.Steps = append(result.Steps, *step)
	}

	result.GameState = sess.Engine.GetState()

	endState := result.GameState
	result.EndPos = endState.PlayerPos
	result.EndEnergy = endState.Energy
	result.ScoreDelta = endState.Score - startScore
	result.GameOver = endState.GameOver
	result.Message = endState.Message

	if result.GameOver && result.StopReasonCode == "" {
		if endState.Victory {
			result.StopReasonCode = "victory"
			result.GameOverCode = "victory"
		} else {
			result.StopReasonCode = "out_of_energy"
			result.GameOverCode = "out_of_energy"
		}
	}

	// Decision aids
	result.PossibleMoves = sess.Engine.GetPossibleMoves()
	result.EnergyRisk = riskCode(engine.AnalyzeEnergyRisk(endState))
	endState.LocalView = endState.GenerateLocalView()
	endState.EnergyRisk = result.EnergyRisk

	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after bulk moves: %v\n", sessionID, err)
	}

	return result, nil
}

// Reset resets a game session to initial state
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	state := sess.Engine.Reset()
	sess.Plan = nil
	state.LocalView = state.GenerateLocalView()
	state.EnergyRisk = riskCode(engine.AnalyzeEnergyRisk(state))

	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after reset: %v\n", sessionID, err)
	}

	return state, nil
}

// RunSearch runs one strategy on the session's map from its start state.
// The run benchmarks the map itself; it does not move the player.
func (s *gameServiceImpl) RunSearch(ctx context.Context, sessionID, algorithm, heuristic string) (*search.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	algo, err := search.ParseAlgorithm(algorithm)
	if err != nil {
		return nil, err
	}
	return sess.Searcher.Run(algo, search.Heuristic(heuristic))
}

// CompareAlgorithms runs all strategies on the session's map and returns
// their aggregated statistics.
func (s *gameServiceImpl) CompareAlgorithms(ctx context.Context, sessionID, heuristic string) (*search.Comparison, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	return sess.Searcher.CompareAll(search.Heuristic(heuristic))
}

// PlanPath plans a route from the player's current position to the
// treasure and stores it on the session for Advance to follow.
func (s *gameServiceImpl) PlanPath(ctx context.Context, sessionID, algorithm, heuristic string) (*PlanResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	h, err := search.ParseHeuristic(heuristic)
	if err != nil {
		return nil, err
	}

	state := sess.Engine.GetState()
	from := state.PlayerPos
	to := sess.Searcher.Grid().Treasure()

	var path []engine.Position
	var stats search.PathStats

	switch algorithm {
	case "bfs":
		path, stats = sess.Searcher.BFSPath(from, to)
	case "astar":
		path, stats = sess.Searcher.AStarPath(from, to, h)
	case "", "astar_with_food":
		algorithm = "astar_with_food"
		eaten := s.eatenFoodSet(sess)
		path, stats = sess.Searcher.PlanWithFood(from, to, eaten, state.Energy, h)
	default:
		return nil, fmt.Errorf("unknown planner '%s' (want bfs, astar, or astar_with_food)", algorithm)
	}

	result := &PlanResult{
		Found:     path != nil,
		Algorithm: algorithm,
		Path:      path,
		Stats:     stats,
	}

	if path != nil {
		// Store the steps still to take; the first entry is the player's tile
		sess.Plan = path[1:]
		result.Remaining = len(sess.Plan)
	} else {
		sess.Plan = nil
	}

	return result, nil
}

// Advance moves the player one step along the stored plan.
func (s *gameServiceImpl) Advance(ctx context.Context, sessionID string) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if len(sess.Plan) == 0 {
		return nil, fmt.Errorf("no plan for session %s: call plan first", sessionID)
	}

	next := sess.Plan[0]
	prevPos := sess.Engine.GetPlayerPosition()
	prevEnergy := sess.Engine.GetEnergy()
	success := sess.Engine.MoveTo(next)
	state := sess.Engine.GetState()

	result := &MoveResult{
		Success:   success,
		GameState: state,
		Message:   state.Message,
	}

	if success {
		sess.Plan = sess.Plan[1:]
		events := s.extractMoveEvents(sess, prevPos, next, "advance")
		result.Events = events
		result.Step = s.buildStep(1, "advance", prevPos, next, prevEnergy, state, events)
	} else {
		// The map cannot change underneath a plan, but energy can run out
		sess.Plan = nil
		result.AttemptedTo = &AttemptInfo{X: next.X, Y: next.Y, Passable: state.CanMoveTo(next.X, next.Y)}
	}

	state.LocalView = state.GenerateLocalView()
	state.EnergyRisk = riskCode(engine.AnalyzeEnergyRisk(state))

	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after advance: %v\n", sessionID, err)
	}

	return result, nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	state := sess.Engine.GetState()
	state.LocalView = state.GenerateLocalView()
	state.EnergyRisk = riskCode(engine.AnalyzeEnergyRisk(state))
	return state, nil
}

// GetMoveHistory returns paginated move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.Engine.GetMoveHistory()
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var moves []engine.MoveHistoryEntry
	if opts.Order == "desc" {
		// Most recent first
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			moves = append(moves, history[i])
		}
	} else {
		if start < total {
			moves = history[start:end]
		}
	}

	if moves == nil {
		moves = []engine.MoveHistoryEntry{}
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns available game configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific game configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a game configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// eatenFoodSet maps the session's eaten-food IDs onto the grid's food
// index so planning cannot count collected foods twice.
func (s *gameServiceImpl) eatenFoodSet(sess *Session) engine.FoodSet {
	var eaten engine.FoodSet
	grid := sess.Searcher.Grid()
	state := sess.Engine.GetState()
	for i, pos := range grid.FoodPositions() {
		cell := state.Grid[pos.Y][pos.X]
		if cell.ID != "" && state.FoodsEaten[cell.ID] {
			eaten = eaten.With(i)
		}
	}
	return eaten
}

// extractMoveEvents generates events from a move
func (s *gameServiceImpl) extractMoveEvents(sess *Session, prevPos, newPos engine.Position, direction string) []GameEvent {
	events := []GameEvent{}
	state := sess.Engine.GetState()

	events = append(events, GameEvent{
		Type:      "move",
		Message:   fmt.Sprintf("Moved %s to (%d,%d)", direction, newPos.X, newPos.Y),
		Timestamp: time.Now(),
		Position:  newPos,
	})

	// Blocked moves generate no further events
	if prevPos.X == newPos.X && prevPos.Y == newPos.Y {
		return events
	}

	if newPos.Y >= 0 && newPos.Y < len(state.Grid) &&
		newPos.X >= 0 && newPos.X < len(state.Grid[0]) {
		cell := state.Grid[newPos.Y][newPos.X]
		if cell.Type == engine.Food && cell.Collected {
			events = append(events, GameEvent{
				Type:      "food_collected",
				Message:   fmt.Sprintf("Food %s collected! Energy: %d/%d", cell.ID, state.Energy, state.MaxEnergy),
				Timestamp: time.Now(),
				Position:  newPos,
			})
		}
	}

	if state.GameOver {
		if state.Victory {
			events = append(events, GameEvent{
				Type:      "victory",
				Message:   "Victory! Treasure found!",
				Timestamp: time.Now(),
			})
		} else {
			events = append(events, GameEvent{
				Type:      "game_over",
				Message:   state.Message,
				Timestamp: time.Now(),
			})
		}
	}

	return events
}

// buildStep fills the compact trace record for one executed move.
func (s *gameServiceImpl) buildStep(idx int, dir string, from, to engine.Position, energyBefore int, state *engine.GameState, events []GameEvent) *StepInfo {
	tileChar, tileType := "", ""
	if to.Y >= 0 && to.Y < len(state.Grid) && to.X >= 0 && to.X < len(state.Grid[0]) {
		tileChar, tileType = mapCellToCharAndType(state.Grid[to.Y][to.X])
	}
	ate, victory := false, false
	for _, ev := range events {
		switch ev.Type {
		case "food_collected":
			ate = true
		case "victory":
			victory = true
		}
	}
	return &StepInfo{
		Idx:          idx,
		Dir:          dir,
		From:         from,
		To:           to,
		TileChar:     tileChar,
		TileType:     tileType,
		EnergyBefore: energyBefore,
		EnergyAfter:  state.Energy,
		Success:      true,
		Ate:          ate,
		Victory:      victory,
	}
}

// buildAttempt describes the target cell of a failed move.
func (s *gameServiceImpl) buildAttempt(state *engine.GameState, from engine.Position, direction string) *AttemptInfo {
	attemptedX, attemptedY := from.X, from.Y
	switch strings.ToLower(direction) {
	case "up":
		attemptedY--
	case "down":
		attemptedY++
	case "left":
		attemptedX--
	case "right":
		attemptedX++
	}

	gridH := len(state.Grid)
	var tileChar, tileType string
	passable := false
	if attemptedX < 0 || attemptedY < 0 || attemptedY >= gridH || (gridH > 0 && attemptedX >= len(state.Grid[0])) {
		tileChar = "X"
		tileType = "boundary"
	} else {
		cell := state.Grid[attemptedY][attemptedX]
		tileChar, tileType = mapCellToCharAndType(cell)
		passable = cell.Type != engine.Obstacle
	}

	return &AttemptInfo{X: attemptedX, Y: attemptedY, TileChar: tileChar, TileType: tileType, Passable: passable}
}

// mapCellToCharAndType maps a cell to its layout symbol and type name.
func mapCellToCharAndType(cell engine.Cell) (string, string) {
	switch cell.Type {
	case engine.Open:
		return ".", "open"
	case engine.Swamp:
		return "~", "swamp"
	case engine.Hills:
		return "^", "hills"
	case engine.Start:
		return "S", "start"
	case engine.Treasure:
		return "T", "treasure"
	case engine.Food:
		if cell.Collected {
			return ".", "food_collected"
		}
		return "F", "food"
	case engine.Obstacle:
		return "X", "obstacle"
	default:
		return "?", "unknown"
	}
}

// riskCode reduces a risk assessment message to its machine-friendly code.
func riskCode(text string) string {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "critical"):
		return "CRITICAL"
	case strings.Contains(t, "danger"):
		return "DANGER"
	case strings.Contains(t, "caution"):
		return "CAUTION"
	case strings.Contains(t, "low"):
		return "LOW"
	case strings.Contains(t, "safe"):
		return "SAFE"
	default:
		return "UNKNOWN"
	}
}
