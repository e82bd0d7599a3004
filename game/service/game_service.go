package service

import (
	"context"
	"time"

	"github.com/PhoneMk/treasure-hunt/game/engine"
	"github.com/PhoneMk/treasure-hunt/game/search"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	Move(ctx context.Context, sessionID, direction string, reset bool) (*MoveResult, error)
	BulkMove(ctx context.Context, sessionID string, moves []string, reset bool) (*BulkMoveResult, error)
	Reset(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Pathfinding
	RunSearch(ctx context.Context, sessionID, algorithm, heuristic string) (*search.Result, error)
	CompareAlgorithms(ctx context.Context, sessionID, heuristic string) (*search.Comparison, error)
	PlanPath(ctx context.Context, sessionID, algorithm, heuristic string) (*PlanResult, error)
	Advance(ctx context.Context, sessionID string) (*MoveResult, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)
	GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.GameConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, config *engine.GameConfig) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// ConfigManager handles game configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
	SaveConfig(name string, config *engine.GameConfig) error
}

// Session represents an active game session. Each session pairs an
// interactive engine with a searcher over the same map, plus the most
// recent plan for step-by-step auto play.
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	Searcher       *search.Searcher
	Config         *engine.GameConfig
	Plan           []engine.Position
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
