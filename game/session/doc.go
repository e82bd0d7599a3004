// Package session provides session management for the treasure hunt game.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session lifecycle management and expiration cleanup
//   - Optional JSON file persistence across restarts
//
// Core Types:
//
// Manager is the main session manager that handles all session operations.
// Each session pairs an interactive game engine with a search grid over the
// same map, so a single session can both play moves and run pathfinding.
//
// Session Identifiers:
//
// Sessions use 4-character hex IDs generated from cryptographic randomness.
// Lookups are case-insensitive.
//
// Persistence:
//
// With NewManagerWithPersistence the manager writes each session to a JSON
// file after every save and transparently reloads sessions that are on disk
// but not in memory. The persisted record keeps the game state and any
// stored plan; the engine and searcher are rebuilt from the config on load.
//
// Usage:
//
//	manager := session.NewManager()
//
//	// Create a new session with a generated ID
//	sess, err := manager.Create("", config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Retrieve existing session
//	sess, err = manager.Get(sessionID)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// List all active sessions
//	sessions := manager.List()
package session
