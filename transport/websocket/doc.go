// Package websocket provides real-time state broadcasting for the
// treasure hunt game.
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine pair that manages reading, writing, pings, and cleanup.
//
// Session Integration:
//
// Connections are session-aware. Clients specify their session ID via
// query parameter (?session=abc1) when establishing the connection, and
// state updates are broadcast only to clients watching the same session.
// Every move, bulk move, reset, and plan advance pushes the resulting
// game state to all watchers.
//
// Message Protocol:
//
// Messages are JSON-encoded:
//
//	{"session_id": "abc1", "event": "state_update", "game_state": {...}}
//
// Custom events (search completions, plan updates) use the same envelope
// with an event name and a data payload instead of game_state.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// inside an HTTP handler, after validating the session
//	hub.ServeWS(w, r, sessionID)
//
//	// after a state change
//	hub.BroadcastToSession(sessionID, state)
package websocket
