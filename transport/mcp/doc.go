// Package mcp provides a Model Context Protocol server for the treasure
// hunt game.
//
// The package exposes the game over MCP as a thin proxy: every tool call
// becomes an HTTP request against the REST API server, so the MCP process
// holds no game state of its own and can be restarted freely.
//
// MCP Tools:
//
//   - create_session: Create a game session, optionally on a chosen map
//   - list_sessions: List all active sessions
//   - game_state: Current state with a rendered grid (@ marks the explorer)
//   - move: Execute a single directional move
//   - bulk_move: Execute a sequence of moves
//   - reset_game: Reset a session to its starting state
//   - move_history: Paginated move history including blocked attempts
//   - list_configs: List available map configurations
//   - run_search: Run one search algorithm without moving the explorer
//   - compare_algorithms: Run all seven algorithms and compare statistics
//   - plan_path: Compute a route and store it on the session
//   - advance: Execute the next step of the stored plan
//   - describe_cell: Explain a map symbol and its energy cost
//   - game_instructions: Full rules and tool usage guide
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	if err := client.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// Run serves the MCP protocol on stdio until the transport closes. The
// API server must already be running at the given base URL.
package mcp
