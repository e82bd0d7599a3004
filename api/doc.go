// Package api provides HTTP REST API handlers for the treasure hunt game.
//
// The api package implements:
//   - RESTful endpoints for game operations
//   - Session management endpoints
//   - Search runs, strategy comparison, and path planning
//   - Configuration listing and creation
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session (optional config_id in body)
//   - GET /api/sessions - List all sessions (sort, order, limit params)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Get current game state
//   - POST /api/sessions/{id}/move - Move one step {"direction":"up"}
//   - POST /api/sessions/{id}/bulk-move - Move a sequence {"moves":["up","right"]}
//   - POST /api/sessions/{id}/reset - Reset to initial state
//   - GET /api/sessions/{id}/history - Paginated move history
//
// Search and Planning:
//   - POST /api/sessions/{id}/search - Run one strategy from the map start
//     {"algorithm":"astar","heuristic":"chebyshev"}
//   - POST /api/sessions/{id}/search/compare - Run all seven strategies
//   - POST /api/sessions/{id}/plan - Plan a route from the player's tile
//     {"algorithm":"bfs|astar|astar_with_food"}
//   - POST /api/sessions/{id}/advance - Walk one step of the stored plan
//
// Configuration:
//   - GET /api/configs - List builtin and on-disk configurations
//   - GET /api/configs/{name} - Get one configuration
//   - POST /api/configs - Save a new configuration
//
// All endpoints accept and return JSON. Errors are returned as JSON with
// appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api

//
// Enriched Responses (Move and Bulk Move)
//
// Move (POST /api/sessions/{id}/move)
//   Response:
//     - step: { dir, from{x,y}, to{x,y}, tile_char, tile_type, energy_before, energy_after, success }
//     - attempted_to: { x, y, tile_char, tile_type, passable } // present when blocked
//     - game_state additions:
//         local_view: eight surrounding cells with terrain and cost
//         energy_risk: "SAFE|LOW|CAUTION|DANGER|CRITICAL"
//
// Bulk Move (POST /api/sessions/{id}/bulk-move)
//   Response:
//     - requested_moves, moves_executed
//     - stopped_reason (text), stop_reason_code (enum), stopped_on_move (1-based), truncated, limit
//     - steps: [{ idx, dir, from, to, tile_char, tile_type, energy_before, energy_after, success, ate?, victory? }]
//     - attempted_to: failed target cell on first block
//     - start_pos, end_pos, start_energy, end_energy, score_delta
//     - possible_moves: ["up","right"], energy_risk
