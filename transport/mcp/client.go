package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/PhoneMk/treasure-hunt/game/engine"
	"github.com/PhoneMk/treasure-hunt/game/search"
	"github.com/PhoneMk/treasure-hunt/game/service"
)

// Client is an MCP server that proxies tool calls to the REST API.
// It keeps no game state of its own; every tool call becomes an HTTP
// request against the running API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates an MCP client that talks to the API at baseURL.
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	c.initMCPServer()
	return c
}

// Run serves the MCP protocol on stdio until the transport closes.
func (c *Client) Run() error {
	return server.ServeStdio(c.mcpServer)
}

// GetMCPServer exposes the underlying MCP server so the caller can mount
// it on other transports, such as an HTTP endpoint.
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"treasure-hunt",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(gameInstructions),
	)
	c.registerTools()
}

const gameInstructions = `Treasure Hunt is a grid exploration game played on a weighted terrain map.

RULES:
- You control an explorer on a rectangular grid. Reach the treasure (T) before your energy runs out.
- Every move to an adjacent cell (8 directions, diagonals included) costs energy equal to the terrain of the DESTINATION cell: open ground (.) costs 1, swamp (~) costs 2, hills (^) cost 3.
- Obstacles (X) and the grid boundary block movement. Blocked moves cost nothing but are recorded.
- Food (F) restores energy when you step on it, capped at the maximum. Each food can be eaten once.
- Reaching exactly 0 energy on the treasure still wins. Running out anywhere else loses.

MAP SYMBOLS: @ you, S start, T treasure, F food, X obstacle, . open, ~ swamp, ^ hills

SEARCH: run_search and compare_algorithms analyze the current position without moving.
Algorithms: bfs, dfs, ids, dijkstra, greedy, astar, weighted_astar.
Heuristics (informed algorithms only): manhattan, euclidean, chebyshev, zero, energy_aware.
plan_path computes a route and stores it on the session; advance executes one planned step at a time. Any manual move discards the stored plan.

WORKFLOW: create_session (optionally with a config_id from list_configs), then use game_state to see the map, move/bulk_move to explore, or plan_path + advance to follow a computed route.`

func (c *Client) registerTools() {
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session. Optionally specify a map configuration (see list_configs).",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Map configuration ID (default: the built-in original map)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state for a session, including a rendered map.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "The session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Move the explorer one step. Directions: up, down, left, right, up-left, up-right, down-left, down-right.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "The session ID",
				},
				"direction": map[string]interface{}{
					"type":        "string",
					"description": "Direction to move",
				},
			},
			Required: []string{"session_id", "direction"},
		},
	}, c.handleMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "bulk_move",
		Description: "Execute a sequence of moves in order. Stops at the first blocked move, energy exhaustion, or victory.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "The session ID",
				},
				"moves": map[string]interface{}{
					"type":        "array",
					"description": "Ordered list of directions",
					"items": map[string]interface{}{
						"type": "string",
					},
				},
			},
			Required: []string{"session_id", "moves"},
		},
	}, c.handleBulkMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset a session to its starting state. Clears history, foods, and any stored plan.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "The session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleResetGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "Get the paginated move history for a session, including blocked attempts.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "The session ID",
				},
				"page": map[string]interface{}{
					"type":        "number",
					"description": "Page number (default 1)",
				},
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Entries per page (default 10)",
				},
				"order": map[string]interface{}{
					"type":        "string",
					"description": "asc or desc (default desc, newest first)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMoveHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List the available map configurations.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "run_search",
		Description: "Run a search algorithm from the current position to the treasure. Does not move the explorer.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "The session ID",
				},
				"algorithm": map[string]interface{}{
					"type":        "string",
					"description": "bfs, dfs, ids, dijkstra, greedy, astar, or weighted_astar",
				},
				"heuristic": map[string]interface{}{
					"type":        "string",
					"description": "manhattan, euclidean, chebyshev, or zero (informed algorithms only)",
				},
			},
			Required: []string{"session_id", "algorithm"},
		},
	}, c.handleRunSearch)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "compare_algorithms",
		Description: "Run all seven search algorithms from the current position and compare their statistics.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "The session ID",
				},
				"heuristic": map[string]interface{}{
					"type":        "string",
					"description": "Heuristic for the informed algorithms (default chebyshev)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleCompareAlgorithms)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "plan_path",
		Description: "Compute a route to the treasure and store it on the session for step-by-step execution with advance.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "The session ID",
				},
				"algorithm": map[string]interface{}{
					"type":        "string",
					"description": "bfs, astar, or astar_with_food (default: astar_with_food, which routes through food when needed)",
				},
				"heuristic": map[string]interface{}{
					"type":        "string",
					"description": "Heuristic for informed planners (default chebyshev)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handlePlanPath)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "advance",
		Description: "Execute the next step of the stored plan. Fails if no plan exists or the plan was invalidated by a manual move.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "The session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleAdvance)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_cell",
		Description: "Explain what a map symbol means and what it costs to enter.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"symbol": map[string]interface{}{
					"type":        "string",
					"description": "A single map symbol: . ~ ^ S T F X",
				},
			},
			Required: []string{"symbol"},
		},
	}, c.handleDescribeCell)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the full game rules and tool usage guide.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// apiCall performs an HTTP request against the API server and decodes the
// JSON response into result. Error responses ({"error": "..."}) are surfaced
// as Go errors.
func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	body := map[string]string{}
	if args, ok := request.Params.Arguments.(map[string]interface{}); ok {
		if configID, ok := args["config_id"].(string); ok && configID != "" {
			body["config_id"] = configID
		}
	}

	var info service.SessionInfo
	if err := c.apiCall("POST", "/api/sessions", body, &info); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var out strings.Builder
	fmt.Fprintf(&out, "Session created: %s\n", info.ID)
	fmt.Fprintf(&out, "Map: %s\n\n", info.ConfigName)
	out.WriteString(formatGameState(info.GameState))
	return mcp.NewToolResultText(out.String()), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var listing struct {
		Count    int                    `json:"count"`
		Sessions []*service.SessionInfo `json:"sessions"`
	}
	if err := c.apiCall("GET", "/api/sessions", nil, &listing); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(listing.Sessions) == 0 {
		return mcp.NewToolResultText("No active sessions."), nil
	}

	var out strings.Builder
	fmt.Fprintf(&out, "Active sessions (%d):\n", len(listing.Sessions))
	for _, s := range listing.Sessions {
		status := "playing"
		if s.GameState != nil {
			if s.GameState.Victory {
				status = "won"
			} else if s.GameState.GameOver {
				status = "game over"
			}
		}
		energy := 0
		moves := 0
		if s.GameState != nil {
			energy = s.GameState.Energy
			moves = s.GameState.TotalMoves
		}
		fmt.Fprintf(&out, "  %s  map=%s  energy=%d  moves=%d  status=%s\n",
			s.ID, s.ConfigName, energy, moves, status)
	}
	return mcp.NewToolResultText(out.String()), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := requireString(request, "session_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var state engine.GameState
	if err := c.apiCall("GET", "/api/sessions/"+sessionID+"/state", nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatGameState(&state)), nil
}

func (c *Client) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := requireString(request, "session_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	direction, err := requireString(request, "direction")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var result service.MoveResult
	body := map[string]string{"direction": direction}
	if err := c.apiCall("POST", "/api/sessions/"+sessionID+"/move", body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatMoveResult(&result)), nil
}

func (c *Client) handleBulkMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := requireString(request, "session_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args, _ := request.Params.Arguments.(map[string]interface{})
	rawMoves, ok := args["moves"].([]interface{})
	if !ok || len(rawMoves) == 0 {
		return mcp.NewToolResultError("moves must be a non-empty array of directions"), nil
	}
	moves := make([]string, 0, len(rawMoves))
	for _, m := range rawMoves {
		s, ok := m.(string)
		if !ok {
			return mcp.NewToolResultError("moves must contain only strings"), nil
		}
		moves = append(moves, s)
	}

	var result service.BulkMoveResult
	body := map[string]interface{}{"moves": moves}
	if err := c.apiCall("POST", "/api/sessions/"+sessionID+"/bulk-move", body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatBulkMoveResult(&result)), nil
}

func (c *Client) handleResetGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := requireString(request, "session_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var state engine.GameState
	if err := c.apiCall("POST", "/api/sessions/"+sessionID+"/reset", nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText("Game reset.\n\n" + formatGameState(&state)), nil
}

func (c *Client) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := requireString(request, "session_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args, _ := request.Params.Arguments.(map[string]interface{})
	query := make([]string, 0, 3)
	if page, ok := args["page"].(float64); ok {
		query = append(query, fmt.Sprintf("page=%d", int(page)))
	}
	if limit, ok := args["limit"].(float64); ok {
		query = append(query, fmt.Sprintf("limit=%d", int(limit)))
	}
	if order, ok := args["order"].(string); ok && order != "" {
		query = append(query, "order="+order)
	}
	path := "/api/sessions/" + sessionID + "/history"
	if len(query) > 0 {
		path += "?" + strings.Join(query, "&")
	}

	var history service.HistoryResponse
	if err := c.apiCall("GET", path, nil, &history); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatHistory(&history)), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	if err := c.apiCall("GET", "/api/configs", nil, &configs); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var out strings.Builder
	fmt.Fprintf(&out, "Available maps (%d):\n", len(configs))
	for _, cfg := range configs {
		kind := "custom"
		if cfg.BuiltIn {
			kind = "built-in"
		}
		fmt.Fprintf(&out, "  %-20s %dx%d  energy %d/%d  foods %d  (%s)\n",
			cfg.ConfigID, cfg.Width, cfg.Height, cfg.StartingEnergy, cfg.MaxEnergy, cfg.Foods, kind)
		if cfg.Description != "" {
			fmt.Fprintf(&out, "      %s\n", cfg.Description)
		}
	}
	return mcp.NewToolResultText(out.String()), nil
}

func (c *Client) handleRunSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := requireString(request, "session_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	algorithm, err := requireString(request, "algorithm")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args, _ := request.Params.Arguments.(map[string]interface{})
	body := map[string]string{"algorithm": algorithm}
	if heuristic, ok := args["heuristic"].(string); ok && heuristic != "" {
		body["heuristic"] = heuristic
	}

	var result search.Result
	if err := c.apiCall("POST", "/api/sessions/"+sessionID+"/search", body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatSearchResult(&result)), nil
}

func (c *Client) handleCompareAlgorithms(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := requireString(request, "session_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args, _ := request.Params.Arguments.(map[string]interface{})
	body := map[string]string{}
	if heuristic, ok := args["heuristic"].(string); ok && heuristic != "" {
		body["heuristic"] = heuristic
	}

	var comparison search.Comparison
	if err := c.apiCall("POST", "/api/sessions/"+sessionID+"/search/compare", body, &comparison); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatComparison(&comparison)), nil
}

func (c *Client) handlePlanPath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := requireString(request, "session_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args, _ := request.Params.Arguments.(map[string]interface{})
	body := map[string]string{}
	if algorithm, ok := args["algorithm"].(string); ok && algorithm != "" {
		body["algorithm"] = algorithm
	}
	if heuristic, ok := args["heuristic"].(string); ok && heuristic != "" {
		body["heuristic"] = heuristic
	}

	var plan service.PlanResult
	if err := c.apiCall("POST", "/api/sessions/"+sessionID+"/plan", body, &plan); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatPlanResult(&plan)), nil
}

func (c *Client) handleAdvance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := requireString(request, "session_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var result service.MoveResult
	if err := c.apiCall("POST", "/api/sessions/"+sessionID+"/advance", nil, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatMoveResult(&result)), nil
}

func (c *Client) handleDescribeCell(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol, err := requireString(request, "symbol")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	descriptions := map[string]string{
		".": "Open ground. Costs 1 energy to enter.",
		"~": "Swamp. Costs 2 energy to enter.",
		"^": "Hills. Cost 3 energy to enter.",
		"S": "Starting position. Costs 1 energy to re-enter.",
		"T": "The treasure. Reach it to win. Costs 1 energy to enter.",
		"F": "Food. Restores energy when entered, capped at the maximum. Costs 1 energy.",
		"X": "Obstacle. Impassable.",
		"@": "The explorer (you).",
	}
	desc, ok := descriptions[symbol]
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown symbol %q, valid symbols are . ~ ^ S T F X", symbol)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s: %s", symbol, desc)), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(gameInstructions), nil
}

func requireString(request mcp.CallToolRequest, key string) (string, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("%s is required", key)
	}
	value, ok := args[key].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return value, nil
}

// Formatters

// formatGameState renders the grid and the player's status as text.
// The explorer is drawn as @ so it never collides with the treasure symbol.
func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available."
	}

	var out strings.Builder
	out.WriteString("Map:\n")
	for y, row := range state.Grid {
		out.WriteString("  ")
		for x, cell := range row {
			if state.PlayerPos.X == x && state.PlayerPos.Y == y {
				out.WriteString("@ ")
				continue
			}
			out.WriteString(cellSymbol(cell) + " ")
		}
		out.WriteString("\n")
	}

	fmt.Fprintf(&out, "\nPosition: (%d,%d)\n", state.PlayerPos.X, state.PlayerPos.Y)
	fmt.Fprintf(&out, "Energy: %d/%d\n", state.Energy, state.MaxEnergy)
	fmt.Fprintf(&out, "Foods eaten: %d\n", state.Score)
	fmt.Fprintf(&out, "Moves: %d\n", state.TotalMoves)
	if state.EnergyRisk != "" {
		fmt.Fprintf(&out, "Energy risk: %s\n", state.EnergyRisk)
	}

	if state.Victory {
		out.WriteString("\nVICTORY! The treasure is yours.\n")
	} else if state.GameOver {
		out.WriteString("\nGAME OVER. Out of energy.\n")
	} else if state.Message != "" {
		fmt.Fprintf(&out, "\n%s\n", state.Message)
	}
	return out.String()
}

func cellSymbol(cell engine.Cell) string {
	switch cell.Type {
	case engine.Open:
		return "."
	case engine.Swamp:
		return "~"
	case engine.Hills:
		return "^"
	case engine.Start:
		return "S"
	case engine.Treasure:
		return "T"
	case engine.Food:
		if cell.Collected {
			return "."
		}
		return "F"
	case engine.Obstacle:
		return "X"
	default:
		return "?"
	}
}

func formatMoveResult(result *service.MoveResult) string {
	if result == nil {
		return "No result."
	}

	var out strings.Builder
	if result.Success {
		out.WriteString("Move successful.\n")
	} else {
		out.WriteString("Move blocked.\n")
	}
	if result.Message != "" {
		fmt.Fprintf(&out, "%s\n", result.Message)
	}
	if result.Step != nil {
		fmt.Fprintf(&out, "Stepped onto %s (%s), energy %d -> %d\n",
			result.Step.TileChar, result.Step.TileType, result.Step.EnergyBefore, result.Step.EnergyAfter)
	}
	if result.AttemptedTo != nil {
		fmt.Fprintf(&out, "Attempted (%d,%d): %s, passable=%t\n",
			result.AttemptedTo.X, result.AttemptedTo.Y, result.AttemptedTo.TileType, result.AttemptedTo.Passable)
	}
	for _, event := range result.Events {
		if event.Type != "move" {
			fmt.Fprintf(&out, "Event: %s - %s\n", event.Type, event.Message)
		}
	}
	if result.GameState != nil {
		out.WriteString("\n")
		out.WriteString(formatGameState(result.GameState))
	}
	return out.String()
}

func formatBulkMoveResult(result *service.BulkMoveResult) string {
	if result == nil {
		return "No result."
	}

	var out strings.Builder
	fmt.Fprintf(&out, "Executed %d of %d moves.\n", result.MovesExecuted, result.RequestedMoves)
	if result.Truncated {
		fmt.Fprintf(&out, "Request truncated to %d moves.\n", result.Limit)
	}
	if result.StoppedReason != "" {
		fmt.Fprintf(&out, "Stopped on move %d: %s\n", result.StoppedOnMove, result.StoppedReason)
	}
	fmt.Fprintf(&out, "Path: (%d,%d) -> (%d,%d), energy %d -> %d",
		result.StartPos.X, result.StartPos.Y, result.EndPos.X, result.EndPos.Y,
		result.StartEnergy, result.EndEnergy)
	if result.ScoreDelta > 0 {
		fmt.Fprintf(&out, ", foods +%d", result.ScoreDelta)
	}
	out.WriteString("\n")

	for _, event := range result.Events {
		if event.Type != "move" {
			fmt.Fprintf(&out, "Event: %s - %s\n", event.Type, event.Message)
		}
	}
	if len(result.PossibleMoves) > 0 {
		fmt.Fprintf(&out, "Possible moves: %s\n", strings.Join(result.PossibleMoves, ", "))
	}
	if result.GameState != nil {
		out.WriteString("\n")
		out.WriteString(formatGameState(result.GameState))
	}
	return out.String()
}

func formatHistory(history *service.HistoryResponse) string {
	if history == nil || history.TotalMoves == 0 {
		return "No moves recorded yet."
	}

	var out strings.Builder
	fmt.Fprintf(&out, "Move history (page %d of %d, %d total moves):\n",
		history.Page, history.TotalPages, history.TotalMoves)
	for _, entry := range history.Moves {
		status := "ok"
		if !entry.Success {
			status = "blocked"
		}
		fmt.Fprintf(&out, "  #%d %s (%d,%d) -> (%d,%d) energy=%d [%s]\n",
			entry.MoveNumber, entry.Action,
			entry.FromPosition.X, entry.FromPosition.Y,
			entry.ToPosition.X, entry.ToPosition.Y,
			entry.Energy, status)
	}
	if history.HasNext {
		out.WriteString("More pages available.\n")
	}
	return out.String()
}

func formatSearchResult(result *search.Result) string {
	if result == nil {
		return "No result."
	}

	var out strings.Builder
	fmt.Fprintf(&out, "Algorithm: %s", result.Algorithm)
	if result.Heuristic != "" {
		fmt.Fprintf(&out, " (heuristic: %s)", result.Heuristic)
	}
	out.WriteString("\n")

	if !result.Success {
		out.WriteString("No path found within the energy budget.\n")
		fmt.Fprintf(&out, "Nodes explored: %d, max memory: %d\n", result.NodesExplored, result.MaxMemory)
		return out.String()
	}

	fmt.Fprintf(&out, "Path found: %d moves, total terrain cost %d\n", result.PathLength, result.PathCost)
	fmt.Fprintf(&out, "Final energy: %d, foods collected: %d\n", result.FinalEnergy, result.FoodsCollected)
	fmt.Fprintf(&out, "Nodes explored: %d, max memory: %d, time: %s\n",
		result.NodesExplored, result.MaxMemory, result.Duration)

	if len(result.Path) > 0 {
		steps := make([]string, 0, len(result.Path))
		for _, p := range result.Path {
			steps = append(steps, fmt.Sprintf("(%d,%d)", p.X, p.Y))
		}
		fmt.Fprintf(&out, "Route: %s\n", strings.Join(steps, " -> "))
	}
	return out.String()
}

func formatComparison(comparison *search.Comparison) string {
	if comparison == nil || len(comparison.Results) == 0 {
		return "No comparison results."
	}

	results := make([]*search.Result, len(comparison.Results))
	copy(results, comparison.Results)
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Success != results[j].Success {
			return results[i].Success
		}
		return results[i].NodesExplored < results[j].NodesExplored
	})

	var out strings.Builder
	fmt.Fprintf(&out, "Algorithm comparison (heuristic: %s):\n\n", comparison.Heuristic)
	fmt.Fprintf(&out, "  %-15s %-6s %-6s %-6s %-8s %-8s\n",
		"algorithm", "found", "moves", "cost", "nodes", "memory")
	for _, r := range results {
		found := "no"
		if r.Success {
			found = "yes"
		}
		fmt.Fprintf(&out, "  %-15s %-6s %-6d %-6d %-8d %-8d\n",
			r.Algorithm, found, r.PathLength, r.PathCost, r.NodesExplored, r.MaxMemory)
	}

	out.WriteString("\n")
	if comparison.Best != "" {
		fmt.Fprintf(&out, "Best: %s\n", comparison.Best)
	} else {
		out.WriteString("No algorithm found a path.\n")
	}
	fmt.Fprintf(&out, "Avg nodes, blind (bfs/dfs/ids): %.1f\n", comparison.AvgBlindNodes)
	fmt.Fprintf(&out, "Avg nodes, informed: %.1f\n", comparison.AvgInformedNodes)
	if comparison.Improvement > 0 {
		fmt.Fprintf(&out, "Informed search explored %.1f%% fewer nodes.\n", comparison.Improvement)
	}
	return out.String()
}

func formatPlanResult(plan *service.PlanResult) string {
	if plan == nil {
		return "No result."
	}

	if !plan.Found {
		return fmt.Sprintf("No viable path found (%s). The treasure may be unreachable with the current energy.", plan.Algorithm)
	}

	var out strings.Builder
	fmt.Fprintf(&out, "Plan stored: %d steps (%s)\n", plan.Remaining, plan.Algorithm)
	fmt.Fprintf(&out, "Search: %d nodes visited, path cost %d, %s\n",
		plan.Stats.NodesVisited, plan.Stats.TotalEnergyCost, plan.Stats.SearchTime)
	if len(plan.Path) > 0 {
		steps := make([]string, 0, len(plan.Path))
		for _, p := range plan.Path {
			steps = append(steps, fmt.Sprintf("(%d,%d)", p.X, p.Y))
		}
		fmt.Fprintf(&out, "Route: %s\n", strings.Join(steps, " -> "))
	}
	out.WriteString("Use advance to execute one step at a time.\n")
	return out.String()
}
