// Package service provides the business logic layer between the transports
// and the game engine. It manages sessions, executes moves, runs the search
// strategies, and handles path planning so that the HTTP, WebSocket, and MCP
// transports stay thin.
//
// The central interface is GameService:
//
//	svc := service.NewGameService(sessionManager, configManager)
//	info, err := svc.CreateSession(ctx, "medium")
//	result, err := svc.Move(ctx, info.ID, "right", false)
//	comparison, err := svc.CompareAlgorithms(ctx, info.ID, "chebyshev")
//
// Planning and execution are split in two: PlanPath computes a route from
// the player's current tile to the treasure and stores it on the session,
// and each Advance call walks one step of that route. Any manual move or
// reset discards the stored plan.
package service
