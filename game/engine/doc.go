// Package engine provides the core game logic for the Treasure Hunt Game.
//
// The engine package implements the game mechanics including:
//   - Weighted grid terrain with per-step energy costs
//   - Energy management and food pickups
//   - Treasure discovery and victory conditions
//   - Search-space state generation for the pathfinding strategies
//   - Configuration loading and validation
//
// Core Types:
//
// The Engine interface defines the main contract for interactive game
// operations, implemented by GameEngine. GameState represents the current
// interactive session state, while GameConfig defines the map layout and
// rules loaded from JSON files.
//
// The Grid type is the immutable search-space view of a map. Search
// algorithms operate on State values, which pair a position with the set
// of foods eaten so far and the remaining energy. Two states with the
// same position and food set are the same search node regardless of
// energy; Grid.Expand generates successors, pruning moves that would
// drive energy below zero.
//
// Usage:
//
//	config, err := engine.LoadConfigByName("original")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameEngine, err := engine.NewEngine(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Move the player
//	success := gameEngine.Move("up")
//	state := gameEngine.GetState()
//
// Game Rules:
//
// Players explore a grid of open ground, swamps, and hills, each costing a
// different amount of energy to enter. Obstacles block movement entirely.
// Stepping onto food restores energy up to the maximum. The game ends in
// victory when the treasure is reached, or in defeat when energy runs out
// with no reachable food.
package engine
