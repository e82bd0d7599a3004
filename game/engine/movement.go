package engine

import (
	"fmt"
	"time"
)

// CanMoveTo checks if the player can move to the specified coordinates
func (gs *GameState) CanMoveTo(x, y int) bool {
	// Check bounds - handle non-square grids properly
	if y < 0 || y >= len(gs.Grid) {
		return false
	}
	if x < 0 || x >= len(gs.Grid[0]) {
		return false
	}
	return gs.Grid[y][x].Type != Obstacle
}

// terrainCost returns the energy cost of entering the cell at (x, y),
// honoring any overrides in the config.
func terrainCost(config *GameConfig, t TerrainType) int {
	for symbol, cost := range config.TerrainCosts {
		if len(symbol) == 1 {
			if tt, err := terrainForSymbol(symbol[0]); err == nil && tt == t {
				return cost
			}
		}
	}
	return DefaultTerrainCosts[t]
}

// MovePlayer attempts to move the player one step in the specified direction
func (gs *GameState) MovePlayer(direction string, config *GameConfig) bool {
	if gs.GameOver {
		return false
	}

	newX, newY := gs.PlayerPos.X, gs.PlayerPos.Y

	switch direction {
	case "up":
		newY--
	case "down":
		newY++
	case "left":
		newX--
	case "right":
		newX++
	default:
		return false
	}

	return gs.moveTo(newX, newY, direction, config)
}

// MoveToPosition attempts to move the player to an adjacent position,
// diagonals included. Planned paths replay through this entry point.
func (gs *GameState) MoveToPosition(pos Position, config *GameConfig) bool {
	if gs.GameOver {
		return false
	}

	dx := abs(pos.X - gs.PlayerPos.X)
	dy := abs(pos.Y - gs.PlayerPos.Y)
	if dx > 1 || dy > 1 || (dx == 0 && dy == 0) {
		gs.Message = fmt.Sprintf("Can't jump to (%d,%d) from (%d,%d)", pos.X, pos.Y, gs.PlayerPos.X, gs.PlayerPos.Y)
		return false
	}

	return gs.moveTo(pos.X, pos.Y, "step", config)
}

func (gs *GameState) moveTo(newX, newY int, direction string, config *GameConfig) bool {
	// Check obstacle collision BEFORE energy check
	if !gs.CanMoveTo(newX, newY) {
		obstacleType := "boundary"
		if newY >= 0 && newY < len(gs.Grid) && newX >= 0 && newX < len(gs.Grid[0]) {
			obstacleType = string(gs.Grid[newY][newX].Type)
		}

		gs.Message = fmt.Sprintf("Can't move %s: %s at (%d,%d)", direction, obstacleType, newX, newY)
		if config.Messages.CantMove != "" {
			gs.Message = config.Messages.CantMove + fmt.Sprintf(" [Blocked by: %s]", obstacleType)
		}
		return false
	}

	// Moving onto the cell costs its terrain's energy
	cost := terrainCost(config, gs.Grid[newY][newX].Type)
	if gs.Energy-cost < 0 {
		gs.Message = config.Messages.OutOfEnergy
		gs.GameOver = true
		return false
	}

	gs.PlayerPos.X = newX
	gs.PlayerPos.Y = newY
	gs.Energy -= cost

	// Check current cell
	currentCell := &gs.Grid[newY][newX]

	switch currentCell.Type {
	case Food:
		if currentCell.ID != "" && !gs.FoodsEaten[currentCell.ID] {
			gs.FoodsEaten[currentCell.ID] = true
			currentCell.Collected = true
			gs.Score++

			foodEnergy := config.FoodEnergy
			if foodEnergy <= 0 {
				foodEnergy = DefaultFoodEnergy
			}
			gs.Energy += foodEnergy
			if gs.Energy > gs.MaxEnergy {
				gs.Energy = gs.MaxEnergy
			}
			gs.Message = fmt.Sprintf(config.Messages.FoodCollected, foodEnergy)
		} else {
			gs.Message = fmt.Sprintf(config.Messages.EnergyStatus, gs.Energy, gs.MaxEnergy)
		}

	case Treasure:
		gs.Victory = true
		gs.GameOver = true
		if config.Messages.Victory != "" {
			gs.Message = config.Messages.Victory
		} else {
			gs.Message = config.Messages.TreasureFound
		}

	default:
		gs.Message = fmt.Sprintf(config.Messages.EnergyStatus, gs.Energy, gs.MaxEnergy)
	}

	// An agent with zero energy and no adjacent food or treasure is stuck
	if !gs.GameOver && gs.Energy == 0 && !gs.canStillMove() {
		gs.GameOver = true
		gs.Message = config.Messages.OutOfEnergy
	}

	return true
}

// canStillMove reports whether any adjacent cell is enterable with the
// player's remaining energy.
func (gs *GameState) canStillMove() bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			x, y := gs.PlayerPos.X+dx, gs.PlayerPos.Y+dy
			if !gs.CanMoveTo(x, y) {
				continue
			}
			cell := gs.Grid[y][x]
			cost := DefaultTerrainCosts[cell.Type]
			if gs.Energy-cost >= 0 {
				return true
			}
			// An uneaten food pays for itself as long as it nets non-negative
			if cell.Type == Food && cell.ID != "" && !gs.FoodsEaten[cell.ID] {
				return true
			}
		}
	}
	return false
}

// GenerateLocalView creates list of 8 surrounding cells around the player
func (gs *GameState) GenerateLocalView() []SurroundingCell {
	px, py := gs.PlayerPos.X, gs.PlayerPos.Y

	getCellType := func(x, y int) TerrainType {
		if y >= 0 && y < len(gs.Grid) && x >= 0 && x < len(gs.Grid[0]) {
			return gs.Grid[y][x].Type
		}
		return Obstacle // Out of bounds = obstacle
	}

	directions := []struct{ dx, dy int }{
		{0, -1},  // North
		{1, -1},  // North-East
		{1, 0},   // East
		{1, 1},   // South-East
		{0, 1},   // South
		{-1, 1},  // South-West
		{-1, 0},  // West
		{-1, -1}, // North-West
	}

	surroundings := make([]SurroundingCell, 8)
	for i, dir := range directions {
		x, y := px+dir.dx, py+dir.dy
		surroundings[i] = SurroundingCell{
			X:    x,
			Y:    y,
			Type: getCellType(x, y),
		}
	}

	return surroundings
}

// AddMoveToHistory adds a move to the game's move history
func (gs *GameState) AddMoveToHistory(action string, fromPos, toPos Position, success bool) {
	entry := MoveHistoryEntry{
		Action:       action,
		FromPosition: fromPos,
		ToPosition:   toPos,
		Energy:       gs.Energy,
		Timestamp:    time.Now().Unix(),
		Success:      success,
		MoveNumber:   gs.TotalMoves + 1,
	}
	gs.MoveHistory = append(gs.MoveHistory, entry)
	gs.TotalMoves++
}
