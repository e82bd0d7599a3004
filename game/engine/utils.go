package engine

// CountTotalFoods counts the total number of food cells in the grid
func CountTotalFoods(grid [][]Cell) int {
	return CountCellType(grid, Food)
}

// FindTreasure returns the treasure position in the grid
func FindTreasure(grid [][]Cell) (Position, bool) {
	for y := 0; y < len(grid); y++ {
		for x := 0; x < len(grid[y]); x++ {
			if grid[y][x].Type == Treasure {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// FindNearestUneatenFood finds the closest uneaten food and returns its position and distance
func FindNearestUneatenFood(state *GameState) (Position, int, bool) {
	minDistance := -1
	var nearestPos Position
	found := false

	for y := 0; y < len(state.Grid); y++ {
		for x := 0; x < len(state.Grid[y]); x++ {
			cell := state.Grid[y][x]
			if cell.Type == Food && !cell.Collected {
				pos := Position{X: x, Y: y}
				distance := state.PlayerPos.ChebyshevDistance(pos)
				if minDistance == -1 || distance < minDistance {
					minDistance = distance
					nearestPos = pos
					found = true
				}
			}
		}
	}

	return nearestPos, minDistance, found
}

// AnalyzeEnergyRisk assesses energy danger based on current energy and the
// distance to the nearest uneaten food
func AnalyzeEnergyRisk(state *GameState) string {
	if state.Energy <= 0 {
		return "CRITICAL: Energy empty!"
	}

	treasurePos, treasureFound := FindTreasure(state.Grid)
	if treasureFound && state.Energy > state.PlayerPos.ChebyshevDistance(treasurePos) {
		return "SAFE: Energy sufficient to reach the treasure"
	}

	_, foodDistance, foodFound := FindNearestUneatenFood(state)
	if !foodFound {
		return "DANGER: No food left and treasure may be out of reach!"
	}

	if state.Energy <= foodDistance {
		return "DANGER: Insufficient energy to reach nearest food!"
	} else if state.Energy <= foodDistance+2 {
		return "CAUTION: Low energy, prioritize food"
	} else if state.Energy <= state.MaxEnergy/3 {
		return "LOW: Consider collecting food soon"
	}

	return "SAFE: Energy sufficient"
}

// CountCellType counts the total number of cells of a specific type in the grid
func CountCellType(grid [][]Cell, cellType TerrainType) int {
	count := 0
	for _, row := range grid {
		for _, cell := range row {
			if cell.Type == cellType {
				count++
			}
		}
	}
	return count
}
