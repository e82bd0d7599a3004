package engine

import (
	"testing"
)

func createTestConfig() *GameConfig {
	config := &GameConfig{
		Name:           "Engine Test Config",
		Description:    "Configuration for engine integration tests",
		StartingEnergy: 8,
		MaxEnergy:      10,
		FoodEnergy:     5,
		Layout: []string{
			"S..~.",
			".X.~.",
			".XF~.",
			".X.~.",
			"....T",
		},
		Legend: map[string]string{
			".": "open",
			"~": "swamp",
			"^": "hills",
			"S": "start",
			"T": "treasure",
			"F": "food",
			"X": "obstacle",
		},
	}
	config.Messages.Welcome = "Welcome to engine test!"
	config.Messages.TreasureFound = "Treasure found!"
	config.Messages.FoodCollected = "Food! Energy +%d"
	config.Messages.Victory = "Victory!"
	config.Messages.OutOfEnergy = "Out of energy!"
	config.Messages.CantMove = "Can't move there!"
	config.Messages.EnergyStatus = "Energy: %d/%d"
	return config
}

func TestNewEngine(t *testing.T) {
	config := createTestConfig()
	engine, err := NewEngine(config)
	if err != nil {
		t.Fatalf("Failed to create new engine: %v", err)
	}

	if engine == nil {
		t.Fatal("Expected engine to be non-nil")
	}

	// Test initial state
	if engine.GetEnergy() != config.StartingEnergy {
		t.Errorf("Expected starting energy %d, got %d", config.StartingEnergy, engine.GetEnergy())
	}
	if engine.GetScore() != 0 {
		t.Errorf("Expected initial score 0, got %d", engine.GetScore())
	}
	if engine.IsGameOver() {
		t.Error("Expected game not to be over initially")
	}
	if engine.IsVictory() {
		t.Error("Expected game not to be victory initially")
	}
	if pos := engine.GetPlayerPosition(); pos.X != 0 || pos.Y != 0 {
		t.Errorf("Expected player to start at (0,0), got (%d,%d)", pos.X, pos.Y)
	}
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	config := createTestConfig()
	config.Name = "" // Make config invalid

	_, err := NewEngine(config)
	if err == nil {
		t.Error("Expected error for invalid config")
	}
}

func TestNewEngineWithDefaults(t *testing.T) {
	engine := NewEngineWithDefaults()
	if engine == nil {
		t.Fatal("Expected engine to be non-nil")
	}

	if engine.GetEnergy() <= 0 {
		t.Error("Expected positive starting energy")
	}
	if engine.GetScore() != 0 {
		t.Errorf("Expected initial score 0, got %d", engine.GetScore())
	}
}

func TestEngine_BasicMovement(t *testing.T) {
	config := createTestConfig()
	engine, err := NewEngine(config)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	initialPos := engine.GetPlayerPosition()
	initialEnergy := engine.GetEnergy()

	// Moving onto open ground costs 1 energy
	success := engine.Move("right")
	if !success {
		t.Error("Expected move right to succeed")
	}
	newPos := engine.GetPlayerPosition()
	if newPos.X != initialPos.X+1 || newPos.Y != initialPos.Y {
		t.Errorf("Expected player at (%d,%d), got (%d,%d)", initialPos.X+1, initialPos.Y, newPos.X, newPos.Y)
	}
	if engine.GetEnergy() != initialEnergy-1 {
		t.Errorf("Expected energy %d after open move, got %d", initialEnergy-1, engine.GetEnergy())
	}
}

func TestEngine_SwampCostsMore(t *testing.T) {
	config := createTestConfig()
	engine, err := NewEngine(config)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	// Walk right to (2,0), then into the swamp at (3,0)
	engine.Move("right")
	engine.Move("right")
	energyBefore := engine.GetEnergy()

	if !engine.Move("right") {
		t.Fatal("Expected move into swamp to succeed")
	}
	if engine.GetEnergy() != energyBefore-2 {
		t.Errorf("Expected swamp to cost 2 energy, went from %d to %d", energyBefore, engine.GetEnergy())
	}
}

func TestEngine_ObstacleBlocksMovement(t *testing.T) {
	config := createTestConfig()
	engine, err := NewEngine(config)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	// (1,1) is an obstacle; moving down from (1,0) should fail
	engine.Move("right")
	posBefore := engine.GetPlayerPosition()
	energyBefore := engine.GetEnergy()

	if engine.Move("down") {
		t.Error("Expected move into obstacle to fail")
	}
	if pos := engine.GetPlayerPosition(); pos != posBefore {
		t.Errorf("Expected player to stay at (%d,%d), got (%d,%d)", posBefore.X, posBefore.Y, pos.X, pos.Y)
	}
	if engine.GetEnergy() != energyBefore {
		t.Errorf("Expected failed move to cost nothing, energy went from %d to %d", energyBefore, engine.GetEnergy())
	}
}

func TestEngine_BoundaryBlocksMovement(t *testing.T) {
	engine, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	// Player starts at (0,0), so up and left leave the grid
	if engine.Move("up") {
		t.Error("Expected move above the grid to fail")
	}
	if engine.Move("left") {
		t.Error("Expected move left of the grid to fail")
	}
}

func TestEngine_FoodRestoresEnergy(t *testing.T) {
	config := createTestConfig()
	config.StartingEnergy = 4
	engine, err := NewEngine(config)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	// Route to the food at (2,2): right, right, down, down
	engine.Move("right")
	engine.Move("right")
	engine.Move("down")
	energyBefore := engine.GetEnergy()

	if !engine.Move("down") {
		t.Fatal("Expected move onto food to succeed")
	}
	// Food costs 1 to enter, then restores 5
	want := energyBefore - 1 + config.FoodEnergy
	if want > config.MaxEnergy {
		want = config.MaxEnergy
	}
	if engine.GetEnergy() != want {
		t.Errorf("Expected energy %d after food, got %d", want, engine.GetEnergy())
	}
	if engine.GetScore() != 1 {
		t.Errorf("Expected score 1 after eating food, got %d", engine.GetScore())
	}
	if engine.GetRemainingFoods() != 0 {
		t.Errorf("Expected 0 remaining foods, got %d", engine.GetRemainingFoods())
	}
}

func TestEngine_FoodCapsAtMaxEnergy(t *testing.T) {
	config := createTestConfig()
	config.StartingEnergy = 10
	config.MaxEnergy = 10
	engine, err := NewEngine(config)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	engine.Move("right")
	engine.Move("right")
	engine.Move("down")
	engine.Move("down") // onto the food

	if engine.GetEnergy() > config.MaxEnergy {
		t.Errorf("Expected energy capped at %d, got %d", config.MaxEnergy, engine.GetEnergy())
	}
}

func TestEngine_VictoryOnTreasure(t *testing.T) {
	config := createTestConfig()
	config.StartingEnergy = 10
	config.MaxEnergy = 20
	engine, err := NewEngine(config)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	// Walk down the left edge then across the bottom to the treasure at (4,4)
	moves := []string{"down", "down", "down", "down", "right", "right", "right", "right"}
	for _, move := range moves {
		if engine.IsGameOver() {
			break
		}
		if !engine.Move(move) {
			t.Fatalf("Expected move %q to succeed", move)
		}
	}

	if !engine.IsVictory() {
		t.Error("Expected victory after reaching the treasure")
	}
	if !engine.IsGameOver() {
		t.Error("Expected game to be over after victory")
	}
}

func TestEngine_OutOfEnergy(t *testing.T) {
	config := createTestConfig()
	config.StartingEnergy = 1
	engine, err := NewEngine(config)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	// One open move drains the last energy; nothing adjacent is affordable
	if !engine.Move("right") {
		t.Fatal("Expected first move to succeed")
	}
	if !engine.IsGameOver() {
		t.Error("Expected game over once energy is exhausted with no reachable food")
	}
	if engine.IsVictory() {
		t.Error("Expected defeat, not victory")
	}
}

func TestEngine_MoveTo(t *testing.T) {
	engine, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	// Diagonal step is allowed through MoveTo
	if !engine.MoveTo(Position{X: 1, Y: 0}) {
		t.Error("Expected adjacent MoveTo to succeed")
	}
	if engine.MoveTo(Position{X: 4, Y: 4}) {
		t.Error("Expected non-adjacent MoveTo to fail")
	}
	if engine.MoveTo(engine.GetPlayerPosition()) {
		t.Error("Expected MoveTo current position to fail")
	}
}

func TestEngine_MoveHistory(t *testing.T) {
	engine, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	engine.Move("right")
	engine.Move("down") // blocked by obstacle at (1,1)

	history := engine.GetMoveHistory()
	if len(history) != 2 {
		t.Fatalf("Expected 2 history entries, got %d", len(history))
	}
	if !history[0].Success {
		t.Error("Expected first move to be recorded as success")
	}
	if history[1].Success {
		t.Error("Expected blocked move to be recorded as failure")
	}

	last := engine.GetLastMove()
	if last == nil || last.MoveNumber != 2 {
		t.Error("Expected last move to be move number 2")
	}
}

func TestEngine_Reset(t *testing.T) {
	engine, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	engine.Move("right")
	engine.Move("right")
	totalBefore := engine.GetState().TotalMoves

	state := engine.Reset()
	if state.PlayerPos.X != 0 || state.PlayerPos.Y != 0 {
		t.Errorf("Expected reset to return player to (0,0), got (%d,%d)", state.PlayerPos.X, state.PlayerPos.Y)
	}
	if state.Energy != engine.GetConfig().StartingEnergy {
		t.Errorf("Expected reset energy %d, got %d", engine.GetConfig().StartingEnergy, state.Energy)
	}
	// Cumulative history survives resets
	if state.TotalMoves != totalBefore {
		t.Errorf("Expected total moves %d preserved across reset, got %d", totalBefore, state.TotalMoves)
	}
}

func TestEngine_BulkMove(t *testing.T) {
	engine, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	results := engine.BulkMove([]string{"right", "down", "right"})
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	if !results[0] || results[1] || !results[2] {
		t.Errorf("Expected [true false true], got %v", results)
	}
}

func TestEngine_GetPossibleMoves(t *testing.T) {
	engine, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	// From (0,0): up and left leave the grid, right and down are open
	moves := engine.GetPossibleMoves()
	if len(moves) != 2 {
		t.Errorf("Expected 2 possible moves from the corner, got %v", moves)
	}
}

func TestEngine_LocalView(t *testing.T) {
	engine, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	view := engine.GetLocalView()
	if len(view) != 8 {
		t.Fatalf("Expected 8 surrounding cells, got %d", len(view))
	}
	// Cells above the corner are out of bounds, reported as obstacles
	for _, cell := range view {
		if cell.Y < 0 && cell.Type != Obstacle {
			t.Errorf("Expected out-of-bounds cell (%d,%d) to read as obstacle, got %s", cell.X, cell.Y, cell.Type)
		}
	}
}

func TestValidateGameConfig_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"missing name", func(c *GameConfig) { c.Name = "" }},
		{"no start", func(c *GameConfig) { c.Layout[0] = "....." }},
		{"two starts", func(c *GameConfig) { c.Layout[0] = "S..S." }},
		{"no treasure", func(c *GameConfig) { c.Layout[4] = "....." }},
		{"ragged row", func(c *GameConfig) { c.Layout[2] = ".XF~" }},
		{"invalid character", func(c *GameConfig) { c.Layout[1] = ".Z.~." }},
		{"negative starting energy", func(c *GameConfig) { c.StartingEnergy = -1 }},
		{"starting above max", func(c *GameConfig) { c.StartingEnergy = 30 }},
		{"zero terrain cost", func(c *GameConfig) { c.TerrainCosts = map[string]int{"~": 0} }},
		{"bad cost symbol", func(c *GameConfig) { c.TerrainCosts = map[string]int{"z": 2} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := createTestConfig()
			tt.mutate(config)
			if err := ValidateGameConfig(config); err == nil {
				t.Errorf("Expected validation error for %s", tt.name)
			}
		})
	}
}

func TestDefaultConfig_IsValid(t *testing.T) {
	if err := ValidateGameConfig(DefaultConfig()); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestAnalyzeEnergyRisk(t *testing.T) {
	engine, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	risk := AnalyzeEnergyRisk(engine.GetState())
	if risk == "" {
		t.Error("Expected non-empty risk assessment")
	}

	engine.GetState().Energy = 0
	if risk := AnalyzeEnergyRisk(engine.GetState()); risk != "CRITICAL: Energy empty!" {
		t.Errorf("Expected critical risk at zero energy, got %q", risk)
	}
}
