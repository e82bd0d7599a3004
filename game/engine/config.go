package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateGameConfig validates a game configuration for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	// Validate required fields
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}

	// Validate layout dimensions
	if len(config.Layout) < MinGridSize || len(config.Layout) > MaxGridSize {
		return fmt.Errorf("config validation: layout must have between %d and %d rows, got %d",
			MinGridSize, MaxGridSize, len(config.Layout))
	}
	width := len(config.Layout[0])
	if width < MinGridSize || width > MaxGridSize {
		return fmt.Errorf("config validation: layout must have between %d and %d columns, got %d",
			MinGridSize, MaxGridSize, width)
	}

	// Validate energy settings
	if config.StartingEnergy < 0 {
		return fmt.Errorf("config validation: starting_energy must not be negative, got %d", config.StartingEnergy)
	}
	if config.MaxEnergy < 0 {
		return fmt.Errorf("config validation: max_energy must not be negative, got %d", config.MaxEnergy)
	}
	if config.MaxEnergy > 0 && config.StartingEnergy > config.MaxEnergy {
		return fmt.Errorf("config validation: starting_energy (%d) must not exceed max_energy (%d)",
			config.StartingEnergy, config.MaxEnergy)
	}
	if config.FoodEnergy < 0 {
		return fmt.Errorf("config validation: food_energy must not be negative, got %d", config.FoodEnergy)
	}

	startCount := 0
	treasureCount := 0
	foodCount := 0
	for i, row := range config.Layout {
		if len(row) != width {
			return fmt.Errorf("config validation: row %d must have %d characters, got %d",
				i+1, width, len(row))
		}

		// Validate characters and count important cells
		for j, char := range row {
			switch char {
			case SymbolOpen, SymbolSwamp, SymbolHills, SymbolObstacle: // Valid characters
			case SymbolStart:
				startCount++
			case SymbolTreasure:
				treasureCount++
			case SymbolFood:
				foodCount++
			default:
				return fmt.Errorf("config validation: invalid character '%c' at row %d, col %d", char, i+1, j+1)
			}
		}
	}

	if startCount != 1 {
		return fmt.Errorf("config validation: layout must contain exactly one start (S) cell, got %d", startCount)
	}
	if treasureCount != 1 {
		return fmt.Errorf("config validation: layout must contain exactly one treasure (T) cell, got %d", treasureCount)
	}
	if foodCount > MaxFoods {
		return fmt.Errorf("config validation: layout must contain at most %d food (F) cells, got %d", MaxFoods, foodCount)
	}

	// Validate terrain cost overrides
	for symbol, cost := range config.TerrainCosts {
		if len(symbol) != 1 {
			return fmt.Errorf("config validation: terrain_costs key '%s' must be a single character", symbol)
		}
		if _, err := terrainForSymbol(symbol[0]); err != nil {
			return fmt.Errorf("config validation: terrain_costs key '%s' is not a terrain symbol", symbol)
		}
		if symbol[0] != SymbolObstacle && cost < 1 {
			return fmt.Errorf("config validation: terrain_costs['%s'] must be at least 1, got %d", symbol, cost)
		}
	}

	// Validate format strings
	if config.Messages.FoodCollected != "" && !strings.Contains(config.Messages.FoodCollected, "%d") {
		return fmt.Errorf("config validation: messages.food_collected must contain %%d for energy gained")
	}
	if config.Messages.EnergyStatus != "" && !strings.Contains(config.Messages.EnergyStatus, "%d") {
		return fmt.Errorf("config validation: messages.energy_status must contain %%d for energy values")
	}

	return nil
}

// LoadGameConfig loads a game configuration from a JSON file
func LoadGameConfig(filename string) (*GameConfig, error) {
	// Support CONFIG_DIR environment variable for alternative config directory
	configPath := filename
	if configDir := os.Getenv("CONFIG_DIR"); configDir != "" {
		// If filename starts with "configs/", replace with CONFIG_DIR
		if strings.HasPrefix(filename, "configs/") {
			configPath = filepath.Join(configDir, strings.TrimPrefix(filename, "configs/"))
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Validate the loaded configuration
	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadConfigByName loads a game configuration by name from the configs directory
func LoadConfigByName(configName string) (*GameConfig, error) {
	// Add .json extension if not present
	if !strings.HasSuffix(configName, ".json") {
		configName = configName + ".json"
	}

	configPath := filepath.Join("configs", configName)

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file '%s' not found", configName)
	}

	// Load and parse the config
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %v", configName, err)
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %v", configName, err)
	}

	// Validate the config
	if err := ValidateGameConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config '%s': %v", configName, err)
	}

	return &config, nil
}

// DefaultConfig returns the built-in map used when no configuration is provided.
func DefaultConfig() *GameConfig {
	config := &GameConfig{
		Name:           "original",
		Description:    "The original treasure hunt map",
		StartingEnergy: DefaultStartingEnergy,
		MaxEnergy:      DefaultMaxEnergy,
		FoodEnergy:     DefaultFoodEnergy,
		Layout: []string{
			"S..~~^.",
			".X.~F^.",
			"..X~~..",
			".F~~X..",
			"..~X.F.",
			"~~~..X.",
			"..^..XT",
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
	config.Messages.Welcome = "Welcome! Find the treasure before your energy runs out!"
	config.Messages.TreasureFound = "You found the treasure!"
	config.Messages.FoodCollected = "Food! Energy +%d"
	config.Messages.Victory = "Victory! Treasure claimed!"
	config.Messages.OutOfEnergy = "Out of energy! Game Over!"
	config.Messages.CantMove = "Can't move there!"
	config.Messages.EnergyStatus = "Energy: %d/%d"
	return config
}

// InitGameStateFromConfig creates a new game state using the provided configuration
func InitGameStateFromConfig(config *GameConfig) *GameState {
	if config == nil {
		config = DefaultConfig()
	}

	height := len(config.Layout)
	width := 0
	if height > 0 {
		width = len(config.Layout[0])
	}

	grid := make([][]Cell, height)
	for i := range grid {
		grid[i] = make([]Cell, width)
	}

	foodCount := 0
	var startPos Position

	for y := 0; y < height; y++ {
		for x := 0; x < width && x < len(config.Layout[y]); x++ {
			switch config.Layout[y][x] {
			case SymbolOpen:
				grid[y][x] = Cell{Type: Open}
			case SymbolSwamp:
				grid[y][x] = Cell{Type: Swamp}
			case SymbolHills:
				grid[y][x] = Cell{Type: Hills}
			case SymbolStart:
				grid[y][x] = Cell{Type: Start}
				startPos = Position{X: x, Y: y}
			case SymbolTreasure:
				grid[y][x] = Cell{Type: Treasure}
			case SymbolFood:
				foodID := fmt.Sprintf("food_%d", foodCount)
				grid[y][x] = Cell{Type: Food, ID: foodID}
				foodCount++
			case SymbolObstacle:
				grid[y][x] = Cell{Type: Obstacle}
			}
		}
	}

	startingEnergy := config.StartingEnergy
	if startingEnergy <= 0 {
		startingEnergy = DefaultStartingEnergy
	}
	maxEnergy := config.MaxEnergy
	if maxEnergy <= 0 {
		maxEnergy = DefaultMaxEnergy
	}

	return &GameState{
		Grid:        grid,
		PlayerPos:   startPos,
		Energy:      startingEnergy,
		MaxEnergy:   maxEnergy,
		Score:       0,
		FoodsEaten:  make(map[string]bool),
		Message:     config.Messages.Welcome,
		GameOver:    false,
		Victory:     false,
		ConfigName:  config.Name,
		MoveHistory: []MoveHistoryEntry{},
		TotalMoves:  0,
	}
}
