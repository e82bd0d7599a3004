// Command validate provides a small CLI that validates map configuration
// JSON files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Grid consistency and allowed characters (. ~ ^ S T F X)
//   - Exactly one start (S) and one treasure (T)
//   - Energy constraints (starting <= max, all positive)
//   - Connectivity: the treasure and every food are reachable from the start
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config mirrors the JSON schema for a map configuration.
type Config struct {
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Layout         []string          `json:"layout"`
	StartingEnergy int               `json:"starting_energy"`
	MaxEnergy      int               `json:"max_energy"`
	FoodEnergy     int               `json:"food_energy"`
	TerrainCosts   map[string]int    `json:"terrain_costs"`
	Legend         map[string]string `json:"legend"`
}

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single configuration JSON file.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if len(config.Layout) == 0 {
		result.Valid = false
		result.Errors = append(result.Errors, "Layout is empty")
	}

	gridWidth := -1
	startCount := 0
	treasureCount := 0
	foodCount := 0
	validChars := map[rune]bool{
		'.': true, // Open ground
		'~': true, // Swamp
		'^': true, // Hills
		'S': true, // Start
		'T': true, // Treasure
		'F': true, // Food
		'X': true, // Obstacle
	}

	for i, row := range config.Layout {
		if gridWidth == -1 {
			gridWidth = len(row)
		} else if len(row) != gridWidth {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Inconsistent grid width at row %d: expected %d, got %d", i+1, gridWidth, len(row)))
		}

		for j, char := range row {
			if !validChars[char] {
				result.Valid = false
				result.Errors = append(result.Errors, fmt.Sprintf("Invalid character '%c' at position [%d,%d]", char, i+1, j+1))
			}
			switch char {
			case 'S':
				startCount++
			case 'T':
				treasureCount++
			case 'F':
				foodCount++
			}
		}
	}

	if startCount != 1 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Must have exactly 1 start (S), got %d", startCount))
	}

	if treasureCount != 1 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Must have exactly 1 treasure (T), got %d", treasureCount))
	}

	if config.MaxEnergy <= 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("max_energy must be positive, got %d", config.MaxEnergy))
	}

	if config.StartingEnergy <= 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("starting_energy must be positive, got %d", config.StartingEnergy))
	}

	if config.StartingEnergy > config.MaxEnergy {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("starting_energy (%d) cannot exceed max_energy (%d)", config.StartingEnergy, config.MaxEnergy))
	}

	if foodCount > 0 && config.FoodEnergy <= 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("food_energy must be positive when foods exist, got %d", config.FoodEnergy))
	}

	for symbol, cost := range config.TerrainCosts {
		if cost <= 0 {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("terrain cost for %q must be positive, got %d", symbol, cost))
		}
	}

	// Connectivity validation only makes sense on a structurally valid map
	if result.Valid {
		reachability := validateConnectivity(config.Layout)
		if !reachability.Valid {
			result.Valid = false
		}
		result.Errors = append(result.Errors, reachability.Errors...)
	}

	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Grid: %dx%d", len(config.Layout), gridWidth))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Foods: %d", foodCount))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Energy: %d/%d (+%d per food)", config.StartingEnergy, config.MaxEnergy, config.FoodEnergy))
	}

	return result
}

// validateConnectivity flood fills from the start using 8-directional
// movement over non-obstacle cells and reports whether the treasure and
// every food can be reached at all, ignoring energy.
func validateConnectivity(layout []string) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	if len(layout) == 0 {
		result.Valid = false
		result.Errors = append(result.Errors, "Cannot validate connectivity: empty layout")
		return result
	}

	height := len(layout)
	width := len(layout[0])

	var start []int
	var treasure []int
	var foods [][]int

	for y := 0; y < height; y++ {
		for x := 0; x < width && x < len(layout[y]); x++ {
			switch layout[y][x] {
			case 'S':
				start = []int{x, y}
			case 'T':
				treasure = []int{x, y}
			case 'F':
				foods = append(foods, []int{x, y})
			}
		}
	}

	if start == nil {
		result.Valid = false
		result.Errors = append(result.Errors, "No start position found for connectivity test")
		return result
	}
	if treasure == nil {
		result.Valid = false
		result.Errors = append(result.Errors, "No treasure found for connectivity test")
		return result
	}

	isPassable := func(x, y int) bool {
		if x < 0 || y < 0 || y >= height || x >= width || x >= len(layout[y]) {
			return false
		}
		return layout[y][x] != 'X'
	}

	visited := make(map[string]bool)
	queue := [][]int{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		x, y := current[0], current[1]
		key := fmt.Sprintf("%d,%d", x, y)
		if visited[key] {
			continue
		}
		visited[key] = true

		directions := [][]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
		for _, dir := range directions {
			nx, ny := x+dir[0], y+dir[1]
			nkey := fmt.Sprintf("%d,%d", nx, ny)
			if !visited[nkey] && isPassable(nx, ny) {
				queue = append(queue, []int{nx, ny})
			}
		}
	}

	treasureKey := fmt.Sprintf("%d,%d", treasure[0], treasure[1])
	if !visited[treasureKey] {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Connectivity failure: treasure at (%d,%d) unreachable from start", treasure[0], treasure[1]))
	}

	unreachableFoods := 0
	for _, food := range foods {
		key := fmt.Sprintf("%d,%d", food[0], food[1])
		if !visited[key] {
			unreachableFoods++
			result.Errors = append(result.Errors, fmt.Sprintf("Unreachable: food at (%d,%d)", food[0], food[1]))
		}
	}
	if unreachableFoods > 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Connectivity failure: %d/%d foods unreachable from start", unreachableFoods, len(foods)))
	}

	if result.Valid {
		result.Errors = append(result.Errors, "✓ Connectivity: treasure and all foods reachable from start")
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	if dir := os.Getenv("CONFIG_DIR"); dir != "" {
		configDir = dir
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	if len(files) == 0 {
		fmt.Printf("No config files found in %s\n", configDir)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
