package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpfile.Close()
	return tmpfile.Name()
}

func hasError(result ValidationResult, substr string) bool {
	for _, err := range result.Errors {
		if strings.Contains(err, substr) {
			return true
		}
	}
	return false
}

func TestValidateConfig_ValidConfig(t *testing.T) {
	validConfig := `{
		"name": "Test Map",
		"description": "Test configuration",
		"layout": [
			"S..~.",
			".X.^.",
			".F..T"
		],
		"starting_energy": 12,
		"max_energy": 20,
		"food_energy": 5
	}`

	path := writeTempConfig(t, validConfig)
	result := validateConfig(path)
	if !result.Valid {
		t.Errorf("Expected valid config, but got errors: %v", result.Errors)
	}
	if result.File != filepath.Base(path) {
		t.Errorf("Expected file name %s, got %s", filepath.Base(path), result.File)
	}
	if !hasError(result, "Connectivity") {
		t.Error("Expected connectivity confirmation in output")
	}
}

func TestValidateConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{"name": "test", invalid json}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config due to bad JSON")
	}
	if !hasError(result, "Invalid JSON") {
		t.Errorf("Expected JSON error, got: %v", result.Errors)
	}
}

func TestValidateConfig_MissingFile(t *testing.T) {
	result := validateConfig("/nonexistent/path/config.json")
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
	if !hasError(result, "Failed to read file") {
		t.Errorf("Expected read error, got: %v", result.Errors)
	}
}

func TestValidateConfig_EmptyLayout(t *testing.T) {
	path := writeTempConfig(t, `{
		"name": "Empty",
		"layout": [],
		"starting_energy": 10,
		"max_energy": 10,
		"food_energy": 5
	}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config for empty layout")
	}
	if !hasError(result, "Layout is empty") {
		t.Errorf("Expected layout error, got: %v", result.Errors)
	}
}

func TestValidateConfig_DuplicateStart(t *testing.T) {
	path := writeTempConfig(t, `{
		"name": "Two Starts",
		"layout": [
			"S.S",
			"..T"
		],
		"starting_energy": 10,
		"max_energy": 10,
		"food_energy": 5
	}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config for duplicate start")
	}
	if !hasError(result, "exactly 1 start") {
		t.Errorf("Expected start count error, got: %v", result.Errors)
	}
}

func TestValidateConfig_NoTreasure(t *testing.T) {
	path := writeTempConfig(t, `{
		"name": "No Treasure",
		"layout": [
			"S..",
			"..."
		],
		"starting_energy": 10,
		"max_energy": 10,
		"food_energy": 5
	}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config without treasure")
	}
	if !hasError(result, "exactly 1 treasure") {
		t.Errorf("Expected treasure count error, got: %v", result.Errors)
	}
}

func TestValidateConfig_InvalidCharacter(t *testing.T) {
	path := writeTempConfig(t, `{
		"name": "Bad Char",
		"layout": [
			"S.Z",
			"..T"
		],
		"starting_energy": 10,
		"max_energy": 10,
		"food_energy": 5
	}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config for unknown symbol")
	}
	if !hasError(result, "Invalid character 'Z'") {
		t.Errorf("Expected character error, got: %v", result.Errors)
	}
}

func TestValidateConfig_InvalidEnergy(t *testing.T) {
	tests := []struct {
		name   string
		json   string
		expect string
	}{
		{
			name:   "negative starting energy",
			json:   `{"name":"x","layout":["S.T"],"starting_energy":-1,"max_energy":10,"food_energy":5}`,
			expect: "starting_energy must be positive",
		},
		{
			name:   "zero max energy",
			json:   `{"name":"x","layout":["S.T"],"starting_energy":5,"max_energy":0,"food_energy":5}`,
			expect: "max_energy must be positive",
		},
		{
			name:   "starting exceeds max",
			json:   `{"name":"x","layout":["S.T"],"starting_energy":15,"max_energy":10,"food_energy":5}`,
			expect: "cannot exceed max_energy",
		},
		{
			name:   "zero food energy with foods",
			json:   `{"name":"x","layout":["SFT"],"starting_energy":5,"max_energy":10,"food_energy":0}`,
			expect: "food_energy must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.json)
			result := validateConfig(path)
			if result.Valid {
				t.Error("Expected invalid config")
			}
			if !hasError(result, tt.expect) {
				t.Errorf("Expected %q error, got: %v", tt.expect, result.Errors)
			}
		})
	}
}

func TestValidateConnectivity_ValidLayout(t *testing.T) {
	layout := []string{
		"S..",
		".X.",
		"F.T",
	}

	result := validateConnectivity(layout)
	if !result.Valid {
		t.Errorf("Expected connected layout, got errors: %v", result.Errors)
	}
}

func TestValidateConnectivity_WalledTreasure(t *testing.T) {
	layout := []string{
		"S.X.",
		"..XT",
		"..X.",
	}

	result := validateConnectivity(layout)
	if result.Valid {
		t.Error("Expected failure for walled-off treasure")
	}
	if !hasError(result, "treasure at (3,1) unreachable") {
		t.Errorf("Expected treasure reachability error, got: %v", result.Errors)
	}
}

func TestValidateConnectivity_DiagonalPassage(t *testing.T) {
	// Diagonal moves squeeze between orthogonally adjacent obstacles
	layout := []string{
		"S.X",
		".XT",
	}

	result := validateConnectivity(layout)
	if !result.Valid {
		t.Errorf("Expected diagonal passage to reach treasure, got: %v", result.Errors)
	}
}

func TestValidateConnectivity_UnreachableFood(t *testing.T) {
	layout := []string{
		"S.XF",
		"..XX",
		"..T.",
	}

	result := validateConnectivity(layout)
	if result.Valid {
		t.Error("Expected failure for unreachable food")
	}
	if !hasError(result, "food at (3,0)") {
		t.Errorf("Expected food reachability error, got: %v", result.Errors)
	}
}

func TestValidateConnectivity_EmptyLayout(t *testing.T) {
	result := validateConnectivity([]string{})
	if result.Valid {
		t.Error("Expected failure for empty layout")
	}
}
