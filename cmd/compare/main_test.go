package main

import (
	"strings"
	"testing"
	"time"

	"github.com/PhoneMk/treasure-hunt/game/search"
)

func TestFormatResultRow(t *testing.T) {
	result := &search.Result{
		Algorithm:     search.AStar,
		Heuristic:     search.Chebyshev,
		Success:       true,
		PathLength:    8,
		PathCost:      10,
		NodesExplored: 51,
		MaxMemory:     30,
		Duration:      2 * time.Millisecond,
	}

	row := formatResultRow(result)
	for _, expected := range []string{"astar", "informed", "yes", "8", "10", "51"} {
		if !strings.Contains(row, expected) {
			t.Errorf("Expected %q in row, got: %s", expected, row)
		}
	}
}

func TestFormatResultRow_Blind(t *testing.T) {
	result := &search.Result{
		Algorithm:     search.BFS,
		Success:       true,
		PathLength:    8,
		NodesExplored: 106,
	}

	row := formatResultRow(result)
	if !strings.Contains(row, "blind") {
		t.Errorf("Expected bfs classified as blind, got: %s", row)
	}
}

func TestFormatResultRow_Failed(t *testing.T) {
	result := &search.Result{
		Algorithm:     search.DFS,
		Success:       false,
		NodesExplored: 40,
	}

	row := formatResultRow(result)
	if !strings.Contains(row, "no") {
		t.Errorf("Expected failed result marked no, got: %s", row)
	}
	if !strings.Contains(row, "-") {
		t.Errorf("Expected dashes for missing path stats, got: %s", row)
	}
}

func TestSearcherFor(t *testing.T) {
	manager, err := newManager()
	if err != nil {
		t.Fatalf("Failed to create config manager: %v", err)
	}

	searcher, err := searcherFor(manager, "medium")
	if err != nil {
		t.Fatalf("Failed to build searcher for medium map: %v", err)
	}

	result, err := searcher.Run(search.AStar, search.DefaultHeuristic)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if !result.Success {
		t.Error("Expected astar to find a path on the medium map")
	}
	if result.PathLength != 8 {
		t.Errorf("Expected 8 moves on the medium map, got %d", result.PathLength)
	}
}

func TestSearcherFor_UnknownMap(t *testing.T) {
	manager, err := newManager()
	if err != nil {
		t.Fatalf("Failed to create config manager: %v", err)
	}

	if _, err := searcherFor(manager, "does-not-exist"); err == nil {
		t.Error("Expected error for unknown map")
	}
}

func TestBuiltinMapsAreSearchable(t *testing.T) {
	manager, err := newManager()
	if err != nil {
		t.Fatalf("Failed to create config manager: %v", err)
	}

	infos, err := manager.ListConfigs()
	if err != nil {
		t.Fatalf("Failed to list configs: %v", err)
	}

	for _, info := range infos {
		searcher, err := searcherFor(manager, info.ConfigID)
		if err != nil {
			t.Errorf("Map %s failed to build: %v", info.ConfigID, err)
			continue
		}
		if _, err := searcher.CompareAll(search.DefaultHeuristic); err != nil {
			t.Errorf("Map %s comparison failed: %v", info.ConfigID, err)
		}
	}
}
