package search

import (
	"testing"

	"github.com/PhoneMk/treasure-hunt/game/engine"
)

func buildSearcher(t *testing.T, layout []string, startingEnergy, maxEnergy, foodEnergy int) *Searcher {
	t.Helper()
	config := &engine.GameConfig{
		Name:           "search test",
		Layout:         layout,
		StartingEnergy: startingEnergy,
		MaxEnergy:      maxEnergy,
		FoodEnergy:     foodEnergy,
	}
	grid, err := engine.NewGrid(config)
	if err != nil {
		t.Fatalf("Failed to build grid: %v", err)
	}
	return NewSearcher(grid)
}

// checkPath verifies a success result's path runs start to treasure in
// single 8-directional steps over traversable tiles.
func checkPath(t *testing.T, s *Searcher, res *Result) {
	t.Helper()
	if !res.Success {
		t.Fatalf("%s: expected success", res.Algorithm)
	}
	if len(res.Path) == 0 {
		t.Fatalf("%s: expected non-empty path", res.Algorithm)
	}
	if res.Path[0] != s.Grid().Start() {
		t.Errorf("%s: path must begin at the start, got %v", res.Algorithm, res.Path[0])
	}
	if res.Path[len(res.Path)-1] != s.Grid().Treasure() {
		t.Errorf("%s: path must end at the treasure, got %v", res.Algorithm, res.Path[len(res.Path)-1])
	}
	if res.PathLength != len(res.Path)-1 {
		t.Errorf("%s: path length %d does not match %d positions", res.Algorithm, res.PathLength, len(res.Path))
	}
	for i := 1; i < len(res.Path); i++ {
		prev, cur := res.Path[i-1], res.Path[i]
		if prev.ChebyshevDistance(cur) != 1 {
			t.Errorf("%s: %v -> %v is not a single step", res.Algorithm, prev, cur)
		}
		if s.Grid().TerrainAt(cur) == engine.Obstacle {
			t.Errorf("%s: path crosses obstacle at %v", res.Algorithm, cur)
		}
	}
	if res.FinalEnergy < 0 {
		t.Errorf("%s: final energy must be non-negative, got %d", res.Algorithm, res.FinalEnergy)
	}
	if res.NodesExplored <= 0 || res.MaxMemory <= 0 {
		t.Errorf("%s: expected positive statistics, nodes=%d memory=%d",
			res.Algorithm, res.NodesExplored, res.MaxMemory)
	}
}

var mediumLayout = []string{
	"S..~~^.",
	".X.~F^.",
	"..X~~..",
	".F~~X..",
	"..~X.F.",
	"~~~..X.",
	"..^..XT",
}

func TestRun_AllStrategiesFindAPath(t *testing.T) {
	s := buildSearcher(t, mediumLayout, 12, 20, 5)

	for _, algo := range Algorithms() {
		res, err := s.Run(algo, Chebyshev)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", algo, err)
		}
		checkPath(t, s, res)
	}
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	s := buildSearcher(t, []string{"S.", ".T"}, 12, 20, 5)

	if _, err := s.Run(Algorithm("quantum"), Chebyshev); err == nil {
		t.Error("Expected error for unknown algorithm")
	}
}

func TestRun_UnknownHeuristic(t *testing.T) {
	s := buildSearcher(t, []string{"S.", ".T"}, 12, 20, 5)

	if _, err := s.Run(AStar, Heuristic("teleport")); err == nil {
		t.Error("Expected error for unknown heuristic")
	}
}

func TestParseHeuristic(t *testing.T) {
	for _, h := range Heuristics() {
		if parsed, err := ParseHeuristic(string(h)); err != nil || parsed != h {
			t.Errorf("Expected %q to parse, got %q err=%v", h, parsed, err)
		}
	}
	if parsed, err := ParseHeuristic(""); err != nil || parsed != DefaultHeuristic {
		t.Errorf("Expected empty name to yield the default, got %q err=%v", parsed, err)
	}
	if _, err := ParseHeuristic("teleport"); err == nil {
		t.Error("Expected unknown heuristic name to be rejected")
	}
}

func TestBFS_HopOptimal(t *testing.T) {
	// Uniform-cost map, no foods: BFS must find the fewest-moves route
	s := buildSearcher(t, []string{
		"S....",
		".....",
		".....",
		".....",
		"....T",
	}, 20, 20, 5)

	res, err := s.Run(BFS, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	checkPath(t, s, res)
	// Chebyshev distance is the true minimum step count under diagonals
	if want := s.Grid().Start().ChebyshevDistance(s.Grid().Treasure()); res.PathLength != want {
		t.Errorf("Expected %d moves, got %d", want, res.PathLength)
	}
}

func TestAStar_MatchesDijkstraCost(t *testing.T) {
	layouts := [][]string{
		{"S.", ".T"},
		{"S..~~", ".X~..", "..F.T"},
		mediumLayout,
	}

	for _, layout := range layouts {
		s := buildSearcher(t, layout, 12, 20, 5)

		dij, err := s.Run(Dijkstra, "")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		ast, err := s.Run(AStar, Chebyshev)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if dij.Success != ast.Success {
			t.Fatalf("Expected matching outcomes, dijkstra=%v astar=%v", dij.Success, ast.Success)
		}
		if dij.Success && dij.PathCost != ast.PathCost {
			t.Errorf("Expected equal optimal costs, dijkstra=%d astar=%d", dij.PathCost, ast.PathCost)
		}
	}
}

func TestWeightedAStar_NeverBeatsAStar(t *testing.T) {
	s := buildSearcher(t, mediumLayout, 12, 20, 5)

	ast, _ := s.Run(AStar, Chebyshev)
	wast, _ := s.Run(WeightedAStar, Chebyshev)
	if !ast.Success || !wast.Success {
		t.Fatal("Expected both strategies to succeed")
	}
	if wast.PathCost < ast.PathCost {
		t.Errorf("Weighted A* cost %d beats A* cost %d", wast.PathCost, ast.PathCost)
	}
}

func TestHeuristic_Admissibility(t *testing.T) {
	// Brute-force: the scaled estimate must never exceed the true
	// cheapest cost from any traversable tile to the treasure.
	s := buildSearcher(t, mediumLayout, 99, 99, 0)
	goal := s.Grid().Treasure()
	minCost := s.Grid().MinStepCost()

	for y := 0; y < s.Grid().Height; y++ {
		for x := 0; x < s.Grid().Width; x++ {
			pos := engine.Position{X: x, Y: y}
			if s.Grid().TerrainAt(pos) == engine.Obstacle {
				continue
			}
			// A* with the zero heuristic is plain Dijkstra: ground truth
			path, stats := s.AStarPath(pos, goal, Zero)
			if path == nil {
				continue
			}
			for _, h := range []Heuristic{Chebyshev, Zero} {
				if est := h.Estimate(pos, goal, minCost); est > float64(stats.TotalEnergyCost) {
					t.Errorf("%s overestimates at %v: %f > %d", h, pos, est, stats.TotalEnergyCost)
				}
			}
		}
	}
}

func TestRun_Deterministic(t *testing.T) {
	s := buildSearcher(t, mediumLayout, 12, 20, 5)

	for _, algo := range Algorithms() {
		first, err := s.Run(algo, Chebyshev)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", algo, err)
		}
		second, err := s.Run(algo, Chebyshev)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", algo, err)
		}

		if first.NodesExplored != second.NodesExplored {
			t.Errorf("%s: node counts differ across runs: %d vs %d",
				algo, first.NodesExplored, second.NodesExplored)
		}
		if len(first.Path) != len(second.Path) {
			t.Fatalf("%s: path lengths differ across runs", algo)
		}
		for i := range first.Path {
			if first.Path[i] != second.Path[i] {
				t.Errorf("%s: paths diverge at step %d", algo, i)
			}
		}
	}
}

func TestScenario_OpenGridWithFood(t *testing.T) {
	// 5x5 open grid, food on the diagonal: the optimal route is the
	// diagonal itself, picking up the food on the way through.
	s := buildSearcher(t, []string{
		"S....",
		".....",
		"..F..",
		".....",
		"....T",
	}, 12, 20, 5)

	ast, err := s.Run(AStar, Chebyshev)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	checkPath(t, s, ast)

	if len(ast.Path) != 5 {
		t.Errorf("Expected the 5-tile diagonal route, got %d tiles", len(ast.Path))
	}
	if ast.PathCost != 4 {
		t.Errorf("Expected path cost 4, got %d", ast.PathCost)
	}
	if ast.FoodsCollected != 1 {
		t.Errorf("Expected the diagonal to collect the food, got %d", ast.FoodsCollected)
	}
	if ast.FinalEnergy != 12-4+5 {
		t.Errorf("Expected final energy %d, got %d", 12-4+5, ast.FinalEnergy)
	}

	bfs, err := s.Run(BFS, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if ast.NodesExplored >= bfs.NodesExplored {
		t.Errorf("Expected A* to explore fewer nodes than BFS, astar=%d bfs=%d",
			ast.NodesExplored, bfs.NodesExplored)
	}
}

func TestScenario_WalledOff(t *testing.T) {
	// A full wall separates start and treasure: every strategy reports
	// failure as a normal result, never an error.
	s := buildSearcher(t, []string{
		"S.X..",
		"..X..",
		"..X..",
		"..X..",
		"..X.T",
	}, 20, 20, 5)

	for _, algo := range Algorithms() {
		res, err := s.Run(algo, Chebyshev)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", algo, err)
		}
		if res.Success {
			t.Errorf("%s: expected failure on a walled-off map", algo)
		}
		if res.Path != nil {
			t.Errorf("%s: expected no path on failure", algo)
		}
		if res.NodesExplored <= 0 {
			t.Errorf("%s: expected exploration work to be reported", algo)
		}
	}
}

func TestScenario_ExactEnergyReachesGoal(t *testing.T) {
	// Two open moves with exactly two energy: arriving at zero is valid
	s := buildSearcher(t, []string{"S.T"}, 2, 20, 5)

	res, err := s.Run(AStar, Chebyshev)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !res.Success {
		t.Fatal("Expected success when the route ends at exactly zero energy")
	}
	if res.FinalEnergy != 0 {
		t.Errorf("Expected final energy 0, got %d", res.FinalEnergy)
	}
}

func TestScenario_InsufficientEnergy(t *testing.T) {
	s := buildSearcher(t, []string{"S.T"}, 1, 20, 5)

	for _, algo := range Algorithms() {
		res, err := s.Run(algo, Chebyshev)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", algo, err)
		}
		if res.Success {
			t.Errorf("%s: expected failure with too little energy", algo)
		}
	}
}

func TestScenario_FoodMakesGoalReachable(t *testing.T) {
	// Five open moves on 3 starting energy only works via the food
	s := buildSearcher(t, []string{"S.F..T"}, 3, 20, 5)

	res, err := s.Run(AStar, Chebyshev)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !res.Success {
		t.Fatal("Expected food pickup to make the treasure reachable")
	}
	if res.FoodsCollected != 1 {
		t.Errorf("Expected 1 food collected, got %d", res.FoodsCollected)
	}
}

func TestIDS_MatchesBFSMoves(t *testing.T) {
	s := buildSearcher(t, []string{
		"S....",
		".XXX.",
		".....",
		".XXX.",
		"....T",
	}, 20, 20, 5)

	bfs, _ := s.Run(BFS, "")
	ids, _ := s.Run(IDS, "")
	if !bfs.Success || !ids.Success {
		t.Fatal("Expected both strategies to succeed")
	}
	if ids.PathLength != bfs.PathLength {
		t.Errorf("Expected iterative deepening to match BFS moves, ids=%d bfs=%d",
			ids.PathLength, bfs.PathLength)
	}
}

func TestDFS_RespectsDepthLimit(t *testing.T) {
	s := buildSearcher(t, []string{
		"S....",
		".....",
		".....",
		".....",
		"....T",
	}, 20, 20, 5)

	res, err := s.Run(DFS, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !res.Success {
		t.Fatal("Expected DFS to reach the treasure under the default depth limit")
	}

	s.MaxDepth = 1
	res, err = s.Run(DFS, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if res.Success {
		t.Error("Expected DFS to fail when the depth limit cuts off the treasure")
	}
}

func TestGreedy_CountsExpandedStatesOnly(t *testing.T) {
	s := buildSearcher(t, []string{
		"S....",
		"...X.",
		".XXX.",
		"....T",
	}, 50, 60, 5)

	res, err := s.Run(Greedy, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !res.Success {
		t.Fatal("Expected greedy to reach the treasure")
	}
	// stale frontier duplicates of an already expanded state are skipped,
	// not tallied, so the count stays at the number of distinct expansions
	if res.NodesExplored != 9 {
		t.Errorf("Expected 9 expanded states, got %d", res.NodesExplored)
	}
}

func TestCompareAll(t *testing.T) {
	s := buildSearcher(t, mediumLayout, 12, 20, 5)

	cmp, err := s.CompareAll(Chebyshev)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(cmp.Results) != len(Algorithms()) {
		t.Fatalf("Expected %d results, got %d", len(Algorithms()), len(cmp.Results))
	}
	if cmp.Best == "" {
		t.Error("Expected a best strategy on a solvable map")
	}
	if cmp.AvgBlindNodes <= 0 || cmp.AvgInformedNodes <= 0 {
		t.Error("Expected positive family averages")
	}
}

func TestCompareAll_UnknownHeuristic(t *testing.T) {
	s := buildSearcher(t, []string{"S.", ".T"}, 12, 20, 5)

	if _, err := s.CompareAll(Heuristic("teleport")); err == nil {
		t.Error("Expected error for unknown heuristic")
	}
}
