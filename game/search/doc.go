// Package search implements the pathfinding strategies for the Treasure
// Hunt Game.
//
// Seven interchangeable strategies run over the same energy-aware state
// space defined by engine.Grid:
//   - bfs: breadth-first, fewest moves
//   - dfs: depth-first, fast but arbitrary
//   - ids: iterative deepening, BFS answers at DFS memory
//   - dijkstra: cheapest by terrain cost
//   - greedy: heuristic-only best-first
//   - astar: cheapest by terrain cost, guided by an admissible heuristic
//   - weighted_astar: A* with an inflated heuristic
//
// Every strategy returns a Result carrying the path (when one exists)
// and comparable statistics: nodes explored, peak tracked states, path
// cost, and wall-clock duration. Failing to find a path is a normal
// Result, not an error. Runs are deterministic: the same grid, strategy,
// and heuristic always produce the same path and the same counts, with
// priority ties broken by insertion order.
//
// Usage:
//
//	grid, err := engine.NewGrid(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	searcher := search.NewSearcher(grid)
//	result, err := searcher.Run(search.AStar, search.Chebyshev)
//
//	comparison, err := searcher.CompareAll(search.Chebyshev)
//
// Point-to-point planning for interactive sessions is available through
// BFSPath, AStarPath, and PlanWithFood; the latter plans from a mid-game
// position with the player's remaining energy and pantry of uneaten
// foods taken into account.
package search
