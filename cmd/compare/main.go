// Command compare benchmarks the search algorithms against the built-in
// maps. It prints per-algorithm statistics and an informed-vs-blind summary
// so different strategies can be judged on the same terrain.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/PhoneMk/treasure-hunt/game/config"
	"github.com/PhoneMk/treasure-hunt/game/engine"
	"github.com/PhoneMk/treasure-hunt/game/search"
)

func main() {
	cmd := &cli.Command{
		Name:  "compare",
		Usage: "Benchmark search algorithms on treasure hunt maps",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the available maps",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return listMaps()
				},
			},
			{
				Name:  "run",
				Usage: "Run algorithms on a single map",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "map",
						Value: "medium",
						Usage: "Map to search (see list)",
					},
					&cli.StringFlag{
						Name:  "heuristic",
						Value: "",
						Usage: "Heuristic for informed algorithms (manhattan, euclidean, chebyshev, zero)",
					},
					&cli.StringSliceFlag{
						Name:    "algorithm",
						Aliases: []string{"a"},
						Usage:   "Algorithm to run (repeatable, default all)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runMap(cmd.String("map"), cmd.String("heuristic"), cmd.StringSlice("algorithm"))
				},
			},
			{
				Name:  "all",
				Usage: "Run the full comparison on every built-in map",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "heuristic",
						Value: "",
						Usage: "Heuristic for informed algorithms",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runAll(cmd.String("heuristic"))
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newManager() (*config.Manager, error) {
	dir := os.Getenv("CONFIG_DIR")
	return config.NewManager(dir)
}

func listMaps() error {
	manager, err := newManager()
	if err != nil {
		return err
	}

	infos, err := manager.ListConfigs()
	if err != nil {
		return err
	}

	fmt.Printf("%-20s %-8s %-12s %-6s\n", "Map", "Size", "Energy", "Foods")
	fmt.Println(strings.Repeat("-", 50))
	for _, info := range infos {
		fmt.Printf("%-20s %-8s %-12s %-6d\n",
			info.ConfigID,
			fmt.Sprintf("%dx%d", info.Width, info.Height),
			fmt.Sprintf("%d/%d", info.StartingEnergy, info.MaxEnergy),
			info.Foods)
	}
	return nil
}

func searcherFor(manager *config.Manager, mapName string) (*search.Searcher, error) {
	cfg, err := manager.LoadConfig(mapName)
	if err != nil {
		return nil, fmt.Errorf("map %q: %w", mapName, err)
	}
	grid, err := engine.NewGrid(cfg)
	if err != nil {
		return nil, fmt.Errorf("map %q: %w", mapName, err)
	}
	return search.NewSearcher(grid), nil
}

func runMap(mapName, heuristic string, algorithms []string) error {
	manager, err := newManager()
	if err != nil {
		return err
	}
	searcher, err := searcherFor(manager, mapName)
	if err != nil {
		return err
	}

	var results []*search.Result
	if len(algorithms) == 0 {
		comparison, err := searcher.CompareAll(search.Heuristic(heuristic))
		if err != nil {
			return err
		}
		printResults(mapName, comparison.Results)
		printSummary(comparison)
		return nil
	}

	for _, name := range algorithms {
		algo, err := search.ParseAlgorithm(name)
		if err != nil {
			return err
		}
		result, err := searcher.Run(algo, search.Heuristic(heuristic))
		if err != nil {
			return err
		}
		results = append(results, result)
	}
	printResults(mapName, results)
	return nil
}

func runAll(heuristic string) error {
	manager, err := newManager()
	if err != nil {
		return err
	}

	infos, err := manager.ListConfigs()
	if err != nil {
		return err
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.ConfigID)
	}
	sort.Strings(names)

	for _, name := range names {
		searcher, err := searcherFor(manager, name)
		if err != nil {
			return err
		}
		comparison, err := searcher.CompareAll(search.Heuristic(heuristic))
		if err != nil {
			return err
		}

		fmt.Printf("\n%s\n", strings.Repeat("=", 78))
		printResults(name, comparison.Results)
		printSummary(comparison)
	}
	return nil
}

func printResults(mapName string, results []*search.Result) {
	fmt.Printf("\nMap: %s\n\n", mapName)
	fmt.Printf("%-15s %-10s %-8s %-6s %-6s %-8s %-8s %-8s %-10s\n",
		"Algorithm", "Type", "Found", "Moves", "Cost", "Energy", "Nodes", "Memory", "Time(ms)")
	fmt.Println(strings.Repeat("-", 78))

	for _, r := range results {
		fmt.Println(formatResultRow(r))
	}
}

func formatResultRow(r *search.Result) string {
	kind := "informed"
	switch r.Algorithm {
	case search.BFS, search.DFS, search.IDS:
		kind = "blind"
	}

	found := "no"
	moves := "-"
	cost := "-"
	energy := "-"
	if r.Success {
		found = "yes"
		moves = fmt.Sprintf("%d", r.PathLength)
		cost = fmt.Sprintf("%d", r.PathCost)
		energy = fmt.Sprintf("%d", r.FinalEnergy)
	}

	return fmt.Sprintf("%-15s %-10s %-8s %-6s %-6s %-8s %-8d %-8d %-10.2f",
		r.Algorithm, kind, found, moves, cost, energy,
		r.NodesExplored, r.MaxMemory,
		float64(r.Duration.Microseconds())/1000.0)
}

func printSummary(comparison *search.Comparison) {
	fmt.Println()
	if comparison.Best != "" {
		fmt.Printf("Best: %s\n", comparison.Best)
	} else {
		fmt.Println("No algorithm found a path.")
	}
	fmt.Printf("Avg nodes (blind):    %.1f\n", comparison.AvgBlindNodes)
	fmt.Printf("Avg nodes (informed): %.1f\n", comparison.AvgInformedNodes)
	if comparison.Improvement > 0 {
		fmt.Printf("Informed search explored %.1f%% fewer nodes\n", comparison.Improvement)
	}
}
