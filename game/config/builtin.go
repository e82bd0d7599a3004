package config

import "github.com/PhoneMk/treasure-hunt/game/engine"

// builtinConfigs returns the maps compiled into the binary. They are
// available even when no config directory is configured, and they are
// the fixtures the comparison CLI runs against.
func builtinConfigs() map[string]*engine.GameConfig {
	return map[string]*engine.GameConfig{
		"original": engine.DefaultConfig(),

		"simple": newBuiltinConfig("simple",
			"Open 5x5 grid with one food on the way",
			"S....",
			".....",
			"..F..",
			".....",
			"....T",
		),

		"energy_trap": newBuiltinConfig("energy_trap",
			"Swamps and hills drain energy around a single refuel",
			"S..~~~....T",
			".^^^~~^..^.",
			"..~~~..~~..",
			".^..F..^.^.",
			"....~~~....",
		),

		"medium": newBuiltinConfig("medium",
			"Mixed terrain with obstacles and scattered food",
			"S.~F.X^^^",
			".X~~.X^F^",
			".X.F~~.X.",
			"F..X~..^.",
			"~~X..F^^T",
		),

		"complex": newBuiltinConfig("complex",
			"A sea of swamp with food islands",
			"S.......F",
			"~~~~~~~~~",
			"~~~~~~~~~",
			"~~~~~~~~~",
			"F~~~F~~~F",
			"~~~~~~~~~",
			"~~~~~~~~~",
			"~~~~~~~~~",
			"F.......T",
		),

		"optimal_refuel": newBuiltinConfig("optimal_refuel",
			"A detour to food is the only survivable route",
			"S...XXXXXXXXXXXXXX",
			"XXXX.X~~~~~~~~~~~X",
			"F....X.XXXXXXXXXXX",
			"XXXX.X...........X",
			"T....X...........X",
		),

		"maze_like": newBuiltinConfig("maze_like",
			"Winding walls reward systematic exploration",
			"S.X.F.X..",
			".XXXXX.X.",
			".......X.",
			"XXXX.XXX.",
			"F..X...X.",
			".X.XXX.X.",
			".......X.",
			"XXXXX.X..",
			"F.....XFT",
		),

		"energy_crisis": newBuiltinConfig("energy_crisis",
			"A swamp ring around a walled food cache",
			"S~~~~~~~~",
			"~XXXXXXX~",
			"~X.....X~",
			"~X.XXX.X~",
			"~X.XFX.X~",
			"~X.XXX.X~",
			"~X.....X~",
			"~XXXXXXX~",
			"~~~~~~~~T",
		),

		"food_desert": newBuiltinConfig("food_desert",
			"Open terrain with one food in the middle of nowhere",
			"S........",
			".........",
			".........",
			"....F....",
			".........",
			".........",
			".........",
			".........",
			"........T",
		),

		"hills_and_valleys": newBuiltinConfig("hills_and_valleys",
			"Costly hills with a cheap valley in the corner",
			"S.F^^^^^^",
			".^^^^^^^^",
			"F^^^^^^^^",
			"^^^^^F^^^",
			"^^^^...^^",
			"^^^.....^",
			"^^F.....^",
			"^.......^",
			"F.......T",
		),

		"narrow_corridors": newBuiltinConfig("narrow_corridors",
			"Single-tile passages with food pockets",
			"SXXXXXXXXX",
			".XXXXXXXX.",
			"F.XXXXXX.F",
			"X.XXXXX.XX",
			"XX.XXX.XXX",
			"XXX.X.XXXX",
			"XXXX.XXXXX",
			"XXXF.FFFXX",
			"XXXXXXX..T",
		),

		"optimal_vs_safe": newBuiltinConfig("optimal_vs_safe",
			"A short swampy shortcut against a long open road",
			"S.......F.",
			"~~~~~~~~~.",
			"~~~~~~~~~.",
			"~~~~~~~~~.",
			"~~~~~~~~~.",
			"..........",
			"F.........",
			"..........",
			".........T",
		),

		"dfs_trap": newBuiltinConfig("dfs_trap",
			"Long false corridors that punish depth-first descent",
			"S.........",
			"XXXXXXXXX.",
			"........X.",
			".XXXXXXXX.",
			"..........",
			"XXXXXXXXX.",
			"X.........",
			".XXXXXXXX.",
			"F.......T.",
		),

		"bfs_memory_killer": newBuiltinConfig("bfs_memory_killer",
			"A wide open field that blows up breadth-first frontiers",
			"S..................F",
			"....................",
			"....................",
			"....................",
			"....................",
			"....................",
			"....................",
			"....................",
			"....................",
			"....................",
			"....................",
			"....................",
			"....................",
			"....................",
			"....................",
			"....................",
			"....................",
			"....................",
			"...................T",
		),

		"energy_impossible": newBuiltinConfig("energy_impossible",
			"The treasure sits beyond any reachable energy budget",
			"S~~~~~~~",
			"~XXXXXXX",
			"~X.....X",
			"~X.XXX.X",
			"~X.X.X.X",
			"~X.XXX.X",
			"~X.....X",
			"~XXXXXXT",
		),
	}
}

// newBuiltinConfig builds a config with the standard energy settings
// and messages, differing only in name, description, and layout.
func newBuiltinConfig(name, description string, layout ...string) *engine.GameConfig {
	config := engine.DefaultConfig()
	config.Name = name
	config.Description = description
	config.Layout = layout
	return config
}
