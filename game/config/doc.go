// Package config manages game map configurations.
//
// Two sources feed the manager. A set of builtin maps is compiled into
// the binary, covering the spread from tiny open grids to mazes, swamp
// crossings, and maps designed to stress a particular search strategy.
// Optionally, a config directory adds user-authored JSON maps on top;
// disk maps are cached after first load and never shadow a builtin.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load a builtin or on-disk map by ID
//	cfg, err := manager.LoadConfig("energy_trap")
//
//	// List everything that is available
//	infos, err := manager.ListConfigs()
//
// NewManager("") serves builtin maps only, which is how the MCP stdio
// mode and the comparison CLI run without any files on disk.
package config
