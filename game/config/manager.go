package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/PhoneMk/treasure-hunt/game/engine"
	"github.com/PhoneMk/treasure-hunt/game/service"
)

var (
	ErrConfigNotFound = errors.New("configuration not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// DefaultConfigName identifies the builtin map used when no config is requested.
const DefaultConfigName = "original"

// Manager handles game configuration loading and caching. Builtin maps
// are always available; a config directory adds user maps on top.
type Manager struct {
	configDir     string
	defaultConfig *engine.GameConfig
	builtins      map[string]*engine.GameConfig
	configs       map[string]*engine.GameConfig
	mu            sync.RWMutex
}

// NewManager creates a new configuration manager. An empty configDir
// serves builtin maps only.
func NewManager(configDir string) (*Manager, error) {
	if configDir != "" {
		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			return nil, fmt.Errorf("config directory does not exist: %s", configDir)
		}
	}

	m := &Manager{
		configDir: configDir,
		builtins:  builtinConfigs(),
		configs:   make(map[string]*engine.GameConfig),
	}

	m.defaultConfig = m.builtins[DefaultConfigName]

	return m, nil
}

// LoadConfig loads a configuration by name, builtin maps first
func (m *Manager) LoadConfig(name string) (*engine.GameConfig, error) {
	m.mu.RLock()
	if config, exists := m.builtins[name]; exists {
		m.mu.RUnlock()
		return config, nil
	}
	if config, exists := m.configs[name]; exists {
		m.mu.RUnlock()
		return config, nil
	}
	m.mu.RUnlock()

	if m.configDir == "" {
		return nil, ErrConfigNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if config, exists := m.configs[name]; exists {
		return config, nil
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}

	data, err := os.ReadFile(filepath.Join(m.configDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := engine.ValidateGameConfig(&config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	m.configs[name] = &config
	return &config, nil
}

// ListConfigs returns information about all available configurations,
// builtins first in name order, then maps from the config directory.
func (m *Manager) ListConfigs() ([]*service.ConfigInfo, error) {
	var configs []*service.ConfigInfo

	m.mu.RLock()
	builtinNames := make([]string, 0, len(m.builtins))
	for name := range m.builtins {
		builtinNames = append(builtinNames, name)
	}
	m.mu.RUnlock()
	sort.Strings(builtinNames)

	for _, name := range builtinNames {
		config := m.builtins[name]
		configs = append(configs, configInfo(name, "", config, true))
	}

	if m.configDir == "" {
		return configs, nil
	}

	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".json")
		if _, shadowed := m.builtins[name]; shadowed {
			continue
		}

		config, err := m.LoadConfig(name)
		if err != nil {
			// Skip invalid configs
			continue
		}

		configs = append(configs, configInfo(name, entry.Name(), config, false))
	}

	return configs, nil
}

// configInfo summarizes a config for listings
func configInfo(id, filename string, config *engine.GameConfig, builtin bool) *service.ConfigInfo {
	width := 0
	if len(config.Layout) > 0 {
		width = len(config.Layout[0])
	}
	foods := 0
	for _, row := range config.Layout {
		foods += strings.Count(row, "F")
	}
	return &service.ConfigInfo{
		Filename:       filename,
		ConfigID:       id,
		Name:           config.Name,
		Description:    config.Description,
		Width:          width,
		Height:         len(config.Layout),
		StartingEnergy: config.StartingEnergy,
		MaxEnergy:      config.MaxEnergy,
		Foods:          foods,
		BuiltIn:        builtin,
	}
}

// GetDefault returns the default configuration
func (m *Manager) GetDefault() *engine.GameConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultConfig
}

// SetDefault sets the default configuration by name
func (m *Manager) SetDefault(name string) error {
	config, err := m.LoadConfig(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultConfig = config
	return nil
}

// RefreshCache drops all configs loaded from disk; builtins are unaffected
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.configs = make(map[string]*engine.GameConfig)
	return nil
}

// SaveConfig saves a configuration to disk
func (m *Manager) SaveConfig(name string, config *engine.GameConfig) error {
	if m.configDir == "" {
		return fmt.Errorf("no config directory configured")
	}
	if _, exists := m.builtins[name]; exists {
		return fmt.Errorf("cannot overwrite builtin config '%s'", name)
	}

	if err := engine.ValidateGameConfig(config); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(m.configDir, filename), data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	m.mu.Lock()
	m.configs[name] = config
	m.mu.Unlock()

	return nil
}
