package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"gridfilter/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version    int           `toml:"version"`
	Title      string        `toml:"title"`
	UISettings UISettings    `toml:"ui"`
	Records    []RecordEntry `toml:"records,omitempty"` // replaces the built-in demo rows when set
}

// UISettings represents UI-related configuration
type UISettings struct {
	Field1Header   string `toml:"field1_header"`
	Field2Header   string `toml:"field2_header"`
	ShowRowCount   bool   `toml:"show_row_count"`
	RememberFilter bool   `toml:"remember_filter"`
	InitialFilter  string `toml:"initial_filter,omitempty"`
}

// RecordEntry is one row as written in the config file
type RecordEntry struct {
	Field1 string `toml:"field1"`
	Field2 string `toml:"field2"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "gridfilter", "config.toml")
}

// NewConfigService creates a config service bound to path.
// An empty path selects DefaultPath.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file.
// A missing file yields DefaultConfig.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// RememberQuery makes query the initial filter of the next start when
// remember_filter is on. It reports whether the file was written.
func RememberQuery(svc ConfigService, cfg *Config, query string) (bool, error) {
	if cfg == nil || !cfg.UISettings.RememberFilter || cfg.UISettings.InitialFilter == query {
		return false, nil
	}

	cfg.UISettings.InitialFilter = query
	if err := svc.Save(cfg); err != nil {
		return false, fmt.Errorf("failed to remember filter: %w", err)
	}
	return true, nil
}

// applyDefaults fills values a hand-edited file may have blanked
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.UISettings.Field1Header == "" {
		c.UISettings.Field1Header = def.UISettings.Field1Header
	}
	if c.UISettings.Field2Header == "" {
		c.UISettings.Field2Header = def.UISettings.Field2Header
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Title:   "gridfilter",
		UISettings: UISettings{
			Field1Header: "field1",
			Field2Header: "field2",
			ShowRowCount: true,
		},
	}
}
