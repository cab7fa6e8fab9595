package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Default values
const (
	DefaultEndpoint  = "https://jsonplaceholder.typicode.com/users"
	DefaultDebounce  = 300 * time.Millisecond
	DefaultTimeout   = 10 * time.Second
	DefaultStartPage = "directory"
)

// StartPages lists the valid values for ui.start_page
var StartPages = []string{"directory", "services", "pricing"}

// Config represents the application configuration
type Config struct {
	Version    int               `toml:"version"`
	Directory  DirectorySettings `toml:"directory"`
	UISettings UISettings        `toml:"ui"`
}

// DirectorySettings configures the user directory
type DirectorySettings struct {
	Endpoint string   `toml:"endpoint"`
	Debounce Duration `toml:"debounce"`
	Timeout  Duration `toml:"timeout"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AltScreen bool   `toml:"alt_screen"`
	StartPage string `toml:"start_page"`
}

// Duration is a time.Duration written as "300ms" in the config file
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	if parsed < 0 {
		return fmt.Errorf("invalid duration %q: must not be negative", string(text))
	}
	d.Duration = parsed
	return nil
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
	filePath string
}

// NewConfigService creates a config service using the user config directory
func NewConfigService() ConfigService {
	return NewConfigServiceAt(DefaultPath())
}

// NewConfigServiceAt creates a config service for a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{
		filePath: path,
	}
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "userdir", "config.toml")
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, writing defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cs.Save(cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so omitted keys keep their default value
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Normalize()
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

// Normalize replaces empty or unknown values with defaults
func (c *Config) Normalize() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Directory.Endpoint == "" {
		c.Directory.Endpoint = DefaultEndpoint
	}
	if c.Directory.Timeout.Duration == 0 {
		c.Directory.Timeout.Duration = DefaultTimeout
	}

	valid := false
	for _, page := range StartPages {
		if c.UISettings.StartPage == page {
			valid = true
			break
		}
	}
	if !valid {
		c.UISettings.StartPage = DefaultStartPage
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Directory: DirectorySettings{
			Endpoint: DefaultEndpoint,
			Debounce: Duration{DefaultDebounce},
			Timeout:  Duration{DefaultTimeout},
		},
		UISettings: UISettings{
			AltScreen: true,
			StartPage: DefaultStartPage,
		},
	}
}
