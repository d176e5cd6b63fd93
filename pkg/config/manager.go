package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lerenn/issue-manager/configs"
	"gopkg.in/yaml.v3"
)

//go:generate mockgen -source=manager.go -destination=mockconfig.gen.go -package=config

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	GetConfig() (Config, error)
	GetConfigWithFallback() (Config, error)
	SaveConfig(config Config) error
	CreateConfigDirectory() error
	GetConfigPath() string
	SetConfigPath(configPath string)
	DefaultConfig() Config
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(configPath string) Manager {
	return &realManager{
		configPath: configPath,
	}
}

// GetConfig loads configuration from the embedded config path.
func (c *realManager) GetConfig() (Config, error) {
	// Check if config file exists
	if _, err := os.Stat(c.configPath); os.IsNotExist(err) {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotInitialized, c.configPath)
	}

	// Read config file
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	// Expand tildes in configuration paths
	if err := config.expandTildes(); err != nil {
		return Config{}, fmt.Errorf("failed to expand tildes in configuration: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// GetConfigWithFallback loads the configuration from the embedded config path, falling back to default if not found.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	// Try to load from file first
	if config, err := c.GetConfig(); err == nil {
		return config, nil
	}

	// Fallback to default configuration
	return c.DefaultConfig(), nil
}

// SaveConfig saves configuration to the embedded config path.
func (c *realManager) SaveConfig(config Config) error {
	// Create config directory if it doesn't exist
	if err := c.CreateConfigDirectory(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal configuration to YAML
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	// Write configuration file
	if err := os.WriteFile(c.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// CreateConfigDirectory creates the configuration directory structure.
func (c *realManager) CreateConfigDirectory() error {
	configDir := filepath.Dir(c.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// SetConfigPath updates the embedded config path.
func (c *realManager) SetConfigPath(configPath string) {
	c.configPath = configPath
}

// DefaultConfig returns the default configuration from the embedded default
// file.
func (c *realManager) DefaultConfig() Config {
	var config Config
	if err := yaml.Unmarshal(configs.DefaultConfigYAML, &config); err != nil {
		return Config{
			Forge:    DefaultForge,
			TokenEnv: DefaultTokenEnv,
		}
	}

	return config
}
