package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It defines the two pane roots, browsing behaviour, and the external
// copy engine invocation.
type Config struct {
	Panes struct {
		Left  string `yaml:"left"`  // Root path of the left pane
		Right string `yaml:"right"` // Root path of the right pane
	} `yaml:"panes"`
	Settings struct {
		ShowHidden   bool     `yaml:"show_hidden"`   // List dotfiles
		Hide         []string `yaml:"hide"`          // Glob patterns removed from listings
		StatusTicks  int      `yaml:"status_ticks"`  // Render cycles a status message survives
		FallbackRoot string   `yaml:"fallback_root"` // Pane destination when its directory is unreadable
		LazyRefresh  bool     `yaml:"lazy_refresh"`  // Skip the destination pane refresh after a copy
	} `yaml:"settings"`
	Copy struct {
		Command string   `yaml:"command"` // Copy engine binary
		Args    []string `yaml:"args"`    // Arguments placed before source and destination
	} `yaml:"copy"`
}

// LoadConfig loads configuration from the default location
// (~/.config/ferry/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "ferry", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()

	// Try to read the config file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults
	if tempCfg.Panes.Left != "" {
		cfg.Panes.Left = tempCfg.Panes.Left
	}
	if tempCfg.Panes.Right != "" {
		cfg.Panes.Right = tempCfg.Panes.Right
	}

	cfg.Settings.ShowHidden = tempCfg.Settings.ShowHidden
	cfg.Settings.LazyRefresh = tempCfg.Settings.LazyRefresh
	if len(tempCfg.Settings.Hide) > 0 {
		cfg.Settings.Hide = tempCfg.Settings.Hide
	}
	if tempCfg.Settings.StatusTicks > 0 {
		cfg.Settings.StatusTicks = tempCfg.Settings.StatusTicks
	}
	if tempCfg.Settings.FallbackRoot != "" {
		cfg.Settings.FallbackRoot = tempCfg.Settings.FallbackRoot
	}

	if tempCfg.Copy.Command != "" {
		cfg.Copy.Command = tempCfg.Copy.Command
		cfg.Copy.Args = tempCfg.Copy.Args
	}

	// Validate the final configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Settings.ShowHidden = false
	cfg.Settings.Hide = []string{}
	cfg.Settings.StatusTicks = 50
	cfg.Settings.FallbackRoot = "/"
	cfg.Settings.LazyRefresh = false

	// cp -r handles both regular files and directory subtrees
	cfg.Copy.Command = "cp"
	cfg.Copy.Args = []string{"-r"}

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal the config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write the data to the file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid. Pane roots may be empty here;
// they are usually supplied by command-line flags and checked separately
// with RequireRoots.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	// Pane roots, when set, must be absolute
	if c.Panes.Left != "" && !filepath.IsAbs(c.Panes.Left) {
		return fmt.Errorf("left pane root must be an absolute path: %s", c.Panes.Left)
	}
	if c.Panes.Right != "" && !filepath.IsAbs(c.Panes.Right) {
		return fmt.Errorf("right pane root must be an absolute path: %s", c.Panes.Right)
	}

	if c.Settings.StatusTicks < 1 {
		return fmt.Errorf("status_ticks must be >= 1")
	}

	if c.Settings.FallbackRoot == "" || !filepath.IsAbs(c.Settings.FallbackRoot) {
		return fmt.Errorf("fallback_root must be an absolute path: %s", c.Settings.FallbackRoot)
	}

	// Hide patterns must compile
	for i, pattern := range c.Settings.Hide {
		if pattern == "" {
			return fmt.Errorf("hide pattern %d: pattern cannot be empty", i)
		}
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("hide pattern %d: invalid glob %q: %w", i, pattern, err)
		}
	}

	if c.Copy.Command == "" {
		return fmt.Errorf("copy command is required")
	}

	return nil
}

// RequireRoots verifies both pane roots are configured and are existing
// directories. Called at startup after flags have been merged in.
func (c *Config) RequireRoots() error {
	for _, root := range []struct {
		name string
		path string
	}{
		{"left", c.Panes.Left},
		{"right", c.Panes.Right},
	} {
		if root.path == "" {
			return fmt.Errorf("%s pane root is required (flag --%s or config panes.%s)", root.name, root.name, root.name)
		}
		info, err := os.Stat(root.path)
		if err != nil {
			return fmt.Errorf("error accessing %s pane root: %w", root.name, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%s pane root is not a directory: %s", root.name, root.path)
		}
	}
	return nil
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig(left, right string) *Config {
	cfg := defaultConfig()
	cfg.Panes.Left = left
	cfg.Panes.Right = right
	cfg.Settings.StatusTicks = 3
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}
