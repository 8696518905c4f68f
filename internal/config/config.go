// Package config provides reading and writing of nametag configuration.
// Supports both global (~/.nametag/config.yaml) and local (.nametag.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.nametag/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .nametag.yaml
	ScopeLocal
)

// Log holds audit-log configuration options.
type Log struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// Scan holds traversal configuration options.
type Scan struct {
	Hidden *bool `yaml:"hidden,omitempty"`
}

// Config contains configuration for nametag.
//
// Pointers are used for optional fields so "not set" (nil) is distinct
// from "explicitly false", letting defaults apply only when the user has
// not chosen a value.
type Config struct {
	Colour *bool `yaml:"colour,omitempty"`
	Log    Log   `yaml:"log,omitempty"`
	Scan   Scan  `yaml:"scan,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// ColourOutput returns whether colourised output is enabled (defaults to true;
// the CLI still suppresses colour when stdout is not a terminal).
func (c *Config) ColourOutput() bool {
	if c.Colour == nil {
		return true
	}
	return *c.Colour
}

// LogEnabled returns whether the audit log is written (defaults to true).
func (c *Config) LogEnabled() bool {
	if c.Log.Enabled == nil {
		return true
	}
	return *c.Log.Enabled
}

// ScanHidden returns whether directory expansion includes dot entries
// (defaults to false).
func (c *Config) ScanHidden() bool {
	if c.Scan.Hidden == nil {
		return false
	}
	return *c.Scan.Hidden
}

// LocalPath returns the path to the local (directory) config file.
func LocalPath() string {
	return ".nametag.yaml"
}

// GlobalPath returns the path to the global (user) config file: ~/.nametag/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nametag", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
