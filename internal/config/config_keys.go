// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. This separation allows config.go to focus on YAML structure
// and loading, while this file handles the CLI interface where config is
// accessed by string keys (e.g., "log.enabled").

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"colour",
		"log.enabled",
		"scan.hidden",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "colour":
		return strconv.FormatBool(c.ColourOutput()), nil
	case "log.enabled":
		return strconv.FormatBool(c.LogEnabled()), nil
	case "scan.hidden":
		return strconv.FormatBool(c.ScanHidden()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	b, err := parseBool(key, value)
	if err != nil {
		return err
	}
	switch key {
	case "colour":
		c.Colour = &b
	case "log.enabled":
		c.Log.Enabled = &b
	case "scan.hidden":
		c.Scan.Hidden = &b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"colour":      strconv.FormatBool(c.ColourOutput()),
		"log.enabled": strconv.FormatBool(c.LogEnabled()),
		"scan.hidden": strconv.FormatBool(c.ScanHidden()),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "colour":
		return c.Colour != nil
	case "log.enabled":
		return c.Log.Enabled != nil
	case "scan.hidden":
		return c.Scan.Hidden != nil
	default:
		return false
	}
}

// parseBool validates a boolean config value. All current keys are boolean;
// grow this into per-key parsing if a non-boolean key is ever added.
func parseBool(key, value string) (bool, error) {
	v := strings.ToLower(value)
	if v != "true" && v != "false" {
		return false, fmt.Errorf("%w: %s must be true or false", ErrInvalidValue, key)
	}
	return v == "true", nil
}
