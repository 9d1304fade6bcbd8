package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"dersctl/pkg/schedule"

	"golang.org/x/text/language"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	SourceURL   string `json:"source_url,omitempty"`
	AccentColor string `json:"accent_color,omitempty"`
	Collation   string `json:"collation,omitempty"`
}

// DefaultAccentColor is the lipgloss color used when none is saved
const DefaultAccentColor = "99"

// ResolvedSourceURL returns the configured sheet URL or the built-in one
func (c *AppConfig) ResolvedSourceURL() string {
	if c == nil || c.SourceURL == "" {
		return schedule.DefaultSourceURL
	}
	return c.SourceURL
}

// ResolvedAccentColor returns the configured accent color or the default
func (c *AppConfig) ResolvedAccentColor() string {
	if c == nil || c.AccentColor == "" {
		return DefaultAccentColor
	}
	return c.AccentColor
}

// CollationTag returns the language used to order class identifiers.
// Unset or unparsable values fall back to Turkish.
func (c *AppConfig) CollationTag() language.Tag {
	if c == nil || c.Collation == "" {
		return language.Turkish
	}
	tag, err := language.Parse(c.Collation)
	if err != nil {
		return language.Turkish
	}
	return tag
}

// getConfigPath returns the absolute path to ~/.dersctl.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".dersctl.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
