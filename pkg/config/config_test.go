package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"dersctl/pkg/schedule"

	"golang.org/x/text/language"
)

func TestConfigLoadSave(t *testing.T) {
	tempDir := t.TempDir()

	// Override the home directory environment variable for testing
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error when loading missing config, got: %v", err)
	}
	if cfg == nil {
		t.Fatalf("expected empty config to be returned, got nil")
	}

	cfg.SourceURL = "https://example.com/sheet.csv"
	cfg.AccentColor = "#FF00FF"
	cfg.Collation = "en"

	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	configPath := filepath.Join(tempDir, ".dersctl.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("expected config file to be created at %s", configPath)
	}

	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load existing config: %v", err)
	}

	if !reflect.DeepEqual(cfg, loadedCfg) {
		t.Errorf("loaded config does not match saved config.\nGot: %+v\nExpected: %+v", loadedCfg, cfg)
	}
}

func TestConfigParseError(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	configPath := filepath.Join(tempDir, ".dersctl.json")
	if err := os.WriteFile(configPath, []byte("invalid json { content"), 0644); err != nil {
		t.Fatalf("failed to write invalid json: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Errorf("expected error when loading invalid json, got nil")
	}
}

func TestConfigDefaults(t *testing.T) {
	var nilCfg *AppConfig
	empty := &AppConfig{}

	for _, cfg := range []*AppConfig{nilCfg, empty} {
		if got := cfg.ResolvedSourceURL(); got != schedule.DefaultSourceURL {
			t.Errorf("expected default source URL, got %s", got)
		}
		if got := cfg.ResolvedAccentColor(); got != DefaultAccentColor {
			t.Errorf("expected default accent color, got %s", got)
		}
		if got := cfg.CollationTag(); got != language.Turkish {
			t.Errorf("expected Turkish collation, got %s", got)
		}
	}

	bad := &AppConfig{Collation: "not a tag!"}
	if got := bad.CollationTag(); got != language.Turkish {
		t.Errorf("expected Turkish fallback for invalid tag, got %s", got)
	}

	custom := &AppConfig{SourceURL: "https://example.com/x.csv", Collation: "de"}
	if custom.ResolvedSourceURL() != "https://example.com/x.csv" {
		t.Errorf("expected custom source URL")
	}
	if custom.CollationTag() != language.German {
		t.Errorf("expected German collation, got %s", custom.CollationTag())
	}
}
