package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	// Test default values
	if config.Path != "~/src/weechat/doc" {
		t.Errorf("Expected default path '~/src/weechat/doc', got %q", config.Path)
	}
	if config.Report.Format != "concise" {
		t.Errorf("Expected default report format 'concise', got %q", config.Report.Format)
	}
	if config.Snapshot != "" {
		t.Errorf("Expected empty default snapshot, got %q", config.Snapshot)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("WEEDOC_PATH", "/var/doc")
	t.Setenv("WEEDOC_REPORT_FORMAT", "json")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.Path != "/var/doc" {
		t.Errorf("Expected env override path '/var/doc', got %q", config.Path)
	}
	if config.Report.Format != "json" {
		t.Errorf("Expected env override report format 'json', got %q", config.Report.Format)
	}
}

func TestGetWeedocHome(t *testing.T) {
	home, err := GetWeedocHome()
	if err != nil {
		t.Fatalf("GetWeedocHome() failed: %v", err)
	}
	if home == "" {
		t.Error("GetWeedocHome() returned empty string")
	}

	// Should end with .weedoc
	if filepath.Base(home) != ".weedoc" {
		t.Errorf("Expected home to end with .weedoc, got %s", home)
	}
}

func TestGetWeedocHomeWithEnvVar(t *testing.T) {
	customHome := filepath.Join(t.TempDir(), "weedoc-home")
	t.Setenv("WEEDOC_HOME", customHome)

	home, err := GetWeedocHome()
	if err != nil {
		t.Fatalf("GetWeedocHome() failed: %v", err)
	}
	if home != customHome {
		t.Errorf("Expected home %q, got %q", customHome, home)
	}
}

func TestEnsureWeedocHome(t *testing.T) {
	customHome := filepath.Join(t.TempDir(), "weedoc-home")
	t.Setenv("WEEDOC_HOME", customHome)

	home, err := EnsureWeedocHome()
	if err != nil {
		t.Fatalf("EnsureWeedocHome() failed: %v", err)
	}

	info, err := os.Stat(home)
	if err != nil {
		t.Fatalf("Expected home directory to exist: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("Expected %q to be a directory", home)
	}
}

func TestGetConfigDir(t *testing.T) {
	customHome := filepath.Join(t.TempDir(), "weedoc-home")
	t.Setenv("WEEDOC_HOME", customHome)

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() failed: %v", err)
	}

	if filepath.Base(configDir) != "config" {
		t.Errorf("Expected config dir to end with 'config', got %s", configDir)
	}
	if _, err := os.Stat(configDir); err != nil {
		t.Errorf("Expected config directory to exist: %v", err)
	}
}
