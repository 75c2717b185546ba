package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for weedoc
type Config struct {
	Path      string       `mapstructure:"path"`
	Snapshot  string       `mapstructure:"snapshot"`
	Localedir string       `mapstructure:"localedir"`
	Rules     string       `mapstructure:"rules"`
	Locales   []string     `mapstructure:"locales"`
	Report    ReportConfig `mapstructure:"report"`
}

// ReportConfig holds run report options
type ReportConfig struct {
	Format string `mapstructure:"format"` // "concise", "json", "markdown"
	File   string `mapstructure:"file"`
}

var defaultConfig = Config{
	// Default documentation root, mirroring the layout the doc tree ships with
	// (path/<lang>/autogen under it). "~" is expanded by the caller.
	Path: "~/src/weechat/doc",
	Report: ReportConfig{
		Format: "concise",
	},
}

// LoadConfig loads configuration from various sources
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("path", defaultConfig.Path)
	v.SetDefault("snapshot", defaultConfig.Snapshot)
	v.SetDefault("localedir", defaultConfig.Localedir)
	v.SetDefault("rules", defaultConfig.Rules)
	v.SetDefault("locales", defaultConfig.Locales)
	v.SetDefault("report.format", defaultConfig.Report.Format)
	v.SetDefault("report.file", defaultConfig.Report.File)

	// Configuration file search paths
	v.SetConfigName("weedoc")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")     // Current directory
	v.AddConfigPath("$HOME") // Home directory

	// Add weedoc home directory if available
	if configDir, err := GetConfigDir(); err == nil {
		v.AddConfigPath(configDir)
	}

	// Environment variables
	v.SetEnvPrefix("WEEDOC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Try to read config file (optional); ignore error to use defaults
	_ = v.ReadInConfig()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %v", err)
	}

	return &config, nil
}

// GetWeedocHome returns the weedoc home directory
func GetWeedocHome() (string, error) {
	// Check environment variable first
	if home := os.Getenv("WEEDOC_HOME"); home != "" {
		return home, nil
	}

	// Use standard dev tool convention: ~/.weedoc
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %v", err)
	}

	return filepath.Join(homeDir, ".weedoc"), nil
}

// EnsureWeedocHome creates the weedoc home directory if it doesn't exist
func EnsureWeedocHome() (string, error) {
	homeDir, err := GetWeedocHome()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(homeDir, 0750); err != nil {
		return "", fmt.Errorf("failed to create weedoc home directory: %v", err)
	}

	return homeDir, nil
}

// GetConfigDir returns the config directory
func GetConfigDir() (string, error) {
	homeDir, err := EnsureWeedocHome()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(homeDir, "config")
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "", fmt.Errorf("failed to create config directory: %v", err)
	}
	return configDir, nil
}
