// Package settings manages persistent user preferences.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings holds user preferences loaded from the config file.
type Settings struct {
	AIProvider          string `mapstructure:"ai_provider"`
	DefaultExportFormat string `mapstructure:"default_export_format"`
	ExportDirectory     string `mapstructure:"export_directory"`
	OllamaModel         string `mapstructure:"ollama_model"`
	CheckUpdates        bool   `mapstructure:"check_updates"`
	FirstRun            bool   `mapstructure:"first_run"`
}

// Manager loads and saves settings through viper.
type Manager struct {
	v    *viper.Viper
	path string
}

// DefaultConfigPath resolves the settings file location:
// $XDG_CONFIG_HOME/prdy/settings.yaml, falling back to
// ~/.config/prdy/settings.yaml.
func DefaultConfigPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "prdy", "settings.yaml"), nil
}

// Load reads settings from path, creating the file with defaults on
// first run. Environment variables with the PRDY_ prefix override file
// values (e.g. PRDY_AI_PROVIDER).
func Load(path string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("PRDY")
	v.AutomaticEnv()

	v.SetDefault("ai_provider", "none")
	v.SetDefault("default_export_format", "markdown")
	v.SetDefault("export_directory", "./exports")
	v.SetDefault("ollama_model", "llama2")
	v.SetDefault("check_updates", true)
	v.SetDefault("first_run", true)

	m := &Manager{v: v, path: path}

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read settings: %w", err)
			}
		}
		// First run: persist the defaults.
		if err := m.Save(); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Current returns the effective settings.
func (m *Manager) Current() (*Settings, error) {
	var s Settings
	if err := m.v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	return &s, nil
}

// Set updates one setting and persists the file.
func (m *Manager) Set(key string, value any) error {
	m.v.Set(key, value)
	return m.Save()
}

// Get returns the raw value for key.
func (m *Manager) Get(key string) any {
	return m.v.Get(key)
}

// Save writes the current settings to disk.
func (m *Manager) Save() error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := m.v.WriteConfigAs(m.path); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// Reset restores defaults by deleting the settings file.
func (m *Manager) Reset() error {
	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove settings: %w", err)
	}
	return nil
}
