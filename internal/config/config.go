// Package config loads and saves histwrap's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all histwrap configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Paths      PathsConfig      `toml:"paths"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultShell string `toml:"default_shell"`
	TopCommands  int    `toml:"top_commands"`
}

// PathsConfig overrides the well-known history file location per shell.
type PathsConfig struct {
	Bash string `toml:"bash,omitempty"`
	Zsh  string `toml:"zsh,omitempty"`
	Fish string `toml:"fish,omitempty"`
}

// AppearanceConfig holds theme settings for the TUI.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		General: GeneralConfig{
			DefaultShell: "bash",
			TopCommands:  10,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "histwrap")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "histwrap")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.General.TopCommands <= 0 {
		cfg.General.TopCommands = 10
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// HistoryOverride returns the configured history path for a shell name,
// or "" when none is set.
func (c Config) HistoryOverride(shellName string) string {
	switch shellName {
	case "bash":
		return c.Paths.Bash
	case "zsh":
		return c.Paths.Zsh
	case "fish":
		return c.Paths.Fish
	}
	return ""
}
