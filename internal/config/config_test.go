package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_NoFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.General.DefaultShell != "bash" {
		t.Errorf("DefaultShell = %q, want bash", cfg.General.DefaultShell)
	}
	if cfg.General.TopCommands != 10 {
		t.Errorf("TopCommands = %d, want 10", cfg.General.TopCommands)
	}
}

func TestLoad_ReadsOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	content := "[general]\ndefault_shell = \"zsh\"\ntop_commands = 5\n\n[paths]\nzsh = \"/custom/zsh_history\"\n"
	if err := os.MkdirAll(filepath.Join(dir, "histwrap"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "histwrap", "config.toml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.General.DefaultShell != "zsh" {
		t.Errorf("DefaultShell = %q, want zsh", cfg.General.DefaultShell)
	}
	if cfg.General.TopCommands != 5 {
		t.Errorf("TopCommands = %d, want 5", cfg.General.TopCommands)
	}
	if got := cfg.HistoryOverride("zsh"); got != "/custom/zsh_history" {
		t.Errorf("HistoryOverride(zsh) = %q", got)
	}
	if got := cfg.HistoryOverride("bash"); got != "" {
		t.Errorf("HistoryOverride(bash) = %q, want empty", got)
	}
}
