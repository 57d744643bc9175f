// Package shell identifies supported shells and resolves their history file paths.
package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind identifies a supported shell.
type Kind int

const (
	Bash Kind = iota
	Zsh
	Fish
)

var (
	// ErrUnsupportedShell is returned for shell names outside the known set.
	ErrUnsupportedShell = errors.New("unsupported shell")
	// ErrHistoryNotFound is returned when a shell's history file does not exist.
	ErrHistoryNotFound = errors.New("history file not found")
)

// String returns the shell's canonical name.
func (k Kind) String() string {
	switch k {
	case Bash:
		return "bash"
	case Zsh:
		return "zsh"
	case Fish:
		return "fish"
	}
	return "unknown"
}

// Parse maps a shell name to its Kind. Unknown names are a fatal
// configuration error, not an empty result.
func Parse(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bash":
		return Bash, nil
	case "zsh":
		return Zsh, nil
	case "fish":
		return Fish, nil
	}
	return Bash, fmt.Errorf("%w: %q (expected bash, zsh, or fish)", ErrUnsupportedShell, name)
}

// DefaultPath returns the well-known user-scoped history file path for a shell.
func DefaultPath(k Kind) string {
	home, _ := os.UserHomeDir()
	switch k {
	case Bash:
		return filepath.Join(home, ".bash_history")
	case Zsh:
		return filepath.Join(home, ".zsh_history")
	case Fish:
		return filepath.Join(home, ".local", "share", "fish", "fish_history")
	}
	return ""
}

// ResolvePath picks the history file for a shell: an explicit override wins,
// then a configured per-shell path, then the well-known default. The returned
// path must exist; a missing file is fatal for the whole run.
func ResolvePath(k Kind, override, configured string) (string, error) {
	path := override
	if path == "" {
		path = configured
	}
	if path == "" {
		path = DefaultPath(k)
	}
	if path == "" {
		return "", fmt.Errorf("%w for %s", ErrHistoryNotFound, k)
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w for %s: %s", ErrHistoryNotFound, k, path)
	}
	return path, nil
}
