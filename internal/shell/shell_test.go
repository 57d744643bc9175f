package shell

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Kind
		wantErr bool
	}{
		{"bash", "bash", Bash, false},
		{"zsh", "zsh", Zsh, false},
		{"fish", "fish", Fish, false},
		{"mixed case", "Zsh", Zsh, false},
		{"whitespace", " bash ", Bash, false},
		{"powershell", "powershell", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) succeeded, want error", tt.input)
				}
				if !errors.Is(err, ErrUnsupportedShell) {
					t.Errorf("Parse(%q) error = %v, want ErrUnsupportedShell", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolvePath_Missing(t *testing.T) {
	_, err := ResolvePath(Zsh, filepath.Join(t.TempDir(), "nope"), "")
	if !errors.Is(err, ErrHistoryNotFound) {
		t.Fatalf("error = %v, want ErrHistoryNotFound", err)
	}
}

func TestResolvePath_OverrideWins(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "override_history")
	configured := filepath.Join(dir, "configured_history")
	for _, p := range []string{override, configured} {
		if err := os.WriteFile(p, []byte("ls\n"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	got, err := ResolvePath(Bash, override, configured)
	if err != nil {
		t.Fatal(err)
	}
	if got != override {
		t.Errorf("ResolvePath = %q, want override %q", got, override)
	}

	got, err = ResolvePath(Bash, "", configured)
	if err != nil {
		t.Fatal(err)
	}
	if got != configured {
		t.Errorf("ResolvePath = %q, want configured %q", got, configured)
	}
}
