package tokenize

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "git status", []string{"git", "status"}},
		{"extra whitespace", "  ls   -la  ", []string{"ls", "-la"}},
		{"tabs", "make\tall", []string{"make", "all"}},
		{"single quotes", "git commit -m 'initial commit'", []string{"git", "commit", "-m", "initial commit"}},
		{"double quotes", `echo "hello world"`, []string{"echo", "hello world"}},
		{"escaped quote in double quotes", `echo "say \"hi\""`, []string{"echo", `say "hi"`}},
		{"escaped space", `cat my\ file.txt`, []string{"cat", "my file.txt"}},
		{"adjacent quoted parts", `echo 'a'"b"`, []string{"echo", "ab"}},
		{"empty quoted word", `echo ''`, []string{"echo", ""}},
		{"empty", "", nil},
		{"whitespace only", "   \t ", nil},
		{"trailing backslash", `echo \`, []string{"echo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplit_UnterminatedQuoting(t *testing.T) {
	// Degraded mode: the dangling quoted fragment is cut, the rest is
	// whitespace-split. The call must not fail.
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"unterminated single", "git commit -m 'wip", []string{"git", "commit", "-m"}},
		{"unterminated double", `echo "oops`, []string{"echo"}},
		{"only a quote", `'`, nil},
		{"only a double quote", `"`, nil},
		{"quote then whitespace", `'   `, nil},
		{"quote mid-word", `grep don't file.txt`, []string{"grep", "don"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"git status", "git"},
		{"", ""},
		{"   ", ""},
		{"'quoted cmd' arg", "quoted cmd"},
		{"ls", "ls"},
	}

	for _, tt := range tests {
		if got := Base(tt.input); got != tt.want {
			t.Errorf("Base(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// FuzzSplit checks that tokenization never panics on arbitrary input,
// which matters since history files are untrusted free-form text.
func FuzzSplit(f *testing.F) {
	f.Add("git status")
	f.Add("git commit -m 'wip")
	f.Add(`echo "a\"b`)
	f.Add("'")
	f.Add(`\`)
	f.Add("")
	f.Add("   \t  ")
	f.Add(`curl -H "Auth: x" 'http://a;b' | jq .`)

	f.Fuzz(func(t *testing.T, line string) {
		words := Split(line)
		for _, w := range words {
			_ = w
		}
		if Base(line) != "" && len(words) == 0 {
			t.Errorf("Base(%q) non-empty but Split returned no words", line)
		}
	})
}
