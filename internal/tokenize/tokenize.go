// Package tokenize splits raw command lines into shell-style words.
package tokenize

import (
	"errors"
	"regexp"
	"strings"
)

var errUnterminated = errors.New("unterminated quote")

// unterminatedFragment matches a trailing quoted fragment with no closing
// quote. Used by the degraded fallback to cut the unparseable tail before
// whitespace-splitting the rest.
var unterminatedFragment = regexp.MustCompile(`('[^']*|"[^"]*)`)

// Split breaks a command line into words, honoring single quotes, double
// quotes, and backslash escaping outside single quotes. It never fails:
// lines with unterminated quoting degrade to a best-effort whitespace split
// with the dangling fragment removed. A malformed history line must never
// abort a whole analysis run.
func Split(line string) []string {
	words, err := split(line)
	if err == nil {
		return words
	}
	stripped := unterminatedFragment.ReplaceAllString(line, "")
	if fields := strings.Fields(stripped); len(fields) > 0 {
		return fields
	}
	return nil
}

// Base returns the first word of a command line, or "" when the line has no
// words at all.
func Base(line string) string {
	words := Split(line)
	if len(words) == 0 {
		return ""
	}
	return words[0]
}

func split(line string) ([]string, error) {
	var (
		words   []string
		word    strings.Builder
		started bool
	)

	i := 0
	for i < len(line) {
		c := line[i]
		switch c {
		case ' ', '\t', '\n':
			if started {
				words = append(words, word.String())
				word.Reset()
				started = false
			}
			i++

		case '\'':
			started = true
			end := strings.IndexByte(line[i+1:], '\'')
			if end < 0 {
				return nil, errUnterminated
			}
			word.WriteString(line[i+1 : i+1+end])
			i += end + 2

		case '"':
			started = true
			i++
			closed := false
			for i < len(line) {
				if line[i] == '\\' && i+1 < len(line) && (line[i+1] == '"' || line[i+1] == '\\') {
					word.WriteByte(line[i+1])
					i += 2
					continue
				}
				if line[i] == '"' {
					closed = true
					i++
					break
				}
				word.WriteByte(line[i])
				i++
			}
			if !closed {
				return nil, errUnterminated
			}

		case '\\':
			if i+1 < len(line) {
				started = true
				word.WriteByte(line[i+1])
				i += 2
			} else {
				// trailing backslash escapes nothing
				i++
			}

		default:
			started = true
			word.WriteByte(c)
			i++
		}
	}

	if started {
		words = append(words, word.String())
	}
	return words, nil
}
