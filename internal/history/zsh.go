package history

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// nextZsh reads zsh extended history. Each entry has the form
//
//	: <epoch>:<duration>;<command>
//
// Lines that do not start with ":" or have no ";" separator are not entries
// and are skipped silently. The command is everything after the first ";"
// (a command may itself contain ";"). Entries whose epoch field is not
// numeric are reported through Warn and skipped.
func (s *Scanner) nextZsh() bool {
	for s.buf.Scan() {
		line := s.buf.Text()
		if !strings.HasPrefix(line, ":") {
			continue
		}

		head, cmd, ok := strings.Cut(line, ";")
		if !ok {
			continue
		}

		// Multiline commands are stored with trailing backslashes; fold
		// the continuation lines back into one record.
		for strings.HasSuffix(cmd, "\\") && s.buf.Scan() {
			cmd = cmd[:len(cmd)-1] + "\n" + s.buf.Text()
		}

		ts, err := parseZshEpoch(head)
		if err != nil {
			s.warn(line, err)
			continue
		}

		s.rec = Record{Command: strings.TrimSpace(cmd), Timestamp: ts}
		return true
	}
	return false
}

// parseZshEpoch extracts the start epoch from the ": <epoch>:<duration>"
// head of an extended history entry.
func parseZshEpoch(head string) (time.Time, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(head, ":"))
	epochStr, _, _ := strings.Cut(rest, ":")
	epoch, err := strconv.ParseInt(strings.TrimSpace(epochStr), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed epoch %q: %w", epochStr, err)
	}
	return time.Unix(epoch, 0), nil
}
