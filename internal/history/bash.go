package history

import (
	"strings"
	"time"
)

// nextBash reads plain bash history: one command per non-blank line. The
// format stores no timestamps, so records carry the wall-clock time captured
// at open — an accepted approximation that makes year filtering meaningful
// only for the current year. Setups with HISTTIMEFORMAT write epoch marker
// lines ("#1700000000") before each command; those are recognized and applied
// to the following line.
func (s *Scanner) nextBash() bool {
	for s.buf.Scan() {
		line := strings.TrimSpace(s.buf.Text())
		if line == "" {
			continue
		}

		if epoch, ok := parseEpochMarker(line); ok {
			s.pendingEpoch = epoch
			continue
		}

		ts := s.now
		if !s.pendingEpoch.IsZero() {
			ts = s.pendingEpoch
			s.pendingEpoch = time.Time{}
		}

		s.rec = Record{Command: line, Timestamp: ts}
		return true
	}
	return false
}

// parseEpochMarker matches "#<digits>" lines written by HISTTIMEFORMAT.
// Any other comment-looking line is an ordinary command record.
func parseEpochMarker(line string) (time.Time, bool) {
	if len(line) < 2 || line[0] != '#' {
		return time.Time{}, false
	}
	var epoch int64
	for i := 1; i < len(line); i++ {
		c := line[i]
		if c < '0' || c > '9' {
			return time.Time{}, false
		}
		epoch = epoch*10 + int64(c-'0')
	}
	return time.Unix(epoch, 0), true
}
