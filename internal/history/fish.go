package history

import (
	"strconv"
	"strings"
	"time"
)

const (
	fishCmdPrefix  = "- cmd: "
	fishWhenPrefix = "  when: "
)

// nextFish reads fish's fish_history file. Each entry is a "- cmd: <command>"
// line usually followed by an indented "when: <epoch>" line (plus other
// metadata such as paths, which is ignored). The file resembles YAML but is
// not guaranteed to be valid YAML, so it is decoded line by line. Entries
// without a when field get the fallback wall-clock timestamp.
func (s *Scanner) nextFish() bool {
	for s.buf.Scan() {
		line := s.buf.Text()

		switch {
		case strings.HasPrefix(line, fishCmdPrefix):
			cmd := line[len(fishCmdPrefix):]
			if s.fishPending {
				// Previous entry never got a when line.
				s.rec = Record{Command: s.fishCmd, Timestamp: s.now}
				s.fishCmd = cmd
				return true
			}
			s.fishCmd = cmd
			s.fishPending = true

		case strings.HasPrefix(line, fishWhenPrefix) && s.fishPending:
			ts := s.now
			epoch, err := strconv.ParseInt(strings.TrimSpace(line[len(fishWhenPrefix):]), 10, 64)
			if err != nil {
				s.warn(line, err)
			} else {
				ts = time.Unix(epoch, 0)
			}
			s.rec = Record{Command: s.fishCmd, Timestamp: ts}
			s.fishPending = false
			return true
		}
	}

	if s.fishPending {
		s.fishPending = false
		s.rec = Record{Command: s.fishCmd, Timestamp: s.now}
		return true
	}
	return false
}
