package history

import "strings"

// CommandHistory is the ordered record of submitted console commands
// plus a navigation cursor.
type CommandHistory interface {
	Record(command string)
	Older() (string, bool)
	Newer() (string, bool)
	Reset()
	Entries() []string
}

// SessionHistory keeps commands for the lifetime of a console session.
// Entries are appended in submission order and never removed, reordered
// or deduplicated. The cursor counts backward from the most recent
// entry; -1 means the user is not browsing history.
type SessionHistory struct {
	entries []string
	cursor  int
}

func NewSessionHistory() *SessionHistory {
	return &SessionHistory{cursor: -1}
}

// Record appends a submitted command and resets the cursor. Blank
// commands are ignored.
func (h *SessionHistory) Record(command string) {
	if strings.TrimSpace(command) == "" {
		return
	}
	h.entries = append(h.entries, command)
	h.cursor = -1
}

// Older moves toward older entries and returns the entry at the new
// position. At the oldest boundary it keeps returning the oldest entry;
// on an empty history it reports false.
func (h *SessionHistory) Older() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor < len(h.entries)-1 {
		h.cursor++
	}
	return h.entries[len(h.entries)-1-h.cursor], true
}

// Newer moves toward newer entries. Stepping past the newest entry
// returns an empty string (the blank-line signal) and leaves browsing
// mode; when not browsing at all it is a no-op and reports false.
func (h *SessionHistory) Newer() (string, bool) {
	switch {
	case h.cursor < 0:
		return "", false
	case h.cursor == 0:
		h.cursor = -1
		return "", true
	default:
		h.cursor--
		return h.entries[len(h.entries)-1-h.cursor], true
	}
}

// Reset leaves browsing mode without touching the entries.
func (h *SessionHistory) Reset() {
	h.cursor = -1
}

// Entries returns a copy of the recorded commands, oldest first.
func (h *SessionHistory) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
