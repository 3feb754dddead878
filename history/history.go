// Package history keeps previously submitted commands and a browsing
// cursor over them.
package history

import (
	"fmt"
	"os"
	"strings"
)

// notBrowsing marks the browse cursor as parked past the newest entry.
const notBrowsing = -1

// History is an append-only list of submitted commands, oldest first.
// Browsing state (cursor plus the draft that was on screen when browsing
// started) is transient and resets on every Add.
type History struct {
	entries []string
	limit   int // max retained entries, 0 = unlimited
	cursor  int // index while browsing, notBrowsing otherwise
	draft   string
}

// New creates a History holding at most limit entries (0 = unlimited).
func New(limit int) *History {
	return &History{limit: limit, cursor: notBrowsing}
}

// Len returns the number of retained entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the retained entries, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Add appends a submitted command and resets the browse cursor.
// Empty or whitespace-only commands and consecutive duplicates are
// skipped; prior entries are never modified. Reports whether the
// command was stored.
func (h *History) Add(cmd string) bool {
	h.cursor = notBrowsing
	h.draft = ""
	if strings.TrimSpace(cmd) == "" {
		return false
	}
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == cmd {
		return false
	}
	h.entries = append(h.entries, cmd)
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
	return true
}

// Browsing reports whether a browse is in progress.
func (h *History) Browsing() bool {
	return h.cursor != notBrowsing
}

// Prev moves toward the oldest entry and returns the entry to display.
// The first call snapshots draft (the line being edited) so Next can
// restore it. Clamps at the oldest entry. Returns false when there is
// no history to browse.
func (h *History) Prev(draft string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor == notBrowsing {
		h.draft = draft
		h.cursor = len(h.entries) - 1
		return h.entries[h.cursor], true
	}
	if h.cursor > 0 {
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next moves toward the newest entry. Moving past the newest restores
// the draft and ends the browse. Returns false when not browsing.
func (h *History) Next() (string, bool) {
	if h.cursor == notBrowsing {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		h.cursor = notBrowsing
		draft := h.draft
		h.draft = ""
		return draft, true
	}
	return h.entries[h.cursor], true
}

// EndBrowse abandons any browse in progress, discarding the draft.
func (h *History) EndBrowse() {
	h.cursor = notBrowsing
	h.draft = ""
}

// Load reads a newline-delimited history file into a new History.
// A missing file yields an empty history, not an error.
func Load(path string, limit int) (*History, error) {
	h := New(limit)
	if path == "" {
		return h, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return h, nil
		}
		return nil, fmt.Errorf("loading history: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		h.Add(strings.ReplaceAll(line, "\\n", "\n"))
	}
	return h, nil
}

// AppendFile appends one entry to a newline-delimited history file.
// Multi-line commands are stored on one line with escaped newlines so
// the file stays grep-able.
func AppendFile(path, entry string) error {
	if path == "" || strings.TrimSpace(entry) == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("opening history file: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(strings.ReplaceAll(entry, "\n", "\\n") + "\n"); err != nil {
		return fmt.Errorf("writing history file: %w", err)
	}
	return nil
}
