package game

import (
	"fmt"
	"strings"
)

// Log categories and keys recorded by Session.
const (
	logState = "state"
	logMove  = "move"
	logInput = "input"

	keyStart   = "start"
	keyStop    = "stop"
	keyClick   = "click"
	keyStep    = "step"
	keyIgnored = "ignored"
	keyCopy    = "copy"
	keyHUD     = "hud"
)

// SimLogEntry is one recorded session event.
type SimLogEntry struct {
	Frame    int
	Category string // state, move, input
	Key      string // specific event name within the category
	Value    string // human-readable detail
}

// String formats the entry as a fixed-width log line.
//
//	[F=042] move      step     right (4,4) -> (5,4)
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[F=%03d] %-9s %-8s %s", e.Frame, e.Category, e.Key, e.Value)
}

// SimLog collects structured events during a session.
// It is unbounded and machine-readable.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, ignored inputs are also
// recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(frame int, category, key, value string) {
	sl.entries = append(sl.entries, SimLogEntry{
		Frame:    frame,
		Category: category,
		Key:      key,
		Value:    value,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(frame int, category, key, value string) {
	if !sl.verbose {
		return
	}
	sl.Add(frame, category, key, value)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// Tail returns at most the last n entries.
func (sl *SimLog) Tail(n int) []SimLogEntry {
	if n <= 0 {
		return nil
	}
	if n >= len(sl.entries) {
		return sl.entries
	}
	return sl.entries[len(sl.entries)-n:]
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
