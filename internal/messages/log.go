// Package messages holds the session message log shown to the user.
package messages

import "sync"

// Log is an append-only list of user-facing messages.
// Create one per session and share it; entries go away only through Clear.
type Log struct {
	mu      sync.RWMutex
	entries []string
}

// New returns an empty log.
func New() *Log {
	return &Log{}
}

// Add appends a message.
func (l *Log) Add(msg string) {
	l.mu.Lock()
	l.entries = append(l.entries, msg)
	l.mu.Unlock()
}

// Clear drops every message.
func (l *Log) Clear() {
	l.mu.Lock()
	l.entries = nil
	l.mu.Unlock()
}

// Messages returns a copy of the entries in arrival order.
func (l *Log) Messages() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports the number of entries.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
