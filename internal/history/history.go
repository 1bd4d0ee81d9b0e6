// Package history holds the capped, newest-first list of completed sessions.
package history

import (
	"errors"
	"slices"

	"github.com/abhisek/soroban/internal/session"
)

// MaxSessions is the number of sessions kept; older ones are evicted.
const MaxSessions = 50

// ErrNotFound is returned when a session id is not in the history.
var ErrNotFound = errors.New("session not found")

// History is the single source of truth for completed sessions.
type History struct {
	records []session.Record
}

// New builds a History from records in any order. The result is sorted
// newest first and capped at MaxSessions.
func New(records []session.Record) *History {
	h := &History{records: slices.Clone(records)}
	slices.SortStableFunc(h.records, func(a, b session.Record) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	h.trim()
	return h
}

// Add inserts rec at the front, evicting the oldest record past the cap.
func (h *History) Add(rec session.Record) {
	h.records = append([]session.Record{rec}, h.records...)
	h.trim()
}

// Delete removes the session with the given id.
func (h *History) Delete(id string) error {
	i := slices.IndexFunc(h.records, func(r session.Record) bool { return r.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	h.records = slices.Delete(h.records, i, i+1)
	return nil
}

// Clear removes every session.
func (h *History) Clear() {
	h.records = nil
}

// Get returns the session with the given id.
func (h *History) Get(id string) (session.Record, error) {
	for _, r := range h.records {
		if r.ID == id {
			return r, nil
		}
	}
	return session.Record{}, ErrNotFound
}

// List returns a copy of the sessions, newest first.
func (h *History) List() []session.Record {
	return slices.Clone(h.records)
}

// Len returns the number of stored sessions.
func (h *History) Len() int {
	return len(h.records)
}

func (h *History) trim() {
	if len(h.records) > MaxSessions {
		h.records = h.records[:MaxSessions]
	}
}
