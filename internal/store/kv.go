package store

import (
	"context"
	"sort"
	"sync"
)

// Keys under which the application persists its state.
const (
	KeySessions      = "soroban-sessions"
	KeyStats         = "soroban-stats"
	KeyAchievements  = "soroban-achievements"
	KeyChallenges    = "soroban-weekly-challenges"
	KeyPreferences   = "soroban-preferences"
	KeyNotifications = "soroban-notifications"
	KeyTutorial      = "soroban-tutorial-status"
	KeyProfile       = "soroban-profile"
	KeyMeta          = "soroban-meta"
)

// AllKeys lists every application key.
func AllKeys() []string {
	return []string{
		KeySessions, KeyStats, KeyAchievements, KeyChallenges,
		KeyPreferences, KeyNotifications, KeyTutorial, KeyProfile, KeyMeta,
	}
}

// KV is the persistence capability used by the tracker.
type KV interface {
	// Get returns the value under key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key.
	Delete(ctx context.Context, key string) error
}

// Mem is an in-memory KV for tests.
type Mem struct {
	mu   sync.Mutex
	data map[string]string
}

var _ KV = (*Mem)(nil)

// NewMem returns an empty Mem.
func NewMem() *Mem {
	return &Mem{data: map[string]string{}}
}

func (m *Mem) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Mem) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	m.data[key] = value
	m.mu.Unlock()
	return nil
}

func (m *Mem) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

// Keys lists the stored keys in ascending order.
func (m *Mem) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
