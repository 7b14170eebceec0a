package tracker

import (
	"sync"
	"time"
)

// SessionStore tracks which users are currently in a voice channel and
// since when. At most one session exists per user; a second Enter before
// a matching Leave replaces the join time and the earlier interval is
// lost. Detecting channel transitions is the caller's job: Enter must
// only be called when a user goes from no channel to some channel, and
// Leave only on the reverse.
type SessionStore interface {
	Enter(userID string, now time.Time)
	Leave(userID string, now time.Time) (time.Duration, bool)
	Peek(userID string) (time.Time, bool)
}

// MemoryStore keeps sessions in a map. Sessions are not persisted:
// a restart loses in-flight sessions and their partial intervals.
type MemoryStore struct {
	mu    sync.Mutex
	joins map[string]time.Time
}

// NewMemoryStore creates an empty in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{joins: make(map[string]time.Time)}
}

// Enter records now as the user's join time, overwriting any prior entry.
func (m *MemoryStore) Enter(userID string, now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.joins[userID] = now
}

// Leave consumes the user's session and returns the elapsed duration
// since the recorded join. Returns false when no join was recorded
// (the lost-join case, e.g. a restart mid-session).
func (m *MemoryStore) Leave(userID string, now time.Time) (time.Duration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	joinedAt, ok := m.joins[userID]
	if !ok {
		return 0, false
	}
	delete(m.joins, userID)
	return now.Sub(joinedAt), true
}

// Peek returns the user's join time without consuming the session.
func (m *MemoryStore) Peek(userID string) (time.Time, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	joinedAt, ok := m.joins[userID]
	return joinedAt, ok
}
