package tui

import (
	"errors"
	"sort"
	"sync"
	"time"
)

// ErrServerFull is returned by SessionRegistry.Register when the limit is reached.
var ErrServerFull = errors.New("server full")

// SessionInfo describes one connected SSH session.
type SessionInfo struct {
	ID      string
	User    string
	Remote  string
	Started time.Time
	GameID  string // empty while in the menu
}

// SessionRegistry tracks active sessions.
// Thread-safe for concurrent access.
type SessionRegistry struct {
	mu       sync.RWMutex
	limit    int
	sessions map[string]SessionInfo
}

// NewSessionRegistry creates a registry admitting at most limit sessions.
// limit <= 0 means unlimited.
func NewSessionRegistry(limit int) *SessionRegistry {
	return &SessionRegistry{
		limit:    limit,
		sessions: make(map[string]SessionInfo),
	}
}

// Register adds a session to the registry.
func (r *SessionRegistry) Register(info SessionInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.limit > 0 && len(r.sessions) >= r.limit {
		return ErrServerFull
	}
	r.sessions[info.ID] = info
	return nil
}

// Unregister removes a session from the registry.
func (r *SessionRegistry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// SetGame records the game a session is playing. Unknown ids are ignored.
func (r *SessionRegistry) SetGame(id, gameID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if info, ok := r.sessions[id]; ok {
		info.GameID = gameID
		r.sessions[id] = info
	}
}

// Get retrieves a session by ID.
func (r *SessionRegistry) Get(id string) (SessionInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// List returns every session, oldest first.
func (r *SessionRegistry) List() []SessionInfo {
	r.mu.RLock()
	out := make([]SessionInfo, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Started.Equal(out[j].Started) {
			return out[i].ID < out[j].ID
		}
		return out[i].Started.Before(out[j].Started)
	})
	return out
}

// Count returns the number of registered sessions.
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
