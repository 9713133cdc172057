package ws

import (
	"sort"
	"sync"
	"time"
)

// SessionInfo describes a live bridge session.
type SessionInfo struct {
	ID      string    `json:"id"`
	Player  string    `json:"player"`
	Remote  string    `json:"remote"`
	Seed    int64     `json:"seed"`
	Started time.Time `json:"started"`
}

// sessionRegistry tracks live sessions. Safe for concurrent use.
type sessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]SessionInfo
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{sessions: make(map[string]SessionInfo)}
}

// register adds a session unless limit sessions are already live. A limit
// of zero admits everyone.
func (r *sessionRegistry) register(info SessionInfo, limit int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit > 0 && len(r.sessions) >= limit {
		return false
	}
	r.sessions[info.ID] = info
	return true
}

func (r *sessionRegistry) unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

func (r *sessionRegistry) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// list returns the live sessions, oldest first.
func (r *sessionRegistry) list() []SessionInfo {
	r.mu.RLock()
	out := make([]SessionInfo, 0, len(r.sessions))
	for _, info := range r.sessions {
		out = append(out, info)
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
