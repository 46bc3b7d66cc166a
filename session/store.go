package session

import "sync"

// Store holds per-browsing-session state keyed by session id. Each session's
// values are private to that session; the order workflow keeps exactly one
// key in it (the in-progress order).
type Store interface {
	Get(sessionID, key string) (any, bool)
	Set(sessionID, key string, value any)
	Clear(sessionID, key string)
}

// MemoryStore is the in-process Store implementation.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string]any
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]map[string]any)}
}

func (s *MemoryStore) Get(sessionID, key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	values, ok := s.sessions[sessionID]
	if !ok {
		return nil, false
	}
	value, ok := values[key]
	return value, ok
}

func (s *MemoryStore) Set(sessionID, key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, ok := s.sessions[sessionID]
	if !ok {
		values = make(map[string]any)
		s.sessions[sessionID] = values
	}
	values[key] = value
}

func (s *MemoryStore) Clear(sessionID, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, ok := s.sessions[sessionID]
	if !ok {
		return
	}
	delete(values, key)
	if len(values) == 0 {
		delete(s.sessions, sessionID)
	}
}
