package prefstore

import (
	"context"
	"sync"
)

// MemoryProvider keeps preferences in process memory. Used in development and tests.
type MemoryProvider struct {
	mu       sync.RWMutex
	sessions map[string]map[string]string
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{sessions: make(map[string]map[string]string)}
}

func (p *MemoryProvider) ForSession(sessionID string) Store {
	return &memoryStore{p: p, sid: sessionID}
}

type memoryStore struct {
	p   *MemoryProvider
	sid string
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.p.mu.RLock()
	defer s.p.mu.RUnlock()
	v, ok := s.p.sessions[s.sid][key]
	return v, ok, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()
	m, ok := s.p.sessions[s.sid]
	if !ok {
		m = make(map[string]string)
		s.p.sessions[s.sid] = m
	}
	m[key] = value
	return nil
}
