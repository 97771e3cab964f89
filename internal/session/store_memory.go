package session

import (
	"context"
	"sync"
)

// MemoryStore is the store used when no Redis is configured: local
// development and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	byPlayer map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		byPlayer: make(map[string][]string),
	}
}

func (s *MemoryStore) Save(ctx context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.sessions[sess.ID]; !exists {
		for _, player := range []string{sess.WhiteID, sess.BlackID} {
			if player != "" {
				s.byPlayer[player] = append(s.byPlayer[player], sess.ID)
			}
		}
	}
	s.sessions[sess.ID] = sess.clone()
	return nil
}

func (s *MemoryStore) Load(ctx context.Context, id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess.clone(), nil
}

func (s *MemoryStore) Update(ctx context.Context, id string, fn func(*Session) error) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	work := sess.clone()
	if err := fn(work); err != nil {
		return nil, err
	}
	s.sessions[id] = work.clone()
	return work, nil
}

func (s *MemoryStore) IDsByPlayer(ctx context.Context, playerID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.byPlayer[playerID]...), nil
}
