package session

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("session not found")
	// ErrConflict signals a concurrent update lost the race; callers may
	// retry the whole operation.
	ErrConflict = errors.New("session modified concurrently")
)

// Store persists sessions. Update must apply fn atomically with respect
// to other writers of the same session.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Load(ctx context.Context, id string) (*Session, error)
	Update(ctx context.Context, id string, fn func(*Session) error) (*Session, error)
	IDsByPlayer(ctx context.Context, playerID string) ([]string, error)
}
