package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kelvinhskim/atomic-chess/internal/atomic"
	"github.com/kelvinhskim/atomic-chess/internal/obslog"
	"github.com/kelvinhskim/atomic-chess/internal/results"
)

var (
	ErrNotParticipant = errors.New("player is not in this game")
	ErrNotYourTurn    = errors.New("not this player's turn")
	ErrIllegalMove    = errors.New("illegal move")
	ErrFinished       = errors.New("game already finished")
)

// Manager owns session lifecycle: create, look up, apply moves, and
// archive finished games.
type Manager struct {
	store Store
	repo  results.Repository
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// AttachRepository wires an archive for finished games.
func (m *Manager) AttachRepository(r results.Repository) {
	if m != nil {
		m.repo = r
	}
}

// Create starts a new game between two players, White to move.
func (m *Manager) Create(ctx context.Context, whiteID, blackID string) (*Session, error) {
	whiteID, blackID = strings.TrimSpace(whiteID), strings.TrimSpace(blackID)
	if whiteID == "" || blackID == "" {
		return nil, fmt.Errorf("both players required")
	}
	if whiteID == blackID {
		return nil, fmt.Errorf("players must differ")
	}

	g := atomic.NewGame()
	now := time.Now()
	sess := &Session{
		ID:        uuid.NewString(),
		WhiteID:   whiteID,
		BlackID:   blackID,
		Moves:     []string{},
		Turn:      g.Turn().String(),
		State:     g.State().String(),
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	obslog.L().Info("game_create",
		zap.String("game_id", sess.ID),
		zap.String("white_id", whiteID),
		zap.String("black_id", blackID),
	)
	return sess, nil
}

// Get returns the session by ID.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	return m.store.Load(ctx, id)
}

// ActiveByPlayer returns the player's most recently updated active game,
// or nil if there is none.
func (m *Manager) ActiveByPlayer(ctx context.Context, playerID string) (*Session, error) {
	ids, err := m.store.IDsByPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	var active []*Session
	for _, id := range ids {
		sess, err := m.store.Load(ctx, id)
		if err != nil || sess == nil {
			continue
		}
		if sess.Status == StatusActive {
			active = append(active, sess)
		}
	}
	if len(active) == 0 {
		return nil, nil
	}
	sort.Slice(active, func(i, j int) bool { return active[i].UpdatedAt.After(active[j].UpdatedAt) })
	return active[0], nil
}

// History returns the player's most recently finished games, newest
// first. Without an attached repository there is no history to serve.
func (m *Manager) History(ctx context.Context, playerID string, limit int) ([]*results.Record, error) {
	if m.repo == nil {
		return []*results.Record{}, nil
	}
	return m.repo.RecentByPlayer(ctx, playerID, limit)
}

// Play applies one move on behalf of playerID. Rule rejections surface as
// the sentinel errors above; the session is untouched on any of them.
func (m *Manager) Play(ctx context.Context, gameID, playerID, from, to string) (*Session, error) {
	sess, err := m.store.Update(ctx, gameID, func(cur *Session) error {
		if cur.Status != StatusActive {
			return ErrFinished
		}
		var color atomic.Color
		switch playerID {
		case cur.WhiteID:
			color = atomic.White
		case cur.BlackID:
			color = atomic.Black
		default:
			return ErrNotParticipant
		}

		g, err := atomic.Replay(cur.Moves)
		if err != nil {
			return fmt.Errorf("reconstruct game %s: %w", cur.ID, err)
		}
		if g.Turn() != color {
			return ErrNotYourTurn
		}
		if !g.MakeMove(from, to) {
			return ErrIllegalMove
		}

		cur.Moves = g.Moves()
		cur.Turn = g.Turn().String()
		cur.State = g.State().String()
		cur.UpdatedAt = time.Now()
		if g.State() != atomic.InProgress {
			cur.Status = StatusFinished
			if g.State() == atomic.WhiteWon {
				cur.Winner = cur.WhiteID
			} else {
				cur.Winner = cur.BlackID
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	obslog.L().Info("game_move",
		zap.String("game_id", sess.ID),
		zap.String("player_id", playerID),
		zap.String("move", from+to),
		zap.String("state", sess.State),
		zap.String("status", string(sess.Status)),
	)
	if sess.Status == StatusFinished {
		m.archive(ctx, sess)
	}
	return sess, nil
}

// Game reconstructs the engine position for a session, e.g. for rendering.
func (m *Manager) Game(sess *Session) (*atomic.Game, error) {
	if sess == nil {
		return nil, ErrNotFound
	}
	return atomic.Replay(sess.Moves)
}

func (m *Manager) archive(ctx context.Context, sess *Session) {
	if m.repo == nil {
		return
	}
	_, err := m.repo.Insert(ctx, &results.Record{
		GameID:    sess.ID,
		WhiteID:   sess.WhiteID,
		BlackID:   sess.BlackID,
		Winner:    sess.Winner,
		State:     sess.State,
		Moves:     sess.Moves,
		StartedAt: sess.CreatedAt,
		EndedAt:   sess.UpdatedAt,
	})
	if err != nil && !errors.Is(err, results.ErrDuplicate) {
		obslog.L().Error("game_archive_error", zap.String("game_id", sess.ID), zap.Error(err))
		return
	}
	obslog.L().Info("game_archive", zap.String("game_id", sess.ID), zap.String("winner", sess.Winner))
}
