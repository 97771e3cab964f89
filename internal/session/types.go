package session

import "time"

// Status represents a session lifecycle state.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusFinished Status = "FINISHED"
)

// Session is the persisted state of one game between two players. The
// move list is authoritative: the engine position is reconstructed from
// it on every play, so a session never stores a stale board.
type Session struct {
	ID        string    `json:"id"`
	WhiteID   string    `json:"white_id"`
	BlackID   string    `json:"black_id"`
	Moves     []string  `json:"moves"`
	Turn      string    `json:"turn"`
	State     string    `json:"state"`
	Status    Status    `json:"status"`
	Winner    string    `json:"winner,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Session) clone() *Session {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Moves = append([]string(nil), s.Moves...)
	return &cp
}
