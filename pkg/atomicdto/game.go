package atomicdto

import "time"

// GameResponse is the full client-facing view of one game.
type GameResponse struct {
	ID        string    `json:"id"`
	WhiteID   string    `json:"white_id"`
	BlackID   string    `json:"black_id"`
	Moves     []string  `json:"moves"`
	Turn      string    `json:"turn"`
	State     string    `json:"state"`
	Status    string    `json:"status"`
	Winner    string    `json:"winner,omitempty"`
	Board     []string  `json:"board"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
