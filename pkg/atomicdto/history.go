package atomicdto

import "time"

// ArchivedGameResponse is one finished game in a player's history.
type ArchivedGameResponse struct {
	GameID    string    `json:"game_id"`
	WhiteID   string    `json:"white_id"`
	BlackID   string    `json:"black_id"`
	Winner    string    `json:"winner"`
	State     string    `json:"state"`
	Moves     []string  `json:"moves"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}
