package atomicdto

// CreateGameRequest starts a new game between two players.
type CreateGameRequest struct {
	WhiteID string `json:"white_id"`
	BlackID string `json:"black_id"`
}

// MoveRequest plays one half-move in coordinate form.
type MoveRequest struct {
	PlayerID string `json:"player_id"`
	From     string `json:"from"`
	To       string `json:"to"`
}
