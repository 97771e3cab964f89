package atomic

import (
	"encoding/json"
	"fmt"
)

// Game is the controller for one Atomic Chess game. It is the sole owner
// of its board, turn, and state; callers drive it strictly one MakeMove
// at a time. It is not safe for concurrent use.
type Game struct {
	board *Board
	turn  Color
	state State
	moves []string
}

// NewGame starts a fresh game: standard arrangement, White to move.
func NewGame() *Game {
	return &Game{board: NewBoard(), turn: White, state: InProgress}
}

func (g *Game) State() State { return g.state }
func (g *Game) Turn() Color  { return g.turn }

// Board returns a snapshot copy of the grid for rendering.
func (g *Game) Board() [8][8]Piece { return g.board.Grid() }

// Moves returns the committed moves in coordinate-pair form ("d2d4").
func (g *Game) Moves() []string {
	return append([]string(nil), g.moves...)
}

// MakeMove attempts one half-move and reports whether it was committed.
// Every rejection is a complete no-op: board, turn, and state are left
// exactly as they were.
func (g *Game) MakeMove(from, to string) bool {
	if g.state != InProgress {
		return false
	}
	src, err := ParseSquare(from)
	if err != nil {
		return false
	}
	dst, err := ParseSquare(to)
	if err != nil {
		return false
	}
	if !legalMove(g.board, g.turn, src, dst) {
		return false
	}

	// Two-cell transaction: remember the touched cells, apply, and put
	// them back if the explosion turns out to be illegal.
	mover := g.board.At(src)
	captured := g.board.At(dst)
	g.board.set(src, NoPiece)
	g.board.set(dst, mover)

	if !captured.IsEmpty() {
		if !blastSurvivable(g.board, dst) {
			g.board.set(src, mover)
			g.board.set(dst, captured)
			return false
		}
		detonate(g.board, dst)
	}

	whiteKing, blackKing := g.board.kingsAlive()
	switch {
	case !whiteKing:
		g.state = BlackWon
	case !blackKing:
		g.state = WhiteWon
	default:
		g.turn = g.turn.Opposite()
	}
	g.moves = append(g.moves, from+to)
	return true
}

// Replay rebuilds a game from a committed move list. It fails if any
// recorded move does not apply cleanly, which would mean the record was
// produced by a different rule set or corrupted in storage.
func Replay(moves []string) (*Game, error) {
	g := NewGame()
	for i, mv := range moves {
		if len(mv) != 4 {
			return nil, fmt.Errorf("move %d: malformed %q", i, mv)
		}
		if !g.MakeMove(mv[:2], mv[2:]) {
			return nil, fmt.Errorf("move %d: %q does not apply", i, mv)
		}
	}
	return g, nil
}

type gameRecord struct {
	Board []string `json:"board"`
	Turn  string   `json:"turn"`
	State string   `json:"state"`
	Moves []string `json:"moves"`
}

// MarshalJSON serializes the full position, turn, and state so a game
// can be exported and restored without replaying its move list.
func (g *Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(gameRecord{
		Board: g.board.encode(),
		Turn:  g.turn.String(),
		State: g.state.String(),
		Moves: g.moves,
	})
}

func (g *Game) UnmarshalJSON(data []byte) error {
	var rec gameRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	board, err := parseBoard(rec.Board)
	if err != nil {
		return err
	}
	turn, err := ParseColor(rec.Turn)
	if err != nil {
		return err
	}
	state, err := ParseState(rec.State)
	if err != nil {
		return err
	}
	g.board = board
	g.turn = turn
	g.state = state
	g.moves = append([]string(nil), rec.Moves...)
	return nil
}
