package atomic

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type gameSnapshot struct {
	Grid  [8][8]Piece
	Turn  Color
	State State
	Moves []string
}

func snapshot(g *Game) gameSnapshot {
	return gameSnapshot{Grid: g.Board(), Turn: g.Turn(), State: g.State(), Moves: g.Moves()}
}

func mustMove(t *testing.T, g *Game, from, to string) {
	t.Helper()
	if !g.MakeMove(from, to) {
		t.Fatalf("MakeMove(%s, %s) rejected", from, to)
	}
}

func TestOpeningSequence(t *testing.T) {
	g := NewGame()
	mustMove(t, g, "d2", "d4")
	mustMove(t, g, "g7", "g5")
	mustMove(t, g, "c1", "g5")

	if got := g.State(); got != InProgress {
		t.Fatalf("state after bishop takes g5 = %v, want InProgress", got)
	}
	if got := g.Turn(); got != Black {
		t.Fatalf("turn = %v, want Black", got)
	}

	grid := g.Board()
	// g5 blast removes both the bishop and the captured pawn; nothing
	// else was inside the radius.
	if p := grid[3][6]; !p.IsEmpty() {
		t.Fatalf("g5 still occupied by %v", p)
	}
	if p := grid[7][2]; !p.IsEmpty() {
		t.Fatalf("c1 still occupied by %v", p)
	}
	if diff := cmp.Diff([]string{"d2d4", "g7g5", "c1g5"}, g.Moves()); diff != "" {
		t.Fatalf("moves mismatch (-want +got):\n%s", diff)
	}
}

func TestRejectionIsNoOp(t *testing.T) {
	g := NewGame()
	before := snapshot(g)

	rejects := [][2]string{
		{"e7", "e5"}, // not Black's turn
		{"e2", "e5"}, // pawn cannot triple-step
		{"a1", "a5"}, // rook blocked by own pawn
		{"e1", "e2"}, // king onto own pawn
		{"x9", "e4"}, // malformed coordinate
	}
	for _, mv := range rejects {
		// Twice: rejection must be idempotent with no state drift.
		for i := 0; i < 2; i++ {
			if g.MakeMove(mv[0], mv[1]) {
				t.Fatalf("MakeMove(%s, %s) accepted, want rejection", mv[0], mv[1])
			}
		}
		if diff := cmp.Diff(before, snapshot(g)); diff != "" {
			t.Fatalf("state drifted after rejected %s%s (-want +got):\n%s", mv[0], mv[1], diff)
		}
	}
}

func TestTurnAlternates(t *testing.T) {
	g := NewGame()
	if g.Turn() != White {
		t.Fatalf("new game turn = %v, want White", g.Turn())
	}
	mustMove(t, g, "e2", "e4")
	if g.Turn() != Black {
		t.Fatalf("turn after white move = %v, want Black", g.Turn())
	}
	if g.MakeMove("d2", "d4") {
		t.Fatal("white moved twice in a row")
	}
	mustMove(t, g, "e7", "e5")
	if g.Turn() != White {
		t.Fatalf("turn after black move = %v, want White", g.Turn())
	}
	if g.State() != InProgress {
		t.Fatalf("state = %v, want InProgress", g.State())
	}
}

func TestNoMovesAfterGameOver(t *testing.T) {
	g := wonGame(t)
	if g.State() != WhiteWon {
		t.Fatalf("state = %v, want WhiteWon", g.State())
	}
	if g.MakeMove("e8", "e7") || g.MakeMove("a1", "a2") {
		t.Fatal("move accepted after terminal state")
	}
}

// wonGame builds a position where White's next capture blows up the Black
// king, and plays it.
func wonGame(t *testing.T) *Game {
	t.Helper()
	g := positionGame(t, []string{
		"....k...",
		"....r...",
		"........",
		"....Q...",
		"........",
		"........",
		"........",
		"K.......",
	}, White)
	mustMove(t, g, "e5", "e7")
	return g
}

func positionGame(t *testing.T, rows []string, turn Color) *Game {
	t.Helper()
	return &Game{board: mustBoard(t, rows), turn: turn, state: InProgress}
}

func TestExplosionWinKeepsTurn(t *testing.T) {
	g := wonGame(t)
	// Terminal transition happens inside the same MakeMove call; the turn
	// is left on the winner since the game is over.
	if g.Turn() != White {
		t.Fatalf("turn = %v, want White (unchanged on terminal move)", g.Turn())
	}
	grid := g.Board()
	if p := grid[0][4]; !p.IsEmpty() {
		t.Fatalf("e8 still occupied by %v after blast", p)
	}
	if p := grid[7][0]; p.Kind != King || p.Color != White {
		t.Fatalf("a1 = %v, want white king untouched", p)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	g := NewGame()
	mustMove(t, g, "d2", "d4")
	mustMove(t, g, "g7", "g5")
	mustMove(t, g, "c1", "g5")

	raw, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Game
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(snapshot(g), snapshot(&back)); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReplay(t *testing.T) {
	moves := []string{"d2d4", "g7g5", "c1g5"}
	g, err := Replay(moves)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if diff := cmp.Diff(moves, g.Moves()); diff != "" {
		t.Fatalf("moves mismatch (-want +got):\n%s", diff)
	}

	if _, err := Replay([]string{"d2d4", "d2d4"}); err == nil {
		t.Fatal("Replay accepted a move list with an illegal move")
	}
	if _, err := Replay([]string{"bogus"}); err == nil {
		t.Fatal("Replay accepted a malformed move")
	}
}
