package atomic

import "testing"

func mustBoard(t *testing.T, rows []string) *Board {
	t.Helper()
	b, err := parseBoard(rows)
	if err != nil {
		t.Fatalf("parseBoard: %v", err)
	}
	return b
}

func sq(t *testing.T, s string) Square {
	t.Helper()
	p, err := ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return p
}

func TestLegalMoveInitialPosition(t *testing.T) {
	b := NewBoard()
	cases := []struct {
		name     string
		mover    Color
		from, to string
		want     bool
	}{
		{"pawn single step", White, "e2", "e3", true},
		{"pawn double step", White, "e2", "e4", true},
		{"pawn triple step", White, "e2", "e5", false},
		{"pawn sideways", White, "e2", "f2", false},
		{"pawn diagonal to empty", White, "e2", "f3", false},
		{"black pawn double step", Black, "d7", "d5", true},
		{"knight over pawns", White, "b1", "c3", true},
		{"knight onto own pawn", White, "b1", "d2", false},
		{"knight bad shape", White, "b1", "b3", false},
		{"bishop blocked by pawn", White, "c1", "e3", false},
		{"rook blocked by pawn", White, "a1", "a3", false},
		{"queen blocked", White, "d1", "d3", false},
		{"king onto own pawn", White, "e1", "e2", false},
		{"moving opponent piece", White, "e7", "e5", false},
		{"empty start cell", White, "e4", "e5", false},
		{"null move", White, "e2", "e2", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := legalMove(b, tc.mover, sq(t, tc.from), sq(t, tc.to))
			if got != tc.want {
				t.Fatalf("legalMove(%s, %s->%s) = %v, want %v", tc.mover, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestLegalMoveOpenBoard(t *testing.T) {
	b := mustBoard(t, []string{
		"........",
		"........",
		"..n.....",
		"....pb..",
		"...P.N..",
		"........",
		"..B...R.",
		"....Q..K",
	})
	cases := []struct {
		name     string
		mover    Color
		from, to string
		want     bool
	}{
		{"pawn captures diagonally", White, "d4", "e5", true},
		{"pawn diagonal to empty", White, "d4", "c5", false},
		{"black pawn quiet step", Black, "e5", "e4", true},
		{"black pawn captures knight", Black, "e5", "f4", true},
		{"bishop open diagonal", Black, "f5", "d3", true},
		{"bishop blocked at far end", Black, "f5", "b1", false},
		{"bishop captures bishop", Black, "f5", "c2", true},
		{"knight wrong shape", White, "f4", "e5", false},
		{"knight to empty square", White, "f4", "d5", true},
		{"knight onto own rook", White, "f4", "g2", false},
		{"knight captures pawn", Black, "c6", "d4", true},
		{"knight onto own pawn", Black, "c6", "e5", false},
		{"rook up the file", White, "g2", "g6", true},
		{"rook onto own bishop", White, "g2", "c2", false},
		{"queen as rook", White, "e1", "e4", true},
		{"queen as bishop", White, "e1", "b4", true},
		{"queen captures up the file", White, "e1", "e5", true},
		{"queen wrong shape", White, "e1", "c2", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := legalMove(b, tc.mover, sq(t, tc.from), sq(t, tc.to))
			if got != tc.want {
				t.Fatalf("legalMove(%s, %s->%s) = %v, want %v", tc.mover, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestKingNeverCaptures(t *testing.T) {
	b := mustBoard(t, []string{
		"........",
		"........",
		"........",
		"...p....",
		"...K....",
		"........",
		"........",
		"........",
	})
	if legalMove(b, White, sq(t, "d4"), sq(t, "d5")) {
		t.Fatal("king captured a pawn; kings may only move to empty squares")
	}
	if !legalMove(b, White, sq(t, "d4"), sq(t, "e4")) {
		t.Fatal("king step onto empty square rejected")
	}
	if legalMove(b, White, sq(t, "d4"), sq(t, "d6")) {
		t.Fatal("king moved two squares")
	}
}

func TestParseSquare(t *testing.T) {
	for _, bad := range []string{"", "d", "d22", "i1", "a0", "a9", "1a", "D2"} {
		if _, err := ParseSquare(bad); err == nil {
			t.Errorf("ParseSquare(%q): expected error", bad)
		}
	}
	got, err := ParseSquare("d2")
	if err != nil {
		t.Fatalf("ParseSquare(d2): %v", err)
	}
	if got != (Square{Row: 6, Col: 3}) {
		t.Fatalf("ParseSquare(d2) = %+v", got)
	}
	if got.String() != "d2" {
		t.Fatalf("round-trip: got %q", got.String())
	}
}
