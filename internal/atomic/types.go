package atomic

import "fmt"

// Color identifies a side.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// ParseColor reads the wire form produced by Color.String.
func ParseColor(s string) (Color, error) {
	switch s {
	case "white":
		return White, nil
	case "black":
		return Black, nil
	}
	return White, fmt.Errorf("unknown color %q", s)
}

// Kind is a chess piece kind. The zero value marks an empty cell.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece is an immutable (kind, color) value occupying one board cell.
// The zero Piece is the empty cell.
type Piece struct {
	Kind  Kind
	Color Color
}

// NoPiece is the empty cell value.
var NoPiece = Piece{}

func (p Piece) IsEmpty() bool { return p.Kind == NoKind }

var kindLetters = [...]byte{NoKind: '.', Pawn: 'p', Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q', King: 'k'}

// Letter returns the FEN-style letter for the piece: uppercase for White,
// lowercase for Black, '.' for the empty cell.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	c := kindLetters[p.Kind]
	if p.Color == White {
		return c - 'a' + 'A'
	}
	return c
}

func pieceFromLetter(c byte) (Piece, error) {
	if c == '.' {
		return NoPiece, nil
	}
	color := Black
	if c >= 'A' && c <= 'Z' {
		color = White
		c = c - 'A' + 'a'
	}
	for k, l := range kindLetters {
		if Kind(k) != NoKind && l == c {
			return Piece{Kind: Kind(k), Color: color}, nil
		}
	}
	return NoPiece, fmt.Errorf("unknown piece letter %q", string(c))
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return string(p.Letter())
}

// State is the game lifecycle state. It only moves forward: once a king
// is blown up the controller stops accepting moves.
type State uint8

const (
	InProgress State = iota
	WhiteWon
	BlackWon
)

func (s State) String() string {
	switch s {
	case WhiteWon:
		return "WHITE_WON"
	case BlackWon:
		return "BLACK_WON"
	default:
		return "IN_PROGRESS"
	}
}

// ParseState reads the wire form produced by State.String.
func ParseState(s string) (State, error) {
	switch s {
	case "IN_PROGRESS":
		return InProgress, nil
	case "WHITE_WON":
		return WhiteWon, nil
	case "BLACK_WON":
		return BlackWon, nil
	}
	return InProgress, fmt.Errorf("unknown game state %q", s)
}
