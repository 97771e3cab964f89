package atomic

import "fmt"

// Square addresses one board cell. Row 0 is the Black back rank (rank 8),
// row 7 the White back rank (rank 1); col 0 is file 'a'.
type Square struct {
	Row int
	Col int
}

// ParseSquare decodes a two-character coordinate like "d2".
// Anything outside a1..h8 is an error.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("square %q: want two characters", s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' {
		return Square{}, fmt.Errorf("square %q: file out of range", s)
	}
	if rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("square %q: rank out of range", s)
	}
	return Square{Row: 8 - int(rank-'0'), Col: int(file - 'a')}, nil
}

func (sq Square) String() string {
	return string([]byte{byte('a' + sq.Col), byte('0' + (8 - sq.Row))})
}

func (sq Square) inBounds() bool {
	return sq.Row >= 0 && sq.Row < 8 && sq.Col >= 0 && sq.Col < 8
}
