package atomic

import "fmt"

// Board is the 8x8 grid. It is owned and mutated by exactly one Game;
// everything else sees copies.
type Board struct {
	cells [8][8]Piece
}

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard initial arrangement.
func NewBoard() *Board {
	b := &Board{}
	for col := 0; col < 8; col++ {
		b.cells[0][col] = Piece{Kind: backRank[col], Color: Black}
		b.cells[1][col] = Piece{Kind: Pawn, Color: Black}
		b.cells[6][col] = Piece{Kind: Pawn, Color: White}
		b.cells[7][col] = Piece{Kind: backRank[col], Color: White}
	}
	return b
}

// At returns the occupant of sq. The caller is responsible for bounds.
func (b *Board) At(sq Square) Piece { return b.cells[sq.Row][sq.Col] }

func (b *Board) set(sq Square, p Piece) { b.cells[sq.Row][sq.Col] = p }

// Grid returns a value copy of the full board for rendering and inspection.
func (b *Board) Grid() [8][8]Piece { return b.cells }

// kingsAlive reports whether each king is still on the board.
func (b *Board) kingsAlive() (white, black bool) {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b.cells[r][c]
			if p.Kind != King {
				continue
			}
			if p.Color == White {
				white = true
			} else {
				black = true
			}
		}
	}
	return white, black
}

// encode flattens the board to eight rank strings, row 0 first.
func (b *Board) encode() []string {
	rows := make([]string, 8)
	for r := 0; r < 8; r++ {
		line := make([]byte, 8)
		for c := 0; c < 8; c++ {
			line[c] = b.cells[r][c].Letter()
		}
		rows[r] = string(line)
	}
	return rows
}

// parseBoard is the inverse of encode.
func parseBoard(rows []string) (*Board, error) {
	if len(rows) != 8 {
		return nil, fmt.Errorf("board: want 8 rows, got %d", len(rows))
	}
	b := &Board{}
	for r, row := range rows {
		if len(row) != 8 {
			return nil, fmt.Errorf("board row %d: want 8 cells, got %d", r, len(row))
		}
		for c := 0; c < 8; c++ {
			p, err := pieceFromLetter(row[c])
			if err != nil {
				return nil, fmt.Errorf("board row %d: %w", r, err)
			}
			b.cells[r][c] = p
		}
	}
	return b, nil
}
