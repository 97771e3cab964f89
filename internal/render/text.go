package render

import (
	"strings"

	"github.com/kelvinhskim/atomic-chess/internal/atomic"
)

// Rows flattens a grid into eight rank strings, rank 8 first, using
// FEN-style letters with '.' for empty cells.
func Rows(grid [8][8]atomic.Piece) []string {
	rows := make([]string, 8)
	for r := 0; r < 8; r++ {
		line := make([]byte, 8)
		for c := 0; c < 8; c++ {
			line[c] = grid[r][c].Letter()
		}
		rows[r] = string(line)
	}
	return rows
}

// Text renders a console-friendly board with rank and file labels.
func Text(grid [8][8]atomic.Piece) string {
	var b strings.Builder
	for r := 0; r < 8; r++ {
		b.WriteByte(byte('0' + (8 - r)))
		for c := 0; c < 8; c++ {
			b.WriteByte(' ')
			b.WriteByte(grid[r][c].Letter())
		}
		b.WriteByte('\n')
	}
	b.WriteString("  a b c d e f g h\n")
	return b.String()
}
