package atomic

// legalMove reports whether mover may move from one square to another on
// the current board. It is a pure read of the board: no cell is touched.
//
// Shared preconditions: both squares on the board, the start cell holds a
// piece of the mover's color, and the destination never holds a piece of
// the mover's own color. Kings are stricter still: they may only step
// onto empty squares, so a king can never capture and never detonates.
func legalMove(b *Board, mover Color, from, to Square) bool {
	if !from.inBounds() || !to.inBounds() {
		return false
	}
	if from == to {
		return false
	}
	piece := b.At(from)
	if piece.IsEmpty() || piece.Color != mover {
		return false
	}
	if dst := b.At(to); !dst.IsEmpty() && dst.Color == mover {
		return false
	}

	switch piece.Kind {
	case Pawn:
		return pawnMove(b, piece.Color, from, to)
	case Knight:
		return knightMove(from, to)
	case Bishop:
		return bishopMove(b, from, to)
	case Rook:
		return rookMove(b, from, to)
	case Queen:
		return bishopMove(b, from, to) || rookMove(b, from, to)
	case King:
		return kingMove(b, from, to)
	}
	return false
}

func pawnMove(b *Board, c Color, from, to Square) bool {
	dir := -1 // White advances toward row 0
	startRow := 6
	if c == Black {
		dir = 1
		startRow = 1
	}

	// Quiet advance: one step, or two from the starting rank through an
	// empty intermediate square. Both require an empty destination.
	if from.Col == to.Col && b.At(to).IsEmpty() {
		if from.Row+dir == to.Row {
			return true
		}
		if from.Row == startRow && from.Row+2*dir == to.Row &&
			b.At(Square{Row: from.Row + dir, Col: from.Col}).IsEmpty() {
			return true
		}
		return false
	}

	// Capture: one column over, one step forward, onto an occupied square.
	// legalMove already rejected same-color occupants.
	if abs(from.Col-to.Col) == 1 && from.Row+dir == to.Row {
		return !b.At(to).IsEmpty()
	}
	return false
}

func knightMove(from, to Square) bool {
	dr, dc := abs(from.Row-to.Row), abs(from.Col-to.Col)
	return (dr == 2 && dc == 1) || (dr == 1 && dc == 2)
}

func bishopMove(b *Board, from, to Square) bool {
	if abs(from.Row-to.Row) != abs(from.Col-to.Col) {
		return false
	}
	return clearPath(b, from, to)
}

func rookMove(b *Board, from, to Square) bool {
	if from.Row != to.Row && from.Col != to.Col {
		return false
	}
	return clearPath(b, from, to)
}

func kingMove(b *Board, from, to Square) bool {
	if abs(from.Row-to.Row) > 1 || abs(from.Col-to.Col) > 1 {
		return false
	}
	return b.At(to).IsEmpty()
}

// clearPath checks every square strictly between from and to along a
// straight or diagonal line. The endpoints themselves are not inspected.
func clearPath(b *Board, from, to Square) bool {
	stepR := sign(to.Row - from.Row)
	stepC := sign(to.Col - from.Col)
	for r, c := from.Row+stepR, from.Col+stepC; r != to.Row || c != to.Col; r, c = r+stepR, c+stepC {
		if !b.At(Square{Row: r, Col: c}).IsEmpty() {
			return false
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
