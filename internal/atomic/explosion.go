package atomic

// Captures are mutually destructive: the capture square and its full 3x3
// neighborhood are cleared, capturing piece included. Pawns are cleared
// like everything else; see the survival test for the deliberate departure
// from the over-the-board rule that pawns shrug off blasts.

// blastSurvivable reports whether detonating at center would leave at
// least one king standing. A blast that would remove both kings at once
// makes the whole move illegal, so this runs before any cell is cleared.
func blastSurvivable(b *Board, center Square) bool {
	whiteKing, blackKing := false, false
	forEachBlastCell(center, func(sq Square) {
		p := b.At(sq)
		if p.Kind != King {
			return
		}
		if p.Color == White {
			whiteKing = true
		} else {
			blackKing = true
		}
	})
	return !(whiteKing && blackKing)
}

// detonate clears every occupied cell in the blast radius.
func detonate(b *Board, center Square) {
	forEachBlastCell(center, func(sq Square) {
		b.set(sq, NoPiece)
	})
}

// forEachBlastCell visits the 3x3 neighborhood of center, clipped at the
// board edges.
func forEachBlastCell(center Square, fn func(Square)) {
	for r := max(0, center.Row-1); r <= min(7, center.Row+1); r++ {
		for c := max(0, center.Col-1); c <= min(7, center.Col+1); c++ {
			fn(Square{Row: r, Col: c})
		}
	}
}
