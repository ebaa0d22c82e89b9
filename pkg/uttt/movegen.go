package uttt

// Append every empty cell of the sub-board at 'bigIndex'
func (b *Board) appendEmpty(ml *MoveList, bigIndex int) {
	sb := &b.cells[bigIndex/3][bigIndex%3]
	for si := 0; si < 9; si++ {
		if sb[si/3][si%3] == PieceNone {
			ml.Append(bigIndex, si)
		}
	}
}

// Generate all legal moves into given list (cleared first), in row-major order
// of (outer row, outer col, inner row, inner col). Finished games have no moves.
func (b *Board) GenerateMoves(ml *MoveList) {
	ml.Clear()
	if b.IsGameOver() {
		return
	}

	// First move of the game, every cell is available
	if b.lastMove == MoveNone {
		for bi := 0; bi < 9; bi++ {
			b.appendEmpty(ml, bi)
		}
		return
	}

	// The inner cell of the last move selects the target sub-board
	target := b.lastMove.SmallIndex()
	if b.meta[target/3][target%3] == PositionUnResolved {
		b.appendEmpty(ml, target)
		return
	}

	// Target is decided, play anywhere still open
	for bi := 0; bi < 9; bi++ {
		if b.meta[bi/3][bi%3] == PositionUnResolved {
			b.appendEmpty(ml, bi)
		}
	}
}

// Legal moves of this position, empty iff the game is over
func (b Board) LegalMoves() []Move {
	var ml MoveList
	b.GenerateMoves(&ml)
	moves := make([]Move, ml.Size())
	copy(moves, ml.Slice())
	return moves
}
