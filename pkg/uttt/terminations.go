package uttt

// horizontal, vertical and diagonal lines as (row, col) pairs
var _patterns = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}}, {{1, 0}, {1, 1}, {1, 2}}, {{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}}, {{0, 1}, {1, 1}, {2, 1}}, {{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}}, {{0, 2}, {1, 1}, {2, 0}},
}

// IsWin reports whether any row, column or diagonal of the grid is filled with 'mark'.
// Works both for the sub-boards (PieceType) and the meta board (PositionState).
func IsWin[T comparable](grid *[3][3]T, mark T) bool {
	for i := 0; i < 8; i++ {
		p := &_patterns[i]
		if grid[p[0][0]][p[0][1]] == mark &&
			grid[p[1][0]][p[1][1]] == mark &&
			grid[p[2][0]][p[2][1]] == mark {
			return true
		}
	}
	return false
}

// Check if given grid has no 'empty' cell left
func isFilled[T comparable](grid *[3][3]T, empty T) bool {
	for r := range grid {
		for c := range grid[r] {
			if grid[r][c] == empty {
				return false
			}
		}
	}
	return true
}

// IsDraw reports whether the grid has no 'empty' cell and none of the 'marks' won it
func IsDraw[T comparable](grid *[3][3]T, empty T, marks ...T) bool {
	if !isFilled(grid, empty) {
		return false
	}
	for _, m := range marks {
		if IsWin(grid, m) {
			return false
		}
	}
	return true
}

// Resolve a sub-board after 'mover' placed a piece on it
func checkSubBoard(sb *SubBoard, mover PieceType) PositionState {
	if IsWin((*[3][3]PieceType)(sb), mover) {
		return mover.WonState()
	}
	if isFilled((*[3][3]PieceType)(sb), PieceNone) {
		return PositionDraw
	}
	return PositionUnResolved
}

// Derive the state of a sub-board from its cells only, used when
// loading a position without an explicit meta board
func deriveSubBoardState(sb *SubBoard) PositionState {
	grid := (*[3][3]PieceType)(sb)
	switch {
	case IsWin(grid, PieceCross):
		return PositionCrossWon
	case IsWin(grid, PieceCircle):
		return PositionCircleWon
	case isFilled(grid, PieceNone):
		return PositionDraw
	}
	return PositionUnResolved
}

// Terminal status of the meta board
func metaOutcome(meta *MetaBoard) Outcome {
	grid := (*[3][3]PositionState)(meta)
	if IsWin(grid, PositionCrossWon) {
		return Outcome{Status: Won, Winner: PieceCross}
	}
	if IsWin(grid, PositionCircleWon) {
		return Outcome{Status: Won, Winner: PieceCircle}
	}
	if isFilled(grid, PositionUnResolved) {
		return Outcome{Status: Drawn}
	}
	return Outcome{Status: InProgress}
}

// Get the terminal status of the game
func (b Board) Outcome() Outcome {
	return b.outcome
}

// Whether the whole game is finished (won or drawn on the meta board)
func (b Board) IsGameOver() bool {
	return b.outcome.Status != InProgress
}

// Winner of the game, PieceNone while in progress or drawn
func (b Board) Winner() PieceType {
	return b.outcome.Winner
}
