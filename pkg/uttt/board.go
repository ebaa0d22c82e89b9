package uttt

import (
	"github.com/pkg/errors"
)

var ErrIllegalMove = errors.New("illegal move")

// Board is the full game state. It is a plain value: every move produces a new
// Board and leaves the previous one untouched, so boards may be shared freely.
type Board struct {
	cells    CellGrid  // [outerRow][outerCol][innerRow][innerCol]
	meta     MetaBoard // resolved status of each sub-board
	toMove   PieceType
	lastMove Move
	turn     uint8 // number of pieces placed
	hash     uint64
	outcome  Outcome
}

// Create an empty board, cross moves first
func NewBoard() Board {
	b := Board{
		toMove:   PieceCross,
		lastMove: MoveNone,
	}
	b.hash = b.computeHash()
	return b
}

// Getters

func (b Board) Cell(outerRow, outerCol, innerRow, innerCol int) PieceType {
	return b.cells[outerRow][outerCol][innerRow][innerCol]
}

func (b Board) Meta(row, col int) PositionState {
	return b.meta[row][col]
}

func (b Board) SubBoard(row, col int) SubBoard {
	return b.cells[row][col]
}

func (b Board) MetaBoard() MetaBoard {
	return b.meta
}

func (b Board) Cells() CellGrid {
	return b.cells
}

// Mark of the player to move next
func (b Board) ToMove() PieceType {
	return b.toMove
}

// Mark of the player that made the last move (the one not to move)
func (b Board) OtherMark() PieceType {
	return b.toMove.Opponent()
}

// Last move played, false for the initial state
func (b Board) LastMove() (Move, bool) {
	return b.lastMove, b.lastMove != MoveNone
}

// Number of pieces placed so far
func (b Board) Turn() int {
	return int(b.turn)
}

// Apply puts the current side's piece on the move's cell and returns the resulting
// board, the receiver is not modified. The move is not validated, the cell must be empty
// (see MakeLegalMove for the checked variant).
func (b Board) Apply(m Move) Board {
	bi, si := m.BigIndex(), m.SmallIndex()
	or, oc := bi/3, bi%3
	mover := b.toMove

	b.cells[or][oc][si/3][si%3] = mover
	b.hash ^= pieceHash(bi, si, mover)

	// Only an unresolved sub-board can change its state, once decided it stays that way
	if b.meta[or][oc] == PositionUnResolved {
		if state := checkSubBoard(&b.cells[or][oc], mover); state != PositionUnResolved {
			b.meta[or][oc] = state
			b.outcome = metaOutcome(&b.meta)
		}
	}

	b.toMove = mover.Opponent()
	b.hash ^= _hashTurn
	b.lastMove = m
	b.turn++
	return b
}

// Check if given move is legal
func (b Board) IsLegal(m Move) bool {
	if !m.Valid() || b.IsGameOver() {
		return false
	}

	bi, si := m.BigIndex(), m.SmallIndex()
	if b.cells[bi/3][bi%3][si/3][si%3] != PieceNone ||
		b.meta[bi/3][bi%3] != PositionUnResolved {
		return false
	}

	// Target sub-board is forced, unless it's already decided
	if last, ok := b.LastMove(); ok {
		tr, tc := last.InnerRow(), last.InnerCol()
		if b.meta[tr][tc] == PositionUnResolved && bi != last.SmallIndex() {
			return false
		}
	}

	return true
}

// Verifies legality of given move, then if it's valid, applies it
func (b Board) MakeLegalMove(m Move) (Board, error) {
	if !b.IsLegal(m) {
		var ml MoveList
		b.GenerateMoves(&ml)
		return b, errors.WithMessagef(ErrIllegalMove, "move %s, possible moves=[%s]", m, ml.String())
	}
	return b.Apply(m), nil
}
