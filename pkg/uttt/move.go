package uttt

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Move is packed into a single byte: big (outer) index in the high nibble,
// small (inner) index in the low one. Both indexes are row-major 0..8.
type Move uint8

const (
	_moveBigIndexMask   = 0b11110000
	_moveSmallIndexMask = 0b1111
)

const MoveNone Move = 255

var ErrInvalidMove = errors.New("invalid move")

// Create a move from outer (row, col) and inner (row, col) coordinates, each in 0..2
func NewMove(outerRow, outerCol, innerRow, innerCol int) Move {
	return makeMove(outerRow*3+outerCol, innerRow*3+innerCol)
}

func makeMove(bigIndex, smallIndex int) Move {
	return Move((smallIndex & _moveSmallIndexMask) | ((bigIndex << 4) & _moveBigIndexMask))
}

// Get the big index of a move
func (m Move) BigIndex() int {
	return int((m & _moveBigIndexMask) >> 4)
}

// Get the small index of tic tac toe board
func (m Move) SmallIndex() int {
	return int(m & _moveSmallIndexMask)
}

func (m Move) OuterRow() int { return m.BigIndex() / 3 }
func (m Move) OuterCol() int { return m.BigIndex() % 3 }
func (m Move) InnerRow() int { return m.SmallIndex() / 3 }
func (m Move) InnerCol() int { return m.SmallIndex() % 3 }

// Whether both indexes are on the board
func (m Move) Valid() bool {
	return m != MoveNone && m.BigIndex() < 9 && m.SmallIndex() < 9
}

// String representation uses 1-based "row,col,row,col" coordinates,
// outer sub-board first, for example "1,2,2,3"
func (m Move) String() string {
	if !m.Valid() {
		return "(none)"
	}

	builder := strings.Builder{}
	for i, v := range [4]int{m.OuterRow(), m.OuterCol(), m.InnerRow(), m.InnerCol()} {
		if i > 0 {
			builder.WriteByte(',')
		}
		builder.WriteByte('1' + byte(v))
	}
	return builder.String()
}

// Parse a move written as 1-based "row,col,row,col"
func ParseMove(str string) (Move, error) {
	parts := strings.Split(strings.TrimSpace(str), ",")
	if len(parts) != 4 {
		return MoveNone, errors.WithMessagef(ErrInvalidMove, "%q: expected 4 comma separated coordinates", str)
	}

	var coords [4]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return MoveNone, errors.WithMessagef(ErrInvalidMove, "%q: %v", str, err)
		}
		if v < 1 || v > 3 {
			return MoveNone, errors.WithMessagef(ErrInvalidMove, "%q: coordinate %d out of range 1..3", str, v)
		}
		coords[i] = v - 1
	}

	return NewMove(coords[0], coords[1], coords[2], coords[3]), nil
}

// Fixed capacity list of moves, no position has more than 81 legal moves
type MoveList struct {
	moves [9 * 9]Move
	size  uint8
}

// Make a new move list struct
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Reset the movelist, simply sets the size to 0
func (ml *MoveList) Clear() {
	ml.size = 0
}

// Get the actual slice of valid moves
func (ml *MoveList) Slice() []Move {
	return ml.moves[0:ml.size]
}

func (ml *MoveList) Size() int {
	return int(ml.size)
}

func (ml *MoveList) At(i int) Move {
	return ml.moves[i]
}

// Appends a new move to the list of moves
func (ml *MoveList) Append(bigIndex, smallIndex int) {
	ml.moves[ml.size] = makeMove(bigIndex, smallIndex)
	ml.size++
}

// Convert movelist into a string, space separated
func (ml *MoveList) String() string {
	if ml.size == 0 {
		return "empty"
	}

	strMoves := make([]string, ml.size)
	for i, m := range ml.Slice() {
		strMoves[i] = m.String()
	}
	return strings.Join(strMoves, " ")
}
