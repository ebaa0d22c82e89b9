package uttt

// Type defines for the board
type PieceType int8
type PositionState uint8
type OutcomeStatus uint8

type SubBoard [3][3]PieceType
type MetaBoard [3][3]PositionState
type CellGrid [3][3]SubBoard

// Enum for the piece type
const (
	PieceNone PieceType = iota
	PieceCircle
	PieceCross
)

// Enum for the sub-board (meta board cell) state
const (
	PositionUnResolved PositionState = iota
	PositionDraw
	PositionCircleWon
	PositionCrossWon
)

const (
	InProgress OutcomeStatus = iota
	Won
	Drawn
)

// Terminal status of the whole game, Winner is PieceNone unless Status == Won
type Outcome struct {
	Status OutcomeStatus
	Winner PieceType
}

func (o Outcome) String() string {
	switch o.Status {
	case Won:
		return "won by " + o.Winner.String()
	case Drawn:
		return "drawn"
	default:
		return "in progress"
	}
}

// Opponent of this piece, PieceNone stays PieceNone
func (p PieceType) Opponent() PieceType {
	switch p {
	case PieceCross:
		return PieceCircle
	case PieceCircle:
		return PieceCross
	}
	return PieceNone
}

// Meta board state claimed by this piece
func (p PieceType) WonState() PositionState {
	switch p {
	case PieceCross:
		return PositionCrossWon
	case PieceCircle:
		return PositionCircleWon
	}
	return PositionUnResolved
}

func (p PieceType) Rune() rune {
	switch p {
	case PieceCross:
		return 'x'
	case PieceCircle:
		return 'o'
	}
	return '.'
}

func (p PieceType) String() string {
	return string(p.Rune())
}

// Create piece from a rune
func PieceFromRune(square rune) PieceType {
	switch square {
	case 'x', 'X':
		return PieceCross
	case 'o', 'O':
		return PieceCircle
	default:
		return PieceNone
	}
}

func (s PositionState) Rune() rune {
	switch s {
	case PositionCrossWon:
		return 'x'
	case PositionCircleWon:
		return 'o'
	case PositionDraw:
		return '='
	}
	return '.'
}

func (s PositionState) String() string {
	return string(s.Rune())
}

func positionStateFromRune(r rune) (PositionState, bool) {
	switch r {
	case '.':
		return PositionUnResolved, true
	case 'x':
		return PositionCrossWon, true
	case 'o':
		return PositionCircleWon, true
	case '=':
		return PositionDraw, true
	}
	return PositionUnResolved, false
}
