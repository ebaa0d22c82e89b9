package uttt

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	StartingPosition string = "9/9/9/9/9/9/9/9/9 - x -"
)

var ErrInvalidNotation = errors.New("invalid notation")

// Notation is a string form of the board, much like the FEN of a chessboard:
//
//	<sb0>/<sb1>/.../<sb8> <meta> <turn> <last move>
//
// Each <sbN> is one sub-board (N = outerRow*3 + outerCol) written row-major,
// 'x' and 'o' for pieces and digits for runs of empty cells. For example
//
//	o | x | x
//	x | o |
//	o |   |
//
// is written as "oxxxo1o2".
//
// <meta> is nine characters, one per sub-board: '.' unresolved, 'x' or 'o' won,
// '=' drawn. A single '-' means "derive from the cells".
//
// <turn> is 'x' or 'o', <last move> is '-' or a move in "row,col,row,col" form.
//
// Examples:
//
//   - 9/9/9/9/9/9/9/9/9 - x -
//   - xxx6/9/9/9/4o4/9/9/9/o8 x........ o 1,1,1,3
func (b Board) Notation() string {
	builder := strings.Builder{}

	for bi := 0; bi < 9; bi++ {
		if bi > 0 {
			builder.WriteByte('/')
		}

		sb := &b.cells[bi/3][bi%3]
		counter := 0
		for si := 0; si < 9; si++ {
			piece := sb[si/3][si%3]
			if piece == PieceNone {
				counter++
				continue
			}
			if counter > 0 {
				builder.WriteString(strconv.Itoa(counter))
				counter = 0
			}
			builder.WriteRune(piece.Rune())
		}

		if counter > 0 {
			builder.WriteString(strconv.Itoa(counter))
		}
	}

	builder.WriteByte(' ')
	for bi := 0; bi < 9; bi++ {
		builder.WriteRune(b.meta[bi/3][bi%3].Rune())
	}

	builder.WriteByte(' ')
	builder.WriteRune(b.toMove.Rune())

	builder.WriteByte(' ')
	if last, ok := b.LastMove(); ok {
		builder.WriteString(last.String())
	} else {
		builder.WriteByte('-')
	}

	return builder.String()
}

// Parse given notation into a new board
func FromNotation(notation string) (Board, error) {
	var b Board
	err := b.FromNotation(notation)
	return b, err
}

// Set the board from given notation, on error the board is left unchanged
func (b *Board) FromNotation(notation string) error {
	fields := strings.Fields(notation)
	if len(fields) != 4 {
		return errors.WithMessagef(ErrInvalidNotation, "%q: expected 4 fields, got %d", notation, len(fields))
	}

	nb := Board{lastMove: MoveNone}

	// Sub-boards
	subBoards := strings.Split(fields[0], "/")
	if len(subBoards) != 9 {
		return errors.WithMessagef(ErrInvalidNotation, "%q: expected 9 sub-boards, got %d", notation, len(subBoards))
	}

	for bi, str := range subBoards {
		si := 0
		for _, r := range str {
			switch {
			case r >= '1' && r <= '9':
				si += int(r - '0')
			case r == 'x' || r == 'o':
				if si < 9 {
					nb.cells[bi/3][bi%3][si/3][si%3] = PieceFromRune(r)
					nb.turn++
				}
				si++
			default:
				return errors.WithMessagef(ErrInvalidNotation, "%q: unexpected character %q in sub-board %d", notation, r, bi)
			}
		}
		if si != 9 {
			return errors.WithMessagef(ErrInvalidNotation, "%q: sub-board %d describes %d cells", notation, bi, si)
		}
	}

	// Meta board
	switch meta := fields[1]; {
	case meta == "-":
		for bi := 0; bi < 9; bi++ {
			nb.meta[bi/3][bi%3] = deriveSubBoardState(&nb.cells[bi/3][bi%3])
		}
	case len(meta) == 9:
		for bi, r := range meta {
			state, ok := positionStateFromRune(r)
			if !ok {
				return errors.WithMessagef(ErrInvalidNotation, "%q: unexpected meta character %q", notation, r)
			}
			nb.meta[bi/3][bi%3] = state
		}
	default:
		return errors.WithMessagef(ErrInvalidNotation, "%q: meta board must be 9 characters or '-'", notation)
	}

	// Turn
	switch fields[2] {
	case "x":
		nb.toMove = PieceCross
	case "o":
		nb.toMove = PieceCircle
	default:
		return errors.WithMessagef(ErrInvalidNotation, "%q: turn must be 'x' or 'o'", notation)
	}

	// Last move
	if fields[3] != "-" {
		m, err := ParseMove(fields[3])
		if err != nil {
			return errors.WithMessagef(ErrInvalidNotation, "%q: last move: %v", notation, err)
		}
		nb.lastMove = m
	}

	nb.hash = nb.computeHash()
	nb.outcome = metaOutcome(&nb.meta)
	*b = nb
	return nil
}
