package uttt

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Play random legal moves from the empty board, calling 'visit' before every move
func randomGame(r *rand.Rand, visit func(b Board, moves []Move)) Board {
	b := NewBoard()
	for !b.IsGameOver() {
		moves := b.LegalMoves()
		if visit != nil {
			visit(b, moves)
		}
		b = b.Apply(moves[r.Intn(len(moves))])
	}
	if visit != nil {
		visit(b, b.LegalMoves())
	}
	return b
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	assert.Equal(t, PieceCross, b.ToMove())
	assert.Equal(t, PieceCircle, b.OtherMark())
	assert.False(t, b.IsGameOver())
	assert.Equal(t, Outcome{Status: InProgress}, b.Outcome())

	_, ok := b.LastMove()
	assert.False(t, ok, "initial board has no last move")
	assert.Len(t, b.LegalMoves(), 81)
}

func TestLegalMovesOrder(t *testing.T) {
	moves := NewBoard().LegalMoves()
	require.Len(t, moves, 81)

	// Row-major over (outer row, outer col, inner row, inner col)
	i := 0
	for or := 0; or < 3; or++ {
		for oc := 0; oc < 3; oc++ {
			for ir := 0; ir < 3; ir++ {
				for ic := 0; ic < 3; ic++ {
					assert.Equal(t, NewMove(or, oc, ir, ic), moves[i], "index %d", i)
					i++
				}
			}
		}
	}
}

func TestFirstMoveScenario(t *testing.T) {
	b := NewBoard().Apply(NewMove(0, 0, 0, 0))

	last, ok := b.LastMove()
	require.True(t, ok)
	assert.Equal(t, NewMove(0, 0, 0, 0), last)
	assert.Equal(t, PieceCross, b.Cell(0, 0, 0, 0))
	assert.Equal(t, PieceCircle, b.ToMove())
	assert.Equal(t, PositionUnResolved, b.Meta(0, 0))

	moves := b.LegalMoves()
	require.Len(t, moves, 8)
	for _, m := range moves {
		assert.Equal(t, 0, m.OuterRow())
		assert.Equal(t, 0, m.OuterCol())
		assert.NotEqual(t, NewMove(0, 0, 0, 0), m)
	}
}

func TestDecidedTargetScenario(t *testing.T) {
	// Cross won sub-board (1,1) with its top row, circle's last move points there
	b, err := FromNotation("9/9/9/o8/xxx6/9/4o4/9/o8 - x 3,1,2,2")
	require.NoError(t, err)
	require.Equal(t, PositionCrossWon, b.Meta(1, 1))

	moves := b.LegalMoves()

	expected := 0
	for bi := 0; bi < 9; bi++ {
		if b.Meta(bi/3, bi%3) != PositionUnResolved {
			continue
		}
		for si := 0; si < 9; si++ {
			if b.Cell(bi/3, bi%3, si/3, si%3) == PieceNone {
				expected++
			}
		}
	}

	assert.Len(t, moves, expected)
	assert.Equal(t, 8*9-3, expected)
	for _, m := range moves {
		assert.NotEqual(t, 4, m.BigIndex(), "decided sub-board must not be offered")
		assert.Equal(t, PieceNone, b.Cell(m.OuterRow(), m.OuterCol(), m.InnerRow(), m.InnerCol()))
	}
}

func TestSubBoardWinAndDraw(t *testing.T) {
	b := NewBoard()
	// Circle keeps getting sent back to (0,0)
	seq := []Move{
		NewMove(0, 0, 0, 0), NewMove(0, 0, 1, 1),
		NewMove(1, 1, 0, 0), NewMove(0, 0, 2, 2),
		NewMove(2, 2, 0, 0), NewMove(0, 0, 0, 1),
		NewMove(0, 1, 0, 0), NewMove(0, 0, 0, 2),
	}
	for _, m := range seq {
		require.True(t, b.IsLegal(m), "move %s should be legal", m)
		b = b.Apply(m)
	}

	// No line in (0,0) yet
	assert.Equal(t, PositionUnResolved, b.Meta(0, 0))

	b, err := FromNotation("xx7/9/9/9/9/9/9/9/9 - x -")
	require.NoError(t, err)
	won := b.Apply(NewMove(0, 0, 0, 2))
	assert.Equal(t, PositionCrossWon, won.Meta(0, 0))

	// A full sub-board without a line is drawn
	b, err = FromNotation("xoxxox1xo/9/9/9/9/9/9/9/9 - o -")
	require.NoError(t, err)
	drawn := b.Apply(NewMove(0, 0, 2, 0))
	assert.Equal(t, PositionDraw, drawn.Meta(0, 0))
}

func TestApplyDoesNotMutate(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	randomGame(r, func(b Board, moves []Move) {
		if len(moves) == 0 {
			return
		}
		before := b
		cells, meta, toMove := b.Cells(), b.MetaBoard(), b.ToMove()

		_ = b.Apply(moves[r.Intn(len(moves))])

		if diff := cmp.Diff(cells, b.Cells()); diff != "" {
			t.Fatalf("cells changed by Apply (-before +after):\n%s", diff)
		}
		if diff := cmp.Diff(meta, b.MetaBoard()); diff != "" {
			t.Fatalf("meta changed by Apply (-before +after):\n%s", diff)
		}
		require.Equal(t, toMove, b.ToMove())
		require.Equal(t, before.Notation(), b.Notation())
	})
}

func TestLegalMovesProperties(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for game := 0; game < 200; game++ {
		randomGame(r, func(b Board, moves []Move) {
			require.Equal(t, b.IsGameOver(), len(moves) == 0,
				"moves empty iff game over, position %s", b.Notation())
			for _, m := range moves {
				require.Equal(t, PieceNone, b.Cell(m.OuterRow(), m.OuterCol(), m.InnerRow(), m.InnerCol()))
				require.True(t, b.IsLegal(m))
			}
		})
	}
}

func TestMetaNeverChangesOnceDecided(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for game := 0; game < 200; game++ {
		var decided MetaBoard
		randomGame(r, func(b Board, _ []Move) {
			meta := b.MetaBoard()
			for i := range meta {
				for j := range meta[i] {
					if decided[i][j] != PositionUnResolved {
						require.Equal(t, decided[i][j], meta[i][j], "meta (%d,%d) changed", i, j)
					}
				}
			}
			decided = meta
		})
	}
}

func TestTurnAlternates(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	prev := PieceNone
	randomGame(r, func(b Board, _ []Move) {
		require.NotEqual(t, prev, b.ToMove())
		require.Contains(t, []PieceType{PieceCross, PieceCircle}, b.ToMove())
		prev = b.ToMove()
	})
}

func TestWinDrawExclusive(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	for game := 0; game < 200; game++ {
		final := randomGame(r, nil)

		meta := final.MetaBoard()
		grid := (*[3][3]PositionState)(&meta)
		win := IsWin(grid, PositionCrossWon) || IsWin(grid, PositionCircleWon)
		draw := IsDraw(grid, PositionUnResolved, PositionCrossWon, PositionCircleWon)
		require.False(t, win && draw, "meta board both won and drawn: %s", final.Notation())

		for i := range meta {
			for j := range meta[i] {
				if meta[i][j] == PositionUnResolved {
					continue
				}
				sb := final.SubBoard(i, j)
				g := (*[3][3]PieceType)(&sb)
				sbWin := IsWin(g, PieceCross) || IsWin(g, PieceCircle)
				sbDraw := IsDraw(g, PieceNone, PieceCross, PieceCircle)
				require.False(t, sbWin && sbDraw)

				switch meta[i][j] {
				case PositionDraw:
					require.True(t, sbDraw)
				case PositionCrossWon:
					require.True(t, IsWin(g, PieceCross))
				case PositionCircleWon:
					require.True(t, IsWin(g, PieceCircle))
				}
			}
		}

		switch final.Outcome().Status {
		case Won:
			assert.True(t, win)
		case Drawn:
			assert.True(t, draw)
		default:
			t.Fatalf("game ended in progress: %s", final.Notation())
		}
	}
}

func TestIsWinPatterns(t *testing.T) {
	lines := [][3][2]int{
		{{0, 0}, {0, 1}, {0, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {2, 0}},
	}
	for _, line := range lines {
		var grid [3][3]PieceType
		for _, c := range line {
			grid[c[0]][c[1]] = PieceCircle
		}
		assert.True(t, IsWin(&grid, PieceCircle), "line %v", line)
		assert.False(t, IsWin(&grid, PieceCross), "line %v", line)
		assert.False(t, IsDraw(&grid, PieceNone, PieceCross, PieceCircle))
	}

	full := [3][3]PieceType{
		{PieceCross, PieceCircle, PieceCross},
		{PieceCross, PieceCircle, PieceCross},
		{PieceCircle, PieceCross, PieceCircle},
	}
	assert.True(t, IsDraw(&full, PieceNone, PieceCross, PieceCircle))
}

func TestMakeLegalMove(t *testing.T) {
	b := NewBoard().Apply(NewMove(1, 1, 0, 2))

	_, err := b.MakeLegalMove(NewMove(1, 1, 1, 1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIllegalMove))

	next, err := b.MakeLegalMove(NewMove(0, 2, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, PieceCircle, next.Cell(0, 2, 1, 1))

	_, err = b.MakeLegalMove(MoveNone)
	assert.True(t, errors.Is(err, ErrIllegalMove))
}

func TestKeyMatchesRecomputed(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	seen := make(map[uint64]string)
	randomGame(r, func(b Board, _ []Move) {
		require.Equal(t, b.computeHash(), b.Key())
		if prev, ok := seen[b.Key()]; ok {
			require.Equal(t, prev, b.Notation())
		}
		seen[b.Key()] = b.Notation()
	})

	// Same cells, different side to move
	x, err := FromNotation("x8/9/9/9/9/9/9/9/9 - x -")
	require.NoError(t, err)
	o, err := FromNotation("x8/9/9/9/9/9/9/9/9 - o -")
	require.NoError(t, err)
	assert.NotEqual(t, x.Key(), o.Key())
}
