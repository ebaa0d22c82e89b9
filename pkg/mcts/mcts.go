package mcts

import (
	"fmt"
	"math/rand"

	"github.com/IlikeChooros/go-uttt/pkg/uttt"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type TreeStats struct {
	maxdepth int
	cycles   int
	cps      uint32
}

// Monte Carlo Tree Search player. Every ChooseMove call builds a fresh tree,
// so nothing is carried over between moves. Not safe for concurrent use,
// but separate engines may search in parallel.
type MCTS struct {
	TreeStats
	listener *StatsListener
	logger   zerolog.Logger
	rand     *rand.Rand
	timer    *_Timer
	ml       uttt.MoveList
}

func NewMCTS() *MCTS {
	return &MCTS{
		listener: &StatsListener{nCycles: 1},
		logger:   zerolog.Nop(),
		rand:     rand.New(rand.NewSource(SeedGeneratorFn())),
		timer:    _NewTimer(),
	}
}

// Set the logger used for search diagnostics, silent by default
func (mcts *MCTS) SetLogger(logger zerolog.Logger) {
	mcts.logger = logger
}

func (mcts *MCTS) ResetListener() {
	mcts.listener.OnCycle(nil).OnDepth(nil).OnStop(nil)
}

func (mcts *MCTS) StatsListener() *StatsListener {
	return mcts.listener
}

func (mcts *MCTS) SetListener(listener StatsListener) {
	*mcts.listener = listener
}

// Maximum depth reached during the last search
func (mcts *MCTS) MaxDepth() int {
	return mcts.maxdepth
}

// Total number of cycles ran during the last search
func (mcts *MCTS) Cycles() int {
	return mcts.cycles
}

// Get cycles per second statistic
func (mcts *MCTS) Cps() uint32 {
	return mcts.cps
}

// Search the position and return the board after the chosen move.
// Fails with ErrGameOver on a finished game.
func (mcts *MCTS) ChooseMove(board uttt.Board) (uttt.Board, error) {
	if board.IsGameOver() {
		return board, errors.WithMessagef(ErrGameOver, "position %s (%v)", board.Notation(), board.Outcome())
	}

	if len(board.LegalMoves()) == 0 {
		return board, errors.WithMessagef(ErrNoLegalMoves, "position %s", board.Notation())
	}

	tree, best := mcts.search(board)
	return tree.Node(best).Board(), nil
}

func (mcts *MCTS) String() string {
	return fmt.Sprintf("MCTS={Stats:{maxdepth=%d, cps=%d, cycles=%d}}",
		mcts.MaxDepth(), mcts.Cps(), mcts.Cycles())
}
