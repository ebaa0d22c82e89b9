package mcts

import (
	"fmt"

	"github.com/IlikeChooros/go-uttt/pkg/uttt"
)

// Reset the counters before a new search
func (mcts *MCTS) setupSearch() {
	mcts.timer.Reset()
	mcts.cps = 0
	mcts.cycles = 0
	mcts.maxdepth = 0
}

// Actual search function implementation, builds a fresh tree from 'board' and
// runs 'Iterations' cycles of:
//
// 1. selection - to choose the most promising node, expanding it if needed
//
// 2. rollout - to play random moves from that node's position
//
// 3. backpropagate - to add the result to every node up to the root
//
// Returns the tree and the chosen root child (exploration 0, random tie-break).
func (mcts *MCTS) search(board uttt.Board) (*Tree, NodeID) {
	mcts.setupSearch()
	tree := newTree(board)

	for mcts.cycles < Iterations {
		id := mcts.selection(tree)
		tree.backpropagate(id, mcts.rollout(tree.Node(id).board))

		// Increment cycle count and store the cps
		mcts.cycles++
		mcts.cps = uint32(mcts.cycles * 1000 / mcts.timer.Deltatime())

		if depth := tree.MaxDepth(); depth > mcts.maxdepth {
			mcts.maxdepth = depth
			mcts.listener.invokeDepth(mcts, tree, nilNode)
		}
		mcts.listener.invokeCycle(mcts, tree)
	}

	best := tree.selectChild(tree.Root(), 0, mcts.rand)
	mcts.listener.invokeStop(mcts, tree, best)

	chosen := tree.Node(best)
	mcts.logger.Debug().
		Int("cycles", mcts.cycles).
		Int("size", tree.Size()).
		Int("maxdepth", mcts.maxdepth).
		Int("ms", mcts.timer.Deltatime()).
		Uint32("cps", mcts.cps).
		Stringer("move", chosen.move).
		Float64("eval", float64(chosen.Stats.AvgQ())).
		Msg("search finished")

	return tree, best
}

// Descend from the root by UCT until reaching a terminal node, or a node that
// is not fully expanded, in which case it's expanded and the new child returned
func (mcts *MCTS) selection(tree *Tree) NodeID {
	id := NodeID(0)
	for {
		node := tree.Node(id)
		if node.Terminal() {
			return id
		}
		if !node.Expanded() {
			return mcts.expand(tree, id)
		}
		id = tree.selectChild(node, ExplorationParam, mcts.rand)
	}
}

// Add the first legal move (in generation order) without a child yet,
// marks the node as fully expanded once every legal move has a child
func (mcts *MCTS) expand(tree *Tree, id NodeID) NodeID {
	board := tree.Node(id).board
	board.GenerateMoves(&mcts.ml)

	for _, move := range mcts.ml.Slice() {
		next := board.Apply(move)
		if tree.Node(id).hasChild(next.Key()) {
			continue
		}

		childID := tree.addChild(id, move, next)
		if node := tree.Node(id); node.ChildCount() == mcts.ml.Size() {
			node.FinishExpanding()
		}
		return childID
	}

	panic(fmt.Sprintf("[MCTS] expand: node %d (%s) is not fully expanded, but every legal move (%v) has a child",
		id, board.Notation(), mcts.ml.String()))
}

// Score a random playout from 'board', an exhausted playout counts as a draw
func (mcts *MCTS) rollout(board uttt.Board) Result {
	result, err := mcts.playout(board, RolloutPlyLimit)
	if err != nil {
		mcts.logger.Debug().Err(err).Str("position", board.Notation()).Msg("rollout scored as a draw")
		return ResultDraw
	}
	return result
}

// Play uniformly random legal moves until the game is over or 'limit' plies
// were played. Fails with ErrRolloutExhausted if an unfinished position has no moves.
func (mcts *MCTS) playout(board uttt.Board, limit int) (Result, error) {
	for ply := 0; ply < limit && !board.IsGameOver(); ply++ {
		board.GenerateMoves(&mcts.ml)
		if mcts.ml.Size() == 0 {
			return ResultDraw, ErrRolloutExhausted
		}
		board = board.Apply(mcts.ml.At(mcts.rand.Intn(mcts.ml.Size())))
	}
	return resultOf(board), nil
}

// Result of the position, unfinished games count as a draw
func resultOf(board uttt.Board) Result {
	outcome := board.Outcome()
	if outcome.Status != uttt.Won {
		return ResultDraw
	}
	if outcome.Winner == uttt.PieceCircle {
		return ResultCircleWin
	}
	return ResultCrossWin
}
