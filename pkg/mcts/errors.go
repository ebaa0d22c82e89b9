package mcts

import "github.com/pkg/errors"

var (
	// ChooseMove was given a finished game
	ErrGameOver = errors.New("game is already over")

	// The root is unfinished, yet there is no legal move to search
	ErrNoLegalMoves = errors.New("no legal moves in an unfinished game")

	// A rollout reached a position that is neither finished nor has any legal move
	ErrRolloutExhausted = errors.New("rollout ran out of legal moves")
)
