package mcts

import "time"

// Number of select/expand/rollout/backpropagate cycles run by every search
const Iterations = 1000

// Exploration parameter used in the UCT formula while descending the tree,
// the final choice is made with exploration 0
const ExplorationParam float64 = 2

// Maximum number of random plies played in a single rollout, a rollout
// stopped by this cap is scored as a draw
const RolloutPlyLimit = 100

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator function for random number generators in MCTS,
// by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}
