package mcts

// Other types, which didn't fit to MCTS or Node files

// Result of the rollout, signed from circle's point of view:
// +1 circle won, -1 cross won, 0 draw or unfinished
type Result float64

const (
	ResultCrossWin  Result = -1
	ResultDraw      Result = 0
	ResultCircleWin Result = 1
)

// Index of a node in the tree's arena
type NodeID int32

// No node, parent of the root
const nilNode NodeID = -1

type SeedGeneratorFnType func() int64
