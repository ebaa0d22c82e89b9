package mcts

import (
	"math"
	"math/rand"

	"github.com/IlikeChooros/go-uttt/pkg/uttt"
)

// UCT value of 'child' as seen from 'parent':
//
//	sign*Q/N + c*sqrt(ln(parent.N/child.N))
//
// The sign is +1 when the mark that made the child's move is cross,
// -1 otherwise. Both nodes must have been visited.
func UCT(parent, child *Node, c float64) float64 {
	sign := -1.0
	if child.board.OtherMark() == uttt.PieceCross {
		sign = 1.0
	}

	visits := float64(child.Stats.N())
	exploitation := sign * float64(child.Stats.Q()) / visits
	exploration := c * math.Sqrt(math.Log(float64(parent.Stats.N())/visits))
	return exploitation + exploration
}

// Child of 'parent' with the highest UCT value, ties broken uniformly at random.
// Returns nilNode when the node has no children.
func (t *Tree) selectChild(parent *Node, c float64, r *rand.Rand) NodeID {
	best := nilNode
	bestValue := math.Inf(-1)
	ties := 0

	for _, id := range parent.children {
		value := UCT(parent, &t.nodes[id], c)
		switch {
		case value > bestValue:
			best, bestValue, ties = id, value, 1
		case value == bestValue:
			// Reservoir sampling over the tied children
			ties++
			if r.Intn(ties) == 0 {
				best = id
			}
		}
	}

	return best
}

// Add the rollout result to every node from 'id' up to the root
func (t *Tree) backpropagate(id NodeID, result Result) {
	for id != nilNode {
		node := &t.nodes[id]
		node.Stats.Add(result)
		id = node.parent
	}
}
