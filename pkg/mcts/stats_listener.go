package mcts

import "github.com/IlikeChooros/go-uttt/pkg/uttt"

type ListenerTreeStats struct {
	Maxdepth int
	Cycles   int
	TimeMs   int
	Cps      uint32
	Size     int
	BestMove uttt.Move   // chosen move on stop, most visited root child otherwise
	Eval     float64     // average result of BestMove, positive favours circle
	Pv       []uttt.Move // most visited line from the root

	// Tree being searched, valid only during the callback
	Tree *Tree
}

// Convert the search state to 'ListenerTreeStats' struct,
// 'best' is the chosen root child or nilNode if not known yet
func toListenerStats(mcts *MCTS, tree *Tree, best NodeID) ListenerTreeStats {
	stats := ListenerTreeStats{
		Maxdepth: mcts.MaxDepth(),
		Cycles:   mcts.Cycles(),
		TimeMs:   mcts.timer.Deltatime(),
		Cps:      mcts.Cps(),
		Size:     tree.Size(),
		BestMove: uttt.MoveNone,
		Pv:       tree.Pv(),
		Tree:     tree,
	}

	var node *Node
	if best != nilNode {
		node = tree.Node(best)
	} else {
		node = tree.MostVisited(tree.Root())
	}

	if node != nil {
		stats.BestMove = node.Move()
		stats.Eval = float64(node.Stats.AvgQ())
	}
	return stats
}

// Listener function callback, will receive current tree statistics, like
// max depth of tree, number of iterations so far
type ListenerFunc func(ListenerTreeStats)

type StatsListener struct {
	// called when 'max depth' increases
	onDepth ListenerFunc

	// called every N full iterations
	onCycle ListenerFunc
	nCycles int // call 'onCycle' every N cycles

	// called once when the search ends
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{nCycles: 1}
}

// Attach new on max depth change callback
func (listener *StatsListener) OnDepth(onDepth ListenerFunc) *StatsListener {
	listener.onDepth = onDepth
	return listener
}

// Attach new on iteration increase callback, computes the principal
// variation on every call, so use a large cycle interval
func (listener *StatsListener) OnCycle(onCycle ListenerFunc) *StatsListener {
	listener.onCycle = onCycle
	return listener
}

func (listener *StatsListener) SetCycleInterval(n int) *StatsListener {
	if n < 1 {
		n = 1
	}
	listener.nCycles = n
	return listener
}

// Attach 'on search end' callback
func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener) invokeDepth(mcts *MCTS, tree *Tree, best NodeID) {
	if listener.onDepth != nil {
		listener.onDepth(toListenerStats(mcts, tree, best))
	}
}

func (listener *StatsListener) invokeCycle(mcts *MCTS, tree *Tree) {
	if listener.onCycle != nil && mcts.Cycles()%max(listener.nCycles, 1) == 0 {
		listener.onCycle(toListenerStats(mcts, tree, nilNode))
	}
}

func (listener *StatsListener) invokeStop(mcts *MCTS, tree *Tree, best NodeID) {
	if listener.onStop != nil {
		listener.onStop(toListenerStats(mcts, tree, best))
	}
}
