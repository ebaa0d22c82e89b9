package mcts

// Visit count and accumulated rollout results of a node
type NodeStats struct {
	q Result
	n int32
}

// Number of visits to this node
func (stats *NodeStats) N() int32 {
	return stats.n
}

// Cumulated rollout results for this node
func (stats *NodeStats) Q() Result {
	return stats.q
}

// Average outcome for this node, NaN if never visited
func (stats *NodeStats) AvgQ() Result {
	return stats.q / Result(stats.n)
}

// Count one more visit with given rollout result
func (stats *NodeStats) Add(result Result) {
	stats.n++
	stats.q += result
}
