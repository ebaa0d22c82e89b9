package mcts

import (
	"fmt"

	"github.com/IlikeChooros/go-uttt/pkg/uttt"
)

// Search tree, every node lives in a single arena slice and refers to
// other nodes by NodeID. The tree is dropped as a whole after the search.
type Tree struct {
	nodes    []Node
	maxdepth int32
}

func newTree(root uttt.Board) *Tree {
	t := &Tree{nodes: make([]Node, 0, Iterations+1)}
	t.nodes = append(t.nodes, newNode(0, nilNode, 0, uttt.MoveNone, root))
	return t
}

func (t *Tree) Root() *Node {
	return &t.nodes[0]
}

// Get the node by id, panics on an unknown id
func (t *Tree) Node(id NodeID) *Node {
	return &t.nodes[id]
}

// Parent of given node, nil for the root
func (t *Tree) Parent(node *Node) *Node {
	if node.parent == nilNode {
		return nil
	}
	return &t.nodes[node.parent]
}

// Children of given node, in the order they were added
func (t *Tree) Children(node *Node) []NodeID {
	return node.children
}

// Child of given node with given board fingerprint
func (t *Tree) Child(node *Node, key uint64) (*Node, bool) {
	id, ok := node.keys[key]
	if !ok {
		return nil, false
	}
	return &t.nodes[id], true
}

// Number of nodes, including the root
func (t *Tree) Size() int {
	return len(t.nodes)
}

// Depth of the deepest node
func (t *Tree) MaxDepth() int {
	return int(t.maxdepth)
}

// Add a new child under 'parent' for the position after 'move'.
// Pointers to nodes are invalidated, use the returned id.
func (t *Tree) addChild(parent NodeID, move uttt.Move, board uttt.Board) NodeID {
	p := &t.nodes[parent]
	key := board.Key()
	if p.hasChild(key) {
		panic(fmt.Sprintf("[MCTS] addChild: node %d already has a child with key %x (move %v)", parent, key, move))
	}

	id := NodeID(len(t.nodes))
	depth := p.depth + 1
	if p.keys == nil {
		p.keys = make(map[uint64]NodeID)
	}
	p.keys[key] = id
	p.children = append(p.children, id)

	t.nodes = append(t.nodes, newNode(id, parent, depth, move, board))
	t.maxdepth = max(t.maxdepth, depth)
	return id
}

// Child of 'parent' with the most visits, first one wins ties.
// Returns nil if there are no children.
func (t *Tree) MostVisited(parent *Node) *Node {
	var best *Node
	for _, id := range parent.children {
		child := &t.nodes[id]
		if best == nil || child.Stats.N() > best.Stats.N() {
			best = child
		}
	}
	return best
}

// Principal variation from the root, following the most visited children
func (t *Tree) Pv() []uttt.Move {
	pv := make([]uttt.Move, 0, t.maxdepth)
	node := t.Root()
	for {
		node = t.MostVisited(node)
		if node == nil {
			return pv
		}
		pv = append(pv, node.move)
	}
}
