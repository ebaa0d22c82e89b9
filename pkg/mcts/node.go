package mcts

import (
	"fmt"

	"github.com/IlikeChooros/go-uttt/pkg/uttt"
)

const (
	ExpandedMask uint32 = 2
	TerminalMask uint32 = 4
)

// Single position in the search tree. Nodes are owned by the Tree's arena,
// the parent is referenced by index, never by pointer.
type Node struct {
	Stats    NodeStats
	board    uttt.Board
	move     uttt.Move
	id       NodeID
	parent   NodeID
	depth    int32
	children []NodeID          // in insertion order
	keys     map[uint64]NodeID // child fingerprint -> child
	Flags    uint32
}

func newNode(id, parent NodeID, depth int32, move uttt.Move, board uttt.Board) Node {
	return Node{
		board:  board,
		move:   move,
		id:     id,
		parent: parent,
		depth:  depth,
		Flags:  TerminalFlag(board.IsGameOver()),
	}
}

func TerminalFlag(terminal bool) uint32 {
	flag := uint32(0)
	if terminal {
		// Nothing left to expand in a finished game
		flag |= TerminalMask | ExpandedMask
	}
	return flag
}

// Position this node represents
func (node *Node) Board() uttt.Board {
	return node.board
}

// Move that led from the parent to this node, uttt.MoveNone for the root
func (node *Node) Move() uttt.Move {
	return node.move
}

func (node *Node) ID() NodeID {
	return node.id
}

func (node *Node) ParentID() NodeID {
	return node.parent
}

// Distance from the root
func (node *Node) Depth() int {
	return int(node.depth)
}

// Reads the game Flags, and return whether the node is terminal
func (node *Node) Terminal() bool {
	return node.Flags&TerminalMask == TerminalMask
}

// Every legal move of this node has a child
func (node *Node) Expanded() bool {
	return node.Flags&ExpandedMask == ExpandedMask
}

// Set the state of the node to 'expanded'
func (node *Node) FinishExpanding() {
	node.Flags |= ExpandedMask
}

// Number of children added so far
func (node *Node) ChildCount() int {
	return len(node.children)
}

func (node *Node) hasChild(key uint64) bool {
	_, ok := node.keys[key]
	return ok
}

func (node *Node) String() string {
	return fmt.Sprintf("Node{id=%d, move=%v, n=%d, q=%.0f, children=%d, flags=%d}",
		node.id, node.move, node.Stats.N(), node.Stats.Q(), len(node.children), node.Flags)
}
