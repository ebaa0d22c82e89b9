package mcts

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
)

func dotName(id NodeID) string {
	return fmt.Sprintf("n%d", id)
}

func dotLabel(node *Node) string {
	move := "root"
	if node.parent != nilNode {
		move = fmt.Sprintf("%s %v", node.board.OtherMark(), node.move)
	}
	return fmt.Sprintf("\"%s\\nN=%d Q=%.0f\"", move, node.Stats.N(), node.Stats.Q())
}

// Render the tree in graphviz DOT format, down to 'maxDepth' levels below the
// root (negative for the whole tree). Terminal nodes are drawn as boxes.
func (t *Tree) ToDot(maxDepth int) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}

	queue := []NodeID{0}
	for len(queue) > 0 {
		node := t.Node(queue[0])
		queue = queue[1:]

		attrs := map[string]string{
			"fontname": "Monaco",
			"shape":    "ellipse",
			"label":    dotLabel(node),
		}
		if node.Terminal() {
			attrs["shape"] = "box"
		}
		if err := g.AddNode("G", dotName(node.id), attrs); err != nil {
			return "", err
		}

		if maxDepth >= 0 && node.Depth() >= maxDepth {
			continue
		}
		for _, kid := range node.children {
			if err := g.AddEdge(dotName(node.id), dotName(kid), true, nil); err != nil {
				return "", err
			}
			queue = append(queue, kid)
		}
	}

	return g.String(), nil
}
