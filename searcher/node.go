package searcher

import (
	"math"

	"tictactoe/game"
)

// node owns its board snapshot and its children. parent is a back-reference
// used only for backup.
type node struct {
	board    game.Board
	parent   *node
	children []*node
	rewards  float64
	visits   int
}

func newNode(parent *node, board game.Board) *node {
	return &node{
		parent: parent,
		board:  board,
	}
}

// selectChild returns the child with the highest UCB1 score. Ties go to the
// child with the highest index.
func (n *node) selectChild() *node {
	if len(n.children) == 0 {
		panic("node has no children")
	}

	normalizer := CSquared * math.Log(float64(n.visits))

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range n.children {
		if score := ucb1(child.rewards, child.visits, normalizer); score >= maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return n.children[maxIndex]
}

// expand adds one child per empty cell, ascending, each with mark played there.
// Only the searching side's mark is ever placed.
func (n *node) expand(mark game.Mark) {
	if n.board.IsTerminal() {
		panic("cannot expand a terminal node")
	}
	if len(n.children) > 0 {
		panic("node is already expanded")
	}

	empty := n.board.EmptyCells()
	n.children = make([]*node, 0, len(empty))
	for _, pos := range empty {
		board := n.board
		board.MakeMove(pos, mark)
		n.children = append(n.children, newNode(n, board))
	}
}

func (n *node) update(reward float64) {
	n.visits++
	n.rewards += reward
}

// mostVisited returns the child with the most visits, the highest index on ties.
func (n *node) mostVisited() *node {
	if len(n.children) == 0 {
		panic("node has no children")
	}

	best := n.children[0]
	for _, child := range n.children[1:] {
		if child.visits >= best.visits {
			best = child
		}
	}
	return best
}

func (n *node) size() int {
	total := 1
	for _, child := range n.children {
		total += child.size()
	}
	return total
}
