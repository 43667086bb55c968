package searcher

import (
	"math"
	"testing"

	"tictactoe/game"

	"github.com/stretchr/testify/require"
)

func TestUCB1(t *testing.T) {
	t.Run("unvisited child scores infinity", func(t *testing.T) {
		require.Equal(t, math.Inf(1), ucb1(0, 0, CSquared*math.Log(10)))
	})

	t.Run("computing UCB1 value", func(t *testing.T) {
		got := ucb1(5, 10, CSquared*math.Log(100))
		expected := 5.0/10 + math.Sqrt(2.0*math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001, "Should compute q/n + sqrt(2*ln(N)/n)")
	})
}

func TestNodeSelectChild(t *testing.T) {
	t.Run("unvisited child beats any visited child", func(t *testing.T) {
		unvisited := &node{}
		strong := &node{rewards: 100, visits: 100}
		parent := &node{children: []*node{unvisited, strong}, visits: 101}

		require.Same(t, unvisited, parent.selectChild(), "Infinity should dominate any win rate")
	})

	t.Run("ties between unvisited children go to the highest index", func(t *testing.T) {
		children := []*node{{}, {}, {}}
		parent := &node{children: children, visits: 1}

		require.Same(t, children[2], parent.selectChild())
	})

	t.Run("ties between equal scores go to the highest index", func(t *testing.T) {
		children := []*node{{rewards: 1, visits: 2}, {rewards: 1, visits: 2}, {rewards: 0, visits: 2}}
		parent := &node{children: children, visits: 7}

		require.Same(t, children[1], parent.selectChild())
	})

	t.Run("selects the max UCB1 child", func(t *testing.T) {
		best := &node{rewards: 3, visits: 4}
		children := []*node{{rewards: 1, visits: 4}, best, {rewards: 0, visits: 4}}
		parent := &node{children: children, visits: 13}

		require.Same(t, best, parent.selectChild())
	})

	t.Run("panics without children", func(t *testing.T) {
		require.Panics(t, func() { (&node{}).selectChild() })
	})
}

func TestNodeExpand(t *testing.T) {
	t.Run("adds one child per empty cell in ascending order", func(t *testing.T) {
		board := game.NewBoard()
		board.MakeMove(0, game.X)
		board.MakeMove(4, game.O)
		n := newNode(nil, board)

		n.expand(game.O)

		require.Len(t, n.children, 7)
		for i, pos := range []int{1, 2, 3, 5, 6, 7, 8} {
			child := n.children[i]
			require.Same(t, n, child.parent, "Child should point back to its parent")
			require.Equal(t, game.O, child.board.At(pos), "Child %d should play cell %d", i, pos)
			require.Equal(t, 0, child.visits)
			require.Equal(t, 0.0, child.rewards)
		}
		require.Equal(t, board, n.board, "Parent board should be unchanged")
	})

	t.Run("children own independent boards", func(t *testing.T) {
		n := newNode(nil, game.NewBoard())
		n.expand(game.O)

		n.children[0].board.MakeMove(8, game.X)
		require.Equal(t, game.Empty, n.children[1].board.At(8), "Sibling boards should not alias")
		require.Equal(t, game.Empty, n.board.At(8), "Parent board should not alias")
	})

	t.Run("children evaluate their winner", func(t *testing.T) {
		board := game.NewBoard()
		board.MakeMove(0, game.O)
		board.MakeMove(1, game.O)
		n := newNode(nil, board)

		n.expand(game.O)

		require.Equal(t, game.O, n.children[0].board.Winner(), "Playing cell 2 should win")
		require.Equal(t, game.Empty, n.children[1].board.Winner())
	})

	t.Run("always plays the given mark", func(t *testing.T) {
		n := newNode(nil, game.NewBoard())
		n.expand(game.O)
		n.children[0].expand(game.O)

		for _, grandChild := range n.children[0].children {
			cells := grandChild.board.Cells()
			for _, c := range cells {
				require.NotEqual(t, game.X, c, "Expansion should never place the opponent's mark")
			}
		}
	})

	t.Run("panics on a terminal node", func(t *testing.T) {
		board := game.NewBoard()
		for _, pos := range []int{0, 1, 2} {
			board.MakeMove(pos, game.X)
		}
		require.Panics(t, func() { newNode(nil, board).expand(game.O) })
	})
}

func TestNodeBackup(t *testing.T) {
	root := newNode(nil, game.NewBoard())
	root.expand(game.O)
	child := root.children[3]
	child.expand(game.O)
	leaf := child.children[0]

	backup(leaf, Win)
	backup(child, Loss)

	require.Equal(t, 1, leaf.visits)
	require.Equal(t, 1.0, leaf.rewards)
	require.Equal(t, 2, child.visits)
	require.Equal(t, 1.0, child.rewards)
	require.Equal(t, 2, root.visits)
	require.Equal(t, 1.0, root.rewards)
	require.Equal(t, 0, root.children[0].visits, "Siblings off the path should be untouched")
}

func TestNodeMostVisited(t *testing.T) {
	t.Run("picks the highest visit count", func(t *testing.T) {
		best := &node{visits: 9}
		n := &node{children: []*node{{visits: 3}, best, {visits: 1}}}
		require.Same(t, best, n.mostVisited())
	})

	t.Run("ties go to the highest index", func(t *testing.T) {
		children := []*node{{visits: 5}, {visits: 5}, {visits: 2}}
		n := &node{children: children}
		require.Same(t, children[1], n.mostVisited())
	})

	t.Run("panics without children", func(t *testing.T) {
		require.Panics(t, func() { (&node{}).mostVisited() })
	})
}

func TestNodeSize(t *testing.T) {
	root := newNode(nil, game.NewBoard())
	root.expand(game.O)
	root.children[0].expand(game.O)
	require.Equal(t, 1+9+8, root.size())
}
