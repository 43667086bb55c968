package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func boardOf(cells string) Board {
	var raw [NumCells]Mark
	for i, c := range cells {
		switch c {
		case 'X':
			raw[i] = X
		case 'O':
			raw[i] = O
		}
	}
	return BoardFrom(raw)
}

func TestCheckWin(t *testing.T) {
	t.Run("every fixed line wins for its owner", func(t *testing.T) {
		for _, line := range Lines {
			var cells [NumCells]Mark
			for _, i := range line {
				cells[i] = O
			}
			require.True(t, CheckWin(cells, O), "Line %v should win for O", line)
			require.False(t, CheckWin(cells, X), "Line %v should not win for X", line)
		}
	})

	t.Run("matches a brute force line scan on random boards", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		for n := 0; n < 2000; n++ {
			var cells [NumCells]Mark
			for i := range cells {
				cells[i] = Mark(rng.Intn(3))
			}
			for _, m := range []Mark{X, O} {
				want := false
				for _, line := range Lines {
					if cells[line[0]] == m && cells[line[1]] == m && cells[line[2]] == m {
						want = true
					}
				}
				require.Equal(t, want, CheckWin(cells, m), "Board %v mark %v", cells, m)
			}
		}
	})

	t.Run("does not mutate the board", func(t *testing.T) {
		b := boardOf("XX       ")
		before := b.Cells()
		b.CheckWin(X)
		require.Equal(t, before, b.Cells(), "CheckWin should be a pure predicate")
	})
}

func TestMakeMove(t *testing.T) {
	t.Run("placing on an empty cell", func(t *testing.T) {
		b := NewBoard()
		require.True(t, b.MakeMove(4, X), "Move on an empty cell should succeed")
		require.Equal(t, X, b.At(4))
		require.Len(t, b.EmptyCells(), 8, "Only the written cell should change")
	})

	t.Run("placing on an occupied cell is a no-op for every cell and mark", func(t *testing.T) {
		for pos := 0; pos < NumCells; pos++ {
			for _, first := range []Mark{X, O} {
				for _, second := range []Mark{X, O} {
					b := NewBoard()
					require.True(t, b.MakeMove(pos, first))
					before := b

					require.False(t, b.MakeMove(pos, second), "Move on occupied cell %d should fail", pos)
					require.Equal(t, before, b, "Board should be unchanged")
				}
			}
		}
	})

	t.Run("completing a line sets the winner", func(t *testing.T) {
		b := boardOf("OO       ")
		require.Equal(t, Empty, b.Winner())

		require.True(t, b.MakeMove(2, O))
		require.Equal(t, O, b.Winner(), "Top row should win for O")
		require.Equal(t, WonByO, b.Result())
		require.True(t, b.IsTerminal())
	})

	t.Run("winner never changes once set", func(t *testing.T) {
		b := boardOf("OOOXX    ")
		require.Equal(t, O, b.Winner())

		require.True(t, b.MakeMove(5, X))
		require.True(t, b.CheckWin(X), "X holds the middle row")
		require.Equal(t, O, b.Winner(), "First winner should stick")
	})

	t.Run("panics on an out of range position", func(t *testing.T) {
		b := NewBoard()
		require.Panics(t, func() { b.MakeMove(9, X) })
		require.Panics(t, func() { b.MakeMove(-1, X) })
	})
}

func TestDraw(t *testing.T) {
	t.Run("full board without a line is a draw", func(t *testing.T) {
		b := boardOf("XOXXOOOXX")
		require.True(t, b.IsDraw(), "Full board without a line should be a draw")
		require.Equal(t, Empty, b.Winner(), "Draw should have no winner")
		require.Equal(t, Draw, b.Result())
	})

	t.Run("full board with a line is not a draw", func(t *testing.T) {
		b := boardOf("XXXOOXOXO")
		require.False(t, b.IsDraw())
		require.Equal(t, X, b.Winner())
	})

	t.Run("at most one outcome holds along random games", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		for n := 0; n < 500; n++ {
			b := NewBoard()
			mark := X
			for !b.IsTerminal() {
				require.True(t, b.MakeMove(b.RandomEmptyPosition(rng), mark))
				outcomes := 0
				if b.Winner() == X {
					outcomes++
				}
				if b.Winner() == O {
					outcomes++
				}
				if b.IsDraw() {
					outcomes++
				}
				require.LessOrEqual(t, outcomes, 1, "Board %v has more than one outcome", b.Cells())
				mark = mark.Opponent()
			}
		}
	})
}

func TestWinningMoves(t *testing.T) {
	t.Run("finds the completing cells", func(t *testing.T) {
		b := boardOf("XX X     ")
		require.Equal(t, []int{2, 6}, b.WinningMoves(X))
		require.Empty(t, b.WinningMoves(O))
	})

	t.Run("is exactly the set of empty cells that complete a line", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		for n := 0; n < 500; n++ {
			b := NewBoard()
			mark := X
			for k := rng.Intn(7); k > 0; k-- {
				b.MakeMove(b.RandomEmptyPosition(rng), mark)
				mark = mark.Opponent()
			}
			for _, m := range []Mark{X, O} {
				winning := map[int]bool{}
				for _, pos := range b.WinningMoves(m) {
					winning[pos] = true
				}
				for _, pos := range b.EmptyCells() {
					next := b.Cells()
					next[pos] = m
					require.Equal(t, winning[pos], CheckWin(next, m), "Board %v mark %v cell %d", b.Cells(), m, pos)
				}
			}
		}
	})
}

func TestRandomEmptyPosition(t *testing.T) {
	t.Run("returns only empty cells", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		b := boardOf("XOXOX    ")
		for n := 0; n < 100; n++ {
			pos := b.RandomEmptyPosition(rng)
			require.Equal(t, Empty, b.At(pos))
		}
	})

	t.Run("panics on a full board", func(t *testing.T) {
		b := boardOf("XOXXOOOXX")
		require.Panics(t, func() {
			b.RandomEmptyPosition(rand.New(rand.NewSource(1)))
		})
	})
}

func TestMark(t *testing.T) {
	require.Equal(t, O, X.Opponent())
	require.Equal(t, X, O.Opponent())
	require.Equal(t, Empty, Empty.Opponent())
	require.Equal(t, "X", X.String())

	t.Run("parses what String prints", func(t *testing.T) {
		for _, m := range []Mark{Empty, X, O} {
			parsed, err := ParseMark(m.String())
			require.NoError(t, err)
			require.Equal(t, m, parsed, "Mark %q should round trip", m.String())
		}
		parsed, err := ParseMark(" o ")
		require.NoError(t, err)
		require.Equal(t, O, parsed)
	})

	t.Run("rejects unknown marks", func(t *testing.T) {
		_, err := ParseMark("Z")
		require.ErrorIs(t, err, ErrUnknownMark)
	})
}
