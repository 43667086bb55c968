package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Board is a 3x3 grid. It is a value type: assigning a Board copies it, so
// snapshots never share cells.
type Board struct {
	cells  [NumCells]Mark
	winner Mark
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// BoardFrom builds a board from raw cells. The winner is derived from the
// cells, X taking precedence when both marks have a line.
func BoardFrom(cells [NumCells]Mark) Board {
	b := Board{cells: cells}
	for _, m := range []Mark{X, O} {
		if CheckWin(cells, m) {
			b.winner = m
			break
		}
	}
	return b
}

// MakeMove places m at pos. It returns false and leaves the board untouched
// when the cell is occupied.
func (b *Board) MakeMove(pos int, m Mark) bool {
	if pos < 0 || pos >= NumCells {
		panic(fmt.Sprintf("make move: position %d out of range", pos))
	}
	if b.cells[pos] != Empty {
		return false
	}
	b.cells[pos] = m
	// The first winner sticks
	if b.winner == Empty && CheckWin(b.cells, m) {
		b.winner = m
	}
	return true
}

// CheckWin reports whether m holds one of the winning lines on this board.
func (b Board) CheckWin(m Mark) bool {
	return CheckWin(b.cells, m)
}

// CheckWin reports whether m holds one of the winning lines on cells.
func CheckWin(cells [NumCells]Mark, m Mark) bool {
	for _, line := range Lines {
		if cells[line[0]] == m && cells[line[1]] == m && cells[line[2]] == m {
			return true
		}
	}
	return false
}

// WinningMoves returns the empty cells, ascending, that complete a line for m.
func (b Board) WinningMoves(m Mark) []int {
	var moves []int
	for i, c := range b.cells {
		if c != Empty {
			continue
		}
		next := b.cells
		next[i] = m
		if CheckWin(next, m) {
			moves = append(moves, i)
		}
	}
	return moves
}

// RandomEmptyPosition picks an empty cell uniformly. The board must not be full.
func (b Board) RandomEmptyPosition(rng *rand.Rand) int {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		panic("random empty position: board is full")
	}
	return empty[rng.Intn(len(empty))]
}

func (b Board) EmptyCells() []int {
	empty := make([]int, 0, NumCells)
	for i, c := range b.cells {
		if c == Empty {
			empty = append(empty, i)
		}
	}
	return empty
}

func (b Board) Cells() [NumCells]Mark {
	return b.cells
}

func (b Board) At(pos int) Mark {
	return b.cells[pos]
}

// Winner returns Empty until a line has been completed.
func (b Board) Winner() Mark {
	return b.winner
}

func (b Board) IsDraw() bool {
	if b.winner != Empty {
		return false
	}
	for _, c := range b.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

func (b Board) IsTerminal() bool {
	return b.winner != Empty || b.IsDraw()
}

func (b Board) Result() Result {
	switch {
	case b.winner == X:
		return WonByX
	case b.winner == O:
		return WonByO
	case b.IsDraw():
		return Draw
	default:
		return InProgress
	}
}

func (b Board) String() string {
	s := ""
	for i := 0; i < NumCells; i += 3 {
		s += fmt.Sprintf("%s | %s | %s\n", b.cells[i], b.cells[i+1], b.cells[i+2])
		if i < 6 {
			s += "---------\n"
		}
	}
	return s
}
