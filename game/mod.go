package game

import (
	"errors"
	"fmt"
	"strings"
)

// Mark is the content of a single cell, and doubles as a player identifier.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// NumCells is the number of cells on a 3x3 board
const NumCells = 9

// Lines holds the 8 triples (3 rows, 3 columns, 2 diagonals) that win the game.
var Lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

var (
	ErrOccupied    = errors.New("cell is already occupied")
	ErrOutOfRange  = errors.New("cell index out of range")
	ErrUnknownMark = errors.New("unknown mark")
)

func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// ParseMark is the inverse of Mark.String. Case and surrounding space are ignored,
// except that " " and "" both parse as Empty.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	case "":
		return Empty, nil
	default:
		return Empty, fmt.Errorf("%q: %w", s, ErrUnknownMark)
	}
}

// Result is the state of a single game. Every state other than InProgress is absorbing.
type Result int

const (
	InProgress Result = iota
	WonByX
	WonByO
	Draw
)

func (r Result) String() string {
	switch r {
	case WonByX:
		return "won by X"
	case WonByO:
		return "won by O"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}
