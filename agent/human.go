package agent

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

var ErrNoInput = errors.New("no more input")

// HumanAgent reads moves line by line, re-prompting until it gets an empty
// cell index.
type HumanAgent struct {
	in  *bufio.Scanner
	out io.Writer
	err error
}

func NewHumanAgent(in io.Reader, out io.Writer) *HumanAgent {
	return &HumanAgent{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// FindMove returns -1 once the input is exhausted; Err reports why.
func (h *HumanAgent) FindMove(board game.Board) (int, metrics.SearchMetric) {
	for {
		fmt.Fprint(h.out, "Enter your move (0-8): ")
		if !h.in.Scan() {
			h.err = ErrNoInput
			if err := h.in.Err(); err != nil {
				h.err = fmt.Errorf("%w: %v", ErrNoInput, err)
			}
			return -1, metrics.SearchMetric{}
		}

		pos, err := parseMove(h.in.Text(), board)
		if err != nil {
			fmt.Fprintf(h.out, "Invalid move: %v\n", err)
			continue
		}
		return pos, metrics.SearchMetric{}
	}
}

func (h *HumanAgent) Err() error {
	return h.err
}

func parseMove(text string, board game.Board) (int, error) {
	pos, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return -1, fmt.Errorf("%q is not a number", strings.TrimSpace(text))
	}
	if pos < 0 || pos >= game.NumCells {
		return -1, fmt.Errorf("%d: %w", pos, game.ErrOutOfRange)
	}
	if board.At(pos) != game.Empty {
		return -1, fmt.Errorf("%d: %w", pos, game.ErrOccupied)
	}
	return pos, nil
}
