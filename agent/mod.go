package agent

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

type Agent interface {
	// FindMove returns the cell to play and performance metrics (if collected)
	// from the move finding process. The board is never terminal.
	FindMove(board game.Board) (int, metrics.SearchMetric)
}
