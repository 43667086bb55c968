package engine

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

type Engine interface {
	// Run plays a game to the end, first moving first, and returns the final board
	Run(first game.Mark) (board game.Board, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
