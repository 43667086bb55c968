package agent

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random empty cell.
func NewRandomAgent(rng *rand.Rand) Agent {
	return randomAgent{rng: rng}
}

func (a randomAgent) FindMove(board game.Board) (int, metrics.SearchMetric) {
	return board.RandomEmptyPosition(a.rng), metrics.SearchMetric{}
}
