package agent

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns an agent that plays the searcher's chosen move.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(board game.Board) (int, metrics.SearchMetric) {
	return a.mcts.FindMove(board)
}
