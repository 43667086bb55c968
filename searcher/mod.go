package searcher

import (
	"math"
)

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

// Use rewards to estimate the chance of winning
const Win = 1.0
const Loss = 1 - Win

// ucb1 scores a child by its mean reward plus an exploration bonus. Unvisited
// children score +Inf so they are always tried first.
func ucb1(rewards float64, visits int, c2LnN float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}

	return rewards/float64(visits) + math.Sqrt(c2LnN/float64(visits))
}
