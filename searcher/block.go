package searcher

import (
	"tictactoe/game"

	"golang.org/x/exp/rand"
)

// blockingMove returns a cell that stops opponent from winning on its next
// move, chosen uniformly when there are several.
func blockingMove(board game.Board, opponent game.Mark, rng *rand.Rand) (int, bool) {
	threats := board.WinningMoves(opponent)
	if len(threats) == 0 {
		return -1, false
	}
	return threats[rng.Intn(len(threats))], true
}
