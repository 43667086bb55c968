package engine

import (
	"fmt"
	"time"

	"tictactoe/agent"
	"tictactoe/experiments/metrics"
	"tictactoe/game"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*localEngine)(nil)

type Option func(e *localEngine)

type localEngine struct {
	agents   map[game.Mark]agent.Agent
	board    game.Board
	observer func(game.Board)
}

// WithObserver is called with the board before the first move and after every move.
func WithObserver(observer func(game.Board)) Option {
	return func(e *localEngine) {
		e.observer = observer
	}
}

// WithBoard starts the game from board instead of an empty one.
func WithBoard(board game.Board) Option {
	return func(e *localEngine) {
		e.board = board
	}
}

// LocalEngine runs games between the agent playing X and the agent playing O.
func LocalEngine(x, o agent.Agent, options ...Option) Engine {
	if x == nil || o == nil {
		panic("need an agent for each mark")
	}
	e := &localEngine{
		agents: map[game.Mark]agent.Agent{game.X: x, game.O: o},
		board:  game.NewBoard(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// errorer is implemented by agents whose input can fail, such as humans.
type errorer interface {
	Err() error
}

// Run alternates the agents until the game ends.
func (e *localEngine) Run(first game.Mark) (game.Board, metrics.GameMetric, []metrics.MoveMetric, error) {
	board := e.board
	gameMetric := metrics.GameMetric{
		StartingPlayer: first.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %s is starting", first)
	e.observe(board)

	mark := first
	for step := 1; !board.IsTerminal(); step++ {
		a := e.agents[mark]
		cell, searchMetric := a.FindMove(board)

		if cell < 0 || cell >= game.NumCells {
			if ea, ok := a.(errorer); ok && ea.Err() != nil {
				return board, gameMetric, moveMetrics, fmt.Errorf("player %s: %w", mark, ea.Err())
			}
			return board, gameMetric, moveMetrics, fmt.Errorf("player %s chose cell %d: %w", mark, cell, game.ErrOutOfRange)
		}
		if !board.MakeMove(cell, mark) {
			return board, gameMetric, moveMetrics, fmt.Errorf("player %s chose cell %d: %w", mark, cell, game.ErrOccupied)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       mark.String(),
			Cell:         cell,
			SearchMetric: searchMetric,
		})
		log.Debug().Int("step", step).Str("player", mark.String()).Int("cell", cell).Msg("move played")
		e.observe(board)

		mark = mark.Opponent()
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	if winner := board.Winner(); winner != game.Empty {
		gameMetric.Winner = winner.String()
	}

	log.Debug().Msgf("game over: %s\n%s", board.Result(), board)
	return board, gameMetric, moveMetrics, nil
}

func (e *localEngine) observe(board game.Board) {
	if e.observer != nil {
		e.observer(board)
	}
}
