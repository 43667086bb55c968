package experiments

import (
	"fmt"
	"sync"

	"tictactoe/agent"
	"tictactoe/config"
	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/meta"
	"tictactoe/record"
	"tictactoe/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// Searcher and opponent marks in self-play. The searcher always moves first.
const (
	SearcherMark = game.O
	OpponentMark = game.X
)

type Result struct {
	Record      record.Record
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
	WinRates    []float64 // Running win rate after each game, in game order
}

// RunSelfPlay plays cfg.Games games of the searcher against a random opponent
// and adds the outcomes to rec. Game i draws its randomness from cfg.Seed+i.
func RunSelfPlay(cfg config.Config, rec record.Record) (Result, error) {
	games := make([]metrics.GameRecord, cfg.Games)
	moves := make([][]metrics.MoveRecord, cfg.Games)

	var mu sync.Mutex
	completed := 0

	log.Info().Int("games", cfg.Games).Int("workers", cfg.Workers).Msg("starting self-play")

	g := errgroup.Group{}
	g.SetLimit(cfg.Workers)
	for i := 0; i < cfg.Games; i++ {
		i := i
		g.Go(func() error {
			board, gameMetric, moveMetrics, err := runGame(cfg, cfg.Seed+uint64(i))
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}

			games[i] = metrics.GameRecord{ID: i + 1, GameMetric: gameMetric}
			for _, mm := range moveMetrics {
				moves[i] = append(moves[i], metrics.MoveRecord{Game: i + 1, MoveMetric: mm})
			}

			mu.Lock()
			defer mu.Unlock()
			rec.Update(board, SearcherMark)
			completed++
			if completed%meta.ReportEvery == 0 {
				log.Info().Msgf("After %d games, current win rate (excluding draws): %.3f", completed, rec.WinRate())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	result := Result{Record: rec, GameRecords: games}
	winners := make([]string, len(games))
	for i, gr := range games {
		winners[i] = gr.Winner
		result.MoveRecords = append(result.MoveRecords, moves[i]...)
	}
	result.WinRates = metrics.WinRateSeries(winners, SearcherMark.String())

	log.Info().
		Int("win", rec.Win).
		Int("loss", rec.Loss).
		Int("draw", rec.Draw).
		Msgf("Final win rate (excluding draws): %.3f", rec.WinRate())
	return result, nil
}

// WriteResult stores the game and move records and the win rate chart under dir.
func WriteResult(dir string, result Result) (string, error) {
	writer, err := metrics.NewWriter(dir, "selfplay")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteGameRecords(result.GameRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.MoveRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")

	if err := writer.WriteWinRateChart("Self-play against a random opponent", result.WinRates); err != nil {
		return "", err
	}
	log.Info().Msg("stored win rate chart")

	return writer.Dir(), nil
}

func runGame(cfg config.Config, seed uint64) (game.Board, metrics.GameMetric, []metrics.MoveMetric, error) {
	rng := rand.New(rand.NewSource(seed))
	mcts := NewSearcher(cfg, SearcherMark, rand.New(rand.NewSource(rng.Uint64())))
	opponent := agent.NewRandomAgent(rand.New(rand.NewSource(rng.Uint64())))

	e := engine.LocalEngine(opponent, agent.NewEvaluationAgent(mcts))
	return e.Run(SearcherMark)
}

// NewSearcher builds a searcher for mark from the search settings in cfg.
func NewSearcher(cfg config.Config, mark game.Mark, rng *rand.Rand) *searcher.MCTS {
	options := []searcher.Option{searcher.WithRand(rng), searcher.WithMetrics()}
	if cfg.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(cfg.Episodes))
	} else {
		options = append(options, searcher.WithoutEpisodes())
	}
	if cfg.Duration > 0 {
		options = append(options, searcher.WithDuration(cfg.Duration))
	}
	return searcher.NewMCTS(mark, options...)
}
