package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"tictactoe/agent"
	"tictactoe/config"
	"tictactoe/engine"
	"tictactoe/experiments"
	"tictactoe/game"
	"tictactoe/record"
	"tictactoe/render"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	configPath := flag.String("config", "", "YAML config file, flags override its values")
	mode := flag.String("mode", "", "play (against a human) or train (self-play against a random opponent)")
	episodes := flag.Int("episodes", 0, "Search episodes per move")
	duration := flag.Duration("duration", 0, "Search time bound per move")
	games := flag.Int("games", 0, "Number of self-play games")
	workers := flag.Int("workers", 0, "Self-play games run at once")
	seed := flag.Uint64("seed", 0, "Random seed")
	recordPath := flag.String("record", "", "Win/loss/draw record file")
	outDir := flag.String("out", "", "Directory for self-play CSV records and chart")
	logLevel := flag.String("log-level", "", "Log level")
	noColor := flag.Bool("no-color", false, "Disable coloured output")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	// Only flags given on the command line override the config
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = *mode
		case "episodes":
			cfg.Episodes = *episodes
		case "duration":
			cfg.Duration = *duration
		case "games":
			cfg.Games = *games
		case "workers":
			cfg.Workers = *workers
		case "seed":
			cfg.Seed = *seed
		case "record":
			cfg.Record = *recordPath
		case "out":
			cfg.OutDir = *outDir
		case "log-level":
			cfg.LogLevel = *logLevel
		case "no-color":
			cfg.NoColor = *noColor
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: cfg.NoColor, TimeFormat: time.TimeOnly})

	rec := loadRecord(cfg.Record)

	var err error
	switch cfg.Mode {
	case "train":
		rec, err = train(cfg, rec)
	case "play":
		rec, err = play(cfg, rec)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.Mode)
	}

	if cfg.Record != "" {
		if err := rec.Save(cfg.Record); err != nil {
			log.Fatal().Err(err).Msg("failed to save record")
		}
		log.Info().Str("path", cfg.Record).Msg("saved record")
	}
}

// loadRecord starts a fresh record when none has been saved yet.
func loadRecord(path string) record.Record {
	if path == "" {
		return record.Record{}
	}
	rec, err := record.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("path", path).Msg("no saved record, starting fresh")
		return record.Record{}
	}
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to load record")
	}
	log.Info().Str("path", path).Int("win", rec.Win).Int("loss", rec.Loss).Int("draw", rec.Draw).Msg("loaded record")
	return rec
}

func train(cfg config.Config, rec record.Record) (record.Record, error) {
	result, err := experiments.RunSelfPlay(cfg, rec)
	if err != nil {
		return rec, err
	}
	if cfg.OutDir != "" {
		dir, err := experiments.WriteResult(cfg.OutDir, result)
		if err != nil {
			return result.Record, err
		}
		log.Info().Str("dir", dir).Msg("stored self-play results")
	}
	return result.Record, nil
}

func play(cfg config.Config, rec record.Record) (record.Record, error) {
	const human = game.X

	r := render.NewRenderer(os.Stdout, cfg.NoColor)
	mcts := experiments.NewSearcher(cfg, human.Opponent(), rand.New(rand.NewSource(cfg.Seed)))
	e := engine.LocalEngine(
		agent.NewHumanAgent(os.Stdin, os.Stdout),
		agent.NewEvaluationAgent(mcts),
		engine.WithObserver(r.Draw),
	)

	board, _, _, err := e.Run(human)
	if err != nil {
		return rec, err
	}
	fmt.Println(r.Outcome(board, human))

	rec.Update(board, human.Opponent())
	return rec, nil
}
