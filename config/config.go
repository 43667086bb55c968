package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"tictactoe/meta"
	"tictactoe/utils"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var Modes = []string{"play", "train"}

type Config struct {
	Mode     string        `yaml:"mode"`
	Episodes int           `yaml:"episodes"`
	Duration time.Duration `yaml:"duration"`
	Games    int           `yaml:"games"`
	Workers  int           `yaml:"workers"`
	Seed     uint64        `yaml:"seed"`
	Record   string        `yaml:"record"`
	OutDir   string        `yaml:"out_dir"` // CSV and chart output, disabled when empty
	LogLevel string        `yaml:"log_level"`
	NoColor  bool          `yaml:"no_color"`
}

func Default() Config {
	return Config{
		Mode:     "play",
		Episodes: meta.Episodes,
		Duration: meta.Duration,
		Games:    meta.Games,
		Workers:  meta.Workers,
		Seed:     uint64(time.Now().UnixNano()),
		Record:   meta.RecordPath,
		LogLevel: zerolog.LevelInfoValue,
	}
}

// Load overlays the YAML file at path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if utils.FindIndex(Modes, c.Mode) < 0 {
		errs = append(errs, fmt.Errorf("unknown mode %q", c.Mode))
	}
	if c.Episodes <= 0 && c.Duration <= 0 {
		errs = append(errs, errors.New("episodes or duration must be positive"))
	}
	if c.Episodes < 0 || c.Duration < 0 {
		errs = append(errs, errors.New("episodes and duration cannot be negative"))
	}
	if c.Games <= 0 {
		errs = append(errs, errors.New("games must be positive"))
	}
	if c.Workers <= 0 {
		errs = append(errs, errors.New("workers must be positive"))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level: %w", err))
	}
	return errors.Join(errs...)
}

func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
