package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	FirstTurnPlayer = "player"
	FirstTurnAI     = "ai"
)

var ErrUnknownFirstTurn = errors.New("unknown first turn")

type Config struct {
	LogLevel       string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	FirstTurn      string `yaml:"first-turn" env:"FIRST_TURN" env-default:"player"`
	ParallelSearch bool   `yaml:"parallel-search" env:"PARALLEL_SEARCH" env-default:"false"`
	CLI            CLI    `yaml:"cli"`
}

type CLI struct {
	Prompt      string `yaml:"prompt" env:"CLI_PROMPT" env-default:"row col> "`
	HistoryFile string `yaml:"history-file" env:"CLI_HISTORY_FILE" env-default:""`
}

// MustLoad - load all configurations from the yml file, or from the
// environment when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if _, err := config.FirstSide(); err != nil {
		return nil, err
	}

	return config, nil
}

// FirstSide - returns the side that opens every game.
func (that *Config) FirstSide() (entity.Side, error) {
	switch that.FirstTurn {
	case FirstTurnPlayer:
		return entity.SidePlayer, nil
	case FirstTurnAI:
		return entity.SideAI, nil
	default:
		return entity.SidePlayer, fmt.Errorf("%w: %q", ErrUnknownFirstTurn, that.FirstTurn)
	}
}
