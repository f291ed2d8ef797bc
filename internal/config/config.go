package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"strconv"

	"witches-game/internal/game"
	"witches-game/internal/shared"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Opponent strategies selectable with WITCHES_OPPONENT_STRATEGY.
const (
	StrategyFirst  = "first"
	StrategyRandom = "random"
)

// Config holds the settings read from the environment.
type Config struct {
	Opponents         int
	Seed              uint64
	LargeCards        bool
	RewardWrongCard   float64
	RewardCorrectCard float64
	TrickRule         shared.TrickRule
	OpponentStrategy  string
	LogLevel          zapcore.Level
}

// Players returns the number of seats, the agent included.
func (c Config) Players() int { return c.Opponents + 1 }

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Opponents:         3,
		RewardWrongCard:   game.DefaultRewardWrongCard,
		RewardCorrectCard: game.DefaultRewardCorrectCard,
		TrickRule:         shared.WildTrickToLeader,
		OpponentStrategy:  StrategyFirst,
		LogLevel:          zapcore.InfoLevel,
	}
}

// Load reads an optional .env file and then the WITCHES_* variables.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read env file: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, starting from Default.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	var err error

	if v, ok := lookup("WITCHES_OPPONENTS"); ok {
		if c.Opponents, err = strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("WITCHES_OPPONENTS: %w", err)
		}
	}
	if err := shared.ValidatePlayerCount(c.Players()); err != nil {
		return Config{}, fmt.Errorf("WITCHES_OPPONENTS: %w", err)
	}

	if v, ok := lookup("WITCHES_SEED"); ok {
		if c.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("WITCHES_SEED: %w", err)
		}
	}
	if v, ok := lookup("WITCHES_LARGE_CARDS"); ok {
		if c.LargeCards, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("WITCHES_LARGE_CARDS: %w", err)
		}
	}
	if v, ok := lookup("WITCHES_REWARD_WRONG_CARD"); ok {
		if c.RewardWrongCard, err = strconv.ParseFloat(v, 64); err != nil {
			return Config{}, fmt.Errorf("WITCHES_REWARD_WRONG_CARD: %w", err)
		}
	}
	if v, ok := lookup("WITCHES_REWARD_CORRECT_CARD"); ok {
		if c.RewardCorrectCard, err = strconv.ParseFloat(v, 64); err != nil {
			return Config{}, fmt.Errorf("WITCHES_REWARD_CORRECT_CARD: %w", err)
		}
	}
	if v, ok := lookup("WITCHES_TRICK_RULE"); ok {
		if c.TrickRule, err = shared.ParseTrickRule(v); err != nil {
			return Config{}, fmt.Errorf("WITCHES_TRICK_RULE: %w", err)
		}
	}
	if v, ok := lookup("WITCHES_OPPONENT_STRATEGY"); ok {
		switch v {
		case StrategyFirst, StrategyRandom:
			c.OpponentStrategy = v
		default:
			return Config{}, fmt.Errorf("WITCHES_OPPONENT_STRATEGY: unknown strategy %q", v)
		}
	}
	if v, ok := lookup("WITCHES_LOG_LEVEL"); ok {
		if c.LogLevel, err = zapcore.ParseLevel(v); err != nil {
			return Config{}, fmt.Errorf("WITCHES_LOG_LEVEL: %w", err)
		}
	}
	return c, nil
}

// GameParams converts the configuration into game parameters for agent seat 0.
func (c Config) GameParams() game.Params {
	return game.Params{
		Players:           c.Players(),
		Agent:             0,
		Seed:              c.Seed,
		Rule:              c.TrickRule,
		Strategies:        c.strategies(),
		RewardWrongCard:   c.RewardWrongCard,
		RewardCorrectCard: c.RewardCorrectCard,
	}
}

// strategies returns one strategy per seat. Random seats are seeded from Seed
// so that a fixed seed replays the same rounds.
func (c Config) strategies() []game.Strategy {
	out := make([]game.Strategy, c.Players())
	base := c.Seed
	if base == 0 {
		base = rand.Uint64()
	}
	for i := range out {
		if c.OpponentStrategy == StrategyRandom {
			out[i] = game.NewRandom(base + uint64(i))
		} else {
			out[i] = game.FirstLegal{}
		}
	}
	return out
}
