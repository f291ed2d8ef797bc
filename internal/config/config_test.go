package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"witches-game/internal/game"
	"witches-game/internal/shared"

	"go.uber.org/zap/zapcore"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	c, err := FromEnv(lookupFrom(nil))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if c != Default() {
		t.Errorf("got %+v, want defaults %+v", c, Default())
	}
	if c.Players() != 4 {
		t.Errorf("players = %d, want 4", c.Players())
	}
}

func TestFromEnv(t *testing.T) {
	c, err := FromEnv(lookupFrom(map[string]string{
		"WITCHES_OPPONENTS":           "2",
		"WITCHES_SEED":                "1234",
		"WITCHES_LARGE_CARDS":         "true",
		"WITCHES_REWARD_WRONG_CARD":   "-50",
		"WITCHES_REWARD_CORRECT_CARD": "0.25",
		"WITCHES_TRICK_RULE":          "last",
		"WITCHES_OPPONENT_STRATEGY":   "random",
		"WITCHES_LOG_LEVEL":           "debug",
	}))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	want := Config{
		Opponents:         2,
		Seed:              1234,
		LargeCards:        true,
		RewardWrongCard:   -50,
		RewardCorrectCard: 0.25,
		TrickRule:         shared.WildTrickToLast,
		OpponentStrategy:  StrategyRandom,
		LogLevel:          zapcore.DebugLevel,
	}
	if c != want {
		t.Errorf("got %+v, want %+v", c, want)
	}

	p := c.GameParams()
	if p.Players != 3 || p.Agent != 0 || p.Seed != 1234 || p.Rule != shared.WildTrickToLast || p.RewardWrongCard != -50 {
		t.Errorf("unexpected game params %+v", p)
	}
	if len(p.Strategies) != 3 {
		t.Fatalf("got %d strategies, want 3", len(p.Strategies))
	}
	for i, s := range p.Strategies {
		if _, ok := s.(*game.Random); !ok {
			t.Errorf("seat %d strategy = %T, want *game.Random", i, s)
		}
	}
	if _, err := game.NewGame(p); err != nil {
		t.Errorf("NewGame with random opponents: %v", err)
	}
}

func TestDefaultOpponentsPlayFirstLegal(t *testing.T) {
	p := Default().GameParams()
	for i, s := range p.Strategies {
		if _, ok := s.(game.FirstLegal); !ok {
			t.Errorf("seat %d strategy = %T, want game.FirstLegal", i, s)
		}
	}
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"opponents not a number", map[string]string{"WITCHES_OPPONENTS": "three"}},
		{"seed negative", map[string]string{"WITCHES_SEED": "-1"}},
		{"large cards not a bool", map[string]string{"WITCHES_LARGE_CARDS": "maybe"}},
		{"reward not a number", map[string]string{"WITCHES_REWARD_WRONG_CARD": "a lot"}},
		{"correct reward not a number", map[string]string{"WITCHES_REWARD_CORRECT_CARD": "x"}},
		{"unknown trick rule", map[string]string{"WITCHES_TRICK_RULE": "first"}},
		{"unknown opponent strategy", map[string]string{"WITCHES_OPPONENT_STRATEGY": "smart"}},
		{"unknown log level", map[string]string{"WITCHES_LOG_LEVEL": "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromEnv(lookupFrom(tt.env)); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}

func TestFromEnvInvalidPlayerCount(t *testing.T) {
	for _, opponents := range []string{"0", "6", "10"} {
		_, err := FromEnv(lookupFrom(map[string]string{"WITCHES_OPPONENTS": opponents}))
		if !errors.Is(err, shared.ErrInvalidPlayerCount) {
			t.Errorf("opponents=%s: err = %v, want ErrInvalidPlayerCount", opponents, err)
		}
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "witches.env")
	if err := os.WriteFile(path, []byte("WITCHES_OPPONENTS=5\nWITCHES_TRICK_RULE=last\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv("WITCHES_OPPONENTS")
		os.Unsetenv("WITCHES_TRICK_RULE")
	})

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Opponents != 5 || c.TrickRule != shared.WildTrickToLast {
		t.Errorf("got %+v", c)
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}
