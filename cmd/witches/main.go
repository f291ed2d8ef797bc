package main

import (
	"fmt"
	"os"
	"strconv"

	"witches-game/internal/config"
	"witches-game/internal/game"
	"witches-game/internal/render"
	"witches-game/internal/shell"

	"go.uber.org/zap"
)

const usage = `usage: witches [play | gym | simulate [rounds]]

  play      play the agent seat interactively (default)
  gym       drive the agent seat with JSON lines on stdin/stdout
  simulate  let every seat play the given number of rounds (default 10)

Settings are read from WITCHES_* environment variables or a .env file.`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logCfg := zap.NewDevelopmentConfig()
	logCfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	logger, err := logCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	mode := "play"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	params := cfg.GameParams()
	params.Logger = logger

	switch mode {
	case "play":
		g := newGame(logger, params)
		sh, err := shell.NewInteractive(g, os.Stdin, os.Stdout, cfg.LargeCards, logger)
		if err != nil {
			logger.Fatal("failed to start shell", zap.Error(err))
		}
		if err := sh.Run(); err != nil {
			logger.Fatal("shell stopped", zap.Error(err))
		}

	case "gym":
		g := newGame(logger, params)
		gym, err := shell.NewGym(g, os.Stdin, os.Stdout, cfg.LargeCards, logger)
		if err != nil {
			logger.Fatal("failed to start gym", zap.Error(err))
		}
		if err := gym.Run(); err != nil {
			logger.Fatal("gym stopped", zap.Error(err))
		}

	case "simulate":
		rounds := 10
		if len(os.Args) > 2 {
			if rounds, err = strconv.Atoi(os.Args[2]); err != nil || rounds < 1 {
				logger.Fatal("invalid round count", zap.String("rounds", os.Args[2]))
			}
		}
		params.Agent = game.NoAgent
		g := newGame(logger, params)
		board, err := shell.Simulate(g, rounds, logger)
		if err != nil {
			logger.Fatal("simulation failed", zap.Error(err))
		}
		fmt.Println(render.Scoreboard(board, game.NoAgent))

	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

func newGame(logger *zap.Logger, params game.Params) *game.Game {
	g, err := game.NewGame(params)
	if err != nil {
		logger.Fatal("failed to create game", zap.Error(err), zap.Int("players", params.Players))
	}
	return g
}
