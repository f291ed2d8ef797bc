package shell

import (
	"errors"

	"witches-game/internal/game"

	"go.uber.org/zap"
)

// Simulate plays rounds complete rounds of g, which must have no agent seat,
// and returns the accumulated scores. The round already dealt by NewGame
// counts as the first one.
func Simulate(g *game.Game, rounds int, logger *zap.Logger) (*game.Scoreboard, error) {
	if g.Agent() != game.NoAgent {
		return nil, errors.New("simulation needs a game without an agent seat")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("simulate")

	board := game.NewScoreboard(g.Players())
	for i := 0; i < rounds; i++ {
		if i > 0 {
			g.Reset()
		}
		if !g.Done() {
			return board, errors.New("round stopped before all cards were played")
		}
		scores := g.Scores()
		if err := board.Add(scores); err != nil {
			return board, err
		}
		logger.Debug("round simulated",
			zap.String("round_id", g.ID),
			zap.Int("round", i+1),
			zap.Ints("scores", scores),
		)
	}
	logger.Info("simulation finished", zap.String("scoreboard_id", board.ID), zap.Int("rounds", board.Rounds), zap.Ints("totals", board.Totals))
	return board, nil
}
