package game

import (
	"witches-game/internal/shared"

	"go.uber.org/zap"
)

// Observation is what a seat can see of the round.
type Observation struct {
	RoundID   string        `json:"round_id"`
	Player    int           `json:"player"`
	Current   int           `json:"current"`
	TurnIndex int           `json:"turn_index"`
	Table     []shared.Card `json:"table"`
	Played    []shared.Card `json:"played"`
	Hand      shared.Hand   `json:"hand"`
	Playable  []int         `json:"playable"`
}

// StepResult is returned by Step.
type StepResult struct {
	Observation Observation `json:"observation"`
	Reward      float64     `json:"reward"`
	Done        bool        `json:"done"`
	Info        any         `json:"info"`
}

// Observe returns the view of pid. Seats outside the table get no hand.
func (g *Game) Observe(pid int) Observation {
	obs := Observation{
		RoundID:   g.ID,
		Player:    pid,
		Current:   g.current,
		TurnIndex: g.turnIndex,
		Table:     g.Table(),
		Played:    g.Played(),
	}
	if g.seated(pid) {
		obs.Hand = g.Hand(pid)
		obs.Playable = g.LegalMoves(pid)
	}
	return obs
}

// Step plays action for pid and lets the other seats answer. An illegal
// action resets the round and is penalised. When the round ends the reward is
// pid's score and a new round is dealt.
func (g *Game) Step(action, pid int) StepResult {
	if err := g.Play(pid, action); err != nil {
		g.log.Debug("played illegal card, resetting", zap.Int("player", pid), zap.Error(err))
		return StepResult{Observation: g.Reset(), Reward: g.rewardWrongCard, Done: true}
	}

	g.RunUntil(pid)

	if g.Done() {
		points := shared.Score(g.tricks[pid])
		g.log.Debug("round finished",
			zap.String("round_id", g.ID),
			zap.Int("player", pid),
			zap.Int("points", points),
		)
		return StepResult{Observation: g.Reset(), Reward: float64(points), Done: true}
	}

	return StepResult{Observation: g.Observe(pid), Reward: g.rewardCorrectCard}
}
