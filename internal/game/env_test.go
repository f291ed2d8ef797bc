package game

import (
	"slices"
	"testing"
)

func TestStepIllegalActionResets(t *testing.T) {
	g := newTestGame(t, Params{Players: 4, Agent: 0, Seed: 13, RewardWrongCard: -7})
	playOrFatal(t, g, 0, g.LegalMoves(0)[0])
	g.RunUntil(0)
	before := g.ID

	for _, action := range []int{99, -1, 15} {
		res := g.Step(action, 0)
		if !res.Done {
			t.Errorf("action %d: Done = false, want true", action)
		}
		if res.Reward != -7 {
			t.Errorf("action %d: reward = %v, want -7", action, res.Reward)
		}
		if g.ID == before {
			t.Errorf("action %d: round id unchanged after reset", action)
		}
		before = g.ID

		if g.TurnIndex() != 0 || g.Current() != 0 {
			t.Errorf("action %d: turn %d current %d, want fresh round at the agent", action, g.TurnIndex(), g.Current())
		}
		if got, want := len(g.Played()), (g.Players()-g.Leader())%g.Players(); got != want {
			t.Errorf("action %d: %d cards played after reset, want %d", action, got, want)
		}
		if len(g.Hand(0)) != 15 {
			t.Errorf("action %d: agent holds %d cards, want a fresh hand of 15", action, len(g.Hand(0)))
		}
		if res.Observation.RoundID != g.ID {
			t.Errorf("action %d: observation is from round %s, want %s", action, res.Observation.RoundID, g.ID)
		}
	}
}

func TestStepOutOfTurnResets(t *testing.T) {
	g := newTestGame(t, Params{Players: 3, Agent: 0, Seed: 2, RewardWrongCard: -1})
	res := g.Step(0, 1)
	if !res.Done || res.Reward != -1 {
		t.Fatalf("Step for seat 1 = %+v, want penalty and done", res)
	}
}

func TestStepPlaysWholeRound(t *testing.T) {
	g := newTestGame(t, Params{Players: 4, Agent: 0, Seed: 17, RewardCorrectCard: 0.5})
	round := g.ID

	steps := 0
	for {
		obs := g.Observe(0)
		if len(obs.Playable) == 0 {
			t.Fatalf("step %d: agent has nothing to play", steps)
		}
		res := g.Step(obs.Playable[0], 0)
		steps++
		if !res.Done {
			if res.Reward != 0.5 {
				t.Fatalf("step %d: reward = %v, want 0.5", steps, res.Reward)
			}
			if res.Observation.RoundID != round {
				t.Fatalf("step %d: round changed before it was done", steps)
			}
			continue
		}

		if steps != 15 {
			t.Errorf("round finished after %d agent steps, want 15", steps)
		}
		last := g.LastRoundScores()
		if len(last) != 4 {
			t.Fatalf("LastRoundScores() = %v", last)
		}
		if res.Reward != float64(last[0]) {
			t.Errorf("final reward = %v, want agent score %d", res.Reward, last[0])
		}
		if g.ID == round {
			t.Errorf("no new round dealt after the round ended")
		}
		if res.Info != nil {
			t.Errorf("Info = %v, want nil", res.Info)
		}
		break
	}
}

func TestObserve(t *testing.T) {
	g := newTestGame(t, Params{Players: 4, Agent: 2, Seed: 8})

	obs := g.Observe(2)
	if obs.Player != 2 || obs.Current != 2 || obs.RoundID != g.ID {
		t.Fatalf("unexpected observation header: %+v", obs)
	}
	if !slices.Equal(obs.Hand, g.Hand(2)) {
		t.Errorf("observed hand %v, want %v", obs.Hand, g.Hand(2))
	}
	if !slices.Equal(obs.Playable, g.LegalMoves(2)) {
		t.Errorf("observed playable %v, want %v", obs.Playable, g.LegalMoves(2))
	}
	if !slices.Equal(obs.Table, g.Table()) || !slices.Equal(obs.Played, g.Played()) {
		t.Errorf("observed table/played out of sync")
	}

	// Mutating an observation must not reach the game.
	if len(obs.Hand) > 0 {
		obs.Hand[0].Rank = 99
		if g.Hand(2)[0].Rank == 99 {
			t.Errorf("observation shares the hand with the game")
		}
	}

	outside := g.Observe(NoAgent)
	if outside.Hand != nil || outside.Playable != nil {
		t.Errorf("observation for no seat has hand %v playable %v", outside.Hand, outside.Playable)
	}
}

func TestScoreboard(t *testing.T) {
	s := NewScoreboard(3)
	if s.ID == "" {
		t.Fatalf("scoreboard has no id")
	}
	if err := s.Add([]int{1, -5, 10}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Add([]int{2, 0, 15}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !slices.Equal(s.Totals, []int{3, -5, 25}) || s.Rounds != 2 {
		t.Errorf("totals %v after %d rounds", s.Totals, s.Rounds)
	}
	if err := s.Add([]int{1}); err == nil {
		t.Errorf("expected error for wrong score count")
	}
	s.Reset()
	if !slices.Equal(s.Totals, []int{0, 0, 0}) || s.Rounds != 0 {
		t.Errorf("Reset left %v after %d rounds", s.Totals, s.Rounds)
	}
}
