package game

import (
	"fmt"

	"github.com/google/uuid"
)

// Scoreboard accumulates round scores over a session.
type Scoreboard struct {
	ID     string `json:"id"`
	Totals []int  `json:"totals"`
	Rounds int    `json:"rounds"`
}

// NewScoreboard creates an empty scoreboard for players seats.
func NewScoreboard(players int) *Scoreboard {
	return &Scoreboard{
		ID:     uuid.NewString(),
		Totals: make([]int, players),
	}
}

// Add records one round of scores, indexed by seat.
func (s *Scoreboard) Add(scores []int) error {
	if len(scores) != len(s.Totals) {
		return fmt.Errorf("got %d scores for %d players", len(scores), len(s.Totals))
	}
	for i, points := range scores {
		s.Totals[i] += points
	}
	s.Rounds++
	return nil
}

// Reset clears the totals.
func (s *Scoreboard) Reset() {
	for i := range s.Totals {
		s.Totals[i] = 0
	}
	s.Rounds = 0
}
