package game

import (
	"math/rand/v2"

	"witches-game/internal/shared"
)

// Strategy picks the card a seat plays. legal holds the playable indices of
// hand, in hand order.
type Strategy interface {
	Choose(hand shared.Hand, legal []int) int
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc func(hand shared.Hand, legal []int) int

func (f StrategyFunc) Choose(hand shared.Hand, legal []int) int { return f(hand, legal) }

// FirstLegal plays the first legal card, or the first card when nothing is legal.
type FirstLegal struct{}

func (FirstLegal) Choose(hand shared.Hand, legal []int) int {
	if len(legal) > 0 {
		return legal[0]
	}
	return 0
}

// Random plays a uniformly random legal card.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random strategy with its own seeded source.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *Random) Choose(hand shared.Hand, legal []int) int {
	if len(legal) == 0 {
		return 0
	}
	return legal[r.rng.IntN(len(legal))]
}
