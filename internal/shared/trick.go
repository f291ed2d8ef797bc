package shared

import "fmt"

// TrickRule selects who takes a trick made only of wild cards.
type TrickRule int

const (
	// WildTrickToLeader gives an all-wild trick to the first card played.
	WildTrickToLeader TrickRule = iota
	// WildTrickToLast gives an all-wild trick to the last card played.
	WildTrickToLast
)

func (r TrickRule) String() string {
	switch r {
	case WildTrickToLeader:
		return "leader"
	case WildTrickToLast:
		return "last"
	default:
		return fmt.Sprintf("TrickRule(%d)", int(r))
	}
}

// ParseTrickRule maps "leader" or "last" to a TrickRule.
func ParseTrickRule(name string) (TrickRule, error) {
	switch name {
	case "leader", "":
		return WildTrickToLeader, nil
	case "last":
		return WildTrickToLast, nil
	default:
		return WildTrickToLeader, fmt.Errorf("unknown trick rule %q", name)
	}
}

// DemandedColor returns the color of the first non-wild card, or None when
// every card is wild (or there are no cards).
func DemandedColor(cards []Card) Color {
	for _, card := range cards {
		if !card.IsWild() {
			return card.Color
		}
	}
	return None
}

// EvaluateTrick returns the position within cards of the card that takes the
// trick: the highest rank of the demanded color. Wild cards only win when the
// whole trick is wild, and then rule decides. Panics on an empty trick.
func EvaluateTrick(cards []Card, rule TrickRule) int {
	if len(cards) == 0 {
		panic("shared: cannot evaluate an empty trick")
	}

	demanded := DemandedColor(cards)
	if demanded == None {
		if rule == WildTrickToLast {
			return len(cards) - 1
		}
		return 0
	}

	winner := -1
	for i, card := range cards {
		if card.Color != demanded {
			continue
		}
		if winner == -1 || card.Rank > cards[winner].Rank {
			winner = i
		}
	}
	return winner
}

// Trick represents one round of plays, starting with the leader.
type Trick struct {
	Leader int    `json:"leader"` // Player who played Cards[0]
	Cards  []Card `json:"cards"`
}

// Position returns the position in the trick of the card that wins it.
func (t Trick) Position(rule TrickRule) int {
	return EvaluateTrick(t.Cards, rule)
}

// Winner returns the absolute id of the player who takes the trick, assuming
// one card per player in seat order.
func (t Trick) Winner(rule TrickRule) int {
	return (t.Leader + t.Position(rule)) % len(t.Cards)
}
