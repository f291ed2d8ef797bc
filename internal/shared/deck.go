package shared

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// DeckSize is the number of cards in a full Witches deck.
const DeckSize = colorCount*MaxRank + wildCount

const (
	colorCount = 4
	wildCount  = 4
)

// ErrInvalidPlayerCount is returned when a deck cannot be split evenly.
var ErrInvalidPlayerCount = errors.New("invalid player count")

// Deck represents a collection of cards.
type Deck struct {
	Cards []Card
}

// NewDeck creates the full 60-card deck in canonical order: every color with
// ranks 1 to 14, followed by the four wild cards.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, color := range Colors {
		for rank := MinRank; rank <= MaxRank; rank++ {
			cards = append(cards, Card{Color: color, Rank: rank})
		}
	}
	for i := 0; i < wildCount; i++ {
		cards = append(cards, Card{Color: None, Rank: 0})
	}
	return &Deck{Cards: cards}
}

// Shuffle randomizes the order of cards in the deck using r.
func (d *Deck) Shuffle(r *rand.Rand) {
	r.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// ValidatePlayerCount checks that players is between 2 and 6 and divides the deck.
func ValidatePlayerCount(players int) error {
	if players < 2 || players > 6 {
		return fmt.Errorf("%w: %d is not between 2 and 6", ErrInvalidPlayerCount, players)
	}
	if DeckSize%players != 0 {
		return fmt.Errorf("%w: %d cards cannot be split between %d players", ErrInvalidPlayerCount, DeckSize, players)
	}
	return nil
}

// Deal splits the deck into equal contiguous hands, one per player, keeping
// the current card order. The deck keeps its cards for the next shuffle.
func (d *Deck) Deal(players int) ([]Hand, error) {
	if err := ValidatePlayerCount(players); err != nil {
		return nil, err
	}
	if len(d.Cards) != DeckSize {
		return nil, fmt.Errorf("deck holds %d cards, want %d", len(d.Cards), DeckSize)
	}

	perPlayer := len(d.Cards) / players
	dealt := make([]Hand, players)
	for i := 0; i < players; i++ {
		start := i * perPlayer
		// Copy so that playing from a hand never touches the deck.
		hand := make(Hand, perPlayer)
		copy(hand, d.Cards[start:start+perPlayer])
		dealt[i] = hand
	}
	return dealt, nil
}
