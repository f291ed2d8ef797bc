package shared

// Hand holds the cards a player currently has, in deal order.
type Hand []Card

// HasColor reports whether the hand holds at least one card of color.
func (h Hand) HasColor(color Color) bool {
	for _, card := range h {
		if card.Color == color {
			return true
		}
	}
	return false
}

// IndicesOf returns the positions of all cards matching keep.
func (h Hand) IndicesOf(keep func(Card) bool) []int {
	var out []int
	for i, card := range h {
		if keep(card) {
			out = append(out, i)
		}
	}
	return out
}

// RemoveAt removes and returns the card at index i. The caller checks bounds.
func (h *Hand) RemoveAt(i int) Card {
	card := (*h)[i]
	*h = append((*h)[:i], (*h)[i+1:]...)
	return card
}

// Clone returns an independent copy of the hand.
func (h Hand) Clone() Hand {
	if h == nil {
		return nil
	}
	out := make(Hand, len(h))
	copy(out, h)
	return out
}
