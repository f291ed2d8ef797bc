package shared

const maxRedPoints = 15

// Score computes the round score for the cards a player took. Red cards
// count one point each, except the elevens and the green twelve. The red
// eleven doubles the red count, which is then capped at 15. The green eleven
// adds 5 and the green twelve adds 10 unless the blue eleven was taken too.
// The yellow eleven subtracts 5.
func Score(cards []Card) int {
	taken := make(map[Card]bool, len(cards))
	for _, card := range cards {
		taken[card] = true
	}
	green11 := taken[Card{Color: Green, Rank: 11}]
	green12 := taken[Card{Color: Green, Rank: 12}]
	red11 := taken[Card{Color: Red, Rank: 11}]
	yellow11 := taken[Card{Color: Yellow, Rank: 11}]
	blue11 := taken[Card{Color: Blue, Rank: 11}]

	reds := 0
	for _, card := range cards {
		if card.Rank == 11 || (card.Color == Green && card.Rank == 12) {
			continue
		}
		if card.Color == Red {
			reds++
		}
	}

	if red11 {
		reds *= 2
	}
	if reds > maxRedPoints {
		reds = maxRedPoints
	}

	points := reds
	if green11 && !blue11 {
		points += 5
	}
	if green12 && !blue11 {
		points += 10
	}
	if yellow11 {
		points -= 5
	}
	return points
}
