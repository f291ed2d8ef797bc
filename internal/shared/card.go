package shared

import "fmt"

// Color represents the color of a card. None marks the four wild cards.
type Color int

const (
	None   Color = iota // Wild cards, always rank 0
	Blue
	Green
	Red
	Yellow
)

// Colors lists the real colors in deck order.
var Colors = []Color{Blue, Green, Red, Yellow}

var colorNames = map[Color]string{
	None:   "NONE",
	Blue:   "BLUE",
	Green:  "GREEN",
	Red:    "RED",
	Yellow: "YELLOW",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// ParseColor returns the color for one of the names produced by Color.String.
func ParseColor(name string) (Color, error) {
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return None, fmt.Errorf("unknown color %q", name)
}

// MarshalText encodes the color by name, so JSON carries "RED" and not 3.
func (c Color) MarshalText() ([]byte, error) {
	name, ok := colorNames[c]
	if !ok {
		return nil, fmt.Errorf("unknown color %d", int(c))
	}
	return []byte(name), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

const (
	MinRank = 1
	MaxRank = 14
)

// Card represents a single card. Cards are compared by value.
type Card struct {
	Color Color `json:"color"`
	Rank  int   `json:"rank"`
}

// IsWild reports whether the card is one of the colorless jokers.
func (c Card) IsWild() bool { return c.Color == None }

func (c Card) String() string {
	return fmt.Sprintf("%s %02d", c.Color, c.Rank)
}
