package shared

import (
	"encoding/json"
	"testing"
)

func TestColorText(t *testing.T) {
	for _, c := range append([]Color{None}, Colors...) {
		text, err := c.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", int(c), err)
		}
		if string(text) != c.String() {
			t.Errorf("MarshalText(%d) = %s, want %s", int(c), text, c)
		}
		var back Color
		if err := back.UnmarshalText(text); err != nil || back != c {
			t.Errorf("UnmarshalText(%s) = %v, %v", text, back, err)
		}
	}

	if _, err := Color(9).MarshalText(); err == nil {
		t.Errorf("expected error for unknown color")
	}
	var c Color
	if err := c.UnmarshalText([]byte("PURPLE")); err == nil {
		t.Errorf("expected error for PURPLE")
	}
}

func TestCardJSON(t *testing.T) {
	raw, err := json.Marshal(Card{Color: Red, Rank: 11})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(raw) != `{"color":"RED","rank":11}` {
		t.Errorf("got %s", raw)
	}

	var card Card
	if err := json.Unmarshal([]byte(`{"color":"NONE","rank":0}`), &card); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !card.IsWild() {
		t.Errorf("decoded %v, want a wild card", card)
	}
}
