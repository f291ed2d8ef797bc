package protocol

import (
	"encoding/json"
	"testing"
)

func TestNewMessage(t *testing.T) {
	raw, err := NewMessage(TypePong, nil)
	if err != nil {
		t.Fatalf("NewMessage: %v", err)
	}
	if string(raw) != `{"type":"pong"}` {
		t.Errorf("nil payload encoded as %s", raw)
	}

	raw, err = NewMessage(TypeStep, StepPayload{Action: 3})
	if err != nil {
		t.Fatalf("NewMessage: %v", err)
	}
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	var step StepPayload
	if err := json.Unmarshal(msg.Payload, &step); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if msg.Type != TypeStep || step.Action != 3 {
		t.Errorf("got %s %+v", msg.Type, step)
	}
}
