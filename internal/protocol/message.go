package protocol

import (
	"encoding/json"

	"witches-game/internal/game"
	"witches-game/internal/shared"
)

// Message represents one JSON line exchanged with the gym driver.
type Message struct {
	Type    string          `json:"type"`              // e.g. "step", "observation"
	Payload json.RawMessage `json:"payload,omitempty"` // Raw JSON payload, depends on Type
}

// Message types sent by the agent.
const (
	TypeReset   = "reset"
	TypeObserve = "observe"
	TypeStep    = "step"
	TypeLegal   = "legal"
	TypeRender  = "render"
	TypeScores  = "scores"
	TypePing    = "ping"
)

// Message types sent back to the agent.
const (
	TypeObservation = "observation"
	TypeStepResult  = "step_result"
	TypeLegalMoves  = "legal_moves"
	TypeRendered    = "render"
	TypeScoreboard  = "scoreboard"
	TypePong        = "pong"
	TypeError       = "error"
)

// --- Agent -> Driver Payload Structs ---

type StepPayload struct {
	Action int `json:"action"`
}

// --- Driver -> Agent Payload Structs ---

type ObservationPayload struct {
	Observation game.Observation `json:"observation"`
}

type StepResultPayload struct {
	game.StepResult
	// Scores of the round that just ended; only set when Done follows a full round.
	RoundScores []int `json:"round_scores,omitempty"`
}

type LegalMovesPayload struct {
	Player   int           `json:"player"`
	Demanded shared.Color  `json:"demanded"`
	Indices  []int         `json:"indices"`
	Cards    []shared.Card `json:"cards"`
}

type RenderPayload struct {
	Text string `json:"text"`
}

type ScoreboardPayload struct {
	Scoreboard *game.Scoreboard `json:"scoreboard"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// NewMessage creates a JSON encoded message.
func NewMessage(msgType string, payload interface{}) ([]byte, error) {
	if payload == nil {
		return json.Marshal(Message{Type: msgType})
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Message{Type: msgType, Payload: payloadBytes})
}
