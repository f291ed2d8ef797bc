package shell

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"witches-game/internal/game"
	"witches-game/internal/protocol"
	"witches-game/internal/render"

	"go.uber.org/zap"
)

// Gym drives a game for an external agent over JSON lines: one
// protocol.Message per input line, one reply per message.
type Gym struct {
	game   *game.Game
	board  *game.Scoreboard
	in     *bufio.Scanner
	out    io.Writer
	large  bool
	logger *zap.Logger
}

// NewGym creates a gym driver for the agent seat of g, reading from in and
// replying on out.
func NewGym(g *game.Game, in io.Reader, out io.Writer, large bool, logger *zap.Logger) (*Gym, error) {
	if g.Agent() == game.NoAgent {
		return nil, errNoAgent
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gym{
		game:   g,
		board:  game.NewScoreboard(g.Players()),
		in:     bufio.NewScanner(in),
		out:    out,
		large:  large,
		logger: logger.Named("gym"),
	}, nil
}

// Run processes messages until the input ends.
func (s *Gym) Run() error {
	s.logger.Info("gym started", zap.String("round_id", s.game.ID), zap.Int("agent", s.game.Agent()))
	for s.in.Scan() {
		line := s.in.Bytes()
		if len(line) == 0 {
			continue
		}

		var msg protocol.Message
		if err := json.Unmarshal(line, &msg); err != nil {
			s.logger.Warn("invalid message", zap.Error(err))
			if err := s.sendError("Invalid message format."); err != nil {
				return err
			}
			continue
		}
		if msg.Type != protocol.TypePing {
			s.logger.Debug("received message", zap.String("type", msg.Type))
		}
		if err := s.handleMessage(msg); err != nil {
			return err
		}
	}
	return s.in.Err()
}

// handleMessage replies to one message. Only write errors are returned.
func (s *Gym) handleMessage(msg protocol.Message) error {
	agent := s.game.Agent()

	switch msg.Type {
	case protocol.TypeReset:
		return s.send(protocol.TypeObservation, protocol.ObservationPayload{Observation: s.game.Reset()})

	case protocol.TypeObserve:
		return s.send(protocol.TypeObservation, protocol.ObservationPayload{Observation: s.game.Observe(agent)})

	case protocol.TypeStep:
		var payload protocol.StepPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			s.logger.Warn("invalid step payload", zap.Error(err))
			return s.sendError("Invalid step message.")
		}
		return s.send(protocol.TypeStepResult, s.step(payload.Action))

	case protocol.TypeLegal:
		hand := s.game.Hand(agent)
		indices := s.game.LegalMoves(agent)
		payload := protocol.LegalMovesPayload{
			Player:   agent,
			Demanded: s.game.DemandedColor(),
			Indices:  indices,
		}
		for _, i := range indices {
			payload.Cards = append(payload.Cards, hand[i])
		}
		return s.send(protocol.TypeLegalMoves, payload)

	case protocol.TypeRender:
		return s.send(protocol.TypeRendered, protocol.RenderPayload{Text: render.Table(s.game, s.large)})

	case protocol.TypeScores:
		return s.send(protocol.TypeScoreboard, protocol.ScoreboardPayload{Scoreboard: s.board})

	case protocol.TypePing:
		return s.send(protocol.TypePong, nil)

	default:
		s.logger.Warn("unknown message type", zap.String("type", msg.Type))
		return s.sendError(fmt.Sprintf("Unknown message type %q.", msg.Type))
	}
}

// step plays action for the agent and records finished rounds on the scoreboard.
func (s *Gym) step(action int) protocol.StepResultPayload {
	agent := s.game.Agent()
	legal := s.game.CanPlay(agent, action)

	res := s.game.Step(action, agent)
	payload := protocol.StepResultPayload{StepResult: res}
	if res.Done && legal {
		payload.RoundScores = s.game.LastRoundScores()
		if err := s.board.Add(payload.RoundScores); err != nil {
			s.logger.Error("scoreboard update failed", zap.Error(err))
		}
	}
	return payload
}

func (s *Gym) send(msgType string, payload interface{}) error {
	raw, err := protocol.NewMessage(msgType, payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", msgType, err)
	}
	if _, err := fmt.Fprintf(s.out, "%s\n", raw); err != nil {
		return fmt.Errorf("write %s: %w", msgType, err)
	}
	return nil
}

func (s *Gym) sendError(message string) error {
	return s.send(protocol.TypeError, protocol.ErrorPayload{Message: message})
}
