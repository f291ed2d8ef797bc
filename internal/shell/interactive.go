// Package shell contains the consumers that drive a game from a terminal or
// from an external agent over standard input and output.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"witches-game/internal/game"
	"witches-game/internal/render"

	"go.uber.org/zap"
)

var errNoAgent = errors.New("game has no agent seat to drive")

// Interactive lets a human play the agent seat by typing card indices.
type Interactive struct {
	game   *game.Game
	board  *game.Scoreboard
	in     *bufio.Scanner
	out    io.Writer
	large  bool
	logger *zap.Logger
}

// NewInteractive creates an interactive shell for the agent seat of g.
func NewInteractive(g *game.Game, in io.Reader, out io.Writer, large bool, logger *zap.Logger) (*Interactive, error) {
	if g.Agent() == game.NoAgent {
		return nil, errNoAgent
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactive{
		game:   g,
		board:  game.NewScoreboard(g.Players()),
		in:     bufio.NewScanner(in),
		out:    out,
		large:  large,
		logger: logger.Named("shell"),
	}, nil
}

// Scoreboard returns the totals of the rounds finished in this session.
func (s *Interactive) Scoreboard() *game.Scoreboard { return s.board }

// Run plays until the user quits or the input ends.
func (s *Interactive) Run() error {
	fmt.Fprintln(s.out, ">>> play a card by typing its (zero-based) index when asked for an action!")
	fmt.Fprintln(s.out, ">>> other commands: render, legal, scores, quit")

	for {
		s.printTurn()
		line, ok := s.prompt("Choose an action: ")
		if !ok {
			return s.in.Err()
		}

		switch line {
		case "quit", "q":
			return nil
		case "render":
			fmt.Fprintln(s.out, render.Table(s.game, s.large))
			continue
		case "legal":
			fmt.Fprintf(s.out, "Playable: %v\n", s.game.LegalMoves(s.game.Agent()))
			continue
		case "scores":
			fmt.Fprintln(s.out, render.Scoreboard(s.board, s.game.Agent()))
			continue
		}

		action, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(s.out, "%q is not a card index\n", line)
			continue
		}

		if !s.play(action) {
			return nil
		}
	}
}

// play performs one step and returns false once the user stops playing.
func (s *Interactive) play(action int) bool {
	agent := s.game.Agent()
	legal := s.game.CanPlay(agent, action)

	res := s.game.Step(action, agent)
	if !res.Done {
		return true
	}

	fmt.Fprintln(s.out, "Game Over:")
	if !legal {
		fmt.Fprintln(s.out, "Illegal card, the round was dealt again.")
	} else if scores := s.game.LastRoundScores(); scores != nil {
		if err := s.board.Add(scores); err != nil {
			s.logger.Error("scoreboard update failed", zap.Error(err))
		}
		fmt.Fprintln(s.out, render.Scoreboard(s.board, agent))
	}
	fmt.Fprintf(s.out, "Reward: %v\n", res.Reward)

	answer, ok := s.prompt("Continue playing?? Type 'yes' or 'no': ")
	return ok && answer != "no"
}

func (s *Interactive) printTurn() {
	agent := s.game.Agent()
	fmt.Fprintln(s.out, "======== YOUR TURN ========")
	fmt.Fprintln(s.out, "Current Table:")
	fmt.Fprintln(s.out, render.Cards(s.game.Table(), s.large))
	fmt.Fprintln(s.out, "Your Hand:")
	hand := s.game.Hand(agent)
	fmt.Fprintln(s.out, render.Cards(hand, s.large))
	fmt.Fprintln(s.out, render.Indices(len(hand), s.large))
}

func (s *Interactive) prompt(question string) (string, bool) {
	fmt.Fprint(s.out, question)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}
