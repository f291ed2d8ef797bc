package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"witches-game/internal/shared"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State represents the phase of the current round.
type State string

const (
	AwaitingPlay    State = "AwaitingPlay"    // Current player leads a new trick
	TrickInProgress State = "TrickInProgress" // Some cards of the trick are on the table
	RoundComplete   State = "RoundComplete"   // All 60 cards have been played
)

// NoAgent can be used as Params.Agent to let strategies play every seat.
const NoAgent = -1

// ErrIllegalMove is returned when a play breaks the rules.
var ErrIllegalMove = errors.New("illegal move")

const (
	DefaultRewardWrongCard   = -10.0
	DefaultRewardCorrectCard = 0.0
)

// Params configures a Game.
type Params struct {
	Players int              // Seats at the table, agent included
	Agent   int              // Seat driven from outside, or NoAgent
	Seed    uint64           // RNG seed; 0 picks one from the clock
	Rule    shared.TrickRule // Who takes an all-wild trick
	// Strategies per seat. Missing or nil entries play FirstLegal.
	Strategies []Strategy

	RewardWrongCard   float64
	RewardCorrectCard float64

	Logger *zap.Logger
}

// Game is the round and turn state machine for one session. It is not safe
// for concurrent use.
type Game struct {
	ID      string // Changes with every round
	players int
	agent   int
	rule    shared.TrickRule
	rng     *rand.Rand

	deck       *shared.Deck
	hands      []shared.Hand
	played     []shared.Card
	tricks     [][]shared.Card
	current    int
	initial    int
	turnIndex  int
	lastTrick  *shared.Trick
	lastScores []int

	strategies        []Strategy
	rewardWrongCard   float64
	rewardCorrectCard float64
	log               *zap.Logger
}

// NewGame validates p, deals the first round and plays until it is the
// agent's turn.
func NewGame(p Params) (*Game, error) {
	if err := shared.ValidatePlayerCount(p.Players); err != nil {
		return nil, err
	}
	if p.Agent < NoAgent || p.Agent >= p.Players {
		return nil, fmt.Errorf("agent seat %d outside 0..%d", p.Agent, p.Players-1)
	}
	if len(p.Strategies) > p.Players {
		return nil, fmt.Errorf("%d strategies for %d players", len(p.Strategies), p.Players)
	}

	seed := p.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	strategies := make([]Strategy, p.Players)
	for i := range strategies {
		if i < len(p.Strategies) && p.Strategies[i] != nil {
			strategies[i] = p.Strategies[i]
		} else {
			strategies[i] = FirstLegal{}
		}
	}

	g := &Game{
		players:           p.Players,
		agent:             p.Agent,
		rule:              p.Rule,
		rng:               rand.New(rand.NewPCG(seed, seed>>1|1)),
		deck:              shared.NewDeck(),
		strategies:        strategies,
		rewardWrongCard:   p.RewardWrongCard,
		rewardCorrectCard: p.RewardCorrectCard,
		log:               logger.Named("game"),
	}
	g.log.Debug("game created",
		zap.Int("players", p.Players),
		zap.Int("agent", p.Agent),
		zap.Uint64("seed", seed),
		zap.Stringer("rule", p.Rule),
	)
	g.Reset()
	return g, nil
}

// Reset starts a new round: reshuffle, redeal, pick a random leader and let
// the other seats play until it is the agent's turn.
func (g *Game) Reset() Observation {
	g.deck.Shuffle(g.rng)
	hands, err := g.deck.Deal(g.players)
	if err != nil {
		// The player count was validated in NewGame.
		panic(err)
	}

	g.ID = uuid.NewString()
	g.hands = hands
	g.played = make([]shared.Card, 0, shared.DeckSize)
	g.tricks = make([][]shared.Card, g.players)
	g.initial = g.rng.IntN(g.players)
	g.current = g.initial
	g.turnIndex = 0
	g.lastTrick = nil

	g.log.Debug("round started", zap.String("round_id", g.ID), zap.Int("leader", g.initial))

	g.RunUntil(g.agent)
	return g.Observe(g.agent)
}

// Players returns the number of seats.
func (g *Game) Players() int { return g.players }

// Agent returns the seat driven from outside, or NoAgent.
func (g *Game) Agent() int { return g.agent }

// Rule returns the all-wild trick rule in use.
func (g *Game) Rule() shared.TrickRule { return g.rule }

// Current returns the seat whose turn it is.
func (g *Game) Current() int { return g.current }

// Leader returns the seat that led the current trick.
func (g *Game) Leader() int { return g.initial }

// TurnIndex returns the number of completed tricks this round.
func (g *Game) TurnIndex() int { return g.turnIndex }

// Hand returns a copy of the cards held by pid, nil for seats outside the table.
func (g *Game) Hand(pid int) shared.Hand {
	if !g.seated(pid) {
		return nil
	}
	return g.hands[pid].Clone()
}

func (g *Game) seated(pid int) bool { return pid >= 0 && pid < g.players }

// Hands returns a copy of every hand, indexed by seat.
func (g *Game) Hands() []shared.Hand {
	out := make([]shared.Hand, len(g.hands))
	for i, h := range g.hands {
		out[i] = h.Clone()
	}
	return out
}

// Played returns every card played this round, in order.
func (g *Game) Played() []shared.Card {
	return append([]shared.Card(nil), g.played...)
}

// PlayerTricks returns the cards pid has taken this round.
func (g *Game) PlayerTricks(pid int) []shared.Card {
	if !g.seated(pid) {
		return nil
	}
	return append([]shared.Card(nil), g.tricks[pid]...)
}

// LastTrick returns the most recently resolved trick of this round, if any.
func (g *Game) LastTrick() (shared.Trick, bool) {
	if g.lastTrick == nil {
		return shared.Trick{}, false
	}
	return *g.lastTrick, true
}

// Table returns the cards of the trick in progress.
func (g *Game) Table() []shared.Card {
	return append([]shared.Card(nil), g.trickCards(g.turnIndex)...)
}

func (g *Game) trickCards(turn int) []shared.Card {
	start := turn * g.players
	if start >= len(g.played) {
		return nil
	}
	end := min(start+g.players, len(g.played))
	return g.played[start:end]
}

// DemandedColor returns the color that must be followed, None if any card goes.
func (g *Game) DemandedColor() shared.Color {
	return shared.DemandedColor(g.trickCards(g.turnIndex))
}

// Done reports whether all cards of the round have been played.
func (g *Game) Done() bool { return len(g.played) >= shared.DeckSize }

// TrickDone reports whether the last play completed a trick.
func (g *Game) TrickDone() bool {
	return len(g.played) > 0 && len(g.played)%g.players == 0
}

// State returns the phase of the round.
func (g *Game) State() State {
	switch {
	case g.Done():
		return RoundComplete
	case len(g.played)%g.players == 0:
		return AwaitingPlay
	default:
		return TrickInProgress
	}
}

// LegalMoves returns the hand indices pid may play now. Wild cards are always
// playable; otherwise the demanded color must be followed when held.
func (g *Game) LegalMoves(pid int) []int {
	if !g.seated(pid) {
		return nil
	}
	hand := g.hands[pid]
	demanded := g.DemandedColor()
	if demanded == shared.None || !hand.HasColor(demanded) {
		return hand.IndicesOf(func(shared.Card) bool { return true })
	}
	return hand.IndicesOf(func(c shared.Card) bool {
		return c.IsWild() || c.Color == demanded
	})
}

// CanPlay reports whether pid may play the card at idx right now.
func (g *Game) CanPlay(pid, idx int) bool {
	return g.checkPlay(pid, idx) == nil
}

func (g *Game) checkPlay(pid, idx int) error {
	if g.Done() {
		return fmt.Errorf("%w: round %s is over", ErrIllegalMove, g.ID)
	}
	if pid != g.current {
		return fmt.Errorf("%w: player %d played out of turn (current: %d)", ErrIllegalMove, pid, g.current)
	}
	if idx < 0 || idx >= len(g.hands[pid]) {
		return fmt.Errorf("%w: card index %d outside hand of %d", ErrIllegalMove, idx, len(g.hands[pid]))
	}
	for _, legal := range g.LegalMoves(pid) {
		if legal == idx {
			return nil
		}
	}
	return fmt.Errorf("%w: %v does not follow %v", ErrIllegalMove, g.hands[pid][idx], g.DemandedColor())
}

// Play plays the card at idx from pid's hand and resolves the trick once
// every seat has played.
func (g *Game) Play(pid, idx int) error {
	if err := g.checkPlay(pid, idx); err != nil {
		g.log.Debug("illegal card", zap.Int("player", pid), zap.Int("index", idx), zap.Error(err))
		return err
	}

	card := g.hands[pid].RemoveAt(idx)
	g.played = append(g.played, card)
	g.current = (g.current + 1) % g.players
	g.log.Debug("card played",
		zap.String("round_id", g.ID),
		zap.Int("player", pid),
		zap.Stringer("card", card),
	)

	if g.TrickDone() {
		g.endTrick()
	}
	return nil
}

// endTrick hands the completed trick to its winner, who leads the next one.
func (g *Game) endTrick() {
	cards := g.trickCards(g.turnIndex)
	if len(cards) != g.players {
		panic(fmt.Sprintf("game: trick %d has %d cards, want %d", g.turnIndex, len(cards), g.players))
	}
	trick := shared.Trick{Leader: g.initial, Cards: append([]shared.Card(nil), cards...)}
	winner := trick.Winner(g.rule)

	g.tricks[winner] = append(g.tricks[winner], trick.Cards...)
	g.initial = winner
	g.current = winner
	g.turnIndex++
	g.lastTrick = &trick

	g.log.Debug("trick taken",
		zap.String("round_id", g.ID),
		zap.Int("turn", g.turnIndex),
		zap.Int("winner", winner),
		zap.Stringers("cards", trick.Cards),
	)

	if g.Done() {
		g.endRound()
	}
}

func (g *Game) endRound() {
	g.lastScores = g.Scores()
	g.log.Debug("round over", zap.String("round_id", g.ID), zap.Ints("scores", g.lastScores))
}

// Scores returns every seat's score for the cards taken so far this round.
func (g *Game) Scores() []int {
	out := make([]int, g.players)
	for pid, cards := range g.tricks {
		out[pid] = shared.Score(cards)
	}
	return out
}

// LastRoundScores returns the scores of the most recently finished round, or
// nil if no round has finished yet.
func (g *Game) LastRoundScores() []int {
	return append([]int(nil), g.lastScores...)
}

// RunUntil lets the strategies play every other seat until it is pid's turn
// or the round is over. Pass NoAgent to finish the round.
func (g *Game) RunUntil(pid int) {
	for g.current != pid && !g.Done() {
		seat := g.current
		hand := g.hands[seat]
		legal := g.LegalMoves(seat)

		idx := g.strategies[seat].Choose(hand.Clone(), legal)
		if !g.CanPlay(seat, idx) {
			g.log.Debug("strategy chose an unplayable card, using first legal",
				zap.Int("player", seat), zap.Int("index", idx))
			idx = FirstLegal{}.Choose(hand, legal)
		}
		g.log.Debug("auto play",
			zap.Int("player", seat),
			zap.Stringer("demanded", g.DemandedColor()),
			zap.Int("index", idx),
		)
		if err := g.Play(seat, idx); err != nil {
			g.log.Warn("auto play stopped", zap.Int("player", seat), zap.Error(err))
			return
		}
	}
}
