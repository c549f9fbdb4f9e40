package engine

import (
	"errors"
	"fmt"
	"hearts/game"
	"hearts/player"
	"math/rand/v2"

	"github.com/rs/zerolog/log"
)

var (
	ErrIllegalPlay    = errors.New("illegal play")
	ErrHandNotUpdated = errors.New("player did not remove the played card from its hand")
)

type Phase int

const (
	Dealing Phase = iota
	PlayingTrick
	RoundScoring
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Dealing:
		return "dealing"
	case PlayingTrick:
		return "playing trick"
	case RoundScoring:
		return "round scoring"
	case GameOver:
		return "game over"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

type Option func(e *Engine)

// WithMaxPoints sets the cumulative score that ends the game.
func WithMaxPoints(points int) Option {
	return func(e *Engine) {
		if points > 0 {
			e.maxPoints = points
		}
	}
}

func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observers = append(e.observers, o)
		}
	}
}

// Engine drives a game of Hearts between four players, one trick at a time.
type Engine struct {
	players   []player.Player
	deck      *game.Deck
	maxPoints int
	observers []Observer

	phase       Phase
	rounds      int
	tricks      int // Completed tricks this round
	leader      int
	trick       game.Trick
	played      []game.Card
	scores      [game.NumPlayers]int
	roundScores [game.NumPlayers]int
}

// New seats the players in order. The deck is shuffled with rng, so a fixed
// seed and deterministic players replay the same game.
func New(players []player.Player, rng *rand.Rand, options ...Option) (*Engine, error) {
	if len(players) != game.NumPlayers {
		return nil, fmt.Errorf("need exactly %d players, got %d", game.NumPlayers, len(players))
	}
	if rng == nil {
		return nil, errors.New("nil random source")
	}

	e := &Engine{ // Default values
		players:   append([]player.Player{}, players...),
		deck:      game.NewDeck(rng),
		maxPoints: game.DefaultMaxPoints,
		phase:     Dealing,
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

func (e *Engine) Phase() Phase {
	return e.phase
}

func (e *Engine) Rounds() int {
	return e.rounds
}

func (e *Engine) Scores() [game.NumPlayers]int {
	return e.scores
}

func (e *Engine) RoundScores() [game.NumPlayers]int {
	return e.roundScores
}

// Step advances the game by one transition: a deal, a whole trick, or the
// scoring of a round. Stepping a finished game does nothing.
func (e *Engine) Step() error {
	switch e.phase {
	case Dealing:
		return e.deal()
	case PlayingTrick:
		return e.playTrick()
	case RoundScoring:
		return e.scoreRound()
	}
	return nil
}

// Run steps until the game is over and returns the final standings. Every round
// hands out game.TotalPoints, so the highest score grows by at least a quarter of
// that per round and any threshold is eventually reached.
func (e *Engine) Run() (Result, error) {
	for e.phase != GameOver {
		if err := e.Step(); err != nil {
			return Result{}, err
		}
	}
	return e.Result(), nil
}

func (e *Engine) deal() error {
	e.deck.Reset()
	e.deck.Shuffle()
	for seat, p := range e.players {
		hand, err := e.deck.Deal(game.HandSize)
		if err != nil {
			return fmt.Errorf("cannot deal to seat %d: %w", seat, err)
		}
		p.Deal(seat, hand)
	}

	e.tricks = 0
	e.trick = nil
	e.played = e.played[:0]
	e.roundScores = [game.NumPlayers]int{}
	e.phase = PlayingTrick
	return nil
}

func (e *Engine) playTrick() error {
	for len(e.trick) < game.NumPlayers {
		if err := e.playTurn(); err != nil {
			return err
		}
	}

	winner, points := game.ResolveTrick(e.trick, e.leader)
	e.roundScores[winner] += points
	for _, p := range e.players {
		if t, ok := p.(player.Tracker); ok {
			t.TrickWon(winner, points)
		}
	}

	e.leader = winner
	e.trick = nil
	e.tricks++
	if e.tricks == game.NumTricks {
		e.phase = RoundScoring
	}
	return nil
}

func (e *Engine) playTurn() error {
	seat := e.leader
	for range e.trick {
		seat = game.NextSeat(seat)
	}
	p := e.players[seat]

	hand := p.Hand().Clone()
	legal := game.LegalPlays(hand, e.trick)
	card := p.PlayCard(e.trick.Clone())
	if !legal.Contains(card) {
		return fmt.Errorf("%s played %s, legal cards are %v: %w", p.Name(), card, legal, ErrIllegalPlay)
	}
	if after := p.Hand(); len(after) != len(hand)-1 || after.Contains(card) {
		return fmt.Errorf("%s still holds %s: %w", p.Name(), card, ErrHandNotUpdated)
	}

	e.trick = append(e.trick, card)
	e.played = append(e.played, card)
	e.notify(seat, hand, legal, card)
	for _, other := range e.players {
		if t, ok := other.(player.Tracker); ok {
			t.CardPlayed(seat, card)
		}
	}
	return nil
}

func (e *Engine) scoreRound() error {
	for seat, points := range e.roundScores {
		e.scores[seat] += points
	}
	e.rounds++
	log.Debug().Msgf("round %d over: round scores %v, scores %v", e.rounds, e.roundScores, e.scores)

	for _, score := range e.scores {
		if score >= e.maxPoints {
			e.phase = GameOver
			log.Info().Msgf("game over after %d rounds with scores %v", e.rounds, e.scores)
			return nil
		}
	}
	e.phase = Dealing
	return nil
}
