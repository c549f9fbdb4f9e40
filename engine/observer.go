package engine

import (
	"hearts/game"

	"github.com/rs/zerolog/log"
)

// PlayEvent describes a single card play. Every slice is a copy owned by the
// receiving observer.
type PlayEvent struct {
	Round       int
	Player      string
	Seat        int
	Hand        game.Hand // Hand before the play
	Legal       game.Hand // Cards the player was allowed to play
	Card        game.Card
	Trick       game.Trick  // Trick so far, including Card
	Played      []game.Card // Cards played this round, including Card
	Scores      [game.NumPlayers]int
	RoundScores [game.NumPlayers]int
}

// Observer is notified after every legal play. A failing observer never
// interrupts the game.
type Observer interface {
	OnCardPlayed(event PlayEvent) error
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(event PlayEvent) error

func (f ObserverFunc) OnCardPlayed(event PlayEvent) error {
	return f(event)
}

func (e *Engine) notify(seat int, hand, legal game.Hand, card game.Card) {
	for _, o := range e.observers {
		event := PlayEvent{
			Round:       e.rounds + 1,
			Player:      e.players[seat].Name(),
			Seat:        seat,
			Hand:        hand.Clone(),
			Legal:       legal.Clone(),
			Card:        card,
			Trick:       e.trick.Clone(),
			Played:      append([]game.Card{}, e.played...),
			Scores:      e.scores,
			RoundScores: e.roundScores,
		}
		deliver(o, event)
	}
}

func deliver(o Observer, event PlayEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Msgf("observer panicked on %s by %s: %v", event.Card, event.Player, r)
		}
	}()
	if err := o.OnCardPlayed(event); err != nil {
		log.Warn().Err(err).Msgf("observer failed on %s by %s", event.Card, event.Player)
	}
}
