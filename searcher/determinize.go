package searcher

import (
	"errors"
	"fmt"
	"hearts/game"
	"math/rand/v2"
)

var ErrInconsistentObservation = errors.New("inconsistent observation")

// Observation is everything the deciding player knows when asked for a card.
type Observation struct {
	Seat   int
	Hand   game.Hand
	Trick  game.Trick
	Leader int                  // Seat that led the current trick
	Played []game.Card          // Cards played this round, including the current trick
	Points [game.NumPlayers]int // Penalty points taken this round
}

// Legal returns the deciding player's legal cards.
func (o Observation) Legal() game.Hand {
	return game.LegalPlays(o.Hand, o.Trick)
}

// handSizes returns how many cards every seat still holds.
func (o Observation) handSizes() [game.NumPlayers]int {
	var sizes [game.NumPlayers]int
	for seat := range sizes {
		sizes[seat] = len(o.Hand)
	}
	// Seats that already played into the current trick hold one card fewer
	for i := range o.Trick {
		sizes[(o.Leader+i)%game.NumPlayers]--
	}
	return sizes
}

// unseen returns the cards neither held by the deciding player nor played.
func (o Observation) unseen() []game.Card {
	known := make(map[game.Card]bool, len(o.Hand)+len(o.Played))
	for _, c := range o.Hand {
		known[c] = true
	}
	for _, c := range o.Played {
		known[c] = true
	}

	unseen := make([]game.Card, 0, game.DeckSize-len(known))
	for _, c := range game.FullDeck() {
		if !known[c] {
			unseen = append(unseen, c)
		}
	}
	return unseen
}

// Validate checks that the observation describes a reachable position.
func (o Observation) Validate() error {
	if o.Seat < 0 || o.Seat >= game.NumPlayers {
		return fmt.Errorf("seat %d out of range: %w", o.Seat, ErrInconsistentObservation)
	}
	if len(o.Hand) == 0 {
		return fmt.Errorf("empty hand: %w", ErrInconsistentObservation)
	}
	if len(o.Trick) >= game.NumPlayers {
		return fmt.Errorf("trick already holds %d cards: %w", len(o.Trick), ErrInconsistentObservation)
	}
	if (o.Leader+len(o.Trick))%game.NumPlayers != o.Seat {
		return fmt.Errorf("seat %d is not to move after leader %d and %d cards: %w",
			o.Seat, o.Leader, len(o.Trick), ErrInconsistentObservation)
	}

	played := make(map[game.Card]bool, len(o.Played))
	for _, c := range o.Played {
		if played[c] {
			return fmt.Errorf("card %s played twice: %w", c, ErrInconsistentObservation)
		}
		played[c] = true
	}
	for _, c := range o.Trick {
		if !played[c] {
			return fmt.Errorf("trick card %s missing from played cards: %w", c, ErrInconsistentObservation)
		}
	}
	for _, c := range o.Hand {
		if played[c] {
			return fmt.Errorf("held card %s already played: %w", c, ErrInconsistentObservation)
		}
	}

	expected := 0
	for seat, size := range o.handSizes() {
		if seat != o.Seat {
			expected += size
		}
	}
	if unseen := len(o.unseen()); unseen != expected {
		return fmt.Errorf("%d unseen cards for %d opponent slots: %w", unseen, expected, ErrInconsistentObservation)
	}
	return nil
}

// determinize deals the unseen cards uniformly at random to the opponents,
// respecting the number of cards each opponent still holds. The deciding
// player keeps its real hand. A new hypothesis is sampled on every call.
func determinize(o Observation, rng *rand.Rand) game.State {
	unseen := o.unseen()
	rng.Shuffle(len(unseen), func(i, j int) {
		unseen[i], unseen[j] = unseen[j], unseen[i]
	})

	state := game.State{
		Trick:  o.Trick.Clone(),
		Leader: o.Leader,
		Points: o.Points,
		Tricks: (len(o.Played) - len(o.Trick)) / game.NumPlayers,
	}
	next := 0
	for seat, size := range o.handSizes() {
		if seat == o.Seat {
			state.Hands[seat] = o.Hand.Clone()
			continue
		}
		state.Hands[seat] = game.Hand(unseen[next : next+size : next+size]).Clone()
		next += size
	}
	return state
}
