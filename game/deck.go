package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var ErrInsufficientCards = errors.New("insufficient cards in deck")

// Deck is an ordered, depletable pile of the 52 distinct cards.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck returns a full deck in canonical order using rng for shuffling.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	d.Reset()
	return d
}

// FullDeck returns the 52 cards in canonical order.
func FullDeck() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return cards
}

// Reset restores all 52 cards in canonical order.
func (d *Deck) Reset() {
	d.cards = FullDeck()
}

// Shuffle permutes the remaining cards uniformly at random.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes n cards from the top (end) of the deck.
func (d *Deck) Deal(n int) (Hand, error) {
	if n < 0 || n > len(d.cards) {
		return nil, fmt.Errorf("cannot deal %d cards, %d remaining: %w", n, len(d.cards), ErrInsufficientCards)
	}

	dealt := make(Hand, 0, n)
	for i := 0; i < n; i++ {
		last := len(d.cards) - 1
		dealt = append(dealt, d.cards[last])
		d.cards = d.cards[:last]
	}
	return dealt, nil
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
