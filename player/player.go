package player

import (
	"fmt"
	"hearts/game"
)

// Player is the capability every decision-making agent implements.
type Player interface {
	Name() string
	// Deal hands the player its seat and cards for a new round.
	Deal(seat int, hand game.Hand)
	// Hand returns the cards still held.
	Hand() game.Hand
	// PlayCard returns a card from game.LegalPlays(Hand(), trick) and removes it from the hand.
	PlayCard(trick game.Trick) game.Card
}

// Tracker is implemented by players that follow the public history of a round.
type Tracker interface {
	CardPlayed(seat int, card game.Card)
	TrickWon(seat int, points int)
}

// base holds the state shared by every player implementation.
type base struct {
	name string
	seat int
	hand game.Hand
}

func (b *base) Name() string {
	return b.name
}

func (b *base) String() string {
	return b.name
}

func (b *base) Deal(seat int, hand game.Hand) {
	b.seat = seat
	b.hand = hand.Clone()
}

func (b *base) Hand() game.Hand {
	return b.hand
}

// play removes card from the hand. Strategies only pick legal cards, so a
// missing card is a bug in the strategy.
func (b *base) play(card game.Card) game.Card {
	if !b.hand.Remove(card) {
		panic(fmt.Sprintf("%s does not hold %s", b.name, card))
	}
	return card
}
