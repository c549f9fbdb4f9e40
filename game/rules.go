package game

import "fmt"

// Trick holds the cards played so far in the current trick, in play order.
type Trick []Card

// LeadSuit returns the suit of the first card. ok is false for an empty trick.
func (t Trick) LeadSuit() (suit Suit, ok bool) {
	if len(t) == 0 {
		return 0, false
	}
	return t[0].Suit, true
}

func (t Trick) Complete() bool {
	return len(t) == NumPlayers
}

func (t Trick) Clone() Trick {
	return Trick(Hand(t).Clone())
}

// LegalPlays returns the cards of hand that may be played on trick: the cards
// following the lead suit when the hand holds any, otherwise the whole hand.
// No first-trick or hearts-broken restriction applies.
func LegalPlays(hand Hand, trick Trick) Hand {
	if lead, ok := trick.LeadSuit(); ok {
		if follow := hand.OfSuit(lead); len(follow) > 0 {
			return follow
		}
	}
	return hand.Clone()
}

// IsLegal reports whether card is a legal play from hand on trick.
func IsLegal(hand Hand, trick Trick, card Card) bool {
	return LegalPlays(hand, trick).Contains(card)
}

// ResolveTrick determines the winning seat of a complete trick led by leader and
// the penalty points it carries. It panics if the trick is incomplete.
func ResolveTrick(trick Trick, leader int) (winner int, points int) {
	if !trick.Complete() {
		panic(fmt.Sprintf("cannot resolve trick with %d cards", len(trick)))
	}

	lead := trick[0].Suit
	best := 0
	for i, card := range trick {
		if card.Suit == lead && card.Rank > trick[best].Rank {
			best = i
		}
	}
	return (leader + best) % NumPlayers, TrickPoints(trick)
}

// TrickPoints sums the penalty points of the cards: one per heart, 13 for the queen of spades.
func TrickPoints(cards []Card) int {
	points := 0
	for _, card := range cards {
		points += card.Points()
	}
	return points
}
