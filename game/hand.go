package game

import "golang.org/x/exp/slices"

// Hand is the set of cards held by a single player.
type Hand []Card

func (h Hand) Contains(card Card) bool {
	return slices.Contains(h, card)
}

// Remove deletes the card from the hand in place and reports whether it was held.
func (h *Hand) Remove(card Card) bool {
	i := slices.Index(*h, card)
	if i < 0 {
		return false
	}
	*h = slices.Delete(*h, i, i+1)
	return true
}

// Without returns a copy of the hand minus the given card.
func (h Hand) Without(card Card) Hand {
	out := make(Hand, 0, len(h))
	for _, c := range h {
		if c != card {
			out = append(out, c)
		}
	}
	return out
}

func (h Hand) Clone() Hand {
	if h == nil {
		return nil
	}
	return slices.Clone(h)
}

// OfSuit returns the cards of the given suit, preserving hand order.
func (h Hand) OfSuit(suit Suit) Hand {
	var out Hand
	for _, c := range h {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}

// Sorted returns a copy of the hand in ascending card order.
func (h Hand) Sorted() Hand {
	out := h.Clone()
	slices.SortFunc(out, Card.Compare)
	return out
}

// Lowest returns the smallest card. It panics on an empty hand.
func (h Hand) Lowest() Card {
	return slices.MinFunc(h, Card.Compare)
}

// Highest returns the largest card. It panics on an empty hand.
func (h Hand) Highest() Card {
	return slices.MaxFunc(h, Card.Compare)
}
