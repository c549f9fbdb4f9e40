package player

import "hearts/game"

// MinCard always plays its lowest legal card.
type MinCard struct {
	base
}

func NewMinCard(name string) *MinCard {
	return &MinCard{base: base{name: name}}
}

func (p *MinCard) PlayCard(trick game.Trick) game.Card {
	return p.play(game.LegalPlays(p.hand, trick).Lowest())
}

// Simple leads low, ducks under the current winner when it can, and sluffs
// penalty cards (queen of spades first) when void in the lead suit.
type Simple struct {
	base
}

func NewSimple(name string) *Simple {
	return &Simple{base: base{name: name}}
}

func (p *Simple) PlayCard(trick game.Trick) game.Card {
	return p.play(chooseSimple(game.LegalPlays(p.hand, trick), trick))
}

func chooseSimple(legal game.Hand, trick game.Trick) game.Card {
	lead, ok := trick.LeadSuit()
	if !ok {
		return legal.Lowest()
	}

	// Void in the lead suit: dump penalty cards
	if legal[0].Suit != lead {
		if legal.Contains(game.QueenOfSpades) {
			return game.QueenOfSpades
		}
		if hearts := legal.OfSuit(game.Hearts); len(hearts) > 0 {
			return hearts.Highest()
		}
		return legal.Highest()
	}

	winning := game.Hand(trick).OfSuit(lead).Highest()
	var losing game.Hand
	for _, c := range legal {
		if c.Rank < winning.Rank {
			losing = append(losing, c)
		}
	}
	if len(losing) > 0 {
		return losing.Highest()
	}
	return legal.Lowest()
}
