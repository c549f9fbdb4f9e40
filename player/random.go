package player

import (
	"hearts/game"
	"math/rand/v2"
)

// Random plays a uniformly random legal card.
type Random struct {
	base
	rng *rand.Rand
}

func NewRandom(name string, rng *rand.Rand) *Random {
	return &Random{base: base{name: name}, rng: rng}
}

func (p *Random) PlayCard(trick game.Trick) game.Card {
	legal := game.LegalPlays(p.hand, trick)
	return p.play(legal[p.rng.IntN(len(legal))])
}
