package player

import (
	"hearts/game"
	"hearts/searcher"
	"math/rand/v2"

	"github.com/rs/zerolog/log"
)

// MCTS picks cards with a determinized Monte Carlo tree search. It follows the
// public history of the round to know which cards are still unseen.
type MCTS struct {
	base
	mcts    *searcher.MCTS
	rng     *rand.Rand
	played  []game.Card
	points  [game.NumPlayers]int
	metrics []searcher.SearchMetrics
}

func NewMCTS(name string, mcts *searcher.MCTS, rng *rand.Rand) *MCTS {
	return &MCTS{base: base{name: name}, mcts: mcts, rng: rng}
}

func (p *MCTS) Deal(seat int, hand game.Hand) {
	p.base.Deal(seat, hand)
	p.played = nil
	p.points = [game.NumPlayers]int{}
}

func (p *MCTS) CardPlayed(seat int, card game.Card) {
	p.played = append(p.played, card)
}

func (p *MCTS) TrickWon(seat int, points int) {
	p.points[seat] += points
}

func (p *MCTS) PlayCard(trick game.Trick) game.Card {
	obs := searcher.Observation{
		Seat:   p.seat,
		Hand:   p.hand.Clone(),
		Trick:  trick.Clone(),
		Leader: (p.seat - len(trick) + game.NumPlayers) % game.NumPlayers,
		Played: append([]game.Card{}, p.played...),
		Points: p.points,
	}

	card, metric, err := p.mcts.Search(obs, p.rng)
	if err != nil {
		// The search never aborts the game: fall back to a random legal card
		log.Warn().Err(err).Msgf("%s falls back to a random card", p.name)
		legal := game.LegalPlays(p.hand, trick)
		return p.play(legal[p.rng.IntN(len(legal))])
	}
	p.metrics = append(p.metrics, metric)
	return p.play(card)
}

// Metrics returns the metrics of every decision made so far.
func (p *MCTS) Metrics() []searcher.SearchMetrics {
	return p.metrics
}
