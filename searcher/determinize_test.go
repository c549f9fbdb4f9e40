package searcher

import (
	"fmt"
	"hearts/game"
	"hearts/internal/randutil"
	"testing"

	"github.com/stretchr/testify/require"
)

// midTrickObservation has seat 2 to move after seats 0 and 1 played into the
// third trick of the round.
func midTrickObservation() Observation {
	deck := game.FullDeck()
	played := append([]game.Card{}, deck[:8]...) // Two completed tricks
	trick := game.Trick{deck[8], deck[9]}
	played = append(played, trick...)

	return Observation{
		Seat:   2,
		Hand:   game.Hand(append([]game.Card{}, deck[10:21]...)),
		Trick:  trick,
		Leader: 0,
		Played: played,
		Points: [game.NumPlayers]int{4, 4, 0, 0},
	}
}

func TestObservationValidate(t *testing.T) {
	t.Run("consistent observation", func(t *testing.T) {
		require.NoError(t, midTrickObservation().Validate())
	})

	tests := []struct {
		name   string
		mutate func(o *Observation)
	}{
		{name: "seat not to move", mutate: func(o *Observation) { o.Leader = 1 }},
		{name: "seat out of range", mutate: func(o *Observation) { o.Seat = 4 }},
		{name: "empty hand", mutate: func(o *Observation) { o.Hand = nil }},
		{name: "held card already played", mutate: func(o *Observation) { o.Hand[0] = o.Played[0] }},
		{name: "trick card not played", mutate: func(o *Observation) { o.Played = o.Played[:8] }},
		{name: "card played twice", mutate: func(o *Observation) { o.Played = append(o.Played, o.Played[0]) }},
		{name: "wrong number of unseen cards", mutate: func(o *Observation) { o.Hand = o.Hand[:5] }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := midTrickObservation()
			tt.mutate(&o)
			require.ErrorIs(t, o.Validate(), ErrInconsistentObservation)
		})
	}
}

func TestDeterminize(t *testing.T) {
	t.Run("respects remaining hand sizes", func(t *testing.T) {
		obs := midTrickObservation()
		state := determinize(obs, randutil.New(1))

		require.Equal(t, obs.Hand, state.Hands[2], "Deciding player keeps its real hand")
		require.Len(t, state.Hands[0], 10, "Seat 0 already played into the trick")
		require.Len(t, state.Hands[1], 10, "Seat 1 already played into the trick")
		require.Len(t, state.Hands[3], 11)
		require.Equal(t, obs.Trick, state.Trick)
		require.Equal(t, 2, state.Player())
		require.Equal(t, 2, state.Tricks)
		require.Equal(t, obs.Points, state.Points)
	})

	t.Run("partitions unseen cards", func(t *testing.T) {
		obs := midTrickObservation()
		rng := randutil.New(2)
		for i := 0; i < 100; i++ {
			state := determinize(obs, rng)

			seen := make(map[game.Card]int)
			for _, c := range obs.Played {
				seen[c]++
			}
			for _, hand := range state.Hands {
				for _, c := range hand {
					seen[c]++
				}
			}
			require.Len(t, seen, game.DeckSize)
			for c, n := range seen {
				require.Equal(t, 1, n, "%s should appear exactly once", c)
			}
		}
	})

	t.Run("resamples every call", func(t *testing.T) {
		obs := midTrickObservation()
		rng := randutil.New(3)
		hands := make(map[string]bool)
		for i := 0; i < 10; i++ {
			hands[fmt.Sprint(determinize(obs, rng).Hands[3].Sorted())] = true
		}
		require.Greater(t, len(hands), 1, "Hidden hands should vary between determinizations")
	})

	t.Run("reproducible from seed", func(t *testing.T) {
		obs := midTrickObservation()
		require.Equal(t, determinize(obs, randutil.New(4)), determinize(obs, randutil.New(4)))
	})

	t.Run("does not alias the observation", func(t *testing.T) {
		obs := midTrickObservation()
		state := determinize(obs, randutil.New(5))
		state.Hands[2][0] = game.QueenOfSpades
		state.Trick[0] = game.QueenOfSpades

		require.NotEqual(t, game.QueenOfSpades, obs.Hand[0])
		require.NotEqual(t, game.QueenOfSpades, obs.Trick[0])
	})
}
