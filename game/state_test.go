package game

import (
	"hearts/internal/randutil"
	"testing"

	"github.com/stretchr/testify/require"
)

func dealState(t *testing.T, seed int64) State {
	t.Helper()
	deck := NewDeck(randutil.New(seed))
	deck.Shuffle()

	var s State
	for seat := range s.Hands {
		hand, err := deck.Deal(HandSize)
		require.NoError(t, err)
		s.Hands[seat] = hand
	}
	return s
}

func TestStatePlay(t *testing.T) {
	t.Run("does not mutate the receiver", func(t *testing.T) {
		s := dealState(t, 1)
		before := s.Hands[0].Clone()

		card := s.LegalMoves()[0]
		next := s.Play(card)

		require.Equal(t, before, s.Hands[0])
		require.Empty(t, s.Trick)
		require.Len(t, next.Hands[0], HandSize-1)
		require.Equal(t, Trick{card}, next.Trick)
		require.Equal(t, 1, next.Player())
	})

	t.Run("resolves complete trick", func(t *testing.T) {
		s := State{Leader: 2}
		s.Hands[2] = Hand(MustParseCards("2h"))
		s.Hands[3] = Hand(MustParseCards("5h"))
		s.Hands[0] = Hand(MustParseCards("As"))
		s.Hands[1] = Hand(MustParseCards("3h"))

		for _, c := range MustParseCards("2h 5h As 3h") {
			s = s.Play(c)
		}

		require.True(t, s.IsTerminal())
		require.Equal(t, 3, s.Leader, "Winner should lead next")
		require.Equal(t, [NumPlayers]int{0, 0, 0, 3}, s.Points)
		require.Equal(t, 1, s.Tricks)
		require.Empty(t, s.LegalMoves())
	})

	t.Run("panics on illegal card", func(t *testing.T) {
		s := State{}
		s.Hands[0] = Hand(MustParseCards("2h 3c"))
		s.Hands[1] = Hand(MustParseCards("4h 5c"))
		s = s.Play(NewCard(Hearts, Two))

		require.Panics(t, func() {
			s.Play(NewCard(Clubs, Five))
		}, "Seat 1 must follow hearts")
	})

	t.Run("random playout conserves 26 points", func(t *testing.T) {
		rng := randutil.New(11)
		for game := 0; game < 50; game++ {
			s := dealState(t, int64(game))
			for !s.IsTerminal() {
				moves := s.LegalMoves()
				s = s.Play(moves[rng.IntN(len(moves))])
			}

			total := 0
			for _, p := range s.Points {
				total += p
			}
			require.Equal(t, TotalPoints, total)
			require.Equal(t, NumTricks, s.Tricks)
		}
	})
}
