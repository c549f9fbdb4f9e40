package game

import (
	"hearts/internal/randutil"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeck(t *testing.T) {
	t.Run("reset yields 52 unique cards", func(t *testing.T) {
		deck := NewDeck(randutil.New(1))
		deck.Shuffle()
		deck.Reset()

		cards := deck.Cards()
		require.Len(t, cards, DeckSize)
		unique := make(map[Card]bool)
		for _, c := range cards {
			unique[c] = true
		}
		require.Len(t, unique, DeckSize)
	})

	t.Run("dealing four hands partitions the deck", func(t *testing.T) {
		deck := NewDeck(randutil.New(2))
		deck.Shuffle()

		seen := make(map[Card]int)
		for i := 0; i < NumPlayers; i++ {
			hand, err := deck.Deal(HandSize)
			require.NoError(t, err)
			require.Len(t, hand, HandSize)
			for _, c := range hand {
				seen[c]++
			}
		}

		require.Equal(t, 0, deck.Len(), "Deck should be empty after dealing")
		require.Len(t, seen, DeckSize, "Hands should cover the whole deck")
		for c, n := range seen {
			require.Equal(t, 1, n, "%s should be dealt exactly once", c)
		}
	})

	t.Run("dealing more than remains fails", func(t *testing.T) {
		deck := NewDeck(randutil.New(3))
		_, err := deck.Deal(DeckSize - 1)
		require.NoError(t, err)

		_, err = deck.Deal(2)
		require.ErrorIs(t, err, ErrInsufficientCards)
		require.Equal(t, 1, deck.Len(), "Failed deal should not consume cards")
	})

	t.Run("shuffle is reproducible from the seed", func(t *testing.T) {
		d1, d2 := NewDeck(randutil.New(9)), NewDeck(randutil.New(9))
		d1.Shuffle()
		d2.Shuffle()
		require.Equal(t, d1.Cards(), d2.Cards())

		d3 := NewDeck(randutil.New(10))
		d3.Shuffle()
		require.NotEqual(t, d1.Cards(), d3.Cards())
	})
}

func TestHand(t *testing.T) {
	hand := Hand(MustParseCards("2h Qs 5c Ah"))

	t.Run("remove held card", func(t *testing.T) {
		h := hand.Clone()
		require.True(t, h.Remove(QueenOfSpades))
		require.Equal(t, Hand(MustParseCards("2h 5c Ah")), h)
		require.Len(t, hand, 4, "Clone should not alias the original")
	})

	t.Run("remove missing card", func(t *testing.T) {
		h := hand.Clone()
		require.False(t, h.Remove(NewCard(Diamonds, Two)))
		require.Len(t, h, 4)
	})

	t.Run("lowest and highest", func(t *testing.T) {
		require.Equal(t, NewCard(Hearts, Two), hand.Lowest())
		require.Equal(t, NewCard(Hearts, Ace), hand.Highest())
		require.Equal(t, Hand(MustParseCards("2h 5c Qs Ah")), hand.Sorted())
	})
}
