package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCardLess(t *testing.T) {
	t.Run("ordering by rank within a suit", func(t *testing.T) {
		for _, suit := range Suits {
			for _, r1 := range Ranks {
				for _, r2 := range Ranks {
					a, b := NewCard(suit, r1), NewCard(suit, r2)
					require.Equal(t, r1 < r2, a.Less(b), "%s < %s", a, b)
				}
			}
		}
	})

	t.Run("irreflexive", func(t *testing.T) {
		for _, c := range FullDeck() {
			require.False(t, c.Less(c), "%s should not be less than itself", c)
		}
	})

	t.Run("total and transitive over the deck", func(t *testing.T) {
		deck := FullDeck()
		for _, a := range deck {
			for _, b := range deck {
				if a != b {
					require.NotEqual(t, a.Less(b), b.Less(a), "%s and %s should be comparable", a, b)
				}
				for _, c := range deck {
					if a.Less(b) && b.Less(c) {
						require.True(t, a.Less(c), "%s < %s < %s", a, b, c)
					}
				}
			}
		}
	})

	t.Run("suit breaks rank ties", func(t *testing.T) {
		require.True(t, NewCard(Clubs, Ten).Less(NewCard(Diamonds, Ten)))
		require.True(t, NewCard(Diamonds, Ten).Less(NewCard(Hearts, Ten)))
		require.True(t, NewCard(Hearts, Ten).Less(NewCard(Spades, Ten)))
		require.True(t, NewCard(Spades, Nine).Less(NewCard(Clubs, Ten)), "Rank should dominate suit")
	})
}

func TestCardPoints(t *testing.T) {
	require.Equal(t, 13, QueenOfSpades.Points())
	require.Equal(t, 1, NewCard(Hearts, Two).Points())
	require.Equal(t, 1, NewCard(Hearts, Queen).Points())
	require.Equal(t, 0, NewCard(Spades, King).Points())
	require.Equal(t, 0, NewCard(Clubs, Queen).Points())
}

func TestCardIndex(t *testing.T) {
	seen := make(map[int]bool)
	for i, c := range FullDeck() {
		require.Equal(t, i, c.Index(), "Index should match canonical order for %s", c)
		require.Equal(t, c, CardAt(c.Index()))
		seen[c.Index()] = true
	}
	require.Len(t, seen, DeckSize)
	require.Equal(t, 0, NewCard(Hearts, Ace).Index())
	require.Equal(t, 51, NewCard(Spades, King).Index())
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		{name: "unicode suit", input: "Q♠", want: QueenOfSpades},
		{name: "letter suit", input: "Qs", want: QueenOfSpades},
		{name: "ten as digits", input: "10h", want: NewCard(Hearts, Ten)},
		{name: "ten as letter", input: "Td", want: NewCard(Diamonds, Ten)},
		{name: "lower case rank", input: "ac", want: NewCard(Clubs, Ace)},
		{name: "number rank", input: "7♦", want: NewCard(Diamonds, Seven)},
		{name: "unknown suit", input: "7x", wantErr: true},
		{name: "unknown rank", input: "1h", wantErr: true},
		{name: "too short", input: "h", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	t.Run("round trips String", func(t *testing.T) {
		for _, c := range FullDeck() {
			got, err := ParseCard(c.String())
			require.NoError(t, err)
			require.Equal(t, c, got)
		}
	})
}
