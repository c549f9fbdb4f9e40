package player

import (
	"hearts/game"
	"hearts/internal/randutil"
	"testing"

	"github.com/stretchr/testify/require"
)

func cards(s string) game.Hand {
	return game.Hand(game.MustParseCards(s))
}

func TestSimplePlayCard(t *testing.T) {
	tests := []struct {
		name  string
		hand  string
		trick string
		want  string
	}{
		{name: "leads lowest card", hand: "Kd 3s 9h", trick: "", want: "3s"},
		{name: "ducks under the winning card", hand: "2c 8c Jc", trick: "9c Kd", want: "8c"},
		{name: "plays lowest when forced to win", hand: "Jc Ac", trick: "9c 5c", want: "Jc"},
		{name: "sluffs queen of spades first", hand: "Qs Ah 2d", trick: "5c", want: "Qs"},
		{name: "sluffs highest heart", hand: "3h Jh Ad", trick: "5c", want: "Jh"},
		{name: "discards highest card without penalties", hand: "3d Kd 2s", trick: "5c", want: "Kd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewSimple("simple")
			p.Deal(0, cards(tt.hand))

			got := p.PlayCard(game.Trick(cards(tt.trick)))

			want := game.MustParseCards(tt.want)[0]
			require.Equal(t, want, got)
			require.False(t, p.Hand().Contains(got), "Card should be removed from the hand")
			require.Len(t, p.Hand(), len(cards(tt.hand))-1)
		})
	}
}

func TestMinCardPlayCard(t *testing.T) {
	p := NewMinCard("min")
	p.Deal(2, cards("Kd 3s 9d 2h"))

	require.Equal(t, game.NewCard(game.Hearts, game.Two), p.PlayCard(nil))
	require.Equal(t, game.NewCard(game.Diamonds, game.Nine), p.PlayCard(game.Trick(cards("4d"))))
	require.Equal(t, cards("Kd 3s"), p.Hand())
}

func TestRandomPlayCard(t *testing.T) {
	t.Run("always plays a legal card", func(t *testing.T) {
		rng := randutil.New(1)
		for i := 0; i < 100; i++ {
			deck := game.NewDeck(rng)
			deck.Shuffle()
			hand, err := deck.Deal(game.HandSize)
			require.NoError(t, err)
			trick, err := deck.Deal(rng.IntN(game.NumPlayers))
			require.NoError(t, err)

			p := NewRandom("random", rng)
			p.Deal(0, hand)
			card := p.PlayCard(game.Trick(trick))

			require.True(t, game.IsLegal(hand, game.Trick(trick), card))
			require.Len(t, p.Hand(), game.HandSize-1)
		}
	})

	t.Run("reproducible from seed", func(t *testing.T) {
		p1 := NewRandom("a", randutil.New(2))
		p2 := NewRandom("b", randutil.New(2))
		p1.Deal(0, game.FullDeck()[:13])
		p2.Deal(0, game.FullDeck()[:13])

		for i := 0; i < 13; i++ {
			require.Equal(t, p1.PlayCard(nil), p2.PlayCard(nil))
		}
	})
}

func TestDealCopiesHand(t *testing.T) {
	hand := cards("2c 3c")
	p := NewMinCard("min")
	p.Deal(0, hand)
	p.PlayCard(nil)

	require.Equal(t, cards("2c 3c"), hand, "Playing should not mutate the dealt slice")
	require.Equal(t, "min", p.Name())
}

func TestPlayMissingCardPanics(t *testing.T) {
	p := NewMinCard("min")
	p.Deal(0, cards("2c"))
	require.Panics(t, func() {
		p.play(game.QueenOfSpades)
	})
}
