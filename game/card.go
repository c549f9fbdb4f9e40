package game

import (
	"fmt"
	"strings"
)

// Suit represents a card suit. Values follow the canonical deck order.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true for hearts and diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// precedence breaks ties between equal ranks: ♣ < ♦ < ♥ < ♠
func (s Suit) precedence() int {
	switch s {
	case Clubs:
		return 0
	case Diamonds:
		return 1
	case Hearts:
		return 2
	case Spades:
		return 3
	default:
		return -1
	}
}

// Rank represents a card rank, aces high
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists ranks in the canonical deck order (ace first).
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Ten {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Card is an immutable playing card. Two cards are equal iff rank and suit match.
type Card struct {
	Suit Suit
	Rank Rank
}

var QueenOfSpades = Card{Suit: Spades, Rank: Queen}

func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Less orders cards by rank, then by suit precedence.
func (c Card) Less(other Card) bool {
	if c.Rank != other.Rank {
		return c.Rank < other.Rank
	}
	return c.Suit.precedence() < other.Suit.precedence()
}

// Compare returns -1, 0 or +1 following Less, for use with sort helpers.
func (c Card) Compare(other Card) int {
	switch {
	case c == other:
		return 0
	case c.Less(other):
		return -1
	default:
		return 1
	}
}

// Points is the penalty carried by the card.
func (c Card) Points() int {
	if c.Suit == Hearts {
		return 1
	}
	if c == QueenOfSpades {
		return 13
	}
	return 0
}

// Index maps the card to its position (0..51) in the canonical deck.
func (c Card) Index() int {
	rankIndex := int(c.Rank) - 1
	if c.Rank == Ace {
		rankIndex = 0
	}
	return int(c.Suit)*len(Ranks) + rankIndex
}

// CardAt is the inverse of Index.
func CardAt(index int) Card {
	return Card{Suit: Suits[index/len(Ranks)], Rank: Ranks[index%len(Ranks)]}
}

// ParseCard parses strings such as "Q♠", "Qs", "10h" or "Td".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}

	suit, err := parseSuit(runes[len(runes)-1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	rank, err := parseRank(strings.ToUpper(string(runes[:len(runes)-1])))
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// MustParseCards parses a space separated list of cards and panics on error.
func MustParseCards(s string) []Card {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			panic(err)
		}
		cards = append(cards, c)
	}
	return cards
}

func parseSuit(r rune) (Suit, error) {
	switch r {
	case '♥', 'h', 'H':
		return Hearts, nil
	case '♦', 'd', 'D':
		return Diamonds, nil
	case '♣', 'c', 'C':
		return Clubs, nil
	case '♠', 's', 'S':
		return Spades, nil
	}
	return 0, fmt.Errorf("unknown suit %q", r)
}

func parseRank(s string) (Rank, error) {
	switch s {
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	case "T", "10":
		return Ten, nil
	}
	if len(s) == 1 && s[0] >= '2' && s[0] <= '9' {
		return Rank(s[0] - '0'), nil
	}
	return 0, fmt.Errorf("unknown rank %q", s)
}
