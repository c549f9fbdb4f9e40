package game

import "fmt"

// State is a fully specified round in progress: every seat's hand, the trick on
// the table, and the points taken so far. It is a value type: Play never mutates
// the receiver, so states can be shared between search iterations safely.
type State struct {
	Hands  [NumPlayers]Hand
	Trick  Trick
	Leader int             // Seat that led the current trick
	Points [NumPlayers]int // Penalty points taken this round
	Tricks int             // Completed tricks this round
}

// Player returns the seat to move.
func (s State) Player() int {
	seat := s.Leader
	for range s.Trick {
		seat = NextSeat(seat)
	}
	return seat
}

// LegalMoves returns the cards the player to move may play; empty when terminal.
func (s State) LegalMoves() Hand {
	if s.IsTerminal() {
		return nil
	}
	return LegalPlays(s.Hands[s.Player()], s.Trick)
}

// IsTerminal reports whether every hand has been played out.
func (s State) IsTerminal() bool {
	if len(s.Trick) > 0 {
		return false
	}
	for _, hand := range s.Hands {
		if len(hand) > 0 {
			return false
		}
	}
	return true
}

// Play returns the state after the player to move plays card, resolving the
// trick once it is complete. It panics on an illegal card.
func (s State) Play(card Card) State {
	player := s.Player()
	if !IsLegal(s.Hands[player], s.Trick, card) {
		panic(fmt.Sprintf("illegal play %s by seat %d", card, player))
	}

	next := s
	next.Hands[player] = s.Hands[player].Without(card)
	next.Trick = append(s.Trick.Clone(), card)

	if next.Trick.Complete() {
		winner, points := ResolveTrick(next.Trick, next.Leader)
		next.Points[winner] += points
		next.Leader = winner
		next.Trick = nil
		next.Tricks++
	}
	return next
}
