package game

const (
	NumPlayers  = 4
	HandSize    = 13
	DeckSize    = NumPlayers * HandSize
	NumTricks   = HandSize
	TotalPoints = 26 // 13 hearts + queen of spades

	DefaultMaxPoints = 100
)

// NextSeat returns the seat that plays after the given seat.
func NextSeat(seat int) int {
	return (seat + 1) % NumPlayers
}
