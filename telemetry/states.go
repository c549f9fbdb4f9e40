package telemetry

import (
	"encoding/csv"
	"fmt"
	"hearts/engine"
	"hearts/game"
	"hearts/internal/randutil"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
)

// Groups of one-hot columns, each game.DeckSize wide and indexed by Card.Index.
var encodings = []string{"played_cards", "trick", "hand", "valid_cards", "card"}

// NewGameID returns a random UUID drawn from rng, so a seeded experiment
// replays with the same identifiers.
func NewGameID(rng *rand.Rand) string {
	return uuid.Must(uuid.NewRandomFromReader(randutil.Reader(rng))).String()
}

// Header returns the column names of a state log.
func Header() []string {
	header := []string{"game_id", "player_name", "player_index"}
	for _, name := range encodings {
		for i := 1; i <= game.DeckSize; i++ {
			header = append(header, name+"_"+strconv.Itoa(i))
		}
	}
	for _, name := range []string{"score", "round_score"} {
		for i := 1; i <= game.NumPlayers; i++ {
			header = append(header, name+"_"+strconv.Itoa(i))
		}
	}
	return header
}

// StateLogger records every play of a game as one CSV row: the player, one-hot
// encodings of the cards involved and both score vectors.
type StateLogger struct {
	gameID string
	writer *csv.Writer
	closer io.Closer
	rows   int
}

// NewStateLogger writes the header to w immediately.
func NewStateLogger(w io.Writer, gameID string) (*StateLogger, error) {
	l := &StateLogger{gameID: gameID, writer: csv.NewWriter(w)}
	if err := l.writer.Write(Header()); err != nil {
		return nil, fmt.Errorf("failed to write state log header: %w", err)
	}
	return l, nil
}

// CreateStateLogger logs into <dir>/<gameID>.csv.
func CreateStateLogger(dir, gameID string) (*StateLogger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, gameID+".csv"))
	if err != nil {
		return nil, fmt.Errorf("failed to create state log: %w", err)
	}
	l, err := NewStateLogger(f, gameID)
	if err != nil {
		f.Close()
		return nil, err
	}
	l.closer = f
	return l, nil
}

// Rows returns the number of plays logged so far.
func (l *StateLogger) Rows() int {
	return l.rows
}

func (l *StateLogger) OnCardPlayed(ev engine.PlayEvent) error {
	row := make([]string, 0, 3+len(encodings)*game.DeckSize+2*game.NumPlayers)
	row = append(row, l.gameID, ev.Player, strconv.Itoa(ev.Seat))
	for _, cards := range [][]game.Card{ev.Played, ev.Trick, ev.Hand, ev.Legal, {ev.Card}} {
		row = appendEncoding(row, cards)
	}
	for _, score := range ev.Scores {
		row = append(row, strconv.Itoa(score))
	}
	for _, score := range ev.RoundScores {
		row = append(row, strconv.Itoa(score))
	}

	if err := l.writer.Write(row); err != nil {
		return fmt.Errorf("failed to write state row: %w", err)
	}
	l.rows++
	return nil
}

// Close flushes buffered rows and closes the underlying file, if any.
func (l *StateLogger) Close() error {
	l.writer.Flush()
	if err := l.writer.Error(); err != nil {
		return fmt.Errorf("failed to flush state log: %w", err)
	}
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

// Encode returns the one-hot encoding of cards.
func Encode(cards []game.Card) [game.DeckSize]int {
	var encoding [game.DeckSize]int
	for _, c := range cards {
		encoding[c.Index()] = 1
	}
	return encoding
}

func appendEncoding(row []string, cards []game.Card) []string {
	for _, bit := range Encode(cards) {
		row = append(row, strconv.Itoa(bit))
	}
	return row
}
