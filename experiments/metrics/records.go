package metrics

import (
	"hearts/game"
	"hearts/searcher"
	"time"
)

type GameRecord struct {
	ID        int    // Position in the experiment, from 1
	GameID    string // Identifier shared with the state log
	Seed      int64
	Rounds    int
	Scores    [game.NumPlayers]int
	Winners   []string // Every player sharing the lowest score
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

type MoveRecord struct {
	Game     int // GameRecord.ID
	Seat     int
	Player   string
	Decision int // Index among the player's searches in the game
	searcher.SearchMetrics
}

// PlayerSummary aggregates the final scores of one seat over every game.
type PlayerSummary struct {
	Seat      int
	Name      string
	Type      string
	Games     int
	Wins      int
	MeanScore float64
	StdDev    float64
}
