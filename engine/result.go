package engine

import (
	"hearts/game"

	"golang.org/x/exp/slices"
)

type Standing struct {
	Seat  int
	Name  string
	Score int
}

// Result is the outcome of a finished game.
type Result struct {
	Scores  [game.NumPlayers]int
	Rounds  int
	Ranking []Standing // Lowest score first, ties by seat
}

// Winners returns every standing sharing the lowest score.
func (r Result) Winners() []Standing {
	if len(r.Ranking) == 0 {
		return nil
	}
	n := 1
	for n < len(r.Ranking) && r.Ranking[n].Score == r.Ranking[0].Score {
		n++
	}
	return r.Ranking[:n]
}

// Result returns the standings so far.
func (e *Engine) Result() Result {
	ranking := make([]Standing, 0, len(e.players))
	for seat, p := range e.players {
		ranking = append(ranking, Standing{Seat: seat, Name: p.Name(), Score: e.scores[seat]})
	}
	slices.SortStableFunc(ranking, func(a, b Standing) int {
		return a.Score - b.Score
	})
	return Result{Scores: e.scores, Rounds: e.rounds, Ranking: ranking}
}
