package experiments

import (
	"hearts/experiments/metrics"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

// Summarize averages the final score of every seat over the games played.
// A game counts as a win for every player sharing the lowest score.
func Summarize(players []PlayerConfig, games []metrics.GameRecord) []metrics.PlayerSummary {
	summaries := make([]metrics.PlayerSummary, len(players))
	for seat, p := range players {
		scores := make([]float64, 0, len(games))
		wins := 0
		for _, g := range games {
			scores = append(scores, float64(g.Scores[seat]))
			if slices.Contains(g.Winners, p.Name) {
				wins++
			}
		}

		summaries[seat] = metrics.PlayerSummary{
			Seat:  seat,
			Name:  p.Name,
			Type:  p.Type,
			Games: len(games),
			Wins:  wins,
		}
		if len(scores) > 0 {
			summaries[seat].MeanScore = stat.Mean(scores, nil)
		}
		if len(scores) > 1 {
			summaries[seat].StdDev = stat.StdDev(scores, nil)
		}
	}
	return summaries
}
