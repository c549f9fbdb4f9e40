package display

import (
	"fmt"
	"hearts/engine"
	"hearts/experiments/metrics"
	"hearts/game"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

func Card(c game.Card) string {
	if c.Suit.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

// Cards renders cards in the given order, separated by spaces.
func Cards(cards []game.Card) string {
	formatted := make([]string, 0, len(cards))
	for _, c := range cards {
		formatted = append(formatted, Card(c))
	}
	return strings.Join(formatted, " ")
}

// Hand renders a hand sorted by rank.
func Hand(h game.Hand) string {
	return Cards(h.Sorted())
}

// Standings renders the final scores, lowest first.
func Standings(result engine.Result) string {
	winners := len(result.Winners())
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Player", "Seat", "Score").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case row < winners:
				return WinnerStyle
			}
			return lipgloss.NewStyle()
		})
	for i, s := range result.Ranking {
		t.Row(strconv.Itoa(i+1), s.Name, strconv.Itoa(s.Seat), strconv.Itoa(s.Score))
	}
	return t.String() + "\n" + InfoStyle.Render(fmt.Sprintf("%d rounds played", result.Rounds))
}

// Summary renders the averaged results of an experiment.
func Summary(summaries []metrics.PlayerSummary) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Player", "Type", "Games", "Wins", "Mean score", "Std dev").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}
			return lipgloss.NewStyle()
		})
	for _, s := range summaries {
		t.Row(s.Name, s.Type, strconv.Itoa(s.Games), strconv.Itoa(s.Wins),
			strconv.FormatFloat(s.MeanScore, 'f', 2, 64), strconv.FormatFloat(s.StdDev, 'f', 2, 64))
	}
	return t.String()
}

// Printer narrates a game as it is played.
type Printer struct {
	w     io.Writer
	round int
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) OnCardPlayed(ev engine.PlayEvent) error {
	if ev.Round != p.round {
		p.round = ev.Round
		if _, err := fmt.Fprintln(p.w, HeaderStyle.Render(fmt.Sprintf(" Round %d ", ev.Round))); err != nil {
			return err
		}
	}

	line := fmt.Sprintf("%-10s %s  %s", ev.Player, Card(ev.Card), InfoStyle.Render("from "+Hand(ev.Hand)))
	if ev.Trick.Complete() {
		leader := game.NextSeat(ev.Seat)
		winner, points := game.ResolveTrick(ev.Trick, leader)
		taken := fmt.Sprintf("seat %d takes %s", winner, Cards(ev.Trick))
		if points > 0 {
			taken = PenaltyStyle.Render(fmt.Sprintf("%s for %d points", taken, points))
		}
		line += "\n" + taken
	}
	_, err := fmt.Fprintln(p.w, line)
	return err
}
