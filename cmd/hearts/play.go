package main

import (
	"fmt"
	"hearts/display"
	"hearts/engine"
	"hearts/experiments"
	"hearts/game"
	"hearts/internal/randutil"
	"hearts/player"
	"hearts/searcher"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

type PlayCmd struct {
	Players     []string      `help:"Strategy of each seat (random, min, simple, mcts)" default:"mcts,random,min,simple"`
	Seed        *int64        `help:"Random seed for reproducible games"`
	MaxPoints   int           `help:"Score that ends the game" default:"100"`
	Iterations  int           `help:"MCTS iterations per decision" default:"1000"`
	Duration    time.Duration `help:"MCTS time budget per decision, overrides iterations"`
	Exploration float64       `help:"MCTS exploration constant" default:"1.4142135623730951"`
	Verbose     bool          `short:"v" help:"Print every play"`
}

func (c *PlayCmd) Run() error {
	if len(c.Players) != game.NumPlayers {
		return fmt.Errorf("need exactly %d players, got %d", game.NumPlayers, len(c.Players))
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	log.Info().Msgf("playing with seed %d", seed)
	rng := randutil.New(seed)

	players := make([]player.Player, 0, game.NumPlayers)
	for seat, kind := range c.Players {
		config := experiments.PlayerConfig{
			Name:        fmt.Sprintf("%s-%d", kind, seat+1),
			Type:        kind,
			Iterations:  c.Iterations,
			Exploration: c.Exploration,
		}
		if c.Duration > 0 {
			config.Duration = c.Duration.String()
		}
		if err := config.Validate(); err != nil {
			return fmt.Errorf("seat %d: %w", seat+1, err)
		}
		p, err := experiments.NewPlayer(config, randutil.Derive(rng))
		if err != nil {
			return err
		}
		players = append(players, p)
	}

	options := []engine.Option{engine.WithMaxPoints(c.MaxPoints)}
	if c.Verbose {
		options = append(options, engine.WithObserver(display.NewPrinter(os.Stdout)))
	}
	e, err := engine.New(players, rng, options...)
	if err != nil {
		return err
	}
	result, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Println(display.Standings(result))
	for _, p := range players {
		if m, ok := p.(*player.MCTS); ok {
			logSearches(m.Name(), m.Metrics())
		}
	}
	return nil
}

func logSearches(name string, metrics []searcher.SearchMetrics) {
	if len(metrics) == 0 {
		return
	}
	var episodes int
	var elapsed time.Duration
	for _, m := range metrics {
		episodes += m.Episodes
		elapsed += m.Duration
	}
	log.Info().Msgf("%s searched %d decisions: %d episodes in %s", name, len(metrics), episodes, elapsed)
}
