package experiments

import (
	"context"
	"errors"
	"fmt"
	"hearts/engine"
	"hearts/experiments/metrics"
	"hearts/internal/randutil"
	"hearts/player"
	"hearts/telemetry"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Report holds everything an experiment produced.
type Report struct {
	Config  Config
	Dir     string // Empty when nothing was written
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
	Summary []metrics.PlayerSummary
}

type gameOutcome struct {
	record metrics.GameRecord
	moves  []metrics.MoveRecord
}

// Run plays config.Games games on up to config.Workers goroutines. Game i is
// seeded with config.Seed+i, so results do not depend on scheduling.
func Run(ctx context.Context, config Config) (*Report, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid experiment config: %w", err)
	}

	var writer *metrics.Writer
	if config.OutputDir != "" {
		var err error
		writer, err = metrics.NewWriter(config.OutputDir, config.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create experiment writer: %w", err)
		}
		if err = writer.WriteConfig(config); err != nil {
			return nil, fmt.Errorf("failed to store config: %w", err)
		}
	}

	log.Info().Msgf("starting %s experiment with %d games...", config.Name, config.Games)

	outcomes := make([]gameOutcome, config.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(config.Workers)
	for i := 0; i < config.Games; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcome, err := runGame(config, i, writer)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			outcomes[i] = outcome
			log.Info().Msgf("completed game %d of %d with winners %v", i+1, config.Games, outcome.record.Winners)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Msgf("completed %s experiment", config.Name)

	report := &Report{Config: config}
	for _, o := range outcomes {
		report.Games = append(report.Games, o.record)
		report.Moves = append(report.Moves, o.moves...)
	}
	report.Summary = Summarize(config.Players, report.Games)

	if writer == nil {
		return report, nil
	}
	report.Dir = writer.Dir()
	if err := store(writer, report); err != nil {
		return nil, err
	}
	return report, nil
}

func store(writer *metrics.Writer, report *Report) error {
	if err := writer.WriteGameRecords(report.Games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(report.Moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	if err := writer.WriteSummary(report.Summary); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	log.Info().Msg("stored summary")
	return nil
}

// runGame plays a single game. The writer is nil when nothing is stored.
func runGame(config Config, index int, writer *metrics.Writer) (outcome gameOutcome, err error) {
	seed := config.Seed + int64(index)
	rng := randutil.New(seed)

	players := make([]player.Player, len(config.Players))
	for seat, pc := range config.Players {
		players[seat], err = NewPlayer(pc, randutil.Derive(rng))
		if err != nil {
			return outcome, err
		}
	}

	gameID := telemetry.NewGameID(randutil.Derive(rng))
	options := []engine.Option{engine.WithMaxPoints(config.MaxPoints)}
	if config.LogStates && writer != nil {
		var logger *telemetry.StateLogger
		logger, err = telemetry.CreateStateLogger(writer.StatesDir(), gameID)
		if err != nil {
			return outcome, err
		}
		defer func() {
			err = errors.Join(err, logger.Close())
		}()
		options = append(options, engine.WithObserver(logger))
	}

	e, err := engine.New(players, rng, options...)
	if err != nil {
		return outcome, err
	}

	start := time.Now()
	result, err := e.Run()
	if err != nil {
		return outcome, err
	}
	end := time.Now()

	outcome.record = metrics.GameRecord{
		ID:        index + 1,
		GameID:    gameID,
		Seed:      seed,
		Rounds:    result.Rounds,
		Scores:    result.Scores,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}
	for _, s := range result.Winners() {
		outcome.record.Winners = append(outcome.record.Winners, s.Name)
	}

	for seat, p := range players {
		m, ok := p.(*player.MCTS)
		if !ok {
			continue
		}
		for i, sm := range m.Metrics() {
			outcome.moves = append(outcome.moves, metrics.MoveRecord{
				Game:          index + 1,
				Seat:          seat,
				Player:        p.Name(),
				Decision:      i + 1,
				SearchMetrics: sm,
			})
		}
	}
	return outcome, nil
}
