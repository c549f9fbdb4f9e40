package main

import (
	"context"
	"fmt"
	"hearts/display"
	"hearts/experiments"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

type ExperimentCmd struct {
	Config    string `arg:"" type:"existingfile" help:"Experiment config (.yaml, .yml or .hcl)"`
	OutputDir string `help:"Directory for results, overrides the config"`
	Workers   int    `help:"Games played in parallel, overrides the config"`
	LogStates bool   `help:"Write a state log per game"`
}

func (c *ExperimentCmd) Run() error {
	config, err := experiments.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.OutputDir != "" {
		config.OutputDir = c.OutputDir
	}
	if c.Workers > 0 {
		config.Workers = c.Workers
	}
	if c.LogStates {
		config.LogStates = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := experiments.Run(ctx, *config)
	if err != nil {
		return err
	}

	fmt.Println(display.Summary(report.Summary))
	if report.Dir != "" {
		log.Info().Msgf("results stored in %s", report.Dir)
	}
	return nil
}
