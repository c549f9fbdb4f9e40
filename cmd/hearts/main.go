package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type CLI struct {
	LogLevel   string        `help:"Log level" default:"info" enum:"debug,info,warn,error"`
	Play       PlayCmd       `cmd:"" help:"Play a single game and print the standings"`
	Experiment ExperimentCmd `cmd:"" help:"Run a batch of games from a YAML or HCL config"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("hearts"),
		kong.Description("Hearts simulator with heuristic and Monte Carlo tree search players"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	level, err := zerolog.ParseLevel(cli.LogLevel)
	ctx.FatalIfErrorf(err)
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
