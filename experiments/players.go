package experiments

import (
	"fmt"
	"hearts/player"
	"hearts/searcher"
	"math/rand/v2"
)

const (
	TypeRandom  = "random"
	TypeMinCard = "min"
	TypeSimple  = "simple"
	TypeMCTS    = "mcts"
)

var validTypes = map[string]bool{
	TypeRandom:  true,
	TypeMinCard: true,
	TypeSimple:  true,
	TypeMCTS:    true,
}

// NewPlayer builds the player described by config. Random decisions draw from rng.
func NewPlayer(config PlayerConfig, rng *rand.Rand) (player.Player, error) {
	switch config.Type {
	case TypeRandom:
		return player.NewRandom(config.Name, rng), nil
	case TypeMinCard:
		return player.NewMinCard(config.Name), nil
	case TypeSimple:
		return player.NewSimple(config.Name), nil
	case TypeMCTS:
		mcts, err := createMCTS(config)
		if err != nil {
			return nil, err
		}
		return player.NewMCTS(config.Name, mcts, rng), nil
	}
	return nil, fmt.Errorf("%s player is not implemented", config.Type)
}

func createMCTS(config PlayerConfig) (*searcher.MCTS, error) {
	options := []searcher.Option{}

	if config.Iterations > 0 {
		options = append(options, searcher.WithIterations(config.Iterations))
	}
	duration, err := config.duration()
	if err != nil {
		return nil, err
	}
	if duration > 0 {
		options = append(options, searcher.WithDuration(duration))
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(options...), nil
}
