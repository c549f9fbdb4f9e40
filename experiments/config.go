package experiments

import (
	"errors"
	"fmt"
	"hearts/game"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

// Config describes a batch of games between the same four players.
type Config struct {
	Name      string         `yaml:"name" hcl:"name"`
	Seed      int64          `yaml:"seed" hcl:"seed,optional"`
	Games     int            `yaml:"games" hcl:"games,optional"`
	MaxPoints int            `yaml:"max_points" hcl:"max_points,optional"`
	Workers   int            `yaml:"workers,omitempty" hcl:"workers,optional"`
	OutputDir string         `yaml:"output_dir,omitempty" hcl:"output_dir,optional"`
	LogStates bool           `yaml:"log_states,omitempty" hcl:"log_states,optional"`
	Players   []PlayerConfig `yaml:"players" hcl:"player,block"`
}

// PlayerConfig selects a strategy for one seat. The search options only apply
// to mcts players.
type PlayerConfig struct {
	Name        string  `yaml:"name" hcl:"name,label"`
	Type        string  `yaml:"type" hcl:"type"`
	Iterations  int     `yaml:"iterations,omitempty" hcl:"iterations,optional"`
	Exploration float64 `yaml:"exploration,omitempty" hcl:"exploration,optional"`
	Duration    string  `yaml:"duration,omitempty" hcl:"duration,optional"`
}

// DefaultConfig returns a random-vs-heuristics experiment.
func DefaultConfig() *Config {
	return &Config{
		Name:      "default",
		Seed:      1,
		Games:     10,
		MaxPoints: game.DefaultMaxPoints,
		Workers:   runtime.NumCPU(),
		Players: []PlayerConfig{
			{Name: "Random", Type: TypeRandom},
			{Name: "MinCard", Type: TypeMinCard},
			{Name: "Sluffing", Type: TypeSimple},
			{Name: "MCTS", Type: TypeMCTS},
		},
	}
}

// LoadConfig reads a YAML (.yaml, .yml) or HCL (.hcl) experiment file and
// fills in defaults for missing values.
func LoadConfig(filename string) (*Config, error) {
	var config Config
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML file: %w", err)
		}
	case ".hcl":
		parser := hclparse.NewParser()
		file, diags := parser.ParseHCLFile(filename)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
		}
		diags = gohcl.DecodeBody(file.Body, nil, &config)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Games == 0 {
		c.Games = defaults.Games
	}
	if c.MaxPoints == 0 {
		c.MaxPoints = defaults.MaxPoints
	}
	if c.Workers == 0 {
		c.Workers = defaults.Workers
	}
}

// Validate checks the configuration before any game is played.
func (c *Config) Validate() error {
	if c.Name == "" {
		return errors.New("experiment name is required")
	}
	if c.Games <= 0 {
		return errors.New("games must be positive")
	}
	if c.MaxPoints <= 0 {
		return errors.New("max points must be positive")
	}
	if c.Workers <= 0 {
		return errors.New("workers must be positive")
	}
	if c.LogStates && c.OutputDir == "" {
		return errors.New("logging states requires an output directory")
	}
	if len(c.Players) != game.NumPlayers {
		return fmt.Errorf("need exactly %d players, got %d", game.NumPlayers, len(c.Players))
	}
	names := make(map[string]bool, len(c.Players))
	for i, p := range c.Players {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("player %d: %w", i+1, err)
		}
		if names[p.Name] {
			return fmt.Errorf("duplicate player name %q", p.Name)
		}
		names[p.Name] = true
	}
	return nil
}

func (p PlayerConfig) Validate() error {
	if p.Name == "" {
		return errors.New("player name is required")
	}
	if !validTypes[p.Type] {
		return fmt.Errorf("%s player is not implemented", p.Type)
	}
	if p.Iterations < 0 {
		return errors.New("iterations cannot be negative")
	}
	if p.Exploration < 0 {
		return errors.New("exploration cannot be negative")
	}
	if _, err := p.duration(); err != nil {
		return err
	}
	return nil
}

func (p PlayerConfig) duration() (time.Duration, error) {
	if p.Duration == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(p.Duration)
	if err != nil {
		return 0, fmt.Errorf("invalid duration: %w", err)
	}
	if d < 0 {
		return 0, errors.New("duration cannot be negative")
	}
	return d, nil
}
