package searcher

import (
	"fmt"
	"hearts/game"
	"math/rand/v2"
	"time"

	"github.com/coder/quartz"
)

type Option func(mcts *MCTS)

// MCTS searches over random determinizations of the hidden hands to pick the
// card that minimizes the deciding player's expected penalty points.
type MCTS struct {
	iterations  int
	duration    time.Duration
	exploration float64
	clock       quartz.Clock
	metrics     MetricsCollector
	withMetrics bool
}

// WithIterations sets a fixed number of iterations per decision.
func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

// WithDuration caps each decision by wall-clock time instead of iterations.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithExploration sets the UCT exploration constant C. Only positive values
// are applied.
func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

func WithClock(clock quartz.Clock) Option {
	return func(m *MCTS) {
		if clock != nil {
			m.clock = clock
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.withMetrics = true
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		iterations:  DefaultIterations,
		exploration: DefaultExploration,
		clock:       quartz.NewReal(),
	}
	for _, option := range options {
		option(m)
	}
	if m.withMetrics {
		m.metrics = NewMetricsCollector(m.clock)
	} else {
		m.metrics = NewNoMetricsCollector()
	}
	return m
}

func (m *MCTS) Iterations() int {
	return m.iterations
}

func (m *MCTS) Duration() time.Duration {
	return m.duration
}

func (m *MCTS) Exploration() float64 {
	return m.exploration
}

// Search returns the legal card with the most visits after the configured
// budget. A single legal card is returned immediately without searching.
func (m *MCTS) Search(obs Observation, rng *rand.Rand) (game.Card, SearchMetrics, error) {
	if err := obs.Validate(); err != nil {
		return game.Card{}, SearchMetrics{}, fmt.Errorf("cannot search: %w", err)
	}

	legal := obs.Legal()
	m.metrics.Start(len(legal))
	if len(legal) == 1 {
		return legal[0], m.metrics.Complete(0), nil
	}

	t := newTree(m.exploration)
	t.expandAll(rootID, legal, obs.Seat)

	if m.duration > 0 {
		m.countdown(t, obs, rng)
	} else {
		m.iterate(t, obs, rng)
	}

	metric := m.metrics.Complete(len(t.nodes))
	card, ok := t.bestMove()
	if !ok {
		// Unreachable given the root expansion above
		return legal[rng.IntN(len(legal))], metric, nil
	}
	return card, metric, nil
}

func (m *MCTS) iterate(t *tree, obs Observation, rng *rand.Rand) {
	for i := 0; i < m.iterations; i++ {
		m.simulate(t, obs, rng)
	}
}

func (m *MCTS) countdown(t *tree, obs Observation, rng *rand.Rand) {
	start := m.clock.Now()
	for {
		m.simulate(t, obs, rng)
		if m.clock.Since(start) >= m.duration {
			return
		}
	}
}

func (m *MCTS) simulate(t *tree, obs Observation, rng *rand.Rand) {
	state := determinize(obs, rng)
	newNode, newState, expanded := selectThenExpand(t, state, rng)
	if expanded {
		m.metrics.AddExpansion()
	}
	final := rollout(newState, rng)
	// Hearts is a minimization game: reward the deciding player's avoided points
	reward := -float64(final.Points[obs.Seat] - obs.Points[obs.Seat])
	t.backup(newNode, reward)
	m.metrics.AddEpisode()
}

// selectThenExpand descends from the root until a node is expanded or a
// terminal node is reached.
func selectThenExpand(t *tree, state game.State, rng *rand.Rand) (int, game.State, bool) {
	parent := rootID
	child, state, expanded := t.selectOrExpand(parent, state, rng)
	for !expanded && (child != parent) {
		parent = child
		child, state, expanded = t.selectOrExpand(parent, state, rng)
	}
	return child, state, expanded
}

// rollout plays uniformly random legal cards until every hand is empty.
func rollout(state game.State, rng *rand.Rand) game.State {
	moves := state.LegalMoves()
	for len(moves) > 0 {
		move := moves[rng.IntN(len(moves))] // Random rollout policy
		state = state.Play(move)
		moves = state.LegalMoves()
	}
	return state
}
