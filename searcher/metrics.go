package searcher

import (
	"time"

	"github.com/coder/quartz"
)

// SearchMetrics describes the work done for a single decision.
type SearchMetrics struct {
	StartTime    time.Time
	Duration     time.Duration
	Episodes     int // Iterations run
	Expansions   int // Iterations that added a node to the tree
	Candidates   int // Legal cards considered at the root
	Nodes        int // Arena size when the search completed
}

type MetricsCollector interface {
	Start(candidates int)
	AddEpisode()
	AddExpansion()
	Complete(nodes int) SearchMetrics
}

type metricsCollector struct {
	clock        quartz.Clock
	startTime    time.Time
	candidates   int
	episodes     int
	expansions   int
}

func NewMetricsCollector(clock quartz.Clock) MetricsCollector {
	return &metricsCollector{clock: clock}
}

func (m *metricsCollector) Start(candidates int) {
	m.startTime = m.clock.Now()
	m.candidates = candidates
	m.episodes = 0
	m.expansions = 0
}

func (m *metricsCollector) AddEpisode() {
	m.episodes++
}

func (m *metricsCollector) AddExpansion() {
	m.expansions++
}

func (m *metricsCollector) Complete(nodes int) SearchMetrics {
	return SearchMetrics{
		StartTime:    m.startTime,
		Duration:     m.clock.Since(m.startTime),
		Episodes:     m.episodes,
		Expansions:   m.expansions,
		Candidates:   m.candidates,
		Nodes:        nodes,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(int)                  {}
func (m *noMetricsCollector) AddEpisode()                {}
func (m *noMetricsCollector) AddExpansion()              {}
func (m *noMetricsCollector) Complete(int) SearchMetrics { return SearchMetrics{} }
