package metrics

import (
	"time"
)

// SearchMetric describes one ChooseMove invocation.
type SearchMetric struct {
	MinIterations int
	MinTime       time.Duration
	Duration      time.Duration
	Cycles        int
	RolloutMoves  int
}

type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

type GameMetric struct {
	Winner     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Agent kinds used in experiment configs.
const (
	KindSearch = "search"
	KindRandom = "random"
)

type AgentConfig struct {
	ID                int
	Kind              string
	MinIterations     int
	MinTime           time.Duration
	TimeCheckInterval int
	Rave              bool
}

type Collector interface {
	Start(minIterations int, minTime time.Duration)
	AddCycle()
	AddRolloutMoves(count int)
	Complete() SearchMetric
}

// collector accumulates per-search counters. The search loop is
// single-threaded, so plain fields suffice.
type collector struct {
	minIterations int
	minTime       time.Duration
	startTime     time.Time
	cycles        int
	rolloutMoves  int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(minIterations int, minTime time.Duration) {
	m.startTime = time.Now()
	m.minIterations = minIterations
	m.minTime = minTime
	m.cycles = 0
	m.rolloutMoves = 0
}

func (m *collector) AddCycle() {
	m.cycles++
}

func (m *collector) AddRolloutMoves(count int) {
	m.rolloutMoves += count
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		MinIterations: m.minIterations,
		MinTime:       m.minTime,
		Duration:      time.Since(m.startTime),
		Cycles:        m.cycles,
		RolloutMoves:  m.rolloutMoves,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(minIterations int, minTime time.Duration) {}
func (m *dummyCollector) AddCycle()                                      {}
func (m *dummyCollector) AddRolloutMoves(count int)                      {}
func (m *dummyCollector) Complete() SearchMetric                         { return SearchMetric{} }
