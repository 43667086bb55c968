package metrics

import (
	"time"
)

type SearchMetric struct {
	Duration time.Duration
	Episodes int
	Nodes    int  // Size of the tree at the end of the search
	Blocked  bool // Move came from the blocking pre-filter, no search ran
}

type MoveMetric struct {
	Step   int
	Player string // Mark of the mover
	Cell   int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // Empty on a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers metrics for a single search. Searches are sequential so
// implementations need no synchronization.
type Collector interface {
	Start()
	AddEpisode()
	SetNodes(n int)
	SetBlocked()
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	episodes  int
	nodes     int
	blocked   bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.episodes = 0
	m.nodes = 0
	m.blocked = false
}

func (m *collector) AddEpisode() {
	m.episodes++
}

func (m *collector) SetNodes(n int) {
	m.nodes = n
}

func (m *collector) SetBlocked() {
	m.blocked = true
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration: time.Since(m.startTime),
		Episodes: m.episodes,
		Nodes:    m.nodes,
		Blocked:  m.blocked,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) AddEpisode()            {}
func (m *dummyCollector) SetNodes(n int)         {}
func (m *dummyCollector) SetBlocked()            {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
