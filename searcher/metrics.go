package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes the work done by one search call.
type SearchMetric struct {
	StartTime   time.Time
	Duration    time.Duration
	Nodes       int64 // States entered by the recursion, root children included. One per MCTS episode
	Terminals   int64 // Terminal states scored by utility, MCTS rollouts included
	Evaluations int64 // States scored by the evaluation function at the cutoff
	Prunes      int64 // Nodes left early on an alpha or beta bound
}

type Collector interface {
	Start()
	AddNode()
	AddTerminal()
	AddEvaluation()
	AddPrune()
	Complete() SearchMetric
}

// collector is safe for use by the goroutines of a parallel search.
type collector struct {
	startTime   time.Time
	nodes       atomic.Int64
	terminals   atomic.Int64
	evaluations atomic.Int64
	prunes      atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddPrune() {
	m.prunes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		StartTime:   m.startTime,
		Duration:    time.Since(m.startTime),
		Nodes:       m.nodes.Load(),
		Terminals:   m.terminals.Load(),
		Evaluations: m.evaluations.Load(),
		Prunes:      m.prunes.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddTerminal()           {}
func (m *dummyCollector) AddEvaluation()         {}
func (m *dummyCollector) AddPrune()              {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
