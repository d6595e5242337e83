package csp

import (
	"sync"
	"time"
)

// PerConstraintStats accumulates the propagation activity of a single
// constraint over a Solve call. Grounded on original_source's
// engine.rs::PerConstraintStats (revisions/prunings/time_spent_micros) and
// the teacher's fd_monitor.go, which tracks the same per-constraint
// counters for its own search.
type PerConstraintStats struct {
	Revisions int64
	Prunings  int64
	TimeSpent time.Duration
}

// SearchStats summarises one Solve call's work, mirroring
// original_source's engine.rs::SearchStats.
type SearchStats struct {
	NodesVisited    int64
	Backtracks      int64
	ConstraintStats map[ConstraintId]PerConstraintStats
}

// SolverMonitor collects SearchStats as a Propagator and the search
// procedure run, without affecting the Problem values they produce —
// it is a side channel for diagnostics, not part of the engine's
// deterministic output. The zero value is ready to use.
type SolverMonitor struct {
	mu              sync.Mutex
	nodesVisited    int64
	backtracks      int64
	constraintStats map[ConstraintId]*PerConstraintStats
}

// NewSolverMonitor returns a ready-to-use SolverMonitor.
func NewSolverMonitor() *SolverMonitor {
	return &SolverMonitor{constraintStats: make(map[ConstraintId]*PerConstraintStats)}
}

func (m *SolverMonitor) recordRevision(id ConstraintId, pruned bool) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.constraintStats == nil {
		m.constraintStats = make(map[ConstraintId]*PerConstraintStats)
	}
	s, ok := m.constraintStats[id]
	if !ok {
		s = &PerConstraintStats{}
		m.constraintStats[id] = s
	}
	s.Revisions++
	if pruned {
		s.Prunings++
	}
}

// RecordNode marks the start of a new search-tree node (one variable
// assignment attempt).
func (m *SolverMonitor) RecordNode() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.nodesVisited++
	m.mu.Unlock()
}

// RecordBacktrack marks abandoning the current node's remaining candidate
// values and returning to its parent.
func (m *SolverMonitor) RecordBacktrack() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.backtracks++
	m.mu.Unlock()
}

// Snapshot returns a copy of the statistics gathered so far.
func (m *SolverMonitor) Snapshot() SearchStats {
	if m == nil {
		return SearchStats{ConstraintStats: map[ConstraintId]PerConstraintStats{}}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := SearchStats{
		NodesVisited:    m.nodesVisited,
		Backtracks:      m.backtracks,
		ConstraintStats: make(map[ConstraintId]PerConstraintStats, len(m.constraintStats)),
	}
	for id, s := range m.constraintStats {
		out.ConstraintStats[id] = *s
	}
	return out
}
