package monitoring

import (
	"fmt"
	"log"
	"sync"
	"time"
)

type Monitor struct {
	mu             sync.Mutex
	lastRunSuccess bool
	lastRunTime    time.Time
	totalRuns      int
	totalFailures  int
}

func NewMonitor() *Monitor {
	return &Monitor{}
}

func (m *Monitor) RecordSuccess(summary string, duration time.Duration) {
	m.mu.Lock()
	m.lastRunSuccess = true
	m.lastRunTime = time.Now()
	m.totalRuns++
	m.mu.Unlock()

	log.Printf("✅ Search completed - %s (took %v)", summary, duration)
}

func (m *Monitor) RecordFailure(err error, duration time.Duration) {
	m.mu.Lock()
	m.lastRunSuccess = false
	m.lastRunTime = time.Now()
	m.totalRuns++
	m.totalFailures++
	m.mu.Unlock()

	log.Printf("🚨 Search failed: %s (Duration: %v)", err.Error(), duration)
}

func (m *Monitor) IsHealthy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lastRunTime.IsZero() {
		return true // No runs yet, assume healthy
	}
	return m.lastRunSuccess
}

func (m *Monitor) GetStatusSummary() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lastRunTime.IsZero() {
		return "No searches yet"
	}

	if m.lastRunSuccess {
		return fmt.Sprintf("✅ Last search: %s (%d runs, %d failures)", m.lastRunTime.Format("Jan 2 15:04"), m.totalRuns, m.totalFailures)
	}
	return fmt.Sprintf("❌ Last search failed: %s (%d runs, %d failures)", m.lastRunTime.Format("Jan 2 15:04"), m.totalRuns, m.totalFailures)
}
