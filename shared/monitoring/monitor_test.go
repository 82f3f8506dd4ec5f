package monitoring

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestMonitorHealth(t *testing.T) {
	m := NewMonitor()

	if !m.IsHealthy() {
		t.Error("fresh monitor should report healthy")
	}
	if m.GetStatusSummary() != "No searches yet" {
		t.Errorf("summary = %q", m.GetStatusSummary())
	}

	m.RecordFailure(errors.New("boom"), time.Second)
	if m.IsHealthy() {
		t.Error("monitor healthy after failure")
	}
	if !strings.Contains(m.GetStatusSummary(), "failed") {
		t.Errorf("summary = %q", m.GetStatusSummary())
	}

	m.RecordSuccess("analyzed 5 videos", time.Second)
	if !m.IsHealthy() {
		t.Error("monitor unhealthy after success")
	}
	if !strings.Contains(m.GetStatusSummary(), "2 runs, 1 failures") {
		t.Errorf("summary = %q", m.GetStatusSummary())
	}
}
