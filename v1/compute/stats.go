package compute

import (
	"sync"
	"time"
)

// StatsCollector accumulates NetworkStats counters for a client.
//
// It is an explicit injectable component rather than ambient global state:
// construct one, hand it to NewClient via WithStatsCollector (or let the
// client create its own), and read it through Client.Stats or Snapshot.
// All updates go through a single mutex so concurrent requests never lose
// counts.
type StatsCollector struct {
	mu sync.Mutex

	successes    uint64
	fallbacks    uint64
	totalLatency time.Duration
}

// NewStatsCollector returns an empty collector.
func NewStatsCollector() *StatsCollector {
	return &StatsCollector{}
}

// RecordSuccess counts one request served by the network path.
func (s *StatsCollector) RecordSuccess(latency time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.successes++
	s.totalLatency += latency
}

// RecordFallback counts one request served by the local fallback embedder.
func (s *StatsCollector) RecordFallback(latency time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallbacks++
	s.totalLatency += latency
}

// Snapshot returns a consistent copy of the current counters.
func (s *StatsCollector) Snapshot() NetworkStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := s.successes + s.fallbacks
	stats := NetworkStats{
		RequestsSubmitted: total,
		Successes:         s.successes,
		FallbacksUsed:     s.fallbacks,
	}
	if total > 0 {
		stats.AvgLatency = s.totalLatency / time.Duration(total)
	}
	return stats
}
