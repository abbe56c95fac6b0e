package metrics

import (
	"testing"
	"time"
)

func newTestMetrics() *Metrics {
	return NewMetrics(Config{
		Address:                 ":0",
		ServiceName:             "test-service",
		EnableDefaultCollectors: false,
	})
}

func TestIncrementRequests(t *testing.T) {
	m := newTestMetrics()

	m.IncrementRequests("fallback")
	m.IncrementRequests("fallback")
	m.IncrementRequests("success")

	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	found := map[string]float64{}
	for _, family := range families {
		if family.GetName() != "requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "status" {
					found[label.GetValue()] = metric.GetCounter().GetValue()
				}
			}
		}
	}

	if found["fallback"] != 2 {
		t.Errorf("expected fallback counter 2, got %v", found["fallback"])
	}
	if found["success"] != 1 {
		t.Errorf("expected success counter 1, got %v", found["success"])
	}
}

func TestObserveNetworkAvailability(t *testing.T) {
	m := newTestMetrics()

	m.ObserveNetworkAvailability(true, "http://gw")
	m.ObserveNetworkAvailability(false, "http://gw")

	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	for _, family := range families {
		if family.GetName() != "network_available" {
			continue
		}
		metric := family.GetMetric()
		if len(metric) != 1 {
			t.Fatalf("expected 1 gauge series, got %d", len(metric))
		}
		if got := metric[0].GetGauge().GetValue(); got != 0 {
			t.Fatalf("expected last probe value 0, got %v", got)
		}
		return
	}
	t.Fatal("network_available metric not found")
}

func TestServiceLabelApplied(t *testing.T) {
	m := newTestMetrics()
	m.IncrementRequests("success")

	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	for _, family := range families {
		if family.GetName() != "requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "service" && label.GetValue() == "test-service" {
					return
				}
			}
		}
	}
	t.Fatal("expected service=test-service label on requests_total")
}

func TestCreateHistogram(t *testing.T) {
	m := newTestMetrics()

	hist := m.CreateHistogram("poll_attempts", "Poll attempts per task", []string{"outcome"}, []float64{1, 5, 10})
	if hist == nil {
		t.Fatal("expected histogram")
	}
	hist.WithLabelValues("success").Observe(3)

	start := time.Now().Add(-50 * time.Millisecond)
	m.RecordRequestDuration(start, "generate_embedding")
}
