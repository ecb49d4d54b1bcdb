package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.uber.org/zap"
)

func getTestMetrics() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
}

func TestBusinessCountersIncrement(t *testing.T) {
	m := getTestMetrics()

	m.IncrementBoardCreated()
	m.IncrementCardCreated()
	m.IncrementCardCreated()
	m.IncrementCardMoved()
	m.IncrementWipLimitRejected()
	m.IncrementVersionConflicts()

	if v := getCounterValue(t, m.BoardCreatedTotal); v != 1 {
		t.Errorf("Expected BoardCreatedTotal to be 1, got %f", v)
	}
	if v := getCounterValue(t, m.CardCreatedTotal); v != 2 {
		t.Errorf("Expected CardCreatedTotal to be 2, got %f", v)
	}
	if v := getCounterValue(t, m.CardMovedTotal); v != 1 {
		t.Errorf("Expected CardMovedTotal to be 1, got %f", v)
	}
	if v := getCounterValue(t, m.WipLimitRejectedTotal); v != 1 {
		t.Errorf("Expected WipLimitRejectedTotal to be 1, got %f", v)
	}
	if v := getCounterValue(t, m.VersionConflictsTotal); v != 1 {
		t.Errorf("Expected VersionConflictsTotal to be 1, got %f", v)
	}
}

func TestSetBoardsTotal(t *testing.T) {
	m := getTestMetrics()

	tests := []struct {
		name  string
		count int64
	}{
		{"zero boards", 0},
		{"one board", 1},
		{"multiple boards", 100},
		{"large number", 5000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetBoardsTotal(tt.count)
			value := getGaugeValue(t, m.BoardsTotal)
			if value != float64(tt.count) {
				t.Errorf("Expected gauge value %d, got %f", tt.count, value)
			}
		})
	}
}

func TestSetCardsTotal(t *testing.T) {
	m := getTestMetrics()

	m.SetCardsTotal(42)
	if v := getGaugeValue(t, m.CardsTotal); v != 42 {
		t.Errorf("Expected CardsTotal to be 42, got %f", v)
	}
}

func TestRecordHTTPRequestCategorizesStatus(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{404, "4xx"},
		{409, "4xx"},
		{500, "5xx"},
		{100, "unknown"},
	}
	for _, tt := range tests {
		if got := categorizeStatus(tt.code); got != tt.want {
			t.Errorf("categorizeStatus(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestShouldSkipEndpoint(t *testing.T) {
	if !ShouldSkipEndpoint("/metrics") {
		t.Error("Expected /metrics to be skipped")
	}
	if !ShouldSkipEndpoint("/health") {
		t.Error("Expected /health to be skipped")
	}
	if ShouldSkipEndpoint("/api/v1/boards") {
		t.Error("Expected board endpoints to be recorded")
	}
}

// Helper function to get counter value
func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := counter.Write(metric); err != nil {
		t.Fatalf("Failed to write counter metric: %v", err)
	}
	return metric.Counter.GetValue()
}

// Helper function to get gauge value
func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := gauge.Write(metric); err != nil {
		t.Fatalf("Failed to write gauge metric: %v", err)
	}
	return metric.Gauge.GetValue()
}
