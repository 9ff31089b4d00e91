package observability

import (
	"context"
	"strconv"
	"sync"

	"github.com/Yashanki/krux-support/internal/events"
)

// Metrics provides basic in-memory counters.
type Metrics struct {
	mu           sync.Mutex
	requestCount map[string]int64
	errorCount   map[string]int64
	eventCount   map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount: make(map[string]int64),
		errorCount:   make(map[string]int64),
		eventCount:   make(map[string]int64),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + strconv.Itoa(status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// ObserveEvents subscribes the metrics to every event the store publishes.
func (m *Metrics) ObserveEvents(bus events.Dispatcher) {
	if m == nil || bus == nil {
		return
	}
	bus.SubscribeAll(func(_ context.Context, event events.Event) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.eventCount[string(event.Type)]++
		return nil
	})
}

// EventCount returns how many events of the given type were observed.
func (m *Metrics) EventCount(eventType events.EventType) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eventCount[string(eventType)]
}
