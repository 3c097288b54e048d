// Package metrics provides in-memory runtime statistics for the assistant.
package metrics

import (
	"math"
	"sync"
	"time"
)

// Operation names recorded by the collector.
const (
	OpResolve = "resolve"
	OpTurn    = "turn"
)

// operationMetrics holds raw aggregates for a single operation type.
type operationMetrics struct {
	Count     int64
	TotalTime time.Duration
	MinTime   time.Duration
	MaxTime   time.Duration
}

// OperationSnapshot provides computed stats from raw metrics.
type OperationSnapshot struct {
	Count       int64   `json:"count"`
	TotalTimeMs int64   `json:"totalTimeMs"`
	AvgTimeMs   float64 `json:"avgTimeMs"`
	MinTimeMs   int64   `json:"minTimeMs"`
	MaxTimeMs   int64   `json:"maxTimeMs"`
}

// Snapshot is a point-in-time view of assistant usage, exposed by the
// stats endpoint for the platform's analytics dashboard.
type Snapshot struct {
	UptimeSeconds float64            `json:"uptimeSeconds"`
	Topics        map[string]int64   `json:"topics"`
	Resolve       *OperationSnapshot `json:"resolve,omitempty"`
	Turn          *OperationSnapshot `json:"turn,omitempty"`
}

// Collector aggregates in-memory usage statistics. All methods are
// safe for concurrent use.
type Collector struct {
	mu        sync.RWMutex
	startTime time.Time
	topics    map[string]int64
	ops       map[string]*operationMetrics
}

// NewCollector creates an empty collector anchored at the current time.
func NewCollector() *Collector {
	return &Collector{
		startTime: time.Now(),
		topics:    make(map[string]int64),
		ops:       make(map[string]*operationMetrics),
	}
}

// getOrCreate returns existing metrics or creates new ones for an operation.
// Caller must hold the write lock.
func (c *Collector) getOrCreate(op string) *operationMetrics {
	m, ok := c.ops[op]
	if !ok {
		m = &operationMetrics{MinTime: time.Duration(math.MaxInt64)}
		c.ops[op] = m
	}
	return m
}

func (c *Collector) recordTiming(op string, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := c.getOrCreate(op)
	m.Count++
	m.TotalTime += duration
	if duration < m.MinTime {
		m.MinTime = duration
	}
	if duration > m.MaxTime {
		m.MaxTime = duration
	}
}

// RecordResolve counts a resolver dispatch against its topic and records
// how long classification plus rendering took.
func (c *Collector) RecordResolve(topic string, duration time.Duration) {
	c.mu.Lock()
	c.topics[topic]++
	c.mu.Unlock()

	c.recordTiming(OpResolve, duration)
}

// RecordTurn records the wall-clock time of a full submit round trip,
// including the simulated thinking delay.
func (c *Collector) RecordTurn(duration time.Duration) {
	c.recordTiming(OpTurn, duration)
}

// snapshotOp creates a snapshot for an operation, returning nil if no data.
func snapshotOp(m *operationMetrics) *OperationSnapshot {
	if m == nil || m.Count == 0 {
		return nil
	}
	return &OperationSnapshot{
		Count:       m.Count,
		TotalTimeMs: m.TotalTime.Milliseconds(),
		AvgTimeMs:   float64(m.TotalTime.Milliseconds()) / float64(m.Count),
		MinTimeMs:   m.MinTime.Milliseconds(),
		MaxTimeMs:   m.MaxTime.Milliseconds(),
	}
}

// Snapshot returns a point-in-time snapshot of all metrics.
func (c *Collector) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	topics := make(map[string]int64, len(c.topics))
	for topic, count := range c.topics {
		topics[topic] = count
	}

	return Snapshot{
		UptimeSeconds: time.Since(c.startTime).Seconds(),
		Topics:        topics,
		Resolve:       snapshotOp(c.ops[OpResolve]),
		Turn:          snapshotOp(c.ops[OpTurn]),
	}
}
