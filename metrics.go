package holocron

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    queryCounter   prometheus.Counter
//	    queryHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordQuery(topK, results int, duration time.Duration, err error) {
//	    p.queryCounter.Inc()
//	    p.queryHistogram.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordAdd is called after each Add with the batch size.
	RecordAdd(count int, duration time.Duration)

	// RecordGet is called after each Get. requested is the number of ids
	// asked for, found the number of records returned.
	RecordGet(requested, found int, duration time.Duration)

	// RecordDelete is called after each Delete. removed is the number of
	// records actually removed.
	RecordDelete(requested, removed int, duration time.Duration)

	// RecordQuery is called after each Query. err is nil if successful.
	RecordQuery(topK, results int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(int, time.Duration)               {}
func (NoopMetricsCollector) RecordGet(int, int, time.Duration)          {}
func (NoopMetricsCollector) RecordDelete(int, int, time.Duration)       {}
func (NoopMetricsCollector) RecordQuery(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount        atomic.Int64
	AddedRecords    atomic.Int64
	GetCount        atomic.Int64
	GetRequested    atomic.Int64
	GetFound        atomic.Int64
	DeleteCount     atomic.Int64
	DeleteRequested atomic.Int64
	DeleteRemoved   atomic.Int64
	QueryCount      atomic.Int64
	QueryErrors     atomic.Int64
	QueryResults    atomic.Int64
	QueryTotalNanos atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(count int, duration time.Duration) {
	b.AddCount.Add(1)
	b.AddedRecords.Add(int64(count))
}

// RecordGet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGet(requested, found int, duration time.Duration) {
	b.GetCount.Add(1)
	b.GetRequested.Add(int64(requested))
	b.GetFound.Add(int64(found))
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(requested, removed int, duration time.Duration) {
	b.DeleteCount.Add(1)
	b.DeleteRequested.Add(int64(requested))
	b.DeleteRemoved.Add(int64(removed))
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(topK, results int, duration time.Duration, err error) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.QueryErrors.Add(1)
		return
	}
	b.QueryResults.Add(int64(results))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:        b.AddCount.Load(),
		AddedRecords:    b.AddedRecords.Load(),
		GetCount:        b.GetCount.Load(),
		GetRequested:    b.GetRequested.Load(),
		GetFound:        b.GetFound.Load(),
		DeleteCount:     b.DeleteCount.Load(),
		DeleteRequested: b.DeleteRequested.Load(),
		DeleteRemoved:   b.DeleteRemoved.Load(),
		QueryCount:      b.QueryCount.Load(),
		QueryErrors:     b.QueryErrors.Load(),
		QueryResults:    b.QueryResults.Load(),
		QueryAvgNanos:   b.getAvgQueryNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgQueryNanos() int64 {
	count := b.QueryCount.Load()
	if count == 0 {
		return 0
	}
	return b.QueryTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddCount        int64
	AddedRecords    int64
	GetCount        int64
	GetRequested    int64
	GetFound        int64
	DeleteCount     int64
	DeleteRequested int64
	DeleteRemoved   int64
	QueryCount      int64
	QueryErrors     int64
	QueryResults    int64
	QueryAvgNanos   int64
}
