// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package metric

import "github.com/prometheus/client_golang/prometheus"

// Metadata holds the name and help text of a metric.
type Metadata struct {
	Name string
	Help string
}

// Counter is a monotonically increasing count.
type Counter struct {
	prometheus.Counter
}

// NewCounter creates a counter.
func NewCounter(md Metadata) *Counter {
	return &Counter{prometheus.NewCounter(prometheus.CounterOpts{Name: md.Name, Help: md.Help})}
}

// Inc increments the counter by n.
func (c *Counter) Inc(n int64) {
	if c == nil {
		return
	}
	c.Add(float64(n))
}

// CounterVec is a family of counters partitioned by label values.
type CounterVec struct {
	*prometheus.CounterVec
}

// NewCounterVec creates a counter family with the given label names.
func NewCounterVec(md Metadata, labels ...string) *CounterVec {
	return &CounterVec{prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: md.Name, Help: md.Help}, labels)}
}

// Inc increments the counter with the given label values by n.
func (c *CounterVec) Inc(n int64, labelValues ...string) {
	if c == nil {
		return
	}
	c.WithLabelValues(labelValues...).Add(float64(n))
}

// Histogram records a distribution of values.
type Histogram struct {
	prometheus.Histogram
}

// NewHistogram creates a histogram with the given bucket upper bounds.
func NewHistogram(md Metadata, buckets []float64) *Histogram {
	return &Histogram{prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    md.Name,
		Help:    md.Help,
		Buckets: buckets,
	})}
}

// RecordValue adds v to the distribution.
func (h *Histogram) RecordValue(v int64) {
	if h == nil {
		return
	}
	h.Observe(float64(v))
}

// Count32Buckets are linear buckets suited to small counts such as column
// counts.
var Count32Buckets = prometheus.LinearBuckets(1, 1, 32)
