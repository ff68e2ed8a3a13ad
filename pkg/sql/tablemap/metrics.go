// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tablemap

import (
	"github.com/cockroachdb/scancompile/pkg/util/metric"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts the join-back annotations made by scan setup.
type Metrics struct {
	ScansAnnotated            *metric.Counter
	JoinBackColumns           *metric.Counter
	AttributeBytes            *metric.CounterVec
	ExtendedColumnsReferenced *metric.Histogram
}

var (
	metaScansAnnotated = metric.Metadata{
		Name: "scans_annotated_total",
		Help: "Number of scan requests annotated with join-back attributes",
	}
	metaJoinBackColumns = metric.Metadata{
		Name: "join_back_columns_total",
		Help: "Number of data table columns requested through join-back",
	}
	metaAttributeBytes = metric.Metadata{
		Name: "scan_attribute_bytes_total",
		Help: "Bytes of join-back attributes attached to scan requests, by attribute",
	}
	metaExtendedColumnsReferenced = metric.Metadata{
		Name: "extended_columns_referenced",
		Help: "Number of extended columns referenced per annotated scan",
	}
)

// NewMetrics creates the metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		ScansAnnotated:            metric.NewCounter(metaScansAnnotated),
		JoinBackColumns:           metric.NewCounter(metaJoinBackColumns),
		AttributeBytes:            metric.NewCounterVec(metaAttributeBytes, "attribute"),
		ExtendedColumnsReferenced: metric.NewHistogram(metaExtendedColumnsReferenced, metric.Count32Buckets),
	}
}

// Register adds the metrics to r.
func (m *Metrics) Register(r prometheus.Registerer) error {
	return metric.NewRegistry(r).AddMetricStruct(m)
}

// The methods below are safe to call on a nil receiver.

func (m *Metrics) recordScan(columns int) {
	if m == nil {
		return
	}
	m.ScansAnnotated.Inc(1)
	m.JoinBackColumns.Inc(int64(columns))
	m.ExtendedColumnsReferenced.RecordValue(int64(columns))
}

func (m *Metrics) recordAttribute(name string, size int) {
	if m == nil {
		return
	}
	m.AttributeBytes.Inc(int64(size), name)
}
