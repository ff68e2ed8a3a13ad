// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

type testMetrics struct {
	Counter   *Counter
	Vec       *CounterVec
	Histogram *Histogram
	Missing   *Counter
	NotMetric int
	hidden    *Counter
}

func TestAddMetricStruct(t *testing.T) {
	m := testMetrics{
		Counter:   NewCounter(Metadata{Name: "c_total", Help: "c"}),
		Vec:       NewCounterVec(Metadata{Name: "v_total", Help: "v"}, "kind"),
		Histogram: NewHistogram(Metadata{Name: "h", Help: "h"}, Count32Buckets),
		hidden:    NewCounter(Metadata{Name: "hidden_total", Help: "hidden"}),
	}
	preg := prometheus.NewPedanticRegistry()
	reg := NewRegistry(preg)
	require.NoError(t, reg.AddMetricStruct(&m))

	m.Counter.Inc(3)
	m.Vec.Inc(2, "a")
	m.Vec.Inc(1, "b")
	m.Histogram.RecordValue(4)
	require.Equal(t, 3.0, testutil.ToFloat64(m.Counter))
	require.Equal(t, 2.0, testutil.ToFloat64(m.Vec.WithLabelValues("a")))
	n, err := testutil.GatherAndCount(preg)
	require.NoError(t, err)
	require.Equal(t, 4, n)

	// Registering the same metrics twice fails.
	require.ErrorContains(t, reg.AddMetricStruct(m), "registering Counter")
	require.Error(t, reg.AddMetricStruct(3))
}

func TestNilMetrics(t *testing.T) {
	var c *Counter
	var v *CounterVec
	var h *Histogram
	c.Inc(1)
	v.Inc(1, "x")
	h.RecordValue(1)
}
