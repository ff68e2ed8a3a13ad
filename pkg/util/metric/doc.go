// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

/*
Package metric provides typed wrappers around Prometheus collectors.

Adding a new metric

Define the metric in a metrics struct and construct it from its Metadata:

	type Metrics struct {
		ScansAnnotated *metric.Counter
	}

	func MakeMetrics() Metrics {
		return Metrics{
			ScansAnnotated: metric.NewCounter(metric.Metadata{
				Name: "scans_annotated_total",
				Help: "Number of scan requests annotated for join-back.",
			}),
		}
	}

then register every metric of the struct at once:

	reg := metric.NewRegistry(prometheus.DefaultRegisterer)
	if err := reg.AddMetricStruct(m); err != nil {
		...
	}

The metric can then be updated as follows:

	m.ScansAnnotated.Inc(1)

All wrappers are nil-safe: updating a nil metric is a no-op, which lets
components make metrics optional.
*/
package metric
