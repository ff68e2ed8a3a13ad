// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package metric

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Registry adds metrics to a Prometheus registerer.
type Registry struct {
	r prometheus.Registerer
}

// NewRegistry returns a registry adding metrics to r.
func NewRegistry(r prometheus.Registerer) *Registry {
	return &Registry{r: r}
}

// AddMetric registers a single collector.
func (r *Registry) AddMetric(c prometheus.Collector) error {
	return r.r.Register(c)
}

// AddMetricStruct registers every non-nil exported field of the struct (or
// pointer to struct) s that is a prometheus.Collector. Other fields are
// ignored.
func (r *Registry) AddMetricStruct(s interface{}) error {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return errors.AssertionFailedf("AddMetricStruct called with %T", s)
	}
	typ := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := v.Field(i)
		if fv.Kind() == reflect.Ptr && fv.IsNil() {
			continue
		}
		c, ok := fv.Interface().(prometheus.Collector)
		if !ok {
			continue
		}
		if err := r.AddMetric(c); err != nil {
			return errors.Wrapf(err, "registering %s", field.Name)
		}
	}
	return nil
}
