// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package roachpb

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// ScanRequest is the physical read request handed to the remote execution
// layer. Besides the span to read it carries an attribute channel: opaque
// payloads keyed by name that instruct the executor how to shape the rows it
// returns.
//
// A ScanRequest is not safe for concurrent mutation.
type ScanRequest struct {
	Span
	attrs map[string][]byte
}

// NewScanRequest returns a request scanning span.
func NewScanRequest(span Span) (*ScanRequest, error) {
	if !span.Valid() {
		return nil, errors.Newf("invalid span %s", span)
	}
	return &ScanRequest{Span: span}, nil
}

// SetAttribute attaches value under name, replacing any previous value. The
// value is retained.
func (r *ScanRequest) SetAttribute(name string, value []byte) {
	if r.attrs == nil {
		r.attrs = make(map[string][]byte)
	}
	r.attrs[name] = value
}

// Attribute returns the value attached under name.
func (r *ScanRequest) Attribute(name string) ([]byte, bool) {
	v, ok := r.attrs[name]
	return v, ok
}

// AttributeNames returns the names of all attached attributes, sorted.
func (r *ScanRequest) AttributeNames() []string {
	names := make([]string, 0, len(r.attrs))
	for n := range r.attrs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NumAttributes returns the number of attached attributes.
func (r *ScanRequest) NumAttributes() int {
	return len(r.attrs)
}

// AttributesSize returns the total size of all attached values in bytes.
func (r *ScanRequest) AttributesSize() int64 {
	var n int64
	for _, v := range r.attrs {
		n += int64(len(v))
	}
	return n
}
