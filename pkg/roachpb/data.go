// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package roachpb defines the physical requests produced by scan
// compilation.
package roachpb

import (
	"bytes"
	"fmt"
)

// Key is a storage key.
type Key []byte

// Compare compares the two keys.
func (k Key) Compare(b Key) int {
	return bytes.Compare(k, b)
}

// Equal returns whether two keys are identical.
func (k Key) Equal(l Key) bool {
	return bytes.Equal(k, l)
}

// Next returns the next key in lexicographic sort order. The method may only
// take a shallow copy of the Key, so both the receiver and the return value
// should be treated as immutable after.
func (k Key) Next() Key {
	return append(k[:len(k):len(k)], 0)
}

func (k Key) String() string {
	return fmt.Sprintf("%q", []byte(k))
}

// Span is a key range with an inclusive start Key and an exclusive end Key.
// A span with an empty EndKey addresses the single key Key.
type Span struct {
	Key    Key
	EndKey Key
}

// Valid returns whether the span is well-formed.
func (s Span) Valid() bool {
	if len(s.EndKey) == 0 {
		return true
	}
	return s.Key.Compare(s.EndKey) < 0
}

// ZeroLength returns true if the distance between the start and end key is 0.
func (s Span) ZeroLength() bool {
	return s.Key.Equal(s.EndKey)
}

func (s Span) String() string {
	if len(s.EndKey) == 0 {
		return s.Key.String()
	}
	return fmt.Sprintf("[%s, %s)", s.Key, s.EndKey)
}
