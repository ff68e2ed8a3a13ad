// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package syncutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssertHeld(t *testing.T) {
	var m Mutex
	require.Panics(t, m.AssertHeld)
	m.Lock()
	require.NotPanics(t, m.AssertHeld)
	m.Unlock()
	require.Panics(t, m.AssertHeld)
}

func TestRWMutexAssertHeld(t *testing.T) {
	var m RWMutex
	require.Panics(t, m.AssertHeld)
	require.Panics(t, m.AssertRHeld)

	m.RLock()
	require.NotPanics(t, m.AssertRHeld)
	require.Panics(t, m.AssertHeld)
	m.RUnlock()
	require.Panics(t, m.AssertRHeld)

	m.Lock()
	require.NotPanics(t, m.AssertHeld)
	require.NotPanics(t, m.AssertRHeld)
	m.Unlock()
}
