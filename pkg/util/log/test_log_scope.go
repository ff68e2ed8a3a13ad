// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

// TestLogScope represents the lifetime of a logging output redirection in a
// test. While the scope is open, every entry is written to the test's own log.
type TestLogScope struct {
	restore       func()
	prevVerbosity int32
}

// Scope redirects the log output to t.Log for the remainder of the test.
// The returned scope must be closed, typically with:
//
//	defer log.Scope(t).Close(t)
func Scope(t testing.TB) *TestLogScope {
	t.Helper()
	return &TestLogScope{
		restore:       SetSink(zaptest.NewLogger(t)),
		prevVerbosity: SetVerbosity(2),
	}
}

// Close restores the logging configuration in effect before Scope was
// called.
func (l *TestLogScope) Close(t testing.TB) {
	t.Helper()
	SetVerbosity(l.prevVerbosity)
	l.restore()
}
