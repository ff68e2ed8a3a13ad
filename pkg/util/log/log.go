// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package log implements context-aware leveled logging. Messages are prefixed
// with the logging tags attached to the context (see logtags.AddTag) and are
// emitted to a zap sink.
package log

import (
	"context"
	"sync/atomic"

	"github.com/cockroachdb/scancompile/pkg/util/syncutil"
	"go.uber.org/zap"
)

// Severity is the severity of a log entry.
type Severity int32

const (
	// SeverityInfo is used for informational messages.
	SeverityInfo Severity = iota
	// SeverityWarning is used for conditions that may need attention.
	SeverityWarning
	// SeverityError is used for failures that were handled.
	SeverityError
	// SeverityFatal terminates the process after logging.
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

var logging struct {
	// verbosity is the level up to which V() returns true.
	verbosity int32
	// redactable, when set, keeps redaction markers in the emitted messages.
	redactable atomic.Bool

	mu struct {
		syncutil.Mutex
		sink         *zap.Logger
		exitOverride struct {
			f func(int)
		}
	}
}

func init() {
	sink, err := zap.NewProduction()
	if err != nil {
		sink = zap.NewNop()
	}
	logging.mu.sink = sink
}

// SetSink replaces the logger that receives every entry. It returns a
// function that restores the previous sink.
func SetSink(sink *zap.Logger) (restore func()) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	prev := logging.mu.sink
	logging.mu.sink = sink
	return func() {
		logging.mu.Lock()
		defer logging.mu.Unlock()
		logging.mu.sink = prev
	}
}

// SetVerbosity sets the level up to which V() returns true and returns the
// previous level.
func SetVerbosity(level int32) int32 {
	return atomic.SwapInt32(&logging.verbosity, level)
}

// SetRedactable controls whether redaction markers are kept in the output.
func SetRedactable(redactable bool) {
	logging.redactable.Store(redactable)
}

// V returns true if the logging verbosity is set to the specified level or
// higher.
func V(level int32) bool {
	return atomic.LoadInt32(&logging.verbosity) >= level
}

// Infof logs to the INFO severity.
func Infof(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, SeverityInfo, format, args)
}

// Warningf logs to the WARNING severity.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, SeverityWarning, format, args)
}

// Errorf logs to the ERROR severity.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, SeverityError, format, args)
}

// Fatalf logs to the FATAL severity and then terminates the process, unless
// an exit function was installed with SetExitFunc.
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, SeverityFatal, format, args)
	exit(255)
}

// VEventf logs an INFO message when the verbosity is at least level.
func VEventf(ctx context.Context, level int32, format string, args ...interface{}) {
	if V(level) {
		logDepth(ctx, SeverityInfo, format, args)
	}
}

func logDepth(ctx context.Context, sev Severity, format string, args []interface{}) {
	msg := formatEntry(ctx, logging.redactable.Load(), format, args)
	logging.mu.Lock()
	sink := logging.mu.sink
	logging.mu.Unlock()
	switch sev {
	case SeverityInfo:
		sink.Info(msg)
	case SeverityWarning:
		sink.Warn(msg)
	default:
		sink.Error(msg, zap.Stringer("severity", sev))
	}
}
