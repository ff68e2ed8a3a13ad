// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package syncutil provides mutexes that can assert they are held.
package syncutil

import (
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

// A Mutex is a mutual exclusion lock.
type Mutex struct {
	mu   sync.Mutex
	held atomic.Bool
}

// Lock locks m.
func (m *Mutex) Lock() {
	m.mu.Lock()
	m.held.Store(true)
}

// Unlock unlocks m.
func (m *Mutex) Unlock() {
	m.held.Store(false)
	m.mu.Unlock()
}

// AssertHeld panics if the mutex is not locked. It does not check which
// goroutine holds it.
func (m *Mutex) AssertHeld() {
	if !m.held.Load() {
		panic(errors.AssertionFailedf("mutex is not locked"))
	}
}

// An RWMutex is a reader/writer mutual exclusion lock.
type RWMutex struct {
	mu      sync.RWMutex
	writer  atomic.Bool
	readers atomic.Int32
}

// Lock locks rw for writing.
func (rw *RWMutex) Lock() {
	rw.mu.Lock()
	rw.writer.Store(true)
}

// Unlock unlocks rw for writing.
func (rw *RWMutex) Unlock() {
	rw.writer.Store(false)
	rw.mu.Unlock()
}

// RLock locks rw for reading.
func (rw *RWMutex) RLock() {
	rw.mu.RLock()
	rw.readers.Add(1)
}

// RUnlock undoes a single RLock call.
func (rw *RWMutex) RUnlock() {
	rw.readers.Add(-1)
	rw.mu.RUnlock()
}

// AssertHeld panics if the mutex is not locked for writing.
func (rw *RWMutex) AssertHeld() {
	if !rw.writer.Load() {
		panic(errors.AssertionFailedf("mutex is not write locked"))
	}
}

// AssertRHeld panics if the mutex is locked neither for reading nor for
// writing.
func (rw *RWMutex) AssertRHeld() {
	if !rw.writer.Load() && rw.readers.Load() == 0 {
		panic(errors.AssertionFailedf("mutex is not read locked"))
	}
}
