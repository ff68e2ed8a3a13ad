// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package settings defines named, typed configuration knobs. A setting is
// registered once at init time; its current value lives in a Values container
// so that independent components (and tests) can carry independent
// configurations.
package settings

import "github.com/cockroachdb/scancompile/pkg/util/syncutil"

type slotIdx int32

// Setting is the interface implemented by every registered setting.
type Setting interface {
	// Key returns the name under which the setting is registered.
	Key() string
	// Typ returns the short (1 char) string denoting the type of setting.
	Typ() string
	// String returns the current value of the setting, formatted for humans.
	String(sv *Values) string
	// EncodedDefault returns the encoded default value.
	EncodedDefault() string
}

type internalSetting interface {
	Setting
	init(key string, slot slotIdx)
	getSlot() slotIdx
	decodeAndSet(sv *Values, encoded string) error
}

type common struct {
	key  string
	slot slotIdx
}

func (c *common) init(key string, slot slotIdx) {
	c.key = key
	c.slot = slot
}

func (c *common) getSlot() slotIdx {
	return c.slot
}

// Key implements the Setting interface.
func (c *common) Key() string {
	return c.key
}

// Values is a container that stores the current values of all settings.
// The zero value is ready to use and reports every setting at its default.
type Values struct {
	mu struct {
		syncutil.RWMutex
		vals map[slotIdx]interface{}
	}
}

// MakeTestingValues returns an empty container. It exists to make call sites
// in tests read naturally.
func MakeTestingValues() *Values {
	return &Values{}
}

func (sv *Values) get(slot slotIdx) (interface{}, bool) {
	if sv == nil {
		return nil, false
	}
	sv.mu.RLock()
	defer sv.mu.RUnlock()
	v, ok := sv.mu.vals[slot]
	return v, ok
}

func (sv *Values) set(slot slotIdx, v interface{}) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	if sv.mu.vals == nil {
		sv.mu.vals = make(map[slotIdx]interface{})
	}
	sv.mu.vals[slot] = v
}

func (sv *Values) reset(slot slotIdx) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	delete(sv.mu.vals, slot)
}
