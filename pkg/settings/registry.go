// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package settings

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// registry contains all defined settings, their types and default values.
//
// Registry should never be mutated after init (except in tests), as it is read
// concurrently by different callers.
var registry = map[string]wrappedSetting{}

// slotTable maps a slot index to its setting.
var slotTable []Setting

type wrappedSetting struct {
	description string
	setting     Setting
}

// register adds a setting to the registry and assigns it a slot in Values.
func register(key, desc string, s internalSetting) {
	if _, ok := registry[key]; ok {
		panic(errors.AssertionFailedf("setting already defined: %s", key))
	}
	s.init(key, slotIdx(len(slotTable)))
	slotTable = append(slotTable, s)
	registry[key] = wrappedSetting{description: desc, setting: s}
}

// Keys returns a sorted string array with all the known keys.
func Keys() (res []string) {
	res = make([]string, 0, len(registry))
	for k := range registry {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

// Lookup returns a Setting by name along with its description.
func Lookup(name string) (Setting, string, bool) {
	v, ok := registry[name]
	if !ok {
		return nil, "", false
	}
	return v.setting, v.description, true
}
