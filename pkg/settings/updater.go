// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package settings

import "github.com/cockroachdb/errors"

// Updater is a helper for updating the in-memory settings from their
// encoded form, e.g. a configuration file or command line overrides.
//
// An Updater is not safe for concurrent use.
type Updater struct {
	sv *Values
}

// NewUpdater makes an Updater writing into sv.
func NewUpdater(sv *Values) *Updater {
	return &Updater{sv: sv}
}

// Set attempts to parse and update a setting. An unknown key is an error.
func (u *Updater) Set(key, encoded string) error {
	d, ok := registry[key]
	if !ok {
		return errors.Errorf("unknown setting %q", key)
	}
	return d.setting.(internalSetting).decodeAndSet(u.sv, encoded)
}

// ResetToDefault clears any value set for key.
func (u *Updater) ResetToDefault(key string) error {
	d, ok := registry[key]
	if !ok {
		return errors.Errorf("unknown setting %q", key)
	}
	u.sv.reset(d.setting.(internalSetting).getSlot())
	return nil
}
