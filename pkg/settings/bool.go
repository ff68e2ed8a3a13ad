// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package settings

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// BoolSetting is the interface of a setting variable that will be
// updated automatically when the corresponding cluster-wide setting
// of type "bool" is updated.
type BoolSetting struct {
	common
	defaultValue bool
}

var _ internalSetting = &BoolSetting{}

// RegisterBoolSetting defines a new setting with type bool.
func RegisterBoolSetting(key, desc string, defaultValue bool) *BoolSetting {
	s := &BoolSetting{defaultValue: defaultValue}
	register(key, desc, s)
	return s
}

// Get retrieves the bool value in the setting. A nil container yields the
// default.
func (b *BoolSetting) Get(sv *Values) bool {
	if v, ok := sv.get(b.slot); ok {
		return v.(bool)
	}
	return b.defaultValue
}

// Override changes the setting without validation. For use in tests.
func (b *BoolSetting) Override(sv *Values, v bool) {
	sv.set(b.slot, v)
}

// Typ returns the short (1 char) string denoting the type of setting.
func (*BoolSetting) Typ() string {
	return "b"
}

func (b *BoolSetting) String(sv *Values) string {
	return EncodeBool(b.Get(sv))
}

// EncodedDefault returns the encoded value of the default value.
func (b *BoolSetting) EncodedDefault() string {
	return EncodeBool(b.defaultValue)
}

func (b *BoolSetting) decodeAndSet(sv *Values, encoded string) error {
	v, err := strconv.ParseBool(encoded)
	if err != nil {
		return errors.Wrapf(err, "setting %q", b.key)
	}
	b.Override(sv, v)
	return nil
}

// EncodeBool encodes a bool in the format parseRaw expects.
func EncodeBool(b bool) string {
	return strconv.FormatBool(b)
}
