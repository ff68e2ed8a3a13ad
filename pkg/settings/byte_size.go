// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package settings

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/scancompile/pkg/util/humanizeutil"
)

// ByteSizeSetting is the interface of a setting variable that will be
// updated automatically when the corresponding cluster-wide setting
// of type "int" is updated, with the value interpreted as a size in bytes.
type ByteSizeSetting struct {
	IntSetting
}

var _ internalSetting = &ByteSizeSetting{}

// RegisterByteSizeSetting defines a new setting with type bytesize. Sizes may
// be set either as plain integers or in the humanized form ("64 KiB").
func RegisterByteSizeSetting(
	key, desc string, defaultValue int64, validateFns ...func(int64) error,
) *ByteSizeSetting {
	s := &ByteSizeSetting{IntSetting{
		defaultValue: defaultValue,
		validateFn:   combineInt(validateFns),
	}}
	if err := s.Validate(defaultValue); err != nil {
		panic(errors.Wrapf(err, "invalid default value for %s", key))
	}
	register(key, desc, s)
	return s
}

// Typ returns the short (1 char) string denoting the type of setting.
func (*ByteSizeSetting) Typ() string {
	return "z"
}

func (b *ByteSizeSetting) String(sv *Values) string {
	return humanizeutil.IBytes(b.Get(sv))
}

func (b *ByteSizeSetting) decodeAndSet(sv *Values, encoded string) error {
	v, err := humanizeutil.ParseBytes(encoded)
	if err != nil {
		return errors.Wrapf(err, "setting %q", b.key)
	}
	return b.validateAndSet(sv, v)
}
