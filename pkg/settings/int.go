// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package settings

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// IntSetting is the interface of a setting variable that will be
// updated automatically when the corresponding cluster-wide setting
// of type "int" is updated.
type IntSetting struct {
	common
	defaultValue int64
	validateFn   func(int64) error
}

var _ internalSetting = &IntSetting{}

// RegisterIntSetting defines a new setting with type int. The optional
// validation function is applied to every value set through an Updater.
func RegisterIntSetting(
	key, desc string, defaultValue int64, validateFns ...func(int64) error,
) *IntSetting {
	s := &IntSetting{defaultValue: defaultValue, validateFn: combineInt(validateFns)}
	if err := s.Validate(defaultValue); err != nil {
		panic(errors.Wrapf(err, "invalid default value for %s", key))
	}
	register(key, desc, s)
	return s
}

// NonNegativeInt can be passed to RegisterIntSetting.
func NonNegativeInt(v int64) error {
	if v < 0 {
		return errors.Errorf("cannot be set to a negative value: %d", v)
	}
	return nil
}

func combineInt(fns []func(int64) error) func(int64) error {
	return func(v int64) error {
		for _, fn := range fns {
			if err := fn(v); err != nil {
				return err
			}
		}
		return nil
	}
}

// Get retrieves the int value in the setting.
func (i *IntSetting) Get(sv *Values) int64 {
	if v, ok := sv.get(i.slot); ok {
		return v.(int64)
	}
	return i.defaultValue
}

// Validate that a value conforms with the validation function.
func (i *IntSetting) Validate(v int64) error {
	if i.validateFn != nil {
		return i.validateFn(v)
	}
	return nil
}

// Override changes the setting without validation. For use in tests.
func (i *IntSetting) Override(sv *Values, v int64) {
	sv.set(i.slot, v)
}

// Typ returns the short (1 char) string denoting the type of setting.
func (*IntSetting) Typ() string {
	return "i"
}

func (i *IntSetting) String(sv *Values) string {
	return EncodeInt(i.Get(sv))
}

// EncodedDefault returns the encoded value of the default value.
func (i *IntSetting) EncodedDefault() string {
	return EncodeInt(i.defaultValue)
}

func (i *IntSetting) decodeAndSet(sv *Values, encoded string) error {
	v, err := strconv.ParseInt(encoded, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "setting %q", i.key)
	}
	return i.validateAndSet(sv, v)
}

func (i *IntSetting) validateAndSet(sv *Values, v int64) error {
	if err := i.Validate(v); err != nil {
		return errors.Wrapf(err, "setting %q", i.key)
	}
	i.Override(sv, v)
	return nil
}

// EncodeInt encodes an int in the format parseRaw expects.
func EncodeInt(i int64) string {
	return strconv.FormatInt(i, 10)
}
