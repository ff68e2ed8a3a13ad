// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package settings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const mb = int64(1024 * 1024)

var boolTA = RegisterBoolSetting("bool.t", "", true)
var boolFA = RegisterBoolSetting("bool.f", "", false)
var i1A = RegisterIntSetting("i.1", "", 0)
var i2A = RegisterIntSetting("i.2", "", 5, NonNegativeInt)
var byteSize = RegisterByteSizeSetting("zzz", "", mb)

func TestCache(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		sv := MakeTestingValues()
		require.False(t, boolFA.Get(sv))
		require.True(t, boolTA.Get(sv))
		require.Equal(t, int64(0), i1A.Get(sv))
		require.Equal(t, int64(5), i2A.Get(sv))
		require.Equal(t, mb, byteSize.Get(sv))
		// A nil container reports defaults too.
		require.Equal(t, mb, byteSize.Get(nil))
	})

	t.Run("lookup", func(t *testing.T) {
		if actual, _, ok := Lookup("i.1"); !ok || i1A != actual {
			t.Fatalf("expected %v, got %v (exists: %v)", i1A, actual, ok)
		}
		if actual, _, ok := Lookup("zzz"); !ok || byteSize != actual {
			t.Fatalf("expected %v, got %v (exists: %v)", byteSize, actual, ok)
		}
		if actual, _, ok := Lookup("dne"); ok {
			t.Fatalf("expected nothing, got %v", actual)
		}
		require.Subset(t, Keys(), []string{"bool.f", "bool.t", "i.1", "i.2", "zzz"})
	})

	t.Run("read and write each type", func(t *testing.T) {
		sv := MakeTestingValues()
		u := NewUpdater(sv)
		require.NoError(t, u.Set("bool.t", EncodeBool(false)))
		require.NoError(t, u.Set("bool.f", EncodeBool(true)))
		require.NoError(t, u.Set("i.2", EncodeInt(3)))
		require.NoError(t, u.Set("zzz", "5 MiB"))

		require.False(t, boolTA.Get(sv))
		require.True(t, boolFA.Get(sv))
		require.Equal(t, int64(3), i2A.Get(sv))
		require.Equal(t, mb*5, byteSize.Get(sv))
		require.Equal(t, "5.0 MiB", byteSize.String(sv))

		// We didn't change this one, so should still see the default.
		require.Equal(t, int64(0), i1A.Get(sv))

		// Other containers are unaffected.
		require.True(t, boolTA.Get(MakeTestingValues()))
	})

	t.Run("reset to default", func(t *testing.T) {
		sv := MakeTestingValues()
		u := NewUpdater(sv)
		require.NoError(t, u.Set("bool.f", EncodeBool(true)))
		require.True(t, boolFA.Get(sv))
		require.NoError(t, u.ResetToDefault("bool.f"))
		require.False(t, boolFA.Get(sv))
		require.Error(t, u.ResetToDefault("dne"))
	})

	t.Run("an invalid update to a given setting preserves its previously set value", func(t *testing.T) {
		sv := MakeTestingValues()
		u := NewUpdater(sv)
		require.NoError(t, u.Set("i.2", EncodeInt(9)))

		require.ErrorContains(t, u.Set("i.2", EncodeBool(false)), "invalid syntax")
		require.Equal(t, int64(9), i2A.Get(sv))

		require.ErrorContains(t, u.Set("i.2", EncodeInt(-1)), "cannot be set to a negative value")
		require.Equal(t, int64(9), i2A.Get(sv))

		require.ErrorContains(t, u.Set("nope", "1"), "unknown setting")
	})

	t.Run("encoded defaults", func(t *testing.T) {
		require.Equal(t, "true", boolTA.EncodedDefault())
		require.Equal(t, "5", i2A.EncodedDefault())
		require.Equal(t, "z", byteSize.Typ())
	})
}
