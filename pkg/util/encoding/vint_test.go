// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package encoding

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestEncodeVInt(t *testing.T) {
	testCases := []struct {
		value    int64
		expected []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{-1, []byte{0xff}},
		{-112, []byte{0x90}},
		{128, []byte{0x8f, 0x80}},
		{255, []byte{0x8f, 0xff}},
		{256, []byte{0x8e, 0x01, 0x00}},
		{-113, []byte{0x87, 0x70}},
		{-256, []byte{0x87, 0xff}},
		{-257, []byte{0x86, 0x01, 0x00}},
		{math.MaxInt64, []byte{0x88, 0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{math.MinInt64, []byte{0x80, 0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}
	for _, c := range testCases {
		enc := EncodeVInt(nil, c.value)
		if !bytes.Equal(enc, c.expected) {
			t.Errorf("EncodeVInt(%d): expected %x, got %x", c.value, c.expected, enc)
		}
		if size := VIntSize(c.value); size != len(c.expected) {
			t.Errorf("VIntSize(%d): expected %d, got %d", c.value, len(c.expected), size)
		}
		rem, dec, err := DecodeVInt(append(enc, 0xaa))
		require.NoError(t, err)
		require.Equal(t, c.value, dec)
		require.Equal(t, []byte{0xaa}, rem)
	}
}

func TestVIntRandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	for i := 0; i < 10000; i++ {
		v := rng.Int63() >> uint(rng.Intn(63))
		if rng.Intn(2) == 0 {
			v = -v
		}
		rem, dec, err := DecodeVInt(EncodeVInt(nil, v))
		require.NoError(t, err)
		require.Empty(t, rem)
		require.Equal(t, v, dec)
	}
}

func TestDecodeVIntTruncated(t *testing.T) {
	_, _, err := DecodeVInt(nil)
	require.True(t, errors.Is(err, ErrTruncated))

	enc := EncodeVInt(nil, 1<<40)
	_, _, err = DecodeVInt(enc[:len(enc)-1])
	require.True(t, errors.Is(err, ErrTruncated))

	_, _, err = DecodeVIntBytes(EncodeVInt(nil, 10))
	require.True(t, errors.Is(err, ErrTruncated))
}

func TestVIntBytesList(t *testing.T) {
	list := [][]byte{
		[]byte("f"),
		{},
		bytes.Repeat([]byte{0x01}, 300),
	}
	enc := EncodeVIntBytesList(nil, list)
	// Count, then each string prefixed by its length.
	require.Equal(t, byte(3), enc[0])
	require.Equal(t, []byte{0x01, 'f'}, enc[1:3])

	rem, dec, err := DecodeVIntBytesList(enc)
	require.NoError(t, err)
	require.Empty(t, rem)
	require.Equal(t, list, dec)

	// Decoded elements must not alias the input.
	dec[0][0] = 'g'
	require.Equal(t, byte('f'), enc[2])
}
