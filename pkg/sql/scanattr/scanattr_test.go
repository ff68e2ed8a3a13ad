// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package scanattr

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/cockroachdb/scancompile/pkg/sql/catalog"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
)

func TestEncodeColumnsToJoin(t *testing.T) {
	require.Equal(t, []byte{1, 1, 'F', 1, 'd'}, EncodeColumnsToJoin([]JoinColumn{{Family: "F", Qualifier: "d"}}))
	require.Equal(t, []byte{0}, EncodeColumnsToJoin(nil))
}

func TestColumnsToJoinRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	for n := 0; n < 20; n++ {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			cols := make([]JoinColumn, n)
			for i := range cols {
				cols[i] = JoinColumn{
					Family:    fmt.Sprintf("F%d", rng.Intn(3)),
					Qualifier: string(bytes.Repeat([]byte{'q'}, rng.Intn(200))),
				}
			}
			dec, err := DecodeColumnsToJoin(EncodeColumnsToJoin(cols))
			require.NoError(t, err)
			require.Equal(t, cols, dec, "%# v", pretty.Formatter(dec))
		})
	}
}

func TestDecodeColumnsToJoinErrors(t *testing.T) {
	enc := EncodeColumnsToJoin([]JoinColumn{{Family: "F", Qualifier: "d"}, {Family: "G", Qualifier: "e"}})
	for i := 0; i < len(enc); i++ {
		_, err := DecodeColumnsToJoin(enc[:i])
		require.Error(t, err, "prefix %d", i)
	}
	_, err := DecodeColumnsToJoin(append(enc, 7))
	require.ErrorContains(t, err, "1 trailing bytes")
	_, err = DecodeColumnsToJoin([]byte{0x87, 0x70})
	require.ErrorContains(t, err, "invalid column count -113")
}

func TestViewConstantsRoundTrip(t *testing.T) {
	constants := [][]byte{[]byte("abc"), {}, bytes.Repeat([]byte{0xff}, 300)}
	enc := EncodeViewConstants(constants)
	require.Equal(t, []byte{3, 3, 'a', 'b', 'c', 0}, enc[:6])
	dec, err := DecodeViewConstants(enc)
	require.NoError(t, err)
	require.Equal(t, constants, dec)

	_, err = DecodeViewConstants(enc[:len(enc)-1])
	require.Error(t, err)
	_, err = DecodeViewConstants(append(enc, 0))
	require.ErrorContains(t, err, "trailing bytes")
}

func TestProtoMaintainerCodec(t *testing.T) {
	idx, err := catalog.MakeTable(catalog.TableDescriptor{
		ID:        8,
		Name:      "I",
		Type:      catalog.TableTypeIndex,
		IndexType: catalog.IndexTypeLocal,
		Columns:   []catalog.Column{{Name: ":k"}, {Name: "F:a", Family: "F"}},
	})
	require.NoError(t, err)
	data, err := catalog.MakeTable(catalog.TableDescriptor{
		ID:      7,
		Name:    "T",
		Columns: []catalog.Column{{Name: "k"}, {Name: "a", Family: "F"}},
		Indexes: []*catalog.Table{idx},
	})
	require.NoError(t, err)

	var codec IndexMaintainerCodec = ProtoMaintainerCodec{}
	enc, err := codec.EncodeIndexMaintainers(data, nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x0a, 1, 'T', 0x10, 7}, enc)

	enc, err = codec.EncodeIndexMaintainers(data, data.Indexes())
	require.NoError(t, err)
	dec, err := DecodeProtoMaintainer(enc)
	require.NoError(t, err)
	require.Equal(t, MaintainerDescriptor{
		DataTableName: "T",
		DataTableID:   7,
		Indexes:       []MaintainedIndex{{Name: "I", ID: 8, Columns: []string{":k", "F:a"}}},
	}, dec)

	again, err := codec.EncodeIndexMaintainers(data, data.Indexes())
	require.NoError(t, err)
	require.Equal(t, enc, again)
}

func TestDecodeProtoMaintainerErrors(t *testing.T) {
	testCases := []struct {
		in  []byte
		err string
	}{
		{in: []byte{0x80}, err: "malformed field tag"},
		{in: []byte{0x10}, err: "malformed varint in field 2"},
		{in: []byte{0x0a, 5, 'a'}, err: "malformed length-delimited field 1"},
		{in: []byte{0x0d}, err: "unsupported wire type 5"},
		{in: []byte{0x1a, 1, 0x80}, err: "index 0"},
	}
	for _, tc := range testCases {
		_, err := DecodeProtoMaintainer(tc.in)
		require.ErrorContains(t, err, tc.err)
	}
}

func TestJoinColumnString(t *testing.T) {
	require.Equal(t, "F:d", JoinColumn{Family: "F", Qualifier: "d"}.String())
}
