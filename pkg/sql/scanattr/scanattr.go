// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package scanattr encodes the metadata a remote scan executor needs to join
// an index scan back to its data table. Every payload is attached to the scan
// request under one of the reserved attribute names below.
//
// List payloads are framed as a vint element count followed by the elements,
// each a vint length and that many bytes.
package scanattr

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/scancompile/pkg/util/encoding"
)

// Reserved attribute names. These are understood by the deployed executor and
// must not change.
const (
	DataTableColumnsToJoin = "_DataTableColumnsToJoin"
	IndexProjector         = "_IndexProjector"
	LocalIndexBuild        = "_LocalIndexBuild"
	TxState                = "_TxState"
	ViewConstants          = "_ViewConstants"
)

// JoinColumn identifies a data table column to fetch during join-back.
type JoinColumn struct {
	Family    string
	Qualifier string
}

func (c JoinColumn) String() string {
	return c.Family + ":" + c.Qualifier
}

// EncodeColumnsToJoin encodes the columns to join: the column count, then
// the family and the qualifier of every column.
func EncodeColumnsToJoin(cols []JoinColumn) []byte {
	b := encoding.EncodeVInt(nil, int64(len(cols)))
	for _, c := range cols {
		b = encoding.EncodeVIntBytes(b, []byte(c.Family))
		b = encoding.EncodeVIntBytes(b, []byte(c.Qualifier))
	}
	return b
}

// DecodeColumnsToJoin decodes a payload written by EncodeColumnsToJoin.
func DecodeColumnsToJoin(b []byte) ([]JoinColumn, error) {
	b, n, err := encoding.DecodeVInt(b)
	if err != nil {
		return nil, errors.Wrap(err, "decoding column count")
	}
	if n < 0 || n > int64(len(b)) {
		return nil, errors.Newf("invalid column count %d", n)
	}
	cols := make([]JoinColumn, 0, n)
	for i := int64(0); i < n; i++ {
		var family, qualifier []byte
		if b, family, err = encoding.DecodeVIntBytes(b); err != nil {
			return nil, errors.Wrapf(err, "decoding family of column %d", i)
		}
		if b, qualifier, err = encoding.DecodeVIntBytes(b); err != nil {
			return nil, errors.Wrapf(err, "decoding qualifier of column %d", i)
		}
		cols = append(cols, JoinColumn{Family: string(family), Qualifier: string(qualifier)})
	}
	if len(b) != 0 {
		return nil, errors.Newf("%d trailing bytes after columns to join", len(b))
	}
	return cols, nil
}

// EncodeViewConstants encodes the resolved view constants in primary key
// order.
func EncodeViewConstants(constants [][]byte) []byte {
	return encoding.EncodeVIntBytesList(nil, constants)
}

// DecodeViewConstants decodes a payload written by EncodeViewConstants.
func DecodeViewConstants(b []byte) ([][]byte, error) {
	b, list, err := encoding.DecodeVIntBytesList(b)
	if err != nil {
		return nil, errors.Wrap(err, "decoding view constants")
	}
	if len(b) != 0 {
		return nil, errors.Newf("%d trailing bytes after view constants", len(b))
	}
	return list, nil
}
