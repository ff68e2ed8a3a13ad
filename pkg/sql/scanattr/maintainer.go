// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package scanattr

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/scancompile/pkg/sql/catalog"
	"github.com/gogo/protobuf/proto"
)

// IndexMaintainerCodec serializes the maintenance metadata of a data table's
// indexes into the payload attached under LocalIndexBuild. The format belongs
// to the executor; implementations must produce it bit for bit.
type IndexMaintainerCodec interface {
	EncodeIndexMaintainers(dataTable *catalog.Table, indexes []*catalog.Table) ([]byte, error)
}

// Field numbers of the ProtoMaintainerCodec format.
const (
	maintainerFieldDataTableName = 1
	maintainerFieldDataTableID   = 2
	maintainerFieldIndex         = 3

	indexFieldName   = 1
	indexFieldID     = 2
	indexFieldColumn = 3
)

const (
	wireVarint = 0
	wireBytes  = 2
)

// ProtoMaintainerCodec writes the maintainer descriptor as protobuf wire
// fields: the data table name (1) and id (2), then one embedded message (3)
// per index holding its name (1), id (2) and indexed column names (3,
// repeated).
type ProtoMaintainerCodec struct{}

var _ IndexMaintainerCodec = ProtoMaintainerCodec{}

// MaintainedIndex is the decoded form of one index in a ProtoMaintainerCodec
// payload.
type MaintainedIndex struct {
	Name    string
	ID      catalog.ID
	Columns []string
}

// MaintainerDescriptor is the decoded form of a ProtoMaintainerCodec payload.
type MaintainerDescriptor struct {
	DataTableName string
	DataTableID   catalog.ID
	Indexes       []MaintainedIndex
}

func tag(field, wire uint64) uint64 {
	return field<<3 | wire
}

// EncodeIndexMaintainers implements the IndexMaintainerCodec interface.
func (ProtoMaintainerCodec) EncodeIndexMaintainers(
	dataTable *catalog.Table, indexes []*catalog.Table,
) ([]byte, error) {
	buf := proto.NewBuffer(nil)
	if err := encodeString(buf, maintainerFieldDataTableName, dataTable.Name()); err != nil {
		return nil, err
	}
	if err := encodeVarint(buf, maintainerFieldDataTableID, uint64(dataTable.ID())); err != nil {
		return nil, err
	}
	for _, idx := range indexes {
		inner := proto.NewBuffer(nil)
		if err := encodeString(inner, indexFieldName, idx.Name()); err != nil {
			return nil, err
		}
		if err := encodeVarint(inner, indexFieldID, uint64(idx.ID())); err != nil {
			return nil, err
		}
		for i := range idx.Columns() {
			if err := encodeString(inner, indexFieldColumn, idx.Column(i).Name); err != nil {
				return nil, err
			}
		}
		if err := buf.EncodeVarint(tag(maintainerFieldIndex, wireBytes)); err != nil {
			return nil, err
		}
		if err := buf.EncodeRawBytes(inner.Bytes()); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func encodeString(buf *proto.Buffer, field uint64, s string) error {
	if err := buf.EncodeVarint(tag(field, wireBytes)); err != nil {
		return err
	}
	return buf.EncodeStringBytes(s)
}

func encodeVarint(buf *proto.Buffer, field uint64, v uint64) error {
	if err := buf.EncodeVarint(tag(field, wireVarint)); err != nil {
		return err
	}
	return buf.EncodeVarint(v)
}

// DecodeProtoMaintainer decodes a payload written by ProtoMaintainerCodec.
func DecodeProtoMaintainer(b []byte) (MaintainerDescriptor, error) {
	var d MaintainerDescriptor
	err := decodeFields(b, func(field uint64, v uint64, data []byte) error {
		switch field {
		case maintainerFieldDataTableName:
			d.DataTableName = string(data)
		case maintainerFieldDataTableID:
			d.DataTableID = catalog.ID(v)
		case maintainerFieldIndex:
			var idx MaintainedIndex
			if err := decodeFields(data, func(field uint64, v uint64, data []byte) error {
				switch field {
				case indexFieldName:
					idx.Name = string(data)
				case indexFieldID:
					idx.ID = catalog.ID(v)
				case indexFieldColumn:
					idx.Columns = append(idx.Columns, string(data))
				}
				return nil
			}); err != nil {
				return errors.Wrapf(err, "index %d", len(d.Indexes))
			}
			d.Indexes = append(d.Indexes, idx)
		}
		return nil
	})
	return d, errors.Wrap(err, "decoding index maintainer")
}

// decodeFields calls f for every varint or length-delimited field of b.
// Unknown fields are passed to f as well and ignored there.
func decodeFields(b []byte, f func(field uint64, v uint64, data []byte) error) error {
	for len(b) > 0 {
		t, n := proto.DecodeVarint(b)
		if n == 0 {
			return errors.New("malformed field tag")
		}
		b = b[n:]
		field, wire := t>>3, t&7
		var v uint64
		var data []byte
		switch wire {
		case wireVarint:
			if v, n = proto.DecodeVarint(b); n == 0 {
				return errors.Newf("malformed varint in field %d", field)
			}
			b = b[n:]
		case wireBytes:
			l, n := proto.DecodeVarint(b)
			if n == 0 || uint64(len(b)-n) < l {
				return errors.Newf("malformed length-delimited field %d", field)
			}
			data = b[n : n+int(l)]
			b = b[n+int(l):]
		default:
			return errors.Newf("unsupported wire type %d in field %d", wire, field)
		}
		if err := f(field, v, data); err != nil {
			return err
		}
	}
	return nil
}
