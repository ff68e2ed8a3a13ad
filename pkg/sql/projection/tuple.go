// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package projection

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/scancompile/pkg/sql/catalog"
	"github.com/cockroachdb/scancompile/pkg/util/encoding"
)

// TupleProjector packs the values produced by Exprs into a single encoded
// value laid out according to Schema.
type TupleProjector struct {
	Schema KeyValueSchema
	Exprs  []Expr
}

func (p TupleProjector) String() string {
	var b strings.Builder
	b.WriteString(p.Schema.String())
	b.WriteString(" [")
	for i, e := range p.Exprs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Encode serializes the projector: the schema (vint minNullable, vint field
// count, then per field a vint type and a nullable byte) followed by a vint
// expression count and every expression as a vint kind and its payload.
func (p TupleProjector) Encode() []byte {
	var b []byte
	b = encoding.EncodeVInt(b, int64(p.Schema.MinNullable))
	b = encoding.EncodeVInt(b, int64(len(p.Schema.Fields)))
	for _, f := range p.Schema.Fields {
		b = encoding.EncodeVInt(b, int64(f.Type))
		b = appendBool(b, f.Nullable)
	}
	b = encoding.EncodeVInt(b, int64(len(p.Exprs)))
	for _, e := range p.Exprs {
		b = encodeExpr(b, e)
	}
	return b
}

func appendBool(b []byte, v bool) []byte {
	if v {
		return append(b, 1)
	}
	return append(b, 0)
}

func encodeExpr(b []byte, e Expr) []byte {
	b = encoding.EncodeVInt(b, int64(e.Kind()))
	switch t := e.(type) {
	case NullExpr:
	case RowKeyColumnExpr:
		b = encoding.EncodeVInt(b, int64(t.Typ))
		b = appendBool(b, t.Null)
		b = encoding.EncodeVInt(b, int64(t.Position))
	case KeyValueColumnExpr:
		b = encoding.EncodeVInt(b, int64(t.Typ))
		b = appendBool(b, t.Null)
		b = encoding.EncodeVIntBytes(b, []byte(t.Family))
		b = encoding.EncodeVIntBytes(b, []byte(t.Qualifier))
	case ProjectedColumnExpr:
		b = encoding.EncodeVInt(b, int64(t.Typ))
		b = appendBool(b, t.Null)
		b = encoding.EncodeVInt(b, int64(t.Position))
	default:
		panic(errors.AssertionFailedf("unhandled expression type %T", e))
	}
	return b
}

// DecodeTupleProjector decodes a projector written by Encode.
func DecodeTupleProjector(b []byte) (TupleProjector, error) {
	var p TupleProjector
	d := decoder{b: b}
	p.Schema.MinNullable = int(d.vint())
	n := d.count()
	for i := 0; i < n && d.err == nil; i++ {
		typ := catalog.ColumnType(d.vint())
		p.Schema.Fields = append(p.Schema.Fields, Field{Type: typ, Nullable: d.bool()})
	}
	n = d.count()
	for i := 0; i < n && d.err == nil; i++ {
		p.Exprs = append(p.Exprs, d.expr())
	}
	if d.err != nil {
		return TupleProjector{}, errors.Wrap(d.err, "decoding tuple projector")
	}
	if len(d.b) != 0 {
		return TupleProjector{}, errors.Newf("decoding tuple projector: %d trailing bytes", len(d.b))
	}
	return p, nil
}

// decoder latches the first error; once set, every read returns a zero
// value.
type decoder struct {
	b   []byte
	err error
}

func (d *decoder) vint() int64 {
	if d.err != nil {
		return 0
	}
	var v int64
	d.b, v, d.err = encoding.DecodeVInt(d.b)
	return v
}

func (d *decoder) count() int {
	n := d.vint()
	if d.err == nil && (n < 0 || n > int64(len(d.b))) {
		d.err = errors.Newf("invalid element count %d", n)
	}
	return int(n)
}

func (d *decoder) bool() bool {
	if d.err != nil {
		return false
	}
	if len(d.b) == 0 {
		d.err = errors.Wrap(encoding.ErrTruncated, "bool")
		return false
	}
	v := d.b[0]
	d.b = d.b[1:]
	return v != 0
}

func (d *decoder) bytes() string {
	if d.err != nil {
		return ""
	}
	var v []byte
	d.b, v, d.err = encoding.DecodeVIntBytes(d.b)
	return string(v)
}

func (d *decoder) expr() Expr {
	kind := ExprKind(d.vint())
	if d.err != nil {
		return nil
	}
	switch kind {
	case KindNull:
		return NullExpr{}
	case KindRowKeyColumn, KindKeyValueColumn, KindProjectedColumn:
	default:
		d.err = errors.Newf("unknown expression kind %d", int(kind))
		return nil
	}
	typ := catalog.ColumnType(d.vint())
	null := d.bool()
	switch kind {
	case KindRowKeyColumn:
		return RowKeyColumnExpr{Typ: typ, Null: null, Position: int(d.vint())}
	case KindKeyValueColumn:
		family := d.bytes()
		return KeyValueColumnExpr{Typ: typ, Null: null, Family: family, Qualifier: d.bytes()}
	default:
		return ProjectedColumnExpr{Typ: typ, Null: null, Position: int(d.vint())}
	}
}
