// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package projection

import (
	"strings"

	"github.com/cockroachdb/scancompile/pkg/sql/catalog"
)

// Field is one field of a KeyValueSchema.
type Field struct {
	Type     catalog.ColumnType
	Nullable bool
}

// KeyValueSchema describes the fields packed into a single encoded value.
type KeyValueSchema struct {
	// MinNullable is the number of leading fields that are always present.
	MinNullable int
	Fields      []Field
}

func (s KeyValueSchema) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, f := range s.Fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(f.Type.String())
		if f.Nullable {
			b.WriteByte('?')
		}
	}
	b.WriteByte(')')
	return b.String()
}

// KeyValueSchemaBuilder accumulates the fields of a KeyValueSchema.
type KeyValueSchemaBuilder struct {
	minNullable int
	fields      []Field
}

// NewKeyValueSchemaBuilder returns a builder for a schema whose first
// minNullable fields are always present.
func NewKeyValueSchemaBuilder(minNullable int) *KeyValueSchemaBuilder {
	return &KeyValueSchemaBuilder{minNullable: minNullable}
}

// AddField appends a field.
func (b *KeyValueSchemaBuilder) AddField(typ catalog.ColumnType, nullable bool) *KeyValueSchemaBuilder {
	b.fields = append(b.fields, Field{Type: typ, Nullable: nullable})
	return b
}

// AddExpr appends a field typed after e.
func (b *KeyValueSchemaBuilder) AddExpr(e Expr) *KeyValueSchemaBuilder {
	return b.AddField(e.Type(), e.Nullable())
}

// Build returns the schema. The builder may continue to be used.
func (b *KeyValueSchemaBuilder) Build() KeyValueSchema {
	return KeyValueSchema{
		MinNullable: b.minNullable,
		Fields:      append([]Field(nil), b.fields...),
	}
}
