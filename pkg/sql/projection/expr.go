// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package projection builds the column expressions, row schemas and
// projectors that describe how scanned rows are shaped.
package projection

import (
	"fmt"

	"github.com/cockroachdb/scancompile/pkg/sql/catalog"
)

// ExprKind identifies the kind of an Expr. Its numeric value is part of the
// tuple projector wire format.
type ExprKind int

// Expression kinds.
const (
	// KindNull is the null literal.
	KindNull ExprKind = iota
	// KindRowKeyColumn reads a primary key column out of the row key.
	KindRowKeyColumn
	// KindKeyValueColumn reads a column stored in a column family.
	KindKeyValueColumn
	// KindProjectedColumn reads a column of a projected row by position.
	KindProjectedColumn
)

func (k ExprKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindRowKeyColumn:
		return "rowkey"
	case KindKeyValueColumn:
		return "kv"
	case KindProjectedColumn:
		return "projected"
	default:
		return fmt.Sprintf("ExprKind(%d)", int(k))
	}
}

// Expr is an evaluable expression producing one value of a scanned row.
type Expr interface {
	fmt.Stringer
	Kind() ExprKind
	Type() catalog.ColumnType
	Nullable() bool
}

// NullExpr is the null literal. It stands in for values that are not fetched
// while keeping the positions of the other values stable.
type NullExpr struct{}

// RowKeyColumnExpr reads the primary key column at Position.
type RowKeyColumnExpr struct {
	Position int
	Typ      catalog.ColumnType
	Null     bool
}

// KeyValueColumnExpr reads the column Qualifier of family Family.
type KeyValueColumnExpr struct {
	Family    string
	Qualifier string
	Typ       catalog.ColumnType
	Null      bool
}

// ProjectedColumnExpr reads the value at Position of a projected row.
type ProjectedColumnExpr struct {
	Position int
	Typ      catalog.ColumnType
	Null     bool
}

var (
	_ Expr = NullExpr{}
	_ Expr = RowKeyColumnExpr{}
	_ Expr = KeyValueColumnExpr{}
	_ Expr = ProjectedColumnExpr{}
)

// Kind implements the Expr interface.
func (NullExpr) Kind() ExprKind { return KindNull }

// Type implements the Expr interface.
func (NullExpr) Type() catalog.ColumnType { return catalog.TypeUnknown }

// Nullable implements the Expr interface.
func (NullExpr) Nullable() bool { return true }

func (NullExpr) String() string { return "NULL" }

// Kind implements the Expr interface.
func (RowKeyColumnExpr) Kind() ExprKind { return KindRowKeyColumn }

// Type implements the Expr interface.
func (e RowKeyColumnExpr) Type() catalog.ColumnType { return e.Typ }

// Nullable implements the Expr interface.
func (e RowKeyColumnExpr) Nullable() bool { return e.Null }

func (e RowKeyColumnExpr) String() string { return fmt.Sprintf("rowkey[%d]", e.Position) }

// Kind implements the Expr interface.
func (KeyValueColumnExpr) Kind() ExprKind { return KindKeyValueColumn }

// Type implements the Expr interface.
func (e KeyValueColumnExpr) Type() catalog.ColumnType { return e.Typ }

// Nullable implements the Expr interface.
func (e KeyValueColumnExpr) Nullable() bool { return e.Null }

func (e KeyValueColumnExpr) String() string { return e.Family + "." + e.Qualifier }

// Kind implements the Expr interface.
func (ProjectedColumnExpr) Kind() ExprKind { return KindProjectedColumn }

// Type implements the Expr interface.
func (e ProjectedColumnExpr) Type() catalog.ColumnType { return e.Typ }

// Nullable implements the Expr interface.
func (e ProjectedColumnExpr) Nullable() bool { return e.Null }

func (e ProjectedColumnExpr) String() string { return fmt.Sprintf("projected[%d]", e.Position) }

// NewColumnExpr returns the expression reading the column with the given
// ordinal of t. Columns of projected tables are read by their position within
// the projected row, primary key columns out of the row key, and all other
// columns out of their family.
func NewColumnExpr(t *catalog.Table, ordinal int) Expr {
	c := t.Column(ordinal)
	switch {
	case t.Type() == catalog.TableTypeProjected:
		return ProjectedColumnExpr{Position: c.Ordinal, Typ: c.Type, Null: c.Nullable}
	case c.IsPrimaryKey():
		return RowKeyColumnExpr{Position: c.PKOrdinal, Typ: c.Type, Null: c.Nullable}
	default:
		return KeyValueColumnExpr{Family: c.Family, Qualifier: c.Name, Typ: c.Type, Null: c.Nullable}
	}
}
