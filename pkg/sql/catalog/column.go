// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package catalog

import (
	"fmt"

	"github.com/cockroachdb/redact"
)

// ColumnRef is a lookup key for a column owned by another table: the owning
// table's id and the column's ordinal within it. It is resolved on demand
// against a Resolver and never aliases the column itself.
type ColumnRef struct {
	TableID ID
	Ordinal int
}

func (r ColumnRef) String() string {
	return fmt.Sprintf("%d@%d", r.TableID, r.Ordinal)
}

// Column describes a column of a Table snapshot.
type Column struct {
	// Name is the column name, unique within its table.
	Name string
	// Family is the column family holding the column. It is empty for
	// primary key columns, which live in the row key.
	Family string
	// Ordinal is the position of the column within its table. It is assigned
	// by MakeTable.
	Ordinal int
	// PKOrdinal is the position of the column within the primary key, or -1
	// for non-key columns. It is assigned by MakeTable.
	PKOrdinal int
	Type      ColumnType
	Nullable  bool
	// ViewConstant is the stored constant value of a view's primary key
	// column, including its trailing separator byte. Nil if the column does
	// not carry a constant.
	ViewConstant []byte
	// Source points at the column this one is projected from. Only columns
	// of projected tables have a source.
	Source *ColumnRef
}

// IsPrimaryKey returns true if the column is part of the primary key.
func (c *Column) IsPrimaryKey() bool {
	return c.Family == ""
}

// HasViewConstant returns true if the column is flagged as carrying a view
// constant, whether or not the constant can be resolved.
func (c *Column) HasViewConstant() bool {
	return c.ViewConstant != nil
}

// ViewConstantValue returns the resolved view constant of the column: the
// stored value without its trailing separator byte. The second return value is
// false if the column carries no resolvable constant.
func (c *Column) ViewConstantValue() ([]byte, bool) {
	if len(c.ViewConstant) == 0 {
		return nil, false
	}
	return c.ViewConstant[:len(c.ViewConstant)-1], true
}

// SafeFormat implements the redact.SafeFormatter interface.
func (c *Column) SafeFormat(w redact.SafePrinter, _ rune) {
	if c.Family != "" {
		w.Printf("%s.", c.Family)
	}
	w.Printf("%s", c.Name)
}

func (c *Column) String() string {
	return redact.StringWithoutMarkers(c)
}

// IndexColumnName returns the name a column of a data table takes when it is
// carried by one of the table's indexes: "<family>:<column>". Primary key
// columns have no family and map to ":<column>".
func IndexColumnName(c *Column) string {
	return c.Family + ":" + c.Name
}
