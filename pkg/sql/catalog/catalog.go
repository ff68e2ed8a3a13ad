// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package catalog holds the immutable schema snapshots consumed by scan
// compilation: tables, indexes and their columns. Snapshots are never
// mutated after construction. Schema changes produce new snapshots.
package catalog

import "fmt"

// ID is the identifier of a table or index.
type ID uint32

// TenantID identifies the tenant owning a table. The zero value denotes the
// global (non-tenant) keyspace.
type TenantID string

// TableType is the kind of object a Table snapshot describes.
type TableType int

// Table types.
const (
	TableTypeTable TableType = iota
	TableTypeView
	TableTypeIndex
	// TableTypeProjected is a synthetic table describing the shape of rows
	// produced by a projection. It is never stored.
	TableTypeProjected
	TableTypeSystem
)

var tableTypeNames = [...]string{
	TableTypeTable:     "TABLE",
	TableTypeView:      "VIEW",
	TableTypeIndex:     "INDEX",
	TableTypeProjected: "PROJECTED",
	TableTypeSystem:    "SYSTEM",
}

func (t TableType) String() string {
	if t < 0 || int(t) >= len(tableTypeNames) {
		return fmt.Sprintf("TableType(%d)", int(t))
	}
	return tableTypeNames[t]
}

// IndexType distinguishes indexes stored alongside their data table from
// indexes stored in a table of their own.
type IndexType int

// Index types.
const (
	IndexTypeGlobal IndexType = iota
	IndexTypeLocal
)

func (t IndexType) String() string {
	switch t {
	case IndexTypeGlobal:
		return "GLOBAL"
	case IndexTypeLocal:
		return "LOCAL"
	default:
		return fmt.Sprintf("IndexType(%d)", int(t))
	}
}

// ViewType describes how a view relates to its base table.
type ViewType int

// View types.
const (
	ViewTypeNone ViewType = iota
	ViewTypeReadOnly
	ViewTypeUpdatable
	ViewTypeMapped
)

var viewTypeNames = [...]string{
	ViewTypeNone:      "NONE",
	ViewTypeReadOnly:  "READ_ONLY",
	ViewTypeUpdatable: "UPDATABLE",
	ViewTypeMapped:    "MAPPED",
}

func (t ViewType) String() string {
	if t < 0 || int(t) >= len(viewTypeNames) {
		return fmt.Sprintf("ViewType(%d)", int(t))
	}
	return viewTypeNames[t]
}

// ColumnType is the storage type of a column. Its numeric value is part of
// the tuple projector wire format and must not change.
type ColumnType int

// Column types.
const (
	TypeUnknown ColumnType = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeDecimal
	TypeString
	TypeBytes
	TypeTimestamp
)

var columnTypeNames = [...]string{
	TypeUnknown:   "UNKNOWN",
	TypeBool:      "BOOL",
	TypeInt:       "INT",
	TypeFloat:     "FLOAT",
	TypeDecimal:   "DECIMAL",
	TypeString:    "STRING",
	TypeBytes:     "BYTES",
	TypeTimestamp: "TIMESTAMP",
}

func (t ColumnType) String() string {
	if t < 0 || int(t) >= len(columnTypeNames) {
		return fmt.Sprintf("ColumnType(%d)", int(t))
	}
	return columnTypeNames[t]
}

// ParseColumnType returns the ColumnType with the given name.
func ParseColumnType(s string) (ColumnType, bool) {
	for i, n := range columnTypeNames {
		if n == s {
			return ColumnType(i), true
		}
	}
	return TypeUnknown, false
}

// ParseTableType returns the TableType with the given name.
func ParseTableType(s string) (TableType, bool) {
	for i, n := range tableTypeNames {
		if n == s {
			return TableType(i), true
		}
	}
	return TableTypeTable, false
}

// ParseViewType returns the ViewType with the given name.
func ParseViewType(s string) (ViewType, bool) {
	for i, n := range viewTypeNames {
		if n == s {
			return ViewType(i), true
		}
	}
	return ViewTypeNone, false
}

const (
	// ViewIndexIDColumnName is the name of the storage-internal column holding
	// the view index id of indexes shared between views.
	ViewIndexIDColumnName = "_INDEX_ID"
	// SaltColumnName is the name of the storage-internal salt bucket column.
	SaltColumnName = "_SALT"
	// ProjectedTableSchemaName is the schema name of synthetic projected
	// tables.
	ProjectedTableSchemaName = "."
	// ValueColumnFamily is the family holding the non-key columns of a
	// projected table.
	ValueColumnFamily = "_v"
	// MaxSaltBuckets is the largest supported number of salt buckets.
	MaxSaltBuckets = 256
)
