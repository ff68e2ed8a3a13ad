// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package catalog

import (
	"github.com/cockroachdb/errors"
)

// ErrInvalidTable marks errors returned by MakeTable for descriptors that do
// not describe a well-formed table.
var ErrInvalidTable = errors.New("invalid table descriptor")

// TableDescriptor is the mutable input from which an immutable Table
// snapshot is built.
type TableDescriptor struct {
	ID         ID
	TenantID   TenantID
	SchemaName string
	Name       string
	Type       TableType
	// PKName is the name of the primary key constraint.
	PKName  string
	Columns []Column

	// SaltBuckets is the number of salt buckets, or 0 if the table is not
	// salted. The salt column of a salted table is its first column.
	SaltBuckets int
	// MultiTenant tables store the tenant id in the primary key column
	// following the salt column, if any.
	MultiTenant bool
	// ViewIndexID is set on indexes shared by the views of a table.
	ViewIndexID *int64

	Timestamp              int64
	SequenceNumber         int64
	ImmutableRows          bool
	StoreNulls             bool
	WALDisabled            bool
	RowKeyOrderOptimizable bool
	Transactional          bool
	UpdateCacheFrequency   int64
	IndexDisableTimestamp  int64

	// IndexType is only meaningful for tables of type INDEX.
	IndexType IndexType
	// Indexes are the indexes registered on the table.
	Indexes  []*Table
	ViewType ViewType
}

// Table is an immutable snapshot of a table, view or index schema. It is safe
// for concurrent use.
type Table struct {
	desc      TableDescriptor
	pkColumns []int
	byName    map[string]int
}

func invalidf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidTable)
}

// MakeTable validates desc and builds a snapshot from it. The descriptor's
// column and index slices are copied; ordinals are assigned from the column
// order.
func MakeTable(desc TableDescriptor) (*Table, error) {
	if desc.Name == "" {
		return nil, invalidf("table %d has no name", desc.ID)
	}
	if desc.SaltBuckets < 0 || desc.SaltBuckets > MaxSaltBuckets {
		return nil, invalidf("table %q: salt bucket count %d out of range [0, %d]",
			desc.Name, desc.SaltBuckets, MaxSaltBuckets)
	}
	t := &Table{
		desc:   desc,
		byName: make(map[string]int, len(desc.Columns)),
	}
	t.desc.Columns = make([]Column, len(desc.Columns))
	copy(t.desc.Columns, desc.Columns)
	t.desc.Indexes = append([]*Table(nil), desc.Indexes...)
	for i := range t.desc.Columns {
		c := &t.desc.Columns[i]
		if c.Name == "" {
			return nil, invalidf("table %q: column %d has no name", desc.Name, i)
		}
		if _, ok := t.byName[c.Name]; ok {
			return nil, invalidf("table %q: duplicate column name %q", desc.Name, c.Name)
		}
		if c.ViewConstant != nil && !c.IsPrimaryKey() {
			return nil, invalidf("table %q: non-key column %q carries a view constant", desc.Name, c.Name)
		}
		if c.Source != nil && desc.Type != TableTypeProjected {
			return nil, invalidf("table %q: column %q has a source but the table is of type %s",
				desc.Name, c.Name, desc.Type)
		}
		t.byName[c.Name] = i
		c.Ordinal = i
		c.PKOrdinal = -1
		if c.IsPrimaryKey() {
			c.PKOrdinal = len(t.pkColumns)
			t.pkColumns = append(t.pkColumns, i)
		}
	}
	if desc.Type != TableTypeProjected {
		if err := t.validateKeyLayout(); err != nil {
			return nil, err
		}
	}
	for _, idx := range t.desc.Indexes {
		if idx == nil || idx.Type() != TableTypeIndex {
			return nil, invalidf("table %q: registered index is not of type INDEX", desc.Name)
		}
	}
	return t, nil
}

// validateKeyLayout checks that the storage-internal key columns occupy the
// leading primary key positions.
func (t *Table) validateKeyLayout() error {
	offset := 0
	if t.IsSalted() {
		if len(t.pkColumns) == 0 || t.pkColumns[0] != 0 {
			return invalidf("table %q is salted but its first column is not a key column", t.desc.Name)
		}
		offset++
	}
	if t.desc.MultiTenant {
		if len(t.pkColumns) <= offset || t.pkColumns[offset] != offset {
			return invalidf("table %q is multi-tenant but column %d is not a key column", t.desc.Name, offset)
		}
	}
	return nil
}

// ID returns the table id.
func (t *Table) ID() ID { return t.desc.ID }

// TenantID returns the id of the tenant owning the table.
func (t *Table) TenantID() TenantID { return t.desc.TenantID }

// SchemaName returns the name of the schema containing the table.
func (t *Table) SchemaName() string { return t.desc.SchemaName }

// Name returns the table name.
func (t *Table) Name() string { return t.desc.Name }

// Type returns the table type.
func (t *Table) Type() TableType { return t.desc.Type }

// PKName returns the name of the primary key constraint.
func (t *Table) PKName() string { return t.desc.PKName }

// Columns returns all the columns of the table in ordinal order. The
// returned slice must not be modified.
func (t *Table) Columns() []Column { return t.desc.Columns }

// Column returns the column with the given ordinal.
func (t *Table) Column(ordinal int) *Column { return &t.desc.Columns[ordinal] }

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.desc.Columns) }

// ColumnByName looks up a column by name.
func (t *Table) ColumnByName(name string) (*Column, bool) {
	i, ok := t.byName[name]
	if !ok {
		return nil, false
	}
	return &t.desc.Columns[i], true
}

// PKColumns returns the primary key columns in key order.
func (t *Table) PKColumns() []*Column {
	res := make([]*Column, len(t.pkColumns))
	for i, ord := range t.pkColumns {
		res[i] = &t.desc.Columns[ord]
	}
	return res
}

// SaltBuckets returns the number of salt buckets, or 0.
func (t *Table) SaltBuckets() int { return t.desc.SaltBuckets }

// IsSalted returns true if the table has a salt column.
func (t *Table) IsSalted() bool { return t.desc.SaltBuckets > 0 }

// IsMultiTenant returns true if the table has a tenant id column.
func (t *Table) IsMultiTenant() bool { return t.desc.MultiTenant }

// ViewIndexID returns the view index id, if the table has one.
func (t *Table) ViewIndexID() (int64, bool) {
	if t.desc.ViewIndexID == nil {
		return 0, false
	}
	return *t.desc.ViewIndexID, true
}

// Timestamp returns the schema timestamp of the snapshot.
func (t *Table) Timestamp() int64 { return t.desc.Timestamp }

// SequenceNumber returns the schema sequence number of the snapshot.
func (t *Table) SequenceNumber() int64 { return t.desc.SequenceNumber }

// IsImmutableRows returns true if rows are never updated in place.
func (t *Table) IsImmutableRows() bool { return t.desc.ImmutableRows }

// StoreNulls returns true if null values are stored explicitly.
func (t *Table) StoreNulls() bool { return t.desc.StoreNulls }

// IsWALDisabled returns true if writes to the table skip the write-ahead log.
func (t *Table) IsWALDisabled() bool { return t.desc.WALDisabled }

// RowKeyOrderOptimizable returns true if the row key order can be relied upon
// for ordering.
func (t *Table) RowKeyOrderOptimizable() bool { return t.desc.RowKeyOrderOptimizable }

// IsTransactional returns true if the table participates in transactions.
func (t *Table) IsTransactional() bool { return t.desc.Transactional }

// UpdateCacheFrequency returns the schema cache refresh interval.
func (t *Table) UpdateCacheFrequency() int64 { return t.desc.UpdateCacheFrequency }

// IndexDisableTimestamp returns the time at which the index was disabled, or
// zero.
func (t *Table) IndexDisableTimestamp() int64 { return t.desc.IndexDisableTimestamp }

// IndexType returns the index type of an INDEX table.
func (t *Table) IndexType() IndexType { return t.desc.IndexType }

// Indexes returns the indexes registered on the table.
func (t *Table) Indexes() []*Table { return t.desc.Indexes }

// ViewType returns the view type.
func (t *Table) ViewType() ViewType { return t.desc.ViewType }

// Descriptor returns a copy of the descriptor the snapshot was built from,
// for deriving a new snapshot.
func (t *Table) Descriptor() TableDescriptor {
	d := t.desc
	d.Columns = append([]Column(nil), t.desc.Columns...)
	d.Indexes = append([]*Table(nil), t.desc.Indexes...)
	return d
}

// LookupTableByID implements the Resolver interface, resolving only the
// table itself.
func (t *Table) LookupTableByID(id ID) (*Table, error) {
	if id != t.desc.ID {
		return nil, errors.Newf("table %d not found (resolving against %q)", id, t.desc.Name)
	}
	return t, nil
}

// Resolver looks up table snapshots by id.
type Resolver interface {
	LookupTableByID(id ID) (*Table, error)
}

// ResolveColumn resolves ref against r.
func ResolveColumn(r Resolver, ref ColumnRef) (*Column, *Table, error) {
	t, err := r.LookupTableByID(ref.TableID)
	if err != nil {
		return nil, nil, err
	}
	if ref.Ordinal < 0 || ref.Ordinal >= t.NumColumns() {
		return nil, nil, errors.Newf("table %q has no column with ordinal %d", t.Name(), ref.Ordinal)
	}
	return t.Column(ref.Ordinal), t, nil
}

// TableRef is a reference to a table snapshot as it appears in a query.
type TableRef struct {
	Table *Table
	// Alias is the name the query refers to the table by, if any.
	Alias string
}

// NewTableRef returns a reference to t without an alias.
func NewTableRef(t *Table) *TableRef {
	return &TableRef{Table: t}
}

// DisplayName returns the alias if set, else the table name.
func (r *TableRef) DisplayName() string {
	if r.Alias != "" {
		return r.Alias
	}
	return r.Table.Name()
}
