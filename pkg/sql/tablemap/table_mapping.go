// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package tablemap maps a table or index reference to the columns a query can
// read from it. When an index scan needs columns that only the index's data
// table holds, the mapping is extended with those columns and compiles the
// metadata the remote executor needs to join the scan back to the data table.
//
// The mapped column list is laid out as follows:
//
//	[0, extendedColumnsOffset)     native columns of the table or index
//	[extendedColumnsOffset, size)  extended columns sourced from the data table
//
// Every position-based computation is relative to extendedColumnsOffset,
// which is fixed at construction.
package tablemap

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/scancompile/pkg/sql/catalog"
	"github.com/cockroachdb/scancompile/pkg/sql/projection"
	"github.com/cockroachdb/scancompile/pkg/util/intsets"
)

// TableMapping is the column mapping of one table reference within a query.
// It is immutable after construction.
type TableMapping struct {
	f *Factory

	table     *catalog.TableRef
	dataTable *catalog.TableRef

	mappedColumns         []catalog.Column
	extendedColumnsOffset int
	// extendedTable holds the extended columns, with ordinals local to it. It
	// is nil if the mapping was not extended.
	extendedTable *catalog.TableRef
}

// makeTable is swapped out in tests.
var makeTable = catalog.MakeTable

// New returns the mapping of a single table using the default factory.
func New(t *catalog.Table) *TableMapping {
	return defaultFactory.ForTable(t)
}

// NewExtended returns the mapping of table, extended with the columns of
// dataTable the table does not carry if extend is set. It uses the default
// factory.
func NewExtended(table, dataTable *catalog.TableRef, extend bool) (*TableMapping, error) {
	return defaultFactory.ForIndex(table, dataTable, extend)
}

// nativeMappedColumns returns the columns of t without its storage-internal
// columns. The view index id column is removed first (by name), then the
// tenant column, then the salt column.
func nativeMappedColumns(t *catalog.Table) []catalog.Column {
	cols := append([]catalog.Column(nil), t.Columns()...)
	if _, ok := t.ViewIndexID(); ok {
		for i := range cols {
			if cols[i].Name == catalog.ViewIndexIDColumnName {
				cols = append(cols[:i], cols[i+1:]...)
				break
			}
		}
	}
	if t.IsMultiTenant() {
		i := 0
		if t.IsSalted() {
			i = 1
		}
		if i < len(cols) {
			cols = append(cols[:i], cols[i+1:]...)
		}
	}
	if t.IsSalted() && len(cols) > 0 {
		cols = cols[1:]
	}
	return cols
}

func (f *Factory) newExtended(table, dataTable *catalog.TableRef) (*TableMapping, error) {
	if dataTable == nil {
		return nil, errors.AssertionFailedf("cannot extend %q without a data table", table.Table.Name())
	}
	native := nativeMappedColumns(table.Table)
	names := make(map[string]struct{}, len(native))
	for i := range native {
		names[native[i].Name] = struct{}{}
	}

	data := dataTable.Table
	var extended []catalog.Column
	for i := range data.Columns() {
		src := data.Column(i)
		if src.IsPrimaryKey() {
			continue
		}
		name := catalog.IndexColumnName(src)
		if _, ok := names[name]; ok {
			continue
		}
		extended = append(extended, catalog.Column{
			Name:     name,
			Family:   src.Family,
			Type:     src.Type,
			Nullable: src.Nullable,
			Source:   &catalog.ColumnRef{TableID: data.ID(), Ordinal: src.Ordinal},
		})
	}
	ext, err := makeTable(catalog.TableDescriptor{
		ID:                     data.ID(),
		TenantID:               data.TenantID(),
		SchemaName:             catalog.ProjectedTableSchemaName,
		Name:                   data.Name(),
		Type:                   catalog.TableTypeProjected,
		PKName:                 data.PKName(),
		Columns:                extended,
		Timestamp:              data.Timestamp(),
		SequenceNumber:         data.SequenceNumber(),
		ImmutableRows:          data.IsImmutableRows(),
		StoreNulls:             data.StoreNulls(),
		WALDisabled:            data.IsWALDisabled(),
		RowKeyOrderOptimizable: data.RowKeyOrderOptimizable(),
		Transactional:          data.IsTransactional(),
		UpdateCacheFrequency:   data.UpdateCacheFrequency(),
		IndexDisableTimestamp:  data.IndexDisableTimestamp(),
		ViewType:               data.ViewType(),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "building extended table of %q", table.Table.Name())
	}

	mapped := make([]catalog.Column, 0, len(native)+ext.NumColumns())
	mapped = append(mapped, native...)
	mapped = append(mapped, ext.Columns()...)
	return &TableMapping{
		f:                     f,
		table:                 table,
		dataTable:             dataTable,
		mappedColumns:         mapped,
		extendedColumnsOffset: len(native),
		extendedTable:         catalog.NewTableRef(ext),
	}, nil
}

// TableRef returns the reference to the mapped table.
func (m *TableMapping) TableRef() *catalog.TableRef { return m.table }

// Table returns the mapped table.
func (m *TableMapping) Table() *catalog.Table { return m.table.Table }

// DataTableRef returns the reference to the data table, or nil.
func (m *TableMapping) DataTableRef() *catalog.TableRef { return m.dataTable }

// MappedColumns returns the mapped columns in order. The native columns keep
// the ordinals of the mapped table. Extended columns carry ordinals local to
// the extended table and a reference to their source column.
func (m *TableMapping) MappedColumns() []catalog.Column {
	return append([]catalog.Column(nil), m.mappedColumns...)
}

// NumMappedColumns returns the number of mapped columns.
func (m *TableMapping) NumMappedColumns() int { return len(m.mappedColumns) }

// ExtendedColumnsOffset returns the position of the first extended column.
// It equals the number of mapped columns if there are none.
func (m *TableMapping) ExtendedColumnsOffset() int { return m.extendedColumnsOffset }

// HasExtendedColumns returns true if the mapping was extended with the
// columns of a data table.
func (m *TableMapping) HasExtendedColumns() bool { return m.extendedTable != nil }

// NewColumnExpr returns the expression reading mapped column i. Native
// columns are read from the mapped table; extended columns are read from the
// extended table by their local position.
func (m *TableMapping) NewColumnExpr(i int) projection.Expr {
	t := m.table.Table
	if i >= m.extendedColumnsOffset {
		t = m.extendedTable.Table
	}
	return projection.NewColumnExpr(t, m.mappedColumns[i].Ordinal)
}

// InputColumnReferencer is implemented by expressions that can enumerate the
// mapped column positions they read.
type InputColumnReferencer interface {
	InputCols() intsets.Fast
}

// DefaultExtendedColumnRef returns every extended column position.
func (m *TableMapping) DefaultExtendedColumnRef() intsets.Fast {
	var s intsets.Fast
	if m.extendedColumnsOffset < len(m.mappedColumns) {
		s.AddRange(m.extendedColumnsOffset, len(m.mappedColumns)-1)
	}
	return s
}

// ExtendedColumnRef returns the extended column positions read by exprs.
// Native columns never need a join-back and are excluded. The result is empty
// if the mapping has no extended columns.
func (m *TableMapping) ExtendedColumnRef(exprs []InputColumnReferencer) intsets.Fast {
	var s intsets.Fast
	if !m.HasExtendedColumns() {
		return s
	}
	for _, e := range exprs {
		s.UnionWith(e.InputCols())
	}
	s.RemoveBelow(m.extendedColumnsOffset)
	return s
}

// ExtendedColumnReferenceCount returns the number of distinct column families
// and the number of columns of the data table that ref requires to be joined
// back.
func (m *TableMapping) ExtendedColumnReferenceCount(ref intsets.Fast) (families, columns int, _ error) {
	seen := make(map[string]struct{})
	for i, ok := ref.Next(m.extendedColumnsOffset); ok && i < len(m.mappedColumns); i, ok = ref.Next(i + 1) {
		src, err := m.sourceColumn(i)
		if err != nil {
			return 0, 0, err
		}
		seen[src.Family] = struct{}{}
		columns++
	}
	return len(seen), columns, nil
}

// sourceColumn resolves the data table column extended column i is sourced
// from.
func (m *TableMapping) sourceColumn(i int) (*catalog.Column, error) {
	c := &m.mappedColumns[i]
	if c.Source == nil {
		return nil, errors.AssertionFailedf("extended column %q has no source", c.Name)
	}
	src, _, err := catalog.ResolveColumn(m.dataTable.Table, *c.Source)
	if err != nil {
		return nil, errors.NewAssertionErrorWithWrappedErrf(err,
			"resolving source of extended column %q", c.Name)
	}
	return src, nil
}
