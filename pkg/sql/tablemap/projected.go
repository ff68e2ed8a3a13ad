// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tablemap

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/scancompile/pkg/sql/catalog"
	"github.com/cockroachdb/scancompile/pkg/sql/projection"
	"github.com/cockroachdb/scancompile/pkg/util/log"
)

// CreateProjectedTable returns the table describing the rows produced by
// joining the mapped table with its extended columns. Each column is named
// "<table>.<column>" and sources the column it was projected from.
//
// With retainPKColumns, the source columns are all the columns of the mapped
// table (storage-internal ones included) and its key columns remain key
// columns. Otherwise the source columns are the native mapped columns, all
// placed in the value family. The extended columns always follow.
//
// Failing to build the table is an internal error.
func (m *TableMapping) CreateProjectedTable(
	ctx context.Context, retainPKColumns bool,
) (*catalog.Table, error) {
	t := m.table.Table
	name := m.table.DisplayName()
	desc := catalog.TableDescriptor{
		ID:                     t.ID(),
		TenantID:               t.TenantID(),
		SchemaName:             catalog.ProjectedTableSchemaName,
		Name:                   t.Name(),
		Type:                   catalog.TableTypeProjected,
		PKName:                 t.PKName(),
		Timestamp:              t.Timestamp(),
		SequenceNumber:         t.SequenceNumber(),
		ImmutableRows:          t.IsImmutableRows(),
		StoreNulls:             t.StoreNulls(),
		WALDisabled:            t.IsWALDisabled(),
		RowKeyOrderOptimizable: t.RowKeyOrderOptimizable(),
		Transactional:          t.IsTransactional(),
		UpdateCacheFrequency:   t.UpdateCacheFrequency(),
		IndexDisableTimestamp:  t.IndexDisableTimestamp(),
		ViewType:               t.ViewType(),
	}
	if id, ok := t.ViewIndexID(); ok {
		desc.ViewIndexID = &id
	}

	var sources []catalog.Column
	if retainPKColumns {
		sources = t.Columns()
		desc.SaltBuckets = t.SaltBuckets()
		desc.MultiTenant = t.IsMultiTenant()
	} else {
		sources = m.mappedColumns[:m.extendedColumnsOffset]
	}
	for i := range sources {
		src := &sources[i]
		c := catalog.Column{
			Name:     name + "." + src.Name,
			Family:   catalog.ValueColumnFamily,
			Type:     src.Type,
			Nullable: src.Nullable,
			Source:   &catalog.ColumnRef{TableID: t.ID(), Ordinal: src.Ordinal},
		}
		if retainPKColumns && src.IsPrimaryKey() {
			c.Family = ""
			if i == 0 && t.IsSalted() {
				// The salt column is not addressable by name.
				c.Name = src.Name
			}
		}
		desc.Columns = append(desc.Columns, c)
	}
	for i := m.extendedColumnsOffset; i < len(m.mappedColumns); i++ {
		ext := &m.mappedColumns[i]
		ref := *ext.Source
		desc.Columns = append(desc.Columns, catalog.Column{
			Name:     name + "." + ext.Name,
			Family:   catalog.ValueColumnFamily,
			Type:     ext.Type,
			Nullable: ext.Nullable,
			Source:   &ref,
		})
	}

	projected, err := makeTable(desc)
	if err != nil {
		err = errors.NewAssertionErrorWithWrappedErrf(err, "building projected table of %q", name)
		log.Errorf(ctx, "%v", err)
		return nil, err
	}
	return projected, nil
}

// CreateTupleProjector returns the projector packing the mapped columns into
// a single value. With retainPKColumns the key columns stay in the row key
// and are not projected.
func (m *TableMapping) CreateTupleProjector(retainPKColumns bool) projection.TupleProjector {
	b := projection.NewKeyValueSchemaBuilder(0)
	var exprs []projection.Expr
	for i := range m.mappedColumns {
		if m.mappedColumns[i].IsPrimaryKey() && retainPKColumns {
			continue
		}
		e := m.NewColumnExpr(i)
		exprs = append(exprs, e)
		b.AddExpr(e)
	}
	return projection.TupleProjector{Schema: b.Build(), Exprs: exprs}
}

// CreateRowProjector returns the result-set columns of the mapping, one per
// mapped column in order.
func (m *TableMapping) CreateRowProjector() *projection.RowProjector {
	tableName := m.table.Table.Name()
	cols := make([]projection.ColumnProjector, len(m.mappedColumns))
	for i := range m.mappedColumns {
		cols[i] = projection.ColumnProjector{
			Name:      m.mappedColumns[i].Name,
			TableName: tableName,
			// The ordinal of an extended column is local to the extended
			// table, so the expression must be built through the mapping.
			Expr: m.NewColumnExpr(i),
		}
	}
	// TODO: estimate the row size from the column types.
	return projection.NewRowProjector(cols, 0)
}
