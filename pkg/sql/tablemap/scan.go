// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tablemap

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/scancompile/pkg/roachpb"
	"github.com/cockroachdb/scancompile/pkg/sql/catalog"
	"github.com/cockroachdb/scancompile/pkg/sql/projection"
	"github.com/cockroachdb/scancompile/pkg/sql/scanattr"
	"github.com/cockroachdb/scancompile/pkg/util/humanizeutil"
	"github.com/cockroachdb/scancompile/pkg/util/intsets"
	"github.com/cockroachdb/scancompile/pkg/util/log"
)

// Session exposes the state of the connection a scan is compiled for.
type Session interface {
	// EncodeTransaction returns the encoded state of the current transaction.
	EncodeTransaction() ([]byte, error)
}

var attributeSizeWarning = log.Every(time.Minute)

type scanAttribute struct {
	name  string
	value []byte
}

// SetupScanForExtendedTable attaches to scan the attributes the executor
// needs to join the index scan back to the data table for the extended
// columns in ref:
//
//   - the data table columns to fetch;
//   - a tuple projector over all the extended columns, where the columns not
//     in ref are null placeholders that keep the positions of the others;
//   - the maintainer of the local index being scanned;
//   - the transaction state, if the data table is transactional;
//   - the view constants, if the data table is a view.
//
// It does nothing if the mapping has no extended columns or ref selects none
// of them. Either every attribute is attached or, on error, none is.
func (m *TableMapping) SetupScanForExtendedTable(
	ctx context.Context, scan *roachpb.ScanRequest, ref intsets.Fast, session Session,
) error {
	if m.extendedTable == nil || ref.Empty() {
		return nil
	}
	ctx = logtags.AddTag(ctx, "index", m.table.Table.Name())

	var dataTable *catalog.Table
	var dataColumns []scanattr.JoinColumn
	var joined catalog.TableColSet
	schema := projection.NewKeyValueSchemaBuilder(0)
	exprs := make([]projection.Expr, 0, len(m.mappedColumns)-m.extendedColumnsOffset)
	for i := m.extendedColumnsOffset; i < len(m.mappedColumns); i++ {
		c := &m.mappedColumns[i]
		schema.AddField(c.Type, c.Nullable)
		if !ref.Contains(i) {
			exprs = append(exprs, projection.NullExpr{})
			continue
		}
		src, err := m.sourceColumn(i)
		if err != nil {
			log.Errorf(ctx, "%v", err)
			return err
		}
		if dataTable == nil {
			dataTable = m.dataTable.Table
		}
		dataColumns = append(dataColumns, scanattr.JoinColumn{Family: src.Family, Qualifier: src.Name})
		exprs = append(exprs, projection.NewColumnExpr(dataTable, src.Ordinal))
		joined.Add(src.Ordinal)
	}
	if len(dataColumns) == 0 {
		return nil
	}
	log.VEventf(ctx, 2, "joining back columns %s of %s", joined, redact.Safe(dataTable.Name()))

	attrs := []scanAttribute{
		{scanattr.DataTableColumnsToJoin, scanattr.EncodeColumnsToJoin(dataColumns)},
		{scanattr.IndexProjector, projection.TupleProjector{Schema: schema.Build(), Exprs: exprs}.Encode()},
	}
	maintainer, err := m.f.maintainers().EncodeIndexMaintainers(dataTable, m.localIndexes(dataTable))
	if err != nil {
		return errors.NewAssertionErrorWithWrappedErrf(err, "encoding index maintainer of %q", m.table.Table.Name())
	}
	attrs = append(attrs, scanAttribute{scanattr.LocalIndexBuild, maintainer})
	if dataTable.IsTransactional() {
		if session == nil {
			return errors.AssertionFailedf("transactional table %q requires a session", dataTable.Name())
		}
		txn, err := session.EncodeTransaction()
		if err != nil {
			return errors.Wrap(err, "encoding transaction state")
		}
		attrs = append(attrs, scanAttribute{scanattr.TxState, txn})
	}
	viewConstants, err := encodeViewConstants(ctx, dataTable)
	if err != nil {
		return err
	}
	if viewConstants != nil {
		attrs = append(attrs, scanAttribute{scanattr.ViewConstants, viewConstants})
	}

	var total int64
	for _, a := range attrs {
		scan.SetAttribute(a.name, a.value)
		log.VEventf(ctx, 2, "attached %s (%s)", redact.Safe(a.name), humanizeutil.IBytes(int64(len(a.value))))
		m.f.Metrics.recordAttribute(a.name, len(a.value))
		total += int64(len(a.value))
	}
	m.f.Metrics.recordScan(len(dataColumns))
	if threshold := AttributeSizeWarningThreshold.Get(m.f.Settings); threshold > 0 && total > threshold {
		if attributeSizeWarning.ShouldLog() {
			log.Warningf(ctx, "join-back attributes total %s, above the %s warning threshold",
				humanizeutil.IBytes(total), humanizeutil.IBytes(threshold))
		}
	}
	return nil
}

// localIndexes returns the local index of dataTable carrying the name of the
// mapped table, if there is one.
func (m *TableMapping) localIndexes(dataTable *catalog.Table) []*catalog.Table {
	name := m.table.Table.Name()
	for _, idx := range dataTable.Indexes() {
		if idx.Name() == name && idx.IndexType() == catalog.IndexTypeLocal {
			return []*catalog.Table{idx}
		}
	}
	return nil
}

// encodeViewConstants returns the view constants payload of dataTable, or nil
// if it is not a view or none of its key columns carries a constant. The salt
// and tenant columns never carry one.
func encodeViewConstants(ctx context.Context, dataTable *catalog.Table) ([]byte, error) {
	if dataTable.Type() != catalog.TableTypeView {
		return nil, nil
	}
	offset := 0
	if dataTable.IsSalted() {
		offset++
	}
	if dataTable.IsMultiTenant() {
		offset++
	}
	pk := dataTable.PKColumns()
	var constants [][]byte
	for i := offset; i < len(pk); i++ {
		if !pk[i].HasViewConstant() {
			continue
		}
		v, ok := pk[i].ViewConstantValue()
		if !ok {
			err := errors.AssertionFailedf("view %q: key column %q carries an unresolvable view constant",
				dataTable.Name(), pk[i].Name)
			log.Errorf(ctx, "%v", err)
			return nil, err
		}
		constants = append(constants, v)
	}
	if len(constants) == 0 {
		return nil, nil
	}
	return scanattr.EncodeViewConstants(constants), nil
}
