// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tablemap

import (
	"github.com/cockroachdb/scancompile/pkg/settings"
	"github.com/cockroachdb/scancompile/pkg/sql/catalog"
	"github.com/cockroachdb/scancompile/pkg/sql/scanattr"
)

// JoinBackEnabled controls whether index mappings may be extended with the
// columns of their data table.
var JoinBackEnabled = settings.RegisterBoolSetting(
	"sql.local_index.join_back.enabled",
	"if disabled, scans over local indexes never join back to the data table",
	true,
)

// AttributeSizeWarningThreshold is the total size of join-back scan
// attributes above which a warning is logged.
var AttributeSizeWarningThreshold = settings.RegisterByteSizeSetting(
	"sql.scan.attribute_size_warning_threshold",
	"total size of join-back scan attributes above which a warning is logged; 0 disables the warning",
	1<<20,
	settings.NonNegativeInt,
)

// Factory builds table mappings bound to a configuration. The zero value
// uses default settings, no metrics and the ProtoMaintainerCodec.
type Factory struct {
	// Settings holds the setting values. Nil means defaults.
	Settings *settings.Values
	// Metrics is updated by scan setup if set.
	Metrics *Metrics
	// Maintainers serializes the local index maintainer payload.
	Maintainers scanattr.IndexMaintainerCodec
}

var defaultFactory = &Factory{}

// ForTable returns the mapping of a single table.
func (f *Factory) ForTable(t *catalog.Table) *TableMapping {
	cols := nativeMappedColumns(t)
	return &TableMapping{
		f:                     f,
		table:                 catalog.NewTableRef(t),
		mappedColumns:         cols,
		extendedColumnsOffset: len(cols),
	}
}

// ForIndex returns the mapping of table, extended with the columns of
// dataTable it does not carry if extend is set and join-back is enabled.
func (f *Factory) ForIndex(
	table, dataTable *catalog.TableRef, extend bool,
) (*TableMapping, error) {
	if extend && JoinBackEnabled.Get(f.Settings) {
		return f.newExtended(table, dataTable)
	}
	cols := nativeMappedColumns(table.Table)
	return &TableMapping{
		f:                     f,
		table:                 table,
		dataTable:             dataTable,
		mappedColumns:         cols,
		extendedColumnsOffset: len(cols),
	}, nil
}

func (f *Factory) maintainers() scanattr.IndexMaintainerCodec {
	if f.Maintainers == nil {
		return scanattr.ProtoMaintainerCodec{}
	}
	return f.Maintainers
}
