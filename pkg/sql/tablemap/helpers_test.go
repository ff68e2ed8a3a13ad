// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tablemap

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/scancompile/pkg/roachpb"
	"github.com/cockroachdb/scancompile/pkg/sql/catalog"
	"github.com/cockroachdb/scancompile/pkg/util/intsets"
	"github.com/stretchr/testify/require"
)

func keyCol(name string) catalog.Column {
	return catalog.Column{Name: name, Type: catalog.TypeString}
}

func valCol(family, name string) catalog.Column {
	return catalog.Column{Name: name, Family: family, Type: catalog.TypeInt, Nullable: true}
}

func mustMakeTable(t testing.TB, desc catalog.TableDescriptor) *catalog.Table {
	t.Helper()
	tbl, err := catalog.MakeTable(desc)
	require.NoError(t, err)
	return tbl
}

// schemaFixture is a salted local index IDX with columns a, b, c over a data
// table T with key k and value columns d (family F) and e (family G).
type schemaFixture struct {
	index *catalog.Table
	data  *catalog.Table
}

type fixtureOpt func(index, data *catalog.TableDescriptor)

func withTransactional(index, data *catalog.TableDescriptor) {
	data.Transactional = true
}

func withView(constants ...[]byte) fixtureOpt {
	return func(_, data *catalog.TableDescriptor) {
		data.Type = catalog.TableTypeView
		for i, c := range constants {
			data.Columns[i].ViewConstant = c
		}
	}
}

func makeFixture(t testing.TB, opts ...fixtureOpt) schemaFixture {
	t.Helper()
	indexDesc := catalog.TableDescriptor{
		ID:          2,
		Name:        "IDX",
		Type:        catalog.TableTypeIndex,
		IndexType:   catalog.IndexTypeLocal,
		SaltBuckets: 4,
		Columns: []catalog.Column{
			keyCol(catalog.SaltColumnName),
			keyCol("a"),
			valCol("F", "b"),
			valCol("F", "c"),
		},
	}
	dataDesc := catalog.TableDescriptor{
		ID:   1,
		Name: "T",
		Columns: []catalog.Column{
			keyCol("k"),
			valCol("F", "d"),
			valCol("G", "e"),
		},
	}
	for _, o := range opts {
		o(&indexDesc, &dataDesc)
	}
	index := mustMakeTable(t, indexDesc)
	dataDesc.Indexes = []*catalog.Table{index}
	return schemaFixture{index: index, data: mustMakeTable(t, dataDesc)}
}

func (s schemaFixture) extended(t testing.TB, f *Factory) *TableMapping {
	t.Helper()
	m, err := f.ForIndex(catalog.NewTableRef(s.index), catalog.NewTableRef(s.data), true /* extend */)
	require.NoError(t, err)
	return m
}

func mappedNames(m *TableMapping) []string {
	var names []string
	for _, c := range m.MappedColumns() {
		names = append(names, c.Name)
	}
	return names
}

// inputCols is an expression reading a fixed set of mapped columns.
type inputCols intsets.Fast

func (c inputCols) InputCols() intsets.Fast { return intsets.Fast(c) }

func refs(cols ...int) []InputColumnReferencer {
	return []InputColumnReferencer{inputCols(intsets.MakeFast(cols...))}
}

type testSession struct {
	txn []byte
	err error
}

func (s testSession) EncodeTransaction() ([]byte, error) {
	return s.txn, s.err
}

var errTxn = errors.New("txn state unavailable")

func newScan(t testing.TB) *roachpb.ScanRequest {
	t.Helper()
	scan, err := roachpb.NewScanRequest(roachpb.Span{Key: roachpb.Key("a"), EndKey: roachpb.Key("z")})
	require.NoError(t, err)
	return scan
}
