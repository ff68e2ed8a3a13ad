// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package projection

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/scancompile/pkg/sql/catalog"
	"github.com/cockroachdb/scancompile/pkg/util/encoding"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewColumnExpr(t *testing.T) {
	tbl, err := catalog.MakeTable(catalog.TableDescriptor{
		Name: "t",
		Columns: []catalog.Column{
			{Name: "k1", Type: catalog.TypeInt},
			{Name: "k2", Type: catalog.TypeString},
			{Name: "v", Family: "F", Type: catalog.TypeBytes, Nullable: true},
		},
	})
	require.NoError(t, err)
	require.Equal(t, RowKeyColumnExpr{Position: 1, Typ: catalog.TypeString}, NewColumnExpr(tbl, 1))
	require.Equal(t,
		KeyValueColumnExpr{Family: "F", Qualifier: "v", Typ: catalog.TypeBytes, Null: true},
		NewColumnExpr(tbl, 2))

	proj, err := catalog.MakeTable(catalog.TableDescriptor{
		Name: "p",
		Type: catalog.TableTypeProjected,
		Columns: []catalog.Column{
			{Name: "F:a", Family: "F", Type: catalog.TypeInt},
			{Name: "F:b", Family: "F", Type: catalog.TypeInt, Nullable: true},
		},
	})
	require.NoError(t, err)
	require.Equal(t, ProjectedColumnExpr{Position: 1, Typ: catalog.TypeInt, Null: true}, NewColumnExpr(proj, 1))
}

func TestExprStrings(t *testing.T) {
	require.Equal(t, "NULL", NullExpr{}.String())
	require.Equal(t, "rowkey[2]", RowKeyColumnExpr{Position: 2}.String())
	require.Equal(t, "F.d", KeyValueColumnExpr{Family: "F", Qualifier: "d"}.String())
	require.Equal(t, "projected[0]", ProjectedColumnExpr{}.String())
	require.Equal(t, "kv", KindKeyValueColumn.String())
}

func TestTupleProjectorRoundTrip(t *testing.T) {
	exprs := []Expr{
		RowKeyColumnExpr{Position: 0, Typ: catalog.TypeInt},
		KeyValueColumnExpr{Family: "F", Qualifier: "d", Typ: catalog.TypeString, Null: true},
		NullExpr{},
		ProjectedColumnExpr{Position: 300, Typ: catalog.TypeDecimal, Null: true},
	}
	b := NewKeyValueSchemaBuilder(0)
	for _, e := range exprs {
		b.AddExpr(e)
	}
	p := TupleProjector{Schema: b.Build(), Exprs: exprs}
	require.Equal(t, "(INT,STRING?,UNKNOWN?,DECIMAL?) [rowkey[0], F.d, NULL, projected[300]]", p.String())

	enc := p.Encode()
	// Encoding is deterministic.
	require.Equal(t, enc, p.Encode())

	dec, err := DecodeTupleProjector(enc)
	require.NoError(t, err)
	if diff := cmp.Diff(p, dec); diff != "" {
		t.Fatalf("unexpected diff (-want +got):\n%s", diff)
	}

	// Every strict prefix fails to decode.
	for i := 0; i < len(enc); i++ {
		_, err := DecodeTupleProjector(enc[:i])
		require.Error(t, err, "prefix of length %d", i)
	}
	_, err = DecodeTupleProjector(append(enc, 0))
	require.ErrorContains(t, err, "trailing bytes")
}

func TestTupleProjectorEncoding(t *testing.T) {
	p := TupleProjector{
		Schema: NewKeyValueSchemaBuilder(0).AddField(catalog.TypeString, true).Build(),
		Exprs:  []Expr{KeyValueColumnExpr{Family: "F", Qualifier: "d", Typ: catalog.TypeString, Null: true}},
	}
	exp := []byte{
		0,    // min nullable
		1,    // field count
		5, 1, // STRING, nullable
		1,    // expr count
		2,    // kind kv
		5, 1, // STRING, nullable
		1, 'F',
		1, 'd',
	}
	require.Equal(t, exp, p.Encode())
}

func TestDecodeTupleProjectorErrors(t *testing.T) {
	_, err := DecodeTupleProjector(encoding.EncodeVInt([]byte{0, 0, 1}, 9))
	require.ErrorContains(t, err, "unknown expression kind 9")

	_, err = DecodeTupleProjector([]byte{0, 100})
	require.ErrorContains(t, err, "invalid element count 100")

	_, err = DecodeTupleProjector(nil)
	require.True(t, errors.Is(err, encoding.ErrTruncated))
}

func TestKeyValueSchemaBuilder(t *testing.T) {
	b := NewKeyValueSchemaBuilder(1)
	b.AddField(catalog.TypeInt, false)
	s1 := b.Build()
	b.AddField(catalog.TypeBool, true)
	s2 := b.Build()
	require.Len(t, s1.Fields, 1)
	require.Len(t, s2.Fields, 2)
	require.Equal(t, 1, s2.MinNullable)
	require.Equal(t, "(INT,BOOL?)", s2.String())
}

func TestRowProjector(t *testing.T) {
	p := NewRowProjector([]ColumnProjector{
		{Name: "a", TableName: "t", Expr: RowKeyColumnExpr{}},
		{Name: "F:d", TableName: "t", Expr: ProjectedColumnExpr{}},
		{Name: "a", TableName: "t", Expr: NullExpr{}},
	}, 0)
	require.Equal(t, 3, p.NumColumns())
	require.Equal(t, 0, p.EstimatedRowSize())
	i, err := p.ColumnIndex("F:d")
	require.NoError(t, err)
	require.Equal(t, 1, i)
	i, err = p.ColumnIndex("a")
	require.NoError(t, err)
	require.Equal(t, 0, i)
	_, err = p.ColumnIndex("zz")
	require.ErrorContains(t, err, `undefined column "zz"`)
}
