// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package catalogyaml

import (
	"strings"
	"testing"

	"github.com/cockroachdb/scancompile/pkg/settings"
	"github.com/cockroachdb/scancompile/pkg/sql/catalog"
	"github.com/cockroachdb/scancompile/pkg/sql/catalog/nstree"
	"github.com/stretchr/testify/require"
)

var testSetting = settings.RegisterIntSetting("catalogyaml.test.int", "for testing", 1)

const schema = `
settings:
  catalogyaml.test.int: "7"
tables:
- id: 52
  schema: s
  name: T
  type: VIEW
  salt_buckets: 2
  transactional: true
  view_type: READ_ONLY
  columns:
  - {name: _SALT}
  - {name: k, view_constant: "abc"}
  - {name: a, family: F, type: INT, nullable: true}
  indexes: [IDX]
- id: 53
  schema: s
  name: IDX
  type: INDEX
  index_type: LOCAL
  view_index_id: 4
  columns:
  - {name: ":k"}
  - {name: "F:a", family: F, type: INT}
`

func TestLoad(t *testing.T) {
	f, err := Load(strings.NewReader(schema))
	require.NoError(t, err)
	require.Len(t, f.Tables, 2)

	tbl, err := f.Table("T")
	require.NoError(t, err)
	require.Equal(t, catalog.TableTypeView, tbl.Type())
	require.Equal(t, catalog.ViewTypeReadOnly, tbl.ViewType())
	require.True(t, tbl.IsSalted())
	require.True(t, tbl.IsTransactional())
	require.Equal(t, []byte("abc\x00"), tbl.Column(1).ViewConstant)
	require.Equal(t, catalog.TypeInt, tbl.Column(2).Type)
	require.Equal(t, catalog.TypeString, tbl.Column(0).Type)
	require.Len(t, tbl.Indexes(), 1)

	idx := tbl.Indexes()[0]
	require.Same(t, f.Tables[1], idx)
	require.Equal(t, catalog.IndexTypeLocal, idx.IndexType())
	id, ok := idx.ViewIndexID()
	require.True(t, ok)
	require.Equal(t, int64(4), id)

	var nm nstree.NameMap
	f.Populate(&nm)
	require.Same(t, idx, nm.GetByName("s", "IDX"))

	sv := settings.MakeTestingValues()
	require.NoError(t, f.ApplySettings(sv))
	require.Equal(t, int64(7), testSetting.Get(sv))

	_, err = f.Table("missing")
	require.ErrorContains(t, err, `table "missing" not found`)
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name, yaml, err string
	}{
		{
			name: "unknown field",
			yaml: "tables:\n- name: T\n  bogus: 1\n",
			err:  "field bogus not found",
		},
		{
			name: "unknown type",
			yaml: "tables:\n- name: T\n  type: HEAP\n",
			err:  `unknown table type "HEAP"`,
		},
		{
			name: "unknown column type",
			yaml: "tables:\n- name: T\n  columns:\n  - {name: k, type: BLOB}\n",
			err:  `unknown type "BLOB"`,
		},
		{
			name: "unknown index",
			yaml: "tables:\n- name: T\n  columns:\n  - {name: k}\n  indexes: [I]\n",
			err:  `unknown index "I"`,
		},
		{
			name: "invalid table",
			yaml: "tables:\n- name: T\n  columns:\n  - {name: k}\n  - {name: k}\n",
			err:  "duplicate column name",
		},
		{
			name: "unknown index type",
			yaml: "tables:\n- name: T\n  index_type: HASH\n",
			err:  `unknown index type "HASH"`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.yaml))
			require.ErrorContains(t, err, tc.err)
		})
	}
}

func TestApplyUnknownSetting(t *testing.T) {
	f, err := Load(strings.NewReader("settings:\n  no.such.setting: \"1\"\n"))
	require.NoError(t, err)
	require.ErrorContains(t, f.ApplySettings(settings.MakeTestingValues()), "unknown setting")
}

func TestLoadEmpty(t *testing.T) {
	f, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, f.Tables)
}
