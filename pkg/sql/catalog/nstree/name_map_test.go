// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package nstree

import (
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/scancompile/pkg/sql/catalog"
	"github.com/cockroachdb/scancompile/pkg/util/leaktest"
	"github.com/stretchr/testify/require"
)

func makeTable(t *testing.T, id catalog.ID, schema, name string) *catalog.Table {
	t.Helper()
	tbl, err := catalog.MakeTable(catalog.TableDescriptor{
		ID:         id,
		SchemaName: schema,
		Name:       name,
		Columns:    []catalog.Column{{Name: "k"}},
	})
	require.NoError(t, err)
	return tbl
}

func TestNameMap(t *testing.T) {
	var nm NameMap
	require.Equal(t, 0, nm.Len())
	require.Nil(t, nm.GetByID(1))
	require.Nil(t, nm.GetByName("s", "a"))
	require.Nil(t, nm.Remove(1))

	a := makeTable(t, 1, "s", "a")
	b := makeTable(t, 2, "s", "b")
	nm.Upsert(a)
	nm.Upsert(b)
	require.Equal(t, 2, nm.Len())
	require.Same(t, a, nm.GetByID(1))
	require.Same(t, b, nm.GetByName("s", "b"))
	require.Nil(t, nm.GetByName("other", "b"))

	// A new snapshot with the same id replaces the old one, including its
	// name entry.
	a2 := makeTable(t, 1, "s", "renamed")
	nm.Upsert(a2)
	require.Equal(t, 2, nm.Len())
	require.Nil(t, nm.GetByName("s", "a"))
	require.Same(t, a2, nm.GetByName("s", "renamed"))

	// A new snapshot with the same name evicts the old id.
	b2 := makeTable(t, 3, "s", "b")
	nm.Upsert(b2)
	require.Equal(t, 2, nm.Len())
	require.Nil(t, nm.GetByID(2))
	require.Same(t, b2, nm.GetByID(3))

	var ids []catalog.ID
	require.NoError(t, nm.IterateByID(func(t *catalog.Table) error {
		ids = append(ids, t.ID())
		return nil
	}))
	require.Equal(t, []catalog.ID{1, 3}, ids)

	stop := errors.New("stop")
	calls := 0
	require.ErrorIs(t, nm.IterateByID(func(*catalog.Table) error {
		calls++
		return stop
	}), stop)
	require.Equal(t, 1, calls)

	got, err := nm.LookupTableByID(3)
	require.NoError(t, err)
	require.Same(t, b2, got)
	_, err = nm.LookupTableByID(2)
	require.ErrorContains(t, err, "table 2 not found")

	require.Same(t, b2, nm.Remove(3))
	require.Nil(t, nm.GetByName("s", "b"))
	nm.Clear()
	require.Equal(t, 0, nm.Len())
}

func TestNameMapConcurrentReaders(t *testing.T) {
	defer leaktest.AfterTest(t)()
	var nm NameMap
	for i := 1; i <= 50; i++ {
		nm.Upsert(makeTable(t, catalog.ID(i), "s", string(rune('a'+i%26))+string(rune('a'+i/26))))
	}
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 1; i <= 50; i++ {
				if nm.GetByID(catalog.ID(i)) == nil {
					t.Errorf("missing table %d", i)
				}
			}
		}()
	}
	wg.Wait()
}
