// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package nstree provides an indexed cache of table snapshots.
package nstree

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/scancompile/pkg/sql/catalog"
	"github.com/cockroachdb/scancompile/pkg/util/syncutil"
	"github.com/google/btree"
)

const degree = 8

// NameMap is a lookup structure for table snapshots. It provides indexed
// access to a set of entries either by name or by ID. Snapshots are swapped
// wholesale on Upsert and never edited in place, so readers holding an older
// snapshot are unaffected. Safe for concurrent use and for use without
// initialization.
type NameMap struct {
	mu struct {
		syncutil.RWMutex
		byID   *btree.BTree
		byName *btree.BTree
	}
}

var _ catalog.Resolver = (*NameMap)(nil)

type byIDItem struct {
	id catalog.ID
	t  *catalog.Table
}

func (i *byIDItem) Less(than btree.Item) bool {
	return i.id < than.(*byIDItem).id
}

type byNameItem struct {
	schema, name string
	t            *catalog.Table
}

func (i *byNameItem) Less(than btree.Item) bool {
	o := than.(*byNameItem)
	if i.schema != o.schema {
		return i.schema < o.schema
	}
	return i.name < o.name
}

func (dt *NameMap) maybeInitializeLocked() {
	dt.mu.AssertHeld()
	if dt.mu.byID == nil {
		dt.mu.byID = btree.New(degree)
		dt.mu.byName = btree.New(degree)
	}
}

// Upsert adds the table to the map. If any table exists in the map with the
// same name or id, it is removed.
func (dt *NameMap) Upsert(t *catalog.Table) {
	dt.mu.Lock()
	defer dt.mu.Unlock()
	dt.maybeInitializeLocked()
	nameKey := &byNameItem{schema: t.SchemaName(), name: t.Name(), t: t}
	if replaced := dt.mu.byName.ReplaceOrInsert(nameKey); replaced != nil {
		dt.mu.byID.Delete(&byIDItem{id: replaced.(*byNameItem).t.ID()})
	}
	if replaced := dt.mu.byID.ReplaceOrInsert(&byIDItem{id: t.ID(), t: t}); replaced != nil {
		old := replaced.(*byIDItem).t
		if old.SchemaName() != t.SchemaName() || old.Name() != t.Name() {
			dt.mu.byName.Delete(&byNameItem{schema: old.SchemaName(), name: old.Name()})
		}
	}
}

// Remove removes the table with the given ID from the map and returns it if
// it exists.
func (dt *NameMap) Remove(id catalog.ID) *catalog.Table {
	dt.mu.Lock()
	defer dt.mu.Unlock()
	if dt.mu.byID == nil {
		return nil
	}
	removed := dt.mu.byID.Delete(&byIDItem{id: id})
	if removed == nil {
		return nil
	}
	t := removed.(*byIDItem).t
	dt.mu.byName.Delete(&byNameItem{schema: t.SchemaName(), name: t.Name()})
	return t
}

// GetByID gets a table from the map by id.
func (dt *NameMap) GetByID(id catalog.ID) *catalog.Table {
	dt.mu.RLock()
	defer dt.mu.RUnlock()
	if dt.mu.byID == nil {
		return nil
	}
	if it := dt.mu.byID.Get(&byIDItem{id: id}); it != nil {
		return it.(*byIDItem).t
	}
	return nil
}

// GetByName gets a table from the map by schema and name.
func (dt *NameMap) GetByName(schema, name string) *catalog.Table {
	dt.mu.RLock()
	defer dt.mu.RUnlock()
	if dt.mu.byName == nil {
		return nil
	}
	if it := dt.mu.byName.Get(&byNameItem{schema: schema, name: name}); it != nil {
		return it.(*byNameItem).t
	}
	return nil
}

// LookupTableByID implements the catalog.Resolver interface.
func (dt *NameMap) LookupTableByID(id catalog.ID) (*catalog.Table, error) {
	if t := dt.GetByID(id); t != nil {
		return t, nil
	}
	return nil, errors.Newf("table %d not found", id)
}

// IterateByID calls f for every table by ID, ascending. Iteration stops at the
// first error, which is returned.
func (dt *NameMap) IterateByID(f func(*catalog.Table) error) (err error) {
	dt.mu.RLock()
	defer dt.mu.RUnlock()
	if dt.mu.byID == nil {
		return nil
	}
	dt.mu.byID.Ascend(func(i btree.Item) bool {
		err = f(i.(*byIDItem).t)
		return err == nil
	})
	return err
}

// Len returns the number of tables in the map.
func (dt *NameMap) Len() int {
	dt.mu.RLock()
	defer dt.mu.RUnlock()
	if dt.mu.byID == nil {
		return 0
	}
	return dt.mu.byID.Len()
}

// Clear removes all entries.
func (dt *NameMap) Clear() {
	dt.mu.Lock()
	defer dt.mu.Unlock()
	dt.mu.byID = nil
	dt.mu.byName = nil
}
