// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package catalog

import "github.com/cockroachdb/scancompile/pkg/util/intsets"

// TableColSet efficiently stores an unordered set of column ordinals.
type TableColSet struct {
	set intsets.Fast
}

// MakeTableColSet returns a set initialized with the given values.
func MakeTableColSet(vals ...int) TableColSet {
	var res TableColSet
	for _, v := range vals {
		res.Add(v)
	}
	return res
}

// Add adds a column to the set. No-op if the column is already in the set.
func (s *TableColSet) Add(ord int) { s.set.Add(ord) }

// Contains returns true if the set contains the column.
func (s TableColSet) Contains(ord int) bool { return s.set.Contains(ord) }

// Empty returns true if the set is empty.
func (s TableColSet) Empty() bool { return s.set.Empty() }

// Len returns the number of the columns in the set.
func (s TableColSet) Len() int { return s.set.Len() }

// ForEach calls a function for each column in the set (in increasing order).
func (s TableColSet) ForEach(f func(ord int)) { s.set.ForEach(f) }

// Ordered returns a slice with all the column ordinals in the set, in
// increasing order.
func (s TableColSet) Ordered() []int { return s.set.Ordered() }

// UnionWith adds all the columns from rhs to this set.
func (s *TableColSet) UnionWith(rhs TableColSet) { s.set.UnionWith(rhs.set) }

// String returns a list representation of elements. Sequential runs of
// numbers are shown as ranges. For example, for the set {1, 2, 3, 5, 6, 10},
// the output is "(1-3,5,6,10)".
func (s TableColSet) String() string { return s.set.String() }
