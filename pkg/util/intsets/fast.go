// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package intsets

import (
	"bytes"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"
)

// Fast stores a set of non-negative integers, typically column ordinals. The
// zero value is an empty set.
//
// Fast has value semantics for reads but shares its backing storage when
// copied by assignment: use Copy before mutating a set that is also reachable
// elsewhere.
type Fast struct {
	bits *bitset.BitSet
}

// MakeFast returns a set initialized with the given values.
func MakeFast(vals ...int) Fast {
	var res Fast
	for _, v := range vals {
		res.Add(v)
	}
	return res
}

func checkNonNegative(i int) {
	if i < 0 {
		panic(errors.AssertionFailedf("intsets.Fast cannot store negative value %d", i))
	}
}

// Add adds a value to the set. No-op if the value is already in the set.
func (s *Fast) Add(i int) {
	checkNonNegative(i)
	if s.bits == nil {
		s.bits = bitset.New(uint(i + 1))
	}
	s.bits.Set(uint(i))
}

// AddRange adds values 'from' up to 'to' (inclusively) to the set.
// E.g. AddRange(1,5) adds the values 1, 2, 3, 4, 5 to the set.
// 'to' must be greater than or equal to 'from'.
func (s *Fast) AddRange(from, to int) {
	if to < from {
		panic(errors.AssertionFailedf("invalid range when adding range to Fast set: [%d, %d]", from, to))
	}
	checkNonNegative(from)
	if s.bits == nil {
		s.bits = bitset.New(uint(to + 1))
	}
	for i := from; i <= to; i++ {
		s.bits.Set(uint(i))
	}
}

// Remove removes a value from the set. No-op if the value is not in the set.
func (s *Fast) Remove(i int) {
	if s.bits == nil || i < 0 {
		return
	}
	s.bits.Clear(uint(i))
}

// RemoveBelow removes every value strictly smaller than n.
func (s *Fast) RemoveBelow(n int) {
	for i, ok := s.Next(0); ok && i < n; i, ok = s.Next(i + 1) {
		s.bits.Clear(uint(i))
	}
}

// Contains returns true if the set contains the value.
func (s Fast) Contains(i int) bool {
	return s.bits != nil && i >= 0 && s.bits.Test(uint(i))
}

// Empty returns true if the set is empty.
func (s Fast) Empty() bool {
	return s.bits == nil || s.bits.None()
}

// Len returns the number of the elements in the set.
func (s Fast) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// Next returns the first value in the set which is >= startVal. If there is no
// value, the second return value is false.
func (s Fast) Next(startVal int) (int, bool) {
	if s.bits == nil {
		return 0, false
	}
	if startVal < 0 {
		startVal = 0
	}
	i, ok := s.bits.NextSet(uint(startVal))
	return int(i), ok
}

// ForEach calls a function for each value in the set (in increasing order).
func (s Fast) ForEach(f func(i int)) {
	for i, ok := s.Next(0); ok; i, ok = s.Next(i + 1) {
		f(i)
	}
}

// Ordered returns a slice with all the integers in the set, in increasing
// order.
func (s Fast) Ordered() []int {
	if s.Empty() {
		return nil
	}
	result := make([]int, 0, s.Len())
	s.ForEach(func(i int) {
		result = append(result, i)
	})
	return result
}

// Copy returns a copy of s which can be modified independently.
func (s Fast) Copy() Fast {
	if s.bits == nil {
		return Fast{}
	}
	return Fast{bits: s.bits.Clone()}
}

// CopyFrom sets the receiver to a copy of other, which can then be modified
// independently.
func (s *Fast) CopyFrom(other Fast) {
	*s = other.Copy()
}

// UnionWith adds all the elements from rhs to this set.
func (s *Fast) UnionWith(rhs Fast) {
	if rhs.bits == nil {
		return
	}
	if s.bits == nil {
		s.bits = rhs.bits.Clone()
		return
	}
	s.bits.InPlaceUnion(rhs.bits)
}

// Union returns the union of s and rhs as a new set.
func (s Fast) Union(rhs Fast) Fast {
	r := s.Copy()
	r.UnionWith(rhs)
	return r
}

// IntersectionWith removes any elements not in rhs from this set.
func (s *Fast) IntersectionWith(rhs Fast) {
	if s.bits == nil {
		return
	}
	if rhs.bits == nil {
		s.bits = nil
		return
	}
	s.bits.InPlaceIntersection(rhs.bits)
}

// Intersection returns the intersection of s and rhs as a new set.
func (s Fast) Intersection(rhs Fast) Fast {
	r := s.Copy()
	r.IntersectionWith(rhs)
	return r
}

// Intersects returns true if s has any elements in common with rhs.
func (s Fast) Intersects(rhs Fast) bool {
	if s.bits == nil || rhs.bits == nil {
		return false
	}
	return s.bits.IntersectionCardinality(rhs.bits) > 0
}

// DifferenceWith removes any elements in rhs from this set.
func (s *Fast) DifferenceWith(rhs Fast) {
	if s.bits == nil || rhs.bits == nil {
		return
	}
	s.bits.InPlaceDifference(rhs.bits)
}

// Difference returns the elements of s that are not in rhs as a new set.
func (s Fast) Difference(rhs Fast) Fast {
	r := s.Copy()
	r.DifferenceWith(rhs)
	return r
}

// SubsetOf returns true if rhs contains all the elements in s.
func (s Fast) SubsetOf(rhs Fast) bool {
	if s.Empty() {
		return true
	}
	if rhs.bits == nil {
		return false
	}
	return s.bits.DifferenceCardinality(rhs.bits) == 0
}

// Equals returns true if the two sets are identical. Unlike the underlying
// bitset, the allocated capacity of either side does not matter.
func (s Fast) Equals(rhs Fast) bool {
	return s.Len() == rhs.Len() && s.SubsetOf(rhs)
}

// String returns a list representation of elements. Sequential runs of at
// least three numbers are shown as ranges. For example, for the set
// {0, 1, 3, 4, 5, 10}, the output is "(0,1,3-5,10)".
func (s Fast) String() string {
	var buf bytes.Buffer
	buf.WriteByte('(')
	appendRange := func(start, end int) {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		switch {
		case start == end:
			fmt.Fprintf(&buf, "%d", start)
		case start+1 == end:
			fmt.Fprintf(&buf, "%d,%d", start, end)
		default:
			fmt.Fprintf(&buf, "%d-%d", start, end)
		}
	}
	rangeStart, rangeEnd := -1, -1
	s.ForEach(func(i int) {
		if rangeStart != -1 && rangeEnd == i-1 {
			rangeEnd = i
			return
		}
		if rangeStart != -1 {
			appendRange(rangeStart, rangeEnd)
		}
		rangeStart, rangeEnd = i, i
	})
	if rangeStart != -1 {
		appendRange(rangeStart, rangeEnd)
	}
	buf.WriteByte(')')
	return buf.String()
}
