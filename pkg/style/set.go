// Package style provides attribute values and sets of them for styled text.
//
// An attribute is any comparable value attached to a span of text, e.g.
// [FontStyle]. A node of a styled-text tree carries a [Set] of attributes
// that applies to every byte the node covers.
package style

import (
	"fmt"
	"iter"
	"strings"

	"github.com/dolthub/maphash"
)

const minTableSize = 8

// Set is a set of attribute values that remembers insertion order.
//
// Membership is answered through a small open-addressing table keyed by a
// [maphash.Hasher], while the values themselves live in a slice so that
// iteration is deterministic. The zero value is an empty set ready for use.
type Set[T comparable] struct {
	hasher maphash.Hasher[T]
	seeded bool
	items  []T
	table  []int // item indices; -1 marks a free slot
}

// NewSet returns a set holding the given values.
func NewSet[T comparable](values ...T) *Set[T] {
	s := new(Set[T])
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Len returns the number of values in the set.
func (s *Set[T]) Len() int { return len(s.items) }

// Contains reports whether v is in the set.
func (s *Set[T]) Contains(v T) bool {
	if len(s.items) == 0 {
		return false
	}

	mask := uint64(len(s.table) - 1)
	for i := s.hasher.Hash(v) & mask; ; i = (i + 1) & mask {
		slot := s.table[i]
		if slot < 0 {
			return false
		}
		if s.items[slot] == v {
			return true
		}
	}
}

// Add inserts v, reporting whether the set changed.
func (s *Set[T]) Add(v T) bool {
	if s.Contains(v) {
		return false
	}

	if !s.seeded {
		s.hasher = maphash.NewHasher[T]()
		s.seeded = true
	}
	if (len(s.items)+1)*4 > len(s.table)*3 {
		s.grow()
	}

	s.items = append(s.items, v)
	s.place(v, len(s.items)-1)
	return true
}

// Remove deletes v, reporting whether the set changed.
// The insertion order of the remaining values is preserved.
func (s *Set[T]) Remove(v T) bool {
	if !s.Contains(v) {
		return false
	}

	for i, item := range s.items {
		if item == v {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}

	// Removal shifts item indices, so the table is rebuilt. Sets are tiny
	// (a handful of styles), the rebuild is cheaper than tombstones.
	s.rehash(len(s.table))
	return true
}

// Clear removes all values.
func (s *Set[T]) Clear() {
	s.items = s.items[:0]
	for i := range s.table {
		s.table[i] = -1
	}
}

// All returns an iterator over the values in insertion order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Equal reports whether both sets hold the same values, in any order.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, v := range s.items {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

func (s *Set[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range s.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte('}')
	return sb.String()
}

func (s *Set[T]) grow() {
	size := len(s.table) * 2
	if size < minTableSize {
		size = minTableSize
	}
	s.rehash(size)
}

func (s *Set[T]) rehash(size int) {
	if size < minTableSize {
		size = minTableSize
	}
	s.table = make([]int, size)
	for i := range s.table {
		s.table[i] = -1
	}
	for i, v := range s.items {
		s.place(v, i)
	}
}

func (s *Set[T]) place(v T, idx int) {
	mask := uint64(len(s.table) - 1)
	i := s.hasher.Hash(v) & mask
	for s.table[i] >= 0 {
		i = (i + 1) & mask
	}
	s.table[i] = idx
}
