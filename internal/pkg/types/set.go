package types

import (
	"iter"
	"maps"
	"slices"
)

// Set is a generic hash set backed by map[T]struct{}.
//
// Set is mutable: Add modifies it in place. Iteration order is
// unspecified; use an OrderedSet when first-seen order matters.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding the given elements.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts one or more elements into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Has reports whether val is a member of the set.
func (s Set[T]) Has(val T) bool {
	_, ok := s[val]
	return ok
}

// Len returns the number of elements in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// All returns an iterator over the elements of the set.
func (s Set[T]) All() iter.Seq[T] {
	return maps.Keys(s)
}

// ToSlice returns the elements of the set in unspecified order.
func (s Set[T]) ToSlice() []T {
	return slices.Collect(s.All())
}

// OrderedSet is a set that remembers the order in which elements were first added.
//
// Re-adding an element that is already present does not move it.
type OrderedSet[T comparable] struct {
	seen  Set[T]
	order []T
}

// NewOrderedSet creates an OrderedSet holding the given elements in order.
func NewOrderedSet[T comparable](data ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{seen: NewSet[T]()}
	s.Add(data...)
	return s
}

// Add appends the elements that are not yet members, preserving first-seen order.
func (s *OrderedSet[T]) Add(values ...T) {
	for _, val := range values {
		if s.seen.Has(val) {
			continue
		}

		s.seen.Add(val)
		s.order = append(s.order, val)
	}
}

// Has reports whether val is a member of the set.
func (s *OrderedSet[T]) Has(val T) bool {
	return s.seen.Has(val)
}

// Len returns the number of elements in the set.
func (s *OrderedSet[T]) Len() int {
	return len(s.order)
}

// ToSlice returns a copy of the elements in first-seen order.
func (s *OrderedSet[T]) ToSlice() []T {
	return slices.Clone(s.order)
}
