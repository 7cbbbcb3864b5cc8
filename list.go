// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package persist

import (
	"fmt"
	"strings"
)

// List is an immutable, persistent singly-linked list.
//
// List is a two-variant value: the zero value is the empty list, and a
// non-empty list is a cell holding the head value and a shared reference to
// the rest of the list. Cells are never mutated, so any number of lists may
// share a suffix, and a List may be read from many goroutines without locking.
//
// All traversals are loops; list length is bounded by memory, not stack depth.
type List[T any] struct {
	c *cell[T]
}

// cell is the non-empty variant.
type cell[T any] struct {
	value T
	rest  *cell[T]
}

// Empty returns the empty list. It is equal to the zero value List[T]{}.
func Empty[T any]() List[T] {
	return List[T]{}
}

// IsEmpty reports whether l has no elements.
func (l List[T]) IsEmpty() bool {
	return l.c == nil
}

// NonEmpty reports whether l has at least one element.
func (l List[T]) NonEmpty() bool {
	return l.c != nil
}

// Head returns the first element.
// Returns ErrEmptyCollection if l is empty.
func (l List[T]) Head() (T, error) {
	if l.c == nil {
		var zero T
		return zero, ErrEmptyCollection
	}
	return l.c.value, nil
}

// Tail returns the list without its first element. The result shares all
// of its cells with l.
// Returns ErrEmptyCollection if l is empty.
func (l List[T]) Tail() (List[T], error) {
	if l.c == nil {
		return List[T]{}, ErrEmptyCollection
	}
	return List[T]{l.c.rest}, nil
}

// Prepend returns a new list with v in front of l. O(1); l is not copied.
func (l List[T]) Prepend(v T) List[T] {
	return List[T]{&cell[T]{value: v, rest: l.c}}
}

// Len returns the number of elements. O(n); the length is not cached.
func (l List[T]) Len() int {
	n := 0
	for c := l.c; c != nil; c = c.rest {
		n++
	}
	return n
}

// Reverse returns a new list with the elements of l in opposite order.
func (l List[T]) Reverse() List[T] {
	var r *cell[T]
	for c := l.c; c != nil; c = c.rest {
		r = &cell[T]{value: c.value, rest: r}
	}
	return List[T]{r}
}

// OrElse returns l if it is non-empty, otherwise alternative.
func (l List[T]) OrElse(alternative List[T]) List[T] {
	if l.c == nil {
		return alternative
	}
	return l
}

// Concat returns l followed by other. The cells of other are shared;
// the cells of l are copied.
func (l List[T]) Concat(other List[T]) List[T] {
	if other.c == nil {
		return l
	}
	var b builder[T]
	for c := l.c; c != nil; c = c.rest {
		b.add(c.value)
	}
	return b.finishOnto(other)
}

// ForEach calls f on each element in order.
func (l List[T]) ForEach(f func(T)) {
	for c := l.c; c != nil; c = c.rest {
		f(c.value)
	}
}

// Exists reports whether p holds for at least one element.
func (l List[T]) Exists(p func(T) bool) bool {
	for c := l.c; c != nil; c = c.rest {
		if p(c.value) {
			return true
		}
	}
	return false
}

// ForAll reports whether p holds for every element. True for the empty list.
func (l List[T]) ForAll(p func(T) bool) bool {
	for c := l.c; c != nil; c = c.rest {
		if !p(c.value) {
			return false
		}
	}
	return true
}

// Slice returns the elements of l in a new slice.
func (l List[T]) Slice() []T {
	s := make([]T, 0, l.Len())
	for c := l.c; c != nil; c = c.rest {
		s = append(s, c.value)
	}
	return s
}

// String formats l as List(a, b, c).
func (l List[T]) String() string {
	var b strings.Builder
	b.WriteString("List(")
	writeCells(&b, l.c)
	b.WriteByte(')')
	return b.String()
}

func writeCells[T any](b *strings.Builder, c *cell[T]) {
	for first := true; c != nil; c, first = c.rest, false {
		if !first {
			b.WriteString(", ")
		}
		fmt.Fprint(b, c.value)
	}
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
// Shared suffixes are recognized by identity and not walked.
func EqualFunc[T any](a, b List[T], eq func(T, T) bool) bool {
	x, y := a.c, b.c
	for x != y {
		if x == nil || y == nil || !eq(x.value, y.value) {
			return false
		}
		x, y = x.rest, y.rest
	}
	return true
}

// Contains reports whether v is an element of l.
func Contains[T comparable](l List[T], v T) bool {
	for c := l.c; c != nil; c = c.rest {
		if c.value == v {
			return true
		}
	}
	return false
}
