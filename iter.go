// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package persist

import "iter"

// All returns an iterator over the elements of l in order.
// Each range over the iterator starts again from the first element.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := l.c; c != nil; c = c.rest {
			if !yield(c.value) {
				return
			}
		}
	}
}

// Iterator is a cursor over a List. Each call to Next consumes one element;
// an exhausted Iterator stays exhausted. The list it was created from is
// unaffected and can be iterated again with a new Iterator.
//
// An Iterator is not safe for concurrent use.
type Iterator[T any] struct {
	rest *cell[T]
}

// Iter returns a new Iterator positioned at the first element of l.
func (l List[T]) Iter() *Iterator[T] {
	return &Iterator[T]{rest: l.c}
}

// Next returns the next element and true, or the zero value and false when
// the iterator is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.rest == nil {
		var zero T
		return zero, false
	}
	v := it.rest.value
	it.rest = it.rest.rest
	return v, true
}

// Rest returns the elements not yet consumed.
func (it *Iterator[T]) Rest() List[T] {
	return List[T]{it.rest}
}
