// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package persist

import "iter"

// Transformations that change the element type are functions rather than
// methods, since methods cannot declare type parameters.
// Each builds its result in order; nothing is published until the whole
// input has been consumed, so a panic or error in a caller-supplied
// function leaves no partial list behind.

// Map applies f to each element of l and returns the results in order.
func Map[T, U any](l List[T], f func(T) U) List[U] {
	var b builder[U]
	for c := l.c; c != nil; c = c.rest {
		b.add(f(c.value))
	}
	return b.finish()
}

// TryMap is like Map for a fallible f.
// The first error returned by f aborts the traversal and is returned as is.
func TryMap[T, U any](l List[T], f func(T) (U, error)) (List[U], error) {
	var b builder[U]
	for c := l.c; c != nil; c = c.rest {
		u, err := f(c.value)
		if err != nil {
			return List[U]{}, err
		}
		b.add(u)
	}
	return b.finish(), nil
}

// Filter returns the elements of l for which p holds, in their original order.
// The longest suffix in which p holds everywhere is shared with l.
func (l List[T]) Filter(p func(T) bool) List[T] {
	var b builder[T]
	// keep marks the start of a run of accepted cells that may end up shared.
	var keep *cell[T]
	for c := l.c; c != nil; c = c.rest {
		if p(c.value) {
			if keep == nil {
				keep = c
			}
			continue
		}
		for k := keep; k != nil && k != c; k = k.rest {
			b.add(k.value)
		}
		keep = nil
	}
	return b.finishOnto(List[T]{keep})
}

// TryFilter is like Filter for a fallible predicate.
// The first error returned by p aborts the traversal and is returned as is.
func TryFilter[T any](l List[T], p func(T) (bool, error)) (List[T], error) {
	var b builder[T]
	for c := l.c; c != nil; c = c.rest {
		ok, err := p(c.value)
		if err != nil {
			return List[T]{}, err
		}
		if ok {
			b.add(c.value)
		}
	}
	return b.finish(), nil
}

// FoldLeft combines the elements of l from left to right, starting with zero.
// FoldLeft of the empty list is zero.
func FoldLeft[T, U any](l List[T], zero U, combine func(U, T) U) U {
	acc := zero
	for c := l.c; c != nil; c = c.rest {
		acc = combine(acc, c.value)
	}
	return acc
}

// TryFoldLeft is like FoldLeft for a fallible combine.
// On error the partial accumulator is discarded and the zero value of U is
// returned with the error.
func TryFoldLeft[T, U any](l List[T], zero U, combine func(U, T) (U, error)) (U, error) {
	acc := zero
	for c := l.c; c != nil; c = c.rest {
		next, err := combine(acc, c.value)
		if err != nil {
			var z U
			return z, err
		}
		acc = next
	}
	return acc, nil
}

// FlatMap applies f to each element of l and concatenates the resulting lists.
// The list returned by f for the last element is shared, not copied.
func FlatMap[T, U any](l List[T], f func(T) List[U]) List[U] {
	var b builder[U]
	var last List[U]
	for c := l.c; c != nil; c = c.rest {
		b.addAll(last)
		last = f(c.value)
	}
	return b.finishOnto(last)
}

// FlatMapSeq is like FlatMap where f produces any finite sequence.
func FlatMapSeq[T, U any](l List[T], f func(T) iter.Seq[U]) List[U] {
	var b builder[U]
	for c := l.c; c != nil; c = c.rest {
		for u := range f(c.value) {
			b.add(u)
		}
	}
	return b.finish()
}
