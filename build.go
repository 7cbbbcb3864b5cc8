// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package persist

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// builder appends cells in order. The cells it links are private until
// finish or finishOnto publishes them, after which they are never written.
// A builder is discarded if the operation feeding it fails, so no partially
// built list escapes.
type builder[T any] struct {
	head *cell[T]
	last *cell[T]
}

func (b *builder[T]) add(v T) {
	c := &cell[T]{value: v}
	if b.last == nil {
		b.head = c
	} else {
		b.last.rest = c
	}
	b.last = c
}

// addAll appends the elements of l.
func (b *builder[T]) addAll(l List[T]) {
	for c := l.c; c != nil; c = c.rest {
		b.add(c.value)
	}
}

func (b *builder[T]) finish() List[T] {
	return List[T]{b.head}
}

// finishOnto publishes the built cells with tail as their shared suffix.
func (b *builder[T]) finishOnto(tail List[T]) List[T] {
	if b.last == nil {
		return tail
	}
	b.last.rest = tail.c
	return List[T]{b.head}
}

// Of returns a list holding values in the given order.
func Of[T any](values ...T) List[T] {
	return FromSlice(values)
}

// FromSlice returns a list holding the elements of s in order.
// The list does not alias s.
func FromSlice[T any](s []T) List[T] {
	var l List[T]
	for i := len(s) - 1; i >= 0; i-- {
		l = l.Prepend(s[i])
	}
	return l
}

// FromSeq returns a list holding the values produced by seq, in order.
// seq must be finite.
func FromSeq[T any](seq iter.Seq[T]) List[T] {
	var b builder[T]
	for v := range seq {
		b.add(v)
	}
	return b.finish()
}

// Range returns the list start, start+1, ..., end-1.
// Empty if start >= end.
func Range[N constraints.Integer](start, end N) List[N] {
	return RangeStep(start, end, 1)
}

// RangeStep returns the arithmetic progression start, start+step, ...
// stopping before end is reached or passed.
//
// A positive step counts up while the value is below end; a negative step
// counts down while the value is above end. A zero step, or a step pointing
// away from end, yields the empty list. The progression stops rather than
// wrapping around at the limits of N.
func RangeStep[N constraints.Integer](start, end, step N) List[N] {
	var b builder[N]
	switch {
	case step > 0:
		for x := start; x < end; {
			b.add(x)
			next := x + step
			if next < x {
				break
			}
			x = next
		}
	case step < 0:
		for x := start; x > end; {
			b.add(x)
			next := x + step
			if next > x {
				break
			}
			x = next
		}
	}
	return b.finish()
}
