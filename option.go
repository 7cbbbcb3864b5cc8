// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package persist

import "github.com/samber/mo"

// Optional-value accessors. These are the total counterparts of Head, Peek
// and Dequeue: an empty collection yields mo.None instead of an error.

// HeadOption returns the first element, or None if l is empty.
func (l List[T]) HeadOption() mo.Option[T] {
	if l.c == nil {
		return mo.None[T]()
	}
	return mo.Some(l.c.value)
}

// LastOption returns the last element, or None if l is empty.
func (l List[T]) LastOption() mo.Option[T] {
	if l.c == nil {
		return mo.None[T]()
	}
	c := l.c
	for c.rest != nil {
		c = c.rest
	}
	return mo.Some(c.value)
}

// Find returns the first element satisfying p, or None.
func (l List[T]) Find(p func(T) bool) mo.Option[T] {
	return l.DropUntil(p).HeadOption()
}

// FromOption returns a list of one element if o is present,
// or the empty list otherwise.
func FromOption[T any](o mo.Option[T]) List[T] {
	if v, ok := o.Get(); ok {
		return Of(v)
	}
	return List[T]{}
}

// PeekOption returns the front element of q, or None if q is empty.
func (q Queue[T]) PeekOption() mo.Option[T] {
	return q.front.HeadOption()
}

// DequeueOption returns the front element together with the remaining
// queue, or None if q is empty.
func (q Queue[T]) DequeueOption() mo.Option[Pair[T, Queue[T]]] {
	v, rest, err := q.Dequeue()
	if err != nil {
		return mo.None[Pair[T, Queue[T]]]()
	}
	return mo.Some(MakePair(v, rest))
}
