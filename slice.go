// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package persist

// Take returns the first n elements of l.
// n <= 0 yields the empty list; n >= l.Len() yields l itself.
func (l List[T]) Take(n int) List[T] {
	if n <= 0 {
		return List[T]{}
	}
	var b builder[T]
	c := l.c
	for ; c != nil && n > 0; c, n = c.rest, n-1 {
		b.add(c.value)
	}
	if c == nil {
		return l
	}
	return b.finish()
}

// Drop returns l without its first n elements, sharing the remaining cells.
// n <= 0 yields l itself; n >= l.Len() yields the empty list.
func (l List[T]) Drop(n int) List[T] {
	c := l.c
	for ; c != nil && n > 0; n-- {
		c = c.rest
	}
	return List[T]{c}
}

// TakeRight returns the last n elements of l as a shared suffix.
// n <= 0 yields the empty list; n >= l.Len() yields l itself.
func (l List[T]) TakeRight(n int) List[T] {
	if n <= 0 {
		return List[T]{}
	}
	// lead runs n cells ahead of c; when it falls off the end, c is the suffix.
	lead := l.c
	for ; lead != nil && n > 0; n-- {
		lead = lead.rest
	}
	c := l.c
	for lead != nil {
		lead, c = lead.rest, c.rest
	}
	return List[T]{c}
}

// DropRight returns l without its last n elements.
// n <= 0 yields l itself; n >= l.Len() yields the empty list.
func (l List[T]) DropRight(n int) List[T] {
	if n <= 0 {
		return l
	}
	return l.Reverse().Drop(n).Reverse()
}

// TakeUntil returns the elements of l before the first one satisfying p.
// If no element satisfies p, l itself is returned.
func (l List[T]) TakeUntil(p func(T) bool) List[T] {
	var b builder[T]
	for c := l.c; c != nil; c = c.rest {
		if p(c.value) {
			return b.finish()
		}
		b.add(c.value)
	}
	return l
}

// DropUntil returns the suffix of l starting at the first element
// satisfying p, or the empty list if there is none.
func (l List[T]) DropUntil(p func(T) bool) List[T] {
	c := l.c
	for c != nil && !p(c.value) {
		c = c.rest
	}
	return List[T]{c}
}

// TakeWhile returns the longest prefix of l whose elements all satisfy p.
func (l List[T]) TakeWhile(p func(T) bool) List[T] {
	return l.TakeUntil(not(p))
}

// DropWhile returns l without the longest prefix whose elements all satisfy p.
func (l List[T]) DropWhile(p func(T) bool) List[T] {
	return l.DropUntil(not(p))
}

func not[T any](p func(T) bool) func(T) bool {
	return func(v T) bool { return !p(v) }
}
