// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package persist

// Zip pairs the elements of a and b by position.
// Returns a *LengthMismatchError if the lists differ in length.
func Zip[T, U any](a List[T], b List[U]) (List[Pair[T, U]], error) {
	return ZipWith(a, b, MakePair[T, U])
}

// ZipWith combines the elements of a and b by position with f.
// The lengths are compared before f is called; if they differ,
// a *LengthMismatchError is returned and f is never invoked.
func ZipWith[T, U, R any](a List[T], b List[U], f func(T, U) R) (List[R], error) {
	if la, lb := a.Len(), b.Len(); la != lb {
		return List[R]{}, &LengthMismatchError{Left: la, Right: lb}
	}
	var out builder[R]
	for x, y := a.c, b.c; x != nil; x, y = x.rest, y.rest {
		out.add(f(x.value, y.value))
	}
	return out.finish(), nil
}

// Unzip splits a list of pairs into two lists.
func Unzip[T, U any](l List[Pair[T, U]]) (List[T], List[U]) {
	var a builder[T]
	var b builder[U]
	for c := l.c; c != nil; c = c.rest {
		a.add(c.value.Fst)
		b.add(c.value.Snd)
	}
	return a.finish(), b.finish()
}
