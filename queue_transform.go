// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package persist

import "iter"

// Element-wise transformations apply to front and rear independently:
// mapping or filtering every element of the reversed rear is the same as
// doing so in dequeue order and reversing afterwards, so the split between
// the halves is kept. Transformations whose result depends on visiting order
// (folds, flat maps) run over the logical order, front then reversed rear.

// MapQueue applies f to each element of q, keeping dequeue order.
func MapQueue[T, U any](q Queue[T], f func(T) U) Queue[U] {
	return newQueue(Map(q.front, f), Map(q.rear, f))
}

// Filter returns the elements of q for which p holds, keeping dequeue order.
func (q Queue[T]) Filter(p func(T) bool) Queue[T] {
	return newQueue(q.front.Filter(p), q.rear.Filter(p))
}

// FoldQueue combines the elements of q in dequeue order, starting with zero.
func FoldQueue[T, U any](q Queue[T], zero U, combine func(U, T) U) U {
	acc := FoldLeft(q.front, zero, combine)
	return FoldLeft(q.rear.Reverse(), acc, combine)
}

// FlatMapQueue applies f to each element of q in dequeue order and enqueues
// every element of each resulting list.
func FlatMapQueue[T, U any](q Queue[T], f func(T) List[U]) Queue[U] {
	front := FlatMap(q.front, f)
	if q.rear.IsEmpty() {
		return newQueue(front, List[U]{})
	}
	// The rear half stays a reversed list: expand it in dequeue order, then
	// flip the expansion back.
	rear := FlatMap(q.rear.Reverse(), f).Reverse()
	return newQueue(front, rear)
}

// FlatMapQueueSeq is like FlatMapQueue where f produces any finite sequence.
func FlatMapQueueSeq[T, U any](q Queue[T], f func(T) iter.Seq[U]) Queue[U] {
	var b builder[U]
	for v := range q.All() {
		for u := range f(v) {
			b.add(u)
		}
	}
	return newQueue(b.finish(), List[U]{})
}
