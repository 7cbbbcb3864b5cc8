// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package persist

import (
	"iter"
	"strings"

	"golang.org/x/exp/constraints"
)

// Queue is an immutable FIFO queue with amortized O(1) Enqueue and Dequeue.
//
// A Queue is a pair of lists: front holds the oldest elements in dequeue
// order and rear holds the newest elements in reverse order. The logical
// content is front followed by rear reversed.
//
// Invariant: front is empty only if the whole queue is empty. Every
// construction path goes through newQueue, which moves rear into front
// (reversing it once) when front runs out. Each element is reversed at most
// once on its way from rear to front, which pays for the occasional O(n)
// rebalance.
//
// The zero value is an empty queue.
type Queue[T any] struct {
	front List[T]
	rear  List[T]
}

// newQueue is the single normalizing constructor.
func newQueue[T any](front, rear List[T]) Queue[T] {
	if front.IsEmpty() {
		return Queue[T]{front: rear.Reverse()}
	}
	return Queue[T]{front: front, rear: rear}
}

// EmptyQueue returns the empty queue.
func EmptyQueue[T any]() Queue[T] {
	return Queue[T]{}
}

// QueueOf returns a queue that dequeues values in the given order.
func QueueOf[T any](values ...T) Queue[T] {
	return newQueue(FromSlice(values), List[T]{})
}

// QueueFromSlice returns a queue that dequeues the elements of s in order.
func QueueFromSlice[T any](s []T) Queue[T] {
	return newQueue(FromSlice(s), List[T]{})
}

// QueueFromSeq returns a queue that dequeues the values of seq in order.
func QueueFromSeq[T any](seq iter.Seq[T]) Queue[T] {
	return newQueue(FromSeq(seq), List[T]{})
}

// QueueFromList returns a queue that dequeues the elements of l in order.
// The cells of l are shared.
func QueueFromList[T any](l List[T]) Queue[T] {
	return newQueue(l, List[T]{})
}

// RangeQueue returns a queue of start, start+1, ..., end-1.
func RangeQueue[N constraints.Integer](start, end N) Queue[N] {
	return newQueue(Range(start, end), List[N]{})
}

// RangeQueueStep returns a queue of the progression described by RangeStep.
func RangeQueueStep[N constraints.Integer](start, end, step N) Queue[N] {
	return newQueue(RangeStep(start, end, step), List[N]{})
}

// IsEmpty reports whether q has no elements.
func (q Queue[T]) IsEmpty() bool {
	return q.front.IsEmpty() && q.rear.IsEmpty()
}

// Len returns the number of elements in q. O(n).
func (q Queue[T]) Len() int {
	return q.front.Len() + q.rear.Len()
}

// Enqueue returns a new queue with v added at the back. O(1).
func (q Queue[T]) Enqueue(v T) Queue[T] {
	return newQueue(q.front, q.rear.Prepend(v))
}

// Dequeue returns the front element and the queue without it.
// Returns ErrEmptyCollection if q is empty.
func (q Queue[T]) Dequeue() (T, Queue[T], error) {
	if q.front.IsEmpty() {
		var zero T
		return zero, q, ErrEmptyCollection
	}
	return q.front.c.value, newQueue(List[T]{q.front.c.rest}, q.rear), nil
}

// Head returns the front element.
// Returns ErrEmptyCollection if q is empty.
func (q Queue[T]) Head() (T, error) {
	return q.front.Head()
}

// Peek is an alias for Head.
func (q Queue[T]) Peek() (T, error) {
	return q.front.Head()
}

// Tail returns q without its front element.
// Returns ErrEmptyCollection if q is empty.
func (q Queue[T]) Tail() (Queue[T], error) {
	front, err := q.front.Tail()
	if err != nil {
		return q, err
	}
	return newQueue(front, q.rear), nil
}

// OrElse returns q if it is non-empty, otherwise alternative.
func (q Queue[T]) OrElse(alternative Queue[T]) Queue[T] {
	if q.IsEmpty() {
		return alternative
	}
	return q
}

// ToList returns the elements of q in dequeue order.
// A queue with nothing waiting in rear returns its front list as is.
func (q Queue[T]) ToList() List[T] {
	return q.front.Concat(q.rear.Reverse())
}

// Slice returns the elements of q in dequeue order in a new slice.
func (q Queue[T]) Slice() []T {
	s := make([]T, 0, q.Len())
	s = append(s, q.front.Slice()...)
	for c := q.rear.Reverse().c; c != nil; c = c.rest {
		s = append(s, c.value)
	}
	return s
}

// All returns an iterator over the elements of q in dequeue order.
// The rear half is reversed lazily, only once iteration reaches it.
func (q Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := q.front.c; c != nil; c = c.rest {
			if !yield(c.value) {
				return
			}
		}
		for c := q.rear.Reverse().c; c != nil; c = c.rest {
			if !yield(c.value) {
				return
			}
		}
	}
}

// Iter returns a new Iterator over the elements of q in dequeue order.
func (q Queue[T]) Iter() *Iterator[T] {
	return q.ToList().Iter()
}

// String formats q as Queue(a, b, c) in dequeue order.
func (q Queue[T]) String() string {
	var b strings.Builder
	b.WriteString("Queue(")
	writeCells(&b, q.front.c)
	if q.rear.NonEmpty() {
		b.WriteString(", ")
		writeCells(&b, q.rear.Reverse().c)
	}
	b.WriteByte(')')
	return b.String()
}

// EqualQueue reports whether a and b hold equal elements in the same
// dequeue order, regardless of how each splits them between front and rear.
func EqualQueue[T comparable](a, b Queue[T]) bool {
	if a == b {
		return true
	}
	return Equal(a.ToList(), b.ToList())
}
