// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package persist provides immutable, persistent collections for Go:
// a singly-linked [List] and an amortized O(1) FIFO [Queue] built from two Lists.
//
// Values of both types are never modified after construction. Every
// "modifying" operation returns a new value that shares as much structure
// as possible with its input, so keeping old versions around is cheap and
// any value may be read concurrently without synchronization.
//
// # Design Philosophy
//
// persist provides:
//   - Sum types as plain values: the zero [List] is the empty list and the
//     zero [Queue] is the empty queue; no constructor call is required
//   - Structural sharing: [List.Prepend], [List.Tail], [List.Drop] and
//     [List.TakeRight] never copy cells
//   - Stack-safe traversal: every operation that walks a list is a loop,
//     so list length is bounded by memory, not goroutine stack depth
//
// # List
//
// Construction:
//
//   - [Empty], [Of], [FromSlice], [FromSeq]: Build from values
//   - [Range], [RangeStep]: Integer arithmetic progressions
//   - [List.Prepend]: O(1) growth at the front
//
// Primitives:
//
//   - [List.IsEmpty], [List.NonEmpty]: Variant test
//   - [List.Head], [List.Tail]: Return [ErrEmptyCollection] on the empty list
//   - [List.Len]: Linear count
//
// Derived operations (generic functions where the element type changes):
//
//   - [Map], [FlatMap], [FlatMapSeq], [FoldLeft]: Order-preserving transforms
//   - [TryMap], [TryFilter], [TryFoldLeft]: Abort on the first caller error
//   - [List.Filter], [List.Reverse], [List.Concat], [List.OrElse]
//   - [List.Take], [List.Drop], [List.TakeRight], [List.DropRight]
//   - [List.TakeUntil], [List.DropUntil], [List.TakeWhile], [List.DropWhile]
//   - [Zip], [ZipWith], [Unzip]: Positional pairing; [ZipWith] returns
//     a [*LengthMismatchError] when lengths differ
//   - [Equal], [EqualFunc], [Contains]: Structural comparison
//
// Iteration:
//
//   - [List.All]: Range-over-func iterator, restartable from the list
//   - [List.Iter]: [Iterator] cursor consumed by [Iterator.Next]
//
// # Queue
//
// A [Queue] keeps the oldest elements in a front list and the newest in a
// reversed rear list. When the front runs out, the rear is reversed into the
// front once; each element pays for at most one reversal, which makes
// [Queue.Enqueue] and [Queue.Dequeue] amortized O(1).
//
//   - [EmptyQueue], [QueueOf], [QueueFromSlice], [QueueFromSeq], [QueueFromList]
//   - [RangeQueue], [RangeQueueStep]
//   - [Queue.Enqueue], [Queue.Dequeue], [Queue.Head], [Queue.Peek], [Queue.Tail]
//   - [MapQueue], [Queue.Filter], [FlatMapQueue], [FoldQueue], [Queue.OrElse]
//   - [EqualQueue]: Dequeue-order equality
//
// # Optional Values
//
// Total accessors return [github.com/samber/mo.Option] instead of an error:
//
//   - [List.HeadOption], [List.LastOption], [List.Find], [FromOption]
//   - [Queue.PeekOption], [Queue.DequeueOption]
//
// # Errors
//
//   - [ErrEmptyCollection]: Element requested from an empty collection
//   - [ErrLengthMismatch]: Matched by [*LengthMismatchError] via errors.Is
//
// Errors returned by caller functions passed to the Try variants are
// returned unwrapped. Panics raised by caller functions propagate; since
// results are only published once complete, no partial list is observable.
//
// # Example
//
//	q := persist.EmptyQueue[int]().Enqueue(7).Enqueue(6).Enqueue(4)
//	v, rest, _ := q.Dequeue()
//	// v == 7, rest dequeues 6 then 4
//
//	sum := persist.FoldLeft(persist.Range(0, 2000), 0, func(acc, x int) int {
//		return acc + x
//	})
//	// sum == 1999000
package persist
