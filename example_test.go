// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package persist_test

import (
	"fmt"

	"code.hybscloud.com/persist"
)

func ExampleList_Prepend() {
	base := persist.Of(2, 3)
	a := base.Prepend(1)
	b := base.Prepend(0)
	fmt.Println(a, b, base)
	// Output: List(1, 2, 3) List(0, 2, 3) List(2, 3)
}

func ExampleFoldLeft() {
	sum := persist.FoldLeft(persist.Range(0, 2000), 0, func(acc, x int) int {
		return acc + x
	})
	fmt.Println(sum)
	// Output: 1999000
}

func ExampleZip() {
	pairs, err := persist.Zip(persist.Of(1, 2, 3, 4), persist.Of(4, 3, 2, 1))
	fmt.Println(pairs, err)

	_, err = persist.Zip(persist.Of(1, 2), persist.Of(1))
	fmt.Println(err)
	// Output:
	// List((1, 4), (2, 3), (3, 2), (4, 1)) <nil>
	// persist: length mismatch: 2 != 1
}

func ExampleList_Take() {
	l := persist.Range(1, 7)
	fmt.Println(l.Take(3), l.Drop(3))
	fmt.Println(l.TakeRight(2), l.DropRight(2))
	// Output:
	// List(1, 2, 3) List(4, 5, 6)
	// List(5, 6) List(1, 2, 3, 4)
}

func ExampleQueue_Dequeue() {
	q := persist.EmptyQueue[int]().Enqueue(7).Enqueue(6).Enqueue(4)
	v, rest, err := q.Dequeue()
	fmt.Println(v, rest, err)

	_, _, err = persist.EmptyQueue[int]().Dequeue()
	fmt.Println(err)
	// Output:
	// 7 Queue(6, 4) <nil>
	// persist: empty collection
}

func ExampleFlatMapQueue() {
	q := persist.EmptyQueue[int]().Enqueue(3).Enqueue(2).Enqueue(1).Enqueue(0)
	fmt.Println(persist.FlatMapQueue(q, func(x int) persist.List[int] {
		return persist.Range(0, x)
	}))
	// Output: Queue(0, 1, 2, 0, 1, 0)
}
