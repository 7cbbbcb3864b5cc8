// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package persist_test

import (
	"errors"
	"fmt"
	"testing"

	"code.hybscloud.com/persist"
)

func TestLengthMismatchErrorMessage(t *testing.T) {
	err := &persist.LengthMismatchError{Left: 3, Right: 2}
	want := "persist: length mismatch: 3 != 2"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestLengthMismatchErrorIs(t *testing.T) {
	var err error = &persist.LengthMismatchError{Left: 1, Right: 0}
	if !errors.Is(err, persist.ErrLengthMismatch) {
		t.Fatal("LengthMismatchError should match ErrLengthMismatch")
	}
	if errors.Is(err, persist.ErrEmptyCollection) {
		t.Fatal("LengthMismatchError should not match ErrEmptyCollection")
	}
	wrapped := fmt.Errorf("zip: %w", err)
	if !errors.Is(wrapped, persist.ErrLengthMismatch) {
		t.Fatal("wrapped LengthMismatchError should match ErrLengthMismatch")
	}
}

func TestEmptyCollectionSites(t *testing.T) {
	var l persist.List[int]
	var q persist.Queue[int]
	_, errHead := l.Head()
	_, errTail := l.Tail()
	_, errQHead := q.Head()
	_, errPeek := q.Peek()
	_, errQTail := q.Tail()
	_, _, errDequeue := q.Dequeue()
	for i, err := range []error{errHead, errTail, errQHead, errPeek, errQTail, errDequeue} {
		if err != persist.ErrEmptyCollection {
			t.Fatalf("site %d: got %v, want ErrEmptyCollection", i, err)
		}
	}
}

func TestEmptyTolerantOperations(t *testing.T) {
	var l persist.List[int]
	id := func(x int) int { return x }
	yes := func(int) bool { return true }
	_ = l.IsEmpty()
	_ = l.Len()
	_ = persist.Map(l, id)
	_ = l.Filter(yes)
	_ = persist.FoldLeft(l, 0, func(a, x int) int { return a + x })
	_ = l.OrElse(l)
	_ = l.Take(1).Drop(1).TakeRight(1).DropRight(1).TakeUntil(yes).DropUntil(yes).TakeWhile(yes).DropWhile(yes)
	var q persist.Queue[int]
	_ = q.Len()
	_ = persist.MapQueue(q, id)
	_ = q.Filter(yes)
	_ = persist.FoldQueue(q, 0, func(a, x int) int { return a + x })
	_ = q.OrElse(q)
}
