// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package persist

import (
	"errors"
	"strconv"
)

// Sentinel errors returned by List and Queue operations.
var (
	// ErrEmptyCollection is returned when an element is requested from an
	// empty List or Queue (Head, Tail, Peek, Dequeue).
	ErrEmptyCollection = errors.New("persist: empty collection")

	// ErrLengthMismatch is returned when two lists combined element-wise
	// have different lengths. The concrete error is a *LengthMismatchError.
	ErrLengthMismatch = errors.New("persist: length mismatch")
)

// LengthMismatchError reports the lengths of two lists that could not be zipped.
type LengthMismatchError struct {
	Left  int
	Right int
}

func (e *LengthMismatchError) Error() string {
	return "persist: length mismatch: " + strconv.Itoa(e.Left) + " != " + strconv.Itoa(e.Right)
}

// Is reports ErrLengthMismatch as equivalent.
func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}
