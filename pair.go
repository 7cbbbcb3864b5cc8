// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package persist

import "fmt"

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// MakePair returns Pair{Fst: a, Snd: b} with inferred type arguments.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// String formats p as (a, b).
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Fst, p.Snd)
}
