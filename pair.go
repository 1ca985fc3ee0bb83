// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

import "fmt"

// Pair holds two values. It is the element type produced by the zip
// operators, with Fst taken from the left operand.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// MakePair creates a Pair.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// String implements [fmt.Stringer].
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Fst, p.Snd)
}
