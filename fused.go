// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fallible

import (
	"code.hybscloud.com/kont"
)

// LiftBind runs s and passes its result to f.
// Fuses Lift + Bind. A failure of s is thrown and f is not invoked.
// Panics with a [ContractViolation] if s or f is nil.
func LiftBind[R, B any](s func() (R, error), f func(R) kont.Eff[B]) kont.Eff[B] {
	require(s == nil, "operation")
	require(f == nil, "continuation")
	return kont.Bind(Lift(s), f)
}

// LiftThen runs s, discards its result and continues with next.
// Fuses Lift + Then. Panics with a [ContractViolation] if s or next is nil.
func LiftThen[R, B any](s func() (R, error), next kont.Eff[B]) kont.Eff[B] {
	require(s == nil, "operation")
	require(next == nil, "next")
	return kont.Then(Lift(s), next)
}

// LiftMap runs s and applies the pure function f to its result.
// Fuses Lift + Map. Panics with a [ContractViolation] if s or f is nil.
func LiftMap[R, B any](s func() (R, error), f func(R) B) kont.Eff[B] {
	require(s == nil, "operation")
	require(f == nil, "mapper")
	return kont.Map[kont.Resumed, R, B](Lift(s), f)
}
