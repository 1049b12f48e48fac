// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fallible

import (
	"code.hybscloud.com/kont"
)

// Runnable runs for its effect or fails, declaring the error type X.
type Runnable[X error] func() error

// AndThen returns the runnable that runs r, then after.
// Panics with a [ContractViolation] if r or after is nil.
func (r Runnable[X]) AndThen(after Runnable[X]) Runnable[X] {
	require(r == nil, "operation")
	require(after == nil, "after")
	return func() error {
		if err := r(); err != nil {
			return err
		}
		return after()
	}
}

// Unchecked returns r with every declared failure wrapped in an
// [*UncheckedError] built by [WithoutStack].
func (r Runnable[X]) Unchecked() func() error {
	return r.OnErrorThrowAsUnchecked(tunnel[X])
}

// OnErrorThrowAsUnchecked returns r with every declared failure replaced by
// mapper's result. Panics with a [ContractViolation] if r or mapper is nil.
func (r Runnable[X]) OnErrorThrowAsUnchecked(mapper func(X) error) func() error {
	require(r == nil, "operation")
	require(mapper == nil, "mapper")
	rec := throwAsUnchecked[struct{}](mapper)
	return func() error {
		return recoverVoid(r(), rec)
	}
}

// OnErrorRunUnchecked returns r that runs fallback on a declared failure.
// Panics with a [ContractViolation] if r or fallback is nil.
func (r Runnable[X]) OnErrorRunUnchecked(fallback func() error) func() error {
	require(r == nil, "operation")
	require(fallback == nil, "fallback")
	rec := fallbackTo[struct{}, X](func() (struct{}, error) {
		return void(fallback())
	})
	return func() error {
		return recoverVoid(r(), rec)
	}
}

// OnErrorDiscard returns r with every declared failure suppressed.
// Panics with a [ContractViolation] if r is nil.
func (r Runnable[X]) OnErrorDiscard() func() error {
	require(r == nil, "operation")
	return func() error {
		return recoverVoid(r(), discarding[X])
	}
}

// RunnableOnErrorThrowAs returns r declaring Y, with every declared failure
// x replaced by mapper(x).
// Panics with a [ContractViolation] if r or mapper is nil.
func RunnableOnErrorThrowAs[X, Y error](r Runnable[X], mapper func(X) Y) Runnable[Y] {
	require(r == nil, "operation")
	require(mapper == nil, "mapper")
	rec := throwAs[struct{}](mapper)
	return func() error {
		return recoverVoid(r(), rec)
	}
}

// RunnableOnErrorRun returns r declaring Y that runs fallback on a declared
// failure. Panics with a [ContractViolation] if r or fallback is nil.
func RunnableOnErrorRun[X, Y error](r Runnable[X], fallback Runnable[Y]) Runnable[Y] {
	require(r == nil, "operation")
	require(fallback == nil, "fallback")
	rec := fallbackTo[struct{}, X](func() (struct{}, error) {
		return void(fallback())
	})
	return func() error {
		return recoverVoid(r(), rec)
	}
}

// CheckedRunnable returns r declaring X, unwrapping carried X failures;
// see [Unwrap]. Panics with a [ContractViolation] if r is nil.
func CheckedRunnable[X error](r func() error, class Class[X]) Runnable[X] {
	require(r == nil, "operation")
	return func() error {
		return Unwrap(r(), class)
	}
}

// Lift returns the computation that runs r when evaluated.
// Panics with a [ContractViolation] if r is nil.
func (r Runnable[X]) Lift() kont.Eff[struct{}] {
	require(r == nil, "operation")
	return Lift(func() (struct{}, error) { return void(r()) })
}

// LiftExpr is Lift for the Expr world.
func (r Runnable[X]) LiftExpr() kont.Expr[struct{}] {
	return kont.Reify(r.Lift())
}
