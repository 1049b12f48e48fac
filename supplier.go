// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fallible

import (
	"code.hybscloud.com/kont"
)

// Supplier produces a result or fails, declaring the error type X.
// Any failure not assignable to X is undistinguished.
type Supplier[R any, X error] func() (R, error)

// Unchecked returns s with every declared failure wrapped in an
// [*UncheckedError] built by [WithoutStack].
func (s Supplier[R, X]) Unchecked() func() (R, error) {
	return s.OnErrorThrowAsUnchecked(tunnel[X])
}

// OnErrorThrowAsUnchecked returns s with every declared failure replaced by
// mapper's result. Panics with a [ContractViolation] if s or mapper is nil.
func (s Supplier[R, X]) OnErrorThrowAsUnchecked(mapper func(X) error) func() (R, error) {
	require(s == nil, "operation")
	require(mapper == nil, "mapper")
	rec := throwAsUnchecked[R](mapper)
	return func() (R, error) {
		r, err := s()
		return recoverDeclared(r, err, rec)
	}
}

// OnErrorHandleUnchecked returns s with every declared failure replaced by
// handler's outcome. Panics with a [ContractViolation] if s or handler is nil.
func (s Supplier[R, X]) OnErrorHandleUnchecked(handler func(X) (R, error)) func() (R, error) {
	require(s == nil, "operation")
	require(handler == nil, "handler")
	return func() (R, error) {
		r, err := s()
		return recoverDeclared(r, err, handler)
	}
}

// OnErrorGetUnchecked returns s that calls fallback on a declared failure.
// Panics with a [ContractViolation] if s or fallback is nil.
func (s Supplier[R, X]) OnErrorGetUnchecked(fallback func() (R, error)) func() (R, error) {
	require(s == nil, "operation")
	require(fallback == nil, "fallback")
	return func() (R, error) {
		r, err := s()
		return recoverDeclared(r, err, fallbackTo[R, X](fallback))
	}
}

// OnErrorReturn returns s that yields v on a declared failure.
// Panics with a [ContractViolation] if s is nil.
func (s Supplier[R, X]) OnErrorReturn(v R) func() (R, error) {
	require(s == nil, "operation")
	rec := returning[R, X](v)
	return func() (R, error) {
		r, err := s()
		return recoverDeclared(r, err, rec)
	}
}

// SupplierOnErrorThrowAs returns s declaring Y, with every declared failure
// x replaced by mapper(x). Panics with a [ContractViolation] if s or mapper
// is nil.
func SupplierOnErrorThrowAs[R any, X, Y error](s Supplier[R, X], mapper func(X) Y) Supplier[R, Y] {
	require(s == nil, "operation")
	require(mapper == nil, "mapper")
	rec := throwAs[R](mapper)
	return func() (R, error) {
		r, err := s()
		return recoverDeclared(r, err, rec)
	}
}

// SupplierOnErrorHandle returns s declaring Y, with every declared failure
// replaced by handler's outcome. Y is given explicitly.
// Panics with a [ContractViolation] if s or handler is nil.
func SupplierOnErrorHandle[Y error, R any, X error](s Supplier[R, X], handler func(X) (R, error)) Supplier[R, Y] {
	require(s == nil, "operation")
	require(handler == nil, "handler")
	return func() (R, error) {
		r, err := s()
		return recoverDeclared(r, err, handler)
	}
}

// SupplierOnErrorGet returns s declaring Y that calls fallback on a declared
// failure. Panics with a [ContractViolation] if s or fallback is nil.
func SupplierOnErrorGet[R any, X, Y error](s Supplier[R, X], fallback Supplier[R, Y]) Supplier[R, Y] {
	require(s == nil, "operation")
	require(fallback == nil, "fallback")
	return func() (R, error) {
		r, err := s()
		return recoverDeclared(r, err, fallbackTo[R, X](fallback))
	}
}

// CheckedSupplier returns s declaring X. A failure that is an
// [*UncheckedError] carrying an X fails with the carried X instead; see
// [Unwrap]. Panics with a [ContractViolation] if s is nil.
func CheckedSupplier[R any, X error](s func() (R, error), class Class[X]) Supplier[R, X] {
	require(s == nil, "operation")
	return func() (R, error) {
		r, err := s()
		return settle(r, Unwrap(err, class))
	}
}

// Lift returns the computation that invokes s when evaluated.
// A failure, declared or not, is thrown unchanged on the Error effect, so
// a [Lower] declaring the same X sees a declared failure as declared.
// Panics with a [ContractViolation] if s is nil.
func (s Supplier[R, X]) Lift() kont.Eff[R] {
	return Lift[R](s)
}

// LiftExpr is Lift for the Expr world.
func (s Supplier[R, X]) LiftExpr() kont.Expr[R] {
	return kont.Reify(s.Lift())
}
