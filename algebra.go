// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fallible

import (
	"reflect"
)

// The combinator algebra is written once, over the (R, error) outcome of a
// single invocation. Every shape runs its operation, then hands the outcome
// to one of the helpers below; shapes without a result use R = struct{}.

// recoverDeclared returns (r, err) unchanged unless err is a declared
// failure of type X, in which case rec decides the outcome.
// Undistinguished failures never reach rec.
// A failed outcome always carries the zero R.
func recoverDeclared[R any, X error](r R, err error, rec func(X) (R, error)) (R, error) {
	x, ok := declared[X](err)
	if !ok {
		return settle(r, err)
	}
	return settle(rec(x))
}

// settle drops any partial result that accompanies a failure.
func settle[R any](r R, err error) (R, error) {
	if err != nil {
		var zero R
		return zero, err
	}
	return r, nil
}

// isNilError reports whether err is nil or a nil pointer, map, slice,
// func or channel held in a non-nil interface.
func isNilError(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// throwAs fails with mapper(x) instead of x.
// A mapper that returns nil, including a typed nil pointer, panics with a
// ContractViolation.
func throwAs[R any, X, Y error](mapper func(X) Y) func(X) (R, error) {
	return func(x X) (R, error) {
		var zero R
		y := mapper(x)
		require(isNilError(y), "mapped error")
		return zero, y
	}
}

// throwAsUnchecked is throwAs with an undeclared target type.
func throwAsUnchecked[R any, X error](mapper func(X) error) func(X) (R, error) {
	return func(x X) (R, error) {
		var zero R
		err := mapper(x)
		require(isNilError(err), "mapped error")
		return zero, err
	}
}

// tunnel wraps x in a carrier without a stack, as Unchecked does.
func tunnel[X error](x X) error {
	return WithoutStack(x)
}

// returning succeeds with v.
func returning[R any, X error](v R) func(X) (R, error) {
	return func(X) (R, error) {
		return v, nil
	}
}

// discarding succeeds with no result.
func discarding[X error](X) (struct{}, error) {
	return struct{}{}, nil
}

// fallbackTo runs run in place of the failed operation.
func fallbackTo[R any, X error](run func() (R, error)) func(X) (R, error) {
	return func(X) (R, error) {
		return run()
	}
}

// void lifts a result-less outcome into the core.
func void(err error) (struct{}, error) {
	return struct{}{}, err
}

// recoverVoid is recoverDeclared for shapes without a result.
func recoverVoid[X error](err error, rec func(X) (struct{}, error)) error {
	_, err = recoverDeclared(struct{}{}, err, rec)
	return err
}

// then runs next only if first succeeded; the first failure wins, unchanged.
func then[A, B any](a A, err error, next func(A) (B, error)) (B, error) {
	if err != nil {
		var zero B
		return zero, err
	}
	return next(a)
}

// and implements short-circuit conjunction over fallible booleans.
func and(ok bool, err error, next func() (bool, error)) (bool, error) {
	if err != nil || !ok {
		return false, err
	}
	return next()
}

// or implements short-circuit disjunction over fallible booleans.
func or(ok bool, err error, next func() (bool, error)) (bool, error) {
	if err != nil {
		return false, err
	}
	if ok {
		return true, nil
	}
	return next()
}

// not inverts a successful boolean and leaves failures untouched.
func not(ok bool, err error) (bool, error) {
	if err != nil {
		return false, err
	}
	return !ok, nil
}
