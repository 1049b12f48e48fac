// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fallible

import (
	"fmt"
	"reflect"
)

// Kind is the outcome of a single invocation.
// Every invocation ends in exactly one Kind, in one step.
type Kind uint8

const (
	// Success means the operation returned a result.
	Success Kind = iota
	// Declared means the operation failed with its declared error type.
	Declared
	// Undistinguished means the operation failed with any other error.
	Undistinguished
)

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Declared:
		return "declared"
	case Undistinguished:
		return "undistinguished"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Unchecked is implemented by errors that are never classified as a
// declared failure, whatever the declared error type is.
// [*UncheckedError] and [*ContractViolation] implement it.
type Unchecked interface {
	error
	Unchecked()
}

// Classify reports how err ends an invocation of an operation declaring X.
// A nil err is Success. An [Unchecked] err is Undistinguished. Otherwise err
// is Declared when its dynamic type is assignable to X, and the returned X
// is err itself.
func Classify[X error](err error) (X, Kind) {
	var zero X
	if err == nil {
		return zero, Success
	}
	if _, ok := err.(Unchecked); ok {
		return zero, Undistinguished
	}
	if x, ok := err.(X); ok {
		return x, Declared
	}
	return zero, Undistinguished
}

// declared is Classify reduced to the declared case.
func declared[X error](err error) (X, bool) {
	x, k := Classify[X](err)
	return x, k == Declared
}

// Class is a runtime token for the error type X.
// It is used where a boundary must decide whether an error it did not
// declare is an X, such as [CheckedFunction] and [Unwrap].
type Class[X error] struct{}

// ClassOf returns the token for X.
func ClassOf[X error]() Class[X] {
	return Class[X]{}
}

// Match reports whether err is assignable to X: the same type for concrete
// X, an implementation for interface X. On a match the returned X is err
// itself. Unlike [Classify], Match does not exclude [Unchecked] errors.
func (Class[X]) Match(err error) (X, bool) {
	if err == nil {
		var zero X
		return zero, false
	}
	x, ok := err.(X)
	return x, ok
}

// String returns the Go type name of X.
func (Class[X]) String() string {
	return reflect.TypeFor[X]().String()
}
