// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fallible

// ContractViolation is the panic value raised when a combinator or factory
// receives a nil operation, mapper, handler, fallback or cause.
// It is raised before any operation runs.
type ContractViolation struct {
	// Arg names the offending argument, e.g. "mapper".
	Arg string
}

func (e *ContractViolation) Error() string {
	return "fallible: nil " + e.Arg
}

// Unchecked marks ContractViolation as never declared.
func (*ContractViolation) Unchecked() {}

// require panics with a ContractViolation naming arg if isNil.
func require(isNil bool, arg string) {
	if isNil {
		panic(&ContractViolation{Arg: arg})
	}
}
