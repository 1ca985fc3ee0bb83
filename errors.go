// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

import "fmt"

// UsageError is the panic value raised when a container is accessed on the
// wrong variant, e.g. [Result.Value] on an Err or [Option.Value] on None.
// These are bugs in the calling code and are never returned as values.
type UsageError struct {
	// Op is the accessor that was called.
	Op string
	// State describes the variant the container was in.
	State string
}

// Error implements the [builtin.error] interface.
func (e *UsageError) Error() string {
	return "outcome: " + e.Op + " called on " + e.State
}

func misuse(op string, state fmt.Stringer) {
	panic(&UsageError{Op: op, State: state.String()})
}

// PanicError carries a recovered panic value that was not itself an error.
// Panics whose value implements error are captured unmodified instead.
type PanicError struct {
	Value any
}

// Error implements the [builtin.error] interface.
func (e PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// recovered converts a value obtained from recover into an error.
func recovered(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return PanicError{Value: v}
}
