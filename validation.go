// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

import (
	"fmt"
	"slices"

	"go.uber.org/multierr"
)

// Validation is either Valid with a value of type T, or Invalid with a
// non-empty, ordered list of errors of type E.
//
// Unlike [Result], the applicative combinators ([ZipValidation],
// [CombineValidations], [Lift2Validation], [Lift3Validation]) accumulate the
// errors of every operand instead of stopping at the first failure.
type Validation[E, T any] struct {
	value T
	errs  []E // nil iff valid
}

// Valid creates a valid Validation.
//
//	v := outcome.Valid[string](42) // Validation[string, int]
func Valid[E, T any](v T) Validation[E, T] {
	return Validation[E, T]{value: v}
}

// Invalid creates an invalid Validation from errs. errs must be non-empty;
// this is the caller's contract and is not checked. The slice is copied.
func Invalid[T, E any](errs []E) Validation[E, T] {
	return Validation[E, T]{errs: append(make([]E, 0, len(errs)), errs...)}
}

// InvalidSingle creates an invalid Validation holding one error.
func InvalidSingle[T, E any](err E) Validation[E, T] {
	return Validation[E, T]{errs: []E{err}}
}

// TryValidation runs f like [Try], capturing a returned error or a panic as a
// single-error Invalid.
func TryValidation[T any](f func() (T, error)) Validation[error, T] {
	return ResultToValidation(Try(f))
}

// ResultToValidation converts Ok(v) to Valid(v) and Err(e) to Invalid([e]).
func ResultToValidation[T, E any](r Result[T, E]) Validation[E, T] {
	if r.ok {
		return Valid[E](r.value)
	}
	return InvalidSingle[T](r.err)
}

// JoinValidation collapses a Validation of errors into a Result whose error
// combines every accumulated error. [multierr.Errors] recovers the list.
func JoinValidation[T any](v Validation[error, T]) Result[T, error] {
	if v.errs == nil {
		return Ok[error](v.value)
	}
	return Err[T](multierr.Combine(v.errs...))
}

// SplitErrors is the inverse of [JoinValidation] for a Go (value, error)
// return: a nil err gives Valid(v), otherwise Invalid with every error that
// err combines.
func SplitErrors[T any](v T, err error) Validation[error, T] {
	if err == nil {
		return Valid[error](v)
	}
	return Invalid[T](multierr.Errors(err))
}

// IsValid reports whether v is Valid.
func (v Validation[E, T]) IsValid() bool {
	return v.errs == nil
}

// IsInvalid reports whether v is Invalid.
func (v Validation[E, T]) IsInvalid() bool {
	return v.errs != nil
}

// Get returns the value and true, or zero and false.
func (v Validation[E, T]) Get() (T, bool) {
	if v.errs == nil {
		return v.value, true
	}
	var zero T
	return zero, false
}

// Value returns the valid value.
// Panics with a [*UsageError] if v is Invalid.
func (v Validation[E, T]) Value() T {
	if v.errs != nil {
		misuse("Validation.Value", v)
	}
	return v.value
}

// Errors returns a copy of the accumulated errors.
// Panics with a [*UsageError] if v is Valid.
func (v Validation[E, T]) Errors() []E {
	if v.errs == nil {
		misuse("Validation.Errors", v)
	}
	return slices.Clone(v.errs)
}

// ValueOr returns the valid value or def.
func (v Validation[E, T]) ValueOr(def T) T {
	if v.errs == nil {
		return v.value
	}
	return def
}

// ValueOrElse returns the valid value or f applied to the errors.
func (v Validation[E, T]) ValueOrElse(f func([]E) T) T {
	if v.errs == nil {
		return v.value
	}
	return f(slices.Clone(v.errs))
}

// ToPtr returns a pointer to a copy of the valid value, or nil.
func (v Validation[E, T]) ToPtr() *T {
	if v.errs != nil {
		return nil
	}
	x := v.value
	return &x
}

// ToSlice returns a slice holding the valid value, or an empty slice.
func (v Validation[E, T]) ToSlice() []T {
	if v.errs != nil {
		return []T{}
	}
	return []T{v.value}
}

// Match calls onValid with the value or onInvalid with the errors.
func (v Validation[E, T]) Match(onValid func(T), onInvalid func([]E)) {
	if v.errs == nil {
		onValid(v.value)
		return
	}
	onInvalid(slices.Clone(v.errs))
}

// Tap calls f with the value if v is Valid and returns v unchanged.
func (v Validation[E, T]) Tap(f func(T)) Validation[E, T] {
	if v.errs == nil {
		f(v.value)
	}
	return v
}

// TapErrors calls f with the errors if v is Invalid and returns v unchanged.
func (v Validation[E, T]) TapErrors(f func([]E)) Validation[E, T] {
	if v.errs != nil {
		f(slices.Clone(v.errs))
	}
	return v
}

// ToResult converts Valid(x) to Ok(x) and Invalid to Err of the first error.
// Remaining errors are discarded. Panics with a [*UsageError] if v was built
// from an empty error list.
func (v Validation[E, T]) ToResult() Result[T, E] {
	if v.errs == nil {
		return Ok[E](v.value)
	}
	if len(v.errs) == 0 {
		misuse("Validation.ToResult", v)
	}
	return Err[T](v.errs[0])
}

// ToResultAll converts Valid(x) to Ok(x) and Invalid to Err of all errors.
func (v Validation[E, T]) ToResultAll() Result[T, []E] {
	if v.errs == nil {
		return Ok[[]E](v.value)
	}
	return Err[T](slices.Clone(v.errs))
}

// Equal reports whether v and other are equal. Two Valid values are equal
// when their values are. Two Invalid values are equal when their error lists
// have the same length and each contains every error of the other; order is
// not significant.
func (v Validation[E, T]) Equal(other Validation[E, T]) bool {
	if (v.errs == nil) != (other.errs == nil) {
		return false
	}
	if v.errs == nil {
		return equalValues(v.value, other.value)
	}
	if len(v.errs) != len(other.errs) {
		return false
	}
	for _, e := range v.errs {
		if !containsValue(other.errs, e) {
			return false
		}
	}
	for _, e := range other.errs {
		if !containsValue(v.errs, e) {
			return false
		}
	}
	return true
}

// Hash returns a hash consistent with [Validation.Equal].
func (v Validation[E, T]) Hash() (uint64, error) {
	if v.errs == nil {
		return hashTagged(tagValid, v.value)
	}
	return hashSet(tagInvalid, v.errs)
}

// String implements [fmt.Stringer].
func (v Validation[E, T]) String() string {
	if v.errs == nil {
		return fmt.Sprintf("Valid(%v)", v.value)
	}
	return fmt.Sprintf("Invalid(%v)", v.errs)
}

// MapValidation applies f to the valid value.
func MapValidation[E, T, U any](v Validation[E, T], f func(T) U) Validation[E, U] {
	if v.errs == nil {
		return Valid[E](f(v.value))
	}
	return Validation[E, U]{errs: v.errs}
}

// FlatMapValidation sequences a dependent validation. It short-circuits on
// Invalid: errors cannot accumulate across a computation that needs the
// previous value.
func FlatMapValidation[E, T, U any](v Validation[E, T], f func(T) Validation[E, U]) Validation[E, U] {
	if v.errs == nil {
		return f(v.value)
	}
	return Validation[E, U]{errs: v.errs}
}

// MapErrorsValidation applies f to every error.
func MapErrorsValidation[E, T, F any](v Validation[E, T], f func(E) F) Validation[F, T] {
	if v.errs == nil {
		return Valid[F](v.value)
	}
	errs := make([]F, len(v.errs))
	for i, e := range v.errs {
		errs[i] = f(e)
	}
	return Validation[F, T]{errs: errs}
}

// FoldValidation eliminates v into a single value.
func FoldValidation[E, T, R any](v Validation[E, T], onValid func(T) R, onInvalid func([]E) R) R {
	if v.errs == nil {
		return onValid(v.value)
	}
	return onInvalid(slices.Clone(v.errs))
}

// ZipValidation combines two validations. If both are Valid, f is applied to
// both values. Otherwise the result is Invalid with a's errors followed by
// b's errors.
func ZipValidation[E, A, B, C any](a Validation[E, A], b Validation[E, B], f func(A, B) C) Validation[E, C] {
	if a.errs == nil && b.errs == nil {
		return Valid[E](f(a.value, b.value))
	}
	return Validation[E, C]{errs: concatErrors(a.errs, b.errs)}
}

// ZipWithValidation is an alias of [ZipValidation].
func ZipWithValidation[E, A, B, C any](a Validation[E, A], b Validation[E, B], f func(A, B) C) Validation[E, C] {
	return ZipValidation(a, b, f)
}

// concatErrors returns a fresh slice holding every error list in order.
func concatErrors[E any](lists ...[]E) []E {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	errs := make([]E, 0, n)
	for _, l := range lists {
		errs = append(errs, l...)
	}
	return errs
}
