// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

import (
	"fmt"
	"iter"
)

// Result represents the outcome of a computation: either Ok with a value of
// type T, or Err with an error of type E. E is unconstrained.
//
// Result is an immutable value. When T and E are comparable, Result[T, E]
// is comparable with == and usable as a map key.
type Result[T, E any] struct {
	ok    bool
	value T
	err   E
}

// Ok creates a successful Result.
// The error type comes first so that it alone can be spelled out:
//
//	r := outcome.Ok[string](42) // Result[int, string]
func Ok[E, T any](v T) Result[T, E] {
	return Result[T, E]{ok: true, value: v}
}

// Err creates a failed Result.
//
//	r := outcome.Err[int]("boom") // Result[int, string]
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// FromPair converts a Go (value, error) return into a Result.
// A non-nil err is kept unmodified.
func FromPair[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[error](v)
}

// Try runs f and captures its outcome. A returned error becomes Err
// unmodified. A panic is recovered: an error panic value is deposited as-is,
// any other value as [PanicError].
func Try[T any](f func() (T, error)) (r Result[T, error]) {
	defer func() {
		if v := recover(); v != nil {
			r = Err[T](recovered(v))
		}
	}()
	return FromPair(f())
}

// IsOk reports whether r is Ok.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether r is Err.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Get returns the value and true, or zero and false.
func (r Result[T, E]) Get() (T, bool) {
	if r.ok {
		return r.value, true
	}
	var zero T
	return zero, false
}

// GetErr returns the error and true, or zero and false.
func (r Result[T, E]) GetErr() (E, bool) {
	if !r.ok {
		return r.err, true
	}
	var zero E
	return zero, false
}

// Value returns the success value.
// Panics with a [*UsageError] if r is Err.
func (r Result[T, E]) Value() T {
	if !r.ok {
		misuse("Result.Value", r)
	}
	return r.value
}

// Err returns the error.
// Panics with a [*UsageError] if r is Ok.
func (r Result[T, E]) Err() E {
	if r.ok {
		misuse("Result.Err", r)
	}
	return r.err
}

// ValueOr returns the success value or def.
func (r Result[T, E]) ValueOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// ValueOrElse returns the success value or f applied to the error.
func (r Result[T, E]) ValueOrElse(f func(E) T) T {
	if r.ok {
		return r.value
	}
	return f(r.err)
}

// GetOrDefault is an alias of [Result.ValueOr].
func (r Result[T, E]) GetOrDefault(def T) T {
	return r.ValueOr(def)
}

// GetOrElse is an alias of [Result.ValueOrElse].
func (r Result[T, E]) GetOrElse(f func(E) T) T {
	return r.ValueOrElse(f)
}

// GetOrNull is an alias of [Result.ToPtr].
func (r Result[T, E]) GetOrNull() *T {
	return r.ToPtr()
}

// ToPtr returns a pointer to a copy of the success value, or nil.
func (r Result[T, E]) ToPtr() *T {
	if !r.ok {
		return nil
	}
	v := r.value
	return &v
}

// ToSlice returns a slice holding the success value, or an empty slice.
func (r Result[T, E]) ToSlice() []T {
	if !r.ok {
		return []T{}
	}
	return []T{r.value}
}

// All returns a sequence yielding the success value once if r is Ok.
func (r Result[T, E]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.ok {
			yield(r.value)
		}
	}
}

// Option returns Some(value) if r is Ok, otherwise None.
func (r Result[T, E]) Option() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// ErrOption returns Some(err) if r is Err, otherwise None.
func (r Result[T, E]) ErrOption() Option[E] {
	if !r.ok {
		return Some(r.err)
	}
	return None[E]()
}

// Ensure turns Ok(v) into Err(err) unless pred(v) holds.
func (r Result[T, E]) Ensure(pred func(T) bool, err E) Result[T, E] {
	if r.ok && !pred(r.value) {
		return Err[T](err)
	}
	return r
}

// EnsureElse is like [Result.Ensure] but builds the error from the value.
func (r Result[T, E]) EnsureElse(pred func(T) bool, f func(T) E) Result[T, E] {
	if r.ok && !pred(r.value) {
		return Err[T](f(r.value))
	}
	return r
}

// Or returns r if it is Ok, otherwise other.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return other
}

// OrElse returns r if it is Ok, otherwise f applied to the error.
func (r Result[T, E]) OrElse(f func(E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return f(r.err)
}

// Match calls onOk with the value or onErr with the error.
func (r Result[T, E]) Match(onOk func(T), onErr func(E)) {
	if r.ok {
		onOk(r.value)
		return
	}
	onErr(r.err)
}

// Tap calls f with the value if r is Ok and returns r unchanged.
func (r Result[T, E]) Tap(f func(T)) Result[T, E] {
	if r.ok {
		f(r.value)
	}
	return r
}

// TapErr calls f with the error if r is Err and returns r unchanged.
func (r Result[T, E]) TapErr(f func(E)) Result[T, E] {
	if !r.ok {
		f(r.err)
	}
	return r
}

// Inspect is an alias of [Result.Tap].
func (r Result[T, E]) Inspect(f func(T)) Result[T, E] {
	return r.Tap(f)
}

// InspectErr is an alias of [Result.TapErr].
func (r Result[T, E]) InspectErr(f func(E)) Result[T, E] {
	return r.TapErr(f)
}

// Equal reports whether r and other are on the same side with structurally
// equal payloads.
func (r Result[T, E]) Equal(other Result[T, E]) bool {
	if r.ok != other.ok {
		return false
	}
	if r.ok {
		return equalValues(r.value, other.value)
	}
	return equalValues(r.err, other.err)
}

// Hash returns a hash consistent with [Result.Equal].
func (r Result[T, E]) Hash() (uint64, error) {
	if r.ok {
		return hashTagged(tagOk, r.value)
	}
	return hashTagged(tagErr, r.err)
}

// String implements [fmt.Stringer].
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// ResultToOption is the free-function form of [Result.Option].
func ResultToOption[T, E any](r Result[T, E]) Option[T] {
	return r.Option()
}

// ResultFromPtr returns Ok(*p), or Err(err) if p is nil.
func ResultFromPtr[T, E any](p *T, err E) Result[T, E] {
	if p == nil {
		return Err[T](err)
	}
	return Ok[E](*p)
}

// MapResult applies f to the success value.
func MapResult[T, E, U any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.ok {
		return Ok[E](f(r.value))
	}
	return Err[U](r.err)
}

// MapErrResult applies f to the error.
func MapErrResult[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Ok[F](r.value)
	}
	return Err[T](f(r.err))
}

// BimapResult applies onOk or onErr to whichever side is present.
func BimapResult[T, E, U, F any](r Result[T, E], onOk func(T) U, onErr func(E) F) Result[U, F] {
	if r.ok {
		return Ok[F](onOk(r.value))
	}
	return Err[U](onErr(r.err))
}

// FlatMapResult sequences two fallible computations.
// f is not invoked when r is Err.
func FlatMapResult[T, E, U any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return f(r.value)
	}
	return Err[U](r.err)
}

// FlatMapErrResult recovers from an error with another fallible computation.
// f is not invoked when r is Ok.
func FlatMapErrResult[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[F](r.value)
	}
	return f(r.err)
}

// AndResult returns other if r is Ok, otherwise r's error.
func AndResult[T, E, U any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if r.ok {
		return other
	}
	return Err[U](r.err)
}

// AndThenResult is an alias of [FlatMapResult].
func AndThenResult[T, E, U any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	return FlatMapResult(r, f)
}

// FoldResult eliminates r into a single value.
func FoldResult[T, E, R any](r Result[T, E], onOk func(T) R, onErr func(E) R) R {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// SwapResult exchanges the two sides: Ok(v) becomes Err(v) and vice versa.
func SwapResult[T, E any](r Result[T, E]) Result[E, T] {
	if r.ok {
		return Err[E](r.value)
	}
	return Ok[T](r.err)
}

// FlattenResult removes one level of nesting, keeping the outer error.
func FlattenResult[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if r.ok {
		return r.value
	}
	return Err[T](r.err)
}

// TransposeResult turns a Result of an Option into an optional Result:
//
//	Ok(Some(v)) → Some(Ok(v))
//	Ok(None)    → None
//	Err(e)      → Some(Err(e))
func TransposeResult[T, E any](r Result[Option[T], E]) Option[Result[T, E]] {
	if !r.ok {
		return Some(Err[T](r.err))
	}
	if r.value.ok {
		return Some(Ok[E](r.value.value))
	}
	return None[Result[T, E]]()
}
