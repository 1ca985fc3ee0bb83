// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

import (
	"fmt"
	"iter"
)

// Option represents a value that is either present (Some) or absent (None).
// The zero value is None.
//
// Option is an immutable value: every operation returns a new Option.
// When T is comparable, Option[T] is comparable with == and usable as a
// map key.
type Option[T any] struct {
	value T
	ok    bool
}

// Some creates a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None creates an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the value is absent.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and true, or zero and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Value returns the present value.
// Panics with a [*UsageError] if the Option is None.
func (o Option[T]) Value() T {
	if !o.ok {
		misuse("Option.Value", o)
	}
	return o.value
}

// ValueOr returns the present value or def.
func (o Option[T]) ValueOr(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// ValueOrElse returns the present value or the result of f.
// f is only invoked when the Option is None.
func (o Option[T]) ValueOrElse(f func() T) T {
	if o.ok {
		return o.value
	}
	return f()
}

// Or returns o if it is Some, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return other
}

// OrElse returns o if it is Some, otherwise the result of f.
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return f()
}

// Filter keeps the value only if pred holds for it.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.ok && pred(o.value) {
		return o
	}
	return Option[T]{}
}

// Match calls onSome with the value, or onNone.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.ok {
		onSome(o.value)
		return
	}
	onNone()
}

// Tap calls f with the value if present and returns o unchanged.
func (o Option[T]) Tap(f func(T)) Option[T] {
	if o.ok {
		f(o.value)
	}
	return o
}

// Inspect is an alias of [Option.Tap].
func (o Option[T]) Inspect(f func(T)) Option[T] {
	return o.Tap(f)
}

// ToPtr returns a pointer to a copy of the value, or nil.
func (o Option[T]) ToPtr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// ToSlice returns a slice holding zero or one element.
func (o Option[T]) ToSlice() []T {
	if !o.ok {
		return []T{}
	}
	return []T{o.value}
}

// All returns a sequence yielding the value once if present.
// The sequence can be ranged over any number of times.
func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.ok {
			yield(o.value)
		}
	}
}

// Equal reports whether o and other are both None, or both Some with
// structurally equal values.
func (o Option[T]) Equal(other Option[T]) bool {
	if o.ok != other.ok {
		return false
	}
	return !o.ok || equalValues(o.value, other.value)
}

// Hash returns a hash consistent with [Option.Equal].
// An error is returned if the value contains kinds that cannot be hashed.
func (o Option[T]) Hash() (uint64, error) {
	if !o.ok {
		return hashValue([2]uint64{tagNone, 0})
	}
	return hashTagged(tagSome, o.value)
}

// String implements [fmt.Stringer].
func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// FromPredicate returns Some(v) if pred(v) holds, otherwise None.
func FromPredicate[T any](v T, pred func(T) bool) Option[T] {
	if pred(v) {
		return Some(v)
	}
	return None[T]()
}

// When returns Some(f()) if cond holds, otherwise None.
// f is not invoked when cond is false.
func When[T any](cond bool, f func() T) Option[T] {
	if cond {
		return Some(f())
	}
	return None[T]()
}

// Guard returns Some(v) if cond holds, otherwise None.
// Unlike [When], v is evaluated by the caller regardless of cond.
func Guard[T any](cond bool, v T) Option[T] {
	if cond {
		return Some(v)
	}
	return None[T]()
}

// MapOption applies f to the value if present.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.ok {
		return Some(f(o.value))
	}
	return None[B]()
}

// FlatMapOption sequences two optional computations.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.ok {
		return f(o.value)
	}
	return None[B]()
}

// AndOption returns other if o is Some, otherwise None.
func AndOption[A, B any](o Option[A], other Option[B]) Option[B] {
	if o.ok {
		return other
	}
	return None[B]()
}

// AndThenOption is an alias of [FlatMapOption].
func AndThenOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	return FlatMapOption(o, f)
}

// FoldOption eliminates o into a single value.
func FoldOption[A, R any](o Option[A], onSome func(A) R, onNone func() R) R {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// ZipOption pairs two values if both are present.
func ZipOption[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	if a.ok && b.ok {
		return Some(Pair[A, B]{Fst: a.value, Snd: b.value})
	}
	return None[Pair[A, B]]()
}

// ZipWithOption combines two values with f if both are present.
func ZipWithOption[A, B, C any](a Option[A], b Option[B], f func(A, B) C) Option[C] {
	return MapOption(ZipOption(a, b), func(p Pair[A, B]) C {
		return f(p.Fst, p.Snd)
	})
}

// FlattenOption removes one level of nesting.
func FlattenOption[T any](o Option[Option[T]]) Option[T] {
	if o.ok {
		return o.value
	}
	return None[T]()
}

// TransposeOption turns an optional Result into a Result of an Option:
//
//	None          → Ok(None)
//	Some(Ok(v))   → Ok(Some(v))
//	Some(Err(e))  → Err(e)
func TransposeOption[T, E any](o Option[Result[T, E]]) Result[Option[T], E] {
	if !o.ok {
		return Ok[E](None[T]())
	}
	r := o.value
	if r.ok {
		return Ok[E](Some(r.value))
	}
	return Err[Option[T]](r.err)
}

// OptionToResult converts Some(v) to Ok(v) and None to Err(err).
func OptionToResult[T, E any](o Option[T], err E) Result[T, E] {
	if o.ok {
		return Ok[E](o.value)
	}
	return Err[T](err)
}

// OptionToResultElse is like [OptionToResult] but computes the error lazily.
func OptionToResultElse[T, E any](o Option[T], f func() E) Result[T, E] {
	if o.ok {
		return Ok[E](o.value)
	}
	return Err[T](f())
}
