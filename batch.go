// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

import "iter"

// Batch operators over sequences of containers.
//
// Every operator preserves the iteration order of its source in its ordered
// outputs. Option and Result operators short-circuit: they stop pulling from
// the source at the first None or Err. Validation operators accumulate: they
// drain the whole source and keep every error.

// CombineOptions returns Some of all values if every element is Some, or
// None at the first None.
func CombineOptions[T any](opts iter.Seq[Option[T]]) Option[[]T] {
	values := []T{}
	for o := range opts {
		if !o.ok {
			return None[[]T]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}

// CombineAllOptions returns the values of every Some element, dropping None.
func CombineAllOptions[T any](opts iter.Seq[Option[T]]) []T {
	values := []T{}
	for o := range opts {
		if o.ok {
			values = append(values, o.value)
		}
	}
	return values
}

// TraverseOptions maps f over values and combines the results.
// f is not invoked past the first None it returns.
func TraverseOptions[T, U any](values iter.Seq[T], f func(T) Option[U]) Option[[]U] {
	out := []U{}
	for v := range values {
		o := f(v)
		if !o.ok {
			return None[[]U]()
		}
		out = append(out, o.value)
	}
	return Some(out)
}

// PartitionOptions splits opts into the ordered present values and the
// number of absent elements.
func PartitionOptions[T any](opts iter.Seq[Option[T]]) (values []T, absent int) {
	values = []T{}
	for o := range opts {
		if o.ok {
			values = append(values, o.value)
			continue
		}
		absent++
	}
	return values, absent
}

// FirstSome returns the first Some element, or None.
func FirstSome[T any](opts iter.Seq[Option[T]]) Option[T] {
	for o := range opts {
		if o.ok {
			return o
		}
	}
	return None[T]()
}

// LastSome returns the last Some element, or None.
func LastSome[T any](opts iter.Seq[Option[T]]) Option[T] {
	last := None[T]()
	for o := range opts {
		if o.ok {
			last = o
		}
	}
	return last
}

// Lift2Option applies f if both arguments are Some.
func Lift2Option[A, B, C any](f func(A, B) C, a Option[A], b Option[B]) Option[C] {
	if a.ok && b.ok {
		return Some(f(a.value, b.value))
	}
	return None[C]()
}

// Lift3Option applies f if all three arguments are Some.
func Lift3Option[A, B, C, D any](f func(A, B, C) D, a Option[A], b Option[B], c Option[C]) Option[D] {
	if a.ok && b.ok && c.ok {
		return Some(f(a.value, b.value, c.value))
	}
	return None[D]()
}

// FoldMOption folds opts from the left with a step that may fail. It stops
// with None at the first None element or the first None returned by step.
func FoldMOption[T, R any](opts iter.Seq[Option[T]], initial R, step func(R, T) Option[R]) Option[R] {
	acc := initial
	for o := range opts {
		if !o.ok {
			return None[R]()
		}
		next := step(acc, o.value)
		if !next.ok {
			return None[R]()
		}
		acc = next.value
	}
	return Some(acc)
}

// CombineResults returns Ok of all values if every element is Ok, or the
// first Err as-is. Elements after the first Err are not pulled.
func CombineResults[T, E any](rs iter.Seq[Result[T, E]]) Result[[]T, E] {
	values := []T{}
	for r := range rs {
		if !r.ok {
			return Err[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Ok[E](values)
}

// SequenceResults is an alias of [CombineResults].
func SequenceResults[T, E any](rs iter.Seq[Result[T, E]]) Result[[]T, E] {
	return CombineResults(rs)
}

// TraverseResults maps f over values and combines the results.
// f is not invoked past the first Err it returns.
func TraverseResults[T, U, E any](values iter.Seq[T], f func(T) Result[U, E]) Result[[]U, E] {
	out := []U{}
	for v := range values {
		r := f(v)
		if !r.ok {
			return Err[[]U](r.err)
		}
		out = append(out, r.value)
	}
	return Ok[E](out)
}

// PartitionResults splits rs into ordered successes and ordered failures.
func PartitionResults[T, E any](rs iter.Seq[Result[T, E]]) (oks []T, errs []E) {
	oks, errs = []T{}, []E{}
	for r := range rs {
		if r.ok {
			oks = append(oks, r.value)
			continue
		}
		errs = append(errs, r.err)
	}
	return oks, errs
}

// Lift2Result applies f if both arguments are Ok. Otherwise the first Err in
// argument order is returned.
func Lift2Result[A, B, C, E any](f func(A, B) C, a Result[A, E], b Result[B, E]) Result[C, E] {
	switch {
	case !a.ok:
		return Err[C](a.err)
	case !b.ok:
		return Err[C](b.err)
	}
	return Ok[E](f(a.value, b.value))
}

// Lift3Result applies f if all three arguments are Ok. Otherwise the first
// Err in argument order is returned.
func Lift3Result[A, B, C, D, E any](f func(A, B, C) D, a Result[A, E], b Result[B, E], c Result[C, E]) Result[D, E] {
	switch {
	case !a.ok:
		return Err[D](a.err)
	case !b.ok:
		return Err[D](b.err)
	case !c.ok:
		return Err[D](c.err)
	}
	return Ok[E](f(a.value, b.value, c.value))
}

// CombineValidations returns Valid of all values if no element is Invalid.
// Otherwise it returns Invalid with the errors of every Invalid element, in
// order. The whole source is always consumed.
func CombineValidations[E, T any](vs iter.Seq[Validation[E, T]]) Validation[E, []T] {
	values := []T{}
	var errs []E
	for v := range vs {
		if v.errs != nil {
			errs = append(errs, v.errs...)
			continue
		}
		values = append(values, v.value)
	}
	if errs != nil {
		return Validation[E, []T]{errs: errs}
	}
	return Valid[E](values)
}

// SequenceValidations is an alias of [CombineValidations].
func SequenceValidations[E, T any](vs iter.Seq[Validation[E, T]]) Validation[E, []T] {
	return CombineValidations(vs)
}

// TraverseValidations maps f over every value and combines the results,
// accumulating all errors.
func TraverseValidations[E, T, U any](values iter.Seq[T], f func(T) Validation[E, U]) Validation[E, []U] {
	return CombineValidations(func(yield func(Validation[E, U]) bool) {
		for v := range values {
			if !yield(f(v)) {
				return
			}
		}
	})
}

// Lift2Validation applies f if both arguments are Valid. Otherwise it
// returns Invalid with a's errors followed by b's.
func Lift2Validation[E, A, B, C any](f func(A, B) C, a Validation[E, A], b Validation[E, B]) Validation[E, C] {
	return ZipValidation(a, b, f)
}

// Lift3Validation applies f if all three arguments are Valid. Otherwise it
// returns Invalid with a's, b's and c's errors in that order.
func Lift3Validation[E, A, B, C, D any](f func(A, B, C) D, a Validation[E, A], b Validation[E, B], c Validation[E, C]) Validation[E, D] {
	if a.errs == nil && b.errs == nil && c.errs == nil {
		return Valid[E](f(a.value, b.value, c.value))
	}
	return Validation[E, D]{errs: concatErrors(a.errs, b.errs, c.errs)}
}
