// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

import (
	"iter"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Adapters from native Go values into containers.

// FromPtr returns Some(*p), or None if p is nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromBool returns Ok(v) if cond holds, otherwise Err(err).
func FromBool[T, E any](cond bool, v T, err E) Result[T, E] {
	if cond {
		return Ok[E](v)
	}
	return Err[T](err)
}

// At returns the element at index i, or None if i is out of range.
func At[S ~[]T, T any](s S, i int) Option[T] {
	if i < 0 || i >= len(s) {
		return None[T]()
	}
	return Some(s[i])
}

// Head returns the first element of seq, or None if seq is empty.
func Head[T any](seq iter.Seq[T]) Option[T] {
	for v := range seq {
		return Some(v)
	}
	return None[T]()
}

// Last returns the last element of seq, or None if seq is empty.
func Last[T any](seq iter.Seq[T]) Option[T] {
	last := None[T]()
	for v := range seq {
		last = Some(v)
	}
	return last
}

// Find returns the first element of seq satisfying pred, or None.
func Find[T any](seq iter.Seq[T], pred func(T) bool) Option[T] {
	for v := range seq {
		if pred(v) {
			return Some(v)
		}
	}
	return None[T]()
}

// CollectSome yields the values of the Some elements of seq.
func CollectSome[T any](seq iter.Seq[Option[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for o := range seq {
			if o.ok && !yield(o.value) {
				return
			}
		}
	}
}

// Lookup returns the value stored under k, or None.
func Lookup[M ~map[K]V, K comparable, V any](m M, k K) Option[V] {
	v, ok := m[k]
	if !ok {
		return None[V]()
	}
	return Some(v)
}

// NonEmpty returns Some(s) unless s is empty.
func NonEmpty(s string) Option[string] {
	return Guard(s != "", s)
}

// NonBlank returns Some(s) unless s is empty or only whitespace.
func NonBlank(s string) Option[string] {
	return Guard(strings.TrimSpace(s) != "", s)
}

// NonZero returns Some(v) unless v is the zero value.
func NonZero[T comparable](v T) Option[T] {
	var zero T
	return Guard(v != zero, v)
}

// Positive returns Some(v) if v > 0.
func Positive[T ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64](v T) Option[T] {
	return Guard(v > 0, v)
}

// ParseInt parses a base-10 integer.
func ParseInt(s string) Result[int, error] {
	return FromPair(strconv.Atoi(s))
}

// ParseFloat parses a 64-bit floating point number.
func ParseFloat(s string) Result[float64, error] {
	return FromPair(strconv.ParseFloat(s, 64))
}

// ParseBool parses a boolean as accepted by [strconv.ParseBool].
func ParseBool(s string) Result[bool, error] {
	return FromPair(strconv.ParseBool(s))
}

// CastInt converts a dynamic value to int using spf13/cast rules.
func CastInt(v any) Result[int, error] {
	return FromPair(cast.ToIntE(v))
}

// CastInt64 converts a dynamic value to int64.
func CastInt64(v any) Result[int64, error] {
	return FromPair(cast.ToInt64E(v))
}

// CastFloat64 converts a dynamic value to float64.
func CastFloat64(v any) Result[float64, error] {
	return FromPair(cast.ToFloat64E(v))
}

// CastString converts a dynamic value to string.
func CastString(v any) Result[string, error] {
	return FromPair(cast.ToStringE(v))
}

// CastBool converts a dynamic value to bool.
func CastBool(v any) Result[bool, error] {
	return FromPair(cast.ToBoolE(v))
}

// CastDuration converts a dynamic value to a time.Duration. Bare numbers
// are nanoseconds; strings use [time.ParseDuration] syntax.
func CastDuration(v any) Result[time.Duration, error] {
	return FromPair(cast.ToDurationE(v))
}
