// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package check

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"code.hybscloud.com/outcome"
	"github.com/go-playground/validator/v10"
)

// Option customizes a validator.
type Option func(*options)

type options struct {
	message string
}

// Message replaces the validator's default error message.
func Message(msg string) Option {
	return func(o *options) {
		o.message = msg
	}
}

// Messagef is like [Message] with fmt.Sprintf formatting.
func Messagef(format string, args ...any) Option {
	return Message(fmt.Sprintf(format, args...))
}

// Number is the set of types accepted by the sign checks.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// validate is shared because go-playground/validator caches parsed tags.
var validate = validator.New()

func verify[T any](v T, ok bool, def string, opts []Option) outcome.Validation[string, T] {
	if ok {
		return outcome.Valid[string](v)
	}
	o := options{message: def}
	for _, opt := range opts {
		opt(&o)
	}
	return outcome.InvalidSingle[T](o.message)
}

// NotNil checks that p is not nil.
func NotNil[T any](p *T, opts ...Option) outcome.Validation[string, *T] {
	return verify(p, p != nil, "value must not be nil", opts)
}

// NotEmpty checks that s is not the empty string.
func NotEmpty[S ~string](s S, opts ...Option) outcome.Validation[string, S] {
	return verify(s, len(s) > 0, "value must not be empty", opts)
}

// NotBlank checks that s contains something other than whitespace.
func NotBlank[S ~string](s S, opts ...Option) outcome.Validation[string, S] {
	return verify(s, strings.TrimSpace(string(s)) != "", "value must not be blank", opts)
}

// MinLength checks that s has at least n runes.
func MinLength[S ~string](s S, n int, opts ...Option) outcome.Validation[string, S] {
	return verify(s, utf8.RuneCountInString(string(s)) >= n,
		fmt.Sprintf("length must be at least %d", n), opts)
}

// MaxLength checks that s has at most n runes.
func MaxLength[S ~string](s S, n int, opts ...Option) outcome.Validation[string, S] {
	return verify(s, utf8.RuneCountInString(string(s)) <= n,
		fmt.Sprintf("length must be at most %d", n), opts)
}

// LengthBetween checks that s has between lo and hi runes, inclusive.
func LengthBetween[S ~string](s S, lo, hi int, opts ...Option) outcome.Validation[string, S] {
	n := utf8.RuneCountInString(string(s))
	return verify(s, n >= lo && n <= hi,
		fmt.Sprintf("length must be between %d and %d", lo, hi), opts)
}

// Min checks that v >= lo.
func Min[T cmp.Ordered](v, lo T, opts ...Option) outcome.Validation[string, T] {
	return verify(v, v >= lo, fmt.Sprintf("value must be at least %v", lo), opts)
}

// Max checks that v <= hi.
func Max[T cmp.Ordered](v, hi T, opts ...Option) outcome.Validation[string, T] {
	return verify(v, v <= hi, fmt.Sprintf("value must be at most %v", hi), opts)
}

// Between checks that lo <= v <= hi.
func Between[T cmp.Ordered](v, lo, hi T, opts ...Option) outcome.Validation[string, T] {
	return verify(v, v >= lo && v <= hi,
		fmt.Sprintf("value must be between %v and %v", lo, hi), opts)
}

// Positive checks that v > 0.
func Positive[T Number](v T, opts ...Option) outcome.Validation[string, T] {
	return verify(v, v > 0, "value must be positive", opts)
}

// Negative checks that v < 0.
func Negative[T Number](v T, opts ...Option) outcome.Validation[string, T] {
	return verify(v, v < 0, "value must be negative", opts)
}

// NonNegative checks that v >= 0.
func NonNegative[T Number](v T, opts ...Option) outcome.Validation[string, T] {
	return verify(v, v >= 0, "value must be non-negative", opts)
}

// Matches checks that re matches s.
func Matches[S ~string](s S, re *regexp.Regexp, opts ...Option) outcome.Validation[string, S] {
	return verify(s, re.MatchString(string(s)),
		fmt.Sprintf("value must match pattern %s", re), opts)
}

// Email checks that s is an email address.
func Email[S ~string](s S, opts ...Option) outcome.Validation[string, S] {
	return verify(s, validate.Var(string(s), "email") == nil,
		"value must be a valid email address", opts)
}

// URL checks that s is an absolute URL.
func URL[S ~string](s S, opts ...Option) outcome.Validation[string, S] {
	return verify(s, validate.Var(string(s), "url") == nil,
		"value must be a valid URL", opts)
}

// Phone checks that s is a phone number in E.164 format.
func Phone[S ~string](s S, opts ...Option) outcome.Validation[string, S] {
	return verify(s, validate.Var(string(s), "e164") == nil,
		"value must be a valid phone number", opts)
}

// MinSize checks that xs has at least n elements.
func MinSize[S ~[]T, T any](xs S, n int, opts ...Option) outcome.Validation[string, S] {
	return verify(xs, len(xs) >= n, fmt.Sprintf("size must be at least %d", n), opts)
}

// MaxSize checks that xs has at most n elements.
func MaxSize[S ~[]T, T any](xs S, n int, opts ...Option) outcome.Validation[string, S] {
	return verify(xs, len(xs) <= n, fmt.Sprintf("size must be at most %d", n), opts)
}

// OneOf checks that v is one of allowed.
func OneOf[T comparable](v T, allowed []T, opts ...Option) outcome.Validation[string, T] {
	return verify(v, slices.Contains(allowed, v),
		fmt.Sprintf("value must be one of %v", allowed), opts)
}
