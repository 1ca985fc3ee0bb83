// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package logtap provides observers that log container payloads through a
// [slog.Logger]. They plug into the side-effecting combinators:
//
//	r := outcome.Try(load).TapErr(logtap.Err[error](logger, "load failed"))
//
// package outcome itself never logs.
package logtap

import (
	"context"
	"log/slog"
)

// Err returns an observer that logs an error payload at error level under
// the "error" key.
func Err[E any](logger *slog.Logger, msg string, attrs ...slog.Attr) func(E) {
	return func(e E) {
		log(logger, slog.LevelError, msg, slog.Any("error", e), attrs)
	}
}

// Errors returns an observer that logs accumulated errors at warn level
// under the "errors" key, with their count under "error_count".
func Errors[E any](logger *slog.Logger, msg string, attrs ...slog.Attr) func([]E) {
	return func(errs []E) {
		attrs := append([]slog.Attr{slog.Int("error_count", len(errs))}, attrs...)
		log(logger, slog.LevelWarn, msg, slog.Any("errors", errs), attrs)
	}
}

// Value returns an observer that logs a success payload at debug level under
// the "value" key.
func Value[T any](logger *slog.Logger, msg string, attrs ...slog.Attr) func(T) {
	return func(v T) {
		log(logger, slog.LevelDebug, msg, slog.Any("value", v), attrs)
	}
}

func log(logger *slog.Logger, level slog.Level, msg string, payload slog.Attr, attrs []slog.Attr) {
	all := make([]slog.Attr, 0, len(attrs)+1)
	all = append(all, payload)
	all = append(all, attrs...)
	logger.LogAttrs(context.Background(), level, msg, all...)
}
