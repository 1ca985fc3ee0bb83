// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package logtap

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"code.hybscloud.com/outcome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Level      string   `json:"level"`
	Msg        string   `json:"msg"`
	Error      string   `json:"error"`
	Errors     []string `json:"errors"`
	ErrorCount int      `json:"error_count"`
	Value      int      `json:"value"`
	Op         string   `json:"op"`
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decode(t *testing.T, buf *bytes.Buffer) record {
	t.Helper()
	var rec record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestErr(t *testing.T) {
	var buf bytes.Buffer
	r := outcome.Err[int](errors.New("disk full")).
		TapErr(Err[error](newLogger(&buf), "write failed", slog.String("op", "save")))
	assert.True(t, r.IsErr())

	rec := decode(t, &buf)
	assert.Equal(t, "ERROR", rec.Level)
	assert.Equal(t, "write failed", rec.Msg)
	assert.Equal(t, "disk full", rec.Error)
	assert.Equal(t, "save", rec.Op)
}

func TestErrNotCalledOnOk(t *testing.T) {
	var buf bytes.Buffer
	outcome.Ok[error](1).TapErr(Err[error](newLogger(&buf), "never"))
	assert.Zero(t, buf.Len())
}

func TestErrors(t *testing.T) {
	var buf bytes.Buffer
	outcome.Invalid[int]([]string{"a", "b"}).TapErrors(Errors[string](newLogger(&buf), "invalid input"))

	rec := decode(t, &buf)
	assert.Equal(t, "WARN", rec.Level)
	assert.Equal(t, []string{"a", "b"}, rec.Errors)
	assert.Equal(t, 2, rec.ErrorCount)
}

func TestValue(t *testing.T) {
	var buf bytes.Buffer
	outcome.Ok[error](7).Tap(Value[int](newLogger(&buf), "loaded"))

	rec := decode(t, &buf)
	assert.Equal(t, "DEBUG", rec.Level)
	assert.Equal(t, 7, rec.Value)
}

func TestAsyncTap(t *testing.T) {
	var buf bytes.Buffer
	a := outcome.TapErrAsync(outcome.Resolved(outcome.Err[int](errors.New("late"))), Err[error](newLogger(&buf), "async failed"))
	a.Await()

	rec := decode(t, &buf)
	assert.Equal(t, "late", rec.Error)
}
