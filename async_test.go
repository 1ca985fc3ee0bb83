// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome_test

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"code.hybscloud.com/outcome"
	"github.com/sourcegraph/conc/panics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gated returns a handle that completes with r once release is closed, and
// sets finished just before completing.
func gated[T, E any](r outcome.Result[T, E], release <-chan struct{}, finished *atomic.Bool) *outcome.Async[T, E] {
	return outcome.Go(func() outcome.Result[T, E] {
		<-release
		finished.Store(true)
		return r
	})
}

func TestAsyncAwait(t *testing.T) {
	a := outcome.Go(func() outcome.Result[int, string] { return outcome.Ok[string](1) })
	assert.Equal(t, outcome.Ok[string](1), a.Await())
	assert.Equal(t, outcome.Ok[string](1), a.Await(), "Await must be repeatable")

	r := outcome.Resolved(outcome.Err[int]("e"))
	select {
	case <-r.Done():
	default:
		t.Fatal("Resolved handle must already be done")
	}
	assert.Equal(t, outcome.Err[int]("e"), r.Await())
}

func TestAsyncAwaitContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	var finished atomic.Bool
	a := gated(outcome.Ok[string](1), release, &finished)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := a.AwaitContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	r, err := outcome.Resolved(outcome.Ok[string](2)).AwaitContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, r.Value())
}

func TestTryAsync(t *testing.T) {
	ok := outcome.TryAsync(func() (int, error) { return strconv.Atoi("42") })
	assert.Equal(t, 42, ok.Await().Value())

	bad := outcome.TryAsync(func() (int, error) { return strconv.Atoi("abc") })
	assert.True(t, bad.Await().IsErr())

	panicked := outcome.TryAsync(func() (int, error) { panic("boom") })
	var perr outcome.PanicError
	assert.ErrorAs(t, panicked.Await().Err(), &perr)
}

func TestAsyncPanicRepanicsOnAwait(t *testing.T) {
	a := outcome.Go(func() outcome.Result[int, string] { panic("lost") })
	defer func() {
		r := recover()
		rec, ok := r.(*panics.Recovered)
		require.True(t, ok)
		assert.Equal(t, "lost", rec.Value)
	}()
	a.Await()
	t.Fatal("expected panic")
}

func TestAsyncCombinators(t *testing.T) {
	base := outcome.Resolved(outcome.Ok[string](2))
	failed := outcome.Resolved(outcome.Err[int]("e"))

	assert.Equal(t, outcome.Ok[string]("2"), outcome.MapAsync(base, strconv.Itoa).Await())
	assert.Equal(t, outcome.Err[string]("e"), outcome.MapAsync(failed, strconv.Itoa).Await())

	lenErr := func(e string) int { return len(e) }
	assert.Equal(t, outcome.Err[int](1), outcome.MapErrAsync(failed, lenErr).Await())

	recovered := outcome.OrElseAsync(failed, func(e string) outcome.Result[int, string] { return outcome.Ok[string](0) })
	assert.Equal(t, outcome.Ok[string](0), recovered.Await())

	positive := func(x int) bool { return x > 0 }
	assert.Equal(t, outcome.Ok[string](2), outcome.EnsureAsync(base, positive, "neg").Await())
	neg := outcome.Resolved(outcome.Ok[string](-2))
	assert.Equal(t, outcome.Err[int]("neg"), outcome.EnsureAsync(neg, positive, "neg").Await())

	var seen atomic.Int64
	outcome.TapAsync(base, func(x int) { seen.Add(int64(x)) }).Await()
	outcome.TapErrAsync(failed, func(e string) { seen.Add(100) }).Await()
	outcome.TapErrAsync(base, func(e string) { seen.Add(1000) }).Await()
	assert.Equal(t, int64(102), seen.Load())

	onErr := func(e string) string { return "err:" + e }
	folded := outcome.FoldAsync(failed, strconv.Itoa, onErr)
	assert.Equal(t, outcome.Ok[string]("err:e"), folded.Await())
	assert.Equal(t, outcome.Ok[string]("2"), outcome.FoldAsync(base, strconv.Itoa, onErr).Await())
	assert.Equal(t, "err:e", outcome.AwaitFold(failed, strconv.Itoa, onErr))
}

func TestFoldAsyncDoesNotBlock(t *testing.T) {
	release := make(chan struct{})
	var finished atomic.Bool
	a := gated(outcome.Ok[string](5), release, &finished)

	folded := outcome.FoldAsync(a, strconv.Itoa, func(e string) string { return e })
	select {
	case <-folded.Done():
		t.Fatal("FoldAsync completed before its input")
	default:
	}
	close(release)
	assert.Equal(t, "5", folded.Await().Value())
}

func TestZeroAsyncPanicsWithUsageError(t *testing.T) {
	assertUsage := func(t *testing.T, op string, f func()) {
		t.Helper()
		defer func() {
			uerr, ok := recover().(*outcome.UsageError)
			require.True(t, ok)
			assert.Equal(t, op, uerr.Op)
			assert.Equal(t, "outcome: "+op+" called on zero Async", uerr.Error())
		}()
		f()
	}
	var zero outcome.Async[int, string]
	assertUsage(t, "Async.Await", func() { zero.Await() })
	assertUsage(t, "Async.Done", func() { zero.Done() })
	assertUsage(t, "Async.AwaitContext", func() { _, _ = zero.AwaitContext(context.Background()) })

	var nilHandle *outcome.Async[int, string]
	assertUsage(t, "Async.Await", func() { nilHandle.Await() })
	assertUsage(t, "CombineAsync", func() {
		outcome.CombineAsync(slices.Values([]*outcome.Async[int, string]{nilHandle}))
	})
}

func TestFlatMapAsyncChainsDependentSteps(t *testing.T) {
	fetch := func(id int) *outcome.Async[string, error] {
		return outcome.Go(func() outcome.Result[string, error] {
			return outcome.Ok[error]("user-" + strconv.Itoa(id))
		})
	}
	r := outcome.FlatMapAsync(outcome.TryAsync(func() (int, error) { return strconv.Atoi("7") }), fetch)
	assert.Equal(t, "user-7", r.Await().Value())

	errParse := errors.New("parse")
	called := false
	r = outcome.FlatMapAsync(outcome.Resolved(outcome.Err[int](errParse)), func(id int) *outcome.Async[string, error] {
		called = true
		return fetch(id)
	})
	assert.ErrorIs(t, r.Await().Err(), errParse)
	assert.False(t, called)
}

func TestCombineAsyncWaitsForEveryHandle(t *testing.T) {
	release := make(chan struct{})
	var finished atomic.Bool

	handles := []*outcome.Async[int, string]{
		outcome.Resolved(outcome.Ok[string](1)),
		outcome.Resolved(outcome.Err[int]("x")),
		gated(outcome.Ok[string](3), release, &finished),
	}
	combined := outcome.CombineAsync(slices.Values(handles))

	select {
	case <-combined.Done():
		t.Fatal("CombineAsync reported before the slowest handle completed")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	assert.Equal(t, outcome.Err[[]int]("x"), combined.Await())
	assert.True(t, finished.Load())
}

func TestCombineAsyncPanicWaitsForSiblings(t *testing.T) {
	release := make(chan struct{})
	var finished atomic.Bool
	handles := []*outcome.Async[int, string]{
		outcome.Go(func() outcome.Result[int, string] { panic("lost") }),
		gated(outcome.Ok[string](2), release, &finished),
	}
	combined := outcome.CombineAsync(slices.Values(handles))

	select {
	case <-combined.Done():
		t.Fatal("CombineAsync reported before the slower handle completed")
	case <-time.After(50 * time.Millisecond):
	}
	close(release)

	defer func() {
		rec, ok := recover().(*panics.Recovered)
		require.True(t, ok)
		assert.Equal(t, "lost", rec.Value)
		assert.True(t, finished.Load())
	}()
	combined.Await()
	t.Fatal("expected panic")
}

func TestPartitionAsyncRepanicsAfterAllHandles(t *testing.T) {
	release := make(chan struct{})
	var finished atomic.Bool
	handles := []*outcome.Async[int, string]{
		gated(outcome.Ok[string](1), release, &finished),
		outcome.Go(func() outcome.Result[int, string] { panic(errors.New("broken")) }),
	}
	go func() {
		time.Sleep(20 * time.Millisecond)
		close(release)
	}()

	defer func() {
		rec, ok := recover().(*panics.Recovered)
		require.True(t, ok)
		assert.EqualError(t, rec.Value.(error), "broken")
		assert.True(t, finished.Load())
	}()
	outcome.PartitionAsync(slices.Values(handles))
	t.Fatal("expected panic")
}

func TestCombineAsyncSuccess(t *testing.T) {
	handles := []*outcome.Async[int, string]{
		outcome.Go(func() outcome.Result[int, string] { time.Sleep(10 * time.Millisecond); return outcome.Ok[string](1) }),
		outcome.Resolved(outcome.Ok[string](2)),
	}
	assert.Equal(t, outcome.Ok[string]([]int{1, 2}), outcome.SequenceAsync(slices.Values(handles)).Await())
}

func TestTraverseAsync(t *testing.T) {
	var started atomic.Int64
	r := outcome.TraverseAsync(slices.Values([]string{"1", "2", "x"}), func(s string) *outcome.Async[int, error] {
		started.Add(1)
		return outcome.TryAsync(func() (int, error) { return strconv.Atoi(s) })
	})
	assert.True(t, r.Await().IsErr())
	assert.Equal(t, int64(3), started.Load(), "every value is started eagerly")

	r = outcome.TraverseAsync(slices.Values([]string{"1", "2"}), func(s string) *outcome.Async[int, error] {
		return outcome.TryAsync(func() (int, error) { return strconv.Atoi(s) })
	})
	assert.Equal(t, []int{1, 2}, r.Await().Value())
}

func TestPartitionAsync(t *testing.T) {
	release := make(chan struct{})
	var finished atomic.Bool
	handles := []*outcome.Async[int, string]{
		gated(outcome.Ok[string](1), release, &finished),
		outcome.Resolved(outcome.Err[int]("e1")),
		outcome.Resolved(outcome.Ok[string](3)),
	}
	close(release)
	oks, errs := outcome.PartitionAsync(slices.Values(handles))
	assert.Equal(t, []int{1, 3}, oks)
	assert.Equal(t, []string{"e1"}, errs)
	assert.True(t, finished.Load())
}
