// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/sourcegraph/conc/panics"
	"golang.org/x/sync/errgroup"
)

// Async is a handle to a computation running on its own goroutine that
// eventually yields a [Result].
//
// The outcome is published exactly once. [Async.Await] may be called any
// number of times from any goroutine and always returns the same Result.
// If the computation panicked, every Await re-panics in the awaiting
// goroutine with a [*panics.Recovered] carrying the original value and stack.
//
// Combinators never block the caller: each returns a new handle whose
// computation awaits its inputs and applies the synchronous counterpart.
// Async adds no cancellation of its own; [Async.AwaitContext] only stops
// waiting.
//
// Handles come from [Go], [Resolved], [TryAsync] or a combinator. A zero or
// nil *Async has no computation behind it: waiting on it panics with a
// [*UsageError].
type Async[T, E any] struct {
	done chan struct{}
	res  Result[T, E]
	pc   panics.Catcher
}

// Go starts f on a new goroutine and returns its handle.
func Go[T, E any](f func() Result[T, E]) *Async[T, E] {
	a := &Async[T, E]{done: make(chan struct{})}
	go func() {
		defer close(a.done)
		a.pc.Try(func() { a.res = f() })
	}()
	return a
}

// Resolved returns an already completed handle holding r.
func Resolved[T, E any](r Result[T, E]) *Async[T, E] {
	a := &Async[T, E]{done: make(chan struct{}), res: r}
	close(a.done)
	return a
}

// TryAsync starts f on a new goroutine, capturing its returned error or
// panic like [Try].
func TryAsync[T any](f func() (T, error)) *Async[T, error] {
	return Go(func() Result[T, error] { return Try(f) })
}

// Done returns a channel closed once the computation has finished.
func (a *Async[T, E]) Done() <-chan struct{} {
	a.mustStart("Async.Done")
	return a.done
}

// Await blocks until the computation finishes and returns its Result.
func (a *Async[T, E]) Await() Result[T, E] {
	a.mustStart("Async.Await")
	<-a.done
	a.repanic()
	return a.res
}

func (a *Async[T, E]) mustStart(op string) {
	if a == nil || a.done == nil {
		panic(&UsageError{Op: op, State: "zero Async"})
	}
}

// recovered returns the panic captured from the computation, if any. A
// panic that was itself re-raised from another handle is unwrapped so the
// original value and stack are kept.
func (a *Async[T, E]) recovered() *panics.Recovered {
	rec := a.pc.Recovered()
	for rec != nil {
		inner, ok := rec.Value.(*panics.Recovered)
		if !ok {
			break
		}
		rec = inner
	}
	return rec
}

func (a *Async[T, E]) repanic() {
	if rec := a.recovered(); rec != nil {
		panic(rec)
	}
}

// AwaitContext is like [Async.Await] but returns ctx.Err() if ctx is done
// first. The computation keeps running.
func (a *Async[T, E]) AwaitContext(ctx context.Context) (Result[T, E], error) {
	a.mustStart("Async.AwaitContext")
	select {
	case <-a.done:
		a.repanic()
		return a.res, nil
	case <-ctx.Done():
		return Result[T, E]{}, ctx.Err()
	}
}

// MapAsync applies f to the success value once a completes.
func MapAsync[T, E, U any](a *Async[T, E], f func(T) U) *Async[U, E] {
	return Go(func() Result[U, E] { return MapResult(a.Await(), f) })
}

// MapErrAsync applies f to the error once a completes.
func MapErrAsync[T, E, F any](a *Async[T, E], f func(E) F) *Async[T, F] {
	return Go(func() Result[T, F] { return MapErrResult(a.Await(), f) })
}

// FlatMapAsync chains a dependent asynchronous step. The handle returned by
// f is awaited in turn. f is not invoked when a fails.
func FlatMapAsync[T, E, U any](a *Async[T, E], f func(T) *Async[U, E]) *Async[U, E] {
	return Go(func() Result[U, E] {
		r := a.Await()
		if !r.ok {
			return Err[U](r.err)
		}
		return f(r.value).Await()
	})
}

// FoldAsync eliminates a's Result into a single value once a completes.
// The returned handle always succeeds.
func FoldAsync[T, E, R any](a *Async[T, E], onOk func(T) R, onErr func(E) R) *Async[R, E] {
	return Go(func() Result[R, E] { return Ok[E](FoldResult(a.Await(), onOk, onErr)) })
}

// AwaitFold blocks until a completes and eliminates its Result into a
// single value.
func AwaitFold[T, E, R any](a *Async[T, E], onOk func(T) R, onErr func(E) R) R {
	return FoldResult(a.Await(), onOk, onErr)
}

// OrElseAsync recovers from a failure of a with f.
func OrElseAsync[T, E any](a *Async[T, E], f func(E) Result[T, E]) *Async[T, E] {
	return Go(func() Result[T, E] { return a.Await().OrElse(f) })
}

// TapAsync calls f with the success value once a completes.
func TapAsync[T, E any](a *Async[T, E], f func(T)) *Async[T, E] {
	return Go(func() Result[T, E] { return a.Await().Tap(f) })
}

// TapErrAsync calls f with the error once a completes.
func TapErrAsync[T, E any](a *Async[T, E], f func(E)) *Async[T, E] {
	return Go(func() Result[T, E] { return a.Await().TapErr(f) })
}

// EnsureAsync applies [Result.Ensure] once a completes.
func EnsureAsync[T, E any](a *Async[T, E], pred func(T) bool, err E) *Async[T, E] {
	return Go(func() Result[T, E] { return a.Await().Ensure(pred, err) })
}

// awaitPanic carries a handle's captured panic through an errgroup.
type awaitPanic struct {
	rec *panics.Recovered
}

func (p awaitPanic) Error() string {
	return fmt.Sprintf("async computation panicked: %v", p.rec.Value)
}

// awaitAll awaits every handle on its own goroutine and collects the Results
// in input order. If any handle panicked, the first panic observed is
// re-raised in the caller, and only after all handles have finished.
func awaitAll[T, E any](as []*Async[T, E]) []Result[T, E] {
	rs := make([]Result[T, E], len(as))
	var g errgroup.Group
	for i, a := range as {
		g.Go(func() error {
			<-a.done
			if rec := a.recovered(); rec != nil {
				return awaitPanic{rec: rec}
			}
			rs[i] = a.res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		var p awaitPanic
		if errors.As(err, &p) {
			panic(p.rec)
		}
		panic(err)
	}
	return rs
}

// CombineAsync waits for every handle and then applies [CombineResults].
// Unlike the synchronous operator it never returns early: the first failure
// is reported only after all handles have completed.
func CombineAsync[T, E any](as iter.Seq[*Async[T, E]]) *Async[[]T, E] {
	handles := slices.Collect(as)
	for _, a := range handles {
		a.mustStart("CombineAsync")
	}
	return Go(func() Result[[]T, E] {
		return CombineResults(slices.Values(awaitAll(handles)))
	})
}

// SequenceAsync is an alias of [CombineAsync].
func SequenceAsync[T, E any](as iter.Seq[*Async[T, E]]) *Async[[]T, E] {
	return CombineAsync(as)
}

// TraverseAsync starts f for every value, then combines the handles with
// [CombineAsync].
func TraverseAsync[T, U, E any](values iter.Seq[T], f func(T) *Async[U, E]) *Async[[]U, E] {
	var handles []*Async[U, E]
	for v := range values {
		handles = append(handles, f(v))
	}
	return CombineAsync(slices.Values(handles))
}

// PartitionAsync waits for every handle and splits their Results into
// ordered successes and ordered failures. It blocks the caller.
func PartitionAsync[T, E any](as iter.Seq[*Async[T, E]]) (oks []T, errs []E) {
	handles := slices.Collect(as)
	for _, a := range handles {
		a.mustStart("PartitionAsync")
	}
	return PartitionResults(slices.Values(awaitAll(handles)))
}
