// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package outcome provides algebraic container types for error handling in
// Go: an optional value, a success/failure disjunction, an error-accumulating
// validation, and an asynchronous handle over the disjunction.
//
// All containers are immutable values. Every operation is a pure function
// from a container and its arguments to a new container or a plain value,
// so containers can be shared between goroutines without synchronization.
//
// # Design Philosophy
//
// Go methods cannot introduce type parameters. Operations that keep the
// receiver's type are methods; operations that change a type parameter are
// free functions suffixed with the container name:
//
//	n := outcome.Some(21).Filter(isOdd)               // method
//	s := outcome.MapOption(n, strconv.Itoa)           // free function
//	r := outcome.OptionToResult(s, errors.New("even")) // cross-conversion
//
// Accessors that only make sense on one variant ([Option.Value],
// [Result.Value], [Result.Err], [Validation.Value], [Validation.Errors])
// panic with a [*UsageError] on the other variant. Use Get, ValueOr or the
// Fold functions where absence is expected.
//
// # Option
//
// [Option] is Some(value) or None. The zero value is None.
//
//   - [Some], [None], [FromPtr], [FromPredicate], [When], [Guard]: Constructors
//   - [MapOption], [FlatMapOption], [AndOption], [AndThenOption]: Chaining
//   - [Option.Filter], [Option.Or], [Option.OrElse]: Selection
//   - [FoldOption], [Option.Match], [Option.ValueOr], [Option.ValueOrElse]: Elimination
//   - [ZipOption], [ZipWithOption]: Pairing
//   - [FlattenOption], [TransposeOption]: Reshaping
//   - [OptionToResult], [OptionToResultElse]: Conversion to [Result]
//
// # Result
//
// [Result] is Ok(value) or Err(error). The error type is unconstrained.
//
//   - [Ok], [Err], [FromPair], [ResultFromPtr], [FromBool]: Constructors
//   - [Try]: Run a computation, capturing a returned error or panic as Err
//   - [MapResult], [MapErrResult], [BimapResult]: One-sided transforms
//   - [FlatMapResult], [FlatMapErrResult], [AndResult], [AndThenResult]: Chaining
//   - [Result.Ensure], [Result.EnsureElse]: Turn Ok into Err by predicate
//   - [Result.Or], [Result.OrElse]: Recovery
//   - [FoldResult], [Result.Match], [Result.ValueOr], [Result.ValueOrElse]: Elimination
//   - [Result.Tap], [Result.TapErr], [Result.Inspect], [Result.InspectErr]: Observation
//   - [SwapResult], [FlattenResult], [TransposeResult]: Reshaping
//
// # Validation
//
// [Validation] is Valid(value) or Invalid(errors) with at least one error.
// Its applicative operators accumulate errors instead of short-circuiting:
//
//   - [Valid], [Invalid], [InvalidSingle], [TryValidation]: Constructors
//   - [ZipValidation], [Lift2Validation], [Lift3Validation]: Accumulating combination
//   - [FlatMapValidation]: Dependent chaining (short-circuits)
//   - [Validation.ToResult]: Err of the first error
//   - [Validation.ToResultAll]: Err of all errors
//   - [JoinValidation], [SplitErrors]: Conversion to and from combined Go errors
//
// Two Invalid values are equal when their error lists have the same length
// and contain each other, regardless of order.
//
// # Batch Operators
//
// Batch operators take an [iter.Seq] and preserve its order.
//
//   - [CombineOptions], [CombineResults]: Stop at the first None or Err
//   - [CombineValidations]: Collect every error of every element
//   - [TraverseOptions], [TraverseResults], [TraverseValidations]: Map then combine
//   - [PartitionOptions], [PartitionResults]: Split by variant
//   - [Lift2Option], [Lift3Option], [Lift2Result], [Lift3Result]: N-ary application
//   - [FirstSome], [LastSome], [FoldMOption], [CombineAllOptions]: Option scans
//
// # Async
//
// [Async] is a handle to a goroutine yielding a [Result]. Its combinators
// await the input and apply the synchronous operator on a new goroutine.
// The batch operators [CombineAsync], [TraverseAsync] and [PartitionAsync]
// wait for every handle before reporting, even when one has already failed.
//
// # Equality
//
// Every container has Equal and Hash methods. Payloads compare structurally
// with github.com/google/go-cmp and hash with
// github.com/mitchellh/hashstructure/v2. [Option] and [Result] are also
// comparable with == when their type arguments are.
//
// # Example
//
//	age := outcome.FlatMapResult(
//		outcome.ParseInt(input),
//		func(n int) outcome.Result[int, error] {
//			return outcome.Ok[error](n).Ensure(isAdult, errNotAdult)
//		},
//	)
//	msg := outcome.FoldResult(age,
//		func(n int) string { return fmt.Sprintf("age %d", n) },
//		func(err error) string { return err.Error() },
//	)
package outcome
