// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package check provides ready-made validators that lift a predicate into
// an [outcome.Validation].
//
// Every validator returns Valid(input) when its predicate holds, and
// otherwise Invalid with a single message: the validator's default, or the
// one supplied with [Message] / [Messagef].
//
// Validators compose with the accumulating operators of package outcome:
//
//	user := outcome.Lift3Validation(newUser,
//		check.NotBlank(name),
//		check.Email(email),
//		check.Between(age, 18, 130, check.Message("age must be adult")),
//	)
//
// Format checks ([Email], [URL], [Phone]) delegate to
// github.com/go-playground/validator/v10.
package check
