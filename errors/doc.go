// Package errors provides structured error types for the catdomain library.
//
// Errors are categorized by Op (which operation detected the failure) and
// Kind (error category). The Error type carries the offending index and the
// registry size where relevant, plus a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.OpLookup, errors.KindIndexOutOfRange).
//		Index(7).
//		Size(3).
//		Detail("stale index after trim").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfRange(errors.OpLookup, 7, 3)
//	err := errors.Unset(errors.OpLookup)
//	err := errors.EmptyDomain(errors.OpTrim, "no value met threshold 5")
//
// All errors implement the standard error interface and support errors.Is/As.
// Every failure is detected before shared state is touched; there are no
// partial-failure states to clean up after.
package errors
