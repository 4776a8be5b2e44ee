// Package errs provides the error taxonomy shared by the work-order service.
//
// Each error kind follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ErrValueIsOutOfRange, ErrValueIsRequired)
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without cause
//   - Unwrap returning the sentinel, so callers classify with errors.Is
//
// Adapters translate these kinds at the edge: ErrObjectNotFound becomes a 404,
// the validation sentinels become a 400.
package errs
