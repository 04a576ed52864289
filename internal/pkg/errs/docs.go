// Package errs provides the typed errors shared by the ordering application.
//
// Every error type follows the same shape: a sentinel variable (ErrValueIsRequired,
// ErrObjectNotFound, ...), a struct carrying the details the caller needs to act on,
// constructors with and without a cause, and an Unwrap method returning the sentinel so
// that errors.Is can classify the failure.
//
// The sentinels map onto the four failure classes of the service:
//   - validation: ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange
//   - not found: ErrObjectNotFound
//   - conflict (retryable with fresh input): ErrConflict
//   - infrastructure (retryable with backoff): ErrStoreUnavailable
package errs
