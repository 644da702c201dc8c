// Package errs defines the error taxonomy used across the shop-floor
// application. HTTP handlers map these categories to status codes and
// handlers branch on them with errors.Is.
//
// Categories:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails validation
//   - ValueIsOutOfRangeError: a numeric value falls outside its bounds
//   - ObjectNotFoundError: an aggregate cannot be found
//   - PreconditionFailedError: an operation attempted in a state that forbids it
//   - ResourceConflictError: an exclusive resource is already held
//   - ConfigurationGapError: reference data an operator must provision is missing
//
// Every category follows the same pattern: a sentinel (ErrValueIsRequired and
// friends) matched by errors.Is, a struct carrying the details, constructors
// with and without a cause, and Unwrap so the cause chain stays inspectable.
package errs
