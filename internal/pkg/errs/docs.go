// Package errs provides standardized error types for the orders service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - ValidationFailedError: For a submission that violates one or more rules
//   - StatusIsInvalidError: For an order status label outside the known set
//   - PersistenceError: For failures of the backing store
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is matches the category
//
// The HTTP adapter relies on these categories to choose status codes, so new
// failure modes should be expressed through one of them rather than ad-hoc errors.
package errs
