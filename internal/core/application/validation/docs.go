// Package validation checks raw order submissions before they reach the
// domain. It wraps go-playground/validator with JSON-path aware messages
// and reports every violated rule at once as *errs.ValidationFailedError.
package validation
