// Package guard provides ConstructorGuard, a marker embedded in commands,
// queries and value objects so a zero value can be told apart from one built
// by its constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no
// error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner went through a constructor.
// The zero value reports "not constructed".
//
// Example:
//
//	type GetUserOrderQuery struct {
//	    ownerID string
//	    guard   guard.ConstructorGuard
//	}
//
//	func (q GetUserOrderQuery) Validate() error {
//	    return q.guard.Validate(ErrGetUserOrderQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
