// Package guard provides a construction marker for commands and value
// objects that must only be created through their constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied and the guarded object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects zero-value instantiation of structs that embed it.
// Only objects created through a constructor that calls NewConstructorGuard
// pass validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was constructed through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
