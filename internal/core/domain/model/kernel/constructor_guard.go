package kernel

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when
// the caller passes a nil error, so a skipped constructor always surfaces
// with some message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects value objects and entities that were built as
// zero values instead of through their constructor.
//
// Embed one in the struct and set it with NewConstructorGuard inside the
// constructor. A zero-value instance then fails Validate, so downstream
// code can reject objects that bypassed construction-time checks:
//
//	type StageStamp struct {
//	    at    time.Time
//	    guard ConstructorGuard
//	}
//
//	func NewStageStamp(at time.Time) (StageStamp, error) {
//	    if at.IsZero() {
//	        return StageStamp{}, errors.New("timestamp is required")
//	    }
//	    return StageStamp{at: at, guard: NewConstructorGuard()}, nil
//	}
//
//	func (s StageStamp) Validate() error {
//	    return s.guard.Validate(ErrStageStampNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed. Call it in
// the constructor, never when restoring an already-validated struct field.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object came through its constructor.
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
