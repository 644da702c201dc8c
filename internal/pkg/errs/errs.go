package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrResourceConflict   = errors.New("resource conflict")
	ErrConfigurationGap   = errors.New("configuration gap")
)

// sanitize collapses newlines so error messages stay on a single log line.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

// ObjectNotFoundError indicates that a requested object does not exist in storage.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value lies outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// PreconditionFailedError indicates that an operation was attempted in a state
// that does not allow it, such as replaying an already-performed stage transition.
type PreconditionFailedError struct {
	ParamName string
	Cause     error
}

func NewPreconditionFailedError(paramName string) *PreconditionFailedError {
	return &PreconditionFailedError{ParamName: paramName}
}

func NewPreconditionFailedErrorWithCause(paramName string, cause error) *PreconditionFailedError {
	return &PreconditionFailedError{ParamName: paramName, Cause: cause}
}

func (e *PreconditionFailedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrPreconditionFailed, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrPreconditionFailed, e.ParamName))
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

// ResourceConflictError indicates that an exclusive resource is already held,
// such as a machine that is already running another order.
type ResourceConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewResourceConflictError(paramName string, id any) *ResourceConflictError {
	return &ResourceConflictError{ParamName: paramName, ID: id}
}

func NewResourceConflictErrorWithCause(paramName string, id any, cause error) *ResourceConflictError {
	return &ResourceConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ResourceConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrResourceConflict, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %s", ErrResourceConflict, e.ParamName, e.ID))
}

func (e *ResourceConflictError) Unwrap() error {
	return ErrResourceConflict
}

// ConfigurationGapError indicates missing reference data that an operator must
// provision, such as a position row with no chill time configured. Operations
// failing with this error are not retried automatically.
type ConfigurationGapError struct {
	ParamName string
	Cause     error
}

func NewConfigurationGapError(paramName string) *ConfigurationGapError {
	return &ConfigurationGapError{ParamName: paramName}
}

func NewConfigurationGapErrorWithCause(paramName string, cause error) *ConfigurationGapError {
	return &ConfigurationGapError{ParamName: paramName, Cause: cause}
}

func (e *ConfigurationGapError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrConfigurationGap, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConfigurationGap, e.ParamName))
}

func (e *ConfigurationGapError) Unwrap() error {
	return ErrConfigurationGap
}
