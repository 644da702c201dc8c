package kernel

import (
	"fmt"

	"shopfloor/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID,
// meaning the value skipped NewUUID, UUIDFromString, and UUIDFromBytes.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identifier value object shared by every aggregate: shifts,
// orders, machines, workers, positions and reports all carry one.
//
// It wraps github.com/google/uuid so the domain model never depends on the
// library directly. The zero value is invalid; construct through NewUUID,
// UUIDFromString or UUIDFromBytes and check Validate when restoring from
// untrusted input.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random version 4 UUID. This is how every new
// aggregate gets its identity.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the canonical textual form, for example the
// shift_id segment of a request path:
//
//	shiftID, err := kernel.UUIDFromString(c.Param("shift_id"))
//	if err != nil {
//	    return fmt.Errorf("invalid shift ID: %w", err)
//	}
//
// Braced and urn:uuid forms are accepted as well.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes builds a UUID from a 16-byte slice, the form identifiers
// take when read back from the database. The result is validated so a
// nil-UUID column cannot smuggle a zero value into the domain.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
// A zero value renders as the nil UUID string.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying uuid.UUID for persistence adapters that
// store identifiers in native uuid columns. Domain code should not need it.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both values identify the same entity.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero value.
// Aggregate constructors call this on every identifier they receive.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
