package machine

import (
	"errors"
	"fmt"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
)

var (
	// ErrMachineIsNotConstructed is returned when a Machine instance was not
	// created through NewMachine or RestoreMachine.
	ErrMachineIsNotConstructed = errors.New("Machine must be created via NewMachine or RestoreMachine")
)

// ReleaseMode selects which machine flags a release clears.
type ReleaseMode int

const (
	// ReleaseInProgress clears the busy flag and the order back-reference.
	ReleaseInProgress ReleaseMode = iota + 1

	// ReleaseBroken clears the broken flag.
	ReleaseBroken

	// ReleaseBoth clears both flags and the order back-reference.
	ReleaseBoth
)

// String returns the mode name used in logs.
func (m ReleaseMode) String() string {
	switch m {
	case ReleaseInProgress:
		return "in_progress"
	case ReleaseBroken:
		return "broken"
	case ReleaseBoth:
		return "both"
	default:
		return "unknown"
	}
}

// Validate checks that the mode is one of the defined release modes.
func (m ReleaseMode) Validate() error {
	switch m {
	case ReleaseInProgress, ReleaseBroken, ReleaseBoth:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("releaseMode",
			fmt.Errorf("%d is not a valid release mode", m))
	}
}

// Machine represents one shop-floor machine and its availability.
//
// Invariant: the machine is in progress if and only if it holds a
// back-reference to its current order. The back-reference is weak:
// clearing it never deletes the order.
type Machine struct {
	id          kernel.UUID
	name        string
	machineType string

	isBroken        bool
	isInProgress    bool
	orderInProgress *kernel.UUID

	isConstructed bool
}

// NewMachine creates a free, working machine.
func NewMachine(id kernel.UUID, name, machineType string) (*Machine, error) {
	m := &Machine{isConstructed: true}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setType(machineType),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMachine reconstructs a machine from persistence, enforcing the
// busy/back-reference invariant.
func RestoreMachine(
	id kernel.UUID, name, machineType string,
	isBroken, isInProgress bool, orderInProgress *kernel.UUID,
) (*Machine, error) {
	m := &Machine{
		isBroken:        isBroken,
		isInProgress:    isInProgress,
		orderInProgress: orderInProgress,
		isConstructed:   true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setType(machineType),
	); err != nil {
		return nil, err
	}

	if isInProgress != (orderInProgress != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("machine",
			fmt.Errorf("in-progress flag is %t but order back-reference is set: %t",
				isInProgress, orderInProgress != nil))
	}

	return m, nil
}

// Validate ensures the Machine instance was properly constructed.
func (m *Machine) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMachineIsNotConstructed
	}
	return nil
}

// ID returns the machine's unique identifier.
func (m *Machine) ID() kernel.UUID {
	return m.id
}

// Name returns the machine's display name.
func (m *Machine) Name() string {
	return m.name
}

// Type returns the machine's type label.
func (m *Machine) Type() string {
	return m.machineType
}

// IsBroken reports whether an unresolved breakage report marks the machine broken.
func (m *Machine) IsBroken() bool {
	return m.isBroken
}

// IsInProgress reports whether the machine is running an order.
func (m *Machine) IsInProgress() bool {
	return m.isInProgress
}

// OrderInProgress returns the current order's ID, nil when the machine is free.
func (m *Machine) OrderInProgress() *kernel.UUID {
	return m.orderInProgress
}

// IsFree reports whether the machine can accept a new order.
func (m *Machine) IsFree() bool {
	return !m.isInProgress && !m.isBroken
}

// Assign marks the machine busy with the given order.
// Fails with a resource conflict when the machine is already running an order
// or is marked broken.
func (m *Machine) Assign(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if m.isInProgress {
		return errs.NewResourceConflictErrorWithCause("machine", m.id.String(),
			errors.New("machine is already running an order"))
	}
	if m.isBroken {
		return errs.NewResourceConflictErrorWithCause("machine", m.id.String(),
			errors.New("machine is broken"))
	}

	m.isInProgress = true
	m.orderInProgress = &orderID
	return nil
}

// Release clears the flags selected by mode. Releasing an already-free
// machine is a no-op, not an error.
func (m *Machine) Release(mode ReleaseMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	switch mode {
	case ReleaseInProgress:
		m.isInProgress = false
		m.orderInProgress = nil
	case ReleaseBroken:
		m.isBroken = false
	case ReleaseBoth:
		m.isInProgress = false
		m.orderInProgress = nil
		m.isBroken = false
	}

	return nil
}

// MarkBroken flags the machine as broken; it stays assigned to its order so
// the worker can return to it once the breakage report is solved.
func (m *Machine) MarkBroken() {
	m.isBroken = true
}

func (m *Machine) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Machine) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Machine) setType(machineType string) error {
	if machineType == "" {
		return errs.NewValueIsRequiredError("machineType")
	}
	m.machineType = machineType
	return nil
}
