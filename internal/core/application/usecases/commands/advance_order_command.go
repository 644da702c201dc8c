package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
	"shopfloor/internal/pkg/guard"
)

var (
	ErrAdvanceOrderCommandIsNotConstructed = errors.New(
		"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
	)
	ErrPartNameIsRequired = errors.New("part name is required for the scan action")
	ErrNumPartsIsInvalid  = errors.New("number of parts must be greater than 0")
)

// OrderAction identifies which stage transition an advance request performs.
type OrderAction int

const (
	// ActionUnknown represents an invalid or undefined action.
	ActionUnknown OrderAction = iota

	// ActionScan records the part name.
	ActionScan

	// ActionQuantify records the number of parts and starts working time.
	ActionQuantify

	// ActionSetup marks the machine run as started.
	ActionSetup

	// ActionProcess marks the machine run as finished.
	ActionProcess

	// ActionEnd finishes the order, computing bug time and freeing the machine.
	ActionEnd
)

func getActionStrings() map[OrderAction]string {
	return map[OrderAction]string{
		ActionUnknown:  "unknown",
		ActionScan:     "scan",
		ActionQuantify: "quantify",
		ActionSetup:    "setup",
		ActionProcess:  "process",
		ActionEnd:      "end",
	}
}

// OrderActionFromString parses an action name as used on the wire.
func OrderActionFromString(s string) (OrderAction, error) {
	for action, name := range getActionStrings() {
		if name == s && action != ActionUnknown {
			return action, nil
		}
	}
	return ActionUnknown, errs.NewValueIsInvalidError("action")
}

// String returns the wire name of the action.
// It implements fmt.Stringer and is safe on any OrderAction value.
func (a OrderAction) String() string {
	if name, ok := getActionStrings()[a]; ok {
		return name
	}
	return "unknown"
}

// Validate checks the action is one of the defined stage transitions.
func (a OrderAction) Validate() error {
	if a == ActionUnknown {
		return errs.NewValueIsInvalidError("action")
	}
	if _, ok := getActionStrings()[a]; !ok {
		return errs.NewValueIsInvalidError("action")
	}
	return nil
}

// AdvanceOrderCommand represents a request to advance an order one stage.
// Scan carries the part name, quantify the part count; the remaining actions
// carry only the timestamp taken at handling time.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	action   OrderAction
	partName string
	numParts int

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order.
// partName is required for scan, numParts for quantify; both are ignored
// for the other actions.
func NewAdvanceOrderCommand(
	orderID kernel.UUID, action OrderAction, partName string, numParts int,
) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAction(action),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	if action == ActionScan {
		if partName == "" {
			return AdvanceOrderCommand{}, ErrPartNameIsRequired
		}
		cmd.partName = partName
	}

	if action == ActionQuantify {
		if numParts <= 0 {
			return AdvanceOrderCommand{}, ErrNumPartsIsInvalid
		}
		cmd.numParts = numParts
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the order being advanced.
func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Action returns the stage transition to perform.
func (c AdvanceOrderCommand) Action() OrderAction {
	return c.action
}

// PartName returns the scanned part name. Empty for non-scan actions.
func (c AdvanceOrderCommand) PartName() string {
	return c.partName
}

// NumParts returns the part count. Zero for non-quantify actions.
func (c AdvanceOrderCommand) NumParts() int {
	return c.numParts
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setAction(action OrderAction) error {
	if err := action.Validate(); err != nil {
		return err
	}

	c.action = action
	return nil
}
