package order

import (
	"fmt"

	"shopfloor/internal/pkg/errs"
)

// Stage represents the lifecycle position of an order on the shop floor.
// It implements a state machine with a strict forward order of transitions:
//
//	Created ──> Scanned ──> Quantified ──> MachineSetup ──> Processing ──> Ended
//
// Ended is also reachable from any non-terminal stage via force-stop.
// Each stage is entered exactly once; transitions never go backwards and
// are never replayed.
type Stage int

const (
	// Unknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	Unknown Stage = iota

	// Created is the initial stage: the machine is acquired and the order
	// exists, but no part has been scanned yet.
	Created

	// Scanned means the part was identified (part name recorded).
	Scanned

	// Quantified means the number of parts was entered and working time started.
	Quantified

	// MachineSetup means the worker started setting up the machine.
	MachineSetup

	// Processing means the machine finished its run and the worker is
	// completing the order.
	Processing

	// Ended is the terminal stage, reached by a clean end or a force-stop.
	Ended
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		Unknown:      "Unknown",
		Created:      "Created",
		Scanned:      "Scanned",
		Quantified:   "Quantified",
		MachineSetup: "MachineSetup",
		Processing:   "Processing",
		Ended:        "Ended",
	}
}

func getValidStageStrings() map[Stage]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Stage]string{
		Created:      "Created",
		Scanned:      "Scanned",
		Quantified:   "Quantified",
		MachineSetup: "MachineSetup",
		Processing:   "Processing",
		Ended:        "Ended",
	}
}

// Validate checks if the Stage value is one of the defined lifecycle stages.
// Unknown (0) and out-of-range values are invalid.
func (s Stage) Validate() error {
	if _, ok := getValidStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the human-readable name of the stage.
// It implements fmt.Stringer and is safe on any Stage value.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the stage allows no further transitions.
func (s Stage) IsTerminal() bool {
	return s == Ended
}

// next maps each stage to its single forward successor.
func (s Stage) next() (Stage, bool) {
	switch s {
	case Created:
		return Scanned, true
	case Scanned:
		return Quantified, true
	case Quantified:
		return MachineSetup, true
	case MachineSetup:
		return Processing, true
	case Processing:
		return Ended, true
	default:
		return Unknown, false
	}
}

// advance transitions to the expected successor stage.
// It fails when the current stage is not `from`, which catches both replayed
// and skipped transitions.
func (s Stage) advance(from Stage) (Stage, error) {
	if s != from {
		return 0, errs.NewPreconditionFailedErrorWithCause(
			"stage",
			fmt.Errorf("transition requires %s, current stage is %s", from.String(), s.String()),
		)
	}

	to, ok := s.next()
	if !ok {
		return 0, errs.NewPreconditionFailedErrorWithCause(
			"stage",
			fmt.Errorf("%s has no forward transition", s.String()),
		)
	}

	return to, nil
}

// Scan transitions Created -> Scanned.
func (s Stage) Scan() (Stage, error) {
	return s.advance(Created)
}

// Quantify transitions Scanned -> Quantified.
func (s Stage) Quantify() (Stage, error) {
	return s.advance(Scanned)
}

// Setup transitions Quantified -> MachineSetup.
func (s Stage) Setup() (Stage, error) {
	return s.advance(Quantified)
}

// Process transitions MachineSetup -> Processing.
func (s Stage) Process() (Stage, error) {
	return s.advance(MachineSetup)
}

// End transitions Processing -> Ended.
func (s Stage) End() (Stage, error) {
	return s.advance(Processing)
}

// ForceStop transitions any non-terminal stage to Ended.
func (s Stage) ForceStop() (Stage, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewPreconditionFailedErrorWithCause(
			"stage",
			fmt.Errorf("%s is terminal and cannot be force-stopped", s.String()),
		)
	}
	return Ended, nil
}
