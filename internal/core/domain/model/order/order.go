package order

import (
	"errors"
	"fmt"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents one production task executed on one machine during a shift.
// It is the aggregate root that drives the stage lifecycle from machine
// acquisition through scanning, quantifying, machine setup, processing and ending.
//
// Order follows these invariants:
//   - Must have valid identifiers for itself, its worker, machine and shift
//   - Stage transitions follow the strict forward order defined by Stage
//   - Every stage timestamp is written exactly once and never overwritten
//   - An order is ended iff its end working time is set or it was ended early
//   - Can only be created through NewOrder or rehydrated through RestoreOrder
type Order struct {
	id        kernel.UUID
	workerID  kernel.UUID
	machineID kernel.UUID
	shiftID   kernel.UUID

	partName string
	numParts int

	stage Stage

	// startTime is stamped at creation; the remaining stage timestamps are
	// nil until their transition fires, and each is write-once.
	startTime        time.Time
	scanTime         *time.Time
	startWorkingTime *time.Time
	machineStartTime *time.Time
	machineEndTime   *time.Time
	endWorkingTime   *time.Time

	// bugsTime is the summed duration of solved breakage reports, computed
	// when the order ends. Nil until then.
	bugsTime   *time.Duration
	endedEarly bool

	holdStarted *time.Time
	holdURL     string
	holdEnded   *time.Time

	isConstructed bool
}

// NewOrder creates a new Order in the Created stage with its start time stamped.
// This is the only way to create a fresh order, ensuring all identifiers are valid.
//
// Parameters:
//   - id: unique identifier for the order
//   - workerID: the worker running the order
//   - machineID: the machine the order was started on
//   - shiftID: the shift that owns the order
//   - startTime: the moment the machine was acquired
func NewOrder(id, workerID, machineID, shiftID kernel.UUID, startTime time.Time) (*Order, error) {
	o := &Order{
		stage:         Created,
		startTime:     startTime,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setWorkerID(workerID),
		o.setMachineID(machineID),
		o.setShiftID(shiftID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrderParams carries the full persisted state of an order.
type RestoreOrderParams struct {
	ID        kernel.UUID
	WorkerID  kernel.UUID
	MachineID kernel.UUID
	ShiftID   kernel.UUID

	PartName string
	NumParts int
	Stage    Stage

	StartTime        time.Time
	ScanTime         *time.Time
	StartWorkingTime *time.Time
	MachineStartTime *time.Time
	MachineEndTime   *time.Time
	EndWorkingTime   *time.Time

	BugsTime   *time.Duration
	EndedEarly bool

	HoldStarted *time.Time
	HoldURL     string
	HoldEnded   *time.Time
}

// RestoreOrder reconstructs an order from persistence.
// Unlike NewOrder it accepts any valid stage and already-stamped timestamps,
// but still validates identifiers and the stage value.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	o := &Order{
		partName:         p.PartName,
		numParts:         p.NumParts,
		startTime:        p.StartTime,
		scanTime:         p.ScanTime,
		startWorkingTime: p.StartWorkingTime,
		machineStartTime: p.MachineStartTime,
		machineEndTime:   p.MachineEndTime,
		endWorkingTime:   p.EndWorkingTime,
		bugsTime:         p.BugsTime,
		endedEarly:       p.EndedEarly,
		holdStarted:      p.HoldStarted,
		holdURL:          p.HoldURL,
		holdEnded:        p.HoldEnded,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setWorkerID(p.WorkerID),
		o.setMachineID(p.MachineID),
		o.setShiftID(p.ShiftID),
		o.setStage(p.Stage),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed if the order is a zero value.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// WorkerID returns the worker running the order.
func (o *Order) WorkerID() kernel.UUID {
	return o.workerID
}

// MachineID returns the machine the order runs on.
func (o *Order) MachineID() kernel.UUID {
	return o.machineID
}

// ShiftID returns the shift that owns the order.
func (o *Order) ShiftID() kernel.UUID {
	return o.shiftID
}

// PartName returns the scanned part name, empty before the scan transition.
func (o *Order) PartName() string {
	return o.partName
}

// NumParts returns the entered quantity, zero before the quantify transition.
func (o *Order) NumParts() int {
	return o.numParts
}

// Stage returns the current lifecycle stage.
func (o *Order) Stage() Stage {
	return o.stage
}

// StartTime returns the moment the order was created and its machine acquired.
func (o *Order) StartTime() time.Time {
	return o.startTime
}

// ScanTime returns when the part was scanned, nil before.
func (o *Order) ScanTime() *time.Time {
	return o.scanTime
}

// StartWorkingTime returns when the quantity was entered, nil before.
func (o *Order) StartWorkingTime() *time.Time {
	return o.startWorkingTime
}

// MachineStartTime returns when machine setup started, nil before.
func (o *Order) MachineStartTime() *time.Time {
	return o.machineStartTime
}

// MachineEndTime returns when the machine run finished, nil before.
func (o *Order) MachineEndTime() *time.Time {
	return o.machineEndTime
}

// EndWorkingTime returns when the order ended, nil while still in progress.
func (o *Order) EndWorkingTime() *time.Time {
	return o.endWorkingTime
}

// BugsTime returns the summed duration of solved breakage reports,
// nil until the order ends.
func (o *Order) BugsTime() *time.Duration {
	return o.bugsTime
}

// EndedEarly reports whether the order was force-stopped.
func (o *Order) EndedEarly() bool {
	return o.endedEarly
}

// HoldStarted returns when the current or last hold began, nil if never held.
func (o *Order) HoldStarted() *time.Time {
	return o.holdStarted
}

// HoldURL returns the recorded resume location, empty if never held.
func (o *Order) HoldURL() string {
	return o.holdURL
}

// HoldEnded returns when the last hold was resumed, nil while held.
func (o *Order) HoldEnded() *time.Time {
	return o.holdEnded
}

/// IsEnded reports whether the order is terminal: either it finished cleanly
// (end working time stamped) or it was force-stopped.
func (o *Order) IsEnded() bool {
	return o.endWorkingTime != nil || o.endedEarly
}

// CanAbort reports whether the order may still be backed out and deleted.
// Aborting is only allowed before the part has been scanned.
func (o *Order) CanAbort() bool {
	return o.stage == Created
}

// Scan records the scanned part name and stamps the scan time.
// Valid only in the Created stage.
func (o *Order) Scan(partName string, at time.Time) error {
	if partName == "" {
		return errs.NewValueIsRequiredError("partName")
	}

	newStage, err := o.stage.Scan()
	if err != nil {
		return err
	}
	if err = stampOnce(&o.scanTime, "scanTime", at); err != nil {
		return err
	}

	o.partName = partName
	o.stage = newStage
	return nil
}

// Quantify records the number of parts and stamps the start working time.
// Valid only in the Scanned stage.
func (o *Order) Quantify(numParts int, at time.Time) error {
	if numParts <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("numParts",
			fmt.Errorf("%d is not greater than 0", numParts))
	}

	newStage, err := o.stage.Quantify()
	if err != nil {
		return err
	}
	if err = stampOnce(&o.startWorkingTime, "startWorkingTime", at); err != nil {
		return err
	}

	o.numParts = numParts
	o.stage = newStage
	return nil
}

// Setup stamps the machine start time. Valid only in the Quantified stage.
func (o *Order) Setup(at time.Time) error {
	newStage, err := o.stage.Setup()
	if err != nil {
		return err
	}
	if err = stampOnce(&o.machineStartTime, "machineStartTime", at); err != nil {
		return err
	}

	o.stage = newStage
	return nil
}

// Process stamps the machine end time. Valid only in the MachineSetup stage.
func (o *Order) Process(at time.Time) error {
	newStage, err := o.stage.Process()
	if err != nil {
		return err
	}
	if err = stampOnce(&o.machineEndTime, "machineEndTime", at); err != nil {
		return err
	}

	o.stage = newStage
	return nil
}

// End finishes the order cleanly: stamps the end working time and records the
// bug time computed from the order's solved breakage reports.
// Valid only in the Processing stage.
func (o *Order) End(at time.Time, bugsTime time.Duration) error {
	newStage, err := o.stage.End()
	if err != nil {
		return err
	}
	if err = stampOnce(&o.endWorkingTime, "endWorkingTime", at); err != nil {
		return err
	}

	o.bugsTime = &bugsTime
	o.stage = newStage
	return nil
}

// ForceStop ends the order early from any non-terminal stage.
// It marks the order as ended early and stamps the end working time, so the
// order satisfies the ended predicate without completing its stages.
func (o *Order) ForceStop(at time.Time) error {
	newStage, err := o.stage.ForceStop()
	if err != nil {
		return err
	}
	if err = stampOnce(&o.endWorkingTime, "endWorkingTime", at); err != nil {
		return err
	}

	o.endedEarly = true
	o.stage = newStage
	return nil
}

// Hold pauses the order, recording when the hold began and the location the
// worker should return to on resume. The stage does not change. Hold fields
// are deliberately not write-once: an order can be held and resumed many times.
func (o *Order) Hold(resumeURL string, at time.Time) error {
	if o.IsEnded() {
		return errs.NewPreconditionFailedError("cannot hold an ended order")
	}
	if resumeURL == "" {
		resumeURL = "/"
	}

	holdStarted := at
	o.holdStarted = &holdStarted
	o.holdURL = resumeURL
	o.holdEnded = nil
	return nil
}

// Resume ends the current hold and returns the recorded resume location.
// Resume is tolerant and idempotent: resuming an order that is not held, or
// resuming twice, returns the last known URL rather than erroring, since
// hold/resume drives screen navigation rather than business invariants.
func (o *Order) Resume(at time.Time) string {
	if o.holdStarted != nil && o.holdEnded == nil {
		holdEnded := at
		o.holdEnded = &holdEnded
	}

	if o.holdURL == "" {
		return "/"
	}
	return o.holdURL
}

// RecordHoldURL stores a resume location without starting a hold.
// Used when filing a breakage report so the worker returns to the same screen.
func (o *Order) RecordHoldURL(url string) {
	if url == "" {
		url = "/"
	}
	o.holdURL = url
}

// stampOnce sets a write-once timestamp field.
// Re-stamping an already-set field is a precondition violation.
func stampOnce(field **time.Time, name string, at time.Time) error {
	if *field != nil {
		return errs.NewPreconditionFailedError(name + " is already set")
	}
	t := at
	*field = &t
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setWorkerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.workerID = id
	return nil
}

func (o *Order) setMachineID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.machineID = id
	return nil
}

func (o *Order) setShiftID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.shiftID = id
	return nil
}

func (o *Order) setStage(s Stage) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.stage = s
	return nil
}
