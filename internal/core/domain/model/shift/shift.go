// Package shift implements the Shift aggregate: a worker's continuous work
// session bounded by open and close, plus the derived time-accounting fields
// the closing pipeline fills in after the shift ends.
package shift

import (
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/pkg/errs"
)

var (
	// ErrShiftIsNotConstructed is returned when a Shift instance was not
	// created through NewShift or RestoreShift.
	ErrShiftIsNotConstructed = errors.New("Shift must be created via NewShift or RestoreShift")
)

// Shift represents one worker's work session. A worker has at most one open
// shift (no end time) at a time; the derived fields stay nil until the
// closing pipeline computes them.
type Shift struct {
	id       kernel.UUID
	workerID kernel.UUID

	startTime time.Time
	endTime   *time.Time

	numEndedOrders *int
	timeTotal      *time.Duration
	goodTime       *time.Duration
	badTime        *time.Duration
	lostTime       *time.Duration
	totalBugsTime  *time.Duration

	isConstructed bool
}

// NewShift opens a new shift for a worker.
func NewShift(id, workerID kernel.UUID, startTime time.Time) (*Shift, error) {
	s := &Shift{
		startTime:     startTime,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setWorkerID(workerID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShiftParams carries the full persisted state of a shift.
type RestoreShiftParams struct {
	ID       kernel.UUID
	WorkerID kernel.UUID

	StartTime time.Time
	EndTime   *time.Time

	NumEndedOrders *int
	TimeTotal      *time.Duration
	GoodTime       *time.Duration
	BadTime        *time.Duration
	LostTime       *time.Duration
	TotalBugsTime  *time.Duration
}

// RestoreShift reconstructs a shift from persistence.
func RestoreShift(p RestoreShiftParams) (*Shift, error) {
	s := &Shift{
		startTime:      p.StartTime,
		endTime:        p.EndTime,
		numEndedOrders: p.NumEndedOrders,
		timeTotal:      p.TimeTotal,
		goodTime:       p.GoodTime,
		badTime:        p.BadTime,
		lostTime:       p.LostTime,
		totalBugsTime:  p.TotalBugsTime,
		isConstructed:  true,
	}

	if err := errors.Join(
		s.setID(p.ID),
		s.setWorkerID(p.WorkerID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Shift instance was properly constructed.
func (s *Shift) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShiftIsNotConstructed
	}
	return nil
}

// ID returns the shift's unique identifier.
func (s *Shift) ID() kernel.UUID {
	return s.id
}

// WorkerID returns the worker who owns the shift.
func (s *Shift) WorkerID() kernel.UUID {
	return s.workerID
}

// StartTime returns when the shift was opened.
func (s *Shift) StartTime() time.Time {
	return s.startTime
}

// EndTime returns when the shift was closed, nil while open.
func (s *Shift) EndTime() *time.Time {
	return s.endTime
}

// NumEndedOrders returns the count of cleanly finished orders, nil until computed.
func (s *Shift) NumEndedOrders() *int {
	return s.numEndedOrders
}

// TimeTotal returns the shift duration, nil until computed.
func (s *Shift) TimeTotal() *time.Duration {
	return s.timeTotal
}

// GoodTime returns the machine-productive time, nil until computed.
func (s *Shift) GoodTime() *time.Duration {
	return s.goodTime
}

// BadTime returns the manual-handling overhead time, nil until computed.
func (s *Shift) BadTime() *time.Duration {
	return s.badTime
}

// LostTime returns the unaccounted time, nil until computed.
func (s *Shift) LostTime() *time.Duration {
	return s.lostTime
}

// TotalBugsTime returns the summed breakage time, nil until computed.
func (s *Shift) TotalBugsTime() *time.Duration {
	return s.totalBugsTime
}

// IsEnded reports whether the shift has been closed.
func (s *Shift) IsEnded() bool {
	return s.endTime != nil
}

// Close stamps the shift's end time. Closing an already-closed shift is a
// resource conflict: the closing pipeline must be triggered at most once.
func (s *Shift) Close(at time.Time) error {
	if s.endTime != nil {
		return errs.NewResourceConflictErrorWithCause("shift", s.id.String(),
			errors.New("shift is already closed"))
	}

	endTime := at
	s.endTime = &endTime
	return nil
}

// RecordEndTime keeps the shift's end time authoritative for pipeline retries:
// it stamps the end time only if it is still unset, so re-running the closing
// chain derives identical totals.
func (s *Shift) RecordEndTime(at time.Time) {
	if s.endTime == nil {
		endTime := at
		s.endTime = &endTime
	}
}

// SetNumEndedOrders overwrites the count of cleanly finished orders.
func (s *Shift) SetNumEndedOrders(n int) {
	s.numEndedOrders = &n
}

// SetTimeTotal overwrites the total shift duration.
func (s *Shift) SetTimeTotal(d time.Duration) {
	s.timeTotal = &d
}

// SetGoodTime overwrites the machine-productive time.
func (s *Shift) SetGoodTime(d time.Duration) {
	s.goodTime = &d
}

// SetBadTime overwrites the manual-handling overhead time.
// Re-deriving always overwrites, never accumulates, so re-running the
// closing chain is idempotent.
func (s *Shift) SetBadTime(d time.Duration) {
	s.badTime = &d
}

// SetLostTime overwrites the unaccounted time.
func (s *Shift) SetLostTime(d time.Duration) {
	s.lostTime = &d
}

// SetTotalBugsTime overwrites the summed breakage time.
func (s *Shift) SetTotalBugsTime(d time.Duration) {
	s.totalBugsTime = &d
}

// AllOrdersEnded reports whether every order of a shift satisfies the ended
// predicate. A shift with no orders counts as all-ended.
func AllOrdersEnded(orders []*order.Order) bool {
	for _, o := range orders {
		if !o.IsEnded() {
			return false
		}
	}
	return true
}

func (s *Shift) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shift) setWorkerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.workerID = id
	return nil
}
