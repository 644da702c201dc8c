// Package report implements the Report aggregate: a worker-filed machine
// breakage incident tied to an order, whose solved duration feeds the order's
// bug time.
package report

import (
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
)

var (
	// ErrReportIsNotConstructed is returned when a Report instance was not
	// created through NewReport or RestoreReport.
	ErrReportIsNotConstructed = errors.New("Report must be created via NewReport or RestoreReport")
)

// Report records one machine breakage incident. The order reference is
// optional: a report can describe a machine problem outside any order.
type Report struct {
	id       kernel.UUID
	workerID kernel.UUID
	orderID  *kernel.UUID

	description string
	url         string

	startTime time.Time
	endTime   *time.Time
	isSolved  bool

	isConstructed bool
}

// NewReport files a new unsolved report.
func NewReport(
	id, workerID kernel.UUID, orderID *kernel.UUID,
	description, url string, startTime time.Time,
) (*Report, error) {
	r := &Report{
		orderID:       orderID,
		url:           url,
		startTime:     startTime,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setWorkerID(workerID),
		r.setDescription(description),
		validateOptionalID(orderID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReport reconstructs a report from persistence.
func RestoreReport(
	id, workerID kernel.UUID, orderID *kernel.UUID,
	description, url string, startTime time.Time,
	endTime *time.Time, isSolved bool,
) (*Report, error) {
	r, err := NewReport(id, workerID, orderID, description, url, startTime)
	if err != nil {
		return nil, err
	}

	r.endTime = endTime
	r.isSolved = isSolved
	return r, nil
}

// Validate ensures the Report instance was properly constructed.
func (r *Report) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReportIsNotConstructed
	}
	return nil
}

// ID returns the report's unique identifier.
func (r *Report) ID() kernel.UUID {
	return r.id
}

// WorkerID returns the worker who filed the report.
func (r *Report) WorkerID() kernel.UUID {
	return r.workerID
}

// OrderID returns the related order, nil when the report is order-less.
func (r *Report) OrderID() *kernel.UUID {
	return r.orderID
}

// Description returns the breakage description.
func (r *Report) Description() string {
	return r.description
}

// URL returns the screen the report was filed from.
func (r *Report) URL() string {
	return r.url
}

// StartTime returns when the report was filed.
func (r *Report) StartTime() time.Time {
	return r.startTime
}

// EndTime returns when the report was solved, nil while open.
func (r *Report) EndTime() *time.Time {
	return r.endTime
}

// IsSolved reports whether the incident has been resolved.
func (r *Report) IsSolved() bool {
	return r.isSolved
}

// Resolve marks the report solved and stamps its end time.
// Resolving an already-solved report is a no-op so resolution can be retried.
func (r *Report) Resolve(at time.Time) {
	if r.isSolved {
		return
	}

	endTime := at
	r.endTime = &endTime
	r.isSolved = true
}

// Duration returns the solved incident's length. The second return value is
// false while the report is still open.
func (r *Report) Duration() (time.Duration, bool) {
	if !r.isSolved || r.endTime == nil {
		return 0, false
	}
	return r.endTime.Sub(r.startTime), true
}

func (r *Report) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Report) setWorkerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.workerID = id
	return nil
}

func (r *Report) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	r.description = description
	return nil
}

func validateOptionalID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	return id.Validate()
}
