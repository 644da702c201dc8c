// Package worker holds the worker profile and the position reference data
// used by the lost-time formula.
package worker

import (
	"errors"
	"fmt"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
)

var (
	// ErrWorkerIsNotConstructed is returned when a Worker instance was not
	// created through NewWorker.
	ErrWorkerIsNotConstructed = errors.New("Worker must be created via NewWorker")
)

// Worker is a factory-floor worker profile. Authentication is handled by an
// external collaborator; the core only needs a stable identity and the
// position name for chill-time lookup.
type Worker struct {
	id           kernel.UUID
	name         string
	positionName string

	isConstructed bool
}

// NewWorker creates a worker profile.
func NewWorker(id kernel.UUID, name, positionName string) (*Worker, error) {
	w := &Worker{isConstructed: true}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setPositionName(positionName),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// Validate ensures the Worker instance was properly constructed.
func (w *Worker) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkerIsNotConstructed
	}
	return nil
}

// ID returns the worker's unique identifier.
func (w *Worker) ID() kernel.UUID {
	return w.id
}

// Name returns the worker's display name.
func (w *Worker) Name() string {
	return w.name
}

// PositionName returns the worker's position, the key into the chill-time table.
func (w *Worker) PositionName() string {
	return w.positionName
}

func (w *Worker) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Worker) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	w.name = name
	return nil
}

func (w *Worker) setPositionName(positionName string) error {
	if positionName == "" {
		return errs.NewValueIsRequiredError("positionName")
	}
	w.positionName = positionName
	return nil
}

// Position is reference data: the fixed rest allowance (chill time) granted
// to a role, subtracted in the lost-time calculation.
type Position struct {
	name      string
	chillTime time.Duration
}

// NewPosition creates a position entry with its chill-time allowance.
func NewPosition(name string, chillTime time.Duration) (Position, error) {
	if name == "" {
		return Position{}, errs.NewValueIsRequiredError("name")
	}
	if chillTime < 0 {
		return Position{}, errs.NewValueIsInvalidErrorWithCause("chillTime",
			fmt.Errorf("%s is negative", chillTime))
	}

	return Position{name: name, chillTime: chillTime}, nil
}

// Name returns the position name.
func (p Position) Name() string {
	return p.name
}

// ChillTime returns the rest allowance for the position.
func (p Position) ChillTime() time.Duration {
	return p.chillTime
}
