package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var (
	ErrFileReportCommandIsNotConstructed = errors.New(
		"FileReportCommand must be created via NewFileReportCommand constructor",
	)
	ErrDescriptionIsRequired = errors.New("description is required")
)

// FileReportCommand represents a request to file a breakage report.
// A report may reference the order that was running when the machine broke;
// floor-level incidents are filed without one.
type FileReportCommand struct { //nolint:recvcheck //using for validation
	reportID    kernel.UUID
	workerID    kernel.UUID
	orderID     *kernel.UUID
	description string
	resumeURL   string

	guard guard.ConstructorGuard
}

// NewFileReportCommand creates a command to file a breakage report.
func NewFileReportCommand(
	reportID, workerID kernel.UUID, orderID *kernel.UUID,
	description, resumeURL string,
) (FileReportCommand, error) {
	cmd := FileReportCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReportID(reportID),
		cmd.setWorkerID(workerID),
		cmd.setOrderID(orderID),
		cmd.setDescription(description),
	); err != nil {
		return FileReportCommand{}, err
	}
	cmd.resumeURL = resumeURL

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FileReportCommand) Validate() error {
	return c.guard.Validate(ErrFileReportCommandIsNotConstructed)
}

// ReportID returns the identifier for the new report.
func (c FileReportCommand) ReportID() kernel.UUID {
	return c.reportID
}

// WorkerID returns the worker filing the report.
func (c FileReportCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// OrderID returns the affected order, or nil for floor-level incidents.
func (c FileReportCommand) OrderID() *kernel.UUID {
	return c.orderID
}

// Description returns what broke.
func (c FileReportCommand) Description() string {
	return c.description
}

// ResumeURL returns where the worker was in the flow when filing.
func (c FileReportCommand) ResumeURL() string {
	return c.resumeURL
}

func (c *FileReportCommand) setReportID(reportID kernel.UUID) error {
	if err := reportID.Validate(); err != nil {
		return err
	}

	c.reportID = reportID
	return nil
}

func (c *FileReportCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}

func (c *FileReportCommand) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *FileReportCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}
