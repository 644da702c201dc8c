package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrResolveReportCommandIsNotConstructed = errors.New(
	"ResolveReportCommand must be created via NewResolveReportCommand constructor",
)

// ResolveReportCommand represents a request to mark a breakage report solved.
type ResolveReportCommand struct { //nolint:recvcheck //using for validation
	reportID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResolveReportCommand creates a command to resolve a report.
func NewResolveReportCommand(reportID kernel.UUID) (ResolveReportCommand, error) {
	cmd := ResolveReportCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setReportID(reportID); err != nil {
		return ResolveReportCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveReportCommand) Validate() error {
	return c.guard.Validate(ErrResolveReportCommandIsNotConstructed)
}

// ReportID returns the report being resolved.
func (c ResolveReportCommand) ReportID() kernel.UUID {
	return c.reportID
}

func (c *ResolveReportCommand) setReportID(reportID kernel.UUID) error {
	if err := reportID.Validate(); err != nil {
		return err
	}

	c.reportID = reportID
	return nil
}
