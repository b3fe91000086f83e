package commands

import (
	"errors"

	"loadflow/internal/core/domain/model/kernel"
	"loadflow/internal/core/domain/model/load"
	"loadflow/internal/pkg/errs"
	"loadflow/internal/pkg/guard"
)

var (
	ErrCreateLoadCommandIsNotConstructed = errors.New(
		"CreateLoadCommand must be created via NewCreateLoadCommand constructor",
	)
)

// CreateLoadCommand represents a request to create a new load with its stop
// batch. The stop set must contain at least one pickup and one delivery;
// waypoints are accepted and carried for routing.
type CreateLoadCommand struct { //nolint:recvcheck //using for validation
	loadID      kernel.UUID
	orgID       kernel.UUID
	stops       []*load.Stop
	rate        kernel.Money
	performedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateLoadCommand creates a command to register a new load.
// Validates identifiers, the rate, and every stop in the batch.
func NewCreateLoadCommand(
	loadID, orgID kernel.UUID, stops []*load.Stop, rate kernel.Money, performedBy kernel.UUID,
) (CreateLoadCommand, error) {
	cmd := CreateLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setOrgID(orgID),
		cmd.setStops(stops),
		cmd.setRate(rate),
		cmd.setPerformedBy(performedBy),
	); err != nil {
		return CreateLoadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLoadCommand) Validate() error {
	return c.guard.Validate(ErrCreateLoadCommandIsNotConstructed)
}

// LoadID returns the identifier for the new load.
func (c CreateLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// OrgID returns the owning organization's identifier.
func (c CreateLoadCommand) OrgID() kernel.UUID {
	return c.orgID
}

// Stops returns the stop batch for the new load.
func (c CreateLoadCommand) Stops() []*load.Stop {
	return c.stops
}

// Rate returns the agreed rate.
func (c CreateLoadCommand) Rate() kernel.Money {
	return c.rate
}

// PerformedBy returns the acting user's identifier for audit.
func (c CreateLoadCommand) PerformedBy() kernel.UUID {
	return c.performedBy
}

func (c *CreateLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}
	c.loadID = loadID
	return nil
}

func (c *CreateLoadCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *CreateLoadCommand) setStops(stops []*load.Stop) error {
	if len(stops) == 0 {
		return errs.NewValueIsRequiredError("stops")
	}
	for _, s := range stops {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	c.stops = stops
	return nil
}

func (c *CreateLoadCommand) setRate(rate kernel.Money) error {
	if err := rate.Validate(); err != nil {
		return err
	}
	c.rate = rate
	return nil
}

func (c *CreateLoadCommand) setPerformedBy(performedBy kernel.UUID) error {
	if err := performedBy.Validate(); err != nil {
		return err
	}
	c.performedBy = performedBy
	return nil
}
