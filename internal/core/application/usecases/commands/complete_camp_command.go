package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrCompleteCampCommandIsNotConstructed = errors.New(
	"CompleteCampCommand must be created via NewCompleteCampCommand constructor",
)

// CompleteCampCommand represents an operator closing one of their
// organization's collection drives. Completion is permanent.
type CompleteCampCommand struct { //nolint:recvcheck //using for validation
	campID     kernel.UUID
	operatorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteCampCommand creates a command closing a camp.
func NewCompleteCampCommand(campID kernel.UUID, operatorID kernel.UUID) (CompleteCampCommand, error) {
	command := CompleteCampCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCampID(campID),
		command.setOperatorID(operatorID),
	); err != nil {
		return CompleteCampCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteCampCommand) Validate() error {
	return c.guard.Validate(ErrCompleteCampCommandIsNotConstructed)
}

// CampID returns the camp being closed.
func (c CompleteCampCommand) CampID() kernel.UUID {
	return c.campID
}

// OperatorID returns the closing operator.
func (c CompleteCampCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

func (c *CompleteCampCommand) setCampID(campID kernel.UUID) error {
	if err := campID.Validate(); err != nil {
		return err
	}

	c.campID = campID
	return nil
}

func (c *CompleteCampCommand) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}

	c.operatorID = operatorID
	return nil
}
