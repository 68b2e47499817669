package commands

import (
	"errors"

	"foodbridge/internal/pkg/guard"
)

var ErrReleaseExpiredPickupsCommandIsNotConstructed = errors.New(
	"ReleaseExpiredPickupsCommand must be created via NewReleaseExpiredPickupsCommand constructor",
)

// ReleaseExpiredPickupsCommand triggers the pickup expiry sweep. It carries
// no parameters; the expiry window lives in the handler's configuration.
type ReleaseExpiredPickupsCommand struct {
	guard guard.ConstructorGuard
}

// NewReleaseExpiredPickupsCommand creates a sweep command.
func NewReleaseExpiredPickupsCommand() ReleaseExpiredPickupsCommand {
	return ReleaseExpiredPickupsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ReleaseExpiredPickupsCommand) Validate() error {
	return c.guard.Validate(ErrReleaseExpiredPickupsCommandIsNotConstructed)
}
