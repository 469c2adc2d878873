package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrDeactivateUserCommandIsNotConstructed = errors.New(
	"DeactivateUserCommand must be created via NewDeactivateUserCommand constructor",
)

// DeactivateUserCommand represents a request to disable a user account.
// Deactivation is idempotent at the aggregate level, so the command only
// identifies the user.
type DeactivateUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateUserCommand creates a command to deactivate a user.
func NewDeactivateUserCommand(userID kernel.UUID) (DeactivateUserCommand, error) {
	deactivateCommand := DeactivateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deactivateCommand.setUserID(userID); err != nil {
		return DeactivateUserCommand{}, err
	}

	return deactivateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeactivateUserCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateUserCommandIsNotConstructed)
}

// UserID returns the identifier of the user to deactivate.
func (c DeactivateUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *DeactivateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
