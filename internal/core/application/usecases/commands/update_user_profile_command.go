package commands

import (
	"errors"
	"strings"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrUpdateUserProfileCommandIsNotConstructed = errors.New(
	"UpdateUserProfileCommand must be created via NewUpdateUserProfileCommand constructor",
)

// UpdateUserProfileCommand represents a request to change a user's name and
// email. Both fields are replaced together; format rules are enforced by the
// user aggregate.
type UpdateUserProfileCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	name   string
	email  string

	guard guard.ConstructorGuard
}

// NewUpdateUserProfileCommand creates a command to update a user profile.
func NewUpdateUserProfileCommand(userID kernel.UUID, name, email string) (UpdateUserProfileCommand, error) {
	updateCommand := UpdateUserProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setUserID(userID),
		updateCommand.setName(name),
		updateCommand.setEmail(email),
	); err != nil {
		return UpdateUserProfileCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserProfileCommandIsNotConstructed)
}

// UserID returns the identifier of the user to update.
func (c UpdateUserProfileCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the new display name.
func (c UpdateUserProfileCommand) Name() string {
	return c.name
}

// Email returns the new email address.
func (c UpdateUserProfileCommand) Email() string {
	return c.email
}

func (c *UpdateUserProfileCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *UpdateUserProfileCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateUserProfileCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}
