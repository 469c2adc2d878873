package commands

import (
	"errors"
	"strings"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to create a user account.
// Credential format rules live in the user aggregate; the command only
// requires the fields to be present.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new user.
func NewRegisterUserCommand(name, email, password string) (RegisterUserCommand, error) {
	registerCommand := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setName(name),
		registerCommand.setEmail(email),
		registerCommand.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Name returns the display name for the new account.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Email returns the login email for the new account.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the raw password for the new account.
func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c *RegisterUserCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}
