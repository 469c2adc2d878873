package commands

import (
	"errors"
	"strings"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrRequestPasswordResetCommandIsNotConstructed = errors.New(
	"RequestPasswordResetCommand must be created via NewRequestPasswordResetCommand constructor",
)

// RequestPasswordResetCommand represents a request to send a password reset
// token. It carries only the email, since the caller may not know whether an
// account exists for it.
type RequestPasswordResetCommand struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

// NewRequestPasswordResetCommand creates a command to request a password reset.
func NewRequestPasswordResetCommand(email string) (RequestPasswordResetCommand, error) {
	resetCommand := RequestPasswordResetCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := resetCommand.setEmail(email); err != nil {
		return RequestPasswordResetCommand{}, err
	}

	return resetCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestPasswordResetCommand) Validate() error {
	return c.guard.Validate(ErrRequestPasswordResetCommandIsNotConstructed)
}

// Email returns the address the reset token should be sent to.
func (c RequestPasswordResetCommand) Email() string {
	return c.email
}

func (c *RequestPasswordResetCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}
