package commands

import (
	"errors"
	"strings"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var (
	ErrProcessPaymentCommandIsNotConstructed = errors.New(
		"ProcessPaymentCommand must be created via NewProcessPaymentCommand constructor",
	)
	ErrCardTokenIsRequired = errors.New("card token is required")
)

// ProcessPaymentCommand represents a request to capture payment for a
// pending order using a tokenized card.
type ProcessPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	cardToken string

	guard guard.ConstructorGuard
}

// NewProcessPaymentCommand creates a command to capture payment for an order.
// Validates that the order ID is valid and the card token is not blank.
func NewProcessPaymentCommand(orderID kernel.UUID, cardToken string) (ProcessPaymentCommand, error) {
	paymentCommand := ProcessPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setOrderID(orderID),
		paymentCommand.setCardToken(cardToken),
	); err != nil {
		return ProcessPaymentCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessPaymentCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to charge.
func (c ProcessPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CardToken returns the tokenized card reference.
func (c ProcessPaymentCommand) CardToken() string {
	return c.cardToken
}

func (c *ProcessPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ProcessPaymentCommand) setCardToken(cardToken string) error {
	if strings.TrimSpace(cardToken) == "" {
		return ErrCardTokenIsRequired
	}

	c.cardToken = cardToken
	return nil
}
