package commands

import (
	"errors"
	"strings"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var (
	ErrShipOrderCommandIsNotConstructed = errors.New(
		"ShipOrderCommand must be created via NewShipOrderCommand constructor",
	)
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")
)

// ShipOrderCommand represents a request to hand an order over to the carrier.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a command to ship an order.
// Validates that the order ID is valid and the tracking number is not blank.
func NewShipOrderCommand(orderID kernel.UUID, trackingNumber string) (ShipOrderCommand, error) {
	shipCommand := ShipOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipCommand.setOrderID(orderID),
		shipCommand.setTrackingNumber(trackingNumber),
	); err != nil {
		return ShipOrderCommand{}, err
	}

	return shipCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to ship.
func (c ShipOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TrackingNumber returns the carrier tracking number.
func (c ShipOrderCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c *ShipOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ShipOrderCommand) setTrackingNumber(trackingNumber string) error {
	if strings.TrimSpace(trackingNumber) == "" {
		return ErrTrackingNumberIsRequired
	}

	c.trackingNumber = trackingNumber
	return nil
}
