package commands

import (
	"errors"
	"strings"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired          = errors.New("order must have at least one item")
	ErrShippingAddressIsRequired = errors.New("shipping address is required")
)

// CreateOrderCommand represents a request to create a new customer order.
// Encapsulates the owning user, the order lines, and the delivery address.
//
// Example:
//
//	item, _ := order.NewItem(productID, "Keyboard", 2, price)
//	cmd, err := NewCreateOrderCommand(userID, []order.Item{item}, "221B Baker Street")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID          kernel.UUID
	items           []order.Item
	shippingAddress string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the user ID is valid, at least one valid item is present,
// and the shipping address is not blank.
func NewCreateOrderCommand(userID kernel.UUID, items []order.Item, shippingAddress string) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setUserID(userID),
		orderCommand.setItems(items),
		orderCommand.setShippingAddress(shippingAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the identifier of the user placing the order.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// ShippingAddress returns the delivery destination.
func (c CreateOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(shippingAddress string) error {
	if strings.TrimSpace(shippingAddress) == "" {
		return ErrShippingAddressIsRequired
	}

	c.shippingAddress = shippingAddress
	return nil
}
