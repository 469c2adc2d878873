package commands

import (
	"context"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Verifies the owning user exists and is active, computes the order total
// from the items, and persists the new order in Pending status.
//
// Order creation has no side effects on the payment or notification ports.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory spanning order and user repositories.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Validation ordering: user existence, then user state, then order
// construction. Returns the persisted order with its store-assigned ID.
// Uses a transaction to ensure the order is properly persisted or rolled
// back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	if !owner.IsActive() {
		return nil, errs.NewInvalidStateError("user", "inactive", "cannot place orders")
	}

	newOrder, err := order.NewOrder(cmd.UserID(), cmd.Items(), cmd.ShippingAddress())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Save(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
