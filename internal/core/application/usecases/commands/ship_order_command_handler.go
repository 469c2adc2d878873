package commands

import (
	"context"
	"errors"
	"log/slog"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/user"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"
)

// ShipOrderCommandHandler hands a paid order over to the carrier.
// Shipping requires a Confirmed or Processing order; there is no state skip.
//
// After the transition is committed the handler makes a single best-effort
// shipping-notice attempt carrying the tracking number. Notification failures
// are logged and swallowed.
type ShipOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.NotificationSender
	logger     *slog.Logger
}

// NewShipOrderCommandHandler creates a handler for order shipping.
func NewShipOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.NotificationSender,
	logger *slog.Logger,
) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "ship_order_handler"),
	}
}

// Handle processes the shipping command and returns the shipped order.
func (h *ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) (*order.Order, error) {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Ship(); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Save(ctx, o); err != nil {
		return nil, err
	}

	owner, lookupErr := uow.UserRepository().Get(ctx, o.UserID())

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifyShipped(ctx, owner, lookupErr, o, cmd.TrackingNumber())

	return o, nil
}

// notifyShipped makes the single fire-and-forget notification attempt.
func (h *ShipOrderCommandHandler) notifyShipped(
	ctx context.Context,
	owner *user.User,
	lookupErr error,
	o *order.Order,
	trackingNumber string,
) {
	if lookupErr != nil {
		if !errors.Is(lookupErr, errs.ErrObjectNotFound) {
			h.logger.WarnContext(ctx, "Skipping shipping notification",
				"order_id", o.ID().String(), "error", lookupErr)
		}
		return
	}

	if err := h.notifier.SendShippingNotice(ctx, owner.Email(), o.ID(), trackingNumber); err != nil {
		h.logger.WarnContext(ctx, "Shipping notification failed",
			"order_id", o.ID().String(), "error", err)
	}
}
