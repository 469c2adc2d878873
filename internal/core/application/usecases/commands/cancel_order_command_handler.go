package commands

import (
	"context"
	"log/slog"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order, refunding a captured payment
// first when one exists.
//
// Cancellation rules:
//   - Shipped and Delivered orders can never be cancelled
//   - If a payment was captured, exactly one refund call is issued;
//     a refund failure aborts the cancellation and leaves the order unchanged
//   - There is no compensating re-attempt: on refund failure the payment
//     stays captured and the order stays un-cancelled
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.PaymentGateway,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		logger:     logger.With("component", "cancel_order_handler"),
	}
}

// Handle processes the cancellation command and returns the cancelled order.
// Validation ordering: order existence, then order state, then the refund.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	if err = o.Status().ValidateCancel(); err != nil {
		return nil, err
	}

	if paymentID := o.PaymentID(); paymentID != nil {
		result, refundErr := h.gateway.Refund(ctx, *paymentID, o.TotalAmount())
		if refundErr != nil {
			return nil, errs.NewRefundFailedError(refundErr.Error())
		}
		if !result.Success {
			return nil, errs.NewRefundFailedError(result.Message)
		}
	}

	if err = o.Cancel(); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Save(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Order cancelled",
		"order_id", o.ID().String(), "reason", cmd.Reason())

	return o, nil
}
