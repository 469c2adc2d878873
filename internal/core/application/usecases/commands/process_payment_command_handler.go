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

// ProcessPaymentCommandHandler captures payment for a pending order.
//
// Flow: load the order, verify it is pending payment, charge the gateway,
// record the transaction reference, transition to Confirmed, and commit.
// A declined or failed charge leaves the order untouched and unpersisted.
//
// After the transition is committed the handler makes a single best-effort
// confirmation-notification attempt to the order's user. Notification
// failures are logged and swallowed: they never abort the already-committed
// transition.
//
// The charge currency is a deployment-time policy of the service, not
// caller-supplied.
type ProcessPaymentCommandHandler struct {
	uowFactory UoWFactory
	gateway    ports.PaymentGateway
	notifier   ports.NotificationSender
	currency   string
	logger     *slog.Logger
}

// NewProcessPaymentCommandHandler creates a handler for payment capture.
func NewProcessPaymentCommandHandler(
	uowFactory UoWFactory,
	gateway ports.PaymentGateway,
	notifier ports.NotificationSender,
	currency string,
	logger *slog.Logger,
) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		notifier:   notifier,
		currency:   currency,
		logger:     logger.With("component", "process_payment_handler"),
	}
}

// Handle processes the payment command and returns the confirmed order.
// Validation ordering: order existence, then order state, then the gateway
// call. At most one charge call is issued; there are no internal retries.
func (h *ProcessPaymentCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentCommand) (*order.Order, error) {
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

	if o.Status() != order.Pending {
		return nil, errs.NewInvalidStateError("order", o.Status().String(), "is not pending payment")
	}

	result, err := h.gateway.Charge(ctx, o.TotalAmount(), h.currency, cmd.CardToken())
	if err != nil {
		return nil, errs.NewPaymentFailedError(err.Error())
	}
	if !result.Success {
		return nil, errs.NewPaymentFailedError(result.Message)
	}

	if err = o.Confirm(result.TransactionID); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Save(ctx, o); err != nil {
		return nil, err
	}

	// The user lookup for the notification happens inside the transaction;
	// the send itself waits until the transition is committed.
	owner, lookupErr := uow.UserRepository().Get(ctx, o.UserID())

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifyConfirmation(ctx, owner, lookupErr, o)

	return o, nil
}

// notifyConfirmation makes the single fire-and-forget notification attempt.
// Failures are logged, never propagated.
func (h *ProcessPaymentCommandHandler) notifyConfirmation(
	ctx context.Context,
	owner *user.User,
	lookupErr error,
	o *order.Order,
) {
	if lookupErr != nil {
		if !errors.Is(lookupErr, errs.ErrObjectNotFound) {
			h.logger.WarnContext(ctx, "Skipping order confirmation notification",
				"order_id", o.ID().String(), "error", lookupErr)
		}
		return
	}

	if err := h.notifier.SendOrderConfirmation(ctx, owner.Email(), o.ID(), o.TotalAmount()); err != nil {
		h.logger.WarnContext(ctx, "Order confirmation notification failed",
			"order_id", o.ID().String(), "error", err)
	}
}
