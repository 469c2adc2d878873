package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
)

// NotificationSender is the port to the external notification channel.
//
// All sends are fire-and-forget from the core's point of view: the call is
// made synchronously, but a returned error is logged and swallowed by the
// caller and never aborts an already-applied state transition.
type NotificationSender interface {
	// SendOrderConfirmation notifies the customer that payment for the
	// order was captured.
	SendOrderConfirmation(ctx context.Context, email string, orderID kernel.UUID, amount kernel.Money) error

	// SendShippingNotice notifies the customer that the order left the
	// warehouse, including the carrier tracking number.
	SendShippingNotice(ctx context.Context, email string, orderID kernel.UUID, trackingNumber string) error

	// SendWelcome greets a freshly registered user.
	SendWelcome(ctx context.Context, email, name string) error

	// SendPasswordReset delivers a password reset token to the given address.
	SendPasswordReset(ctx context.Context, email, token string) error
}
