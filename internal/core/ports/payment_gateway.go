package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
)

// PaymentResult is the gateway's answer to a charge or refund request.
// A declined operation is a successful call with Success=false; Message then
// carries the gateway's own description of the decline.
type PaymentResult struct {
	Success       bool
	TransactionID string
	Message       string
}

// PaymentGateway is the port to the external payment processor.
//
// The core issues at most one Charge call and at most one Refund call per
// lifecycle transition; retry policy, if any, belongs to the implementation
// behind this interface.
type PaymentGateway interface {
	// Charge captures a payment for the given amount.
	// The currency is a deployment-time policy of the caller, not derived
	// from the order.
	Charge(ctx context.Context, amount kernel.Money, currency, cardToken string) (PaymentResult, error)

	// Refund returns a previously captured payment.
	Refund(ctx context.Context, transactionID string, amount kernel.Money) (PaymentResult, error)

	// Verify reports whether the given transaction is confirmed on the
	// gateway side.
	Verify(ctx context.Context, transactionID string) (bool, error)
}
