package queries

import (
	"context"

	"commerce/internal/core/ports"
)

// CalculateDiscountedTotalQueryHandler prices an order with a percentage
// discount. Unlike the other query handlers it loads the full aggregate
// through the repository port, because the discount arithmetic lives on the
// order itself.
type CalculateDiscountedTotalQueryHandler struct {
	orders ports.OrderRepository
}

// NewCalculateDiscountedTotalQueryHandler creates a handler for discount
// calculations.
func NewCalculateDiscountedTotalQueryHandler(orders ports.OrderRepository) CalculateDiscountedTotalQueryHandler {
	return CalculateDiscountedTotalQueryHandler{orders: orders}
}

// Handle computes the discounted total for the order.
// Returns an object-not-found error when the order does not exist.
func (h CalculateDiscountedTotalQueryHandler) Handle(
	ctx context.Context,
	query CalculateDiscountedTotalQuery,
) (CalculateDiscountedTotalQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CalculateDiscountedTotalQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return CalculateDiscountedTotalQueryResponse{}, err
	}

	discounted, err := o.DiscountedTotal(query.Percent())
	if err != nil {
		return CalculateDiscountedTotalQueryResponse{}, err
	}

	return CalculateDiscountedTotalQueryResponse{
		OrderID:         o.ID(),
		Percent:         query.Percent(),
		OriginalTotal:   o.TotalAmount().Decimal(),
		DiscountedTotal: discounted.Decimal(),
	}, nil
}
