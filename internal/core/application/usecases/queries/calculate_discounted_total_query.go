package queries

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	minDiscountPercent = 0
	maxDiscountPercent = 100
)

var ErrCalculateDiscountedTotalQueryIsNotConstructed = errors.New(
	"CalculateDiscountedTotalQuery must be created via NewCalculateDiscountedTotalQuery constructor",
)

// CalculateDiscountedTotalQuery computes what an order would cost with a
// percentage discount applied. Pure calculation; the stored order is not
// modified.
type CalculateDiscountedTotalQuery struct {
	orderID kernel.UUID
	percent int

	guard guard.ConstructorGuard
}

// NewCalculateDiscountedTotalQuery creates a discount calculation query.
// The percentage must lie within [0, 100].
func NewCalculateDiscountedTotalQuery(orderID kernel.UUID, percent int) (CalculateDiscountedTotalQuery, error) {
	if err := orderID.Validate(); err != nil {
		return CalculateDiscountedTotalQuery{}, err
	}

	if percent < minDiscountPercent || percent > maxDiscountPercent {
		return CalculateDiscountedTotalQuery{}, errs.NewValueIsOutOfRangeError(
			"percent", percent, minDiscountPercent, maxDiscountPercent)
	}

	return CalculateDiscountedTotalQuery{
		orderID: orderID,
		percent: percent,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CalculateDiscountedTotalQuery) Validate() error {
	return q.guard.Validate(ErrCalculateDiscountedTotalQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to price.
func (q CalculateDiscountedTotalQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Percent returns the discount percentage.
func (q CalculateDiscountedTotalQuery) Percent() int {
	return q.percent
}

// CalculateDiscountedTotalQueryResponse carries the original and discounted
// totals for one order.
type CalculateDiscountedTotalQueryResponse struct {
	OrderID         kernel.UUID
	Percent         int
	OriginalTotal   decimal.Decimal
	DiscountedTotal decimal.Decimal
}
