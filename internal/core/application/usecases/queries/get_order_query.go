package queries

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its order lines.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse represents the full detail of one order.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	UserID          kernel.UUID
	Status          string
	TotalAmount     decimal.Decimal
	ShippingAddress string
	PaymentID       *string
	Items           []OrderItemResponse
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItemResponse represents one order line in a detail response.
type OrderItemResponse struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}
