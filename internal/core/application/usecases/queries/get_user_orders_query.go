// Package queries contains read-only operations over the order and user data.
// Query handlers bypass the domain repositories and read the database
// directly, returning flat response structures for the transport layer.
package queries

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery retrieves the order history of one user, newest first.
//
// Example:
//
//	query, err := NewGetUserOrdersQuery(userID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetUserOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetUserOrdersQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query for a user's order history.
func NewGetUserOrdersQuery(userID kernel.UUID) (GetUserOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}

	return GetUserOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// UserID returns the identifier of the user whose orders are requested.
func (q GetUserOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// GetUserOrdersQueryResponse represents one order in a user's history.
// ItemCount summarizes the lines without loading them.
type GetUserOrdersQueryResponse struct {
	ID              kernel.UUID
	Status          string
	TotalAmount     decimal.Decimal
	ShippingAddress string
	PaymentID       *string
	ItemCount       int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
