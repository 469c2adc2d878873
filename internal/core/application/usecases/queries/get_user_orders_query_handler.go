package queries

import (
	"context"
	"database/sql"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler retrieves a user's order history from the database.
// The user must exist; an empty history for an existing user is a valid,
// empty result.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the user's orders, newest first.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]GetUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := userExists(ctx, h.db, query.UserID()); err != nil {
		return nil, err
	}

	orders := make([]GetUserOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			total_amount,
			shipping_address,
			payment_id,
			(SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = orders.id) AS item_count,
			created_at,
			updated_at
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          uuid.UUID
			status      int
			totalAmount decimal.Decimal
			address     string
			paymentID   sql.NullString
			itemCount   int
			createdAt   time.Time
			updatedAt   time.Time
		)

		if err = rows.Scan(
			&id, &status, &totalAmount, &address, &paymentID, &itemCount, &createdAt, &updatedAt,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp := GetUserOrdersQueryResponse{
			ID:              orderID,
			Status:          order.Status(status).String(),
			TotalAmount:     totalAmount,
			ShippingAddress: address,
			ItemCount:       itemCount,
			CreatedAt:       createdAt,
			UpdatedAt:       updatedAt,
		}
		if paymentID.Valid {
			resp.PaymentID = &paymentID.String
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// userExists verifies that the user row is present before reading the order
// history, so an unknown user is reported as not-found rather than as an
// empty history.
func userExists(ctx context.Context, db *gorm.DB, userID kernel.UUID) error {
	var count int64
	err := db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM users WHERE id = ?`, userID.Bytes(),
	).Scan(&count).Error
	if err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("user", userID.String())
	}

	return nil
}
