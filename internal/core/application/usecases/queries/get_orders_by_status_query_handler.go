package queries

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler lists orders in one lifecycle status.
// Results are sorted oldest first so the stale-order sweep processes the
// longest-waiting orders before newer ones.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for status listings.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query and returns matching orders, oldest first.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]GetOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			total_amount,
			created_at
		FROM orders
		WHERE status = ?
		ORDER BY created_at
	`, int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          uuid.UUID
			userID      uuid.UUID
			totalAmount decimal.Decimal
			createdAt   time.Time
		)

		if err = rows.Scan(&id, &userID, &totalAmount, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		ownerID, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetOrdersByStatusQueryResponse{
			ID:          orderID,
			UserID:      ownerID,
			TotalAmount: totalAmount,
			CreatedAt:   createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
