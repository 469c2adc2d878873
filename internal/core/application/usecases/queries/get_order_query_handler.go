package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with its order lines from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order detail.
// Returns an object-not-found error when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var row struct {
		ID              uuid.UUID
		UserID          uuid.UUID
		Status          int
		TotalAmount     decimal.Decimal
		ShippingAddress string
		PaymentID       sql.NullString
		CreatedAt       time.Time
		UpdatedAt       time.Time
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			status,
			total_amount,
			shipping_address,
			payment_id,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(row.UserID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{
		ID:              orderID,
		UserID:          userID,
		Status:          order.Status(row.Status).String(),
		TotalAmount:     row.TotalAmount,
		ShippingAddress: row.ShippingAddress,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
	if row.PaymentID.Valid {
		resp.PaymentID = &row.PaymentID.String
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(
	ctx context.Context, orderID kernel.UUID,
) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			product_name,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			productID uuid.UUID
			name      string
			quantity  int
			unitPrice decimal.Decimal
		)

		if err = rows.Scan(&productID, &name, &quantity, &unitPrice); err != nil {
			return nil, err
		}

		pid, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		items = append(items, OrderItemResponse{
			ProductID:   pid,
			ProductName: name,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
