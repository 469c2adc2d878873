package http

import (
	"time"

	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
)

// Error is the common error response body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem is a line item in an order creation request.
type NewOrderItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

// NewOrderRequest is the body for creating an order.
type NewOrderRequest struct {
	UserID          string         `json:"user_id"`
	Items           []NewOrderItem `json:"items"`
	ShippingAddress string         `json:"shipping_address"`
}

// PaymentRequest is the body for processing an order payment.
type PaymentRequest struct {
	CardToken string `json:"card_token"`
}

// CancelOrderRequest is the body for cancelling an order.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// ShipOrderRequest is the body for shipping an order.
type ShipOrderRequest struct {
	TrackingNumber string `json:"tracking_number"`
}

// RegisterUserRequest is the body for registering a user.
type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the body for updating a user's profile.
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PasswordResetRequest is the body for requesting a password reset.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// OrderItemResponse is a line item in an order response.
type OrderItemResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Subtotal    string `json:"subtotal"`
}

// OrderResponse is the full order representation.
type OrderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	Status          string              `json:"status"`
	TotalAmount     string              `json:"total_amount"`
	ShippingAddress string              `json:"shipping_address"`
	PaymentID       *string             `json:"payment_id,omitempty"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// UserOrderResponse is an order as listed in a user's order history.
type UserOrderResponse struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"`
	TotalAmount     string    `json:"total_amount"`
	ShippingAddress string    `json:"shipping_address"`
	PaymentID       *string   `json:"payment_id,omitempty"`
	ItemCount       int       `json:"item_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// StatusOrderResponse is an order as listed by status.
type StatusOrderResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	TotalAmount string    `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// DiscountResponse is the result of a discounted total calculation.
type DiscountResponse struct {
	OrderID         string `json:"order_id"`
	Percent         int    `json:"percent"`
	OriginalTotal   string `json:"original_total"`
	DiscountedTotal string `json:"discounted_total"`
}

// UserResponse is the full user representation. The password is never exposed.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func orderToResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ProductID:   item.ProductID().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().String(),
			Subtotal:    item.UnitPrice().Decimal().Mul(decimal.NewFromInt(int64(item.Quantity()))).String(),
		})
	}

	return OrderResponse{
		ID:              o.ID().String(),
		UserID:          o.UserID().String(),
		Status:          o.Status().String(),
		TotalAmount:     o.TotalAmount().String(),
		ShippingAddress: o.ShippingAddress(),
		PaymentID:       o.PaymentID(),
		Items:           items,
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func userToResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID().String(),
		Name:      u.Name(),
		Email:     u.Email(),
		Active:    u.IsActive(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func orderQueryToResponse(res queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(res.Items))
	for _, item := range res.Items {
		items = append(items, OrderItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.String(),
			Subtotal:    item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).String(),
		})
	}

	return OrderResponse{
		ID:              res.ID.String(),
		UserID:          res.UserID.String(),
		Status:          res.Status,
		TotalAmount:     res.TotalAmount.String(),
		ShippingAddress: res.ShippingAddress,
		PaymentID:       res.PaymentID,
		Items:           items,
		CreatedAt:       res.CreatedAt,
		UpdatedAt:       res.UpdatedAt,
	}
}
