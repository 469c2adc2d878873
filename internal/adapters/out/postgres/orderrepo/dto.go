// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Order lines live in a child table and are written once at creation time;
// only the order row itself changes on lifecycle transitions.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;index"`
	Items           []OrderItemDTO
	TotalAmount     decimal.Decimal `gorm:"type:numeric"`
	Status          int             `gorm:"index"`
	ShippingAddress string
	PaymentID       *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a single order line row.
type OrderItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid"`
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:          uuid.New(),
			OrderID:     aggregate.ID().Bytes(),
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		UserID:          aggregate.UserID().Bytes(),
		Items:           items,
		TotalAmount:     aggregate.TotalAmount().Decimal(),
		Status:          int(aggregate.Status()),
		ShippingAddress: aggregate.ShippingAddress(),
		PaymentID:       aggregate.PaymentID(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and payment reference
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		unitPrice, itemErr := kernel.MoneyFromDecimal(itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(productID, itemDTO.ProductName, itemDTO.Quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	totalAmount, err := kernel.MoneyFromDecimal(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		userID,
		items,
		totalAmount,
		order.Status(dto.Status),
		dto.ShippingAddress,
		dto.PaymentID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
