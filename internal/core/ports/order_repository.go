package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The store is the single source of truth: every lifecycle mutation is
// read-modify-persist through this interface.
type OrderRepository interface {
	// Save persists an order aggregate. For an order without an identifier
	// it inserts a new row and assigns the identifier on the aggregate;
	// otherwise it updates the existing row.
	Save(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an object-not-found error when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindByUserID retrieves all orders belonging to the given user,
	// newest first.
	FindByUserID(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)

	// FindByStatus retrieves all orders currently in the given status.
	FindByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// Delete removes an order by its unique identifier.
	Delete(ctx context.Context, id kernel.UUID) error

	// Count returns the total number of stored orders.
	Count(ctx context.Context) (int64, error)
}
