package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Save persists a user aggregate. For a user without an identifier it
	// inserts a new row and assigns the identifier on the aggregate;
	// otherwise it updates the existing row.
	Save(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	// Returns an object-not-found error when the user does not exist.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// FindByEmail retrieves a user by email address.
	// Returns an object-not-found error when no user has that email.
	FindByEmail(ctx context.Context, email string) (*user.User, error)

	// ExistsByEmail reports whether a user with the given email is registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindActive retrieves all active users.
	FindActive(ctx context.Context) ([]*user.User, error)

	// Count returns the total number of registered users.
	Count(ctx context.Context) (int64, error)
}
