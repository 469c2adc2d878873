package kernel

import (
	"fmt"

	"commerce/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not properly initialized through one of the constructor functions.
// This error is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is a value object that identifies every aggregate and entity in the
// system: users, orders, and the products referenced by order lines all use
// it. It wraps the github.com/google/uuid implementation to keep the domain
// decoupled from the library type and to guarantee immutability.
//
// The zero value of UUID is invalid and must be constructed using one of the
// provided factory functions: NewUUID, UUIDFromString, or UUIDFromBytes.
//
// UUID is immutable and thread-safe, making it suitable for concurrent use.
//
// Example usage:
//
//	// Identifiers are normally assigned by the store on first save
//	userID := kernel.NewUUID()
//
//	// Parse an order ID arriving in an API request
//	orderID, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle error
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
// The repositories use it to assign identity to a user or order on its first
// save; it is also handy for product IDs in tests and fixtures.
//
// Example:
//
//	productID := kernel.NewUUID()
//	item, err := order.NewItem(productID, "wireless mouse", 2, price)
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation.
// It accepts standard UUID formats including:
//   - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"
//   - "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//
// Returns an error if the string is not a valid UUID format.
// This is the entry point for identifiers arriving over the API, such as
// the order ID in a payment or cancellation request.
//
// Example:
//
//	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a byte slice.
// The byte slice must be exactly 16 bytes long.
// Returns an error if the byte slice is not valid for UUID construction.
//
// The read models use it to rebuild identifiers from rows scanned out of
// PostgreSQL, where IDs are stored in the driver's binary form.
//
// Example:
//
//	var id uuid.UUID
//	// ... rows.Scan(&id, ...)
//	orderID, err := kernel.UUIDFromBytes(id[:])
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the standard string representation of the UUID.
// The format is "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" where x is a hexadecimal digit.
// For a zero value UUID, this returns "00000000-0000-0000-0000-000000000000".
//
// This method is commonly used for:
//   - API responses and notification payloads
//   - Logging and debugging
//   - Storage as text in databases
//
// Example:
//
//	logger.InfoContext(ctx, "Order cancelled", "orderID", o.ID().String())
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying UUID value.
// Note: This returns the internal uuid.UUID type, not a byte slice.
// For a byte slice representation, use id.Bytes()[:].
//
// The gorm DTO mappers use it when converting aggregates to rows; direct
// access elsewhere should be minimized to maintain encapsulation.
//
// Example:
//
//	dto := UserDTO{ID: u.ID().Bytes(), Email: u.Email()}
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual compares two UUIDs for equality.
// Returns true if both UUIDs represent the same value, false otherwise.
//
// Example:
//
//	if !o.UserID().IsEqual(caller) {
//	    // order belongs to someone else
//	}
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate checks if the UUID is properly constructed.
// Returns ErrUUIDIsNotConstructed if the UUID is a zero value (nil UUID).
// A valid UUID is any UUID that was created through one of the constructor functions.
//
// Commands call it on every identifier field so a zero-value ID is rejected
// before any port is touched.
//
// Example:
//
//	func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
//	    if err := orderID.Validate(); err != nil {
//	        return err
//	    }
//	    c.orderID = orderID
//	    return nil
//	}
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
