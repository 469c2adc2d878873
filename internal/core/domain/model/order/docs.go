// Package order provides domain entities and business logic for order management
// in the commerce system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, and lifecycle
//   - Item: A value object for a single order line
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have an owning user, at least one item, and a shipping address
//   - Order status follows a defined workflow:
//     Pending -> Confirmed -> Processing -> Shipped -> Delivered
//   - Orders can be cancelled from Pending, Confirmed, or Processing
//   - Shipped and Delivered orders can never be cancelled
//   - The payment reference is set exactly once, on confirmation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
