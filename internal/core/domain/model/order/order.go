package order

import (
	"errors"
	"strings"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an order
	// that already has a persistent identifier.
	ErrOrderIDAlreadyAssigned = errors.New("order ID is already assigned")

	// ErrPaymentIDAlreadySet is returned when a confirmation attempts to replace
	// an existing payment reference. Once captured, a payment is never substituted.
	ErrPaymentIDAlreadySet = errors.New("payment ID is already set")
)

// Order represents a customer order in the system. It is the aggregate root
// that manages the order lifecycle from creation through payment, shipping
// and delivery, or cancellation.
//
// Order follows these invariants:
//   - Must belong to a valid user
//   - Must contain at least one item
//   - Total amount is always computed from the items at creation
//   - Shipping address must not be blank
//   - Status transitions follow the state machine defined by Status
//   - The payment reference is set exactly once, on confirmation
//   - Every status transition stamps the update time
//
// The identifier is assigned by the store on first persist; a freshly
// constructed order has no ID until then.
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier, zero until assigned by the store
	id kernel.UUID

	// userID is the owning user's identifier, immutable after creation
	userID kernel.UUID

	// items are the order lines, non-empty, insertion order preserved
	items []Item

	// totalAmount is the sum of item subtotals, fixed at creation
	totalAmount kernel.Money

	// status is the current state in the order lifecycle
	status Status

	// shippingAddress is the delivery destination
	shippingAddress string

	// paymentID is the external transaction reference, nil until payment capture
	paymentID *string

	// createdAt is set once at construction
	createdAt time.Time

	// updatedAt is stamped on every status transition
	updatedAt time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid order for a new purchase.
//
// The order starts in Pending status with its total computed as the sum of
// item subtotals. The store assigns the identifier on first persist.
//
// Parameters:
//   - userID: the owning user's identifier (must be valid)
//   - items: the order lines (must be non-empty, each valid)
//   - shippingAddress: delivery destination (must not be blank)
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(userID kernel.UUID, items []Item, shippingAddress string) (*Order, error) {
	now := time.Now()
	order := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setUserID(userID),
		order.setItems(items),
		order.setShippingAddress(shippingAddress),
	); err != nil {
		return nil, err
	}

	total, err := calculateTotal(order.items)
	if err != nil {
		return nil, err
	}
	order.totalAmount = total

	return order, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts the stored identifier, status, total, payment reference and
// timestamps as-is, validating only structural invariants.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	items []Item,
	totalAmount kernel.Money,
	status Status,
	shippingAddress string,
	paymentID *string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		paymentID:     paymentID,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		totalAmount.Validate(),
		order.setUserID(userID),
		order.setItems(items),
		order.setShippingAddress(shippingAddress),
	); err != nil {
		return nil, err
	}

	order.id = id
	order.status = status
	order.totalAmount = totalAmount

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
// The zero UUID is returned for orders that have not been persisted yet.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// IsPersisted reports whether the store has assigned an identifier.
func (o *Order) IsPersisted() bool {
	return o.id.Validate() == nil
}

// AssignID sets the store-assigned identifier. The identifier is assigned
// exactly once, on first persist.
func (o *Order) AssignID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if o.IsPersisted() {
		return ErrOrderIDAlreadyAssigned
	}

	o.id = id
	return nil
}

// UserID returns the owning user's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Items returns the order lines in insertion order.
// The returned slice is a copy; mutating it does not affect the order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the order total computed from the items at creation.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// ShippingAddress returns the delivery destination.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// PaymentID returns the external payment transaction reference.
// Returns nil until payment capture succeeds.
func (o *Order) PaymentID() *string {
	return o.paymentID
}

// CreatedAt returns the construction time of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last status transition.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Confirm records a captured payment and transitions the order to Confirmed.
//
// This method enforces the following business rules:
//   - The order must be in Pending status
//   - The payment reference must not be blank
//   - A payment reference, once set, is never substituted
//
// The transition applies atomically: on any error the order is unchanged.
func (o *Order) Confirm(paymentID string) error {
	if strings.TrimSpace(paymentID) == "" {
		return errs.NewValueIsRequiredError("paymentID")
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	if o.paymentID != nil {
		return ErrPaymentIDAlreadySet
	}

	o.status = newStatus
	o.paymentID = &paymentID
	o.touch()
	return nil
}

// StartProcessing transitions the order to Processing.
// The order must be in Confirmed status.
func (o *Order) StartProcessing() error {
	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Ship transitions the order to Shipped.
// The order must be in Confirmed or Processing status; there is no state skip.
func (o *Order) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Deliver transitions the order to Delivered.
// The order must be in Shipped status. Delivered is a final state.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Cancel transitions the order to Cancelled.
//
// This method enforces the following business rules:
//   - Only Pending, Confirmed, and Processing orders can be cancelled
//   - Shipped and Delivered orders always fail with an invalid-state error
//
// Refund coordination lives in the lifecycle command handler; the aggregate
// only guards the transition itself.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// DiscountedTotal returns the order total reduced by the given percentage.
// This is a pure query: it never mutates the stored total.
// The percent must be within [0, 100].
func (o *Order) DiscountedTotal(percent int) (kernel.Money, error) {
	if err := o.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return o.totalAmount.DiscountPercent(percent)
}

// touch stamps updatedAt. Called as the postcondition of every transition.
func (o *Order) touch() {
	o.updatedAt = time.Now()
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setShippingAddress(shippingAddress string) error {
	if strings.TrimSpace(shippingAddress) == "" {
		return errs.NewValueIsRequiredError("shippingAddress")
	}
	o.shippingAddress = shippingAddress
	return nil
}

func calculateTotal(items []Item) (kernel.Money, error) {
	total := kernel.ZeroMoney()
	for _, item := range items {
		subtotal, err := item.Subtotal()
		if err != nil {
			return kernel.Money{}, err
		}
		total, err = total.Add(subtotal)
		if err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}
