package order

import (
	"errors"
	"fmt"
	"strings"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a value object representing a single order line: a product, the
// quantity ordered, and the unit price at the time the order was placed.
//
// Item follows these invariants:
//   - Product identifier must be valid
//   - Product name must not be blank
//   - Quantity must be positive (greater than 0)
//   - Unit price must be a valid non-negative amount
//
// Item is immutable once attached to an order: there is no partial item
// mutation API.
type Item struct {
	// productID identifies the ordered product.
	productID kernel.UUID

	// productName is the display name captured at order time.
	productName string

	// quantity is the number of units ordered (must be positive).
	quantity int

	// unitPrice is the price of a single unit (non-negative).
	unitPrice kernel.Money

	// isConstructed ensures the item was created via NewItem.
	isConstructed bool
}

// NewItem creates a new order line with validation. This is the only way to
// create a valid Item.
//
// Parameters:
//   - productID: identifier of the ordered product (must be valid UUID)
//   - productName: display name (must not be blank)
//   - quantity: units ordered (must be positive)
//   - unitPrice: price of one unit (must be valid, non-negative)
//
// Returns the created item, or a validation error if any parameter is invalid.
func NewItem(productID kernel.UUID, productName string, quantity int, unitPrice kernel.Money) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setProductID(productID),
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the identifier of the ordered product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product display name captured at order time.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns unitPrice × quantity.
func (i Item) Subtotal() (kernel.Money, error) {
	if err := i.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return i.unitPrice.MulInt(i.quantity)
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setProductName(productName string) error {
	if strings.TrimSpace(productName) == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
