// Package user provides the User aggregate for registration and
// account-state management. Orders reference users by ID; order creation
// requires the owning user to exist and be active.
package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through the NewUser factory method.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	// ErrUserIDAlreadyAssigned is returned when AssignID is called on a user
	// that already has a persistent identifier.
	ErrUserIDAlreadyAssigned = errors.New("user ID is already assigned")
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 6

// User represents a registered customer account.
//
// User follows these invariants:
//   - Name must not be blank
//   - Email must contain "@"
//   - Password must be at least 6 characters
//   - New accounts start active
//
// The identifier is assigned by the store on first persist.
type User struct {
	id        kernel.UUID
	name      string
	email     string
	password  string
	active    bool
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewUser creates a new active user account with validation.
func NewUser(name, email, password string) (*User, error) {
	now := time.Now()
	u := &User{
		active:        true,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setName(name),
		u.setEmail(email),
		u.setPassword(password),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence, accepting the stored
// identifier, active flag and timestamps as-is.
func RestoreUser(
	id kernel.UUID,
	name, email, password string,
	active bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	u := &User{
		active:        active,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		u.setName(name),
		u.setEmail(email),
		u.setPassword(password),
	); err != nil {
		return nil, err
	}

	u.id = id
	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
// The zero UUID is returned for users that have not been persisted yet.
func (u *User) ID() kernel.UUID {
	return u.id
}

// IsPersisted reports whether the store has assigned an identifier.
func (u *User) IsPersisted() bool {
	return u.id.Validate() == nil
}

// AssignID sets the store-assigned identifier, exactly once.
func (u *User) AssignID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if u.IsPersisted() {
		return ErrUserIDAlreadyAssigned
	}

	u.id = id
	return nil
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// Password returns the stored password credential.
func (u *User) Password() string {
	return u.password
}

// IsActive reports whether the account can place orders.
func (u *User) IsActive() bool {
	return u.active
}

// CreatedAt returns the registration time.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns the time of the last account change.
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// Deactivate marks the account inactive. Existing orders are unaffected;
// only future order creation is rejected.
func (u *User) Deactivate() {
	u.active = false
	u.touch()
}

// Activate marks the account active again.
func (u *User) Activate() {
	u.active = true
	u.touch()
}

// ChangeProfile updates the user's name and email with validation.
// Email uniqueness is checked by the profile command handler, not here.
// The change applies atomically: on any error the user is unchanged.
func (u *User) ChangeProfile(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q does not contain @", email))
	}

	u.name = name
	u.email = email
	u.touch()
	return nil
}

func (u *User) touch() {
	u.updatedAt = time.Now()
}

func (u *User) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q does not contain @", email))
	}
	u.email = email
	return nil
}

func (u *User) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"password",
			fmt.Errorf("must be at least %d characters", minPasswordLength),
		)
	}
	u.password = password
	return nil
}
