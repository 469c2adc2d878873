package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/user"
	"commerce/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Shared testify doubles for the command handler tests. Handlers in this
// package differ only in which slice of the ports they touch, so the mocks
// live in one place instead of being redeclared per test file.

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByUserID(ctx context.Context, userID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Save(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindActive(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUserUoW struct{ mock.Mock }

func (m *MockUserUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) Charge(
	ctx context.Context, amount kernel.Money, currency, cardToken string,
) (ports.PaymentResult, error) {
	args := m.Called(ctx, amount, currency, cardToken)
	return args.Get(0).(ports.PaymentResult), args.Error(1)
}

func (m *MockPaymentGateway) Refund(
	ctx context.Context, transactionID string, amount kernel.Money,
) (ports.PaymentResult, error) {
	args := m.Called(ctx, transactionID, amount)
	return args.Get(0).(ports.PaymentResult), args.Error(1)
}

func (m *MockPaymentGateway) Verify(ctx context.Context, transactionID string) (bool, error) {
	args := m.Called(ctx, transactionID)
	return args.Bool(0), args.Error(1)
}

type MockNotificationSender struct{ mock.Mock }

func (m *MockNotificationSender) SendOrderConfirmation(
	ctx context.Context, email string, orderID kernel.UUID, amount kernel.Money,
) error {
	args := m.Called(ctx, email, orderID, amount)
	return args.Error(0)
}

func (m *MockNotificationSender) SendShippingNotice(
	ctx context.Context, email string, orderID kernel.UUID, trackingNumber string,
) error {
	args := m.Called(ctx, email, orderID, trackingNumber)
	return args.Error(0)
}

func (m *MockNotificationSender) SendWelcome(ctx context.Context, email, name string) error {
	args := m.Called(ctx, email, name)
	return args.Error(0)
}

func (m *MockNotificationSender) SendPasswordReset(ctx context.Context, email, token string) error {
	args := m.Called(ctx, email, token)
	return args.Error(0)
}

// Fixtures shared across the handler tests.

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func validItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "wireless mouse", 2, mustMoney(t, "12.50"))
	require.NoError(t, err)
	return []order.Item{item}
}

func activeUser(t *testing.T) *user.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := user.RestoreUser(kernel.NewUUID(), "Alice", "alice@example.com", "s3cret1", true, now, now)
	require.NoError(t, err)
	return u
}

func inactiveUser(t *testing.T) *user.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := user.RestoreUser(kernel.NewUUID(), "Bob", "bob@example.com", "s3cret1", false, now, now)
	require.NoError(t, err)
	return u
}

func orderInStatus(t *testing.T, status order.Status, paymentID *string) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), validItems(t), mustMoney(t, "25"),
		status, "1 Main St", paymentID, now, now,
	)
	require.NoError(t, err)
	return o
}

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	return orderInStatus(t, order.Pending, nil)
}

func confirmedOrder(t *testing.T) *order.Order {
	t.Helper()
	paymentID := "txn-100"
	return orderInStatus(t, order.Confirmed, &paymentID)
}
