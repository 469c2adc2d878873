package commands_test

import (
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	userID := kernel.NewUUID()
	items := validItems(t)
	cmd, err := commands.NewCreateOrderCommand(userID, items, "1 Main St")
	require.NoError(t, err)
	assert.Equal(t, userID, cmd.UserID())
	assert.Equal(t, items, cmd.Items())
	assert.Equal(t, "1 Main St", cmd.ShippingAddress())
}

func TestNewCreateOrderCommand_InvalidUserID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, validItems(t), "1 Main St")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), nil, "1 Main St")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemsAreRequired)
}

func TestNewCreateOrderCommand_InvalidItem(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), []order.Item{{}}, "1 Main St")
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrItemIsNotConstructed)
}

func TestNewCreateOrderCommand_BlankShippingAddress(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), validItems(t), "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrShippingAddressIsRequired)
}
