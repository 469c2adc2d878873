package commands_test

import (
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcessPaymentCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	cmd, err := commands.NewProcessPaymentCommand(orderID, "tok_visa")
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, "tok_visa", cmd.CardToken())
}

func TestNewProcessPaymentCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewProcessPaymentCommand(kernel.UUID{}, "tok_visa")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewProcessPaymentCommand_BlankCardToken(t *testing.T) {
	_, err := commands.NewProcessPaymentCommand(kernel.NewUUID(), "  ")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCardTokenIsRequired)
}
