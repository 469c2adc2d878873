package commands_test

import (
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterUserCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewRegisterUserCommand("Alice", "alice@example.com", "s3cret1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", cmd.Name())
	assert.Equal(t, "alice@example.com", cmd.Email())
	assert.Equal(t, "s3cret1", cmd.Password())
}

func TestNewRegisterUserCommand_MissingFields(t *testing.T) {
	tests := map[string]struct {
		name, email, password string
	}{
		"blank name":     {"  ", "alice@example.com", "s3cret1"},
		"blank email":    {"Alice", "", "s3cret1"},
		"empty password": {"Alice", "alice@example.com", ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := commands.NewRegisterUserCommand(tt.name, tt.email, tt.password)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		})
	}
}
