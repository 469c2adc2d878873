package queries_test

import (
	"testing"

	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUserOrdersQuery_ValidInput(t *testing.T) {
	userID := kernel.NewUUID()
	query, err := queries.NewGetUserOrdersQuery(userID)
	require.NoError(t, err)
	assert.Equal(t, userID, query.UserID())
	assert.NoError(t, query.Validate())
}

func TestNewGetUserOrdersQuery_InvalidUserID(t *testing.T) {
	_, err := queries.NewGetUserOrdersQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetUserOrdersQuery_ZeroValue_FailsValidation(t *testing.T) {
	query := queries.GetUserOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUserOrdersQueryIsNotConstructed)
}
