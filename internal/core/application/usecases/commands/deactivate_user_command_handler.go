package commands

import (
	"context"

	"commerce/internal/core/domain/model/user"
)

// DeactivateUserCommandHandler disables user accounts.
// Deactivating an already inactive user is a no-op that still succeeds.
type DeactivateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewDeactivateUserCommandHandler creates a handler for user deactivation.
func NewDeactivateUserCommandHandler(uowFactory UserUoWFactory) DeactivateUserCommandHandler {
	return DeactivateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deactivation command and returns the updated user.
func (h *DeactivateUserCommandHandler) Handle(
	ctx context.Context, cmd DeactivateUserCommand,
) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	u, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	u.Deactivate()

	if err = uow.UserRepository().Save(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
