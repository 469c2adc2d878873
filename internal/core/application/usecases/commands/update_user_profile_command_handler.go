package commands

import (
	"context"

	"commerce/internal/core/domain/model/user"
	"commerce/internal/pkg/errs"
)

// UpdateUserProfileCommandHandler changes a user's name and email.
//
// When the email actually changes, uniqueness is re-checked inside the same
// transaction that persists the update. Submitting the current email again is
// not a conflict.
type UpdateUserProfileCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateUserProfileCommandHandler creates a handler for profile updates.
func NewUpdateUserProfileCommandHandler(uowFactory UserUoWFactory) UpdateUserProfileCommandHandler {
	return UpdateUserProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile update command and returns the updated user.
func (h *UpdateUserProfileCommandHandler) Handle(
	ctx context.Context, cmd UpdateUserProfileCommand,
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

	if cmd.Email() != u.Email() {
		taken, existsErr := uow.UserRepository().ExistsByEmail(ctx, cmd.Email())
		if existsErr != nil {
			return nil, existsErr
		}

		if taken {
			return nil, errs.NewAlreadyExistsError("email", cmd.Email())
		}
	}

	if err = u.ChangeProfile(cmd.Name(), cmd.Email()); err != nil {
		return nil, err
	}

	if err = uow.UserRepository().Save(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
