package commands

import (
	"context"
	"log/slog"

	"commerce/internal/core/domain/model/user"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"
)

// RegisterUserCommandHandler creates user accounts.
//
// Email uniqueness is checked before the aggregate is built, inside the same
// transaction that persists it. On success a single welcome notification is
// attempted; a duplicate email produces no side effects at all.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	notifier   ports.NotificationSender
	logger     *slog.Logger
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	notifier ports.NotificationSender,
	logger *slog.Logger,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "register_user_handler"),
	}
}

// Handle processes the registration command and returns the created user.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
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

	taken, err := uow.UserRepository().ExistsByEmail(ctx, cmd.Email())
	if err != nil {
		return nil, err
	}

	if taken {
		return nil, errs.NewAlreadyExistsError("email", cmd.Email())
	}

	u, err := user.NewUser(cmd.Name(), cmd.Email(), cmd.Password())
	if err != nil {
		return nil, err
	}

	if err = uow.UserRepository().Save(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.notifier.SendWelcome(ctx, u.Email(), u.Name()); err != nil {
		h.logger.WarnContext(ctx, "Welcome notification failed",
			"email", u.Email(), "error", err)
	}

	return u, nil
}
