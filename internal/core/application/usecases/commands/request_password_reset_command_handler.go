package commands

import (
	"context"
	"errors"
	"log/slog"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"
)

// RequestPasswordResetCommandHandler sends password reset tokens.
//
// The handler succeeds whether or not an account exists for the email, so a
// caller cannot probe for registered addresses. When the account exists a
// single reset notification carrying a fresh token is attempted; a failed
// send is logged and swallowed like every other notification.
type RequestPasswordResetCommandHandler struct {
	uowFactory UserUoWFactory
	notifier   ports.NotificationSender
	logger     *slog.Logger
}

// NewRequestPasswordResetCommandHandler creates a handler for password reset requests.
func NewRequestPasswordResetCommandHandler(
	uowFactory UserUoWFactory,
	notifier ports.NotificationSender,
	logger *slog.Logger,
) RequestPasswordResetCommandHandler {
	return RequestPasswordResetCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "password_reset_handler"),
	}
}

// Handle processes the reset request. It never reports whether the email
// belongs to an account.
func (h *RequestPasswordResetCommandHandler) Handle(ctx context.Context, cmd RequestPasswordResetCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	u, err := uow.UserRepository().FindByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	token := kernel.NewUUID().String()

	if err = h.notifier.SendPasswordReset(ctx, u.Email(), token); err != nil {
		h.logger.WarnContext(ctx, "Password reset notification failed",
			"email", u.Email(), "error", err)
	}

	return nil
}
