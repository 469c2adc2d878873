package http

import (
	"net/http"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RegisterUser handles POST /api/v1/users.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req RegisterUserRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRegisterUserCommand(req.Name, req.Email, req.Password)
	if err != nil {
		return badRequest(ctx, err)
	}

	u, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, userToResponse(u))
}

// RequestPasswordReset handles POST /api/v1/users/password-reset.
// Always responds 202 on a well-formed request so callers cannot probe
// which emails have accounts.
func (s *Server) RequestPasswordReset(ctx echo.Context) error {
	var req PasswordResetRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRequestPasswordResetCommand(req.Email)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.passwordResetHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// DeactivateUser handles POST /api/v1/users/:id/deactivate.
func (s *Server) DeactivateUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeactivateUserCommand(userID)
	if err != nil {
		return badRequest(ctx, err)
	}

	u, err := s.deactivateUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userToResponse(u))
}

// UpdateUserProfile handles PUT /api/v1/users/:id/profile.
func (s *Server) UpdateUserProfile(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req UpdateProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateUserProfileCommand(userID, req.Name, req.Email)
	if err != nil {
		return badRequest(ctx, err)
	}

	u, err := s.updateUserProfileHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userToResponse(u))
}

// GetUserOrders handles GET /api/v1/users/:id/orders.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetUserOrdersQuery(userID)
	if err != nil {
		return badRequest(ctx, err)
	}

	res, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders := make([]UserOrderResponse, 0, len(res))
	for _, o := range res {
		orders = append(orders, UserOrderResponse{
			ID:              o.ID.String(),
			Status:          o.Status,
			TotalAmount:     o.TotalAmount.String(),
			ShippingAddress: o.ShippingAddress,
			PaymentID:       o.PaymentID,
			ItemCount:       o.ItemCount,
			CreatedAt:       o.CreatedAt,
			UpdatedAt:       o.UpdatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, orders)
}
