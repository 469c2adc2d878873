// Package http exposes the application's commands and queries over a JSON
// REST API using Echo. Handlers translate between wire DTOs and the
// application layer, and map error kinds onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	processPaymentHandler    commands.ProcessPaymentCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	shipOrderHandler         commands.ShipOrderCommandHandler
	registerUserHandler      commands.RegisterUserCommandHandler
	deactivateUserHandler    commands.DeactivateUserCommandHandler
	updateUserProfileHandler commands.UpdateUserProfileCommandHandler
	passwordResetHandler     commands.RequestPasswordResetCommandHandler

	// Query handlers
	getUserOrdersHandler     queries.GetUserOrdersQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
	discountedTotalHandler   queries.CalculateDiscountedTotalQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	processPaymentHandler commands.ProcessPaymentCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	registerUserHandler commands.RegisterUserCommandHandler,
	deactivateUserHandler commands.DeactivateUserCommandHandler,
	updateUserProfileHandler commands.UpdateUserProfileCommandHandler,
	passwordResetHandler commands.RequestPasswordResetCommandHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	discountedTotalHandler queries.CalculateDiscountedTotalQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		processPaymentHandler:    processPaymentHandler,
		cancelOrderHandler:       cancelOrderHandler,
		shipOrderHandler:         shipOrderHandler,
		registerUserHandler:      registerUserHandler,
		deactivateUserHandler:    deactivateUserHandler,
		updateUserProfileHandler: updateUserProfileHandler,
		passwordResetHandler:     passwordResetHandler,
		getUserOrdersHandler:     getUserOrdersHandler,
		getOrderHandler:          getOrderHandler,
		getOrdersByStatusHandler: getOrdersByStatusHandler,
		discountedTotalHandler:   discountedTotalHandler,
	}
}

// RegisterRoutes mounts all API routes on the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrdersByStatus)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/discounted-total", s.CalculateDiscountedTotal)
	api.POST("/orders/:id/payment", s.ProcessPayment)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/ship", s.ShipOrder)

	api.POST("/users", s.RegisterUser)
	api.POST("/users/password-reset", s.RequestPasswordReset)
	api.POST("/users/:id/deactivate", s.DeactivateUser)
	api.PUT("/users/:id/profile", s.UpdateUserProfile)
	api.GET("/users/:id/orders", s.GetUserOrders)
}

// statusFromError maps an application error to an HTTP status code.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, errs.ErrPaymentFailed):
		return http.StatusPaymentRequired
	case errors.Is(err, errs.ErrRefundFailed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse writes the error with the status code derived from its kind.
func errorResponse(ctx echo.Context, err error) error {
	code := statusFromError(err)
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

// badRequest writes the error as a 400, regardless of its kind.
// Used for body parsing and command construction failures.
func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}
