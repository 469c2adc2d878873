package http

import (
	"net/http"
	"strconv"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, err)
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, reqItem := range req.Items {
		productID, err := kernel.UUIDFromString(reqItem.ProductID)
		if err != nil {
			return badRequest(ctx, err)
		}
		unitPrice, err := kernel.MoneyFromString(reqItem.UnitPrice)
		if err != nil {
			return badRequest(ctx, err)
		}
		item, err := order.NewItem(productID, reqItem.ProductName, reqItem.Quantity, unitPrice)
		if err != nil {
			return badRequest(ctx, err)
		}
		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(userID, items, req.ShippingAddress)
	if err != nil {
		return badRequest(ctx, err)
	}

	o, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(o))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	res, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderQueryToResponse(res))
}

// GetOrdersByStatus handles GET /api/v1/orders?status=.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return badRequest(ctx, err)
	}

	res, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders := make([]StatusOrderResponse, 0, len(res))
	for _, o := range res {
		orders = append(orders, StatusOrderResponse{
			ID:          o.ID.String(),
			UserID:      o.UserID.String(),
			TotalAmount: o.TotalAmount.String(),
			CreatedAt:   o.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, orders)
}

// ProcessPayment handles POST /api/v1/orders/:id/payment.
func (s *Server) ProcessPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req PaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewProcessPaymentCommand(orderID, req.CardToken)
	if err != nil {
		return badRequest(ctx, err)
	}

	o, err := s.processPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(o))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req CancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return badRequest(ctx, err)
	}

	o, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(o))
}

// ShipOrder handles POST /api/v1/orders/:id/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req ShipOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewShipOrderCommand(orderID, req.TrackingNumber)
	if err != nil {
		return badRequest(ctx, err)
	}

	o, err := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(o))
}

// CalculateDiscountedTotal handles GET /api/v1/orders/:id/discounted-total?percent=.
func (s *Server) CalculateDiscountedTotal(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	percent, err := strconv.Atoi(ctx.QueryParam("percent"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewCalculateDiscountedTotalQuery(orderID, percent)
	if err != nil {
		return badRequest(ctx, err)
	}

	res, err := s.discountedTotalHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DiscountResponse{
		OrderID:         res.OrderID.String(),
		Percent:         res.Percent,
		OriginalTotal:   res.OriginalTotal.String(),
		DiscountedTotal: res.DiscountedTotal.String(),
	})
}
