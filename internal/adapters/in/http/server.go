// Package http is the REST adapter of the order service. It binds requests,
// runs the use cases and translates their errors into status codes.
package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"flavorverse/internal/core/application/usecases/commands"
	"flavorverse/internal/core/application/usecases/queries"
	"flavorverse/internal/core/application/validation"
	"flavorverse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

const (
	msgUserIDRequired    = "User ID required"
	msgStatusRequired    = "Status is required"
	msgInvalidStatus     = "Invalid status"
	msgValidationFailed  = "Validation failed"
	msgOrderNotFound     = "Order not found"
	msgFetchOrdersFailed = "Failed to fetch orders"
	msgFetchOrderFailed  = "Failed to fetch order"
	msgCreateFailed      = "Failed to create order"
	msgUpdateFailed      = "Failed to update order status"
	msgCreated           = "Order created successfully"
	msgStatusUpdated     = "Order status updated successfully"
)

// Server holds the use case handlers behind the /orders routes.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	listUserOrdersHandler queries.ListUserOrdersQueryHandler
	getUserOrderHandler   queries.GetUserOrderQueryHandler

	validator *validation.Validator

	// exposeErrorDetails adds store error text to 500 replies on order creation.
	exposeErrorDetails bool
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	listUserOrdersHandler queries.ListUserOrdersQueryHandler,
	getUserOrderHandler queries.GetUserOrderQueryHandler,
	validator *validation.Validator,
	exposeErrorDetails bool,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		listUserOrdersHandler:    listUserOrdersHandler,
		getUserOrderHandler:      getUserOrderHandler,
		validator:                validator,
		exposeErrorDetails:       exposeErrorDetails,
	}
}

// ListOrders handles GET /orders?userId=.
func (s *Server) ListOrders(ctx echo.Context) error {
	userID, ok := userIDParam(ctx)
	if !ok {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: msgUserIDRequired})
	}

	query, err := queries.NewListUserOrdersQuery(userID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: msgUserIDRequired})
	}

	orders, err := s.listUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		slog.ErrorContext(ctx.Request().Context(), "failed to list orders", slog.String("user_id", userID), slog.Any("err", err))
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgFetchOrdersFailed})
	}

	return ctx.JSON(http.StatusOK, ListOrdersResponse{
		Success: true,
		Orders:  toOrderResponses(orders),
		Count:   len(orders),
	})
}

// CreateOrder handles POST /orders. The owner comes from the body's userId.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var submission validation.OrderSubmission
	if err := ctx.Bind(&submission); err != nil {
		return validationFailed(ctx, validation.MalformedBody(bindCause(err)))
	}

	draft, err := s.validator.Validate(submission)
	if err != nil {
		return validationFailed(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(draft)
	if err != nil {
		return validationFailed(ctx, err)
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		var persistence *errs.PersistenceError
		if !errors.As(err, &persistence) {
			return validationFailed(ctx, err)
		}

		slog.ErrorContext(ctx.Request().Context(), "failed to create order", slog.Any("err", err))
		resp := ErrorResponse{Error: msgCreateFailed}
		if s.exposeErrorDetails && persistence.Cause != nil {
			resp.Details = persistence.Cause.Error()
		}
		return ctx.JSON(http.StatusInternalServerError, resp)
	}

	slog.InfoContext(ctx.Request().Context(), "order placed",
		slog.String("order_id", placed.ID().String()),
		slog.String("user_id", placed.OwnerID()),
		slog.String("token_subject", TokenSubject(ctx)))

	return ctx.JSON(http.StatusCreated, OrderEnvelope{
		Success: true,
		Order:   toOrderResponse(placed),
		Message: msgCreated,
	})
}

// GetOrder handles GET /orders/:id?userId=.
func (s *Server) GetOrder(ctx echo.Context) error {
	userID, ok := userIDParam(ctx)
	if !ok {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: msgUserIDRequired})
	}

	query, err := queries.NewGetUserOrderQuery(ctx.Param("id"), userID)
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: msgOrderNotFound})
	}

	o, err := s.getUserOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: msgOrderNotFound})
		}
		slog.ErrorContext(ctx.Request().Context(), "failed to fetch order", slog.String("order_id", ctx.Param("id")), slog.Any("err", err))
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgFetchOrderFailed})
	}

	return ctx.JSON(http.StatusOK, OrderEnvelope{Success: true, Order: toOrderResponse(o)})
}

// UpdateOrderStatus handles PATCH /orders/:id/status?userId=.
// Checks run in order: owner, status presence, status label, order lookup.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	userID, ok := userIDParam(ctx)
	if !ok {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: msgUserIDRequired})
	}

	var req UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return validationFailed(ctx, validation.MalformedBody(bindCause(err)))
	}
	if req.Status == "" {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: msgStatusRequired})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(ctx.Param("id"), userID, req.Status, req.Message)
	if err != nil {
		var invalid *errs.StatusIsInvalidError
		if errors.As(err, &invalid) {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidStatus, ValidStatuses: invalid.Allowed})
		}
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: msgOrderNotFound})
	}

	o, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: msgOrderNotFound})
		}
		slog.ErrorContext(ctx.Request().Context(), "failed to update order status",
			slog.String("order_id", ctx.Param("id")), slog.String("status", req.Status), slog.Any("err", err))
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgUpdateFailed})
	}

	return ctx.JSON(http.StatusOK, OrderEnvelope{
		Success: true,
		Order:   toOrderResponse(o),
		Message: msgStatusUpdated,
	})
}

// userIDParam reads the mandatory userId query parameter. A missing or
// empty value reports false.
func userIDParam(ctx echo.Context) (string, bool) {
	var userID string
	if err := runtime.BindQueryParameter("form", true, true, "userId", ctx.QueryParams(), &userID); err != nil {
		return "", false
	}
	return userID, userID != ""
}

func validationFailed(ctx echo.Context, err error) error {
	var failed *errs.ValidationFailedError
	if !errors.As(err, &failed) {
		failed = errs.NewValidationFailedErrorWithCause(err, err.Error())
	}
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: msgValidationFailed, Details: failed.Details})
}

// bindCause strips echo's status wrapper from a bind error.
func bindCause(err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return errors.New(fmt.Sprint(he.Message))
	}
	return err
}
