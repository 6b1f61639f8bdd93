package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Terracotich/apitest/internal/errors"
	"github.com/Terracotich/apitest/internal/model"
	"github.com/Terracotich/apitest/internal/service"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	svc service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(svc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// CreatePayment godoc
// @Summary Create payment
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body model.Payment true "Payment payload"
// @Success 200 {object} model.Payment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var payment model.Payment
	if err := c.Bind(&payment); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&payment); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	created, err := h.svc.CreatePayment(c.Request().Context(), &payment)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, created)
}

// GetPayment godoc
// @Summary Get payment by id
// @Tags payments
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} model.Payment
// @Failure 404 {object} errors.ErrorResponse
// @Router /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	payment, err := h.svc.GetPayment(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, payment)
}

// ListPayments godoc
// @Summary List payments
// @Tags payments
// @Produce json
// @Success 200 {array} model.Payment
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	payments, err := h.svc.ListPayments(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, payments)
}

// ListPaymentsByUser godoc
// @Summary List payments by user
// @Tags payments
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} model.Payment
// @Router /payments/by-user/{userId} [get]
func (h *PaymentHandler) ListPaymentsByUser(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user id",
			Code:  "INVALID_ID",
		})
	}
	payments, err := h.svc.ListPaymentsByUser(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, payments)
}

// ListPaymentsByOrder godoc
// @Summary List payments by order
// @Tags payments
// @Produce json
// @Param orderId path int true "Order ID"
// @Success 200 {array} model.Payment
// @Router /payments/by-order/{orderId} [get]
func (h *PaymentHandler) ListPaymentsByOrder(c echo.Context) error {
	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid order id",
			Code:  "INVALID_ID",
		})
	}
	payments, err := h.svc.ListPaymentsByOrder(c.Request().Context(), orderID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, payments)
}

// ListPaymentsByDateRange godoc
// @Summary List payments in a date range
// @Tags payments
// @Produce json
// @Param startDate query string true "Start date (yyyy-MM-dd)"
// @Param endDate query string true "End date (yyyy-MM-dd)"
// @Success 200 {array} model.Payment
// @Failure 400 {object} errors.ErrorResponse
// @Router /payments/by-date [get]
func (h *PaymentHandler) ListPaymentsByDateRange(c echo.Context) error {
	start, err := model.ParseDate(c.QueryParam("startDate"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid startDate, expected yyyy-MM-dd",
			Code:  "INVALID_DATE",
		})
	}
	end, err := model.ParseDate(c.QueryParam("endDate"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid endDate, expected yyyy-MM-dd",
			Code:  "INVALID_DATE",
		})
	}
	payments, err := h.svc.ListPaymentsByDateRange(c.Request().Context(), start, end)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, payments)
}

// ListPaymentsByMethod godoc
// @Summary List payments by method
// @Tags payments
// @Produce json
// @Param method path string true "Payment method"
// @Success 200 {array} model.Payment
// @Router /payments/by-method/{method} [get]
func (h *PaymentHandler) ListPaymentsByMethod(c echo.Context) error {
	payments, err := h.svc.ListPaymentsByMethod(c.Request().Context(), c.Param("method"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, payments)
}

// UpdatePayment godoc
// @Summary Update payment
// @Tags payments
// @Accept json
// @Produce json
// @Param id path int true "Payment ID"
// @Param payment body model.Payment true "Payment payload"
// @Success 200 {object} model.Payment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /payments/{id} [put]
func (h *PaymentHandler) UpdatePayment(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	var payment model.Payment
	if err := c.Bind(&payment); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&payment); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	updated, err := h.svc.UpdatePayment(c.Request().Context(), id, &payment)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}

// DeletePayment godoc
// @Summary Delete payment
// @Tags payments
// @Param id path int true "Payment ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /payments/{id} [delete]
func (h *PaymentHandler) DeletePayment(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	if err := h.svc.DeletePayment(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
