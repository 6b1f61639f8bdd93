package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Terracotich/apitest/internal/errors"
	"github.com/Terracotich/apitest/internal/model"
	"github.com/Terracotich/apitest/internal/service"
)

// ReviewHandler handles review endpoints.
type ReviewHandler struct {
	svc service.ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// CreateReview godoc
// @Summary Create review
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body model.Review true "Review payload"
// @Success 200 {object} model.Review
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var review model.Review
	if err := c.Bind(&review); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&review); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	created, err := h.svc.CreateReview(c.Request().Context(), &review)
	if err != nil {
		if err == errors.ErrConflict {
			return c.NoContent(http.StatusConflict)
		}
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, created)
}

// GetReview godoc
// @Summary Get review by id
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} model.Review
// @Failure 404 {object} errors.ErrorResponse
// @Router /reviews/{id} [get]
func (h *ReviewHandler) GetReview(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	review, err := h.svc.GetReview(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, review)
}

// ListReviews godoc
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Success 200 {array} model.Review
// @Router /reviews [get]
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	reviews, err := h.svc.ListReviews(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, reviews)
}

// ListReviewsByUser godoc
// @Summary List reviews by user
// @Tags reviews
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} model.Review
// @Router /reviews/by-user/{userId} [get]
func (h *ReviewHandler) ListReviewsByUser(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user id",
			Code:  "INVALID_ID",
		})
	}
	reviews, err := h.svc.ListReviewsByUser(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, reviews)
}

// ListReviewsByOrder godoc
// @Summary List reviews by order
// @Tags reviews
// @Produce json
// @Param orderId path int true "Order ID"
// @Success 200 {array} model.Review
// @Router /reviews/by-order/{orderId} [get]
func (h *ReviewHandler) ListReviewsByOrder(c echo.Context) error {
	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid order id",
			Code:  "INVALID_ID",
		})
	}
	reviews, err := h.svc.ListReviewsByOrder(c.Request().Context(), orderID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, reviews)
}

// ListReviewsByMinRating godoc
// @Summary List reviews with at least the given rating
// @Tags reviews
// @Produce json
// @Param minRating query int true "Minimum rating (1-5)"
// @Success 200 {array} model.Review
// @Failure 400 {object} errors.ErrorResponse
// @Router /reviews/by-rating [get]
func (h *ReviewHandler) ListReviewsByMinRating(c echo.Context) error {
	minRating, err := strconv.Atoi(c.QueryParam("minRating"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid minRating",
			Code:  "INVALID_ARGUMENT",
		})
	}
	reviews, err := h.svc.ListReviewsByMinRating(c.Request().Context(), minRating)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, reviews)
}

// UpdateReview godoc
// @Summary Update review
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param review body model.Review true "Review payload"
// @Success 200 {object} model.Review
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reviews/{id} [put]
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	var review model.Review
	if err := c.Bind(&review); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&review); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	updated, err := h.svc.UpdateReview(c.Request().Context(), id, &review)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteReview godoc
// @Summary Delete review
// @Tags reviews
// @Param id path int true "Review ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	if err := h.svc.DeleteReview(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
