package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Terracotich/apitest/internal/errors"
	"github.com/Terracotich/apitest/internal/model"
	"github.com/Terracotich/apitest/internal/service"
)

// BrandHandler handles brand endpoints.
type BrandHandler struct {
	svc service.BrandService
}

// NewBrandHandler creates a new brand handler.
func NewBrandHandler(svc service.BrandService) *BrandHandler {
	return &BrandHandler{svc: svc}
}

// CreateBrand godoc
// @Summary Create brand
// @Tags brands
// @Accept json
// @Produce json
// @Param brand body model.Brand true "Brand payload"
// @Success 200 {object} model.Brand
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409
// @Router /brands [post]
func (h *BrandHandler) CreateBrand(c echo.Context) error {
	var brand model.Brand
	if err := c.Bind(&brand); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&brand); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	created, err := h.svc.CreateBrand(c.Request().Context(), &brand)
	if err != nil {
		if err == errors.ErrConflict {
			return c.NoContent(http.StatusConflict)
		}
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, created)
}

// GetBrand godoc
// @Summary Get brand by id
// @Tags brands
// @Produce json
// @Param id path int true "Brand ID"
// @Success 200 {object} model.Brand
// @Failure 404 {object} errors.ErrorResponse
// @Router /brands/{id} [get]
func (h *BrandHandler) GetBrand(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	brand, err := h.svc.GetBrand(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, brand)
}

// ListBrands godoc
// @Summary List brands
// @Tags brands
// @Produce json
// @Success 200 {array} model.Brand
// @Router /brands [get]
func (h *BrandHandler) ListBrands(c echo.Context) error {
	brands, err := h.svc.ListBrands(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, brands)
}

// UpdateBrand godoc
// @Summary Update brand
// @Tags brands
// @Accept json
// @Produce json
// @Param id path int true "Brand ID"
// @Param brand body model.Brand true "Brand payload"
// @Success 200 {object} model.Brand
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /brands/{id} [put]
func (h *BrandHandler) UpdateBrand(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	var brand model.Brand
	if err := c.Bind(&brand); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&brand); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	updated, err := h.svc.UpdateBrand(c.Request().Context(), id, &brand)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteBrand godoc
// @Summary Delete brand
// @Tags brands
// @Param id path int true "Brand ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /brands/{id} [delete]
func (h *BrandHandler) DeleteBrand(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	if err := h.svc.DeleteBrand(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
