package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spendy/ledger/internal/api/metrics"
	"github.com/spendy/ledger/internal/core/ports"
)

type CategoryHandler struct {
	registry ports.CategoryRegistry
}

func NewCategoryHandler(registry ports.CategoryRegistry) *CategoryHandler {
	return &CategoryHandler{registry: registry}
}

// List handles GET /v1/categories: built-ins first, then custom ones.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  categoryListResponse
// @Router       /v1/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	all, err := h.registry.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoryListResponse{Categories: all})
}

// Create handles POST /v1/categories.
//
// @Summary      Add a custom category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addCategoryRequest  true  "Category"
// @Success      201   {object}  domain.Category
// @Failure      422   {object}  errorResponse
// @Router       /v1/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req addCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	cat, err := h.registry.AddCustom(c.Request().Context(), req.Name, req.Icon)
	if err != nil {
		return err
	}

	metrics.CustomCategoriesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, cat)
}
