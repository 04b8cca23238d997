package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/spendy/ledger/internal/core/ports"
)

// SummaryHandler serves the dashboard and category breakdown views.
type SummaryHandler struct {
	ledger ports.LedgerService
}

func NewSummaryHandler(ledger ports.LedgerService) *SummaryHandler {
	return &SummaryHandler{ledger: ledger}
}

// Overview handles GET /v1/summary/overview?year=&month=. Omitted values
// mean the current month.
//
// @Summary      Dashboard totals and daily series
// @Tags         summary
// @Produce      json
// @Security     BearerAuth
// @Param        year   query     int  false  "Year, e.g. 2024"
// @Param        month  query     int  false  "Month 1-12"
// @Success      200    {object}  overviewResponse
// @Failure      400    {object}  errorResponse
// @Failure      422    {object}  errorResponse
// @Router       /v1/summary/overview [get]
func (h *SummaryHandler) Overview(c echo.Context) error {
	var year, month int
	if err := echo.QueryParamsBinder(c).
		Int("year", &year).
		Int("month", &month).
		BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "year and month must be integers")
	}

	ov, err := h.ledger.Overview(c.Request().Context(), year, time.Month(month))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overviewResponse{
		Overview:    ov,
		DaysInMonth: len(ov.Daily),
	})
}

// Categories handles GET /v1/summary/categories: expenses grouped by category.
//
// @Summary      Expense breakdown by category
// @Tags         summary
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  aggregate.Summary
// @Router       /v1/summary/categories [get]
func (h *SummaryHandler) Categories(c echo.Context) error {
	sum, err := h.ledger.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sum)
}
