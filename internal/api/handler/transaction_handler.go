package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spendy/ledger/internal/api/metrics"
	"github.com/spendy/ledger/internal/core/ports"
)

// TransactionHandler handles HTTP requests for the ledger.
type TransactionHandler struct {
	ledger ports.LedgerService
}

func NewTransactionHandler(ledger ports.LedgerService) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

// List handles GET /v1/transactions, newest first.
//
// @Summary      List transactions
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  transactionListResponse
// @Failure      401  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
	txs, err := h.ledger.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transactionListResponse{Transactions: txs, Count: len(txs)})
}

// Record handles POST /v1/transactions.
//
// @Summary      Record a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordTransactionRequest  true  "Transaction"
// @Success      201   {object}  domain.Transaction
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /v1/transactions [post]
func (h *TransactionHandler) Record(c echo.Context) error {
	var req recordTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	in := ports.RecordInput{
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
		Type:     req.Type,
	}
	if req.Date != nil {
		in.Date = *req.Date
	}

	tx, err := h.ledger.Record(c.Request().Context(), in)
	if err != nil {
		return err
	}

	metrics.TransactionsRecordedTotal.WithLabelValues(string(tx.Type)).Inc()
	return c.JSON(http.StatusCreated, tx)
}

// Delete handles DELETE /v1/transactions/:id. Unknown ids are not an error.
//
// @Summary      Delete a transaction
// @Tags         transactions
// @Security     BearerAuth
// @Param        id   path  string  true  "Transaction id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c echo.Context) error {
	if err := h.ledger.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.TransactionsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Clear handles DELETE /v1/transactions and drops the whole ledger.
//
// @Summary      Clear all transactions
// @Tags         transactions
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/transactions [delete]
func (h *TransactionHandler) Clear(c echo.Context) error {
	if err := h.ledger.Clear(c.Request().Context()); err != nil {
		return err
	}
	metrics.LedgerClearsTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
