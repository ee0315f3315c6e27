package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"cardledger/internal/errors"
	"cardledger/internal/service"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	ledgerService service.LedgerService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(ledgerService service.LedgerService) *PaymentHandler {
	return &PaymentHandler{ledgerService: ledgerService}
}

// ApplyPaymentRequest represents a partial or exact payment.
type ApplyPaymentRequest struct {
	Amount    string `json:"amount" validate:"required"`
	Method    string `json:"method" validate:"required"`
	Reference string `json:"reference"`
}

// FullPaymentRequest settles whatever remains on the current cycle.
type FullPaymentRequest struct {
	Method    string `json:"method" validate:"required"`
	Reference string `json:"reference"`
}

// ApplyPayment godoc
// @Summary Apply a payment to the card's current cycle
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Param request body ApplyPaymentRequest true "Payment data"
// @Success 200 {object} CycleResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cards/{id}/payments [post]
func (h *PaymentHandler) ApplyPayment(c echo.Context) error {
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}

	var req ApplyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrInvalidPaymentAmount)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	cycle, err := h.ledgerService.ApplyPayment(c.Request().Context(), cardID, amount, req.Method, req.Reference)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, newCycleResponse(cycle))
}

// ApplyFullPayment godoc
// @Summary Settle the remaining balance of the card's current cycle
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Param request body FullPaymentRequest true "Payment data"
// @Success 200 {object} CycleResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cards/{id}/payments/full [post]
func (h *PaymentHandler) ApplyFullPayment(c echo.Context) error {
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}

	var req FullPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	cycle, err := h.ledgerService.ApplyFullPayment(c.Request().Context(), cardID, req.Method, req.Reference)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, newCycleResponse(cycle))
}

// GetPaymentHistory godoc
// @Summary List the current cycle's payments, most recent first
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Success 200 {array} PaymentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cards/{id}/payments [get]
func (h *PaymentHandler) GetPaymentHistory(c echo.Context) error {
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}

	payments, err := h.ledgerService.GetPaymentHistory(c.Request().Context(), cardID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resp := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, newPaymentResponse(p))
	}
	return c.JSON(http.StatusOK, resp)
}
