package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"cardledger/internal/errors"
	"cardledger/internal/service"
)

// CycleHandler handles bill-cycle endpoints.
type CycleHandler struct {
	ledgerService service.LedgerService
}

// NewCycleHandler creates a new cycle handler.
func NewCycleHandler(ledgerService service.LedgerService) *CycleHandler {
	return &CycleHandler{ledgerService: ledgerService}
}

// RecordBillRequest carries a manually entered statement amount.
type RecordBillRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// RecordRewardRequest sets or clears a cycle's reward points.
type RecordRewardRequest struct {
	Amount *string `json:"amount"`
}

// BillHistoryResponse is the bill-history view: all cycles newest first
// plus the selected year's totals.
type BillHistoryResponse struct {
	Cycles  []CycleResponse       `json:"cycles"`
	Summary *service.CycleSummary `json:"summary"`
}

// EnsureCurrentCycle godoc
// @Summary Ensure the current billing cycle exists for a card
// @Tags cycles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Success 200 {object} CycleResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cards/{id}/cycles/current [post]
func (h *CycleHandler) EnsureCurrentCycle(c echo.Context) error {
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}

	cycle, err := h.ledgerService.EnsureCurrentCycle(c.Request().Context(), cardID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, newCycleResponse(cycle))
}

// GetBillHistory godoc
// @Summary List a card's bill cycles with a yearly summary
// @Tags cycles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Param year query string false "Summary year (defaults to current year)"
// @Success 200 {object} BillHistoryResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cards/{id}/cycles [get]
func (h *CycleHandler) GetBillHistory(c echo.Context) error {
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}

	year := c.QueryParam("year")
	if year == "" {
		year = strconv.Itoa(time.Now().Year())
	}

	cycles, err := h.ledgerService.GetCardCycles(c.Request().Context(), cardID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	summary, err := h.ledgerService.GetCycleSummary(c.Request().Context(), cardID, year)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resp := BillHistoryResponse{
		Cycles:  make([]CycleResponse, 0, len(cycles)),
		Summary: summary,
	}
	for i := range cycles {
		resp.Cycles = append(resp.Cycles, newCycleResponse(&cycles[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// RecordBill godoc
// @Summary Record the statement amount for the card's current cycle
// @Tags cycles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Param request body RecordBillRequest true "Statement amount"
// @Success 200 {object} CycleResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cards/{id}/bill [post]
func (h *CycleHandler) RecordBill(c echo.Context) error {
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}

	var req RecordBillRequest
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
	if err != nil || !amount.IsPositive() {
		// The manual add-bill path requires a positive amount; zero is
		// only ever the pre-statement default.
		httpErr := errors.MapErrorToHTTP(errors.ErrInvalidBillAmount)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	cycle, err := h.ledgerService.RecordBillAmount(c.Request().Context(), cardID, amount)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, newCycleResponse(cycle))
}

// RecordReward godoc
// @Summary Set or clear the reward points on a cycle
// @Tags cycles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cycle ID"
// @Param request body RecordRewardRequest true "Reward amount (null clears)"
// @Success 200 {object} CycleResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cycles/{id}/rewards [put]
func (h *CycleHandler) RecordReward(c echo.Context) error {
	cycleID := c.Param("id")

	var req RecordRewardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	var amount *decimal.Decimal
	if req.Amount != nil {
		parsed, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			httpErr := errors.MapErrorToHTTP(errors.ErrInvalidRewardAmount)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		amount = &parsed
	}

	cycle, err := h.ledgerService.RecordReward(c.Request().Context(), cycleID, amount)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, newCycleResponse(cycle))
}
