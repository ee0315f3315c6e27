package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"cardledger/internal/errors"
	"cardledger/internal/model"
	"cardledger/internal/service"
)

// CardHandler handles card endpoints.
type CardHandler struct {
	cardService service.CardService
}

// NewCardHandler creates a new card handler.
func NewCardHandler(cardService service.CardService) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// CreateCardRequest represents the add-card form.
type CreateCardRequest struct {
	BankName       string `json:"bank_name" validate:"required"`
	CardName       string `json:"card_name" validate:"required"`
	Network        string `json:"network" validate:"required"`
	CardNumber     string `json:"card_number" validate:"required"`
	Expiry         string `json:"expiry" validate:"required"`
	CVV            string `json:"cvv" validate:"required"`
	CardHolderName string `json:"card_holder_name" validate:"required"`
	CreditLimit    string `json:"credit_limit" validate:"required"`
	BillDay        int    `json:"bill_day" validate:"required,min=1,max=31"`
	DueDay         int    `json:"due_day" validate:"required,min=1,max=31"`
	Color          string `json:"color"`
}

// CreateCardResponse returns the stored card plus the due-date sanity
// advisory; the warning never blocks creation, the client decides whether
// to ask the user to confirm.
type CreateCardResponse struct {
	Card    *model.Card `json:"card"`
	Warning string      `json:"warning,omitempty"`
}

// CreateCard godoc
// @Summary Register a new card
// @Tags cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCardRequest true "Card data"
// @Success 201 {object} CreateCardResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cards [post]
func (h *CardHandler) CreateCard(c echo.Context) error {
	var req CreateCardRequest
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

	limit, err := decimal.NewFromString(req.CreditLimit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid credit_limit",
			Code:  "INVALID_AMOUNT",
		})
	}

	card, warning, err := h.cardService.CreateCard(c.Request().Context(), service.CreateCardInput{
		BankName:       req.BankName,
		CardName:       req.CardName,
		Network:        req.Network,
		CardNumber:     req.CardNumber,
		Expiry:         req.Expiry,
		CVV:            req.CVV,
		CardHolderName: req.CardHolderName,
		CreditLimit:    limit,
		BillDay:        req.BillDay,
		DueDay:         req.DueDay,
		Color:          req.Color,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, CreateCardResponse{
		Card:    card,
		Warning: warning,
	})
}

// UpdateCardRequest represents the edit-card form. Sensitive fields are
// immutable and absent here.
type UpdateCardRequest struct {
	BankName    string `json:"bank_name" validate:"required"`
	CardName    string `json:"card_name" validate:"required"`
	Network     string `json:"network" validate:"required"`
	CreditLimit string `json:"credit_limit" validate:"required"`
	BillDay     int    `json:"bill_day" validate:"required,min=1,max=31"`
	DueDay      int    `json:"due_day" validate:"required,min=1,max=31"`
	Color       string `json:"color"`
}

// UpdateCard godoc
// @Summary Edit a card's non-sensitive fields
// @Tags cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Param request body UpdateCardRequest true "Card data"
// @Success 200 {object} CreateCardResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cards/{id} [put]
func (h *CardHandler) UpdateCard(c echo.Context) error {
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}

	var req UpdateCardRequest
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

	limit, err := decimal.NewFromString(req.CreditLimit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid credit_limit",
			Code:  "INVALID_AMOUNT",
		})
	}

	card, warning, err := h.cardService.UpdateCard(c.Request().Context(), cardID, service.UpdateCardInput{
		BankName:    req.BankName,
		CardName:    req.CardName,
		Network:     req.Network,
		CreditLimit: limit,
		BillDay:     req.BillDay,
		DueDay:      req.DueDay,
		Color:       req.Color,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, CreateCardResponse{
		Card:    card,
		Warning: warning,
	})
}

// ListCards godoc
// @Summary List registered cards
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Card
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cards [get]
func (h *CardHandler) ListCards(c echo.Context) error {
	cards, err := h.cardService.ListCards(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, cards)
}

// GetCard godoc
// @Summary Get one card
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Success 200 {object} model.Card
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cards/{id} [get]
func (h *CardHandler) GetCard(c echo.Context) error {
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}

	card, err := h.cardService.GetCard(c.Request().Context(), cardID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, card)
}

// DeleteCard godoc
// @Summary Delete a card and all of its cycles and payments
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Success 204 "deleted"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cards/{id} [delete]
func (h *CardHandler) DeleteCard(c echo.Context) error {
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}

	if err := h.cardService.DeleteCard(c.Request().Context(), cardID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// GetSecureDetails godoc
// @Summary Reveal the sensitive fields of a card
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Success 200 {object} model.CardSecureDetails
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cards/{id}/secure [get]
func (h *CardHandler) GetSecureDetails(c echo.Context) error {
	cardID, err := parseCardID(c)
	if err != nil {
		return err
	}

	details, err := h.cardService.GetSecureDetails(c.Request().Context(), cardID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if details == nil {
		return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Error: "no secure details stored for card",
			Code:  "SECURE_DETAILS_NOT_FOUND",
		})
	}
	return c.JSON(http.StatusOK, details)
}

// parseCardID reads the :id route param as a UUID.
func parseCardID(c echo.Context) (uuid.UUID, error) {
	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid card ID",
			Code:  "INVALID_UUID",
		})
	}
	return cardID, nil
}
