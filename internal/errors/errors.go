package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrCardNotFound is returned when a card is not found.
	ErrCardNotFound = errors.New("card not found")
	// ErrCycleNotFound is returned when a bill cycle is not found.
	ErrCycleNotFound = errors.New("bill cycle not found")
	// ErrInvalidPaymentAmount is returned when a payment amount is zero,
	// negative, or exceeds the cycle's remaining balance.
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
	// ErrInvalidBillAmount is returned when a bill amount is negative.
	ErrInvalidBillAmount = errors.New("invalid bill amount")
	// ErrInvalidRewardAmount is returned when a reward amount is negative.
	ErrInvalidRewardAmount = errors.New("invalid reward amount")
	// ErrInvalidCard is returned when card detail validation fails.
	ErrInvalidCard = errors.New("invalid card")
	// ErrInvalidAnchorDay is returned when a bill or due anchor day is outside 1-31.
	ErrInvalidAnchorDay = errors.New("anchor day must be between 1 and 31")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrCardNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CARD_NOT_FOUND")
	case ErrCycleNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CYCLE_NOT_FOUND")
	case ErrInvalidPaymentAmount:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PAYMENT_AMOUNT")
	case ErrInvalidBillAmount:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_BILL_AMOUNT")
	case ErrInvalidRewardAmount:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_REWARD_AMOUNT")
	case ErrInvalidCard:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CARD")
	case ErrInvalidAnchorDay:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ANCHOR_DAY")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
