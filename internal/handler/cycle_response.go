package handler

import (
	"time"

	"cardledger/internal/model"
)

// PaymentResponse represents one payment in API responses.
type PaymentResponse struct {
	ID        string `json:"id"`
	Amount    string `json:"amount"`
	Date      string `json:"date"`
	Method    string `json:"method"`
	Reference string `json:"reference,omitempty"`
}

// CycleResponse represents a bill cycle in API responses. Status is
// derived at read time, overdue overlay included.
type CycleResponse struct {
	ID              string            `json:"id"`
	CardID          string            `json:"card_id"`
	CycleDate       string            `json:"cycle_date"`
	DueDate         string            `json:"due_date"`
	TotalBill       string            `json:"total_bill"`
	RemainingAmount string            `json:"remaining_amount"`
	RewardPoints    *string           `json:"reward_points"`
	Status          string            `json:"status"`
	Payments        []PaymentResponse `json:"payments"`
}

func newPaymentResponse(p model.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		Amount:    p.Amount.String(),
		Date:      p.Date,
		Method:    p.Method,
		Reference: p.Reference,
	}
}

func newCycleResponse(cycle *model.BillCycle) CycleResponse {
	payments := make([]PaymentResponse, 0, len(cycle.Payments))
	for _, p := range cycle.Payments {
		payments = append(payments, newPaymentResponse(p))
	}

	var rewards *string
	if cycle.RewardPoints != nil {
		s := cycle.RewardPoints.String()
		rewards = &s
	}

	return CycleResponse{
		ID:              cycle.ID,
		CardID:          cycle.CardID.String(),
		CycleDate:       cycle.CycleDate,
		DueDate:         cycle.DueDate,
		TotalBill:       cycle.TotalBill.String(),
		RemainingAmount: cycle.RemainingAmount.String(),
		RewardPoints:    rewards,
		Status:          string(cycle.StatusAt(time.Now())),
		Payments:        payments,
	}
}
