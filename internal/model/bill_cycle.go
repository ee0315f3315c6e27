package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CycleStatus classifies the payment state of a bill cycle. It is never
// persisted: every status is recomputed from the cycle's monetary fields
// so stored amounts and status cannot diverge.
type CycleStatus string

const (
	// CycleStatusNotUpdated means no statement amount has been recorded yet.
	CycleStatusNotUpdated CycleStatus = "not updated"
	// CycleStatusUnpaid means the statement is recorded and nothing is paid.
	CycleStatusUnpaid CycleStatus = "unpaid"
	// CycleStatusPartial means some but not all of the bill is paid.
	CycleStatusPartial CycleStatus = "partial"
	// CycleStatusPaid means the remaining balance is zero.
	CycleStatusPaid CycleStatus = "paid"
	// CycleStatusOverdue is a read-time overlay for unpaid or partial
	// cycles whose due date has passed.
	CycleStatusOverdue CycleStatus = "overdue"
)

// Date layouts used for cycle keys and due dates.
const (
	CycleDateLayout = "2006-01"
	DueDateLayout   = "2006-01-02"
)

// BillCycle represents one monthly statement period for a card.
// The ID is deterministic (cycle_<YYYY-MM>_<cardID>) which guarantees at
// most one cycle per card per month.
type BillCycle struct {
	ID              string          `json:"id" gorm:"size:64;primaryKey"`
	CardID          uuid.UUID       `json:"card_id" gorm:"type:char(36);not null;index"`
	CycleDate       string          `json:"cycle_date" gorm:"size:7;not null"` // YYYY-MM
	TotalBill       decimal.Decimal `json:"total_bill" gorm:"type:decimal(20,2);not null;default:0"`
	RemainingAmount decimal.Decimal `json:"remaining_amount" gorm:"type:decimal(20,2);not null;default:0"`
	DueDate         string          `json:"due_date" gorm:"size:10;not null"` // YYYY-MM-DD
	RewardPoints    *decimal.Decimal `json:"reward_points" gorm:"type:decimal(20,2)"`
	// Billed flips to true the first time a statement amount is recorded
	// and distinguishes "not updated" from a genuine zero bill.
	Billed    bool      `json:"billed" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Payments []Payment `json:"payments" gorm:"foreignKey:CycleID"`
}

// NewCycleID builds the deterministic cycle identifier.
func NewCycleID(cycleDate string, cardID uuid.UUID) string {
	return fmt.Sprintf("cycle_%s_%s", cycleDate, cardID)
}

// PaymentSum returns the total of all payments applied to the cycle.
func (b *BillCycle) PaymentSum() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range b.Payments {
		sum = sum.Add(p.Amount)
	}
	return sum
}

// Status derives the stored-state status from the cycle's fields.
func (b *BillCycle) Status() CycleStatus {
	return DeriveStatus(b.TotalBill, b.RemainingAmount, len(b.Payments), b.Billed)
}

// StatusAt derives the status including the overdue overlay: an unpaid or
// partially paid cycle whose due date has passed reads as overdue.
func (b *BillCycle) StatusAt(now time.Time) CycleStatus {
	status := b.Status()
	if status != CycleStatusUnpaid && status != CycleStatusPartial {
		return status
	}
	if b.DueDate != "" && now.Format(DueDateLayout) > b.DueDate {
		return CycleStatusOverdue
	}
	return status
}

// DeriveStatus is the single source of truth for cycle status. It is a pure
// function of the cycle's monetary fields and the billed flag.
func DeriveStatus(totalBill, remaining decimal.Decimal, paymentCount int, billed bool) CycleStatus {
	if !billed {
		return CycleStatusNotUpdated
	}
	if remaining.IsZero() {
		return CycleStatusPaid
	}
	if remaining.LessThan(totalBill) {
		return CycleStatusPartial
	}
	return CycleStatusUnpaid
}
