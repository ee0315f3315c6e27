package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents one payment transaction against a bill cycle.
// Payments are append-only: never edited or removed once created.
type Payment struct {
	ID      string          `json:"id" gorm:"size:64;primaryKey"`
	CycleID string          `json:"cycle_id" gorm:"size:64;not null;index"`
	Amount  decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	// Date is the payment day in YYYY-MM-DD form.
	Date      string    `json:"date" gorm:"size:10;not null"`
	Method    string    `json:"method" gorm:"size:64;not null"`
	Reference string    `json:"reference,omitempty" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPaymentID derives a payment identifier from its creation timestamp.
func NewPaymentID(t time.Time) string {
	return fmt.Sprintf("payment_%d", t.UnixNano())
}
