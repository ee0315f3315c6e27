package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewCycleID(t *testing.T) {
	cardID := uuid.MustParse("3e8f6a2d-4c1b-4f4e-9a6d-1b2c3d4e5f60")
	assert.Equal(t, "cycle_2025-03_3e8f6a2d-4c1b-4f4e-9a6d-1b2c3d4e5f60", NewCycleID("2025-03", cardID))
}

func TestNewPaymentID(t *testing.T) {
	ts := time.Date(2025, time.March, 10, 14, 30, 0, 123456789, time.UTC)
	id := NewPaymentID(ts)
	assert.Equal(t, "payment_1741617000123456789", id)
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name         string
		totalBill    string
		remaining    string
		paymentCount int
		billed       bool
		expected     CycleStatus
	}{
		{
			name:      "unbilled cycle is not updated",
			totalBill: "0", remaining: "0", billed: false,
			expected: CycleStatusNotUpdated,
		},
		{
			name:      "unbilled cycle with payments is still not updated",
			totalBill: "0", remaining: "0", paymentCount: 1, billed: false,
			expected: CycleStatusNotUpdated,
		},
		{
			name:      "billed with full balance outstanding is unpaid",
			totalBill: "1000", remaining: "1000", billed: true,
			expected: CycleStatusUnpaid,
		},
		{
			name:      "billed with partial balance is partial",
			totalBill: "1000", remaining: "600", paymentCount: 1, billed: true,
			expected: CycleStatusPartial,
		},
		{
			name:      "zero remaining is paid",
			totalBill: "1000", remaining: "0", paymentCount: 2, billed: true,
			expected: CycleStatusPaid,
		},
		{
			name:      "zero bill is immediately paid",
			totalBill: "0", remaining: "0", billed: true,
			expected: CycleStatusPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(dec(tt.totalBill), dec(tt.remaining), tt.paymentCount, tt.billed)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBillCycle_StatusAt_OverdueOverlay(t *testing.T) {
	beforeDue := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	afterDue := time.Date(2025, time.March, 26, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		remaining string
		billed    bool
		payments  int
		now       time.Time
		expected  CycleStatus
	}{
		{name: "unpaid before due date", remaining: "1000", billed: true, now: beforeDue, expected: CycleStatusUnpaid},
		{name: "unpaid past due date is overdue", remaining: "1000", billed: true, now: afterDue, expected: CycleStatusOverdue},
		{name: "partial past due date is overdue", remaining: "400", billed: true, payments: 1, now: afterDue, expected: CycleStatusOverdue},
		{name: "paid never goes overdue", remaining: "0", billed: true, payments: 1, now: afterDue, expected: CycleStatusPaid},
		{name: "not updated never goes overdue", remaining: "0", billed: false, now: afterDue, expected: CycleStatusNotUpdated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cycle := &BillCycle{
				TotalBill:       dec("1000"),
				RemainingAmount: dec(tt.remaining),
				DueDate:         "2025-03-25",
				Billed:          tt.billed,
			}
			if !tt.billed {
				cycle.TotalBill = decimal.Zero
			}
			for i := 0; i < tt.payments; i++ {
				cycle.Payments = append(cycle.Payments, Payment{Amount: dec("1")})
			}
			assert.Equal(t, tt.expected, cycle.StatusAt(tt.now))
		})
	}
}

func TestBillCycle_StatusAt_OnDueDate(t *testing.T) {
	cycle := &BillCycle{
		TotalBill:       dec("1000"),
		RemainingAmount: dec("1000"),
		DueDate:         "2025-03-25",
		Billed:          true,
	}
	// The due date itself is not overdue yet.
	onDue := time.Date(2025, time.March, 25, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, CycleStatusUnpaid, cycle.StatusAt(onDue))
}

func TestBillCycle_PaymentSum(t *testing.T) {
	cycle := &BillCycle{
		Payments: []Payment{
			{Amount: dec("400")},
			{Amount: dec("150.50")},
		},
	}
	assert.Equal(t, "550.5", cycle.PaymentSum().String())

	empty := &BillCycle{}
	assert.True(t, empty.PaymentSum().IsZero())
}
