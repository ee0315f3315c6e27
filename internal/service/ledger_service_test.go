package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"cardledger/internal/errors"
	"cardledger/internal/model"
	"cardledger/internal/repository"
)

// MockCardRepository is a mock implementation of CardRepository.
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) Create(ctx context.Context, card *model.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) Update(ctx context.Context, card *model.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Card), args.Error(1)
}

func (m *MockCardRepository) List(ctx context.Context) ([]model.Card, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Card), args.Error(1)
}

func (m *MockCardRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCycleRepository is a mock implementation of CycleRepository.
type MockCycleRepository struct {
	mock.Mock
}

func (m *MockCycleRepository) Create(ctx context.Context, cycle *model.BillCycle) error {
	args := m.Called(ctx, cycle)
	return args.Error(0)
}

func (m *MockCycleRepository) Update(ctx context.Context, cycle *model.BillCycle) error {
	args := m.Called(ctx, cycle)
	return args.Error(0)
}

func (m *MockCycleRepository) FindByID(ctx context.Context, id string) (*model.BillCycle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BillCycle), args.Error(1)
}

func (m *MockCycleRepository) FindByCardID(ctx context.Context, cardID uuid.UUID) ([]model.BillCycle, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BillCycle), args.Error(1)
}

func (m *MockCycleRepository) FindLatestByCardID(ctx context.Context, cardID uuid.UUID) (*model.BillCycle, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BillCycle), args.Error(1)
}

func (m *MockCycleRepository) SavePayment(ctx context.Context, cycle *model.BillCycle, payment *model.Payment) error {
	args := m.Called(ctx, cycle, payment)
	return args.Error(0)
}

var _ repository.CardRepository = (*MockCardRepository)(nil)
var _ repository.CycleRepository = (*MockCycleRepository)(nil)

// testNow is the frozen clock for ledger tests: March 10th, after the
// test card's bill day, so the current cycle key is 2025-03.
var testNow = date(2025, time.March, 10)

func newTestCard() *model.Card {
	return &model.Card{
		ID:          uuid.New(),
		BankName:    "HDFC Bank",
		CardName:    "Millennia",
		Network:     "Visa",
		LastFour:    "4821",
		CreditLimit: decimal.NewFromInt(150000),
		BillDay:     5,
		DueDay:      25,
	}
}

func newTestCycle(card *model.Card, total, remaining string, billed bool, payments ...model.Payment) *model.BillCycle {
	if payments == nil {
		payments = []model.Payment{}
	}
	return &model.BillCycle{
		ID:              model.NewCycleID("2025-03", card.ID),
		CardID:          card.ID,
		CycleDate:       "2025-03",
		TotalBill:       decimal.RequireFromString(total),
		RemainingAmount: decimal.RequireFromString(remaining),
		DueDate:         "2025-03-25",
		Billed:          billed,
		Payments:        payments,
	}
}

func testPayment(cycleID, amount string) model.Payment {
	return model.Payment{
		ID:      model.NewPaymentID(testNow.Add(-24 * time.Hour)),
		CycleID: cycleID,
		Amount:  decimal.RequireFromString(amount),
		Date:    "2025-03-09",
		Method:  "UPI",
	}
}

func newLedgerService(cardRepo *MockCardRepository, cycleRepo *MockCycleRepository) *ledgerService {
	svc := NewLedgerService(cardRepo, cycleRepo, nil).(*ledgerService)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestLedgerService_EnsureCurrentCycle_CreatesWhenMissing(t *testing.T) {
	cardRepo := new(MockCardRepository)
	cycleRepo := new(MockCycleRepository)
	svc := newLedgerService(cardRepo, cycleRepo)

	card := newTestCard()
	cycleID := model.NewCycleID("2025-03", card.ID)

	cardRepo.On("FindByID", mock.Anything, card.ID).Return(card, nil)
	cycleRepo.On("FindByID", mock.Anything, cycleID).Return(nil, gorm.ErrRecordNotFound)
	cycleRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.BillCycle")).Return(nil)

	cycle, err := svc.EnsureCurrentCycle(context.Background(), card.ID)

	assert.NoError(t, err)
	assert.Equal(t, cycleID, cycle.ID)
	assert.Equal(t, "2025-03", cycle.CycleDate)
	assert.Equal(t, "2025-03-25", cycle.DueDate)
	assert.False(t, cycle.Billed)
	assert.True(t, cycle.TotalBill.IsZero())
	assert.True(t, cycle.RemainingAmount.IsZero())
	assert.Equal(t, model.CycleStatusNotUpdated, cycle.Status())
	cycleRepo.AssertExpectations(t)
}

func TestLedgerService_EnsureCurrentCycle_Idempotent(t *testing.T) {
	cardRepo := new(MockCardRepository)
	cycleRepo := new(MockCycleRepository)
	svc := newLedgerService(cardRepo, cycleRepo)

	card := newTestCard()
	existing := newTestCycle(card, "1000", "600", true)

	cardRepo.On("FindByID", mock.Anything, card.ID).Return(card, nil)
	cycleRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)

	cycle, err := svc.EnsureCurrentCycle(context.Background(), card.ID)

	assert.NoError(t, err)
	assert.Equal(t, existing.ID, cycle.ID)
	cycleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLedgerService_EnsureCurrentCycle_CardNotFound(t *testing.T) {
	cardRepo := new(MockCardRepository)
	cycleRepo := new(MockCycleRepository)
	svc := newLedgerService(cardRepo, cycleRepo)

	cardID := uuid.New()
	cardRepo.On("FindByID", mock.Anything, cardID).Return(nil, gorm.ErrRecordNotFound)

	cycle, err := svc.EnsureCurrentCycle(context.Background(), cardID)

	assert.Nil(t, cycle)
	assert.Equal(t, errors.ErrCardNotFound, err)
}

func TestLedgerService_RecordBillAmount(t *testing.T) {
	tests := []struct {
		name              string
		amount            string
		existingTotal     string
		existingRemaining string
		existingBilled    bool
		priorPayments     []string
		wantRemaining     string
		wantStatus        model.CycleStatus
	}{
		{
			name:          "first bill on a fresh cycle",
			amount:        "1000",
			existingTotal: "0", existingRemaining: "0", existingBilled: false,
			wantRemaining: "1000",
			wantStatus:    model.CycleStatusUnpaid,
		},
		{
			name:          "bill recorded after a payment deducts it",
			amount:        "1000",
			existingTotal: "0", existingRemaining: "0", existingBilled: false,
			priorPayments: []string{"400"},
			wantRemaining: "600",
			wantStatus:    model.CycleStatusPartial,
		},
		{
			name:          "re-recording a settled cycle reopens it",
			amount:        "800",
			existingTotal: "500", existingRemaining: "0", existingBilled: true,
			priorPayments: []string{"500"},
			wantRemaining: "300",
			wantStatus:    model.CycleStatusPartial,
		},
		{
			name:          "payments exceeding the new bill clamp remaining at zero",
			amount:        "300",
			existingTotal: "0", existingRemaining: "0", existingBilled: false,
			priorPayments: []string{"500"},
			wantRemaining: "0",
			wantStatus:    model.CycleStatusPaid,
		},
		{
			name:          "zero bill reads as paid",
			amount:        "0",
			existingTotal: "0", existingRemaining: "0", existingBilled: false,
			wantRemaining: "0",
			wantStatus:    model.CycleStatusPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cardRepo := new(MockCardRepository)
			cycleRepo := new(MockCycleRepository)
			svc := newLedgerService(cardRepo, cycleRepo)

			card := newTestCard()
			var payments []model.Payment
			for _, p := range tt.priorPayments {
				payments = append(payments, testPayment(model.NewCycleID("2025-03", card.ID), p))
			}
			existing := newTestCycle(card, tt.existingTotal, tt.existingRemaining, tt.existingBilled, payments...)

			cardRepo.On("FindByID", mock.Anything, card.ID).Return(card, nil)
			cycleRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
			cycleRepo.On("FindLatestByCardID", mock.Anything, card.ID).Return(existing, nil)
			cycleRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.BillCycle")).Return(nil)

			cycle, err := svc.RecordBillAmount(context.Background(), card.ID, decimal.RequireFromString(tt.amount))

			assert.NoError(t, err)
			assert.True(t, cycle.Billed)
			assert.Equal(t, tt.amount, cycle.TotalBill.String())
			assert.Equal(t, tt.wantRemaining, cycle.RemainingAmount.String())
			assert.Equal(t, tt.wantStatus, cycle.Status())
			cycleRepo.AssertExpectations(t)
		})
	}
}

func TestLedgerService_RecordBillAmount_Negative(t *testing.T) {
	cardRepo := new(MockCardRepository)
	cycleRepo := new(MockCycleRepository)
	svc := newLedgerService(cardRepo, cycleRepo)

	cycle, err := svc.RecordBillAmount(context.Background(), uuid.New(), decimal.NewFromInt(-50))

	assert.Nil(t, cycle)
	assert.Equal(t, errors.ErrInvalidBillAmount, err)
	cardRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestLedgerService_ApplyPayment(t *testing.T) {
	tests := []struct {
		name          string
		remaining     string
		amount        string
		wantErr       error
		wantRemaining string
		wantStatus    model.CycleStatus
	}{
		{
			name:      "partial payment",
			remaining: "1000", amount: "400",
			wantRemaining: "600",
			wantStatus:    model.CycleStatusPartial,
		},
		{
			name:      "exact payment settles the cycle",
			remaining: "600", amount: "600",
			wantRemaining: "0",
			wantStatus:    model.CycleStatusPaid,
		},
		{
			name:      "overpayment is rejected",
			remaining: "600", amount: "700",
			wantErr: errors.ErrInvalidPaymentAmount,
		},
		{
			name:      "zero payment is rejected",
			remaining: "600", amount: "0",
			wantErr: errors.ErrInvalidPaymentAmount,
		},
		{
			name:      "negative payment is rejected",
			remaining: "600", amount: "-10",
			wantErr: errors.ErrInvalidPaymentAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cardRepo := new(MockCardRepository)
			cycleRepo := new(MockCycleRepository)
			svc := newLedgerService(cardRepo, cycleRepo)

			card := newTestCard()
			existing := newTestCycle(card, "1000", tt.remaining, true)

			cardRepo.On("FindByID", mock.Anything, card.ID).Return(card, nil)
			cycleRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
			cycleRepo.On("FindLatestByCardID", mock.Anything, card.ID).Return(existing, nil)
			cycleRepo.On("SavePayment", mock.Anything, mock.AnythingOfType("*model.BillCycle"), mock.AnythingOfType("*model.Payment")).Return(nil)

			cycle, err := svc.ApplyPayment(context.Background(), card.ID, decimal.RequireFromString(tt.amount), "UPI", "")

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				cycleRepo.AssertNotCalled(t, "SavePayment", mock.Anything, mock.Anything, mock.Anything)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantRemaining, cycle.RemainingAmount.String())
			assert.Equal(t, tt.wantStatus, cycle.Status())
			if assert.NotEmpty(t, cycle.Payments) {
				// Newest payment is prepended.
				assert.Equal(t, tt.amount, cycle.Payments[0].Amount.String())
				assert.Equal(t, cycle.ID, cycle.Payments[0].CycleID)
				assert.Equal(t, testNow.Format(model.DueDateLayout), cycle.Payments[0].Date)
			}
		})
	}
}

func TestLedgerService_ApplyFullPayment_SettlesRemaining(t *testing.T) {
	cardRepo := new(MockCardRepository)
	cycleRepo := new(MockCycleRepository)
	svc := newLedgerService(cardRepo, cycleRepo)

	card := newTestCard()
	existing := newTestCycle(card, "1000", "600", true, testPayment(model.NewCycleID("2025-03", card.ID), "400"))

	cardRepo.On("FindByID", mock.Anything, card.ID).Return(card, nil)
	cycleRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
	cycleRepo.On("FindLatestByCardID", mock.Anything, card.ID).Return(existing, nil)
	cycleRepo.On("SavePayment", mock.Anything, mock.AnythingOfType("*model.BillCycle"), mock.AnythingOfType("*model.Payment")).Return(nil)

	cycle, err := svc.ApplyFullPayment(context.Background(), card.ID, "netbanking", "stmt-03")

	assert.NoError(t, err)
	assert.True(t, cycle.RemainingAmount.IsZero())
	assert.Equal(t, model.CycleStatusPaid, cycle.Status())
	assert.Equal(t, "600", cycle.Payments[0].Amount.String())
	cycleRepo.AssertExpectations(t)
}

func TestLedgerService_ApplyFullPayment_NoopWhenPaid(t *testing.T) {
	cardRepo := new(MockCardRepository)
	cycleRepo := new(MockCycleRepository)
	svc := newLedgerService(cardRepo, cycleRepo)

	card := newTestCard()
	existing := newTestCycle(card, "1000", "0", true, testPayment(model.NewCycleID("2025-03", card.ID), "1000"))

	cardRepo.On("FindByID", mock.Anything, card.ID).Return(card, nil)
	cycleRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
	cycleRepo.On("FindLatestByCardID", mock.Anything, card.ID).Return(existing, nil)

	cycle, err := svc.ApplyFullPayment(context.Background(), card.ID, "netbanking", "")

	assert.NoError(t, err)
	assert.Equal(t, model.CycleStatusPaid, cycle.Status())
	assert.Len(t, cycle.Payments, 1)
	cycleRepo.AssertNotCalled(t, "SavePayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestLedgerService_RecordReward(t *testing.T) {
	cardRepo := new(MockCardRepository)
	cycleRepo := new(MockCycleRepository)
	svc := newLedgerService(cardRepo, cycleRepo)

	card := newTestCard()
	existing := newTestCycle(card, "1000", "600", true)

	cycleRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
	cycleRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.BillCycle")).Return(nil)

	points := decimal.NewFromInt(120)
	cycle, err := svc.RecordReward(context.Background(), existing.ID, &points)

	assert.NoError(t, err)
	if assert.NotNil(t, cycle.RewardPoints) {
		assert.Equal(t, "120", cycle.RewardPoints.String())
	}
	// Rewards never touch the payment status.
	assert.Equal(t, model.CycleStatusPartial, cycle.Status())

	cycle, err = svc.RecordReward(context.Background(), existing.ID, nil)
	assert.NoError(t, err)
	assert.Nil(t, cycle.RewardPoints)
}

func TestLedgerService_RecordReward_Negative(t *testing.T) {
	cardRepo := new(MockCardRepository)
	cycleRepo := new(MockCycleRepository)
	svc := newLedgerService(cardRepo, cycleRepo)

	points := decimal.NewFromInt(-5)
	cycle, err := svc.RecordReward(context.Background(), "cycle_2025-03_x", &points)

	assert.Nil(t, cycle)
	assert.Equal(t, errors.ErrInvalidRewardAmount, err)
}

func TestLedgerService_RecordReward_CycleNotFound(t *testing.T) {
	cardRepo := new(MockCardRepository)
	cycleRepo := new(MockCycleRepository)
	svc := newLedgerService(cardRepo, cycleRepo)

	cycleRepo.On("FindByID", mock.Anything, "cycle_2025-03_missing").Return(nil, gorm.ErrRecordNotFound)

	cycle, err := svc.RecordReward(context.Background(), "cycle_2025-03_missing", nil)

	assert.Nil(t, cycle)
	assert.Equal(t, errors.ErrCycleNotFound, err)
}

func TestLedgerService_GetPaymentHistory(t *testing.T) {
	cardRepo := new(MockCardRepository)
	cycleRepo := new(MockCycleRepository)
	svc := newLedgerService(cardRepo, cycleRepo)

	card := newTestCard()
	cycleID := model.NewCycleID("2025-03", card.ID)
	existing := newTestCycle(card, "1000", "300", true,
		testPayment(cycleID, "300"),
		testPayment(cycleID, "400"),
	)

	cardRepo.On("FindByID", mock.Anything, card.ID).Return(card, nil)
	cycleRepo.On("FindLatestByCardID", mock.Anything, card.ID).Return(existing, nil)

	payments, err := svc.GetPaymentHistory(context.Background(), card.ID)

	assert.NoError(t, err)
	assert.Len(t, payments, 2)
	assert.Equal(t, "300", payments[0].Amount.String())
}

func TestLedgerService_GetPaymentHistory_NoCycles(t *testing.T) {
	cardRepo := new(MockCardRepository)
	cycleRepo := new(MockCycleRepository)
	svc := newLedgerService(cardRepo, cycleRepo)

	card := newTestCard()
	cardRepo.On("FindByID", mock.Anything, card.ID).Return(card, nil)
	cycleRepo.On("FindLatestByCardID", mock.Anything, card.ID).Return(nil, gorm.ErrRecordNotFound)

	payments, err := svc.GetPaymentHistory(context.Background(), card.ID)

	assert.NoError(t, err)
	assert.Empty(t, payments)
	assert.NotNil(t, payments)
}

func TestLedgerService_GetCycleSummary(t *testing.T) {
	cardRepo := new(MockCardRepository)
	cycleRepo := new(MockCycleRepository)
	svc := newLedgerService(cardRepo, cycleRepo)

	card := newTestCard()
	rewards := decimal.NewFromInt(150)
	cycles := []model.BillCycle{
		{
			ID: model.NewCycleID("2025-03", card.ID), CardID: card.ID, CycleDate: "2025-03",
			TotalBill: decimal.NewFromInt(1000), RewardPoints: &rewards, Billed: true,
		},
		{
			ID: model.NewCycleID("2025-02", card.ID), CardID: card.ID, CycleDate: "2025-02",
			TotalBill: decimal.NewFromInt(2500), Billed: true,
		},
		{
			ID: model.NewCycleID("2024-12", card.ID), CardID: card.ID, CycleDate: "2024-12",
			TotalBill: decimal.NewFromInt(9999), Billed: true,
		},
	}

	cardRepo.On("FindByID", mock.Anything, card.ID).Return(card, nil)
	cycleRepo.On("FindByCardID", mock.Anything, card.ID).Return(cycles, nil)

	summary, err := svc.GetCycleSummary(context.Background(), card.ID, "2025")

	assert.NoError(t, err)
	assert.Equal(t, "2025", summary.Year)
	assert.Equal(t, 2, summary.CycleCount)
	assert.Equal(t, "3500", summary.TotalSpend.String())
	assert.Equal(t, "150", summary.TotalRewards.String())
}
