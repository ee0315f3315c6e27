package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"cardledger/internal/cache"
	"cardledger/internal/errors"
	"cardledger/internal/model"
	"cardledger/internal/repository"
)

const currentCycleCacheTTL = 10 * time.Minute

// CycleSummary aggregates a card's cycles for one calendar year.
type CycleSummary struct {
	Year         string          `json:"year"`
	CycleCount   int             `json:"cycle_count"`
	TotalSpend   decimal.Decimal `json:"total_spend"`
	TotalRewards decimal.Decimal `json:"total_rewards"`
}

// LedgerService owns the invariant-preserving state of a card's bill
// cycles: lazy cycle creation, bill recording, and payment application.
type LedgerService interface {
	EnsureCurrentCycle(ctx context.Context, cardID uuid.UUID) (*model.BillCycle, error)
	RecordBillAmount(ctx context.Context, cardID uuid.UUID, amount decimal.Decimal) (*model.BillCycle, error)
	ApplyPayment(ctx context.Context, cardID uuid.UUID, amount decimal.Decimal, method, reference string) (*model.BillCycle, error)
	ApplyFullPayment(ctx context.Context, cardID uuid.UUID, method, reference string) (*model.BillCycle, error)
	RecordReward(ctx context.Context, cycleID string, amount *decimal.Decimal) (*model.BillCycle, error)
	GetPaymentHistory(ctx context.Context, cardID uuid.UUID) ([]model.Payment, error)
	GetCardCycles(ctx context.Context, cardID uuid.UUID) ([]model.BillCycle, error)
	GetCycleSummary(ctx context.Context, cardID uuid.UUID, year string) (*CycleSummary, error)
}

type ledgerService struct {
	cardRepo  repository.CardRepository
	cycleRepo repository.CycleRepository
	cache     *cache.Client
	deriver   *CycleDeriver
	// Mutex map for per-card locking: one logical operation's
	// read-modify-write of a cycle runs as a single critical section.
	cardMutexes sync.Map
	now         func() time.Time
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(
	cardRepo repository.CardRepository,
	cycleRepo repository.CycleRepository,
	cache *cache.Client,
) LedgerService {
	return &ledgerService{
		cardRepo:  cardRepo,
		cycleRepo: cycleRepo,
		cache:     cache,
		deriver:   NewCycleDeriver(),
		now:       time.Now,
	}
}

// getMutex returns a mutex for a specific card ID.
func (s *ledgerService) getMutex(cardID uuid.UUID) *sync.Mutex {
	value, _ := s.cardMutexes.LoadOrStore(cardID.String(), &sync.Mutex{})
	return value.(*sync.Mutex)
}

func (s *ledgerService) cacheKey(cardID uuid.UUID) string {
	return fmt.Sprintf("cycle:current:%s", cardID)
}

// EnsureCurrentCycle makes sure the cycle covering today exists for the
// card and returns it. Idempotent: the deterministic cycle ID guarantees
// at most one cycle per card per month.
func (s *ledgerService) EnsureCurrentCycle(ctx context.Context, cardID uuid.UUID) (*model.BillCycle, error) {
	mutex := s.getMutex(cardID)
	mutex.Lock()
	defer mutex.Unlock()

	card, err := s.findCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	return s.ensureCurrentCycle(ctx, card)
}

// ensureCurrentCycle is the unlocked worker behind EnsureCurrentCycle.
// Callers must hold the card mutex.
func (s *ledgerService) ensureCurrentCycle(ctx context.Context, card *model.Card) (*model.BillCycle, error) {
	cycleKey := s.deriver.CurrentCycleKey(card.BillDay, s.now())
	cycleID := model.NewCycleID(cycleKey, card.ID)

	// Try cache first
	if data, _ := s.cache.Get(ctx, s.cacheKey(card.ID)); data != nil {
		var cached model.BillCycle
		if err := json.Unmarshal(data, &cached); err == nil && cached.ID == cycleID {
			return &cached, nil
		}
	}

	cycle, err := s.cycleRepo.FindByID(ctx, cycleID)
	if err == nil {
		s.cacheCycle(ctx, cycle)
		return cycle, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("find cycle: %w", err)
	}

	dueDate, err := s.deriver.DueDate(card.BillDay, card.DueDay, cycleKey)
	if err != nil {
		return nil, fmt.Errorf("derive due date: %w", err)
	}

	cycle = &model.BillCycle{
		ID:              cycleID,
		CardID:          card.ID,
		CycleDate:       cycleKey,
		TotalBill:       decimal.Zero,
		RemainingAmount: decimal.Zero,
		DueDate:         dueDate,
		RewardPoints:    nil,
		Billed:          false,
		Payments:        []model.Payment{},
	}
	if err := s.cycleRepo.Create(ctx, cycle); err != nil {
		return nil, fmt.Errorf("create cycle: %w", err)
	}

	s.cacheCycle(ctx, cycle)
	return cycle, nil
}

// RecordBillAmount sets the statement total on the card's latest cycle and
// recomputes the remaining balance from the payments already applied.
// Re-recording on a settled cycle reopens it.
func (s *ledgerService) RecordBillAmount(ctx context.Context, cardID uuid.UUID, amount decimal.Decimal) (*model.BillCycle, error) {
	if amount.IsNegative() {
		return nil, errors.ErrInvalidBillAmount
	}

	mutex := s.getMutex(cardID)
	mutex.Lock()
	defer mutex.Unlock()

	cycle, err := s.latestCycle(ctx, cardID)
	if err != nil {
		return nil, err
	}

	remaining := amount.Sub(cycle.PaymentSum())
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	cycle.TotalBill = amount
	cycle.RemainingAmount = remaining
	cycle.Billed = true

	if err := s.cycleRepo.Update(ctx, cycle); err != nil {
		return nil, fmt.Errorf("update cycle: %w", err)
	}

	s.cacheCycle(ctx, cycle)
	return cycle, nil
}

// ApplyPayment records a payment against the card's latest cycle.
func (s *ledgerService) ApplyPayment(ctx context.Context, cardID uuid.UUID, amount decimal.Decimal, method, reference string) (*model.BillCycle, error) {
	return s.applyPayment(ctx, cardID, amount, method, reference, false)
}

// ApplyFullPayment settles the latest cycle's remaining balance. Calling
// it on an already paid cycle is a no-op success, not an error.
func (s *ledgerService) ApplyFullPayment(ctx context.Context, cardID uuid.UUID, method, reference string) (*model.BillCycle, error) {
	return s.applyPayment(ctx, cardID, decimal.Zero, method, reference, true)
}

func (s *ledgerService) applyPayment(ctx context.Context, cardID uuid.UUID, amount decimal.Decimal, method, reference string, full bool) (*model.BillCycle, error) {
	mutex := s.getMutex(cardID)
	mutex.Lock()
	defer mutex.Unlock()

	cycle, err := s.latestCycle(ctx, cardID)
	if err != nil {
		return nil, err
	}

	if full {
		if cycle.Status() == model.CycleStatusPaid {
			return cycle, nil
		}
		amount = cycle.RemainingAmount
	}

	if !amount.IsPositive() || amount.GreaterThan(cycle.RemainingAmount) {
		return nil, errors.ErrInvalidPaymentAmount
	}

	now := s.now()
	payment := &model.Payment{
		ID:        model.NewPaymentID(now),
		CycleID:   cycle.ID,
		Amount:    amount,
		Date:      now.Format(model.DueDateLayout),
		Method:    method,
		Reference: reference,
	}

	cycle.RemainingAmount = cycle.RemainingAmount.Sub(amount)
	if err := s.cycleRepo.SavePayment(ctx, cycle, payment); err != nil {
		return nil, fmt.Errorf("save payment: %w", err)
	}

	// Keep the in-memory payment list most-recent first.
	cycle.Payments = append([]model.Payment{*payment}, cycle.Payments...)

	s.cacheCycle(ctx, cycle)
	return cycle, nil
}

// RecordReward sets the reward points on a cycle; nil clears them.
// Rewards never affect payment status.
func (s *ledgerService) RecordReward(ctx context.Context, cycleID string, amount *decimal.Decimal) (*model.BillCycle, error) {
	if amount != nil && amount.IsNegative() {
		return nil, errors.ErrInvalidRewardAmount
	}

	cycle, err := s.cycleRepo.FindByID(ctx, cycleID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCycleNotFound
		}
		return nil, fmt.Errorf("find cycle: %w", err)
	}

	mutex := s.getMutex(cycle.CardID)
	mutex.Lock()
	defer mutex.Unlock()

	cycle.RewardPoints = amount
	if err := s.cycleRepo.Update(ctx, cycle); err != nil {
		return nil, fmt.Errorf("update cycle: %w", err)
	}

	s.cacheCycle(ctx, cycle)
	return cycle, nil
}

// GetPaymentHistory returns the latest cycle's payments, most recent first.
func (s *ledgerService) GetPaymentHistory(ctx context.Context, cardID uuid.UUID) ([]model.Payment, error) {
	if _, err := s.findCard(ctx, cardID); err != nil {
		return nil, err
	}

	cycle, err := s.cycleRepo.FindLatestByCardID(ctx, cardID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return []model.Payment{}, nil
		}
		return nil, fmt.Errorf("find latest cycle: %w", err)
	}
	return cycle.Payments, nil
}

// GetCardCycles returns the card's bill history, newest cycle first.
func (s *ledgerService) GetCardCycles(ctx context.Context, cardID uuid.UUID) ([]model.BillCycle, error) {
	if _, err := s.findCard(ctx, cardID); err != nil {
		return nil, err
	}
	cycles, err := s.cycleRepo.FindByCardID(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("find cycles: %w", err)
	}
	return cycles, nil
}

// GetCycleSummary aggregates spend and rewards for one calendar year.
func (s *ledgerService) GetCycleSummary(ctx context.Context, cardID uuid.UUID, year string) (*CycleSummary, error) {
	cycles, err := s.GetCardCycles(ctx, cardID)
	if err != nil {
		return nil, err
	}

	summary := &CycleSummary{
		Year:         year,
		TotalSpend:   decimal.Zero,
		TotalRewards: decimal.Zero,
	}
	for _, cycle := range cycles {
		if !strings.HasPrefix(cycle.CycleDate, year) {
			continue
		}
		summary.CycleCount++
		summary.TotalSpend = summary.TotalSpend.Add(cycle.TotalBill)
		if cycle.RewardPoints != nil {
			summary.TotalRewards = summary.TotalRewards.Add(*cycle.RewardPoints)
		}
	}
	return summary, nil
}

// latestCycle ensures the current cycle exists and returns the card's most
// recent cycle. Callers must hold the card mutex.
func (s *ledgerService) latestCycle(ctx context.Context, cardID uuid.UUID) (*model.BillCycle, error) {
	card, err := s.findCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ensureCurrentCycle(ctx, card); err != nil {
		return nil, err
	}

	cycle, err := s.cycleRepo.FindLatestByCardID(ctx, cardID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCycleNotFound
		}
		return nil, fmt.Errorf("find latest cycle: %w", err)
	}
	return cycle, nil
}

func (s *ledgerService) findCard(ctx context.Context, cardID uuid.UUID) (*model.Card, error) {
	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCardNotFound
		}
		return nil, fmt.Errorf("find card: %w", err)
	}
	return card, nil
}

func (s *ledgerService) cacheCycle(ctx context.Context, cycle *model.BillCycle) {
	if payload, err := json.Marshal(cycle); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(cycle.CardID), payload, currentCycleCacheTTL)
	}
}
