package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cardledger/internal/model"
)

// CycleRepository defines bill cycle persistence operations.
type CycleRepository interface {
	Create(ctx context.Context, cycle *model.BillCycle) error
	Update(ctx context.Context, cycle *model.BillCycle) error
	FindByID(ctx context.Context, id string) (*model.BillCycle, error)
	FindByCardID(ctx context.Context, cardID uuid.UUID) ([]model.BillCycle, error)
	FindLatestByCardID(ctx context.Context, cardID uuid.UUID) (*model.BillCycle, error)
	// SavePayment appends a payment and writes the cycle's updated
	// monetary fields in a single transaction.
	SavePayment(ctx context.Context, cycle *model.BillCycle, payment *model.Payment) error
}

type cycleRepository struct {
	db *gorm.DB
}

// NewCycleRepository creates a new cycle repository.
func NewCycleRepository(db *gorm.DB) CycleRepository {
	return &cycleRepository{db: db}
}

// Create creates a new bill cycle record.
func (r *cycleRepository) Create(ctx context.Context, cycle *model.BillCycle) error {
	return r.db.WithContext(ctx).Create(cycle).Error
}

// Update updates an existing bill cycle record.
func (r *cycleRepository) Update(ctx context.Context, cycle *model.BillCycle) error {
	return r.db.WithContext(ctx).Omit("Payments").Save(cycle).Error
}

// FindByID finds a bill cycle by ID with its payments preloaded.
func (r *cycleRepository) FindByID(ctx context.Context, id string) (*model.BillCycle, error) {
	var cycle model.BillCycle
	if err := r.db.WithContext(ctx).Preload("Payments", paymentOrder).
		Where("id = ?", id).First(&cycle).Error; err != nil {
		return nil, err
	}
	return &cycle, nil
}

// FindByCardID returns all cycles for a card, newest cycle first.
func (r *cycleRepository) FindByCardID(ctx context.Context, cardID uuid.UUID) ([]model.BillCycle, error) {
	var cycles []model.BillCycle
	if err := r.db.WithContext(ctx).Preload("Payments", paymentOrder).
		Where("card_id = ?", cardID).
		Order("cycle_date DESC").
		Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

// FindLatestByCardID returns the most recent cycle for a card.
func (r *cycleRepository) FindLatestByCardID(ctx context.Context, cardID uuid.UUID) (*model.BillCycle, error) {
	var cycle model.BillCycle
	if err := r.db.WithContext(ctx).Preload("Payments", paymentOrder).
		Where("card_id = ?", cardID).
		Order("cycle_date DESC").
		First(&cycle).Error; err != nil {
		return nil, err
	}
	return &cycle, nil
}

// SavePayment writes the payment and the cycle's recomputed fields together.
func (r *cycleRepository) SavePayment(ctx context.Context, cycle *model.BillCycle, payment *model.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		return tx.Omit("Payments").Save(cycle).Error
	})
}

// paymentOrder keeps preloaded payments most-recent first.
func paymentOrder(db *gorm.DB) *gorm.DB {
	return db.Order("payments.date DESC, payments.created_at DESC")
}
