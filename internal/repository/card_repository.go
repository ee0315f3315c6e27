package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cardledger/internal/model"
)

// CardRepository defines card persistence operations.
type CardRepository interface {
	Create(ctx context.Context, card *model.Card) error
	Update(ctx context.Context, card *model.Card) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Card, error)
	List(ctx context.Context) ([]model.Card, error)
	// DeleteCascade removes a card together with all of its bill cycles
	// and their payments in one transaction.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new card repository.
func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{db: db}
}

// Create creates a new card.
func (r *cardRepository) Create(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

// Update updates an existing card.
func (r *cardRepository) Update(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Save(card).Error
}

// FindByID finds a card by ID.
func (r *cardRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	var card model.Card
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// List returns all cards ordered by creation time.
func (r *cardRepository) List(ctx context.Context) ([]model.Card, error) {
	var cards []model.Card
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// DeleteCascade deletes a card, its cycles and their payments.
func (r *cardRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cycleIDs := tx.Model(&model.BillCycle{}).Select("id").Where("card_id = ?", id)
		if err := tx.Where("cycle_id IN (?)", cycleIDs).Delete(&model.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("card_id = ?", id).Delete(&model.BillCycle{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Card{}).Error
	})
}
