package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"cardledger/internal/cache"
	"cardledger/internal/errors"
	"cardledger/internal/model"
	"cardledger/internal/repository"
	"cardledger/internal/secrets"
)

// CreateCardInput carries everything the add-card flow collects. The
// sensitive fields go to the secrets store, the rest to MySQL.
type CreateCardInput struct {
	BankName       string
	CardName       string
	Network        string
	CardNumber     string
	Expiry         string // MM/YY
	CVV            string
	CardHolderName string
	CreditLimit    decimal.Decimal
	BillDay        int
	DueDay         int
	Color          string
}

// UpdateCardInput carries the editable, non-sensitive card fields.
// Card number, expiry, and CVV are immutable after creation; replacing
// them means deleting the card and adding it again.
type UpdateCardInput struct {
	BankName    string
	CardName    string
	Network     string
	CreditLimit decimal.Decimal
	BillDay     int
	DueDay      int
	Color       string
}

// CardService handles card registration and lifecycle.
type CardService interface {
	// CreateCard validates and persists a card. The returned warning is
	// the due-date sanity advisory, empty when the anchor pair looks normal.
	CreateCard(ctx context.Context, input CreateCardInput) (*model.Card, string, error)
	// UpdateCard edits the non-sensitive fields, returning the same
	// sanity advisory as CreateCard when the anchor days change.
	UpdateCard(ctx context.Context, id uuid.UUID, input UpdateCardInput) (*model.Card, string, error)
	GetCard(ctx context.Context, id uuid.UUID) (*model.Card, error)
	ListCards(ctx context.Context) ([]model.Card, error)
	DeleteCard(ctx context.Context, id uuid.UUID) error
	GetSecureDetails(ctx context.Context, id uuid.UUID) (*model.CardSecureDetails, error)
}

type cardService struct {
	cardRepo  repository.CardRepository
	secrets   secrets.Store
	cache     *cache.Client
	validator *CardValidator
	deriver   *CycleDeriver
}

// NewCardService creates a new card service.
func NewCardService(cardRepo repository.CardRepository, secretStore secrets.Store, cache *cache.Client) CardService {
	return &cardService{
		cardRepo:  cardRepo,
		secrets:   secretStore,
		cache:     cache,
		validator: NewCardValidator(),
		deriver:   NewCycleDeriver(),
	}
}

// CreateCard validates the input, persists the card, and stores the
// sensitive fields in the secrets store.
func (s *cardService) CreateCard(ctx context.Context, input CreateCardInput) (*model.Card, string, error) {
	if err := s.validator.ValidateAnchorDays(input.BillDay, input.DueDay); err != nil {
		return nil, "", err
	}
	if !input.CreditLimit.IsPositive() {
		return nil, "", errors.ErrInvalidCard
	}
	if err := s.validator.ValidateDetails(input.CardNumber, input.Expiry, input.CVV); err != nil {
		return nil, "", err
	}

	card := &model.Card{
		BankName:    input.BankName,
		CardName:    input.CardName,
		Network:     input.Network,
		LastFour:    s.validator.LastFour(input.CardNumber),
		CreditLimit: input.CreditLimit,
		BillDay:     input.BillDay,
		DueDay:      input.DueDay,
		Color:       input.Color,
	}
	if err := s.cardRepo.Create(ctx, card); err != nil {
		return nil, "", fmt.Errorf("create card: %w", err)
	}

	details := &model.CardSecureDetails{
		CardNumber:     input.CardNumber,
		ExpiryDate:     input.Expiry,
		CVV:            input.CVV,
		CardHolderName: input.CardHolderName,
	}
	if err := s.secrets.PutCardDetails(ctx, card.ID.String(), details); err != nil {
		// Keep the card record but surface the failure; the caller can
		// retry or delete. No automatic rollback (single-writer model).
		return card, "", fmt.Errorf("store secure details: %w", err)
	}

	warning := s.deriver.DueDateSanity(input.BillDay, input.DueDay)
	return card, warning, nil
}

// UpdateCard edits a card's non-sensitive fields.
func (s *cardService) UpdateCard(ctx context.Context, id uuid.UUID, input UpdateCardInput) (*model.Card, string, error) {
	if err := s.validator.ValidateAnchorDays(input.BillDay, input.DueDay); err != nil {
		return nil, "", err
	}
	if !input.CreditLimit.IsPositive() {
		return nil, "", errors.ErrInvalidCard
	}

	card, err := s.GetCard(ctx, id)
	if err != nil {
		return nil, "", err
	}

	card.BankName = input.BankName
	card.CardName = input.CardName
	card.Network = input.Network
	card.CreditLimit = input.CreditLimit
	card.BillDay = input.BillDay
	card.DueDay = input.DueDay
	card.Color = input.Color

	if err := s.cardRepo.Update(ctx, card); err != nil {
		return nil, "", fmt.Errorf("update card: %w", err)
	}

	warning := s.deriver.DueDateSanity(input.BillDay, input.DueDay)
	return card, warning, nil
}

// GetCard retrieves a card by ID.
func (s *cardService) GetCard(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	card, err := s.cardRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCardNotFound
		}
		return nil, fmt.Errorf("find card: %w", err)
	}
	return card, nil
}

// ListCards returns all registered cards.
func (s *cardService) ListCards(ctx context.Context) ([]model.Card, error) {
	cards, err := s.cardRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return cards, nil
}

// DeleteCard removes a card, its cycles and payments, its secret blob,
// and any cached state.
func (s *cardService) DeleteCard(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetCard(ctx, id); err != nil {
		return err
	}
	if err := s.cardRepo.DeleteCascade(ctx, id); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	if err := s.secrets.DeleteCardDetails(ctx, id.String()); err != nil {
		return fmt.Errorf("delete secure details: %w", err)
	}
	_ = s.cache.Delete(ctx, fmt.Sprintf("cycle:current:%s", id))
	return nil
}

// GetSecureDetails returns the sensitive card fields from the secrets
// store, or nil when none are stored.
func (s *cardService) GetSecureDetails(ctx context.Context, id uuid.UUID) (*model.CardSecureDetails, error) {
	if _, err := s.GetCard(ctx, id); err != nil {
		return nil, err
	}
	return s.secrets.GetCardDetails(ctx, id.String())
}
