package secrets

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"cardledger/internal/model"
)

const cardDetailsKeyPrefix = "card_details_"

// Store holds sensitive card fields outside the relational database.
// Unlike cache.Client it does not swallow errors: a failed secret write
// must surface to the caller so the card-creation flow can abort.
type Store interface {
	PutCardDetails(ctx context.Context, cardID string, details *model.CardSecureDetails) error
	GetCardDetails(ctx context.Context, cardID string) (*model.CardSecureDetails, error)
	DeleteCardDetails(ctx context.Context, cardID string) error
}

type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a secrets store backed by Redis.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func cardDetailsKey(cardID string) string {
	return cardDetailsKeyPrefix + cardID
}

// PutCardDetails stores the secure details blob for a card.
func (s *redisStore) PutCardDetails(ctx context.Context, cardID string, details *model.CardSecureDetails) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("marshal card details: %w", err)
	}
	if err := s.client.Set(ctx, cardDetailsKey(cardID), payload, 0).Err(); err != nil {
		return fmt.Errorf("store card details: %w", err)
	}
	return nil
}

// GetCardDetails returns the secure details for a card, or nil if absent.
func (s *redisStore) GetCardDetails(ctx context.Context, cardID string) (*model.CardSecureDetails, error) {
	data, err := s.client.Get(ctx, cardDetailsKey(cardID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load card details: %w", err)
	}
	var details model.CardSecureDetails
	if err := json.Unmarshal(data, &details); err != nil {
		return nil, fmt.Errorf("unmarshal card details: %w", err)
	}
	return &details, nil
}

// DeleteCardDetails removes the secure details for a card.
func (s *redisStore) DeleteCardDetails(ctx context.Context, cardID string) error {
	if err := s.client.Del(ctx, cardDetailsKey(cardID)).Err(); err != nil {
		return fmt.Errorf("delete card details: %w", err)
	}
	return nil
}
