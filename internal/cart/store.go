package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	pkgredis "github.com/Vamsi-027/fabric-commerce-backend/pkg/redis"
)

// ErrStorageUnavailable signals that the cart storage backend cannot be
// reached. Callers degrade to an empty cart rather than failing the request.
var ErrStorageUnavailable = errors.New("cart storage unavailable")

// Store persists the full ordered line-item list for a session.
type Store interface {
	Load(ctx context.Context, sessionID string) ([]LineItem, error)
	Save(ctx context.Context, sessionID string, items []LineItem) error
}

type redisStore struct {
	client *pkgredis.Client
}

// NewRedisStore returns a Store backed by the shared Redis client.
func NewRedisStore(client *pkgredis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Load(ctx context.Context, sessionID string) ([]LineItem, error) {
	if s.client == nil {
		return nil, ErrStorageUnavailable
	}
	raw, err := s.client.Get(ctx, s.client.CartKey(sessionID))
	if err != nil {
		if errors.Is(err, pkgredis.Nil) {
			return []LineItem{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// A corrupt payload is treated as an empty cart rather than a
		// poisoned session.
		return []LineItem{}, nil
	}
	return items, nil
}

func (s *redisStore) Save(ctx context.Context, sessionID string, items []LineItem) error {
	if s.client == nil {
		return ErrStorageUnavailable
	}
	if items == nil {
		items = []LineItem{}
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, s.client.CartKey(sessionID), string(encoded), 0); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
